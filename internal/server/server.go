// Package server owns the HTTP handler assembly and the listen+serve
// lifecycle.
package server

import (
	"net/http"
	"time"

	"github.com/newtonbotics/labstore/app/routes"
	"github.com/newtonbotics/labstore/config"
	"github.com/newtonbotics/labstore/pkg/logger"
	"github.com/newtonbotics/labstore/pkg/metrics"
	"github.com/newtonbotics/labstore/pkg/middleware"
	"github.com/newtonbotics/labstore/pkg/reqid"
	"github.com/newtonbotics/labstore/pkg/response"
	"github.com/newtonbotics/labstore/pkg/router"
)

// BuildHandler constructs the HTTP handler: global middleware stack, the
// Prometheus endpoint, then the storefront routes.
func BuildHandler(api routes.API) http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no rate limit concerns at this volume.
	r.HandleFunc("/metrics", metrics.Handler())

	r.NotFound(response.NotFound)

	routes.RegisterAPI(r, api)

	return r.Handler()
}

// Start binds the configured port and serves handler until the listener
// fails or the process is killed.
func Start(handler http.Handler) error {
	addr := ":" + config.AppPort()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("lab store backend listening", "addr", addr, "env", config.AppEnv())
	return srv.ListenAndServe()
}
