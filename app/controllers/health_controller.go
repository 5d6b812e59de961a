package controllers

import (
	"net/http"

	"github.com/newtonbotics/labstore/config"
	"github.com/newtonbotics/labstore/pkg/response"
	"github.com/newtonbotics/labstore/pkg/store"
)

// maxDiagnosticCollections caps the collection names echoed by /test.
const maxDiagnosticCollections = 10

// HealthController serves the liveness and store-diagnostic endpoints.
type HealthController struct {
	store store.Store
}

func NewHealthController(s store.Store) *HealthController {
	return &HealthController{store: s}
}

// Home handles GET /.
func (c *HealthController) Home(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"message": "Newtonbotics Lab Store Backend Running",
	})
}

// Test handles GET /test. Degraded store states are reported in the body,
// never as an error status: this endpoint is about observing, not failing.
func (c *HealthController) Test(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     "not set",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if config.DatabaseURLSet() {
		body["database_url"] = "set"
	}
	if config.DatabaseNameSet() {
		body["database_name"] = "set"
	}

	if _, degraded := c.store.(store.Unavailable); c.store == nil || degraded {
		body["database"] = "not initialized"
		response.Success(w, body)
		return
	}
	body["database"] = "available"

	names, err := c.store.ListCollections(r.Context())
	if err != nil {
		body["database"] = "connected but error: " + truncateError(err)
		response.Success(w, body)
		return
	}

	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	body["collections"] = names
	body["database"] = "connected"
	body["connection_status"] = "connected"

	response.Success(w, body)
}

// truncateError caps error text exposed to clients; full detail stays in
// the logs.
func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > 80 {
		return msg[:80]
	}
	return msg
}
