package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/newtonbotics/labstore/app/services"
	"github.com/newtonbotics/labstore/config"
	"github.com/newtonbotics/labstore/internal/server"
	"github.com/newtonbotics/labstore/pkg/cache"
	"github.com/newtonbotics/labstore/pkg/event"
	"github.com/newtonbotics/labstore/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: "Starts the storefront HTTP server. The server comes up even when " +
		"MongoDB is unreachable; store-backed endpoints then report the " +
		"degraded state instead of failing at boot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		st, connErr := connectStore()
		if connErr != nil {
			warnDegraded(connErr)
		}

		if err := cache.Connect(); err != nil {
			logger.Warn("redis unreachable, product list cache disabled", "error", err)
		}

		if config.LogToStore() && connErr == nil {
			closeSink, err := logger.AttachStoreSink(config.DatabaseURL(), config.DatabaseName())
			if err != nil {
				logger.Warn("log store sink disabled", "error", err)
			} else {
				defer closeSink()
			}
		}

		api, err := buildAPI(st)
		if err != nil {
			return err
		}

		// Order-created events fan out to the websocket feed.
		go api.OrdersFeed.Run()
		event.Listen(services.OrderCreatedEvent, func(payload interface{}) {
			data, err := json.Marshal(payload)
			if err != nil {
				logger.Warn("orders feed: marshal event", "error", err)
				return
			}
			api.OrdersFeed.Broadcast(data)
		})

		return server.Start(server.BuildHandler(api))
	},
}
