package main

import (
	"context"
	"time"

	"github.com/newtonbotics/labstore/app/controllers"
	"github.com/newtonbotics/labstore/app/repositories"
	"github.com/newtonbotics/labstore/app/routes"
	"github.com/newtonbotics/labstore/app/services"
	"github.com/newtonbotics/labstore/config"
	"github.com/newtonbotics/labstore/pkg/logger"
	"github.com/newtonbotics/labstore/pkg/store"
	"github.com/newtonbotics/labstore/pkg/ws"
)

// connectStore opens the document store from config. The error is returned
// alongside an Unavailable placeholder so callers can choose between
// degraded serving (HTTP) and hard failure (seed).
func connectStore() (store.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	m, err := store.Connect(ctx, config.DatabaseURL(), config.DatabaseName())
	if err != nil {
		return store.Unavailable{}, err
	}
	return m, nil
}

// buildAPI wires repositories → services → controllers over the given store.
func buildAPI(st store.Store) (routes.API, error) {
	productRepo := repositories.NewProductRepository(st)
	orderRepo := repositories.NewOrderRepository(st)

	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo)

	gqlController, err := controllers.NewGraphQLController(productSvc)
	if err != nil {
		return routes.API{}, err
	}

	return routes.API{
		Health:     controllers.NewHealthController(st),
		Products:   controllers.NewProductController(productSvc),
		Orders:     controllers.NewOrderController(orderSvc),
		GraphQL:    gqlController,
		OrdersFeed: ws.NewHub(),
	}, nil
}

// warnDegraded logs a store connect failure once at boot.
func warnDegraded(err error) {
	logger.Error("document store unreachable, serving degraded", "error", err)
}
