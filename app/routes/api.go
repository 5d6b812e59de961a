package routes

import (
	"net/http"

	"github.com/newtonbotics/labstore/app/controllers"
	"github.com/newtonbotics/labstore/pkg/router"
	"github.com/newtonbotics/labstore/pkg/ws"
)

// API bundles the controllers wired by the composition root.
type API struct {
	Health     *controllers.HealthController
	Products   *controllers.ProductController
	Orders     *controllers.OrderController
	GraphQL    *controllers.GraphQLController
	OrdersFeed *ws.Hub
}

// RegisterAPI mounts every storefront route.
func RegisterAPI(r *router.Router, api API) {
	r.Get("/", "home", api.Health.Home)
	r.Get("/test", "health.test", api.Health.Test)

	group := r.Group("/api")
	group.Get("/products", "products.list", api.Products.List)
	group.Get("/products/sample-seed", "products.seed", api.Products.Seed)
	group.Post("/orders", "orders.create", api.Orders.Create)

	if api.GraphQL != nil {
		group.Post("/graphql", "graphql.query", api.GraphQL.Query)
	}

	if api.OrdersFeed != nil {
		r.Get("/ws/orders", "orders.feed", func(w http.ResponseWriter, req *http.Request) {
			ws.Upgrade(w, req, api.OrdersFeed)
		})
	}
}
