// Package graphql exposes a read-only GraphQL query surface over the
// product catalogue, backed by the same query builder as the REST listing.
package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
)

// ProductArgs mirrors the REST listing parameters.
type ProductArgs struct {
	Term     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Limit    int64
}

// ProductLister resolves a product query. Wired to the product service by
// the composition root; pkg code never imports app code.
type ProductLister func(ctx context.Context, args ProductArgs) ([]map[string]interface{}, error)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"title":       &graphql.Field{Type: graphql.String},
		"slug":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"category":    &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"in_stock":    &graphql.Field{Type: graphql.Boolean},
		"images":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		"tags":        &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

// NewProductSchema builds the schema with a single `products` query field.
func NewProductSchema(list ProductLister) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"q":         &graphql.ArgumentConfig{Type: graphql.String},
					"category":  &graphql.ArgumentConfig{Type: graphql.String},
					"min_price": &graphql.ArgumentConfig{Type: graphql.Float},
					"max_price": &graphql.ArgumentConfig{Type: graphql.Float},
					"limit":     &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					args := ProductArgs{}
					if v, ok := p.Args["q"].(string); ok {
						args.Term = v
					}
					if v, ok := p.Args["category"].(string); ok {
						args.Category = v
					}
					if v, ok := p.Args["min_price"].(float64); ok {
						args.MinPrice = &v
					}
					if v, ok := p.Args["max_price"].(float64); ok {
						args.MaxPrice = &v
					}
					if v, ok := p.Args["limit"].(int); ok {
						args.Limit = int64(v)
					}
					return list(p.Context, args)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
