package controllers

import (
	"context"
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/newtonbotics/labstore/app/services"
	"github.com/newtonbotics/labstore/pkg/bind"
	"github.com/newtonbotics/labstore/pkg/graphql"
	"github.com/newtonbotics/labstore/pkg/response"
)

// GraphQLController serves the read-only product query surface.
type GraphQLController struct {
	schema gql.Schema
}

// NewGraphQLController builds the product schema on top of the product
// service's listing path, so REST and GraphQL share the query builder,
// cache, and shape adaptation.
func NewGraphQLController(products *services.ProductService) (*GraphQLController, error) {
	schema, err := graphql.NewProductSchema(func(ctx context.Context, args graphql.ProductArgs) ([]map[string]interface{}, error) {
		return products.List(ctx, services.ProductQuery{
			Term:     args.Term,
			Category: args.Category,
			MinPrice: args.MinPrice,
			MaxPrice: args.MaxPrice,
			Limit:    args.Limit,
		})
	})
	if err != nil {
		return nil, err
	}
	return &GraphQLController{schema: schema}, nil
}

type graphQLRequest struct {
	Query         string                 `json:"query" validate:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Query handles POST /api/graphql. Query-level errors ride inside the
// GraphQL result envelope, per convention, with a 200 status.
func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest

	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	result := gql.Do(gql.Params{
		Schema:         c.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})

	response.Success(w, result)
}
