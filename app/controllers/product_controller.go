package controllers

import (
	"net/http"
	"strconv"

	"github.com/newtonbotics/labstore/app/services"
	"github.com/newtonbotics/labstore/pkg/logger"
	"github.com/newtonbotics/labstore/pkg/response"
)

// ProductController serves the catalogue listing and the demo seed.
type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /api/products?q=&category=&min_price=&max_price=&limit=.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	query, errs := parseProductQuery(r)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	items, err := c.service.List(r.Context(), query)
	if err != nil {
		logger.WithCtx(r.Context()).Error("product listing failed", "error", err)
		response.Error(w, http.StatusInternalServerError, truncateError(err))
		return
	}

	response.Success(w, map[string]interface{}{"items": items})
}

// Seed handles GET /api/products/sample-seed.
func (c *ProductController) Seed(w http.ResponseWriter, r *http.Request) {
	inserted, alreadySeeded, err := c.service.Seed(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("product seed failed", "error", err)
		response.Error(w, http.StatusInternalServerError, truncateError(err))
		return
	}

	if alreadySeeded {
		response.Success(w, map[string]interface{}{
			"inserted": 0,
			"message":  "Products already exist",
		})
		return
	}

	response.Success(w, map[string]interface{}{"inserted": inserted})
}

// parseProductQuery maps query string parameters onto a ProductQuery,
// collecting a field→message map for unparseable numbers.
func parseProductQuery(r *http.Request) (services.ProductQuery, map[string]string) {
	q := services.ProductQuery{
		Term:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	errs := map[string]string{}

	if raw := r.URL.Query().Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs["min_price"] = "The min_price field must be a number."
		} else {
			q.MinPrice = &v
		}
	}

	if raw := r.URL.Query().Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs["max_price"] = "The max_price field must be a number."
		} else {
			q.MaxPrice = &v
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs["limit"] = "The limit field must be an integer."
		} else {
			q.Limit = v
		}
	}

	return q, errs
}
