package controllers

import (
	"errors"
	"net/http"

	"github.com/newtonbotics/labstore/app/services"
	"github.com/newtonbotics/labstore/pkg/bind"
	"github.com/newtonbotics/labstore/pkg/logger"
	"github.com/newtonbotics/labstore/pkg/response"
)

// OrderController serves pay-on-delivery order intake.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Create handles POST /api/orders.
//
// Error order matters: structural validation (422 naming the offending
// fields) runs before the empty-items check (400 with a fixed message),
// and the store is only reached once both pass.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateOrderInput

	errs, err := bind.JSON(r, &input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	orderID, status, err := c.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrNoItems) {
			response.Error(w, http.StatusBadRequest, "Order must contain at least one item")
			return
		}
		logger.WithCtx(r.Context()).Error("order intake failed", "error", err)
		response.Error(w, http.StatusInternalServerError, truncateError(err))
		return
	}

	response.Success(w, map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
}
