package services

import (
	"context"
	"errors"

	"github.com/newtonbotics/labstore/app/models"
	"github.com/newtonbotics/labstore/app/repositories"
	"github.com/newtonbotics/labstore/pkg/event"
	"github.com/newtonbotics/labstore/pkg/logger"
	"github.com/newtonbotics/labstore/pkg/metrics"
)

// ErrNoItems rejects orders without a single line item. Checked after
// structural validation, before any store call.
var ErrNoItems = errors.New("order must contain at least one item")

// OrderCreatedEvent is the name fired through pkg/event after a successful
// order insert; the websocket feed listens on it.
const OrderCreatedEvent = "order.created"

// OrderCreated is the payload broadcast for each stored order.
type OrderCreated struct {
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// OrderItemInput is one incoming order line. The product_id is accepted as
// given; no lookup against the product collection happens at intake.
// Price is a pointer so an omitted field fails required while a supplied
// zero stays legal.
type OrderItemInput struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title"      validate:"required"`
	Price     *float64 `json:"price"      validate:"required,gte=0"`
	Quantity  int      `json:"quantity"   validate:"gte=1"`
}

// CustomerInput is the incoming contact/shipping block.
type CustomerInput struct {
	FullName     string `json:"full_name"     validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	Phone        string `json:"phone"         validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"          validate:"required"`
	State        string `json:"state"         validate:"required"`
	PostalCode   string `json:"postal_code"   validate:"required"`
	Country      string `json:"country"       validate:"required"`
}

// CreateOrderInput is the POST /api/orders payload. The amount fields must
// be present (pointers, so a supplied zero passes) but are accepted as
// given; whether total equals subtotal + shipping is deliberately not
// checked. Caller-supplied payment_method/status fields, if any, are
// ignored: the JSON decoder has no target for them here and the canonical
// values are stamped in Create.
type CreateOrderInput struct {
	Items    []OrderItemInput `json:"items"`
	Customer CustomerInput    `json:"customer"`
	Notes    string           `json:"notes"`
	Subtotal *float64         `json:"subtotal" validate:"required,gte=0"`
	Shipping *float64         `json:"shipping" validate:"required,gte=0"`
	Total    *float64         `json:"total"    validate:"required,gte=0"`
}

// amount unwraps a validated amount pointer.
func amount(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// toOrder maps the validated input onto the canonical order entity,
// stamping the fixed payment method and initial status.
func (in CreateOrderInput) toOrder() models.Order {
	items := make([]models.OrderItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = models.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     amount(it.Price),
			Quantity:  it.Quantity,
		}
	}

	return models.Order{
		Items: items,
		Customer: models.Customer{
			FullName:     in.Customer.FullName,
			Email:        in.Customer.Email,
			Phone:        in.Customer.Phone,
			AddressLine1: in.Customer.AddressLine1,
			AddressLine2: in.Customer.AddressLine2,
			City:         in.Customer.City,
			State:        in.Customer.State,
			PostalCode:   in.Customer.PostalCode,
			Country:      in.Customer.Country,
		},
		Notes:         in.Notes,
		Subtotal:      amount(in.Subtotal),
		Shipping:      amount(in.Shipping),
		Total:         amount(in.Total),
		PaymentMethod: models.PaymentMethodCOD,
		Status:        models.StatusReceived,
	}
}

// OrderService owns pay-on-delivery order intake.
type OrderService struct {
	repo *repositories.OrderRepository
}

func NewOrderService(repo *repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create stores a new order and returns its identifier and status.
// The input must already have passed structural validation; Create only
// enforces the non-empty items invariant before touching the store.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (orderID, status string, err error) {
	if len(in.Items) == 0 {
		return "", "", ErrNoItems
	}

	order := in.toOrder()

	orderID, err = s.repo.Create(ctx, order)
	if err != nil {
		return "", "", err
	}

	metrics.OrdersCreated.Inc()
	logger.WithCtx(ctx).Info("order created",
		"order_id", orderID,
		"items", len(order.Items),
		"total", order.Total,
	)

	event.Fire(OrderCreatedEvent, OrderCreated{
		OrderID:   orderID,
		Status:    order.Status,
		Total:     order.Total,
		ItemCount: len(order.Items),
	})

	return orderID, order.Status, nil
}
