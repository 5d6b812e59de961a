package models

// Payment methods. The storefront only takes pay-on-delivery orders; the
// marker is stamped server-side regardless of what the caller sent.
const PaymentMethodCOD = "cod"

// Order lifecycle states. New orders are always created as StatusReceived;
// the remaining states belong to a fulfilment flow outside this service.
const (
	StatusReceived   = "received"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderItem is one line of an order. The product_id is accepted as given;
// no referential check against the product collection is performed.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title"      json:"title"`
	Price     float64 `bson:"price"      json:"price"`
	Quantity  int     `bson:"quantity"   json:"quantity"`
}

// Customer holds the contact and shipping block embedded in an order.
type Customer struct {
	FullName     string `bson:"full_name"               json:"full_name"`
	Email        string `bson:"email"                   json:"email"`
	Phone        string `bson:"phone"                   json:"phone"`
	AddressLine1 string `bson:"address_line1"           json:"address_line1"`
	AddressLine2 string `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         string `bson:"city"                    json:"city"`
	State        string `bson:"state"                   json:"state"`
	PostalCode   string `bson:"postal_code"             json:"postal_code"`
	Country      string `bson:"country"                 json:"country"`
}

// Order is the pay-on-delivery order entity, stored in the "order"
// collection. Amounts are stored as supplied by the caller; the service
// does not recompute or reconcile them against the items.
type Order struct {
	Items         []OrderItem `bson:"items"           json:"items"`
	Customer      Customer    `bson:"customer"        json:"customer"`
	Notes         string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Subtotal      float64     `bson:"subtotal"        json:"subtotal"`
	Shipping      float64     `bson:"shipping"        json:"shipping"`
	Total         float64     `bson:"total"           json:"total"`
	PaymentMethod string      `bson:"payment_method"  json:"payment_method"`
	Status        string      `bson:"status"          json:"status"`
}
