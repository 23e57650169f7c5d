package order

import (
	"time"

	"belanja-be/internal/payment"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// OrderItem is an immutable line snapshot captured at checkout. It is never
// re-read from the catalog, so later price or stock changes cannot alter a
// historical order.
type OrderItem struct {
	ProductID       string   `json:"productId"`
	Name            string   `json:"name"`
	UnitPrice       int64    `json:"unitPrice"`
	DiscountPercent int      `json:"discountPercent"`
	Quantity        int      `json:"quantity"`
	Images          []string `json:"images"`
	LineTotal       int64    `json:"lineTotal"`
}

// Address is the shipping destination snapshot stored with the order.
type Address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order is the immutable checkout record. Only Status may change after
// creation; orders are never deleted.
type Order struct {
	ID              string
	Number          string
	UserID          uint
	Items           []OrderItem
	Subtotal        int64
	ShippingCost    int64
	Total           int64
	ShippingMethod  string
	ShippingAddress Address
	PaymentDetails  payment.Sanitized
	PaymentIntentID *string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CreateInput struct {
	ShippingAddress Address
	PaymentDetails  payment.Details
	ShippingMethod  string
}

// CreateResult pairs the created order with the gateway client secret the
// frontend needs to complete authorization.
type CreateResult struct {
	Order        *Order
	ClientSecret string
}

// CheckoutLine is a cart row joined with current product data, read inside
// the checkout transaction.
type CheckoutLine struct {
	ProductID       string
	Name            string
	Price           int64
	DiscountPercent int
	Stock           int
	Quantity        int
	Images          []string
}
