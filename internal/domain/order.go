package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uint
	UserID          int
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          string
	OrderDate       time.Time
	ShippingAddress ShippingAddress
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem carries the price at the time the order was placed. It is never
// refreshed from the product service.
type OrderItem struct {
	ProductID int
	Quantity  int
	Price     decimal.Decimal
}

type ShippingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)
