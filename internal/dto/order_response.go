package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"ordersvc/internal/domain"
)

type OrderDTO struct {
	ID              uint               `json:"id"`
	UserID          int                `json:"userId"`
	Items           []OrderItemDTO     `json:"items"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Status          string             `json:"status"`
	OrderDate       time.Time          `json:"orderDate"`
	ShippingAddress ShippingAddressDTO `json:"shippingAddress"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type OrderItemDTO struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type ShippingAddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type EnrichedOrderDTO struct {
	ID              uint               `json:"id"`
	UserID          int                `json:"userId"`
	UserDetails     json.RawMessage    `json:"userDetails"`
	Items           []EnrichedItemDTO  `json:"items"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Status          string             `json:"status"`
	OrderDate       time.Time          `json:"orderDate"`
	ShippingAddress ShippingAddressDTO `json:"shippingAddress"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type EnrichedItemDTO struct {
	ProductID      int             `json:"productId"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	ProductDetails json.RawMessage `json:"productDetails"`
}

func OrderFromDomain(o domain.Order) OrderDTO {
	items := make([]OrderItemDTO, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}

	return OrderDTO{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		OrderDate:       o.OrderDate,
		ShippingAddress: shippingAddressFromDomain(o.ShippingAddress),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func EnrichedOrderFromDomain(eo *domain.EnrichedOrder) EnrichedOrderDTO {
	items := make([]EnrichedItemDTO, len(eo.Items))
	for i, it := range eo.Items {
		items[i] = EnrichedItemDTO{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			Price:          it.Price,
			ProductDetails: it.ProductDetails,
		}
	}

	return EnrichedOrderDTO{
		ID:              eo.ID,
		UserID:          eo.UserID,
		UserDetails:     eo.UserDetails,
		Items:           items,
		TotalAmount:     eo.TotalAmount,
		Status:          eo.Status,
		OrderDate:       eo.OrderDate,
		ShippingAddress: shippingAddressFromDomain(eo.ShippingAddress),
		CreatedAt:       eo.CreatedAt,
		UpdatedAt:       eo.UpdatedAt,
	}
}

func shippingAddressFromDomain(a domain.ShippingAddress) ShippingAddressDTO {
	return ShippingAddressDTO{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}
