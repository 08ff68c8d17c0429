package api

import (
	"time"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/google/uuid"
)

type AddressParams struct {
	Name       string `json:"name"       binding:"max_bytes=255"`
	Line1      string `json:"line1"      binding:"max_bytes=255"`
	Line2      string `json:"line2"      binding:"max_bytes=255"`
	City       string `json:"city"       binding:"max_bytes=128"`
	State      string `json:"state"      binding:"max_bytes=64"`
	PostalCode string `json:"postalCode" binding:"max_bytes=32"`
	Country    string `json:"country"    binding:"omitempty,len=2"`
	Phone      string `json:"phone"      binding:"max_bytes=32"`
}

func (a AddressParams) toDomain() domain.Address {
	return domain.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

type AddressResponse struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func newAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse(a)
}

type OrderItemResponse struct {
	ProductID       int64   `json:"productId"`
	Name            string  `json:"name"`
	Size            string  `json:"size"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

type OrderResponse struct {
	ID              uuid.UUID              `json:"id"`
	CreatedAt       time.Time              `json:"createdAt"`
	Status          domain.OrderStatusType `json:"status"`
	Email           string                 `json:"email"`
	Currency        string                 `json:"currency"`
	Subtotal        float64                `json:"subtotal"`
	Shipping        float64                `json:"shipping"`
	CreditApplied   float64                `json:"creditApplied"`
	Total           float64                `json:"total"`
	ShippingAddress AddressResponse        `json:"shippingAddress"`
	CarrierCode     string                 `json:"carrierCode,omitempty"`
	TrackingNumber  string                 `json:"trackingNumber,omitempty"`
	LabelURL        string                 `json:"labelUrl,omitempty"`
	Items           []OrderItemResponse    `json:"items"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Size:            item.Size,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice.InexactFloat64(),
			DiscountedPrice: item.DiscountedPrice.InexactFloat64(),
		}
	}
	return OrderResponse{
		ID:              order.ID,
		CreatedAt:       order.CreatedAt,
		Status:          order.Status,
		Email:           order.Email,
		Currency:        order.Currency,
		Subtotal:        order.Subtotal.InexactFloat64(),
		Shipping:        order.Shipping.InexactFloat64(),
		CreditApplied:   order.CreditApplied.InexactFloat64(),
		Total:           order.Total.InexactFloat64(),
		ShippingAddress: newAddressResponse(order.ShippingAddress),
		CarrierCode:     order.CarrierCode,
		TrackingNumber:  order.TrackingNumber,
		LabelURL:        order.LabelURL,
		Items:           items,
	}
}

type RateResponse struct {
	ServiceName string  `json:"serviceName"`
	ServiceCode string  `json:"serviceCode"`
	Cost        float64 `json:"cost"`
}
