package repoargs

import (
	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	ID                uuid.UUID
	UserID            int64
	CheckoutSessionID string
	Email             string
	Status            domain.OrderStatusType
	ShippingAddress   domain.Address
	Currency          string
	Subtotal          decimal.Decimal
	Shipping          decimal.Decimal
	CreditApplied     decimal.Decimal
	Total             decimal.Decimal
	PaymentIntentID   string
}

type CreateOrderItem struct {
	ProductID       int64
	Name            string
	Size            string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountedPrice decimal.Decimal
}

type SetLabel struct {
	TrackingNumber string
	CarrierCode    string
	LabelURL       string
}
