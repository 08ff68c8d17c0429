package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutServicer interface {
	CreateSession(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutResult, error)
}

type WebhookServicer interface {
	Dispatch(ctx context.Context, payload []byte, signature string) error
}

type CreditServicer interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type OrderServicer interface {
	Get(ctx context.Context, orderID uuid.UUID, actor service.Actor) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type FulfillmentServicer interface {
	Push(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	Rates(ctx context.Context, destination domain.Address, itemCount int) ([]domain.ShippingRate, error)
	CreateLabel(ctx context.Context, orderID uuid.UUID, args service.LabelArgs) (*domain.Order, error)
	MarkShipped(ctx context.Context, orderID uuid.UUID, args service.ShipArgs) (*domain.Order, error)
	MarkDelivered(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	Cancel(ctx context.Context, orderID uuid.UUID, actor service.Actor) (*domain.Order, error)
	Carriers(ctx context.Context) ([]domain.Carrier, error)
	Warehouses(ctx context.Context) ([]domain.Warehouse, error)
	ProviderOrders(ctx context.Context, query domain.ShipmentOrderQuery) (*domain.ShipmentOrderList, error)
}

type RefundServicer interface {
	Refund(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*service.RefundResult, error)
}
