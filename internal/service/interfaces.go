package service

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	DecrementStoreCredit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	IncrementStoreCredit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	MarkReferralValid(ctx context.Context, userID int64) (bool, error)
	IncrementReferralCount(ctx context.Context, userID int64) (*domain.User, error)
	UpdateTier(ctx context.Context, userID int64, tier domain.UserTier) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	DecrementSizeQuantity(ctx context.Context, productID int64, size string, quantity int) (*domain.Product, error)
}

type CheckoutSessionRepository interface {
	Create(ctx context.Context, args repoargs.CreateCheckoutSession) (*domain.CheckoutSession, error)
	FindByID(ctx context.Context, id string) (*domain.CheckoutSession, error)
	MarkPaid(ctx context.Context, id string) (*domain.CheckoutSession, error)
	MarkFailed(ctx context.Context, id string) (*domain.CheckoutSession, error)
	LinkOrder(ctx context.Context, id string, orderID uuid.UUID) error
	ReleaseReservation(ctx context.Context, id string) (*domain.CheckoutSession, error)
	RetakeReservation(ctx context.Context, id string) (*domain.CheckoutSession, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	CreateItems(ctx context.Context, orderID uuid.UUID, items []repoargs.CreateOrderItem) ([]domain.OrderItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateStatus(
		ctx context.Context,
		id uuid.UUID,
		from []domain.OrderStatusType,
		to domain.OrderStatusType,
	) (*domain.Order, error)
	SetShipment(ctx context.Context, id uuid.UUID, shipstationOrderID string) error
	SetLabel(ctx context.Context, id uuid.UUID, args repoargs.SetLabel) error
}

type CommissionRepository interface {
	Create(ctx context.Context, args repoargs.CreateCommission) (*domain.Commission, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Commission, error)
}

// PaymentProvider платежный провайдер с hosted checkout.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, params domain.PaymentSessionParams) (*domain.PaymentSession, error)
	// GetCheckoutSession возвращает сессию с раскрытыми позициями, адресом покупателя и платежом.
	GetCheckoutSession(ctx context.Context, id string) (*domain.PaymentSession, error)
	// CreateRefund возвращает amount по платежу. Нулевой amount означает полный возврат.
	CreateRefund(ctx context.Context, paymentIntentID string, amount decimal.Decimal) (*domain.Refund, error)
}

// EventVerifier проверяет подпись вебхука и декодирует конверт события.
type EventVerifier interface {
	VerifyEvent(payload []byte, signature string) (*domain.WebhookEvent, error)
}

// EventDeduper быстрый фильтр повторных доставок одного и того же события.
type EventDeduper interface {
	Acquire(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}

type ShippingProvider interface {
	CreateOrder(ctx context.Context, req domain.ShipmentOrderRequest) (*domain.ShipmentOrder, error)
	GetRates(ctx context.Context, query domain.RateQuery) ([]domain.ShippingRate, error)
	CreateLabel(ctx context.Context, req domain.LabelRequest) (*domain.ShipmentLabel, error)
	MarkShipped(ctx context.Context, req domain.MarkShippedRequest) error
	ListOrders(ctx context.Context, query domain.ShipmentOrderQuery) (*domain.ShipmentOrderList, error)
	ListCarriers(ctx context.Context) ([]domain.Carrier, error)
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
}

// ShippingQuoter считает стоимость доставки для корзины. Всегда возвращает сумму.
type ShippingQuoter interface {
	QuoteShipping(ctx context.Context, destination domain.Address, itemCount int) decimal.Decimal
}

// Notifier отправляет письма покупателю. Методы не блокируют вызывающего.
type Notifier interface {
	OrderPlaced(order domain.Order)
	OrderDelivered(order domain.Order)
	OrderCancelled(order domain.Order)
	OrderRefunded(order domain.Order, amount decimal.Decimal)
}

// TaskRunner запускает фоновую задачу вне критического пути запроса.
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context) error)
}

// CommissionApplier начисляет комиссию рефереру. Ошибки не возвращает, только логирует.
type CommissionApplier interface {
	Apply(ctx context.Context, order domain.Order)
}

// FulfillmentPusher передает оплаченный заказ в службу доставки.
type FulfillmentPusher interface {
	Push(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
}

// SessionHandler обработчик переходов checkout-сессии.
type SessionHandler interface {
	Complete(ctx context.Context, sessionID string) (uuid.UUID, error)
	Fail(ctx context.Context, sessionID string) error
}
