package domain

import "github.com/shopspring/decimal"

// CheckoutLineItem позиция корзины в том виде, в котором ее прислал клиент.
// Description и Metadata передаются провайдеру как есть.
type CheckoutLineItem struct {
	ProductID   int64
	Name        string
	Size        string
	Quantity    int
	UnitPrice   decimal.Decimal
	ImageURL    string
	Description string
	Metadata    map[string]string
}

// PaymentSessionParams параметры создания сессии оплаты у платежного провайдера.
type PaymentSessionParams struct {
	CustomerEmail string
	Currency      string
	Items         []CheckoutLineItem
	Shipping      decimal.Decimal
	StoreCredit   decimal.Decimal
	Metadata      map[string]string
}

type ProviderPaymentStatus string

const (
	ProviderPaymentPaid              ProviderPaymentStatus = "paid"
	ProviderPaymentUnpaid            ProviderPaymentStatus = "unpaid"
	ProviderPaymentNoPaymentRequired ProviderPaymentStatus = "no_payment_required"
)

// PaymentLineItem позиция оплаченной сессии. Суммы в основных единицах валюты.
type PaymentLineItem struct {
	Description     string
	Name            string
	Quantity        int
	UnitAmount      decimal.Decimal
	AmountSubtotal  decimal.Decimal
	AmountTotal     decimal.Decimal
	PriceMetadata   map[string]string
	ProductMetadata map[string]string
}

// PaymentSession сессия оплаты в представлении провайдера.
type PaymentSession struct {
	ID              string
	URL             string
	Currency        string
	PaymentStatus   ProviderPaymentStatus
	PaymentIntentID string
	AmountSubtotal  decimal.Decimal
	AmountShipping  decimal.Decimal
	AmountDiscount  decimal.Decimal
	AmountTotal     decimal.Decimal
	CustomerEmail   string
	CustomerAddress *Address
	// IntentAddress адрес доставки, указанный на уровне платежа. Используется, если в CustomerAddress пусто.
	IntentAddress   *Address
	Metadata        map[string]string
	LineItems       []PaymentLineItem
}

// ShippingAddress возвращает адрес покупателя или, если его нет, адрес из платежа.
func (s *PaymentSession) ShippingAddress() Address {
	if s.CustomerAddress != nil && s.CustomerAddress.Line1 != "" {
		return *s.CustomerAddress
	}
	if s.IntentAddress != nil {
		return *s.IntentAddress
	}
	return Address{}
}

type Refund struct {
	ID     string
	Amount decimal.Decimal
	Status string
}

type WebhookEventType string

const (
	EventCheckoutCompleted     WebhookEventType = "checkout.session.completed"
	EventCheckoutExpired       WebhookEventType = "checkout.session.expired"
	EventAsyncPaymentSucceeded WebhookEventType = "checkout.session.async_payment_succeeded"
	EventAsyncPaymentFailed    WebhookEventType = "checkout.session.async_payment_failed"
)

// WebhookEvent проверенное событие провайдера. SessionID заполнен для событий checkout-сессий.
type WebhookEvent struct {
	ID        string
	Type      WebhookEventType
	SessionID string
}
