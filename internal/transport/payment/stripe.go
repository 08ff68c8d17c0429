// Package payment реализует платежного провайдера поверх Stripe Checkout.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const ProviderName = "stripe"

const (
	shippingDisplayName = "Standard shipping"
	freeShippingName    = "Free shipping"
	storeCreditCoupon   = "Store credit"
	shippingRateType    = "fixed_amount"
)

var defaultAllowedCountries = []string{"US"}

type StripeConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
	// AllowedCountries страны, в которые провайдер разрешит ввести адрес доставки. По умолчанию только US.
	AllowedCountries []string
}

// StripeProvider создает checkout-сессии, купоны на store credit и возвраты.
type StripeProvider struct {
	api              *client.API
	successURL       string
	cancelURL        string
	allowedCountries []string
	l                *logrus.Entry
}

// NewStripe создает провайдера. backends можно передать nil, тогда используются стандартные бэкенды stripe-go.
func NewStripe(conf StripeConfig, backends *stripe.Backends, l *logrus.Logger) *StripeProvider {
	countries := conf.AllowedCountries
	if len(countries) == 0 {
		countries = defaultAllowedCountries
	}
	return &StripeProvider{
		api:              client.New(conf.SecretKey, backends),
		successURL:       conf.SuccessURL,
		cancelURL:        conf.CancelURL,
		allowedCountries: countries,
		l: l.WithFields(logrus.Fields{
			"component": "payment",
			"module":    "stripe",
		}),
	}
}

// CreateCheckoutSession создает сессию оплаты. Store credit применяется одноразовым купоном на сумму,
// цены позиций остаются каталожными.
func (p *StripeProvider) CreateCheckoutSession(
	ctx context.Context,
	params domain.PaymentSessionParams,
) (*domain.PaymentSession, error) {
	currency := strings.ToLower(params.Currency)

	sp := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
		LineItems:  p.lineItems(params.Items, currency),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(p.allowedCountries),
		},
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{p.shippingOption(params.Shipping, currency)},
		Metadata:        params.Metadata,
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: params.Metadata,
		},
	}
	sp.Context = ctx
	if params.CustomerEmail != "" {
		sp.CustomerEmail = stripe.String(params.CustomerEmail)
	}

	if params.StoreCredit.IsPositive() {
		couponID, err := p.createCreditCoupon(ctx, params.StoreCredit, currency)
		if err != nil {
			return nil, err
		}
		sp.Discounts = []*stripe.CheckoutSessionDiscountParams{{Coupon: stripe.String(couponID)}}
	}

	s, err := p.api.CheckoutSessions.New(sp)
	if err != nil {
		return nil, providerError("create checkout session", err)
	}

	p.l.WithFields(logrus.Fields{
		"sessionID": s.ID,
		"items":     len(params.Items),
	}).Debug("checkout session created")

	return toPaymentSession(s), nil
}

// GetCheckoutSession возвращает сессию с раскрытыми позициями (вместе с товарами) и платежом.
func (p *StripeProvider) GetCheckoutSession(ctx context.Context, id string) (*domain.PaymentSession, error) {
	sp := &stripe.CheckoutSessionParams{}
	sp.Context = ctx
	sp.AddExpand("line_items.data.price.product")
	sp.AddExpand("payment_intent")

	s, err := p.api.CheckoutSessions.Get(id, sp)
	if err != nil {
		return nil, providerError(fmt.Sprintf("get checkout session `%s`", id), err)
	}
	return toPaymentSession(s), nil
}

// CreateRefund возвращает amount по платежу. Нулевая сумма означает полный возврат.
func (p *StripeProvider) CreateRefund(
	ctx context.Context,
	paymentIntentID string,
	amount decimal.Decimal,
) (*domain.Refund, error) {
	rp := &stripe.RefundParams{PaymentIntent: stripe.String(paymentIntentID)}
	rp.Context = ctx
	if amount.IsPositive() {
		// валюта платежа здесь неизвестна, суммы в магазине только в двухзнаковых валютах.
		rp.Amount = stripe.Int64(toMinor(amount, ""))
	}

	r, err := p.api.Refunds.New(rp)
	if err != nil {
		return nil, providerError(fmt.Sprintf("refund payment `%s`", paymentIntentID), err)
	}

	return &domain.Refund{
		ID:     r.ID,
		Amount: fromMinor(r.Amount, string(r.Currency)),
		Status: string(r.Status),
	}, nil
}

func (p *StripeProvider) createCreditCoupon(ctx context.Context, credit decimal.Decimal, currency string) (string, error) {
	cp := &stripe.CouponParams{
		AmountOff:      stripe.Int64(toMinor(credit, currency)),
		Currency:       stripe.String(currency),
		Duration:       stripe.String(string(stripe.CouponDurationOnce)),
		MaxRedemptions: stripe.Int64(1),
		Name:           stripe.String(storeCreditCoupon),
	}
	cp.Context = ctx

	c, err := p.api.Coupons.New(cp)
	if err != nil {
		return "", providerError("create store credit coupon", err)
	}
	return c.ID, nil
}

func (p *StripeProvider) lineItems(items []domain.CheckoutLineItem, currency string) []*stripe.CheckoutSessionLineItemParams {
	result := make([]*stripe.CheckoutSessionLineItemParams, len(items))
	for i, item := range items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(item.Name),
			Metadata: item.Metadata,
		}
		if item.Description != "" {
			product.Description = stripe.String(item.Description)
		}
		if item.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{item.ImageURL})
		}
		result[i] = &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(item.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(toMinor(item.UnitPrice, currency)),
				ProductData: product,
			},
		}
	}
	return result
}

func (p *StripeProvider) shippingOption(amount decimal.Decimal, currency string) *stripe.CheckoutSessionShippingOptionParams {
	name := shippingDisplayName
	if !amount.IsPositive() {
		name = freeShippingName
	}
	return &stripe.CheckoutSessionShippingOptionParams{
		ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
			DisplayName: stripe.String(name),
			Type:        stripe.String(shippingRateType),
			FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
				Amount:   stripe.Int64(toMinor(amount, currency)),
				Currency: stripe.String(currency),
			},
		},
	}
}

func toPaymentSession(s *stripe.CheckoutSession) *domain.PaymentSession {
	currency := string(s.Currency)
	ps := domain.PaymentSession{
		ID:             s.ID,
		URL:            s.URL,
		Currency:       currency,
		PaymentStatus:  domain.ProviderPaymentStatus(s.PaymentStatus),
		AmountSubtotal: fromMinor(s.AmountSubtotal, currency),
		AmountTotal:    fromMinor(s.AmountTotal, currency),
		CustomerEmail:  s.CustomerEmail,
		Metadata:       s.Metadata,
	}
	if s.TotalDetails != nil {
		ps.AmountShipping = fromMinor(s.TotalDetails.AmountShipping, currency)
		ps.AmountDiscount = fromMinor(s.TotalDetails.AmountDiscount, currency)
	}

	if s.CustomerDetails != nil {
		if ps.CustomerEmail == "" {
			ps.CustomerEmail = s.CustomerDetails.Email
		}
		ps.CustomerAddress = toAddress(s.CustomerDetails.Address, s.CustomerDetails.Name, s.CustomerDetails.Phone)
	}
	if s.ShippingDetails != nil && s.ShippingDetails.Address != nil {
		// адрес доставки точнее платежного адреса покупателя
		ps.CustomerAddress = toAddress(s.ShippingDetails.Address, s.ShippingDetails.Name, "")
	}

	if s.PaymentIntent != nil {
		ps.PaymentIntentID = s.PaymentIntent.ID
		if s.PaymentIntent.Shipping != nil {
			ps.IntentAddress = toAddress(s.PaymentIntent.Shipping.Address,
				s.PaymentIntent.Shipping.Name, s.PaymentIntent.Shipping.Phone)
		}
	}

	if s.LineItems != nil {
		ps.LineItems = make([]domain.PaymentLineItem, 0, len(s.LineItems.Data))
		for _, li := range s.LineItems.Data {
			ps.LineItems = append(ps.LineItems, toLineItem(li, currency))
		}
	}
	return &ps
}

func toLineItem(li *stripe.LineItem, currency string) domain.PaymentLineItem {
	item := domain.PaymentLineItem{
		Description:    li.Description,
		Name:           li.Description,
		Quantity:       int(li.Quantity),
		AmountSubtotal: fromMinor(li.AmountSubtotal, currency),
		AmountTotal:    fromMinor(li.AmountTotal, currency),
	}
	if li.Price != nil {
		item.UnitAmount = fromMinor(li.Price.UnitAmount, currency)
		item.PriceMetadata = li.Price.Metadata
		if li.Price.Product != nil {
			item.ProductMetadata = li.Price.Product.Metadata
			if li.Price.Product.Name != "" {
				item.Name = li.Price.Product.Name
			}
			if li.Price.Product.Description != "" {
				item.Description = li.Price.Product.Description
			}
		}
	}
	return item
}

func toAddress(a *stripe.Address, name, phone string) *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		Name:       name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      phone,
	}
}

// providerError оборачивает ошибку stripe-go в *domain.ProviderError с http статусом и сообщением Stripe.
func providerError(op string, err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		msg := sErr.Msg
		if sErr.Code != "" {
			msg = string(sErr.Code) + ": " + msg
		}
		return fmt.Errorf("%s: %w", op, domain.NewProviderError(ProviderName, sErr.HTTPStatusCode, msg, err))
	}
	return fmt.Errorf("%s: %w", op, domain.NewProviderError(ProviderName, 0, err.Error(), err))
}
