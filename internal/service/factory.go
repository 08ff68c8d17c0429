package service

import (
	"fmt"

	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	Ledger       *StoreCreditLedger
	Checkout     *CheckoutService
	Materializer *OrderMaterializer
	Webhooks     *WebhookDispatcher
	Commission   *CommissionService
	Fulfillment  *FulfillmentService
	Refund       *RefundService
	Orders       *OrderService
}

type FactoryArgs struct {
	UOW         uow.UOW
	Payment     PaymentProvider
	Verifier    EventVerifier
	Deduper     EventDeduper
	Shipping    ShippingProvider
	Notifier    Notifier
	Tasks       TaskRunner
	Currency    string
	Fulfillment FulfillmentConfig
	Logger      *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	ledger, err := NewStoreCreditLedger(args.UOW, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	fulfillment, err := NewFulfillmentService(args.UOW, args.Shipping, args.Notifier, args.Fulfillment, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	checkout, err := NewCheckoutService(args.UOW, ledger, args.Payment, fulfillment, args.Currency, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	commission := NewCommissionService(args.UOW, args.Logger)

	materializer, err := NewOrderMaterializer(MaterializerArgs{
		UOW:         args.UOW,
		Ledger:      ledger,
		Payment:     args.Payment,
		Commission:  commission,
		Fulfillment: fulfillment,
		Notifier:    args.Notifier,
		Tasks:       args.Tasks,
		Logger:      args.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	refund, err := NewRefundService(args.UOW, args.Payment, args.Notifier, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	orders, err := NewOrderService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	return &AppServices{
		Ledger:       ledger,
		Checkout:     checkout,
		Materializer: materializer,
		Webhooks:     NewWebhookDispatcher(args.Verifier, materializer, args.Deduper, args.Logger),
		Commission:   commission,
		Fulfillment:  fulfillment,
		Refund:       refund,
		Orders:       orders,
	}, nil
}
