package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	ProviderTimeout       = 15 * time.Second
	WebhookTimeout        = 20 * time.Second
)

const (
	WebhookRoute = "/payment/webhook"

	RouteGroup         = "/api"
	CheckoutRoute      = "/checkout"
	CreditRoute        = "/user/credit"
	OrdersRoute        = "/user/orders"
	OrderRoute         = "/user/orders/:id"
	OrderCancelRoute   = "/user/orders/:id/cancel"
	ShippingRatesRoute = "/shipping/rates"

	AdminGroup               = "/admin"
	AdminRefundRoute         = "/orders/:id/refund"
	AdminFulfillmentRoute    = "/orders/:id/fulfillment"
	AdminLabelRoute          = "/orders/:id/label"
	AdminShipRoute           = "/orders/:id/ship"
	AdminDeliverRoute        = "/orders/:id/deliver"
	AdminCarriersRoute       = "/shipping/carriers"
	AdminWarehousesRoute     = "/shipping/warehouses"
	AdminProviderOrdersRoute = "/shipping/orders"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	Production         bool
	JWTSecretKey       []byte
	CheckoutService    CheckoutServicer
	WebhookService     WebhookServicer
	CreditService      CreditServicer
	OrderService       OrderServicer
	FulfillmentService FulfillmentServicer
	RefundService      RefundServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors(args.Production))

	webhookHandler := NewWebhookHandler(args.WebhookService)
	checkoutHandler := NewCheckoutHandler(args.CheckoutService)
	creditHandler := NewCreditHandler(args.CreditService)
	ordersHandler := NewOrdersHandler(args.OrderService, args.FulfillmentService)
	shippingHandler := NewShippingHandler(args.FulfillmentService)
	adminHandler := NewAdminHandler(args.RefundService, args.FulfillmentService)

	// вебхук авторизуется подписью провайдера, а не токеном.
	r.POST(WebhookRoute, webhookHandler.Handle)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(CheckoutRoute, checkoutHandler.Create)
	api.GET(CreditRoute, creditHandler.Index)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)
	api.GET(ShippingRatesRoute, shippingHandler.Rates)

	admin := api.Group(AdminGroup)
	admin.Use(middlewares.AdminRequired())
	admin.POST(AdminRefundRoute, adminHandler.Refund)
	admin.POST(AdminFulfillmentRoute, adminHandler.Fulfillment)
	admin.POST(AdminLabelRoute, adminHandler.Label)
	admin.POST(AdminShipRoute, adminHandler.Ship)
	admin.POST(AdminDeliverRoute, adminHandler.Deliver)
	admin.GET(AdminCarriersRoute, adminHandler.Carriers)
	admin.GET(AdminWarehousesRoute, adminHandler.Warehouses)
	admin.GET(AdminProviderOrdersRoute, adminHandler.ProviderOrders)
	return r, nil
}
