package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const labelURLPrefix = "data:application/pdf;base64,"

type FulfillmentConfig struct {
	CarrierCode         string
	FromPostalCode      string
	DefaultItemWeightOz float64
	FlatRate            decimal.Decimal
}

type LabelArgs struct {
	CarrierCode string
	ServiceCode string
	WeightOz    float64
	TestLabel   bool
}

type ShipArgs struct {
	CarrierCode    string
	TrackingNumber string
	NotifyCustomer bool
}

// FulfillmentService передает оплаченные заказы в службу доставки и ведет их статус отгрузки.
// Ошибки провайдера не повторяются автоматически.
type FulfillmentService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	shipping  ShippingProvider
	notifier  Notifier
	conf      FulfillmentConfig
	l         *logrus.Entry
}

func NewFulfillmentService(
	u uow.UOW,
	shipping ShippingProvider,
	notifier Notifier,
	conf FulfillmentConfig,
	l *logrus.Logger,
) (*FulfillmentService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &FulfillmentService{
		uow:       u,
		orderRepo: orderRepo,
		shipping:  shipping,
		notifier:  notifier,
		conf:      conf,
		l:         l.WithField("component", "fulfillment"),
	}, nil
}

// Push создает заказ в службе доставки и сохраняет его внешний id. Уже переданный заказ не передается
// повторно. Успешная передача переводит заказ PAID -> PROCESSING.
func (f *FulfillmentService) Push(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := f.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("pushing order %s: %w", orderID, err)
	}
	if order.ShipstationOrderID != "" {
		return order, nil
	}
	if !order.InStatus(domain.OrderStatusPaid, domain.OrderStatusProcessing) {
		return nil, fmt.Errorf("pushing order %s in status %s: %w", orderID, order.Status, domain.ErrStateConflict)
	}

	shipment, err := f.shipping.CreateOrder(ctx, f.shipmentRequest(order))
	if err != nil {
		return nil, fmt.Errorf("pushing order %s: %w", orderID, err)
	}

	err = f.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if err := repo.SetShipment(c, orderID, shipment.ProviderOrderID); err != nil {
			return err //nolint:wrapcheck
		}
		_, err = repo.UpdateStatus(c, orderID,
			[]domain.OrderStatusType{domain.OrderStatusPaid}, domain.OrderStatusProcessing)
		if err != nil && !errors.Is(err, domain.ErrStateConflict) {
			return err //nolint:wrapcheck
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving shipment of order %s: %w", orderID, err)
	}

	f.l.WithFields(logrus.Fields{
		"orderID":            orderID.String(),
		"shipstationOrderID": shipment.ProviderOrderID,
	}).Info("order pushed to fulfillment")

	return f.reload(ctx, orderID)
}

func (f *FulfillmentService) shipmentRequest(order *domain.Order) domain.ShipmentOrderRequest {
	items := make([]domain.ShipmentItem, len(order.Items))
	totalWeight := 0.0
	for i, item := range order.Items {
		items[i] = domain.ShipmentItem{
			SKU:       strconv.FormatInt(item.ProductID, 10) + "-" + item.Size,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.DiscountedPrice,
			WeightOz:  f.conf.DefaultItemWeightOz,
		}
		totalWeight += f.conf.DefaultItemWeightOz * float64(item.Quantity)
	}
	return domain.ShipmentOrderRequest{
		OrderNumber:    order.ID.String(),
		OrderKey:       order.ID.String(),
		OrderDate:      order.CreatedAt,
		CustomerEmail:  order.Email,
		BillTo:         order.ShippingAddress,
		ShipTo:         order.ShippingAddress,
		Items:          items,
		AmountPaid:     order.Total,
		ShippingAmount: order.Shipping,
		WeightOz:       totalWeight,
	}
}

// Rates возвращает тарифы настроенного перевозчика для посылки из itemCount единиц.
func (f *FulfillmentService) Rates(
	ctx context.Context,
	destination domain.Address,
	itemCount int,
) ([]domain.ShippingRate, error) {
	rates, err := f.shipping.GetRates(ctx, domain.RateQuery{
		CarrierCode:    f.conf.CarrierCode,
		FromPostalCode: f.conf.FromPostalCode,
		ToCity:         destination.City,
		ToState:        destination.State,
		ToPostalCode:   destination.PostalCode,
		ToCountry:      destination.Country,
		WeightOz:       f.conf.DefaultItemWeightOz * float64(itemCount),
	})
	if err != nil {
		return nil, fmt.Errorf("getting shipping rates: %w", err)
	}
	return rates, nil
}

// QuoteShipping возвращает самый дешевый тариф. Если провайдер недоступен или тарифов нет,
// возвращает фиксированную ставку.
func (f *FulfillmentService) QuoteShipping(
	ctx context.Context,
	destination domain.Address,
	itemCount int,
) decimal.Decimal {
	log := f.l.WithField("postalCode", destination.PostalCode)
	if destination.PostalCode == "" {
		return f.conf.FlatRate
	}
	rates, err := f.Rates(ctx, destination, itemCount)
	if err != nil {
		log.WithError(err).Warn("shipping quote failed, using flat rate")
		return f.conf.FlatRate
	}
	if len(rates) == 0 {
		log.Warn("no shipping rates returned, using flat rate")
		return f.conf.FlatRate
	}
	cheapest := rates[0].Total()
	for _, r := range rates[1:] {
		if r.Total().LessThan(cheapest) {
			cheapest = r.Total()
		}
	}
	return cheapest.Round(2) //nolint:mnd
}

// CreateLabel покупает этикетку, сохраняет трек-номер и ссылку на этикетку и переводит заказ в SHIPPED.
func (f *FulfillmentService) CreateLabel(ctx context.Context, orderID uuid.UUID, args LabelArgs) (*domain.Order, error) {
	order, err := f.shippableOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	carrier := defaultIfBlank(args.CarrierCode, f.conf.CarrierCode)
	weight := args.WeightOz
	if weight <= 0 {
		weight = f.orderWeight(order)
	}
	label, err := f.shipping.CreateLabel(ctx, domain.LabelRequest{
		ProviderOrderID: order.ShipstationOrderID,
		CarrierCode:     carrier,
		ServiceCode:     args.ServiceCode,
		ShipDate:        time.Now(),
		WeightOz:        weight,
		TestLabel:       args.TestLabel,
	})
	if err != nil {
		return nil, fmt.Errorf("creating label for order %s: %w", orderID, err)
	}

	labelURL := ""
	if label.LabelData != "" {
		labelURL = labelURLPrefix + label.LabelData
	}
	if err := f.markShippedTx(ctx, orderID, repoargs.SetLabel{
		TrackingNumber: label.TrackingNumber,
		CarrierCode:    carrier,
		LabelURL:       labelURL,
	}); err != nil {
		return nil, fmt.Errorf("saving label of order %s: %w", orderID, err)
	}

	f.l.WithFields(logrus.Fields{
		"orderID":  orderID.String(),
		"tracking": label.TrackingNumber,
	}).Info("shipping label created")

	return f.reload(ctx, orderID)
}

// MarkShipped отмечает заказ отгруженным у провайдера (этикетка куплена вне системы) и переводит его в SHIPPED.
func (f *FulfillmentService) MarkShipped(ctx context.Context, orderID uuid.UUID, args ShipArgs) (*domain.Order, error) {
	if args.TrackingNumber == "" {
		return nil, fmt.Errorf("marking shipped: empty tracking number: %w", domain.ErrValidation)
	}
	order, err := f.shippableOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("marking shipped: %w", err)
	}

	carrier := defaultIfBlank(args.CarrierCode, f.conf.CarrierCode)
	if err := f.shipping.MarkShipped(ctx, domain.MarkShippedRequest{
		ProviderOrderID: order.ShipstationOrderID,
		CarrierCode:     carrier,
		TrackingNumber:  args.TrackingNumber,
		ShipDate:        time.Now(),
		NotifyCustomer:  args.NotifyCustomer,
	}); err != nil {
		return nil, fmt.Errorf("marking order %s shipped: %w", orderID, err)
	}

	if err := f.markShippedTx(ctx, orderID, repoargs.SetLabel{
		TrackingNumber: args.TrackingNumber,
		CarrierCode:    carrier,
	}); err != nil {
		return nil, fmt.Errorf("saving shipment of order %s: %w", orderID, err)
	}
	return f.reload(ctx, orderID)
}

// MarkDelivered переводит заказ SHIPPED -> DELIVERED и отправляет письмо покупателю.
func (f *FulfillmentService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := f.orderRepo.UpdateStatus(ctx, orderID,
		[]domain.OrderStatusType{domain.OrderStatusShipped}, domain.OrderStatusDelivered)
	if err != nil {
		return nil, fmt.Errorf("marking order %s delivered: %w", orderID, err)
	}
	f.notifier.OrderDelivered(*order)
	return order, nil
}

// Cancel отменяет заказ в статусе PENDING или PROCESSING и возвращает примененный к нему store credit.
func (f *FulfillmentService) Cancel(ctx context.Context, orderID uuid.UUID, actor Actor) (*domain.Order, error) {
	order, err := f.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("cancelling order %s: %w", orderID, err)
	}
	if !actor.CanAccess(order) {
		return nil, fmt.Errorf("cancelling order %s: %w", orderID, domain.ErrForbidden)
	}

	var cancelled *domain.Order
	err = f.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if cancelled, err = orderRepo.UpdateStatus(
			c, orderID, domain.CancellableOrderStatuses, domain.OrderStatusCancelled,
		); err != nil {
			return err //nolint:wrapcheck
		}
		return restoreCredit(c, userRepo, cancelled.UserID, cancelled.CreditApplied)
	})
	if err != nil {
		return nil, fmt.Errorf("cancelling order %s: %w", orderID, err)
	}

	f.l.WithFields(logrus.Fields{
		"orderID":  orderID.String(),
		"restored": cancelled.CreditApplied.String(),
	}).Info("order cancelled")
	f.notifier.OrderCancelled(*cancelled)
	return cancelled, nil
}

func (f *FulfillmentService) Carriers(ctx context.Context) ([]domain.Carrier, error) {
	carriers, err := f.shipping.ListCarriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing carriers: %w", err)
	}
	return carriers, nil
}

func (f *FulfillmentService) Warehouses(ctx context.Context) ([]domain.Warehouse, error) {
	warehouses, err := f.shipping.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing warehouses: %w", err)
	}
	return warehouses, nil
}

func (f *FulfillmentService) ProviderOrders(
	ctx context.Context,
	query domain.ShipmentOrderQuery,
) (*domain.ShipmentOrderList, error) {
	list, err := f.shipping.ListOrders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing shipping provider orders: %w", err)
	}
	return list, nil
}

// shippableOrder возвращает заказ, уже переданный в доставку и еще не отгруженный.
func (f *FulfillmentService) shippableOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := f.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if order.ShipstationOrderID == "" {
		return nil, fmt.Errorf("order %s is not pushed to fulfillment: %w", orderID, domain.ErrStateConflict)
	}
	if !order.InStatus(domain.OrderStatusPaid, domain.OrderStatusProcessing) {
		return nil, fmt.Errorf("order %s in status %s: %w", orderID, order.Status, domain.ErrStateConflict)
	}
	return order, nil
}

func (f *FulfillmentService) markShippedTx(ctx context.Context, orderID uuid.UUID, label repoargs.SetLabel) error {
	return f.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		repo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if err := repo.SetLabel(c, orderID, label); err != nil {
			return err //nolint:wrapcheck
		}
		_, err = repo.UpdateStatus(c, orderID,
			[]domain.OrderStatusType{domain.OrderStatusPaid, domain.OrderStatusProcessing}, domain.OrderStatusShipped)
		return err //nolint:wrapcheck
	})
}

func (f *FulfillmentService) orderWeight(order *domain.Order) float64 {
	units := 0
	for _, item := range order.Items {
		units += item.Quantity
	}
	return f.conf.DefaultItemWeightOz * float64(units)
}

func (f *FulfillmentService) reload(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := f.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reloading order %s: %w", orderID, err)
	}
	return order, nil
}

func defaultIfBlank(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
