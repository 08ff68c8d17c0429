package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// errAlreadyPaid сессию уже перевела в PAID другая доставка события.
var errAlreadyPaid = errors.New("session already paid")

// materializeTxAttempts позиции блокируют строки товаров, две оплаты с общими товарами могут упереться в deadlock.
const materializeTxAttempts = 3

// OrderMaterializer превращает оплаченную checkout-сессию в заказ ровно один раз.
type OrderMaterializer struct {
	uow         uow.UOW
	ledger      *StoreCreditLedger
	sessionRepo CheckoutSessionRepository
	payment     PaymentProvider
	commission  CommissionApplier
	fulfillment FulfillmentPusher
	notifier    Notifier
	tasks       TaskRunner
	l           *logrus.Entry
}

type MaterializerArgs struct {
	UOW         uow.UOW
	Ledger      *StoreCreditLedger
	Payment     PaymentProvider
	Commission  CommissionApplier
	Fulfillment FulfillmentPusher
	Notifier    Notifier
	Tasks       TaskRunner
	Logger      *logrus.Logger
}

func NewOrderMaterializer(args MaterializerArgs) (*OrderMaterializer, error) {
	sessionRepo, err := uow.GetRepositoryAs[CheckoutSessionRepository](
		args.UOW, uow.RepositoryName(repoargs.CheckoutSessionRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderMaterializer{
		uow:         args.UOW,
		ledger:      args.Ledger,
		sessionRepo: sessionRepo,
		payment:     args.Payment,
		commission:  args.Commission,
		fulfillment: args.Fulfillment,
		notifier:    args.Notifier,
		tasks:       args.Tasks,
		l:           args.Logger.WithField("component", "materializer"),
	}, nil
}

// Complete материализует заказ по оплаченной сессии и возвращает его id.
//
// Алгоритм работы:
//  1. Если сессия уже связана с заказом, возвращает его id.
//  2. Получает у провайдера полную сессию: позиции, адрес, суммы. Неоплаченная сессия подтверждается без заказа,
//     в этом случае возвращается uuid.Nil.
//  3. В одной транзакции: PENDING -> PAID, заказ, позиции, списание остатков, связь сессии с заказом.
//     Отсутствующая строка сессии восстанавливается из metadata.
//  4. После коммита начисляет комиссию и ставит в очередь передачу в доставку и письмо.
//
// Если шаги 2-3 не удались, резерв store credit возвращается до возврата ошибки.
func (m *OrderMaterializer) Complete(ctx context.Context, sessionID string) (uuid.UUID, error) {
	log := m.l.WithField("sessionID", sessionID)

	session, err := m.sessionRepo.FindByID(ctx, sessionID)
	switch {
	case err == nil && session.OrderID != nil:
		log.WithField("orderID", session.OrderID.String()).Debug("session already materialized")
		return *session.OrderID, nil
	case err != nil && !errors.Is(err, domain.ErrRecordNotFound):
		return uuid.Nil, fmt.Errorf("materializing session `%s`: %w", sessionID, err)
	case err != nil:
		session = nil
	}

	ps, err := m.payment.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		m.release(ctx, log, session)
		return uuid.Nil, fmt.Errorf("materializing session `%s`: %w", sessionID, err)
	}
	if ps.PaymentStatus == domain.ProviderPaymentUnpaid {
		log.Info("session completed without payment yet, waiting for async payment")
		return uuid.Nil, nil
	}

	var order *domain.Order
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		created, err := m.materializeTx(c, tx, log, session, ps)
		if err != nil {
			return err
		}
		order = created
		return nil
	}, uow.WithRetry(materializeTxAttempts))

	if errors.Is(txErr, errAlreadyPaid) {
		return m.existingOrder(ctx, sessionID)
	}
	if txErr != nil {
		m.release(ctx, log, session)
		return uuid.Nil, fmt.Errorf("materializing session `%s`: %w", sessionID, txErr)
	}

	log.WithFields(logrus.Fields{
		"orderID": order.ID.String(),
		"total":   order.Total.String(),
	}).Info("order materialized")

	m.afterCommit(ctx, *order)
	return order.ID, nil
}

func (m *OrderMaterializer) materializeTx(
	ctx context.Context,
	tx uow.TX,
	log *logrus.Entry,
	session *domain.CheckoutSession,
	ps *domain.PaymentSession,
) (*domain.Order, error) {
	sessionRepo, err := uow.GetAs[CheckoutSessionRepository](tx, uow.RepositoryName(repoargs.CheckoutSessionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	orderRepo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	productRepo, err := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if session == nil {
		if session, err = m.recreateSession(ctx, sessionRepo, log, ps); err != nil {
			return nil, err
		}
	}

	paid, err := sessionRepo.MarkPaid(ctx, ps.ID)
	if err != nil {
		if errors.Is(err, domain.ErrStateConflict) {
			return nil, errAlreadyPaid
		}
		return nil, err //nolint:wrapcheck
	}

	if err := retakeSessionTx(ctx, tx, paid); err != nil {
		// заказ оплачен, поэтому он создается даже без повторного резерва
		log.WithError(err).Warn("failed to retake released store credit reservation")
	}

	order, err := orderRepo.Create(ctx, repoargs.CreateOrder{
		ID:                uuid.New(),
		UserID:            paid.UserID,
		CheckoutSessionID: ps.ID,
		Email:             ps.CustomerEmail,
		Status:            domain.OrderStatusPaid,
		ShippingAddress:   ps.ShippingAddress(),
		Currency:          ps.Currency,
		Subtotal:          ps.AmountSubtotal,
		Shipping:          ps.AmountShipping,
		CreditApplied:     paid.StoreCreditReserved,
		Total:             ps.AmountTotal,
		PaymentIntentID:   ps.PaymentIntentID,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	items, err := m.orderItems(ctx, productRepo, log, ps.LineItems)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if order.Items, err = orderRepo.CreateItems(ctx, order.ID, items); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	if err := sessionRepo.LinkOrder(ctx, ps.ID, order.ID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// recreateSession восстанавливает строку сессии из metadata провайдера.
func (m *OrderMaterializer) recreateSession(
	ctx context.Context,
	repo CheckoutSessionRepository,
	log *logrus.Entry,
	ps *domain.PaymentSession,
) (*domain.CheckoutSession, error) {
	meta, err := DecodeCheckoutMetadata(ps.Metadata)
	if err != nil {
		return nil, fmt.Errorf("recreating session from metadata: %w", err)
	}
	log.WithField("userID", meta.UserID).Warn("checkout session row missing, recreating from metadata")
	session, err := repo.Create(ctx, repoargs.CreateCheckoutSession{
		ID:                  ps.ID,
		UserID:              meta.UserID,
		StoreCreditReserved: meta.StoreCredit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return session, nil
}

// orderItems сопоставляет позиции провайдера с товарами и списывает остатки.
// Несопоставленная позиция логируется и пропускается.
func (m *OrderMaterializer) orderItems(
	ctx context.Context,
	productRepo ProductRepository,
	log *logrus.Entry,
	lineItems []domain.PaymentLineItem,
) ([]repoargs.CreateOrderItem, error) {
	items := make([]repoargs.CreateOrderItem, 0, len(lineItems))
	for _, li := range lineItems {
		resolution := ResolveLineItem(li)
		itemLog := log.WithFields(logrus.Fields{
			"description": li.Description,
			"resolution":  resolution.Source.String(),
		})
		if !resolution.Resolved() || li.Quantity <= 0 {
			itemLog.Warn("line item could not be matched to a product, skipped")
			continue
		}

		name := li.Name
		if name == "" {
			name = li.Description
		}
		items = append(items, repoargs.CreateOrderItem{
			ProductID:       resolution.ProductID,
			Name:            name,
			Size:            resolution.Size,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitAmount,
			DiscountedPrice: li.AmountTotal.DivRound(decimal.NewFromInt(int64(li.Quantity)), 2), //nolint:mnd
		})

		if _, err := productRepo.DecrementSizeQuantity(
			ctx, resolution.ProductID, resolution.Size, li.Quantity,
		); err != nil {
			if !errors.Is(err, domain.ErrRecordNotFound) {
				return nil, err //nolint:wrapcheck
			}
			itemLog.WithError(err).Warn("product or size not found, inventory not decremented")
		}
	}
	return items, nil
}

func (m *OrderMaterializer) existingOrder(ctx context.Context, sessionID string) (uuid.UUID, error) {
	session, err := m.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("materializing session `%s`: %w", sessionID, err)
	}
	if session.OrderID == nil {
		return uuid.Nil, fmt.Errorf("session `%s` is %s without order: %w",
			sessionID, session.PaymentStatus, domain.ErrStateConflict)
	}
	return *session.OrderID, nil
}

// release возвращает резерв после неудачной материализации.
func (m *OrderMaterializer) release(ctx context.Context, log *logrus.Entry, session *domain.CheckoutSession) {
	if session == nil {
		return
	}
	if _, err := m.ledger.ReleaseSession(context.WithoutCancel(ctx), session.ID); err != nil {
		log.WithError(err).Error("failed to release store credit reservation")
	}
}

// afterCommit побочные эффекты уже зафиксированного заказа. Их ошибки только логируются.
func (m *OrderMaterializer) afterCommit(ctx context.Context, order domain.Order) {
	m.commission.Apply(context.WithoutCancel(ctx), order)

	orderID := order.ID
	m.tasks.Go("fulfillment push "+orderID.String(), func(c context.Context) error {
		_, err := m.fulfillment.Push(c, orderID)
		return err //nolint:wrapcheck
	})
	m.notifier.OrderPlaced(order)
}

// Fail переводит сессию PENDING -> FAILED и возвращает резерв. Для неизвестной или уже
// завершенной сессии ничего не делает.
func (m *OrderMaterializer) Fail(ctx context.Context, sessionID string) error {
	log := m.l.WithField("sessionID", sessionID)
	var released decimal.Decimal

	err := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		sessionRepo, err := uow.GetAs[CheckoutSessionRepository](tx, uow.RepositoryName(repoargs.CheckoutSessionRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := sessionRepo.MarkFailed(c, sessionID); err != nil {
			return err //nolint:wrapcheck
		}
		released, err = releaseSessionTx(c, tx, sessionID)
		return err
	})

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		log.Info("failed session is unknown, nothing to release")
		return nil
	case errors.Is(err, domain.ErrStateConflict):
		log.Info("session is not pending, failure ignored")
		return nil
	case err != nil:
		return fmt.Errorf("failing session `%s`: %w", sessionID, err)
	}

	log.WithField("released", released.String()).Info("checkout session failed")
	return nil
}
