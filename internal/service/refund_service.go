package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RefundResult struct {
	Order  *domain.Order
	Refund *domain.Refund
}

// RefundService возвращает деньги по заказу и компенсирует примененный store credit.
type RefundService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	payment   PaymentProvider
	notifier  Notifier
	l         *logrus.Entry
}

func NewRefundService(
	u uow.UOW,
	payment PaymentProvider,
	notifier Notifier,
	l *logrus.Logger,
) (*RefundService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &RefundService{
		uow:       u,
		orderRepo: orderRepo,
		payment:   payment,
		notifier:  notifier,
		l:         l.WithField("component", "refund"),
	}, nil
}

// Refund возвращает amount по платежу заказа, нулевой amount означает полный возврат.
//
// Алгоритм работы:
//  1. Проверяет, что заказ еще не возвращен и сумма не превышает total.
//  2. Создает возврат у провайдера. Ошибка провайдера оборачивается в domain.ErrRefundFailed,
//     локальное состояние при этом не меняется.
//  3. В одной транзакции переводит заказ в REFUNDED и возвращает на баланс примененный store credit.
//     Для отмененного заказа store credit уже возвращен при отмене.
//  4. Отправляет письмо покупателю.
func (r *RefundService) Refund(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*RefundResult, error) {
	order, err := r.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("refunding order %s: %w", orderID, err)
	}
	if order.Status == domain.OrderStatusRefunded {
		return nil, fmt.Errorf("order %s already refunded: %w", orderID, domain.ErrStateConflict)
	}
	if order.PaymentIntentID == "" {
		return nil, fmt.Errorf("order %s has no payment to refund: %w", orderID, domain.ErrStateConflict)
	}
	if amount.IsNegative() || amount.GreaterThan(order.Total) {
		return nil, fmt.Errorf("refund amount %s out of range [0, %s]: %w", amount, order.Total, domain.ErrValidation)
	}

	log := r.l.WithFields(logrus.Fields{"orderID": orderID.String(), "amount": amount.String()})

	refund, err := r.payment.CreateRefund(ctx, order.PaymentIntentID, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s: %w", domain.ErrRefundFailed, orderID, err)
	}

	previous := order.Status
	var refunded *domain.Order
	err = r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if refunded, err = orderRepo.UpdateStatus(
			c, orderID, []domain.OrderStatusType{previous}, domain.OrderStatusRefunded,
		); err != nil {
			return err //nolint:wrapcheck
		}
		if previous == domain.OrderStatusCancelled {
			return nil
		}
		return restoreCredit(c, userRepo, refunded.UserID, refunded.CreditApplied)
	})
	if err != nil {
		// деньги у провайдера уже возвращены
		log.WithError(err).WithField("refundID", refund.ID).Error("refund issued but order was not updated")
		return nil, fmt.Errorf("saving refund of order %s: %w", orderID, err)
	}

	log.WithField("refundID", refund.ID).Info("order refunded")
	r.notifier.OrderRefunded(*refunded, refund.Amount)

	return &RefundResult{Order: refunded, Refund: refund}, nil
}
