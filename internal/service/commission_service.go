package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/sirupsen/logrus"
)

// CommissionService начисляет рефереру покупателя комиссию с каждого заказа.
type CommissionService struct {
	uow uow.UOW
	l   *logrus.Entry
}

func NewCommissionService(u uow.UOW, l *logrus.Logger) *CommissionService {
	return &CommissionService{
		uow: u,
		l:   l.WithField("component", "commission"),
	}
}

// Apply начисляет комиссию по заказу. Ошибки не возвращаются: заказ без комиссии допустим.
func (c *CommissionService) Apply(ctx context.Context, order domain.Order) {
	log := c.l.WithFields(logrus.Fields{"orderID": order.ID.String(), "buyerID": order.UserID})

	commission, err := c.apply(ctx, order)
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		log.Info("commission already paid for order")
	case err != nil:
		log.WithError(err).Error("failed to apply commission")
	case commission != nil:
		log.WithFields(logrus.Fields{
			"referrerID": commission.ReferrerID,
			"amount":     commission.Amount.String(),
		}).Info("commission paid")
	}
}

// apply в одной транзакции:
//  1. Подтверждает реферала на первом заказе покупателя (ровно один раз) и пересчитывает уровень реферера.
//  2. Если ставка уровня ненулевая, создает Commission со статусом PAID и пополняет баланс реферера.
//
// Возвращает nil, nil, если комиссия не положена.
func (c *CommissionService) apply(ctx context.Context, order domain.Order) (*domain.Commission, error) {
	var commission *domain.Commission
	err := c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		commissionRepo, err := uow.GetAs[CommissionRepository](tx, uow.RepositoryName(repoargs.CommissionRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		buyer, err := userRepo.FindByID(ctx, order.UserID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if buyer.ReferrerID == nil {
			return nil
		}

		referrer, err := c.validateReferral(ctx, userRepo, buyer)
		if err != nil {
			return err
		}

		rate := referrer.Tier.CommissionRate()
		amount := order.Subtotal.Mul(rate).Round(2) //nolint:mnd
		if !amount.IsPositive() {
			return nil
		}

		created, err := commissionRepo.Create(ctx, repoargs.CreateCommission{
			OrderID:    order.ID,
			ReferrerID: referrer.ID,
			BuyerID:    buyer.ID,
			Rate:       rate,
			Amount:     amount,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if err := restoreCredit(ctx, userRepo, referrer.ID, amount); err != nil {
			return err
		}
		commission = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("applying commission for order %s: %w", order.ID, err)
	}
	return commission, nil
}

// validateReferral подтверждает реферала покупателя, если это его первый заказ, и возвращает
// реферера с актуальным уровнем.
func (c *CommissionService) validateReferral(
	ctx context.Context,
	userRepo UserRepository,
	buyer *domain.User,
) (*domain.User, error) {
	validated, err := userRepo.MarkReferralValid(ctx, buyer.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !validated {
		return userRepo.FindByID(ctx, *buyer.ReferrerID) //nolint:wrapcheck
	}

	referrer, err := userRepo.IncrementReferralCount(ctx, *buyer.ReferrerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	next := domain.NextTier(referrer.Tier, referrer.ReferralCount)
	if next != referrer.Tier {
		if err := userRepo.UpdateTier(ctx, referrer.ID, next); err != nil {
			return nil, err //nolint:wrapcheck
		}
		c.l.WithFields(logrus.Fields{
			"referrerID": referrer.ID,
			"from":       referrer.Tier,
			"to":         next,
		}).Info("referrer tier upgraded")
		referrer.Tier = next
	}
	return referrer, nil
}
