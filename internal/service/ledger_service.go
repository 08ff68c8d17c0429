package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// StoreCreditLedger баланс store credit пользователя. Все изменения баланса выражены относительными
// атомарными операциями на стороне БД: balance = balance ± amount.
type StoreCreditLedger struct {
	uow      uow.UOW
	userRepo UserRepository
	l        *logrus.Entry
}

func NewStoreCreditLedger(u uow.UOW, l *logrus.Logger) (*StoreCreditLedger, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &StoreCreditLedger{
		uow:      u,
		userRepo: userRepo,
		l:        l.WithField("component", "ledger"),
	}, nil
}

// Balance возвращает текущий баланс пользователя.
func (s *StoreCreditLedger) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("store credit balance: %w", err)
	}
	return user.StoreCredit, nil
}

// Reserve списывает amount, только если баланс его покрывает. Иначе domain.ErrInsufficientCredit.
func (s *StoreCreditLedger) Reserve(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return reserveCredit(ctx, s.userRepo, userID, amount)
}

// Restore безусловно возвращает amount на баланс. Компенсирует ранее сделанный Reserve.
func (s *StoreCreditLedger) Restore(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return restoreCredit(ctx, s.userRepo, userID, amount)
}

// ReleaseSession возвращает резерв checkout-сессии ровно один раз. Возвращает сумму, ушедшую на баланс.
// Если резерв уже возвращен или потрачен оплаченным заказом, результат нулевой и без ошибки.
func (s *StoreCreditLedger) ReleaseSession(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	var released decimal.Decimal
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		amount, err := releaseSessionTx(c, tx, sessionID)
		if err != nil {
			return err
		}
		released = amount
		return nil
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("releasing reservation of session `%s`: %w", sessionID, err)
	}
	if released.IsPositive() {
		s.l.WithFields(logrus.Fields{"sessionID": sessionID, "amount": released.String()}).
			Info("store credit reservation released")
	}
	return released, nil
}

// releaseSessionTx помечает резерв сессии как возвращенный и в той же транзакции пополняет баланс.
func releaseSessionTx(ctx context.Context, tx uow.TX, sessionID string) (decimal.Decimal, error) {
	sessionRepo, err := uow.GetAs[CheckoutSessionRepository](tx, uow.RepositoryName(repoargs.CheckoutSessionRepoName))
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}

	session, err := sessionRepo.ReleaseReservation(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrStateConflict) {
			// резерв уже вернули или сессия оплачена
			return decimal.Zero, nil
		}
		return decimal.Zero, err //nolint:wrapcheck
	}
	if err := restoreCredit(ctx, userRepo, session.UserID, session.StoreCreditReserved); err != nil {
		return decimal.Zero, err
	}
	return session.StoreCreditReserved, nil
}

// retakeSessionTx повторно занимает резерв сессии, возвращенный после неудачной материализации.
// Если баланса уже не хватает, резерв остается возвращенным и возвращается domain.ErrInsufficientCredit.
func retakeSessionTx(ctx context.Context, tx uow.TX, session *domain.CheckoutSession) error {
	if !session.CreditRestored || !session.StoreCreditReserved.IsPositive() {
		return nil
	}
	sessionRepo, err := uow.GetAs[CheckoutSessionRepository](tx, uow.RepositoryName(repoargs.CheckoutSessionRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	if err := reserveCredit(ctx, userRepo, session.UserID, session.StoreCreditReserved); err != nil {
		return err
	}
	if _, err := sessionRepo.RetakeReservation(ctx, session.ID); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

func reserveCredit(ctx context.Context, repo UserRepository, userID int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("reserving store credit %s: %w", amount, domain.ErrValidation)
	}
	if amount.IsZero() {
		return nil
	}
	if _, err := repo.DecrementStoreCredit(ctx, userID, amount); err != nil {
		return fmt.Errorf("reserving store credit %s for user %d: %w", amount, userID, err)
	}
	return nil
}

func restoreCredit(ctx context.Context, repo UserRepository, userID int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("restoring store credit %s: %w", amount, domain.ErrValidation)
	}
	if amount.IsZero() {
		return nil
	}
	if _, err := repo.IncrementStoreCredit(ctx, userID, amount); err != nil {
		return fmt.Errorf("restoring store credit %s for user %d: %w", amount, userID, err)
	}
	return nil
}
