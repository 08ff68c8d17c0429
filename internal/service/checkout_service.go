package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CheckoutRequest struct {
	UserID      int64
	Items       []domain.CheckoutLineItem
	Destination domain.Address
	StoreCredit decimal.Decimal
}

type CheckoutResult struct {
	SessionID   string
	URL         string
	Subtotal    decimal.Decimal
	Shipping    decimal.Decimal
	StoreCredit decimal.Decimal
	Total       decimal.Decimal
}

// CheckoutService создает hosted checkout-сессию у платежного провайдера.
type CheckoutService struct {
	ledger      *StoreCreditLedger
	userRepo    UserRepository
	sessionRepo CheckoutSessionRepository
	payment     PaymentProvider
	quoter      ShippingQuoter
	currency    string
	l           *logrus.Entry
}

func NewCheckoutService(
	u uow.UOW,
	ledger *StoreCreditLedger,
	payment PaymentProvider,
	quoter ShippingQuoter,
	currency string,
	l *logrus.Logger,
) (*CheckoutService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	sessionRepo, err := uow.GetRepositoryAs[CheckoutSessionRepository](
		u, uow.RepositoryName(repoargs.CheckoutSessionRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CheckoutService{
		ledger:      ledger,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		payment:     payment,
		quoter:      quoter,
		currency:    currency,
		l:           l.WithField("component", "checkout"),
	}, nil
}

// CreateSession создает сессию оплаты для корзины.
//
// Алгоритм работы:
//  1. Проверяет корзину и что запрошенный store credit не больше баланса и subtotal.
//  2. Получает стоимость доставки.
//  3. Резервирует store credit до обращения к провайдеру.
//  4. Создает сессию у провайдера, упаковывая в metadata все, что нужно для материализации заказа.
//  5. Сохраняет CheckoutSession в статусе PENDING. Если строку уже создала материализация, сессия
//     считается сохраненной.
//
// Если шаги 4-5 не удались, резерв возвращается и возвращается domain.ErrCheckoutCreationFailed.
func (s *CheckoutService) CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	subtotal, err := validateCheckout(req)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}
	if req.StoreCredit.GreaterThan(user.StoreCredit) {
		return nil, fmt.Errorf("requested %s, balance %s: %w",
			req.StoreCredit, user.StoreCredit, domain.ErrInsufficientCredit)
	}

	itemCount := 0
	for _, item := range req.Items {
		itemCount += item.Quantity
	}
	shipping := s.quoter.QuoteShipping(ctx, req.Destination, itemCount)

	if err := s.ledger.Reserve(ctx, user.ID, req.StoreCredit); err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	log := s.l.WithFields(logrus.Fields{"userID": user.ID, "storeCredit": req.StoreCredit.String()})

	params := domain.PaymentSessionParams{
		CustomerEmail: user.Email,
		Currency:      s.currency,
		Items:         decorateLineItems(req.Items),
		Shipping:      shipping,
		StoreCredit:   req.StoreCredit,
		Metadata:      buildMetadata(user.ID, req, shipping).Encode(),
	}

	session, err := s.payment.CreateCheckoutSession(ctx, params)
	if err != nil {
		s.compensate(ctx, log, user.ID, req.StoreCredit)
		return nil, fmt.Errorf("%w: %w", domain.ErrCheckoutCreationFailed, err)
	}

	log = log.WithField("sessionID", session.ID)

	if err := s.persistSession(ctx, log, session.ID, user.ID, req.StoreCredit); err != nil {
		return nil, fmt.Errorf("%w: persisting session `%s`: %w", domain.ErrCheckoutCreationFailed, session.ID, err)
	}

	log.Info("checkout session created")

	return &CheckoutResult{
		SessionID:   session.ID,
		URL:         session.URL,
		Subtotal:    subtotal,
		Shipping:    shipping,
		StoreCredit: req.StoreCredit,
		Total:       subtotal.Add(shipping).Sub(req.StoreCredit),
	}, nil
}

// persistSession сохраняет сессию в статусе PENDING. Webhook о завершении оплаты может прийти раньше,
// тогда материализация уже восстановила строку из metadata и потратила резерв. Такая строка считается
// сохраненной. Если сохранить не удалось, резерв возвращается.
func (s *CheckoutService) persistSession(
	ctx context.Context,
	log *logrus.Entry,
	sessionID string,
	userID int64,
	amount decimal.Decimal,
) error {
	_, err := s.sessionRepo.Create(ctx, repoargs.CreateCheckoutSession{
		ID:                  sessionID,
		UserID:              userID,
		StoreCreditReserved: amount,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrDuplicateKey) {
		s.compensate(ctx, log, userID, amount)
		return err //nolint:wrapcheck
	}

	existing, findErr := s.sessionRepo.FindByID(ctx, sessionID)
	switch {
	case findErr == nil && existing.UserID == userID:
		log.WithField("paymentStatus", string(existing.PaymentStatus)).
			Info("checkout session already recorded by payment webhook")
		return nil
	case findErr == nil:
		// строка другого пользователя, наш резерв в ней не учтен
		s.compensate(ctx, log, userID, amount)
		return err //nolint:wrapcheck
	}

	// состояние строки неизвестно: условный release не тронет уже потраченный резерв
	if _, releaseErr := s.ledger.ReleaseSession(context.WithoutCancel(ctx), sessionID); releaseErr != nil {
		log.WithError(releaseErr).Error("failed to release store credit after checkout failure")
	}
	return findErr //nolint:wrapcheck
}

// compensate возвращает резерв после неудачного создания сессии, когда строки сессии еще нет.
func (s *CheckoutService) compensate(ctx context.Context, log *logrus.Entry, userID int64, amount decimal.Decimal) {
	// запрос мог быть отменен клиентом, но резерв должен вернуться
	if err := s.ledger.Restore(context.WithoutCancel(ctx), userID, amount); err != nil {
		log.WithError(err).Error("failed to restore store credit after checkout failure")
	}
}

// validateCheckout проверяет корзину и возвращает ее subtotal.
func validateCheckout(req CheckoutRequest) (decimal.Decimal, error) {
	if len(req.Items) == 0 {
		return decimal.Zero, fmt.Errorf("empty cart: %w", domain.ErrValidation)
	}
	if len(req.Items) > MaxCheckoutItems {
		return decimal.Zero, fmt.Errorf("cart has %d items, max %d: %w",
			len(req.Items), MaxCheckoutItems, domain.ErrValidation)
	}
	if req.StoreCredit.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative store credit: %w", domain.ErrValidation)
	}

	subtotal := decimal.Zero
	for i, item := range req.Items {
		switch {
		case item.Quantity <= 0:
			return decimal.Zero, fmt.Errorf("item %d: quantity must be positive: %w", i, domain.ErrValidation)
		case item.UnitPrice.IsNegative():
			return decimal.Zero, fmt.Errorf("item %d: negative price: %w", i, domain.ErrValidation)
		case strings.TrimSpace(item.Size) == "" || strings.Contains(item.Size, metaItemSeparator):
			return decimal.Zero, fmt.Errorf("item %d: invalid size `%s`: %w", i, item.Size, domain.ErrValidation)
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if req.StoreCredit.GreaterThan(subtotal) {
		return decimal.Zero, fmt.Errorf("store credit %s exceeds subtotal %s: %w",
			req.StoreCredit, subtotal, domain.ErrValidation)
	}
	return subtotal, nil
}

func buildMetadata(userID int64, req CheckoutRequest, shipping decimal.Decimal) CheckoutMetadata {
	items := make([]MetadataItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = MetadataItem{ProductID: item.ProductID, Size: item.Size, Quantity: item.Quantity}
	}
	return CheckoutMetadata{
		UserID:      userID,
		StoreCredit: req.StoreCredit,
		Shipping:    shipping,
		Items:       items,
	}
}

// decorateLineItems добавляет позициям описание и metadata, по которым позиция находится при материализации.
func decorateLineItems(items []domain.CheckoutLineItem) []domain.CheckoutLineItem {
	res := make([]domain.CheckoutLineItem, len(items))
	for i, item := range items {
		item.Description = lineItemDescription(item.Size, item.ProductID)
		item.Metadata = map[string]string{
			MetaProductID: strconv.FormatInt(item.ProductID, 10),
			MetaSize:      item.Size,
		}
		if item.Name == "" {
			item.Name = "Product " + strconv.FormatInt(item.ProductID, 10)
		}
		res[i] = item
	}
	return res
}
