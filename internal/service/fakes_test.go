package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// memStore хранилище в памяти с семантикой pgrepo: условные обновления, уникальные ключи, те же ошибки.
type memStore struct {
	mu          sync.Mutex
	seq         int64
	users       map[int64]domain.User
	products    map[int64]domain.Product
	sessions    map[string]domain.CheckoutSession
	orders      map[uuid.UUID]domain.Order
	commissions map[uuid.UUID]domain.Commission

	// sessionCreateErr ошибка, которую вернет следующий CheckoutSessionRepository.Create.
	sessionCreateErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[int64]domain.User),
		products:    make(map[int64]domain.Product),
		sessions:    make(map[string]domain.CheckoutSession),
		orders:      make(map[uuid.UUID]domain.Order),
		commissions: make(map[uuid.UUID]domain.Commission),
	}
}

func (s *memStore) nextID() int64 {
	s.seq++
	return s.seq
}

type memSnapshot struct {
	seq         int64
	users       map[int64]domain.User
	products    map[int64]domain.Product
	sessions    map[string]domain.CheckoutSession
	orders      map[uuid.UUID]domain.Order
	commissions map[uuid.UUID]domain.Commission
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := memSnapshot{
		seq:         s.seq,
		users:       make(map[int64]domain.User, len(s.users)),
		products:    make(map[int64]domain.Product, len(s.products)),
		sessions:    make(map[string]domain.CheckoutSession, len(s.sessions)),
		orders:      make(map[uuid.UUID]domain.Order, len(s.orders)),
		commissions: make(map[uuid.UUID]domain.Commission, len(s.commissions)),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.products {
		v.Sizes = append([]domain.ProductSize(nil), v.Sizes...)
		snap.products[k] = v
	}
	for k, v := range s.sessions {
		snap.sessions[k] = v
	}
	for k, v := range s.orders {
		v.Items = append([]domain.OrderItem(nil), v.Items...)
		snap.orders[k] = v
	}
	for k, v := range s.commissions {
		snap.commissions[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = snap.seq
	s.users = snap.users
	s.products = snap.products
	s.sessions = snap.sessions
	s.orders = snap.orders
	s.commissions = snap.commissions
}

func (s *memStore) user(id int64) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

func (s *memStore) session(id string) (domain.CheckoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *memStore) order(id uuid.UUID) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memStore) product(id int64) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id]
}

func (s *memStore) commission(orderID uuid.UUID) (domain.Commission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.commissions[orderID]
	return c, ok
}

func (s *memStore) count() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders), len(s.commissions)
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("[repository/"+format+"]: %w", append(args, domain.ErrRecordNotFound)...)
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("[repository/"+format+"]: %w", append(args, domain.ErrStateConflict)...)
}

// fakeUOW транзакции сериализуются, при ошибке fn состояние откатывается к снимку.
type fakeUOW struct {
	txMu  sync.Mutex
	store *memStore
}

func newFakeUOW(store *memStore) *fakeUOW {
	return &fakeUOW{store: store}
}

func (f *fakeUOW) Register(_ uow.RepositoryName, _ uow.RepositoryFactory) error {
	return nil
}

func (f *fakeUOW) Do(ctx context.Context, fn func(context.Context, uow.TX) error, _ ...uow.TxOption) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()
	snap := f.store.snapshot()
	if err := fn(ctx, fakeTX{store: f.store}); err != nil {
		f.store.restore(snap)
		return err
	}
	return nil
}

func (f *fakeUOW) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return memRepository(f.store, name)
}

type fakeTX struct {
	store *memStore
}

func (t fakeTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	return memRepository(t.store, name)
}

func memRepository(store *memStore, name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &memUserRepo{s: store}, nil
	case repoargs.ProductRepoName:
		return &memProductRepo{s: store}, nil
	case repoargs.CheckoutSessionRepoName:
		return &memSessionRepo{s: store}, nil
	case repoargs.OrderRepoName:
		return &memOrderRepo{s: store}, nil
	case repoargs.CommissionRepoName:
		return &memCommissionRepo{s: store}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, notFound("finding user %d", id)
	}
	return &user, nil
}

func (r *memUserRepo) DecrementStoreCredit(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[userID]
	if !ok {
		return decimal.Zero, notFound("finding user %d", userID)
	}
	if user.StoreCredit.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("user %d: %w", userID, domain.ErrInsufficientCredit)
	}
	user.StoreCredit = user.StoreCredit.Sub(amount)
	r.s.users[userID] = user
	return user.StoreCredit, nil
}

func (r *memUserRepo) IncrementStoreCredit(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[userID]
	if !ok {
		return decimal.Zero, notFound("finding user %d", userID)
	}
	user.StoreCredit = user.StoreCredit.Add(amount)
	r.s.users[userID] = user
	return user.StoreCredit, nil
}

func (r *memUserRepo) MarkReferralValid(_ context.Context, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[userID]
	if !ok || user.ReferrerID == nil || user.IsReferralValid {
		return false, nil
	}
	user.IsReferralValid = true
	r.s.users[userID] = user
	return true, nil
}

func (r *memUserRepo) IncrementReferralCount(_ context.Context, userID int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[userID]
	if !ok {
		return nil, notFound("finding user %d", userID)
	}
	user.ReferralCount++
	r.s.users[userID] = user
	return &user, nil
}

func (r *memUserRepo) UpdateTier(_ context.Context, userID int64, tier domain.UserTier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[userID]
	if !ok {
		return notFound("finding user %d", userID)
	}
	user.Tier = tier
	r.s.users[userID] = user
	return nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product, ok := r.s.products[id]
	if !ok {
		return nil, notFound("finding product %d", id)
	}
	product.Sizes = append([]domain.ProductSize(nil), product.Sizes...)
	return &product, nil
}

func (r *memProductRepo) DecrementSizeQuantity(
	_ context.Context,
	productID int64,
	size string,
	quantity int,
) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product, ok := r.s.products[productID]
	if !ok {
		return nil, notFound("finding product %d", productID)
	}
	product.Sizes = append([]domain.ProductSize(nil), product.Sizes...)
	if err := product.DecrementSize(size, quantity); err != nil {
		return nil, err
	}
	r.s.products[productID] = product
	return &product, nil
}

type memSessionRepo struct{ s *memStore }

func (r *memSessionRepo) Create(_ context.Context, args repoargs.CreateCheckoutSession) (*domain.CheckoutSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.sessionCreateErr; err != nil {
		r.s.sessionCreateErr = nil
		return nil, err
	}
	if _, ok := r.s.sessions[args.ID]; ok {
		return nil, fmt.Errorf("session `%s`: %w", args.ID, domain.ErrDuplicateKey)
	}
	session := domain.CheckoutSession{
		ID:                  args.ID,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
		UserID:              args.UserID,
		PaymentStatus:       domain.PaymentStatusPending,
		StoreCreditReserved: args.StoreCreditReserved,
	}
	r.s.sessions[args.ID] = session
	return &session, nil
}

func (r *memSessionRepo) FindByID(_ context.Context, id string) (*domain.CheckoutSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.sessions[id]
	if !ok {
		return nil, notFound("finding checkout session `%s`", id)
	}
	return &session, nil
}

func (r *memSessionRepo) MarkPaid(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	return r.transition(ctx, id, domain.PaymentStatusPaid)
}

func (r *memSessionRepo) MarkFailed(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	return r.transition(ctx, id, domain.PaymentStatusFailed)
}

func (r *memSessionRepo) transition(
	_ context.Context,
	id string,
	to domain.PaymentStatusType,
) (*domain.CheckoutSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.sessions[id]
	if !ok {
		return nil, notFound("marking checkout session `%s`", id)
	}
	if session.PaymentStatus != domain.PaymentStatusPending {
		return nil, conflict("marking checkout session `%s`", id)
	}
	session.PaymentStatus = to
	r.s.sessions[id] = session
	return &session, nil
}

func (r *memSessionRepo) LinkOrder(_ context.Context, id string, orderID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.sessions[id]
	if !ok {
		return notFound("linking checkout session `%s`", id)
	}
	if session.OrderID != nil {
		return conflict("linking checkout session `%s`", id)
	}
	session.OrderID = &orderID
	r.s.sessions[id] = session
	return nil
}

func (r *memSessionRepo) ReleaseReservation(_ context.Context, id string) (*domain.CheckoutSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.sessions[id]
	if !ok {
		return nil, notFound("releasing reservation of session `%s`", id)
	}
	if session.CreditRestored || session.PaymentStatus == domain.PaymentStatusPaid || session.OrderID != nil {
		return nil, conflict("releasing reservation of session `%s`", id)
	}
	session.CreditRestored = true
	r.s.sessions[id] = session
	return &session, nil
}

func (r *memSessionRepo) RetakeReservation(_ context.Context, id string) (*domain.CheckoutSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.sessions[id]
	if !ok {
		return nil, notFound("retaking reservation of session `%s`", id)
	}
	if !session.CreditRestored {
		return nil, conflict("retaking reservation of session `%s`", id)
	}
	session.CreditRestored = false
	r.s.sessions[id] = session
	return &session, nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.CheckoutSessionID == args.CheckoutSessionID {
			return nil, fmt.Errorf("order for session `%s`: %w", args.CheckoutSessionID, domain.ErrDuplicateKey)
		}
	}
	now := time.Now()
	order := domain.Order{
		ID:                args.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
		UserID:            args.UserID,
		CheckoutSessionID: args.CheckoutSessionID,
		Email:             args.Email,
		Status:            args.Status,
		ShippingAddress:   args.ShippingAddress,
		Currency:          args.Currency,
		Subtotal:          args.Subtotal,
		Shipping:          args.Shipping,
		CreditApplied:     args.CreditApplied,
		Total:             args.Total,
		PaymentIntentID:   args.PaymentIntentID,
	}
	r.s.orders[order.ID] = order
	return &order, nil
}

func (r *memOrderRepo) CreateItems(
	_ context.Context,
	orderID uuid.UUID,
	items []repoargs.CreateOrderItem,
) ([]domain.OrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[orderID]
	if !ok {
		return nil, notFound("creating items of order %s", orderID)
	}
	created := make([]domain.OrderItem, len(items))
	for i, item := range items {
		created[i] = domain.OrderItem{
			ID:              r.s.nextID(),
			OrderID:         orderID,
			ProductID:       item.ProductID,
			Name:            item.Name,
			Size:            item.Size,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountedPrice: item.DiscountedPrice,
		}
	}
	order.Items = append(order.Items, created...)
	r.s.orders[orderID] = order
	return created, nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return nil, notFound("finding order %s", id)
	}
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (r *memOrderRepo) FindByCheckoutSessionID(_ context.Context, sessionID string) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.CheckoutSessionID == sessionID {
			return &o, nil
		}
	}
	return nil, notFound("finding order by session `%s`", sessionID)
}

func (r *memOrderRepo) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var orders []domain.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (r *memOrderRepo) UpdateStatus(
	_ context.Context,
	id uuid.UUID,
	from []domain.OrderStatusType,
	to domain.OrderStatusType,
) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return nil, notFound("moving order %s", id)
	}
	if !order.InStatus(from...) {
		return nil, conflict("moving order %s from %s to %s", id, order.Status, to)
	}
	order.Status = to
	r.s.orders[id] = order
	return &order, nil
}

func (r *memOrderRepo) SetShipment(_ context.Context, id uuid.UUID, shipstationOrderID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return notFound("setting shipment of order %s", id)
	}
	order.ShipstationOrderID = shipstationOrderID
	r.s.orders[id] = order
	return nil
}

func (r *memOrderRepo) SetLabel(_ context.Context, id uuid.UUID, args repoargs.SetLabel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return notFound("setting label of order %s", id)
	}
	order.TrackingNumber = defaultIfBlank(args.TrackingNumber, order.TrackingNumber)
	order.CarrierCode = defaultIfBlank(args.CarrierCode, order.CarrierCode)
	order.LabelURL = defaultIfBlank(args.LabelURL, order.LabelURL)
	r.s.orders[id] = order
	return nil
}

type memCommissionRepo struct{ s *memStore }

func (r *memCommissionRepo) Create(_ context.Context, args repoargs.CreateCommission) (*domain.Commission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.commissions[args.OrderID]; ok {
		return nil, fmt.Errorf("commission for order %s: %w", args.OrderID, domain.ErrDuplicateKey)
	}
	commission := domain.Commission{
		ID:         r.s.nextID(),
		CreatedAt:  time.Now(),
		OrderID:    args.OrderID,
		ReferrerID: args.ReferrerID,
		BuyerID:    args.BuyerID,
		Rate:       args.Rate,
		Amount:     args.Amount,
		Status:     domain.CommissionStatusPaid,
	}
	r.s.commissions[args.OrderID] = commission
	return &commission, nil
}

func (r *memCommissionRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*domain.Commission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	commission, ok := r.s.commissions[orderID]
	if !ok {
		return nil, notFound("finding commission of order %s", orderID)
	}
	return &commission, nil
}

// syncRunner выполняет фоновые задачи сразу, в вызывающей горутине.
type syncRunner struct {
	mu   sync.Mutex
	errs []error
}

func (r *syncRunner) Go(name string, fn func(ctx context.Context) error) {
	if err := fn(context.Background()); err != nil {
		r.mu.Lock()
		r.errs = append(r.errs, fmt.Errorf("%s: %w", name, err))
		r.mu.Unlock()
	}
}

func (r *syncRunner) err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return errors.Join(r.errs...)
}

func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
