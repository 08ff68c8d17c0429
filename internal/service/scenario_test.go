package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	referrerID int64 = 1
	buyerID    int64 = 2
	productID  int64 = 10
)

type ScenarioTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPayment  *mocks.MockPaymentProvider
	mockShipping *mocks.MockShippingProvider
	mockNotifier *mocks.MockNotifier
	store        *memStore
	tasks        *syncRunner
	services     *AppServices
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func (s *ScenarioTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayment = mocks.NewMockPaymentProvider(s.mockCtrl)
	s.mockShipping = mocks.NewMockShippingProvider(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.store = newMemStore()
	s.tasks = &syncRunner{}

	s.store.users[referrerID] = domain.User{
		ID:            referrerID,
		Email:         gofakeit.Email(),
		Name:          gofakeit.Name(),
		Tier:          domain.TierVIP,
		StoreCredit:   decimal.Zero,
		ReferralCode:  gofakeit.LetterN(8),
		ReferralCount: 4,
	}
	referrer := referrerID
	s.store.users[buyerID] = domain.User{
		ID:           buyerID,
		Email:        gofakeit.Email(),
		Name:         gofakeit.Name(),
		Tier:         domain.TierMember,
		StoreCredit:  decimal.NewFromInt(50),
		ReferralCode: gofakeit.LetterN(8),
		ReferrerID:   &referrer,
	}
	s.store.products[productID] = domain.Product{
		ID:   productID,
		Name: "Tee",
		Sizes: []domain.ProductSize{
			{Label: "M", Price: decimal.NewFromInt(100), Quantity: 5},
			{Label: "L", Price: decimal.NewFromInt(100), Quantity: 1},
		},
		InStock: true,
	}

	services, err := Factory(FactoryArgs{
		UOW:      newFakeUOW(s.store),
		Payment:  s.mockPayment,
		Shipping: s.mockShipping,
		Notifier: s.mockNotifier,
		Tasks:    s.tasks,
		Currency: "usd",
		Fulfillment: FulfillmentConfig{
			CarrierCode:         "stamps_com",
			FromPostalCode:      "78701",
			DefaultItemWeightOz: 8,
			FlatRate:            decimal.NewFromInt(10),
		},
		Logger: silentLogger(),
	})
	s.Require().NoError(err)
	s.services = services
}

func (s *ScenarioTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ScenarioTestSuite) decimalEqual(expected string, actual decimal.Decimal, msg string) {
	s.Truef(decimal.RequireFromString(expected).Equal(actual), "%s: expected %s, got %s", msg, expected, actual)
}

func (s *ScenarioTestSuite) checkoutRequest(credit int64) CheckoutRequest {
	return CheckoutRequest{
		UserID: buyerID,
		Items: []domain.CheckoutLineItem{
			{ProductID: productID, Name: "Tee", Size: "M", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		},
		Destination: domain.Address{PostalCode: "10001", Country: "US", City: "New York", State: "NY"},
		StoreCredit: decimal.NewFromInt(credit),
	}
}

func (s *ScenarioTestSuite) expectRates() {
	s.mockShipping.EXPECT().GetRates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.RateQuery) ([]domain.ShippingRate, error) {
			s.Equal("stamps_com", q.CarrierCode)
			s.Equal("10001", q.ToPostalCode)
			s.InDelta(16.0, q.WeightOz, 0.001)
			return []domain.ShippingRate{
				{ServiceCode: "priority", ShipmentCost: decimal.NewFromInt(9)},
				{ServiceCode: "ground", ShipmentCost: decimal.NewFromInt(5), OtherCost: decimal.NewFromInt(2)},
			}, nil
		})
}

// createSession создает сессию `cs_1` и возвращает параметры, переданные провайдеру.
func (s *ScenarioTestSuite) createSession(credit int64) domain.PaymentSessionParams {
	var captured domain.PaymentSessionParams
	s.expectRates()
	s.mockPayment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.PaymentSessionParams) (*domain.PaymentSession, error) {
			captured = p
			return &domain.PaymentSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil
		})
	_, err := s.services.Checkout.CreateSession(s.T().Context(), s.checkoutRequest(credit))
	s.Require().NoError(err)
	return captured
}

func (s *ScenarioTestSuite) paidSession(meta map[string]string) *domain.PaymentSession {
	return &domain.PaymentSession{
		ID:              "cs_1",
		Currency:        "usd",
		PaymentStatus:   domain.ProviderPaymentPaid,
		PaymentIntentID: "pi_1",
		AmountSubtotal:  decimal.NewFromInt(200),
		AmountShipping:  decimal.NewFromInt(7),
		AmountDiscount:  decimal.NewFromInt(50),
		AmountTotal:     decimal.NewFromInt(157),
		CustomerEmail:   "buyer@example.com",
		CustomerAddress: &domain.Address{
			Name: "Buyer", Line1: "1 Main St", City: "New York", State: "NY", PostalCode: "10001", Country: "US",
		},
		Metadata: meta,
		LineItems: []domain.PaymentLineItem{{
			Description:     "Size: M | SKU: 10",
			Name:            "Tee",
			Quantity:        2,
			UnitAmount:      decimal.NewFromInt(100),
			AmountSubtotal:  decimal.NewFromInt(200),
			AmountTotal:     decimal.NewFromInt(150),
			ProductMetadata: map[string]string{MetaProductID: "10", MetaSize: "M"},
		}},
	}
}

func (s *ScenarioTestSuite) expectMaterialization(meta map[string]string) {
	s.mockPayment.EXPECT().GetCheckoutSession(gomock.Any(), "cs_1").Return(s.paidSession(meta), nil)
	s.mockShipping.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(&domain.ShipmentOrder{ProviderOrderID: "ss_1"}, nil)
	s.mockNotifier.EXPECT().OrderPlaced(gomock.Any())
}

func (s *ScenarioTestSuite) TestCheckoutToRefund() {
	ctx := s.T().Context()

	params := s.createSession(50)
	s.decimalEqual("7", params.Shipping, "cheapest rate")
	s.decimalEqual("50", params.StoreCredit, "coupon amount")
	s.Equal("10|M|2", params.Metadata["item_0"])
	s.Equal("1", params.Metadata["item_count"])
	s.Equal("Size: M | SKU: 10", params.Items[0].Description)
	s.Equal("10", params.Items[0].Metadata[MetaProductID])
	s.Equal(s.store.user(buyerID).Email, params.CustomerEmail)

	s.decimalEqual("0", s.store.user(buyerID).StoreCredit, "credit reserved")
	session, ok := s.store.session("cs_1")
	s.Require().True(ok)
	s.Equal(domain.PaymentStatusPending, session.PaymentStatus)
	s.decimalEqual("50", session.StoreCreditReserved, "session reservation")

	s.expectMaterialization(params.Metadata)
	orderID, err := s.services.Materializer.Complete(ctx, "cs_1")
	s.Require().NoError(err)
	s.Require().NoError(s.tasks.err())

	order := s.store.order(orderID)
	s.decimalEqual("157", order.Total, "order total")
	s.decimalEqual("200", order.Subtotal, "order subtotal")
	s.decimalEqual("50", order.CreditApplied, "credit applied")
	s.Equal(domain.OrderStatusProcessing, order.Status)
	s.Equal("ss_1", order.ShipstationOrderID)
	s.Equal("1 Main St", order.ShippingAddress.Line1)
	s.Require().Len(order.Items, 1)
	s.decimalEqual("100", order.Items[0].UnitPrice, "unit price")
	s.decimalEqual("75", order.Items[0].DiscountedPrice, "discounted price")
	s.Equal(3, s.store.product(productID).Sizes[0].Quantity)

	commission, ok := s.store.commission(orderID)
	s.Require().True(ok)
	s.decimalEqual("20", commission.Amount, "commission")
	s.Equal(domain.CommissionStatusPaid, commission.Status)
	s.decimalEqual("20", s.store.user(referrerID).StoreCredit, "referrer credit")
	s.Equal(5, s.store.user(referrerID).ReferralCount)
	s.True(s.store.user(buyerID).IsReferralValid)

	session, _ = s.store.session("cs_1")
	s.Equal(domain.PaymentStatusPaid, session.PaymentStatus)
	s.Require().NotNil(session.OrderID)
	s.Equal(orderID, *session.OrderID)

	// повторная доставка события
	again, err := s.services.Materializer.Complete(ctx, "cs_1")
	s.Require().NoError(err)
	s.Equal(orderID, again)
	orders, commissions := s.store.count()
	s.Equal(1, orders)
	s.Equal(1, commissions)

	s.mockPayment.EXPECT().CreateRefund(gomock.Any(), "pi_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal) (*domain.Refund, error) {
			s.decimalEqual("157", amount, "refund amount")
			return &domain.Refund{ID: "re_1", Amount: amount, Status: "succeeded"}, nil
		})
	s.mockNotifier.EXPECT().OrderRefunded(gomock.Any(), gomock.Any())

	res, err := s.services.Refund.Refund(ctx, orderID, decimal.NewFromInt(157))
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusRefunded, res.Order.Status)
	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "credit restored by refund")

	_, err = s.services.Refund.Refund(ctx, orderID, decimal.Zero)
	s.ErrorIs(err, domain.ErrStateConflict)
}

func (s *ScenarioTestSuite) TestCheckoutValidation() {
	ctx := s.T().Context()

	_, err := s.services.Checkout.CreateSession(ctx, s.checkoutRequest(60))
	s.ErrorIs(err, domain.ErrInsufficientCredit)

	req := s.checkoutRequest(0)
	req.StoreCredit = decimal.NewFromInt(250)
	s.store.users[buyerID] = func() domain.User {
		u := s.store.users[buyerID]
		u.StoreCredit = decimal.NewFromInt(500)
		return u
	}()
	_, err = s.services.Checkout.CreateSession(ctx, req)
	s.ErrorIs(err, domain.ErrValidation, "credit above subtotal")

	req = s.checkoutRequest(0)
	req.Items = nil
	_, err = s.services.Checkout.CreateSession(ctx, req)
	s.ErrorIs(err, domain.ErrValidation, "empty cart")

	req = s.checkoutRequest(0)
	req.Items[0].Quantity = 0
	_, err = s.services.Checkout.CreateSession(ctx, req)
	s.ErrorIs(err, domain.ErrValidation, "zero quantity")

	req = s.checkoutRequest(0)
	req.UserID = 999
	_, err = s.services.Checkout.CreateSession(ctx, req)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ScenarioTestSuite) TestCheckoutProviderFailureRestoresCredit() {
	s.expectRates()
	providerErr := domain.NewProviderError("stripe", http.StatusPaymentRequired, "card_declined", nil)
	s.mockPayment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(nil, providerErr)

	_, err := s.services.Checkout.CreateSession(s.T().Context(), s.checkoutRequest(50))
	s.Require().ErrorIs(err, domain.ErrCheckoutCreationFailed)
	var pErr *domain.ProviderError
	s.Require().ErrorAs(err, &pErr)
	s.Equal(http.StatusPaymentRequired, pErr.StatusCode)

	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "round trip")
	_, ok := s.store.session("cs_1")
	s.False(ok)
}

func (s *ScenarioTestSuite) TestCheckoutPersistFailureRestoresCredit() {
	s.expectRates()
	s.mockPayment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(&domain.PaymentSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)
	s.store.sessionCreateErr = errors.New("connection reset")

	res, err := s.services.Checkout.CreateSession(s.T().Context(), s.checkoutRequest(50))
	s.Require().ErrorIs(err, domain.ErrCheckoutCreationFailed)
	s.Nil(res)
	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "round trip")
}

func (s *ScenarioTestSuite) TestCheckoutWebhookBeforePersistKeepsReservation() {
	s.expectRates()
	var orderID uuid.UUID
	s.mockPayment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c context.Context, p domain.PaymentSessionParams) (*domain.PaymentSession, error) {
			// оплата завершилась раньше, чем сессия сохранена локально
			s.expectMaterialization(p.Metadata)
			var err error
			orderID, err = s.services.Materializer.Complete(c, "cs_1")
			s.Require().NoError(err)
			return &domain.PaymentSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil
		})

	res, err := s.services.Checkout.CreateSession(s.T().Context(), s.checkoutRequest(50))
	s.Require().NoError(err)
	s.Equal("cs_1", res.SessionID)

	s.decimalEqual("0", s.store.user(buyerID).StoreCredit, "reservation consumed by order")
	s.decimalEqual("50", s.store.order(orderID).CreditApplied, "credit applied")
	session, ok := s.store.session("cs_1")
	s.Require().True(ok)
	s.Equal(domain.PaymentStatusPaid, session.PaymentStatus)
	s.False(session.CreditRestored)
}

func (s *ScenarioTestSuite) TestCheckoutDuplicateSessionOfAnotherUser() {
	s.store.sessions["cs_1"] = domain.CheckoutSession{
		ID:                  "cs_1",
		UserID:              referrerID,
		PaymentStatus:       domain.PaymentStatusPaid,
		StoreCreditReserved: decimal.NewFromInt(30),
	}
	s.expectRates()
	s.mockPayment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(&domain.PaymentSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)

	_, err := s.services.Checkout.CreateSession(s.T().Context(), s.checkoutRequest(50))
	s.Require().ErrorIs(err, domain.ErrCheckoutCreationFailed)
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)

	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "own reservation restored")
	s.decimalEqual("0", s.store.user(referrerID).StoreCredit, "foreign reservation untouched")
	session, _ := s.store.session("cs_1")
	s.False(session.CreditRestored)
}

func (s *ScenarioTestSuite) TestShippingQuoteFallsBackToFlatRate() {
	s.mockShipping.EXPECT().GetRates(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewProviderError("shipstation", http.StatusServiceUnavailable, "down", nil))
	s.mockPayment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(&domain.PaymentSession{ID: "cs_1"}, nil)

	res, err := s.services.Checkout.CreateSession(s.T().Context(), s.checkoutRequest(0))
	s.Require().NoError(err)
	s.decimalEqual("10", res.Shipping, "flat rate")
	s.decimalEqual("210", res.Total, "total")
}

func (s *ScenarioTestSuite) TestCompleteUnpaidIsAcknowledged() {
	params := s.createSession(50)
	unpaid := s.paidSession(params.Metadata)
	unpaid.PaymentStatus = domain.ProviderPaymentUnpaid
	s.mockPayment.EXPECT().GetCheckoutSession(gomock.Any(), "cs_1").Return(unpaid, nil)

	orderID, err := s.services.Materializer.Complete(s.T().Context(), "cs_1")
	s.Require().NoError(err)
	s.Equal(uuid.Nil, orderID)

	session, _ := s.store.session("cs_1")
	s.Equal(domain.PaymentStatusPending, session.PaymentStatus)
	s.decimalEqual("0", s.store.user(buyerID).StoreCredit, "still reserved")
}

func (s *ScenarioTestSuite) TestCompleteFailureReleasesAndRetryRetakes() {
	ctx := s.T().Context()
	params := s.createSession(50)

	s.mockPayment.EXPECT().GetCheckoutSession(gomock.Any(), "cs_1").
		Return(nil, domain.NewProviderError("stripe", http.StatusInternalServerError, "boom", nil))
	_, err := s.services.Materializer.Complete(ctx, "cs_1")
	s.Require().Error(err)
	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "released after failure")
	session, _ := s.store.session("cs_1")
	s.True(session.CreditRestored)
	s.Equal(domain.PaymentStatusPending, session.PaymentStatus)

	s.expectMaterialization(params.Metadata)
	orderID, err := s.services.Materializer.Complete(ctx, "cs_1")
	s.Require().NoError(err)
	s.decimalEqual("0", s.store.user(buyerID).StoreCredit, "retaken on retry")
	session, _ = s.store.session("cs_1")
	s.False(session.CreditRestored)
	s.decimalEqual("50", s.store.order(orderID).CreditApplied, "credit applied")
}

func (s *ScenarioTestSuite) TestFailedDeliveryDoesNotReleaseCreditOfConcurrentOrder() {
	ctx := s.T().Context()
	params := s.createSession(50)

	var orderID uuid.UUID
	s.mockPayment.EXPECT().GetCheckoutSession(gomock.Any(), "cs_1").
		DoAndReturn(func(c context.Context, _ string) (*domain.PaymentSession, error) {
			// повторная доставка того же события создает заказ, пока первая ждет провайдера
			var err error
			orderID, err = s.services.Materializer.Complete(c, "cs_1")
			s.Require().NoError(err)
			return nil, domain.NewProviderError("stripe", http.StatusGatewayTimeout, "provider timeout", nil)
		})
	s.expectMaterialization(params.Metadata)

	_, err := s.services.Materializer.Complete(ctx, "cs_1")
	s.Require().Error(err)
	s.Require().NotEqual(uuid.Nil, orderID)

	session, _ := s.store.session("cs_1")
	s.Equal(domain.PaymentStatusPaid, session.PaymentStatus)
	s.False(session.CreditRestored)
	s.decimalEqual("50", s.store.order(orderID).CreditApplied, "credit applied")
	s.decimalEqual("0", s.store.user(buyerID).StoreCredit, "credit consumed by paid order stays consumed")
}

func (s *ScenarioTestSuite) TestCompleteRecreatesMissingSession() {
	meta := CheckoutMetadata{
		UserID:      buyerID,
		StoreCredit: decimal.Zero,
		Shipping:    decimal.NewFromInt(7),
		Items:       []MetadataItem{{ProductID: productID, Size: "M", Quantity: 2}},
	}.Encode()
	s.expectMaterialization(meta)

	orderID, err := s.services.Materializer.Complete(s.T().Context(), "cs_1")
	s.Require().NoError(err)

	session, ok := s.store.session("cs_1")
	s.Require().True(ok)
	s.Equal(domain.PaymentStatusPaid, session.PaymentStatus)
	s.Equal(orderID, *session.OrderID)
	s.Equal(buyerID, s.store.order(orderID).UserID)
}

func (s *ScenarioTestSuite) TestFailReleasesReservationOnce() {
	ctx := s.T().Context()
	s.createSession(50)

	s.Require().NoError(s.services.Materializer.Fail(ctx, "cs_1"))
	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "released")
	session, _ := s.store.session("cs_1")
	s.Equal(domain.PaymentStatusFailed, session.PaymentStatus)

	s.Require().NoError(s.services.Materializer.Fail(ctx, "cs_1"))
	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "released once")

	s.Require().NoError(s.services.Materializer.Fail(ctx, "cs_unknown"))
}

func (s *ScenarioTestSuite) TestLateExpiryAfterPaymentIsNoop() {
	ctx := s.T().Context()
	params := s.createSession(50)
	s.expectMaterialization(params.Metadata)
	orderID, err := s.services.Materializer.Complete(ctx, "cs_1")
	s.Require().NoError(err)

	s.Require().NoError(s.services.Materializer.Fail(ctx, "cs_1"))
	s.decimalEqual("0", s.store.user(buyerID).StoreCredit, "credit stays consumed")
	session, _ := s.store.session("cs_1")
	s.Equal(domain.PaymentStatusPaid, session.PaymentStatus)
	s.Equal(orderID, *session.OrderID)
}

func (s *ScenarioTestSuite) seedOrder(status domain.OrderStatusType, credit int64) uuid.UUID {
	id := uuid.New()
	s.store.orders[id] = domain.Order{
		ID:                id,
		UserID:            buyerID,
		CheckoutSessionID: gofakeit.UUID(),
		Status:            status,
		Subtotal:          decimal.NewFromInt(100),
		CreditApplied:     decimal.NewFromInt(credit),
		Total:             decimal.NewFromInt(100 - credit),
		PaymentIntentID:   "pi_" + gofakeit.LetterN(6),
	}
	return id
}

func (s *ScenarioTestSuite) TestCancel() {
	ctx := s.T().Context()
	owner := Actor{UserID: buyerID}

	cases := []struct {
		name    string
		status  domain.OrderStatusType
		actor   Actor
		wantErr error
		credit  string
	}{
		{name: "processing", status: domain.OrderStatusProcessing, actor: owner, credit: "70"},
		{name: "pending", status: domain.OrderStatusPending, actor: Actor{UserID: 99, Admin: true}, credit: "70"},
		{name: "shipped", status: domain.OrderStatusShipped, actor: owner, wantErr: domain.ErrStateConflict, credit: "50"},
		{name: "paid", status: domain.OrderStatusPaid, actor: owner, wantErr: domain.ErrStateConflict, credit: "50"},
		{name: "stranger", status: domain.OrderStatusProcessing, actor: Actor{UserID: 99}, wantErr: domain.ErrForbidden, credit: "50"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.store.users[buyerID] = func() domain.User {
				u := s.store.users[buyerID]
				u.StoreCredit = decimal.NewFromInt(50)
				return u
			}()
			id := s.seedOrder(tc.status, 20)
			if tc.wantErr == nil {
				s.mockNotifier.EXPECT().OrderCancelled(gomock.Any())
			}

			order, err := s.services.Fulfillment.Cancel(ctx, id, tc.actor)
			s.decimalEqual(tc.credit, s.store.user(buyerID).StoreCredit, "buyer credit")
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				s.Equal(tc.status, s.store.order(id).Status)
				return
			}
			s.Require().NoError(err)
			s.Equal(domain.OrderStatusCancelled, order.Status)
		})
	}
}

func (s *ScenarioTestSuite) TestCancelStuckPaidOrderAfterRepush() {
	ctx := s.T().Context()
	owner := Actor{UserID: buyerID}
	id := s.seedOrder(domain.OrderStatusPaid, 20)

	// передача в доставку не удалась, заказ остался PAID
	_, err := s.services.Fulfillment.Cancel(ctx, id, owner)
	s.Require().ErrorIs(err, domain.ErrStateConflict)

	s.mockShipping.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(&domain.ShipmentOrder{ProviderOrderID: "ss_9"}, nil)
	pushed, err := s.services.Fulfillment.Push(ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusProcessing, pushed.Status)

	s.mockNotifier.EXPECT().OrderCancelled(gomock.Any())
	cancelled, err := s.services.Fulfillment.Cancel(ctx, id, owner)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, cancelled.Status)
	s.decimalEqual("70", s.store.user(buyerID).StoreCredit, "credit restored on cancel")
}

func (s *ScenarioTestSuite) TestRefundAfterCancelDoesNotRestoreTwice() {
	ctx := s.T().Context()
	id := s.seedOrder(domain.OrderStatusProcessing, 20)

	s.mockNotifier.EXPECT().OrderCancelled(gomock.Any())
	_, err := s.services.Fulfillment.Cancel(ctx, id, Actor{UserID: buyerID})
	s.Require().NoError(err)
	s.decimalEqual("70", s.store.user(buyerID).StoreCredit, "after cancel")

	s.mockPayment.EXPECT().CreateRefund(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Refund{ID: "re_1", Amount: decimal.NewFromInt(80)}, nil)
	s.mockNotifier.EXPECT().OrderRefunded(gomock.Any(), gomock.Any())

	res, err := s.services.Refund.Refund(ctx, id, decimal.Zero)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusRefunded, res.Order.Status)
	s.decimalEqual("70", s.store.user(buyerID).StoreCredit, "not restored twice")
}

func (s *ScenarioTestSuite) TestRefundProviderFailureKeepsState() {
	id := s.seedOrder(domain.OrderStatusProcessing, 20)
	s.mockPayment.EXPECT().CreateRefund(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewProviderError("stripe", http.StatusBadRequest, "charge_already_refunded", nil))

	_, err := s.services.Refund.Refund(s.T().Context(), id, decimal.Zero)
	s.Require().ErrorIs(err, domain.ErrRefundFailed)
	s.Equal(domain.OrderStatusProcessing, s.store.order(id).Status)
	s.decimalEqual("50", s.store.user(buyerID).StoreCredit, "unchanged")

	_, err = s.services.Refund.Refund(s.T().Context(), id, decimal.NewFromInt(1000))
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *ScenarioTestSuite) TestCommissionRates() {
	cases := []struct {
		name       string
		tier       domain.UserTier
		count      int
		commission string
	}{
		{name: "founder", tier: domain.TierFounder, count: 20, commission: "15"},
		{name: "vip", tier: domain.TierVIP, count: 4, commission: "10"},
		{name: "member", tier: domain.TierMember, count: 0, commission: ""},
		{name: "member promoted to vip", tier: domain.TierMember, count: 2, commission: "10"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			ref := s.store.users[referrerID]
			ref.Tier = tc.tier
			ref.ReferralCount = tc.count
			ref.StoreCredit = decimal.Zero
			s.store.users[referrerID] = ref
			buyer := s.store.users[buyerID]
			buyer.IsReferralValid = false
			s.store.users[buyerID] = buyer

			id := s.seedOrder(domain.OrderStatusPaid, 0)
			s.services.Commission.Apply(s.T().Context(), s.store.order(id))

			commission, ok := s.store.commission(id)
			if tc.commission == "" {
				s.False(ok)
				s.decimalEqual("0", s.store.user(referrerID).StoreCredit, "no payout")
				return
			}
			s.Require().True(ok)
			s.decimalEqual(tc.commission, commission.Amount, "commission")
			s.decimalEqual(tc.commission, s.store.user(referrerID).StoreCredit, "payout")
		})
	}
}

func (s *ScenarioTestSuite) TestReferralValidatedOnce() {
	ctx := s.T().Context()

	first := s.seedOrder(domain.OrderStatusPaid, 0)
	s.services.Commission.Apply(ctx, s.store.order(first))
	second := s.seedOrder(domain.OrderStatusPaid, 0)
	s.services.Commission.Apply(ctx, s.store.order(second))
	// повторное начисление по тому же заказу
	s.services.Commission.Apply(ctx, s.store.order(second))

	s.Equal(5, s.store.user(referrerID).ReferralCount)
	s.True(s.store.user(buyerID).IsReferralValid)
	_, commissions := s.store.count()
	s.Equal(2, commissions)
	s.decimalEqual("20", s.store.user(referrerID).StoreCredit, "two payouts")
}

func (s *ScenarioTestSuite) TestNoReferrerNoCommission() {
	buyer := s.store.users[buyerID]
	buyer.ReferrerID = nil
	s.store.users[buyerID] = buyer

	id := s.seedOrder(domain.OrderStatusPaid, 0)
	s.services.Commission.Apply(s.T().Context(), s.store.order(id))

	_, ok := s.store.commission(id)
	s.False(ok)
	s.Equal(4, s.store.user(referrerID).ReferralCount)
}
