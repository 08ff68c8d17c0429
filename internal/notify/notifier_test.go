package notify_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/notify"
	"github.com/fsdevblog/groph-store/internal/notify/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type NotifierTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mailer   *mocks.MockMailer
	runner   *mocks.MockRunner
	notifier *notify.Notifier
	order    domain.Order
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (s *NotifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mailer = mocks.NewMockMailer(s.ctrl)
	s.runner = mocks.NewMockRunner(s.ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s.notifier = notify.NewNotifier(s.mailer, s.runner, "shop@example.com", logger)

	s.order = domain.Order{
		ID:            uuid.New(),
		Email:         gofakeit.Email(),
		Currency:      "usd",
		Subtotal:      decimal.NewFromInt(198),
		Shipping:      decimal.NewFromInt(9),
		CreditApplied: decimal.NewFromInt(50),
		Total:         decimal.NewFromInt(157),
		Items: []domain.OrderItem{
			{Name: "Tee", Size: "M", Quantity: 2, UnitPrice: decimal.NewFromInt(99)},
		},
	}
}

func (s *NotifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// runInline выполняет поставленную задачу сразу и возвращает ее ошибку через errCh.
func (s *NotifierTestSuite) runInline(errCh chan<- error) {
	s.runner.EXPECT().Go(gomock.Any(), gomock.Any()).
		Do(func(_ string, fn func(context.Context) error) {
			errCh <- fn(context.Background())
		})
}

func (s *NotifierTestSuite) TestOrderPlaced() {
	errCh := make(chan error, 1)
	s.runInline(errCh)

	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notify.Message) error {
			s.Equal("shop@example.com", msg.From)
			s.Equal(s.order.Email, msg.To)
			s.Contains(msg.Subject, "Order confirmed")
			s.Contains(msg.Text, "2 x Tee (M) 99.00 USD")
			s.Contains(msg.Text, "Store credit: -50.00 USD")
			s.Contains(msg.Text, "Total: 157.00 USD")
			return nil
		})

	s.notifier.OrderPlaced(s.order)
	s.NoError(<-errCh)
}

func (s *NotifierTestSuite) TestOrderRefundedFailure() {
	errCh := make(chan error, 1)
	s.runInline(errCh)

	sendErr := domain.NewProviderError(notify.ProviderName, 500, "boom", nil)
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notify.Message) error {
			s.Contains(msg.Text, "A refund of 25.50 USD")
			return sendErr
		})

	s.notifier.OrderRefunded(s.order, decimal.RequireFromString("25.5"))

	err := <-errCh
	var pErr *domain.ProviderError
	s.True(errors.As(err, &pErr))
}

func (s *NotifierTestSuite) TestCancelledMentionsCredit() {
	errCh := make(chan error, 1)
	s.runInline(errCh)

	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notify.Message) error {
			s.Contains(msg.Text, "Store credit of 50.00 USD")
			return nil
		})

	s.notifier.OrderCancelled(s.order)
	s.NoError(<-errCh)
}

func (s *NotifierTestSuite) TestSkipsOrderWithoutEmail() {
	s.order.Email = ""
	// ни runner, ни mailer вызываться не должны
	s.notifier.OrderDelivered(s.order)
}
