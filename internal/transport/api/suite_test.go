package api

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/fsdevblog/groph-store/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-store/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-store/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

const (
	testUserID  int64 = 1
	testAdminID int64 = 99
)

// handlerSuite общий стенд: роутер на моках сервисов и токены юзера и администратора.
type handlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	router         *gin.Engine
	jwtSecret      []byte
	userToken      string
	adminToken     string
	mockCheckout   *mocks.MockCheckoutServicer
	mockWebhooks   *mocks.MockWebhookServicer
	mockCredit     *mocks.MockCreditServicer
	mockOrders     *mocks.MockOrderServicer
	mockFulfilment *mocks.MockFulfillmentServicer
	mockRefund     *mocks.MockRefundServicer
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.mockCheckout = mocks.NewMockCheckoutServicer(s.ctrl)
	s.mockWebhooks = mocks.NewMockWebhookServicer(s.ctrl)
	s.mockCredit = mocks.NewMockCreditServicer(s.ctrl)
	s.mockOrders = mocks.NewMockOrderServicer(s.ctrl)
	s.mockFulfilment = mocks.NewMockFulfillmentServicer(s.ctrl)
	s.mockRefund = mocks.NewMockRefundServicer(s.ctrl)
	s.jwtSecret = []byte("super secret key")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router, err := New(RouterArgs{
		Logger:             logger,
		JWTSecretKey:       s.jwtSecret,
		CheckoutService:    s.mockCheckout,
		WebhookService:     s.mockWebhooks,
		CreditService:      s.mockCredit,
		OrderService:       s.mockOrders,
		FulfillmentService: s.mockFulfilment,
		RefundService:      s.mockRefund,
	})
	s.Require().NoError(err)
	s.router = router

	s.userToken, err = tokens.GenerateUserJWT(testUserID, false, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.adminToken, err = tokens.GenerateUserJWT(testAdminID, true, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
}

func (s *handlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// do выполняет запрос и возвращает статус и разобранный конверт ответа.
func (s *handlerSuite) do(method, url, token string, body any) (int, *testutils.Envelope) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   reader,
	}, testutils.WithBearer(token), testutils.WithJSON())

	env, err := testutils.ReadEnvelope(res)
	s.Require().NoError(err)
	return res.StatusCode, env
}

func (s *handlerSuite) decodeData(env *testutils.Envelope, v any) {
	s.Require().NoError(json.Unmarshal(env.Data, v))
}

// statusOnly вспомогательная проверка, когда тело ответа не важно.
func (s *handlerSuite) statusOnly(method, url, token string, body any) int {
	status, _ := s.do(method, url, token, body)
	return status
}

