package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ShippingHandlerTestSuite struct {
	handlerSuite
}

func TestShippingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShippingHandlerTestSuite))
}

func (s *ShippingHandlerTestSuite) TestRates() {
	s.mockFulfilment.EXPECT().
		Rates(gomock.Any(), domain.Address{PostalCode: "78701", Country: "US"}, 3).
		Return([]domain.ShippingRate{
			{
				ServiceName:  "USPS Priority Mail",
				ServiceCode:  "usps_priority_mail",
				ShipmentCost: decimal.RequireFromString("8.50"),
				OtherCost:    decimal.RequireFromString("0.49"),
			},
		}, nil)

	status, env := s.do(http.MethodGet, RouteGroup+ShippingRatesRoute+"?postalCode=78701&country=US&items=3",
		s.userToken, nil)
	s.Require().Equal(http.StatusOK, status)

	var resp []RateResponse
	s.decodeData(env, &resp)
	s.Require().Len(resp, 1)
	s.Equal("usps_priority_mail", resp[0].ServiceCode)
	s.InDelta(8.99, resp[0].Cost, 0.001)
}

func (s *ShippingHandlerTestSuite) TestRatesDefaultItems() {
	s.mockFulfilment.EXPECT().Rates(gomock.Any(), gomock.Any(), 1).Return([]domain.ShippingRate{}, nil)

	s.Equal(http.StatusOK,
		s.statusOnly(http.MethodGet, RouteGroup+ShippingRatesRoute+"?postalCode=78701&country=US", s.userToken, nil))
}

func (s *ShippingHandlerTestSuite) TestRatesValidation() {
	urls := []string{
		RouteGroup + ShippingRatesRoute + "?country=US",
		RouteGroup + ShippingRatesRoute + "?postalCode=78701&country=USA",
		RouteGroup + ShippingRatesRoute + "?postalCode=78701&country=US&items=41",
	}
	for _, url := range urls {
		s.Equal(http.StatusUnprocessableEntity, s.statusOnly(http.MethodGet, url, s.userToken, nil), url)
	}
}

func (s *ShippingHandlerTestSuite) TestRatesProviderDown() {
	s.mockFulfilment.EXPECT().
		Rates(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewProviderError("shipstation", http.StatusServiceUnavailable, "maintenance", nil))

	status, env := s.do(http.MethodGet, RouteGroup+ShippingRatesRoute+"?postalCode=78701&country=US",
		s.userToken, nil)
	s.Equal(http.StatusBadGateway, status)
	s.Contains(env.Message, "maintenance")
}
