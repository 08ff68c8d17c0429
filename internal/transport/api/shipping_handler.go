package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type ShippingHandler struct {
	svs FulfillmentServicer
}

func NewShippingHandler(svs FulfillmentServicer) *ShippingHandler {
	return &ShippingHandler{svs: svs}
}

type RatesQuery struct {
	City       string `form:"city"`
	State      string `form:"state"`
	PostalCode string `form:"postalCode" binding:"required,max_bytes=32"`
	Country    string `form:"country"    binding:"required,len=2"`
	Items      int    `form:"items"      binding:"omitempty,gt=0,lte=40"`
}

// Rates GET RouteGroup + ShippingRatesRoute.
func (h *ShippingHandler) Rates(c *gin.Context) {
	var query RatesQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if query.Items == 0 {
		query.Items = 1
	}

	reqCtx, cancel := context.WithTimeout(c, ProviderTimeout)
	defer cancel()

	rates, err := h.svs.Rates(reqCtx, domain.Address{
		City:       query.City,
		State:      query.State,
		PostalCode: query.PostalCode,
		Country:    query.Country,
	}, query.Items)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]RateResponse, len(rates))
	for i, r := range rates {
		response[i] = RateResponse{
			ServiceName: r.ServiceName,
			ServiceCode: r.ServiceCode,
			Cost:        r.Total().InexactFloat64(),
		}
	}
	middlewares.Success(c, http.StatusOK, "", response)
}
