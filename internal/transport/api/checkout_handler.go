package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/service"
	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CheckoutHandler struct {
	svs CheckoutServicer
}

func NewCheckoutHandler(svs CheckoutServicer) *CheckoutHandler {
	return &CheckoutHandler{svs: svs}
}

type CheckoutItemParams struct {
	ProductID int64           `json:"productId" binding:"required,gt=0"`
	Name      string          `json:"name"      binding:"required,max_bytes=255"`
	Size      string          `json:"size"      binding:"required,max_bytes=32"`
	Quantity  int             `json:"quantity"  binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"dgte0"`
	ImageURL  string          `json:"imageUrl"  binding:"omitempty,url"`
}

type CheckoutParams struct {
	Items           []CheckoutItemParams `json:"items"           binding:"required,min=1,dive"`
	ShippingAddress AddressParams        `json:"shippingAddress"`
	StoreCredit     decimal.Decimal      `json:"storeCredit"     binding:"dgte0"`
}

type CheckoutResponse struct {
	SessionID   string  `json:"sessionId"`
	URL         string  `json:"url"`
	Subtotal    float64 `json:"subtotal"`
	Shipping    float64 `json:"shipping"`
	StoreCredit float64 `json:"storeCredit"`
	Total       float64 `json:"total"`
}

// Create POST RouteGroup + CheckoutRoute.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var params CheckoutParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	items := make([]domain.CheckoutLineItem, len(params.Items))
	for i, item := range params.Items {
		items[i] = domain.CheckoutLineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			ImageURL:  item.ImageURL,
		}
	}

	// создание сессии включает запрос тарифов и вызов платежного провайдера
	reqCtx, cancel := context.WithTimeout(c, ProviderTimeout)
	defer cancel()

	result, err := h.svs.CreateSession(reqCtx, service.CheckoutRequest{
		UserID:      getUserIDFromContext(c),
		Items:       items,
		Destination: params.ShippingAddress.toDomain(),
		StoreCredit: params.StoreCredit,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	middlewares.Success(c, http.StatusCreated, "checkout session created", CheckoutResponse{
		SessionID:   result.SessionID,
		URL:         result.URL,
		Subtotal:    result.Subtotal.InexactFloat64(),
		Shipping:    result.Shipping.InexactFloat64(),
		StoreCredit: result.StoreCredit.InexactFloat64(),
		Total:       result.Total.InexactFloat64(),
	})
}
