package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	svs CreditServicer
}

func NewCreditHandler(svs CreditServicer) *CreditHandler {
	return &CreditHandler{svs: svs}
}

type CreditResponse struct {
	Balance float64 `json:"balance"`
}

// Index GET RouteGroup + CreditRoute.
func (h *CreditHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.Balance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	middlewares.Success(c, http.StatusOK, "", CreditResponse{Balance: balance.InexactFloat64()})
}
