package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

const (
	SignatureHeader = "Stripe-Signature"
	// maxWebhookBody верхняя граница тела вебхука.
	maxWebhookBody = 1 << 16
)

type WebhookHandler struct {
	svs WebhookServicer
}

func NewWebhookHandler(svs WebhookServicer) *WebhookHandler {
	return &WebhookHandler{svs: svs}
}

// Handle POST WebhookRoute. Подпись считается по сырому телу, поэтому тело читается как есть, без биндинга.
// Любая ошибка подписи или обработки отдается провайдеру как 400, провайдер повторяет доставку на любой не-2xx.
func (h *WebhookHandler) Handle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := c.GetRawData()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, WebhookTimeout)
	defer cancel()

	if dispatchErr := h.svs.Dispatch(reqCtx, payload, c.GetHeader(SignatureHeader)); dispatchErr != nil {
		c.Status(http.StatusBadRequest)
		abortWithError(c, dispatchErr)
		return
	}

	middlewares.Success(c, http.StatusOK, "received", gin.H{"received": true})
}
