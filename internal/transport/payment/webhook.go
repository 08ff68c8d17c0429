package payment

import (
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/stripe/stripe-go/v81/webhook"
)

// WebhookVerifier проверяет подпись Stripe-Signature и достает из конверта id события и id сессии.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// VerifyEvent возвращает domain.ErrInvalidSignature, если подпись не сходится или просрочена.
// Версия API события не сверяется с версией библиотеки.
func (v *WebhookVerifier) VerifyEvent(payload []byte, signature string) (*domain.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSignature, err.Error())
	}

	result := domain.WebhookEvent{
		ID:   event.ID,
		Type: domain.WebhookEventType(event.Type),
	}
	if event.Data != nil && event.Data.Object != nil {
		if id, ok := event.Data.Object["id"].(string); ok {
			result.SessionID = id
		}
	}
	return &result, nil
}
