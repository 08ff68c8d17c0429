package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/sirupsen/logrus"
)

type eventHandler func(ctx context.Context, event domain.WebhookEvent) error

// WebhookDispatcher проверяет подпись события провайдера и маршрутизирует его по таблице обработчиков.
// Неизвестные типы событий подтверждаются без обработки.
type WebhookDispatcher struct {
	verifier EventVerifier
	deduper  EventDeduper
	sessions SessionHandler
	handlers map[domain.WebhookEventType]eventHandler
	l        *logrus.Entry
}

// NewWebhookDispatcher deduper может быть nil, тогда повторные доставки отсекаются только БД.
func NewWebhookDispatcher(
	verifier EventVerifier,
	sessions SessionHandler,
	deduper EventDeduper,
	l *logrus.Logger,
) *WebhookDispatcher {
	d := &WebhookDispatcher{
		verifier: verifier,
		deduper:  deduper,
		sessions: sessions,
		l:        l.WithField("component", "webhook"),
	}
	d.handlers = map[domain.WebhookEventType]eventHandler{
		domain.EventCheckoutCompleted:     d.completeSession,
		domain.EventAsyncPaymentSucceeded: d.completeSession,
		domain.EventCheckoutExpired:       d.failSession,
		domain.EventAsyncPaymentFailed:    d.failSession,
	}
	return d
}

// Dispatch обрабатывает сырое тело вебхука. Ошибка подписи оборачивает domain.ErrInvalidSignature.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, payload []byte, signature string) error {
	event, err := d.verifier.VerifyEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("verifying webhook: %w", err)
	}

	log := d.l.WithFields(logrus.Fields{"eventID": event.ID, "type": event.Type, "sessionID": event.SessionID})

	handler, ok := d.handlers[event.Type]
	if !ok {
		log.Debug("unhandled event type, acknowledged")
		return nil
	}

	if !d.acquire(ctx, log, event.ID) {
		log.Info("event already processed, acknowledged")
		return nil
	}

	if err := handler(ctx, *event); err != nil {
		d.release(ctx, log, event.ID)
		return fmt.Errorf("handling %s event `%s`: %w", event.Type, event.ID, err)
	}
	return nil
}

func (d *WebhookDispatcher) completeSession(ctx context.Context, event domain.WebhookEvent) error {
	orderID, err := d.sessions.Complete(ctx, event.SessionID)
	if errors.Is(err, domain.ErrStateConflict) {
		// сессия уже закрыта без заказа, повтор доставки ничего не изменит
		d.l.WithError(err).WithField("sessionID", event.SessionID).Warn("completion for closed session ignored")
		return nil
	}
	if err != nil {
		return err //nolint:wrapcheck
	}
	d.l.WithFields(logrus.Fields{"sessionID": event.SessionID, "orderID": orderID.String()}).
		Debug("session completion handled")
	return nil
}

func (d *WebhookDispatcher) failSession(ctx context.Context, event domain.WebhookEvent) error {
	return d.sessions.Fail(ctx, event.SessionID) //nolint:wrapcheck
}

// acquire при недоступном хранилище событие обрабатывается: БД все равно защищает от повторов.
func (d *WebhookDispatcher) acquire(ctx context.Context, log *logrus.Entry, eventID string) bool {
	if d.deduper == nil || eventID == "" {
		return true
	}
	acquired, err := d.deduper.Acquire(ctx, eventID)
	if err != nil {
		log.WithError(err).Warn("event dedupe unavailable")
		return true
	}
	return acquired
}

func (d *WebhookDispatcher) release(ctx context.Context, log *logrus.Entry, eventID string) {
	if d.deduper == nil || eventID == "" {
		return
	}
	if err := d.deduper.Release(context.WithoutCancel(ctx), eventID); err != nil {
		log.WithError(err).Warn("failed to release event claim")
	}
}
