// Package notify отправляет покупателю письма о жизненном цикле заказа.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName       = "mailer"
	RouteSendEmail     = "/emails"
	defaultMailTimeout = 10 * time.Second
)

type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// LogMailer пишет письма в лог вместо отправки. Используется, когда почтовый сервис не настроен.
type LogMailer struct {
	l *logrus.Entry
}

func NewLogMailer(l *logrus.Logger) *LogMailer {
	return &LogMailer{l: l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "log_mailer",
	})}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.l.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("email")
	return nil
}

// HTTPMailer отправляет письма через Resend-совместимый API: POST /emails с Bearer токеном.
type HTTPMailer struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPMailer(baseURL, apiKey string) *HTTPMailer {
	return &HTTPMailer{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultMailTimeout},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Send при ответе вне 2xx возвращает *domain.ProviderError.
//
//nolint:nonamedreturns
func (m *HTTPMailer) Send(ctx context.Context, msg Message) (err error) {
	raw, marshalErr := json.Marshal(sendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if marshalErr != nil {
		return fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+RouteSendEmail, bytes.NewReader(raw))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := m.httpClient.Do(req)
	if doErr != nil {
		return domain.NewProviderError(ProviderName, 0, "do request: "+doErr.Error(), doErr)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	msgText := resp.Status
	body, readErr := io.ReadAll(resp.Body)
	if readErr == nil {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Message != "" {
			msgText = errResp.Message
		}
	}
	return domain.NewProviderError(ProviderName, resp.StatusCode, msgText, nil)
}
