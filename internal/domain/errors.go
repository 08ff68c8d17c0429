package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation             = errors.New("validation error")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInsufficientCredit     = errors.New("insufficient store credit")
	ErrStateConflict          = errors.New("state conflict")
	ErrInvalidSignature       = errors.New("invalid webhook signature")
	ErrCheckoutCreationFailed = errors.New("checkout creation failed")
	ErrRefundFailed           = errors.New("refund failed")
)

// ProviderError ошибка внешнего провайдера (платежного или службы доставки) с его собственным
// http статусом и сообщением.
type ProviderError struct {
	Err        error
	Provider   string
	Message    string
	StatusCode int
}

func NewProviderError(provider string, statusCode int, message string, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s provider error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
