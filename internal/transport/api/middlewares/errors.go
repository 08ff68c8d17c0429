package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusBadGateway:
		return "bad gateway"
	default:
		return "internal server error"
	}
}

// StatusFor определяет http статус по ошибке сервисного слоя.
func StatusFor(err error) int {
	var providerErr *domain.ProviderError
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInsufficientCredit),
		errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStateConflict),
		errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCheckoutCreationFailed),
		errors.Is(err, domain.ErrRefundFailed),
		errors.As(err, &providerErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Errors рендерит первую ошибку из контекста gin в Envelope. Вне production к ответу добавляется стек.
func Errors(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = StatusFor(firstErr.Err)
		}

		envelope := Envelope{Success: false}

		var validationErrs validator.ValidationErrors
		switch {
		case firstErr.IsType(gin.ErrorTypeBind) && errors.As(firstErr.Err, &validationErrs):
			status = http.StatusUnprocessableEntity
			envelope.Message = "validation failed"
			envelope.ErrorSources = errorSources(validationErrs)
		case firstErr.IsType(gin.ErrorTypeBind):
			status = http.StatusBadRequest
			envelope.Message = "invalid request body"
		case status < http.StatusInternalServerError, status == http.StatusBadGateway,
			firstErr.IsType(gin.ErrorTypePublic):
			envelope.Message = firstErr.Error()
		default:
			envelope.Message = statusErrorText(status)
		}

		if !production {
			envelope.Stack = fmt.Sprintf("%+v", firstErr.Err)
		}

		c.AbortWithStatusJSON(status, envelope)
	}
}

func errorSources(errs validator.ValidationErrors) []ErrorSource {
	sources := make([]ErrorSource, len(errs))
	for i, fe := range errs {
		msg := "failed on `" + fe.Tag() + "`"
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		sources[i] = ErrorSource{Field: fe.Namespace(), Message: msg}
	}
	return sources
}
