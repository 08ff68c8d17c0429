package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrInsufficientCredit, http.StatusBadRequest},
		{domain.ErrInvalidSignature, http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrRecordNotFound, http.StatusNotFound},
		{domain.ErrStateConflict, http.StatusConflict},
		{domain.ErrDuplicateKey, http.StatusConflict},
		{domain.ErrCheckoutCreationFailed, http.StatusBadGateway},
		{domain.ErrRefundFailed, http.StatusBadGateway},
		{fmt.Errorf("rates: %w", domain.NewProviderError("shipstation", 500, "boom", nil)), http.StatusBadGateway},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func runErrors(t *testing.T, production bool, handler gin.HandlerFunc) (int, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Errors(production))
	r.GET("/", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestErrors(t *testing.T) {
	t.Run("client error keeps message", func(t *testing.T) {
		status, env := runErrors(t, false, func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("order 1: %w", domain.ErrStateConflict))
			c.Abort()
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.False(t, env.Success)
		assert.Equal(t, "order 1: state conflict", env.Message)
		assert.NotEmpty(t, env.Stack)
	})

	t.Run("internal error is hidden", func(t *testing.T) {
		status, env := runErrors(t, true, func(c *gin.Context) {
			_ = c.Error(errors.New("pq: password authentication failed"))
			c.Abort()
		})
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal server error", env.Message)
		assert.Empty(t, env.Stack)
	})

	t.Run("validation errors", func(t *testing.T) {
		type params struct {
			Quantity int `validate:"required"`
		}
		status, env := runErrors(t, false, func(c *gin.Context) {
			err := validator.New().Struct(params{})
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			c.Abort()
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		require.Len(t, env.ErrorSources, 1)
		assert.Equal(t, "params.Quantity", env.ErrorSources[0].Field)
		assert.Equal(t, "failed on `required`", env.ErrorSources[0].Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		status, env := runErrors(t, false, func(c *gin.Context) {
			_ = c.Error(errors.New("unexpected EOF")).SetType(gin.ErrorTypeBind)
			c.Abort()
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid request body", env.Message)
	})

	t.Run("explicit status wins", func(t *testing.T) {
		status, _ := runErrors(t, false, func(c *gin.Context) {
			c.Status(http.StatusTooManyRequests)
			_ = c.Error(errors.New("slow down"))
			c.Abort()
		})
		assert.Equal(t, http.StatusTooManyRequests, status)
	})
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("secret")

	r := gin.New()
	r.Use(Errors(true))
	r.GET("/", AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetInt64(CurrentUserIDKey),
			"admin": c.GetBool(CurrentUserAdminKey),
		})
	})
	r.GET("/admin", AuthRequired(secret), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	request := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	userToken, err := tokens.GenerateUserJWT(7, false, time.Hour, secret)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateUserJWT(8, true, time.Hour, secret)
	require.NoError(t, err)
	expiredToken, err := tokens.GenerateUserJWT(7, false, -time.Minute, secret)
	require.NoError(t, err)
	foreignToken, err := tokens.GenerateUserJWT(7, true, time.Hour, []byte("other"))
	require.NoError(t, err)

	w := request("/", userToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"admin":false}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, request("/", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request("/", expiredToken).Code)
	assert.Equal(t, http.StatusUnauthorized, request("/", foreignToken).Code)

	assert.Equal(t, http.StatusForbidden, request("/admin", userToken).Code)
	assert.Equal(t, http.StatusNoContent, request("/admin", adminToken).Code)
}
