package middlewares

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey    = "currentUserID"
	CurrentUserAdminKey = "currentUserAdmin"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан,
// вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	tokenStr, ok := strings.CutPrefix(tokenHeader, "Bearer ")
	if !ok || tokenStr == "" {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст id юзера (CurrentUserIDKey)
// и признак администратора (CurrentUserAdminKey).
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			_ = c.Error(fmt.Errorf("%w: %s", domain.ErrUnauthorized, err.Error()))
			c.Abort()
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Set(CurrentUserAdminKey, claims.Admin)
		c.Next()
	}
}

// AdminRequired пропускает только администраторов. Ставится после AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CurrentUserAdminKey) {
			_ = c.Error(fmt.Errorf("admin only: %w", domain.ErrForbidden))
			c.Abort()
			return
		}
		c.Next()
	}
}
