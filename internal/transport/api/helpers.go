package api

import (
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/service"
	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

func getActorFromContext(c *gin.Context) service.Actor {
	return service.Actor{
		UserID: getUserIDFromContext(c),
		Admin:  c.GetBool(middlewares.CurrentUserAdminKey),
	}
}

// orderIDParam разбирает :id из пути.
func orderIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("order id `%s`: %w", c.Param("id"), domain.ErrValidation)
	}
	return id, nil
}

// abortWithError прикрепляет к ошибке стек и передает ее в middlewares.Errors.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(errors.WithStack(err))
	c.Abort()
}

// abortWithBindError ошибка разбора или валидации тела запроса.
func abortWithBindError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.Abort()
}
