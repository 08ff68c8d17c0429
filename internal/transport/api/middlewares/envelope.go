package middlewares

import "github.com/gin-gonic/gin"

type ErrorSource struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope единый формат ответа API.
type Envelope struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Data         any           `json:"data"`
	Meta         any           `json:"meta,omitempty"`
	ErrorSources []ErrorSource `json:"errorSources,omitempty"`
	Stack        string        `json:"stack,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func SuccessWithMeta(c *gin.Context, status int, message string, data, meta any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data, Meta: meta})
}
