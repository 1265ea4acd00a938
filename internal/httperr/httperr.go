package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every error response carries the same envelope the success path uses,
// with success=false and a short human-readable message. Raw store errors
// go to the logs, never into the message.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorEnvelope{
		Success: false,
		Error:   message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}
