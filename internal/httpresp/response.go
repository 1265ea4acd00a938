package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool `json:"success"`
	Payload any  `json:"payload"`
}

func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Payload: payload})
}

func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Payload: payload})
}
