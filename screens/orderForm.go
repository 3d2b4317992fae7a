package screens

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) OrderForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Still in Development"})
	}
}
