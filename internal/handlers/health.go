package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "ok",
		"message":   "LexDesk is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
