package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStats(ctx *gin.Context) {
	stats, err := h.store.DashboardStats()

	if err != nil {
		log.Printf("Failed to compute dashboard stats: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to retrieve dashboard stats")
		return
	}

	ok(ctx, gin.H{"stats": stats})
}
