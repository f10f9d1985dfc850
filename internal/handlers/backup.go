package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Backup starts a manual backup and acknowledges immediately with the
// intended file path. The copy itself is fire-and-forget; its outcome
// is only logged.
func (h *Handler) Backup(ctx *gin.Context) {
	path, _, err := h.store.Backup(h.backupDir)

	if err != nil {
		log.Printf("Failed to start backup: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to start backup")
		return
	}

	ok(ctx, gin.H{"path": path, "message": "Backup started"})
}
