package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/store"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates the credentials and returns the sanitized user
// record. The UI keeps it as its session state; there is no server-side
// session or token.
func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := h.store.AttemptLogin(req.Username, req.Password)

	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			fail(ctx, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Printf("Login failed: %v", err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ok(ctx, gin.H{"user": user})
}
