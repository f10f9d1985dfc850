package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/advisor"
)

type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Ask forwards a free-text legal question to the AI advisor. A missing
// credential is reported distinctly from a provider failure; provider
// messages pass through to the chat transcript.
func (h *Handler) Ask(ctx *gin.Context) {
	var req AskRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	answer, err := h.advisor.Ask(ctx.Request.Context(), req.Prompt)

	if err != nil {
		if errors.Is(err, advisor.ErrMissingAPIKey) {
			fail(ctx, http.StatusServiceUnavailable, "The AI assistant is not configured: no API credential is set")
			return
		}

		var providerErr *advisor.ProviderError
		if errors.As(err, &providerErr) {
			fail(ctx, http.StatusBadGateway, providerErr.Error())
			return
		}

		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ok(ctx, gin.H{"answer": answer})
}
