package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/models"
	"github.com/lexdesk-dev/lexdesk/internal/store"
)

type CaseRequest struct {
	CaseNumber  string `json:"case_number" binding:"required"`
	ClientID    *uint  `json:"client_id"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=Open Closed Pending"`
}

func (h *Handler) GetCases(ctx *gin.Context) {
	cases, err := h.store.Cases()

	if err != nil {
		log.Printf("Failed to retrieve cases: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to retrieve cases")
		return
	}

	ok(ctx, gin.H{"cases": cases})
}

func (h *Handler) AddCase(ctx *gin.Context) {
	var req CaseRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	legalCase := models.Case{
		CaseNumber:  req.CaseNumber,
		ClientID:    req.ClientID,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := h.store.AddCase(&legalCase); err != nil {
		if store.IsConstraintViolation(err) {
			fail(ctx, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Failed to create case: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to create case")
		return
	}

	ok(ctx, gin.H{"case": legalCase})
}

func (h *Handler) UpdateCase(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var req CaseRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	legalCase := models.Case{
		ID:          id,
		CaseNumber:  req.CaseNumber,
		ClientID:    req.ClientID,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := h.store.UpdateCase(&legalCase); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(ctx, http.StatusNotFound, "Case not found")
			return
		}
		if store.IsConstraintViolation(err) {
			fail(ctx, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Failed to update case %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Failed to update case")
		return
	}

	ok(ctx, gin.H{"case": legalCase})
}

func (h *Handler) DeleteCase(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.DeleteCase(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(ctx, http.StatusNotFound, "Case not found")
			return
		}
		log.Printf("Failed to delete case %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Failed to delete case")
		return
	}

	ok(ctx, gin.H{"message": "Case deleted successfully"})
}
