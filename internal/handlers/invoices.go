package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/models"
	"github.com/lexdesk-dev/lexdesk/internal/store"
)

type InvoiceRequest struct {
	Amount  float64   `json:"amount" binding:"required,gt=0"`
	DueDate time.Time `json:"due_date" binding:"required"`
	Status  string    `json:"status" binding:"omitempty,oneof=Unpaid Paid"`
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Unpaid Paid"`
}

func (h *Handler) GetInvoices(ctx *gin.Context) {
	caseID, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	invoices, err := h.store.Invoices(caseID)

	if err != nil {
		log.Printf("Failed to retrieve invoices for case %d: %v", caseID, err)
		fail(ctx, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	ok(ctx, gin.H{"invoices": invoices})
}

func (h *Handler) AddInvoice(ctx *gin.Context) {
	caseID, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var req InvoiceRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	invoice := models.Invoice{
		CaseID:  caseID,
		Amount:  req.Amount,
		DueDate: req.DueDate,
		Status:  req.Status,
	}

	if err := h.store.AddInvoice(&invoice); err != nil {
		if store.IsConstraintViolation(err) {
			fail(ctx, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Failed to create invoice: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	ok(ctx, gin.H{"invoice": invoice})
}

func (h *Handler) UpdateInvoiceStatus(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var req InvoiceStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.store.UpdateInvoiceStatus(id, req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(ctx, http.StatusNotFound, "Invoice not found")
			return
		}
		log.Printf("Failed to update invoice %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	ok(ctx, gin.H{"message": "Invoice updated successfully"})
}

func (h *Handler) DeleteInvoice(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.DeleteInvoice(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(ctx, http.StatusNotFound, "Invoice not found")
			return
		}
		log.Printf("Failed to delete invoice %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	ok(ctx, gin.H{"message": "Invoice deleted successfully"})
}
