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

type AppointmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Location    string    `json:"location"`
}

func (h *Handler) GetAppointments(ctx *gin.Context) {
	caseID, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	appointments, err := h.store.Appointments(caseID)

	if err != nil {
		log.Printf("Failed to retrieve appointments for case %d: %v", caseID, err)
		fail(ctx, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	ok(ctx, gin.H{"appointments": appointments})
}

func (h *Handler) AddAppointment(ctx *gin.Context) {
	caseID, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var req AppointmentRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	appointment := models.Appointment{
		CaseID:      caseID,
		Title:       req.Title,
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
	}

	if err := h.store.AddAppointment(&appointment); err != nil {
		if store.IsConstraintViolation(err) {
			fail(ctx, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Failed to create appointment: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	ok(ctx, gin.H{"appointment": appointment})
}

func (h *Handler) DeleteAppointment(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.DeleteAppointment(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(ctx, http.StatusNotFound, "Appointment not found")
			return
		}
		log.Printf("Failed to delete appointment %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	ok(ctx, gin.H{"message": "Appointment deleted successfully"})
}
