package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/models"
	"github.com/lexdesk-dev/lexdesk/internal/store"
)

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// email normalizes the optional address; an empty field stays NULL so
// the unique index only applies to clients that have one.
func (r ClientRequest) email() *string {
	if r.Email == "" {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(r.Email))
	return &normalized
}

func (h *Handler) GetClients(ctx *gin.Context) {
	clients, err := h.store.Clients()

	if err != nil {
		log.Printf("Failed to retrieve clients: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	ok(ctx, gin.H{"clients": clients})
}

func (h *Handler) GetClientList(ctx *gin.Context) {
	options, err := h.store.ClientList()

	if err != nil {
		log.Printf("Failed to retrieve client list: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to retrieve client list")
		return
	}

	ok(ctx, gin.H{"clients": options})
}

func (h *Handler) AddClient(ctx *gin.Context) {
	var req ClientRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	client := models.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.email(),
		Address: req.Address,
	}

	if err := h.store.AddClient(&client); err != nil {
		if store.IsConstraintViolation(err) {
			fail(ctx, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Failed to create client: %v", err)
		fail(ctx, http.StatusInternalServerError, "Failed to create client")
		return
	}

	ok(ctx, gin.H{"client": client})
}

func (h *Handler) UpdateClient(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var req ClientRequest

	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	client := models.Client{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.email(),
		Address: req.Address,
	}

	if err := h.store.UpdateClient(&client); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(ctx, http.StatusNotFound, "Client not found")
			return
		}
		if store.IsConstraintViolation(err) {
			fail(ctx, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Failed to update client %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Failed to update client")
		return
	}

	ok(ctx, gin.H{"client": client})
}

func (h *Handler) DeleteClient(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.DeleteClient(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(ctx, http.StatusNotFound, "Client not found")
			return
		}
		log.Printf("Failed to delete client %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	ok(ctx, gin.H{"message": "Client deleted successfully"})
}
