package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lexdesk-dev/lexdesk/internal/advisor"
	"github.com/lexdesk-dev/lexdesk/internal/store"
)

// Handler wires the command surface to the store and the AI advisor.
// Every service failure is converted to the uniform envelope here;
// nothing propagates past this boundary.
type Handler struct {
	store     *store.Store
	advisor   *advisor.Advisor
	backupDir string
}

func New(st *store.Store, adv *advisor.Advisor, backupDir string) *Handler {
	return &Handler{store: st, advisor: adv, backupDir: backupDir}
}

// ok writes the success envelope with the given payload merged in.
func ok(ctx *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for key, value := range payload {
		body[key] = value
	}
	ctx.JSON(http.StatusOK, body)
}

// fail writes the failure envelope. The UI shows the message in a
// toast or inline error and keeps its prior state.
func fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}

func parseID(ctx *gin.Context) (uint, error) {
	idStr := ctx.Param("id")

	if idStr == "" {
		return 0, errors.New("ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid ID")
	}

	return uint(id), nil
}
