package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/itssocoldhere/glowbio/internal/service"
	"github.com/itssocoldhere/glowbio/internal/ui"
)

type UserHandler struct {
	directoryService *service.DirectoryService
}

func NewUserHandler(directoryService *service.DirectoryService) *UserHandler {
	return &UserHandler{
		directoryService: directoryService,
	}
}

// Show returns the decorated Discord user for the id in the path.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	user, err := h.directoryService.Lookup(r.Context(), userID)
	if err != nil {
		h.lookupError(w, userID, err)
		return
	}

	ui.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) lookupError(w http.ResponseWriter, userID string, err error) {
	if errors.Is(err, service.ErrDirectoryUnavailable) {
		ui.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		slog.Warn("discord user lookup rejected", "user_id", userID, "status", restErr.Response.StatusCode)
		ui.ErrorDetails(w, restErr.Response.StatusCode, "Discord API error", string(restErr.ResponseBody))
		return
	}

	slog.Error("discord user lookup failed", "error", err, "user_id", userID)
	ui.ErrorDetails(w, http.StatusInternalServerError, "Server error", err.Error())
}
