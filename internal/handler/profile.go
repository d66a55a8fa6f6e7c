package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/itssocoldhere/glowbio/internal/service"
	"github.com/itssocoldhere/glowbio/internal/ui"
	"github.com/itssocoldhere/glowbio/internal/validation"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type commentRequest struct {
	UserID flexString `json:"userId"`
	Text   *string    `json:"text"`
}

type socialLinkRequest struct {
	UserID   flexString `json:"userId"`
	Platform string     `json:"platform"`
	Href     string     `json:"href"`
}

type glowColorRequest struct {
	UserID flexString `json:"userId"`
	Color  string     `json:"color"`
}

func (h *ProfileHandler) Comments(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	comments, err := h.profileService.Comments(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load comments", "error", err, "user_id", userID)
		ui.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	ui.JSON(w, http.StatusOK, comments)
}

func (h *ProfileHandler) AppendComment(w http.ResponseWriter, r *http.Request) {
	const missing = "Missing userId or text"

	var req commentRequest
	if !bindJSON(w, r, &req, missing) {
		return
	}

	userID := req.UserID.String()
	if req.Text == nil || userID == "" {
		ui.Error(w, http.StatusBadRequest, missing)
		return
	}
	if err := validation.ValidateIdentity(userID); err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.profileService.AppendComment(r.Context(), userID, *req.Text)
	if errors.Is(err, validation.ErrCommentRequired) {
		ui.Error(w, http.StatusBadRequest, missing)
		return
	}
	if err != nil {
		slog.Error("failed to append comment", "error", err, "user_id", userID)
		ui.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	ui.JSON(w, http.StatusOK, map[string]any{"ok": true, "entry": comment})
}

func (h *ProfileHandler) Links(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	links, err := h.profileService.Links(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load social links", "error", err, "user_id", userID)
		ui.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	ui.JSON(w, http.StatusOK, links)
}

// UpsertLink stores one link per platform. Known aliases are normalized, an
// href that is not an http(s) URL removes the platform's link.
func (h *ProfileHandler) UpsertLink(w http.ResponseWriter, r *http.Request) {
	const missing = "Missing userId, platform or href"

	var req socialLinkRequest
	if !bindJSON(w, r, &req, missing) {
		return
	}

	userID := req.UserID.String()
	platform := strings.TrimSpace(req.Platform)
	href := strings.TrimSpace(req.Href)
	if userID == "" || platform == "" || href == "" {
		ui.Error(w, http.StatusBadRequest, missing)
		return
	}
	if err := validation.ValidateIdentity(userID); err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if p, ok := validation.ResolvePlatform(platform); ok {
		platform = p.Key
	}

	_, err := h.profileService.UpsertLink(r.Context(), userID, platform, href)
	if err != nil {
		slog.Error("failed to save social link", "error", err, "user_id", userID, "platform", platform)
		ui.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	ui.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ProfileHandler) GlowColor(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	color, ok, err := h.profileService.GlowColor(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load glow color", "error", err, "user_id", userID)
		ui.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	var out *string
	if ok {
		out = &color
	}
	ui.JSON(w, http.StatusOK, map[string]*string{"color": out})
}

// SetGlowColor accepts color names and hex values. Colors below the
// brightness floor are refused like any other invalid value.
func (h *ProfileHandler) SetGlowColor(w http.ResponseWriter, r *http.Request) {
	var req glowColorRequest
	if !bindJSON(w, r, &req, "Missing userId or color") {
		return
	}

	userID := req.UserID.String()
	if err := validation.ValidateIdentity(userID); err != nil {
		ui.JSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	color, ok := validation.ResolveColor(req.Color)
	if !ok {
		ui.JSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": validation.ErrInvalidColor.Error()})
		return
	}
	if validation.IsTooDark(color) {
		ui.JSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "color too dark"})
		return
	}

	err := h.profileService.SetGlowColor(r.Context(), userID, color)
	if err != nil {
		slog.Error("failed to save glow color", "error", err, "user_id", userID)
		ui.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	ui.JSON(w, http.StatusOK, map[string]any{"ok": true, "color": color})
}
