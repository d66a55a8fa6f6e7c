package handler

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/itssocoldhere/glowbio/internal/ui"
)

type HomeHandler struct {
	files fs.FS
}

func NewHomeHandler(files fs.FS) *HomeHandler {
	return &HomeHandler{files: files}
}

// FrontEnd returns dir when it exists on disk and the bundled files otherwise.
func FrontEnd(dir string, bundled fs.FS) fs.FS {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return os.DirFS(dir)
	}
	slog.Info("static dir not found, serving bundled front end", "dir", dir)
	return bundled
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFileFS(w, r, h.files, "index.html")
}

// Static serves the front end's assets.
func (h *HomeHandler) Static() http.Handler {
	fileServer := http.FileServerFS(h.files)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(w, r)
	})
}

func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	ui.Error(w, http.StatusNotFound, "Not found")
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
