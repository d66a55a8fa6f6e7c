package routes

import (
	"io/fs"
	"net/http"

	"github.com/itssocoldhere/glowbio"
	"github.com/itssocoldhere/glowbio/internal/app"
	"github.com/itssocoldhere/glowbio/internal/handler"
	"github.com/itssocoldhere/glowbio/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	bundled, _ := fs.Sub(glowbio.PublicFS, "public")
	home := handler.NewHomeHandler(handler.FrontEnd(app.Cfg.StaticDir, bundled))
	user := handler.NewUserHandler(app.DirectoryService)
	profile := handler.NewProfileHandler(app.ProfileService)

	mux := http.NewServeMux()

	// ============================================================================
	// FRONT END
	// ============================================================================

	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.Handle("GET /", home.Static())
	mux.HandleFunc("GET /healthz", home.Health)

	// ============================================================================
	// API
	// ============================================================================

	// Discord user card
	mux.HandleFunc("GET /api/user/{id}", user.Show)

	// Comments (writes rate limited per IP)
	commentLimit := middleware.RateLimit(app.Cfg.CommentRateLimit, app.Cfg.CommentRateWindow)
	mux.HandleFunc("GET /api/comments/{id}", profile.Comments)
	mux.HandleFunc("POST /api/comments", commentLimit(profile.AppendComment))

	// Social links
	mux.HandleFunc("GET /api/social-links/{id}", profile.Links)
	mux.HandleFunc("POST /api/social-links", profile.UpsertLink)

	// Glow color
	mux.HandleFunc("GET /api/glow-color/{id}", profile.GlowColor)
	mux.HandleFunc("POST /api/glow-color", profile.SetGlowColor)

	// Unknown API paths answer in JSON instead of falling through to static files
	mux.HandleFunc("GET /api/", home.NotFound)
	mux.HandleFunc("POST /api/", home.NotFound)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.CORS,
	)
}
