package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/itssocoldhere/glowbio/internal/app"
	"github.com/itssocoldhere/glowbio/internal/config"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>profile</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := &config.Config{
		AppEnv:            "development",
		StaticDir:         staticDir,
		StorageDriver:     "file",
		DataDir:           t.TempDir(),
		CommandPrefix:     ",",
		ProfileIDs:        []string{"1"},
		CommentRateLimit:  2,
		CommentRateWindow: time.Minute,
	}

	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	require.Nil(t, a.Bot)

	return SetupRoutes(a)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestFrontEnd(t *testing.T) {
	h := newTestServer(t)

	rec := do(h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "profile")

	rec = do(h, http.MethodGet, "/app.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))

	rec = do(h, http.MethodGet, "/healthz", "")
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestCORSOnEveryResponse(t *testing.T) {
	h := newTestServer(t)

	rec := do(h, http.MethodGet, "/api/glow-color/1", "")
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(h, http.MethodOptions, "/api/comments", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUnknownAPIPath(t *testing.T) {
	h := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := do(h, method, "/api/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code, method)
		require.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	}
}

func TestUserWithoutToken(t *testing.T) {
	h := newTestServer(t)

	rec := do(h, http.MethodGet, "/api/user/1", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"DISCORD_BOT_TOKEN not configured"}`, rec.Body.String())
}

func TestProfileRoundTrip(t *testing.T) {
	h := newTestServer(t)

	rec := do(h, http.MethodPost, "/api/social-links", `{"userId":"1","platform":"telegram","href":"https://t.me/x"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/social-links/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"href":"https://t.me/x"`)

	rec = do(h, http.MethodPost, "/api/glow-color", `{"userId":"1","color":"f97316"}`)
	require.JSONEq(t, `{"ok":true,"color":"#f97316"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/glow-color/1", "")
	require.JSONEq(t, `{"color":"#f97316"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/social-links/2", "")
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestCommentsAreRateLimited(t *testing.T) {
	h := newTestServer(t)

	for i := 0; i < 2; i++ {
		rec := do(h, http.MethodPost, "/api/comments", `{"userId":"1","text":"hey"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := do(h, http.MethodPost, "/api/comments", `{"userId":"1","text":"hey"}`)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = do(h, http.MethodGet, "/api/comments/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, strings.Count(rec.Body.String(), `"text":"hey"`))
}

func TestBundledFrontEnd(t *testing.T) {
	cfg := &config.Config{
		AppEnv:            "development",
		StaticDir:         filepath.Join(t.TempDir(), "missing"),
		StorageDriver:     "file",
		DataDir:           t.TempDir(),
		CommentRateLimit:  1,
		CommentRateWindow: time.Minute,
	}
	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	rec := do(SetupRoutes(a), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<title>glowbio</title>")
}
