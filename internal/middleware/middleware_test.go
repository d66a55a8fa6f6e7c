package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/itssocoldhere/glowbio/internal/ctxkeys"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(okHandler), mark("first"), mark("second"), mark("third"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestCORS(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/glow-color/1", nil))
	require.True(t, called)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))

	called = false
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/comments", nil))
	require.False(t, called)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	var gotID, gotIP string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxkeys.RequestID(r.Context())
		gotIP = ctxkeys.ClientIP(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:5123"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEmpty(t, gotID)
	require.Equal(t, gotID, rec.Header().Get("X-Request-ID"))
	require.Equal(t, "10.0.0.7", gotIP)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "abc", gotID)
}

func TestRequestLoggingCapturesStatus(t *testing.T) {
	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/1", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(2, time.Minute, func() time.Time { return now })

	require.True(t, rl.Allow("1.1.1.1"))
	require.True(t, rl.Allow("1.1.1.1"))
	require.False(t, rl.Allow("1.1.1.1"))
	require.True(t, rl.Allow("2.2.2.2"))

	now = now.Add(61 * time.Second)
	require.True(t, rl.Allow("1.1.1.1"))

	now = now.Add(5 * time.Minute)
	rl.cleanup()
	require.Empty(t, rl.requests)
}

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Now()
	limited := rateLimit(newRateLimiter(1, time.Minute, func() time.Time { return now }))(okHandler)

	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/api/comments", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		return r
	}

	rec := httptest.NewRecorder()
	limited(rec, req())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	limited(rec, req())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, rec.Body.String())
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "[::1]:8080"
	require.Equal(t, "::1", getClientIP(r))

	r.Header.Set("X-Real-IP", " 198.51.100.2 ")
	require.Equal(t, "198.51.100.2", getClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	require.Equal(t, "203.0.113.9", getClientIP(r))
}
