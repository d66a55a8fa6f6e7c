package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/itssocoldhere/glowbio/internal/ctxkeys"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with an id and the resolved client IP. An
// incoming X-Request-ID is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := ctxkeys.WithRequestID(r.Context(), id)
		ctx = ctxkeys.WithClientIP(ctx, getClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
