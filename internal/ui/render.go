package ui

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("render json failed", "error", err)
	}
}

// Error writes {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ErrorDetails writes {"error": message, "details": details}.
func ErrorDetails(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, map[string]string{"error": message, "details": details})
}
