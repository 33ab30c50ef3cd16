package middleware

import (
	"log/slog"
	"net/http"

	shared "github.com/mcoot/mindcare/internal/middleware"
)

// Logging creates logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return shared.Logging(logger.With(slog.String("surface", "api")))
}
