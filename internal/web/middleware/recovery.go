package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface.
// It renders a plain HTML error page on panic.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error | MindCare</title></head>
<body>
<h1>Something went wrong</h1>
<p>We could not load this page. Please try again in a moment.</p>
<p><a href="/">Return to home</a></p>
</body>
</html>`))
}
