package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// pageData collects the chrome data every page needs from the request
func pageData(r *http.Request, title, active string) layout.PageData {
	data := layout.PageData{
		Title:  title,
		Active: active,
		Flash:  middleware.GetFlash(r.Context()),
	}
	if p := middleware.GetProfile(r.Context()); p != nil {
		data.Locale = p.Locale
		data.User = p.Session.Current()
	}
	return data
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		slog.Default().Error("failed to render page", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render(w, r, status, pages.Error(pages.ErrorData{
		PageData: pageData(r, http.StatusText(status), ""),
		Status:   status,
		Message:  message,
	}))
}

// isHTMX reports whether the request came from htmx
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// localPath returns target if it is a path on this site, else fallback
func localPath(target, fallback string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") && !strings.HasPrefix(target, "/\\") {
		return target
	}
	return fallback
}

// NotFound renders the 404 page
func NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusNotFound, "Page not found")
}
