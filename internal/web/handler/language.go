package handler

import (
	"net/http"
	"net/url"

	"github.com/mcoot/mindcare/internal/services/locale"
	"github.com/mcoot/mindcare/internal/web/middleware"
)

// LanguageHandler switches the profile's display language
type LanguageHandler struct{}

// NewLanguageHandler creates a new LanguageHandler
func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// Set applies the requested language and returns to the previous page.
// lang=auto follows the browser's Accept-Language header.
func (h *LanguageHandler) Set(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	value := r.FormValue("lang")

	if value == "auto" {
		p.Locale.SetLanguage(locale.Negotiate(r.Header.Get("Accept-Language")))
	} else if lang, ok := locale.ParseLanguage(value); ok {
		p.Locale.SetLanguage(lang)
	}

	http.Redirect(w, r, refererPath(r), http.StatusSeeOther)
}

func refererPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	target := ref.Path
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return localPath(target, "/")
}
