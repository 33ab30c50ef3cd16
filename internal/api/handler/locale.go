package handler

import (
	"net/http"

	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/services/locale"
)

// LocaleHandler handles language endpoints
type LocaleHandler struct{}

// NewLocaleHandler creates a new locale handler
func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

// Get handles GET /api/v1/locale
func (h *LocaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())
	response.JSON(w, http.StatusOK, response.LocaleFromModel(p.Locale.Language()))
}

// Set handles PUT /api/v1/locale
func (h *LocaleHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req request.SetLocaleRequest
	if !decode(w, r, &req) {
		return
	}

	lang, ok := locale.ParseLanguage(req.Language)
	if !ok {
		WriteError(w, NewInvalidRequestError("unsupported language"))
		return
	}

	p := middleware.MustGetProfile(r.Context())
	p.Locale.SetLanguage(lang)
	response.JSON(w, http.StatusOK, response.LocaleFromModel(p.Locale.Language()))
}

// Translate handles GET /api/v1/locale/translate?key=
func (h *LocaleHandler) Translate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		WriteError(w, NewInvalidRequestError("key is required"))
		return
	}

	p := middleware.MustGetProfile(r.Context())
	response.JSON(w, http.StatusOK, response.Translation{
		Key:      key,
		Language: string(p.Locale.Language()),
		Text:     p.Locale.Translate(key),
	})
}
