package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/mindcare/internal/api/apierr"
	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
)

// SessionHandler handles login state endpoints
type SessionHandler struct {
	logger *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(logger *slog.Logger) *SessionHandler {
	return &SessionHandler{logger: logger}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())
	response.JSON(w, http.StatusOK, response.SessionFromModel(p.Session.Current()))
}

// Signup handles POST /api/v1/session/signup
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	p := middleware.MustGetProfile(r.Context())
	user, ok, err := p.Session.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("signup failed", slog.String("profile", string(p.ID)), slog.Any("error", err))
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, apierr.NewEmailExistsError())
		return
	}

	response.Created(w, response.SessionFromModel(user))
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	p := middleware.MustGetProfile(r.Context())
	user, ok, err := p.Session.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("login failed", slog.String("profile", string(p.ID)), slog.Any("error", err))
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, apierr.NewInvalidCredentialsError())
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(user))
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())
	if err := p.Session.Logout(r.Context()); err != nil {
		h.logger.Error("logout failed", slog.String("profile", string(p.ID)), slog.Any("error", err))
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
