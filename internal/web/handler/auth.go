package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// AuthHandler handles login, signup and logout for the request's profile
type AuthHandler struct {
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(logger *slog.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, "", "", r.URL.Query().Get("next"))
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, "", "Invalid form data", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	user, ok, err := p.Session.Login(r.Context(), email, password)
	if err != nil {
		h.logger.Error("login failed", slog.String("profile", string(p.ID)), slog.Any("error", err))
		h.renderLogin(w, r, email, p.Locale.Translate("auth.loginFailed"), next)
		return
	}
	if !ok {
		h.renderLogin(w, r, email, p.Locale.Translate("auth.loginFailed"), next)
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Welcome back, "+user.Name+"!")
	http.Redirect(w, r, localPath(next, "/dashboard"), http.StatusSeeOther)
}

// SignupPage renders the signup page
func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderSignup(w, r, "", "", "")
}

// Signup handles signup form submission
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	if err := r.ParseForm(); err != nil {
		h.renderSignup(w, r, "", "", "Invalid form data")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	if name == "" || email == "" || password == "" {
		h.renderSignup(w, r, name, email, "Name, email and password are required")
		return
	}
	if password != confirm {
		h.renderSignup(w, r, name, email, p.Locale.Translate("auth.passwordMismatch"))
		return
	}

	user, ok, err := p.Session.Signup(r.Context(), name, email, password)
	if err != nil {
		h.logger.Error("signup failed", slog.String("profile", string(p.ID)), slog.Any("error", err))
	}
	if err != nil || !ok {
		h.renderSignup(w, r, name, email, p.Locale.Translate("auth.signupFailed"))
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Account created! Welcome, "+user.Name+"!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout ends the profile's session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	if err := p.Session.Logout(r.Context()); err != nil {
		h.logger.Error("logout failed", slog.String("profile", string(p.ID)), slog.Any("error", err))
		middleware.SetFlash(w, middleware.FlashError, "Logout failed, please try again")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, middleware.FlashInfo, "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, email, errorMsg, next string) {
	render(w, r, http.StatusOK, pages.Login(pages.LoginData{
		PageData: pageData(r, "Login", ""),
		Email:    email,
		Error:    errorMsg,
		Next:     next,
	}))
}

func (h *AuthHandler) renderSignup(w http.ResponseWriter, r *http.Request, name, email, errorMsg string) {
	render(w, r, http.StatusOK, pages.Signup(pages.SignupData{
		PageData: pageData(r, "Sign Up", ""),
		Name:     name,
		Email:    email,
		Error:    errorMsg,
	}))
}
