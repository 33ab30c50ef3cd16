package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	shared "github.com/mcoot/mindcare/internal/middleware"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/profile"
)

type contextKey string

const (
	profileContextKey contextKey = "profile"

	// profileCookieMaxAge keeps the browser profile for a year
	profileCookieMaxAge = 365 * 24 * 60 * 60
)

// GetProfile returns the request's profile, or nil outside Profile middleware
func GetProfile(ctx context.Context) *profile.Profile {
	p, _ := ctx.Value(profileContextKey).(*profile.Profile)
	return p
}

// GetUser returns the logged in user of the request's profile, or nil
func GetUser(ctx context.Context) *model.SessionUser {
	p := GetProfile(ctx)
	if p == nil {
		return nil
	}
	return p.Session.Current()
}

// Profile loads the browser's profile from its cookie, issuing a new
// profile ID when the cookie is missing or invalid
func Profile(registry *profile.Registry, secureCookies bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := profileFromCookie(r)
			if !ok {
				id = profile.NewID()
				http.SetCookie(w, &http.Cookie{
					Name:     shared.ProfileCookie,
					Value:    string(id),
					Path:     "/",
					MaxAge:   profileCookieMaxAge,
					HttpOnly: true,
					Secure:   secureCookies,
					SameSite: http.SameSiteLaxMode,
				})
			}

			p, err := registry.Get(r.Context(), id)
			if err != nil {
				logger.Error("failed to load profile", slog.String("profile", string(id)), slog.Any("error", err))
				webPanicHandler(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), profileContextKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func profileFromCookie(r *http.Request) (model.ProfileID, bool) {
	cookie, err := r.Cookie(shared.ProfileCookie)
	if err != nil {
		return "", false
	}
	id, err := profile.ParseID(cookie.Value)
	if err != nil {
		return "", false
	}
	return id, true
}

// RequireSession redirects to the login page unless the profile is logged in
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetUser(r.Context()) == nil {
				http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
