package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/api/apierr"
	shared "github.com/mcoot/mindcare/internal/middleware"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/profile"
)

type contextKey string

const profileContextKey contextKey = "profile"

// Profile loads the profile named by the X-Profile-ID header.
// Unlike the web surface, the API never issues IDs implicitly.
func Profile(registry *profile.Registry, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := profile.ParseID(r.Header.Get(shared.ProfileHeader))
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			p, err := registry.Get(r.Context(), id)
			if err != nil {
				logger.Error("failed to load profile", slog.String("profile", string(id)), slog.Any("error", err))
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), profileContextKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects requests whose profile is not logged in
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetUser(r.Context()) == nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetProfile returns the request's profile, or nil outside Profile middleware
func GetProfile(ctx context.Context) *profile.Profile {
	p, _ := ctx.Value(profileContextKey).(*profile.Profile)
	return p
}

// MustGetProfile returns the request's profile or panics
func MustGetProfile(ctx context.Context) *profile.Profile {
	p := GetProfile(ctx)
	if p == nil {
		panic("no profile in context - profile middleware not applied?")
	}
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
