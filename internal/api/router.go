package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/mindcare/internal/api/handler"
	"github.com/mcoot/mindcare/internal/api/middleware"
	shared "github.com/mcoot/mindcare/internal/middleware"
	"github.com/mcoot/mindcare/internal/services/booking"
	"github.com/mcoot/mindcare/internal/services/forum"
	"github.com/mcoot/mindcare/internal/services/mood"
	"github.com/mcoot/mindcare/internal/services/profile"
	"github.com/mcoot/mindcare/internal/services/resources"
	"github.com/mcoot/mindcare/internal/services/settings"
	"github.com/mcoot/mindcare/internal/services/stress"
	"github.com/mcoot/mindcare/internal/services/support"
	"github.com/mcoot/mindcare/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	Storage         storage.Storage
	Profiles        *profile.Registry
	MoodService     *mood.Service
	BookingService  *booking.Service
	ForumService    *forum.Service
	StressAnalyzer  *stress.Analyzer
	SettingsService *settings.Service
	ResourceLibrary *resources.Library
	SupportService  *support.Service
}

// NewRouter creates a new API router with all routes configured.
// It also serves the Prometheus scrape endpoint at /metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	profileHandler := handler.NewProfileHandler(cfg.Profiles)
	sessionHandler := handler.NewSessionHandler(cfg.Logger)
	localeHandler := handler.NewLocaleHandler()
	copilotHandler := handler.NewCopilotHandler(cfg.Logger)
	moodHandler := handler.NewMoodHandler(cfg.MoodService)
	bookingHandler := handler.NewBookingHandler(cfg.BookingService)
	forumHandler := handler.NewForumHandler(cfg.ForumService)
	stressHandler := handler.NewStressHandler(cfg.StressAnalyzer)
	settingsHandler := handler.NewSettingsHandler(cfg.SettingsService)
	resourcesHandler := handler.NewResourcesHandler(cfg.ResourceLibrary)
	emergencyHandler := handler.NewEmergencyHandler(cfg.SupportService)
	healthHandler := handler.NewHealthHandler(cfg.Storage, cfg.Logger)

	// Create middleware
	profileMiddleware := middleware.Profile(cfg.Profiles, cfg.Logger)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(shared.Metrics)

	// Routes without a profile
	api.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)
	api.HandleFunc("/profiles", profileHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/counselors", bookingHandler.Counselors).Methods(http.MethodGet)
	api.HandleFunc("/stress/{mode}", stressHandler.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/resources", resourcesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}", resourcesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/emergency", emergencyHandler.Directory).Methods(http.MethodGet)

	// Routes scoped to the X-Profile-ID profile
	scoped := api.NewRoute().Subrouter()
	scoped.Use(profileMiddleware)

	scoped.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	scoped.HandleFunc("/session/signup", sessionHandler.Signup).Methods(http.MethodPost)
	scoped.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)
	scoped.HandleFunc("/session/logout", sessionHandler.Logout).Methods(http.MethodPost)

	scoped.HandleFunc("/locale", localeHandler.Get).Methods(http.MethodGet)
	scoped.HandleFunc("/locale", localeHandler.Set).Methods(http.MethodPut)
	scoped.HandleFunc("/locale/translate", localeHandler.Translate).Methods(http.MethodGet)

	scoped.HandleFunc("/copilot/messages", copilotHandler.Messages).Methods(http.MethodGet)
	scoped.HandleFunc("/copilot/messages", copilotHandler.Send).Methods(http.MethodPost)

	scoped.HandleFunc("/bookings", bookingHandler.Submit).Methods(http.MethodPost)

	scoped.HandleFunc("/forum/posts", forumHandler.List).Methods(http.MethodGet)
	scoped.HandleFunc("/forum/posts", forumHandler.Create).Methods(http.MethodPost)
	scoped.HandleFunc("/forum/posts/{id}", forumHandler.Get).Methods(http.MethodGet)
	scoped.HandleFunc("/forum/posts/{id}/like", forumHandler.Like).Methods(http.MethodPost)
	scoped.HandleFunc("/forum/posts/{id}/replies", forumHandler.Reply).Methods(http.MethodPost)

	scoped.HandleFunc("/emergency/call", emergencyHandler.Call).Methods(http.MethodPost)

	// Mood check-ins and profile settings need a logged in profile
	protected := scoped.NewRoute().Subrouter()
	protected.Use(middleware.RequireSession())
	protected.HandleFunc("/mood", moodHandler.Record).Methods(http.MethodPost)
	protected.HandleFunc("/profile/settings", settingsHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/profile/settings", settingsHandler.Put).Methods(http.MethodPut)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
