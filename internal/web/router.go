package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	shared "github.com/mcoot/mindcare/internal/middleware"
	"github.com/mcoot/mindcare/internal/services/booking"
	"github.com/mcoot/mindcare/internal/services/forum"
	"github.com/mcoot/mindcare/internal/services/mood"
	"github.com/mcoot/mindcare/internal/services/profile"
	"github.com/mcoot/mindcare/internal/services/resources"
	"github.com/mcoot/mindcare/internal/services/settings"
	"github.com/mcoot/mindcare/internal/services/stress"
	"github.com/mcoot/mindcare/internal/services/support"
	"github.com/mcoot/mindcare/internal/web/handler"
	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	Clock           clock.Clock
	Profiles        *profile.Registry
	MoodService     *mood.Service
	BookingService  *booking.Service
	ForumService    *forum.Service
	StressAnalyzer  *stress.Analyzer
	SettingsService *settings.Service
	ResourceLibrary *resources.Library
	SupportService  *support.Service
	HubManager      *sse.HubManager
	StaticDir       string // Path to static files directory
	SecureCookies   bool
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	profileMiddleware := middleware.Profile(cfg.Profiles, cfg.SecureCookies, cfg.Logger)
	requireSession := middleware.RequireSession()

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(shared.Metrics)

	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.Logger)
	languageHandler := handler.NewLanguageHandler()
	dashboardHandler := handler.NewDashboardHandler(cfg.MoodService, cfg.Logger)
	copilotHandler := handler.NewCopilotHandler(cfg.Logger)
	forumHandler := handler.NewForumHandler(cfg.ForumService, hubManager, cfg.Logger)
	bookingHandler := handler.NewBookingHandler(cfg.BookingService, cfg.Clock, cfg.Logger)
	stressHandler := handler.NewStressHandler(cfg.StressAnalyzer, cfg.Logger)
	profileHandler := handler.NewProfileHandler(cfg.SettingsService, cfg.Logger)
	emergencyHandler := handler.NewEmergencyHandler(cfg.SupportService, cfg.Logger)
	resourcesHandler := handler.NewResourcesHandler(cfg.ResourceLibrary, cfg.Logger)
	mindfulnessHandler := handler.NewMindfulnessHandler()

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Pages open to every profile, logged in or not
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(profileMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/signup", authHandler.SignupPage).Methods(http.MethodGet)
	public.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	public.HandleFunc("/language", languageHandler.Set).Methods(http.MethodPost)

	public.HandleFunc("/copilot", copilotHandler.View).Methods(http.MethodGet)
	public.HandleFunc("/copilot", copilotHandler.Send).Methods(http.MethodPost)

	public.HandleFunc("/forum", forumHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/forum/events", forumHandler.Events).Methods(http.MethodGet)
	public.HandleFunc("/forum/posts", forumHandler.Create).Methods(http.MethodPost)
	public.HandleFunc("/forum/posts/{id}", forumHandler.View).Methods(http.MethodGet)
	public.HandleFunc("/forum/posts/{id}/like", forumHandler.Like).Methods(http.MethodPost)
	public.HandleFunc("/forum/posts/{id}/replies", forumHandler.Reply).Methods(http.MethodPost)

	public.HandleFunc("/booking", bookingHandler.Form).Methods(http.MethodGet)
	public.HandleFunc("/booking", bookingHandler.Submit).Methods(http.MethodPost)

	public.HandleFunc("/stress", stressHandler.View).Methods(http.MethodGet)
	public.HandleFunc("/stress", stressHandler.Analyze).Methods(http.MethodPost)

	public.HandleFunc("/resources", resourcesHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/mindfulness", mindfulnessHandler.View).Methods(http.MethodGet)
	public.HandleFunc("/emergency", emergencyHandler.View).Methods(http.MethodGet)
	public.HandleFunc("/emergency/call", emergencyHandler.Call).Methods(http.MethodPost)

	// Pages that need a logged in session
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(profileMiddleware)
	protected.Use(requireSession)
	protected.HandleFunc("/dashboard", dashboardHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/mood", dashboardHandler.RecordMood).Methods(http.MethodPost)
	protected.HandleFunc("/profile", profileHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profileHandler.SaveDetails).Methods(http.MethodPost)
	protected.HandleFunc("/profile/preferences", profileHandler.SavePreferences).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	return r
}
