package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/mindcare/internal/config"
	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/dependencies/random"
	"github.com/mcoot/mindcare/internal/services/booking"
	"github.com/mcoot/mindcare/internal/services/chat"
	"github.com/mcoot/mindcare/internal/services/forum"
	"github.com/mcoot/mindcare/internal/services/locale"
	"github.com/mcoot/mindcare/internal/services/mood"
	"github.com/mcoot/mindcare/internal/services/profile"
	"github.com/mcoot/mindcare/internal/services/resources"
	"github.com/mcoot/mindcare/internal/services/scheduler"
	"github.com/mcoot/mindcare/internal/services/session"
	"github.com/mcoot/mindcare/internal/services/settings"
	"github.com/mcoot/mindcare/internal/services/stress"
	"github.com/mcoot/mindcare/internal/services/support"
	"github.com/mcoot/mindcare/internal/storage"
	"github.com/mcoot/mindcare/internal/storage/memory"
	redisstorage "github.com/mcoot/mindcare/internal/storage/redis"
	"github.com/mcoot/mindcare/internal/storage/sqlite"
	"github.com/mcoot/mindcare/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeSQLite = config.StorageSQLite
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Scheduler       *scheduler.Scheduler
	Accounts        *session.Accounts
	Catalog         locale.Catalog
	Assistant       *chat.Assistant
	Profiles        *profile.Registry
	MoodService     *mood.Service
	BookingService  *booking.Service
	ForumService    *forum.Service
	StressAnalyzer  *stress.Analyzer
	SettingsService *settings.Service
	ResourceLibrary *resources.Library
	SupportService  *support.Service
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// Profile configures the per-profile stores (optional)
	// If nil, defaults to profile.DefaultConfig()
	Profile *profile.Config
	// Permissions decides device access for stress checks (optional)
	// If nil, camera and microphone are both granted
	Permissions stress.Permissions
}

// FromSettings converts loaded server settings into a factory Config
func FromSettings(settings *config.Config, logger *slog.Logger) Config {
	profileCfg := profile.DefaultConfig()
	if settings.Auth.PasswordCost != 0 {
		profileCfg.Session.PasswordCost = settings.Auth.PasswordCost
	}
	profileCfg.Chat.ReplyDelay = settings.Chat.ReplyDelay
	profileCfg.IdleTimeout = settings.Profiles.IdleTimeout
	profileCfg.MaxProfiles = settings.Profiles.MaxProfiles

	redisCfg := redisstorage.Config{
		URL:          settings.Storage.Redis.URL,
		PoolSize:     settings.Storage.Redis.PoolSize,
		MinIdleConns: settings.Storage.Redis.MinIdleConns,
		KeyPrefix:    settings.Storage.Redis.KeyPrefix,
		SessionTTL:   settings.Storage.Redis.SessionTTL,
	}

	return Config{
		Logger:      logger,
		StorageType: settings.Storage.Type,
		RedisConfig: &redisCfg,
		SQLitePath:  settings.Storage.SQLite.Path,
		Profile:     &profileCfg,
		Permissions: stress.NewStaticPermissions(settings.Devices.Camera, settings.Devices.Microphone),
	}
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	profileCfg := profileConfig(cfg)
	perms := cfg.Permissions
	if perms == nil {
		perms = stress.NewStaticPermissions(true, true)
	}

	return newWithDependencies(store, clock.New(), random.New(), perms, profileCfg, logger), nil
}

// profileConfig resolves the registry settings. Session slots that expire
// in Redis must be re-read, or cached profiles would outlive them.
func profileConfig(cfg Config) profile.Config {
	profileCfg := profile.DefaultConfig()
	if cfg.Profile != nil {
		profileCfg = *cfg.Profile
	}
	if cfg.StorageType == StorageTypeRedis && cfg.RedisConfig != nil && cfg.RedisConfig.SessionTTL > 0 {
		profileCfg.RevalidateSession = true
	}
	return profileCfg
}

func openStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(ctx, *cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlite.Open(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be memory, redis or sqlite", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	perms stress.Permissions,
	profileCfg profile.Config,
	logger *slog.Logger,
) *App {
	sched := scheduler.New(clk)
	accounts := session.NewAccounts(store)
	catalog := locale.DefaultCatalog()
	assistant := chat.NewDefaultAssistant(rnd)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Scheduler:       sched,
		Accounts:        accounts,
		Catalog:         catalog,
		Assistant:       assistant,
		Profiles:        profile.NewRegistry(store, clk, accounts, catalog, assistant, sched, profileCfg, logger),
		MoodService:     mood.New(store),
		BookingService:  booking.New(store, clk, logger),
		ForumService:    forum.New(clk, broadcaster, logger),
		StressAnalyzer:  stress.NewAnalyzer(perms, sched, logger),
		SettingsService: settings.New(store, clk),
		ResourceLibrary: resources.New(),
		SupportService:  support.New(clk, logger),
		HubManager:      hubManager,
		Broadcaster:     broadcaster,
		Logger:          logger,
	}
}

// Close cancels pending work, disconnects event streams and closes storage
func (a *App) Close() error {
	a.Profiles.Close()
	a.HubManager.Close()
	return a.Storage.Close()
}
