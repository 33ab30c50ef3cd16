// Package config loads server configuration from an optional config.yaml and
// MINDCARE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MINDCARE_SERVER_PORT
const EnvPrefix = "MINDCARE"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the server
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
	Chat     ChatConfig     `mapstructure:"chat"`
	Devices  DevicesConfig  `mapstructure:"devices"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	StaticDir       string        `mapstructure:"static_dir"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
}

// StorageConfig selects and configures the durable key-value backend
type StorageConfig struct {
	Type   string       `mapstructure:"type"`
	Redis  RedisConfig  `mapstructure:"redis"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
}

// SQLiteConfig holds the database file location
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds password hashing settings
type AuthConfig struct {
	PasswordCost int `mapstructure:"password_cost"`
}

// ProfilesConfig bounds the profiles held in memory
type ProfilesConfig struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	MaxProfiles int           `mapstructure:"max_profiles"`
}

// ChatConfig holds copilot settings
type ChatConfig struct {
	ReplyDelay time.Duration `mapstructure:"reply_delay"`
}

// DevicesConfig decides whether camera and microphone access is granted
// to stress checks
type DevicesConfig struct {
	Camera     bool `mapstructure:"camera"`
	Microphone bool `mapstructure:"microphone"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SlogLevel converts the configured level, defaulting to info
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration and environment variables. Each path is either a
// config file, which must exist, or a directory searched for config.yaml.
// Without paths the working directory, ./config and /etc/mindcare are
// searched.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config", "/etc/mindcare"}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case err == nil && info.IsDir():
			v.AddConfigPath(p)
		case err == nil:
			v.SetConfigFile(p)
		case filepath.Ext(p) != "":
			return nil, fmt.Errorf("config file %s: %w", p, err)
		default:
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that defaults cannot fix
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory:
	case StorageRedis:
		if c.Storage.Redis.URL == "" {
			return errors.New("storage.redis.url required when storage.type is redis")
		}
	case StorageSQLite:
		if c.Storage.SQLite.Path == "" {
			return errors.New("storage.sqlite.path required when storage.type is sqlite")
		}
	default:
		return fmt.Errorf("invalid storage.type %q: must be memory, redis or sqlite", c.Storage.Type)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Profiles.IdleTimeout < 0 || c.Profiles.MaxProfiles < 0 {
		return errors.New("profiles.idle_timeout and profiles.max_profiles must not be negative")
	}
	if c.Chat.ReplyDelay < 0 {
		return errors.New("chat.reply_delay must not be negative")
	}
	return nil
}

// setDefaults configures default values for all settings
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.static_dir", "internal/web/static")
	v.SetDefault("server.secure_cookies", false)

	// Storage defaults
	v.SetDefault("storage.type", StorageMemory)
	v.SetDefault("storage.redis.url", "redis://localhost:6379")
	v.SetDefault("storage.redis.key_prefix", "mindcare")
	v.SetDefault("storage.redis.pool_size", 10)
	v.SetDefault("storage.redis.min_idle_conns", 2)
	v.SetDefault("storage.redis.session_ttl", "0s")
	v.SetDefault("storage.sqlite.path", "mindcare.db")

	// Auth defaults (0 means bcrypt.DefaultCost)
	v.SetDefault("auth.password_cost", 0)

	// Profile defaults
	v.SetDefault("profiles.idle_timeout", "30m")
	v.SetDefault("profiles.max_profiles", 10000)

	// Chat defaults
	v.SetDefault("chat.reply_delay", "1500ms")

	// Device defaults
	v.SetDefault("devices.camera", true)
	v.SetDefault("devices.microphone", true)

	// Log defaults
	v.SetDefault("log.level", "info")
}
