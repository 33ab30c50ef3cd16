package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/mindcare/internal/api"
	"github.com/mcoot/mindcare/internal/config"
	"github.com/mcoot/mindcare/internal/factory"
	"github.com/mcoot/mindcare/internal/web"
)

func main() {
	configPath := flag.String("config", "", "config file, or a directory containing config.yaml (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(configPath string) error {
	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}
	settings, err := config.Load(paths...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: settings.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Create application factory
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := factory.New(ctx, factory.FromSettings(settings, logger))
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close application", slog.String("error", err.Error()))
		}
	}()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		Storage:         app.Storage,
		Profiles:        app.Profiles,
		MoodService:     app.MoodService,
		BookingService:  app.BookingService,
		ForumService:    app.ForumService,
		StressAnalyzer:  app.StressAnalyzer,
		SettingsService: app.SettingsService,
		ResourceLibrary: app.ResourceLibrary,
		SupportService:  app.SupportService,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		Clock:           app.Clock,
		Profiles:        app.Profiles,
		MoodService:     app.MoodService,
		BookingService:  app.BookingService,
		ForumService:    app.ForumService,
		StressAnalyzer:  app.StressAnalyzer,
		SettingsService: app.SettingsService,
		ResourceLibrary: app.ResourceLibrary,
		SupportService:  app.SupportService,
		HubManager:      app.HubManager,
		StaticDir:       staticDir(settings.Server.StaticDir, logger),
		SecureCookies:   settings.Server.SecureCookies,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	server := api.NewServer(ctx, mux, settings.Server, logger)
	// Event streams never finish on their own
	server.OnShutdown(app.HubManager.Close)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", settings.Storage.Type),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}

// staticDir returns dir if it exists; pages still render without it
func staticDir(dir string, logger *slog.Logger) string {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	logger.Warn("static directory not found", slog.String("dir", dir))
	return ""
}
