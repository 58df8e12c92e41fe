// Package main is the entry point for the quote bot.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AutMai/discord-net/internal/adapters/discord"
	"github.com/AutMai/discord-net/internal/adapters/ops"
	"github.com/AutMai/discord-net/internal/adapters/storage/sqlite"
	"github.com/AutMai/discord-net/internal/app"
	"github.com/AutMai/discord-net/internal/platform/config"
	"github.com/AutMai/discord-net/internal/platform/logging"
	"github.com/AutMai/discord-net/internal/platform/metrics"
	"github.com/AutMai/discord-net/internal/platform/telemetry"
	"github.com/AutMai/discord-net/internal/ports"
	"github.com/AutMai/discord-net/internal/render"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the bot.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting quotebot",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Open the sqlite quote store
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening quote database: %w", err)
	}

	store := sqlite.NewStore(db)
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("closing quote store", slog.Any("error", closeErr))
		}
	}()

	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Create quote service (application layer)
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Renderer: render.New(),
		Logger:   logger,
	})

	// 8. Create the Discord bot
	botMetrics := metrics.New(prometheus.DefaultRegisterer)
	handler := discord.NewInteractionHandler(quoteService, logger, botMetrics)

	bot, err := discord.NewBot(discord.Config{
		Token:   cfg.Discord.Token,
		AppID:   cfg.Discord.AppID,
		GuildID: cfg.Discord.GuildID,
	}, handler, logger)
	if err != nil {
		return fmt.Errorf("creating discord bot: %w", err)
	}

	if err := healthRegistry.Register(bot); err != nil {
		return fmt.Errorf("registering discord health check: %w", err)
	}

	// 9. Create the ops HTTP server
	buildInfo := ops.NewBuildInfo(Version, Commit, BuildTime)
	server := ops.New(&cfg.Server, logger)
	ops.SetupRouter(server.Engine(), ops.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		HealthHandler: ops.NewHealthHandler(healthRegistry, buildInfo),
	})

	// 10. Connect to Discord and register commands
	if err := bot.Start(ctx); err != nil {
		return fmt.Errorf("starting discord bot: %w", err)
	}

	// 11. Start ops server (non-blocking)
	serverErr := server.Start()

	// 12. Wait for shutdown signal
	return waitForShutdown(ctx, logger, bot, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or the ops
// server fails. It then closes the gateway and drains the ops server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	bot *discord.Bot,
	server *ops.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("ops server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := bot.Stop(); err != nil {
		logger.Error("closing discord gateway", slog.Any("error", err))
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ops server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
