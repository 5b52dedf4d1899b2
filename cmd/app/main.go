package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketplace/cmd"
	"marketplace/internal/adapters/in/seed"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redispub"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(config.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, logger); err != nil {
		log.Fatalf("marketplace: %v", err)
	}
}

func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	gormDB, err := postgres.NewGormDB(config.DB)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var publisher ports.NotificationPublisher
	if config.Redis.Addr != "" {
		client := redispub.NewClient(config.Redis)
		defer func() { _ = client.Close() }()
		if err = redispub.Ping(ctx, client); err != nil {
			return err
		}
		publisher = redispub.NewPublisher(client)
		logger.Info("notification fan-out enabled", "redis", config.Redis.Addr)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, cmd.Deps{
		Logger:     logger,
		Registerer: prometheus.DefaultRegisterer,
		Publisher:  publisher,
	})
	if err != nil {
		return err
	}

	if config.SeedPath != "" {
		file, err := seed.Read(config.SeedPath)
		if err != nil {
			return err
		}
		if err = app.CreateSeedLoader().Apply(ctx, file); err != nil {
			return err
		}
	}

	e, err := app.CreateEcho()
	if err != nil {
		return err
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return serve(ctx, e, config, logger)
}

func serve(ctx context.Context, e *echo.Echo, config cmd.Config, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
