// Command server starts the restaurant dashboard service.
//
// At startup it loads the restaurant listing CSV into an immutable
// in-memory table; a missing or unreadable dataset aborts the process.
// It then serves the static dashboard page, the filter/chart JSON API,
// and an optional Prometheus scrape endpoint.
//
// Usage:
//
//	go run ./cmd/server [-config config.yaml]
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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/anandsingh-fin/restaurant-dashboard/internal/api"
	"github.com/anandsingh-fin/restaurant-dashboard/internal/config"
	"github.com/anandsingh-fin/restaurant-dashboard/internal/engine"
	"github.com/anandsingh-fin/restaurant-dashboard/internal/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting dashboard service",
		"port", cfg.Server.Port,
		"dataset", cfg.Dataset.Path,
	)

	// The dataset load is synchronous and fatal on failure: the service
	// has nothing to serve without it.
	table, err := engine.Load(cfg.Dataset.Path)
	if err != nil {
		slog.Error("cannot load dataset", "path", cfg.Dataset.Path, "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = api.JSONSerializer{}
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	if cfg.Metrics.Enabled {
		m := api.NewMetrics()
		m.DatasetRows.Set(float64(len(table.Rows)))
		e.Use(m.Middleware())
		e.GET("/metrics", echo.WrapHandler(api.MetricsHandler()))
	}

	h := api.NewHandler(table)
	h.RegisterRoutes(e)
	e.Static("/", "web")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("dashboard service listening", "addr", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("dashboard service stopped")
}
