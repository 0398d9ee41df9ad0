package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/station-dashboard/internal/api/http"
	"github.com/i474232898/station-dashboard/internal/config"
	"github.com/i474232898/station-dashboard/internal/dashboard"
	"github.com/i474232898/station-dashboard/internal/logging"
	"github.com/i474232898/station-dashboard/internal/preferences"
	"github.com/i474232898/station-dashboard/internal/scheduler"
	"github.com/i474232898/station-dashboard/internal/session"
	"github.com/i474232898/station-dashboard/internal/units"
	"github.com/i474232898/station-dashboard/internal/weatherlink"
)

const appName = "station-dashboard"

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logging.New(cfg, appName)

	// Preference store: in-memory unless persisted to SQLite.
	var store preferences.Store = preferences.NewMemoryStore()
	if cfg.PreferencesBackend == config.BackendSQLite {
		sqliteStore, err := preferences.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open preference store: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
	}

	prefs := preferences.New(store, logg)
	if err := prefs.Load(); err != nil {
		log.Fatalf("failed to load preferences: %v", err)
	}

	// Station API client with resilience (optional backoff + circuit breaker).
	client := weatherlink.NewClient(weatherlink.Options{
		BaseURL:    cfg.StationBaseURL,
		APIKey:     cfg.StationAPIKey,
		HTTPClient: &http.Client{},
		Timeout:    cfg.HTTPTimeout,
		Backoff: weatherlink.BackoffConfig{
			MaxRetries:      cfg.FetchRetries,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		Logger: logg,
	})

	sess := session.New(client,
		session.WithTimeout(cfg.HTTPTimeout),
		session.WithLogger(logg),
	)
	logg.Info("session started", "session", sess.ID().String(), "station", cfg.StationBaseURL)

	// Initial fetch so the dashboard has something to show; failures are
	// logged and left for the next refresh.
	initCtx, initCancel := context.WithTimeout(context.Background(), 2*cfg.HTTPTimeout)
	if err := sess.Refresh(initCtx, prefs.ChartWindow()); err != nil {
		logg.Warn("initial refresh failed", "error", err)
	}
	initCancel()

	// Auto-refresh runs only while the preference is on.
	sched := scheduler.New(cfg.RefreshInterval, 2*cfg.HTTPTimeout, sess, prefs, logg)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": appName,
		})
	})

	httpapi.RegisterRoutes(app, httpapi.Deps{
		Session:     sess,
		Preferences: prefs,
		Renderer:    dashboard.Renderer{},
		Language:    units.ParseLanguage(cfg.Language),
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logg.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logg.Error("error during shutdown", "error", err)
	}
}
