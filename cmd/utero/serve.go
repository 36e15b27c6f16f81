package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/utero/internal/api"
	"github.com/terraincognita07/utero/internal/i18n"
	"github.com/terraincognita07/utero/internal/metrics"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		return err
	}

	collector := metrics.NewCollector("utero")
	tracker, closeStore, err := openTracker(ctx, config, collector, logger)
	if err != nil {
		return fmt.Errorf("store init failed: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()

	i18nManager, err := i18n.NewEmbeddedManager(config.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(tracker, secretKey, config.Location, i18nManager, collector, logger)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("utero listening",
		zap.String("addr", "0.0.0.0:"+config.Port),
		zap.String("store", config.Store.Backend),
		zap.String("tz", config.Location.String()),
	)
	if err := app.Listen(":" + config.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Utero",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)
	return app
}
