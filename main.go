package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"labisco_server/api"
	"labisco_server/config"
	"labisco_server/database"
	"labisco_server/services"
	"labisco_server/storage"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger and config
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("Failed to initialize store", gecho.Field("error", err))
	}

	images, err := storage.FromConfig(ctx, cfg.Images)
	if err != nil {
		logger.Fatal("Failed to initialize image storage", gecho.Field("error", err))
	}

	sm, err := services.NewServiceManager(logger, cfg, store, images)
	if err != nil {
		logger.Fatal("Failed to initialize services", gecho.Field("error", err))
	}

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(cfg, sm),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", gecho.Field("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", gecho.Field("error", err))
	}

	// pending low-stock alerts
	sm.EmailService.Wait()

	if err := store.Close(); err != nil {
		logger.Warn("Failed to close store", gecho.Field("error", err))
	}

	logger.Info("Server stopped")
}
