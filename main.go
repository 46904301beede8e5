package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interest-form/pkg/api"
	"interest-form/pkg/config"
	"interest-form/pkg/logger"
	"interest-form/pkg/services"
)

func main() {
	envFile, envErr := config.LoadDotEnv(4)

	// Initialize configuration
	cfg := config.LoadConfig()

	zl, err := logger.New("interest-form", cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync(zl)

	if envErr != nil {
		zl.Warn("error loading .env file", zap.Error(envErr))
	} else if envFile != "" {
		zl.Info("loaded .env file", zap.String("path", envFile))
	}

	// Initialize services
	submissionService := services.NewSubmissionService(zl)
	sessionService := services.NewSessionService(submissionService, cfg.SessionTTL, zl)
	defer sessionService.Close()

	gin.SetMode(cfg.GinMode)

	// Initialize handlers and routes
	handlers := api.NewHandlers(sessionService, zl)
	router := api.NewRouter(handlers, cfg.AllowOrigins, zl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(fmt.Errorf("graceful shutdown: %w", err)))
		return
	}
	zl.Info("server stopped", zap.Int("open_forms", sessionService.Len()))
}
