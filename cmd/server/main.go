// @title docforensics API
// @version 1.0
// @description Invoice and receipt forensics: upload a document, get a normalized risk verdict, export reports and annotate the document.
// @BasePath /api/v1
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
	"time"

	"github.com/gin-gonic/gin"

	"docforensics/internal/classifier"
	"docforensics/internal/classifier/providers"
	"docforensics/internal/config"
	"docforensics/internal/email"
	"docforensics/internal/handler"
	"docforensics/internal/logging"
	"docforensics/internal/router"
	"docforensics/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	log := logging.New("server")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize classifier. A missing credential is not fatal: the service
	// starts, reports not-ready and refuses uploads with a configuration notice.
	providers.Register()
	docClassifier, classifierErr := classifier.Build(&cfg.Classifier)
	if classifierErr != nil {
		log.Warn("document classifier unavailable", "error", classifierErr)
	} else {
		log.Info("document classifier ready",
			"provider", cfg.Classifier.PrimaryConfig().Provider, "mode", cfg.Classifier.ClassifyMode())
	}

	sender, err := email.NewSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	alertSvc := service.NewAlertService(sender, cfg.Email.AlertRecipient)
	analysisSvc := service.NewAnalysisService(docClassifier, classifierErr, cfg.Intake, alertSvc)
	viewerSvc := service.NewViewerService(cfg.Viewer.MaxSessions)

	// Initialize handlers
	healthH := handler.NewHealthHandler(analysisSvc)
	analysisH := handler.NewAnalysisHandler(analysisSvc, cfg.Intake.MaxFileSizeBytes())
	viewerH := handler.NewViewerHandler(viewerSvc)

	r := router.Setup(cfg.CORS.AllowedOrigins, healthH, analysisH, viewerH)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
