package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/amm-colonia/inscripciones-api/api/swagger"
	"github.com/amm-colonia/inscripciones-api/internal/handler"
	"github.com/amm-colonia/inscripciones-api/internal/render"
	"github.com/amm-colonia/inscripciones-api/internal/repository"
	"github.com/amm-colonia/inscripciones-api/internal/service"
	"github.com/amm-colonia/inscripciones-api/internal/web"
	"github.com/amm-colonia/inscripciones-api/pkg/cache"
	"github.com/amm-colonia/inscripciones-api/pkg/config"
	"github.com/amm-colonia/inscripciones-api/pkg/database"
	"github.com/amm-colonia/inscripciones-api/pkg/logger"
	"github.com/amm-colonia/inscripciones-api/pkg/mailer"
)

// @title Colonia de Verano API
// @version 1.0.0
// @description Enrollment form, coordinators' dashboard and spreadsheet export for the summer day camp
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	metrics := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, listing cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			cacheSvc = service.NewCacheService(repository.NewCacheRepository(client), metrics, cfg.Cache.TTL, logr, true)
		}
	}

	var sender mailer.Sender = mailer.NopSender{}
	if cfg.Mail.Enabled() {
		sender = mailer.NewSMTPSender(cfg.Mail, logr)
	} else {
		logr.Warn("EMAIL_SERVER_HOST not set, registration emails disabled")
	}

	opts := render.Options{
		CampName:  cfg.Camp.Name,
		Location:  cfg.Camp.Location(),
		SheetName: cfg.Camp.SheetName,
	}

	notifier := service.NewNotificationService(sender, cfg.Mail.AdminEmail, opts, metrics, logr)
	registrations := service.NewRegistrationService(repository.NewRegistrationRepository(db), notifier, service.NewRegistrationValidator(), cacheSvc, metrics, logr)
	exports := service.NewExportService(registrations, opts, cfg.Camp.FilenamePrefix, metrics, logr)
	auth := service.NewAuthService(repository.NewUserRepository(db), nil, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	router := web.NewRouter(web.Dependencies{
		Logger:         logr,
		Metrics:        metrics,
		Verifier:       auth,
		Registrations:  handler.NewRegistrationHandler(registrations),
		Admin:          handler.NewAdminHandler(registrations, exports, auth),
		Auth:           handler.NewAuthHandler(auth),
		Observability:  handler.NewMetricsHandler(metrics, db),
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
