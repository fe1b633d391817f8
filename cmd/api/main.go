package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobbuddy/backend/config"
	_ "github.com/jobbuddy/backend/docs" // Important for Swagger
	v1 "github.com/jobbuddy/backend/internal/delivery/http/v1"
	"github.com/jobbuddy/backend/internal/outreach"
	"github.com/jobbuddy/backend/internal/repository/postgres"
	"github.com/jobbuddy/backend/internal/usecase"
	"github.com/jobbuddy/backend/pkg/auth"
	"github.com/jobbuddy/backend/pkg/database"
	"github.com/jobbuddy/backend/pkg/email"
	"github.com/jobbuddy/backend/pkg/logger"
	"github.com/jobbuddy/backend/pkg/redis"
	"github.com/jobbuddy/backend/pkg/search"
	"github.com/jobbuddy/backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           JobBuddy Backend API
// @version         1.0
// @description     Backend for the JobBuddy job search assistant using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobbuddy backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when unavailable)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		}
	}
	defer redis.Close()

	// 5. Setup Resume Storage
	ctx := context.Background()
	s3Client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
		Provider:        storage.S3Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.ResumeBucket,
		WasabiEndpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to create S3 client", "error", err)
		os.Exit(1)
	}

	baseURL := cfg.S3PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.S3Region)
	}
	resumeStore := storage.NewResumeStore(s3Client, cfg.ResumeBucket, baseURL)

	// 6. Setup External Services
	searchClient := search.NewClient(cfg.TavilyAPIKey)
	emailSender := email.NewSender(cfg)
	if !emailSender.IsConfigured() {
		logger.Log.Warn("SMTP not fully configured - outreach emails can be drafted but not sent")
	}

	// 7. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	outreachRepo := postgres.NewOutreachRepository(dbPool)

	// 8. Setup UseCases
	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	resumeUC := usecase.NewResumeUsecase(profileRepo, resumeStore)
	matchUC := usecase.NewMatchUsecase(profileRepo, searchClient)
	outreachUC := usecase.NewOutreachUsecase(outreachRepo, profileRepo, outreach.New(), emailSender, validate)

	// 9. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.ClerkJWKSUrl)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		ResumeUC:     resumeUC,
		MatchUC:      matchUC,
		OutreachUC:   outreachUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
