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

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexora-labs/website-backend/config"
	"github.com/nexora-labs/website-backend/db"
	"github.com/nexora-labs/website-backend/handlers"
	"github.com/nexora-labs/website-backend/repositories"
	api "github.com/nexora-labs/website-backend/routes"
	"github.com/nexora-labs/website-backend/services"
	"github.com/nexora-labs/website-backend/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	if err := db.RunMigrations(dbConn, cfg.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database schema up to date")

	uploader, err := storage.NewS3Uploader(storage.S3UploaderConfig{
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		BucketName:      cfg.S3BucketName,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize object storage uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("object storage uploader initialized")

	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	hackathonRepo := repositories.NewPostgresHackathonTeamRepository(dbConn)
	careerRepo := repositories.NewPostgresCareerRepository(dbConn)
	contactRepo := repositories.NewPostgresContactRepository(dbConn)
	inquiryRepo := repositories.NewPostgresInquiryRepository(dbConn)
	mouRepo := repositories.NewPostgresMOURepository(dbConn)
	galleryRepo := repositories.NewPostgresGalleryRepository(dbConn)
	projectRepo := repositories.NewPostgresProjectRepository(dbConn)
	communityRepo := repositories.NewPostgresCommunityRepository(dbConn)
	adminRepo := repositories.NewPostgresAdminUserRepository(dbConn)
	logger.Info("repositories initialized")

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash bootstrap admin password", slog.Any("error", err))
			os.Exit(1)
		}
		if err := adminRepo.Upsert(context.Background(), cfg.AdminEmail, string(hash)); err != nil {
			logger.Error("failed to seed bootstrap admin user", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("bootstrap admin user seeded", slog.String("email", cfg.AdminEmail))
	}

	registrationService := services.NewRegistrationService(teamRepo, hackathonRepo)
	careerService := services.NewCareerService(careerRepo, uploader)
	contactService := services.NewContactService(contactRepo)
	inquiryService := services.NewInquiryService(inquiryRepo)
	mouService := services.NewMOUService(mouRepo, uploader)
	galleryService := services.NewGalleryService(galleryRepo, uploader)
	projectService := services.NewProjectService(projectRepo)
	communityService := services.NewCommunityService(communityRepo, uploader)
	adminService := services.NewAdminService(teamRepo, hackathonRepo, careerRepo, contactRepo, inquiryRepo)
	authService := services.NewAuthService(adminRepo, cfg.JWTSecretKey)
	logger.Info("services initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Registration: handlers.NewRegistrationHandler(registrationService),
		Career:       handlers.NewCareerHandler(careerService),
		Contact:      handlers.NewContactHandler(contactService),
		Inquiry:      handlers.NewInquiryHandler(inquiryService),
		MOU:          handlers.NewMOUHandler(mouService),
		Gallery:      handlers.NewGalleryHandler(galleryService),
		Project:      handlers.NewProjectHandler(projectService),
		Community:    handlers.NewCommunityHandler(communityService),
		Admin:        handlers.NewAdminHandler(adminService),
	}, cfg.JWTSecretKey, cfg.CORSOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
