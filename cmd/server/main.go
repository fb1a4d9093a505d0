package main

import (
	"context"
	"log"
	"net/http"

	_ "portfolio/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/mailer"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// @title Portfolio API
// @version 1.0
// @description Personal portfolio backend with public content endpoints, an admin gate, file uploads and a contact inbox.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.Skill{},
		&model.Project{},
		&model.Certificate{},
		&model.Message{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	notifier := newNotifier(cfg)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	certificateRepo := repository.NewCertificateRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Initialize services
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(cfg, tokenService)
	profileService := service.NewProfileService(profileRepo, cacheClient, cfg.CacheTTL, cfg.AdminEmail)
	skillService := service.NewSkillService(skillRepo, cacheClient, cfg.CacheTTL)
	projectService := service.NewProjectService(projectRepo, cacheClient, cfg.CacheTTL)
	certificateService := service.NewCertificateService(certificateRepo, cacheClient, cfg.CacheTTL)
	messageService := service.NewMessageService(messageRepo, profileRepo, notifier, cfg)

	// Initialize handlers
	dev := !cfg.IsProduction()
	authHandler := handler.NewAuthHandler(authService, dev)
	profileHandler := handler.NewProfileHandler(profileService, dev)
	skillHandler := handler.NewSkillHandler(skillService, dev)
	projectHandler := handler.NewProjectHandler(projectService, dev)
	certificateHandler := handler.NewCertificateHandler(certificateService, dev)
	messageHandler := handler.NewMessageHandler(messageService, dev)
	uploadHandler := handler.NewUploadHandler(store, profileService, cfg.MaxUploadSize, dev)

	// Register routes
	e := echo.New()
	router.Register(
		e,
		cfg,
		authHandler,
		profileHandler,
		skillHandler,
		projectHandler,
		certificateHandler,
		messageHandler,
		uploadHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// newStore picks the file store from config, defaulting to local disk.
func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3(context.Background(), cfg)
	}
	return storage.NewLocal(cfg.UploadDir)
}

// newNotifier uses real SMTP when configured and falls back to the logging
// notifier, so contact submissions still succeed without mail credentials.
func newNotifier(cfg *config.Config) mailer.Notifier {
	if cfg.EmailConfigured() {
		return mailer.NewSMTP(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass, cfg.FromAddress(), "Portfolio")
	}
	log.Println("email not configured, using simulated delivery")
	return mailer.NewDev()
}
