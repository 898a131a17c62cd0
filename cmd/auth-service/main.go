package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"handshake.backend/internal/config"
	"handshake.backend/internal/infrastructure/email"
	"handshake.backend/internal/infrastructure/models"
	"handshake.backend/internal/infrastructure/repositories"
	"handshake.backend/internal/interfaces/http/handlers"
	"handshake.backend/internal/interfaces/http/middleware"
	"handshake.backend/internal/interfaces/http/router"
	"handshake.backend/internal/usecases"
	"handshake.backend/pkg/jwt"
	"handshake.backend/pkg/logger"
	"handshake.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.User{}, &models.EmailVerification{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	tokenService := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	userRepo := repositories.NewUserRepository(db)
	verifRepo := repositories.NewEmailVerificationRepository(db)

	var sender email.Sender = email.NewDevSender()
	if cfg.SMTP.Enabled() {
		sender = email.NewSMTPSender(cfg.SMTP)
	}

	limiter := redis.NewResendLimiter(redis.GetClient(), int64(cfg.OTP.ResendLimit), cfg.OTP.ResendWindow)

	authUsecase := usecases.NewAuthUsecase(userRepo, verifRepo, tokenService, sender, limiter, cfg.OTP.Expiry)
	authHandler := handlers.NewAuthHandler(authUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	router.ApplyCORS(r)
	router.RegisterHealthRoutes(r, sqlDB)
	router.RegisterMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		authMiddleware: middleware.AuthMiddleware(tokenService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down auth-service")
		sqlDB.Close()
		os.Exit(0)
	}()

	log.Printf("auth-service starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
