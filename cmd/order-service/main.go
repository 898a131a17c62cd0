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
	"handshake.backend/internal/infrastructure/geocoding"
	"handshake.backend/internal/infrastructure/models"
	"handshake.backend/internal/infrastructure/repositories"
	"handshake.backend/internal/interfaces/http/handlers"
	"handshake.backend/internal/interfaces/http/middleware"
	"handshake.backend/internal/interfaces/http/router"
	"handshake.backend/internal/usecases"
	"handshake.backend/pkg/jwt"
	"handshake.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
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

	if err := db.AutoMigrate(&models.Location{}, &models.Order{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Verifies locally with the shared secret; never calls the auth service.
	tokenService := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	orderRepo := repositories.NewOrderRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	productRepo := repositories.NewProductRepository(db)
	userRepo := repositories.NewUserRepository(db)

	var sender email.Sender = email.NewDevSender()
	if cfg.SMTP.Enabled() {
		sender = email.NewSMTPSender(cfg.SMTP)
	}

	geocoder := geocoding.NewNominatimClient(cfg.Geocoding.NominatimURL)

	orderUsecase := usecases.NewOrderUsecase(orderRepo, locationRepo, productRepo, userRepo, sender, geocoder, cfg.Seller)
	orderHandler := handlers.NewOrderHandler(orderUsecase, geocoder)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	router.ApplyCORS(r)
	router.RegisterHealthRoutes(r, sqlDB)
	router.RegisterMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		orderHandler:   orderHandler,
		authMiddleware: middleware.AuthMiddleware(tokenService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down order-service")
		sqlDB.Close()
		os.Exit(0)
	}()

	log.Printf("order-service starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
