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

	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Verifies locally with the shared secret; never calls the auth service.
	tokenService := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	productUsecase := usecases.NewProductUsecase(productRepo, categoryRepo)
	productHandler := handlers.NewProductHandler(productUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	router.ApplyCORS(r)
	router.RegisterHealthRoutes(r, sqlDB)
	router.RegisterMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		productHandler: productHandler,
		authMiddleware: middleware.AuthMiddleware(tokenService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down product-service")
		sqlDB.Close()
		os.Exit(0)
	}()

	log.Printf("product-service starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
