package main

// @title           Book Catalog API
// @version         1.0
// @description     Catalog and reservation service for books.

// @host      localhost:8080
// @BasePath  /

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookcatalog/internal/config"
	"bookcatalog/internal/db"
	docs "bookcatalog/internal/docs"
	"bookcatalog/internal/handler"
	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"bookcatalog/internal/validation"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	database := db.ConnectWithRetry(cfg)

	if err := database.AutoMigrate(&model.Book{}); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}

	if err := model.Seed(database); err != nil {
		logger.Error("seeding failed", "err", err)
		os.Exit(1)
	}

	validation.RegisterValidators()

	e := gin.New()
	e.Use(handler.RequestLogger(logger), gin.Recovery())

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/"

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	bookRepo := repository.NewGormBookRepository(database)
	bookHandler := handler.NewBookHandler(bookRepo)
	bookHandler.RegisterRoutes(e.Group(""))

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("starting server", "port", cfg.Port, "db_driver", cfg.DBDriver)

	if err := e.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
