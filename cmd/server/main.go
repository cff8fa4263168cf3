package main

import (
	"time"

	"wisecrackr-be/internal/auth"
	"wisecrackr-be/internal/config"
	"wisecrackr-be/internal/db"
	"wisecrackr-be/internal/logger"
	"wisecrackr-be/internal/middleware"
	"wisecrackr-be/internal/product"
	"wisecrackr-be/internal/rest"
	"wisecrackr-be/internal/seller"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger may not be configured yet; panic prints and exits non-zero.
		panic("config: " + err.Error())
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	tokens, err := auth.NewTokenService(
		cfg.JWTSecret,
		cfg.JWTAlgorithm,
		time.Duration(cfg.TokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatal("failed to configure token service", zap.Error(err))
	}

	sellerRepo := seller.NewRepository(database)
	sellerSvc := seller.NewService(sellerRepo, tokens)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(sellerSvc, productSvc, tokens)

	log.Info("server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func setupRouter(sellers seller.Service, products product.Service, tokens middleware.TokenVerifier) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.NewRateLimiter().Middleware())

	rest.NewHandler(sellers, products).RegisterRoutes(router, tokens)
	return router
}
