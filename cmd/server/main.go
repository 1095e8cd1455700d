package main

import (
	"fmt"
	"time"

	"order-assistant/internal/config"
	"order-assistant/internal/controllers/http"
	"order-assistant/internal/infra"
	"order-assistant/internal/infra/sqlite"
	sqliterepo "order-assistant/internal/repository/sqlite"
	"order-assistant/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// optional .env, env vars win
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	repo := sqliterepo.NewOrderRepository(db)
	ollama := infra.NewOllamaClient(cfg.OllamaBaseURL, 60*time.Second)

	orderService := services.NewOrderService(repo)
	aiService := services.NewAIService(repo, ollama, cfg.OllamaModel)

	handler := http.NewHandler(orderService, aiService, ollama, cfg.OllamaModel, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	logger.Info("starting order assistant",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("ollama", cfg.OllamaBaseURL),
		zap.String("model", cfg.OllamaModel))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
