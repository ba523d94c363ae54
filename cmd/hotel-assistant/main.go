package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/client"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/config"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/handler"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/middleware"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/service"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/store"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig("configs/hotel-assistant.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// The API credential never lives in the config file.
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Fatal("GROQ_API_KEY not found in environment variables")
	}

	// Init logging
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("hotel-assistant starting...")

	// Init LLM client
	llmClient := client.NewGroqClient(
		apiKey,
		cfg.Groq.BaseURL,
		cfg.Groq.Model,
		time.Duration(cfg.Groq.TimeoutSeconds)*time.Second,
		zapLogger,
	)

	// Init room store
	roomStore, err := store.NewRoomStore(
		cfg.Database.Path,
		time.Duration(cfg.Database.TimeoutSeconds)*time.Second,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("open room store failed", zap.Error(err))
	}
	defer roomStore.Close()

	// Init services
	classifier := service.NewClassifier(llmClient, cfg.Groq.ClassifyMaxTokens, zapLogger)
	responder := service.NewResponder(llmClient, cfg.Groq.ReplyMaxTokens, zapLogger)

	// Init handler
	queryHandler := handler.NewQueryHandler(
		classifier,
		responder,
		roomStore,
		store.HotelInfo(),
		cfg.Server.Name,
		zapLogger,
	)

	// Init router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID(zapLogger))

	r.GET("/", queryHandler.Home)
	r.GET("/query", queryHandler.HandleQuery)
	r.GET("/api/health", queryHandler.Health)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("hotel-assistant started", zap.Int("port", cfg.Server.Port))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
