package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/chatbot"
	"github.com/tohidkhanbagani/expense-tracker/db"
	"github.com/tohidkhanbagani/expense-tracker/extractor"
	"github.com/tohidkhanbagani/expense-tracker/handlers"
	"github.com/tohidkhanbagani/expense-tracker/insights"
	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/memory"
	"github.com/tohidkhanbagani/expense-tracker/mongodb"
	"github.com/tohidkhanbagani/expense-tracker/worker"
)

func main() {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("GIN_MODE") != "release", os.Getenv("LOG_LEVEL")); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	store, err := db.Open(os.Getenv("SUPABASE_DB_URL"))
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	client := llm.NewClient(apiKey, os.Getenv("GEMINI_BASE_URL"), os.Getenv("GEMINI_MODEL"))

	// Chat history is optional; conversations fall back to request-supplied
	// history when Mongo is not configured.
	var history chatbot.History
	var mongoHistory *mongodb.History
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		mongoHistory, err = mongodb.Connect(uri)
		if err != nil {
			log.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		history = mongoHistory
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			mongoHistory.Close(ctx)
		}()
	}

	// Expense memory is optional; without Qdrant the chat pipeline simply
	// skips the similar-expense context.
	var expenseMemory handlers.Memory
	var chatMemory chatbot.Memory
	if host := os.Getenv("QDRANT_URL"); host != "" {
		port := 6334
		if p := os.Getenv("QDRANT_PORT"); p != "" {
			if n, err := strconv.Atoi(p); err == nil {
				port = n
			}
		}
		mem, err := memory.Connect(host, port, os.Getenv("QDRANT_API_KEY"), os.Getenv("QDRANT_USE_TLS") == "true", client)
		if err != nil {
			log.Fatal("failed to connect to Qdrant", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := mem.EnsureCollection(ctx); err != nil {
			cancel()
			log.Fatal("failed to ensure Qdrant collection", zap.Error(err))
		}
		cancel()
		expenseMemory = mem
		chatMemory = mem
	}

	pool := worker.NewPool(store, 4)
	pool.Start()
	defer pool.Stop()

	ext := extractor.New(client)
	analyzer := insights.New(store, client, pool)
	chat := chatbot.New(store, client, history, chatMemory)

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	h := handlers.New(store, ext, analyzer, chat, expenseMemory)
	h.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
