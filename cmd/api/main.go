package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"maternal-chat/cmd/api/router"
	"maternal-chat/cmd/api/services"
	"maternal-chat/config"
	"maternal-chat/corpus"
	"maternal-chat/db"
	"maternal-chat/events"
	"maternal-chat/internal/logger"
	"maternal-chat/llm"
	"maternal-chat/repositories"
	"maternal-chat/vectorstore"
)

// @title           Maternal Health Chat API
// @version         1.0
// @description     Retrieval-augmented chat API for maternal health education
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB: ", err)
	}

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("failed to initialize LLM client: ", err)
	}

	// Builds the index on first start; afterwards the persisted index is
	// loaded as-is until someone deletes it (or runs cmd/reindex).
	index, err := corpus.BuildOrLoadIndex(ctx, cfg.Corpus, cfg.Retrieval.IndexPath, llmClient)
	if err != nil {
		log.Fatal("failed to build vector index: ", err)
	}
	retriever := vectorstore.NewRetriever(index, llmClient, cfg.Retrieval.TopK)

	var publisher events.Publisher
	if brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); brokers != "" {
		kp, err := events.NewKafkaPublisher(brokers, cfg.Events.Topic)
		if err != nil {
			log.Fatal("failed to initialize Kafka publisher: ", err)
		}
		defer kp.Close()
		publisher = kp
	}

	chatRepo := repositories.NewChatRepository(db.Database())
	chatSvc := services.NewChatService(chatRepo, retriever, llmClient, publisher)

	r := router.New(cfg, chatSvc)

	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.Server.AllowedOrigins
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, cors.New(corsOptions).Handler(r)); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
