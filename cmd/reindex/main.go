package main

import (
	"context"
	"flag"
	"log"
	"os"

	"maternal-chat/config"
	"maternal-chat/corpus"
	"maternal-chat/internal/logger"
	"maternal-chat/llm"
)

// reindex rebuilds the persisted similarity index from the configured
// corpus sources. The API only rescans documents when the index file is
// missing, so this is how corpus changes are picked up.
func main() {
	force := flag.Bool("force", false, "overwrite an existing index")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	indexPath := cfg.Retrieval.IndexPath
	if _, err := os.Stat(indexPath); err == nil {
		if !*force {
			log.Fatalf("index already exists at %s (use -force to rebuild)", indexPath)
		}
		if err := os.Remove(indexPath); err != nil {
			log.Fatal("failed to remove existing index: ", err)
		}
	}

	ctx := context.Background()
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("failed to initialize LLM client: ", err)
	}

	index, err := corpus.BuildIndex(ctx, cfg.Corpus, llmClient)
	if err != nil {
		log.Fatal("failed to build vector index: ", err)
	}
	if err := index.Save(indexPath); err != nil {
		log.Fatal("failed to persist index: ", err)
	}
	logger.Log.Infof("rebuilt index at %s (%d chunks)", indexPath, index.Len())
}
