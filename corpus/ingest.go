package corpus

import (
	"context"
	"errors"
	"os"
	"strings"

	"maternal-chat/config"
	"maternal-chat/internal/logger"
	"maternal-chat/vectorstore"
)

// ErrNoDocuments is returned when every corpus source was filtered out;
// the service cannot start without an index.
var ErrNoDocuments = errors.New("no valid corpus documents found")

// BuildOrLoadIndex loads the persisted index when present; otherwise it
// runs the full ingestion pipeline and persists the result. Source-document
// changes are invisible until the persisted index is removed.
func BuildOrLoadIndex(ctx context.Context, cfg config.CorpusConfig, indexPath string, embedder vectorstore.Embedder) (*vectorstore.Index, error) {
	if _, err := os.Stat(indexPath); err == nil {
		index, err := vectorstore.Load(indexPath)
		if err != nil {
			return nil, err
		}
		logger.Log.Infof("loaded persisted index from %s (%d chunks)", indexPath, index.Len())
		return index, nil
	}

	index, err := BuildIndex(ctx, cfg, embedder)
	if err != nil {
		return nil, err
	}
	if err := index.Save(indexPath); err != nil {
		return nil, err
	}
	logger.Log.Infof("persisted index to %s (%d chunks)", indexPath, index.Len())
	return index, nil
}

// BuildIndex runs ingestion from scratch: load, chunk, embed.
func BuildIndex(ctx context.Context, cfg config.CorpusConfig, embedder vectorstore.Embedder) (*vectorstore.Index, error) {
	docs := LoadDocuments(cfg)
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	var texts []string
	for _, d := range docs {
		texts = append(texts, d.Text)
	}
	chunks := SplitText(strings.Join(texts, "\n\n"), cfg.ChunkSize, cfg.ChunkOverlap)
	logger.Log.Infof("ingesting %d documents as %d chunks", len(docs), len(chunks))

	index := vectorstore.NewIndex()
	for i, chunk := range chunks {
		vec, err := embedder.EmbedText(ctx, chunk)
		if err != nil {
			logger.Log.Errorf("embedding chunk %d/%d failed: %v", i+1, len(chunks), err)
			return nil, err
		}
		index.Add(chunk, vec)
	}
	return index, nil
}
