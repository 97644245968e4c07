package vectorstore

import "context"

// Embedder converts free text into an embedding vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Retriever answers similarity queries against a fixed index. TopK is set
// at construction time and is not caller-adjustable.
type Retriever struct {
	index    *Index
	embedder Embedder
	topK     int
}

func NewRetriever(index *Index, embedder Embedder, topK int) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{index: index, embedder: embedder, topK: topK}
}

// TopChunks returns the texts of the chunks most similar to the query.
func (r *Retriever) TopChunks(ctx context.Context, query string) ([]string, error) {
	vec, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.index.Search(vec, r.topK), nil
}
