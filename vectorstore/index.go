package vectorstore

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Entry is one indexed chunk: its source text span and embedding vector.
// Entries are immutable once indexed; the index is rebuilt wholesale.
type Entry struct {
	Text   string    `json:"text"`
	Vector []float32 `json:"vector"`
}

// Index is a brute-force cosine-similarity store. It is write-once at
// ingestion time and read-only afterwards, so concurrent searches need no
// coordination beyond the RWMutex guarding the slice header.
type Index struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewIndex() *Index { return &Index{} }

func (ix *Index) Add(text string, vector []float32) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries = append(ix.entries, Entry{Text: text, Vector: vector})
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

type scored struct {
	idx   int
	score float64
}

// Search returns the texts of the topK entries most similar to the query
// vector, ordered by descending cosine similarity. Fewer than topK entries
// yields fewer results.
func (ix *Index) Search(vector []float32, topK int) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if topK <= 0 || len(ix.entries) == 0 {
		return nil
	}

	scores := make([]scored, len(ix.entries))
	for i, e := range ix.entries {
		scores[i] = scored{idx: i, score: cosine(e.Vector, vector)}
	}
	sort.Slice(scores, func(a, b int) bool { return scores[a].score > scores[b].score })

	if topK > len(scores) {
		topK = len(scores)
	}
	out := make([]string, 0, topK)
	for _, s := range scores[:topK] {
		out = append(out, ix.entries[s.idx].Text)
	}
	return out
}

// Save persists the index as JSON, creating the parent directory if needed.
func (ix *Index) Save(path string) error {
	ix.mu.RLock()
	data, err := json.Marshal(ix.entries)
	ix.mu.RUnlock()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a previously persisted index.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("persisted index is empty")
	}
	return &Index{entries: entries}, nil
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
