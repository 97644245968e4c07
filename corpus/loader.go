package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"maternal-chat/config"
	"maternal-chat/feeder"
	"maternal-chat/internal/logger"
	"maternal-chat/parser"
	"maternal-chat/renderer"
)

// Document is one extracted source text, named for logging only.
type Document struct {
	Name string
	Text string
}

// LoadDocuments gathers every corpus source: local files first, then the
// optional remote feeds and pages. Per-source failures are logged and
// skipped; only the caller decides whether an empty result is fatal.
func LoadDocuments(cfg config.CorpusConfig) []Document {
	docs := loadDirectory(cfg)
	docs = append(docs, loadFeeds(cfg.Feeds)...)
	docs = append(docs, loadPages(cfg.Pages)...)
	return docs
}

func loadDirectory(cfg config.CorpusConfig) []Document {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		logger.Log.Warnf("corpus directory %s not readable: %v", cfg.Dir, err)
		return nil
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".txt" && ext != ".md" && ext != ".html" && ext != ".htm" {
			continue
		}

		path := filepath.Join(cfg.Dir, name)
		info, err := entry.Info()
		if err != nil {
			logger.Log.Warnf("skipped %s: %v", name, err)
			continue
		}
		// Guards against corrupt or placeholder files.
		if info.Size() < cfg.MinFileSizeBytes {
			logger.Log.Infof("skipped %s: below minimum size (%d bytes)", name, info.Size())
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Log.Warnf("skipped %s: %v", name, err)
			continue
		}

		text := string(data)
		if ext == ".html" || ext == ".htm" {
			text, err = parser.ExtractText(text)
			if err != nil {
				logger.Log.Warnf("skipped %s: %v", name, err)
				continue
			}
		}
		if strings.TrimSpace(text) == "" {
			logger.Log.Warnf("skipped %s: empty after extraction", name)
			continue
		}

		logger.Log.Infof("loaded corpus file %s", name)
		docs = append(docs, Document{Name: name, Text: text})
	}
	return docs
}

func loadFeeds(feeds []config.FeedSource) []Document {
	var docs []Document
	for _, src := range feeds {
		items, err := feeder.FetchFeedItems(src.URL, src.Limit)
		if err != nil {
			logger.Log.Warnf("skipped feed %s: %v", src.Name, err)
			continue
		}
		for _, item := range items {
			doc, ok := fetchPage(item.Link)
			if ok {
				docs = append(docs, doc)
			}
		}
	}
	return docs
}

func loadPages(pages []string) []Document {
	var docs []Document
	for _, url := range pages {
		doc, ok := fetchPage(url)
		if ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

func fetchPage(url string) (Document, bool) {
	htmlStr, err := renderer.RenderHTML(url)
	if err != nil {
		logger.Log.Warnf("skipped page %s: %v", url, err)
		return Document{}, false
	}
	text, err := parser.ExtractText(htmlStr)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.Log.Warnf("skipped page %s: no extractable text", url)
		return Document{}, false
	}
	logger.Log.Infof("loaded corpus page %s", url)
	return Document{Name: url, Text: text}, true
}
