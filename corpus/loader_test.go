package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"maternal-chat/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirectoryFiltersAndExtracts(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("Maternal nutrition guidance. ", 50)

	writeFile(t, dir, "guide.txt", big)
	writeFile(t, dir, "notes.md", big)
	writeFile(t, dir, "tiny.txt", "too small")               // below minimum size
	writeFile(t, dir, "image.png", strings.Repeat("x", 2000)) // unsupported extension

	docs := loadDirectory(config.CorpusConfig{Dir: dir, MinFileSizeBytes: 1000})

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	assert.ElementsMatch(t, []string{"guide.txt", "notes.md"}, names)
	for _, d := range docs {
		assert.Equal(t, big, d.Text)
	}
}

func TestLoadDirectoryHTMLExtraction(t *testing.T) {
	dir := t.TempDir()
	para := strings.Repeat("Folic acid supports early fetal development. ", 30)
	html := "<html><head><title>t</title></head><body><article><p>" + para + "</p></article></body></html>"
	writeFile(t, dir, "article.html", html)

	docs := loadDirectory(config.CorpusConfig{Dir: dir, MinFileSizeBytes: 100})

	assert.Len(t, docs, 1)
	assert.Contains(t, docs[0].Text, "Folic acid supports early fetal development.")
	assert.NotContains(t, docs[0].Text, "<p>")
}

func TestLoadDirectoryMissingDir(t *testing.T) {
	docs := loadDirectory(config.CorpusConfig{Dir: filepath.Join(t.TempDir(), "absent")})
	assert.Empty(t, docs)
}
