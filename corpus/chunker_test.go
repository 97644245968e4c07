package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 1000, 150)
	assert.Equal(t, []string{"short text"}, chunks)
}

func TestSplitTextEmptyInput(t *testing.T) {
	assert.Empty(t, SplitText("", 1000, 150))
	assert.Empty(t, SplitText("   \n\t  ", 1000, 150))
}

func TestSplitTextChunkBounds(t *testing.T) {
	text := strings.Repeat("a", 2500)
	chunks := SplitText(text, 1000, 150)

	// steps of 850: [0,1000) [850,1850) [1700,2500)
	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[1], 1000)
	assert.Len(t, chunks[2], 800)
}

func TestSplitTextOverlap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("0123456789")
	}
	chunks := SplitText(sb.String(), 100, 20)
	assert.Greater(t, len(chunks), 1)

	// each chunk repeats the last overlap runes of its predecessor
	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1])
		tail := string(prev[len(prev)-20:])
		assert.True(t, strings.HasPrefix(chunks[i], tail))
	}
}

func TestSplitTextCountsRunes(t *testing.T) {
	text := strings.Repeat("산모건강", 100) // 400 runes
	chunks := SplitText(text, 300, 0)
	assert.Len(t, chunks, 2)
	assert.Len(t, []rune(chunks[0]), 300)
	assert.Len(t, []rune(chunks[1]), 100)
}

func TestSplitTextInvalidOverlapFallsBack(t *testing.T) {
	text := strings.Repeat("x", 30)
	// overlap >= size would never advance; it is treated as zero
	chunks := SplitText(text, 10, 10)
	assert.Len(t, chunks, 3)
}
