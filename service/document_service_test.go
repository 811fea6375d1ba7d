package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docassist/docassist-be/service"
	"github.com/docassist/docassist-be/types"
)

func TestSplitText_EmptyInput(t *testing.T) {
	s := service.NewDocumentService(types.DocumentServiceConfig{MaxChunkSize: 100, OverlapSize: 10})

	assert.Empty(t, s.SplitText(""))
	assert.Empty(t, s.SplitText("   \n\t  "))
}

func TestSplitText_ShortDocumentIsOneChunk(t *testing.T) {
	s := service.NewDocumentService(types.DocumentServiceConfig{MaxChunkSize: 1000, OverlapSize: 100})

	chunks := s.SplitText("A. B. C.")

	assert.Equal(t, []string{"A. B. C."}, chunks)
}

func TestSplitText_ChunksInSentenceOrder(t *testing.T) {
	s := service.NewDocumentService(types.DocumentServiceConfig{MaxChunkSize: 20, OverlapSize: 5})

	chunks := s.SplitText("aaaa. bbbb. cccc. dddd. eeee.")

	assert.Equal(t, []string{
		"aaaa. bbbb. cccc.",
		"cccc. dddd. eeee.",
	}, chunks)
}

func TestSplitText_OverlapReappearsInNextChunk(t *testing.T) {
	overlap := 5
	s := service.NewDocumentService(types.DocumentServiceConfig{MaxChunkSize: 20, OverlapSize: overlap})

	chunks := s.SplitText("aaaa. bbbb. cccc. dddd. eeee. ffff. gggg.")

	assert.GreaterOrEqual(t, len(chunks), 2)
	for i := 0; i < len(chunks)-1; i++ {
		tail := chunks[i][len(chunks[i])-overlap:]
		assert.True(t, strings.HasPrefix(chunks[i+1], strings.TrimSpace(tail)),
			"chunk %d should start with the trailing context of chunk %d", i+1, i)
	}
}

func TestSplitText_RespectsMaxLength(t *testing.T) {
	maxLength := 50
	overlap := 10
	s := service.NewDocumentService(types.DocumentServiceConfig{MaxChunkSize: maxLength, OverlapSize: overlap})

	text := strings.Repeat("The quick brown fox jumps. ", 20)
	chunks := s.SplitText(text)

	assert.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		// A buffer seeded with overlap context may close slightly above the
		// window; the bound is soft.
		assert.LessOrEqual(t, len(chunk), maxLength+overlap+1)
	}
}

func TestSplitText_OversizedSentenceEmittedWhole(t *testing.T) {
	s := service.NewDocumentService(types.DocumentServiceConfig{MaxChunkSize: 20, OverlapSize: 5})

	long := strings.Repeat("x", 80) + "."
	chunks := s.SplitText("aa. " + long + " bb.")

	var found bool
	for _, chunk := range chunks {
		if strings.Contains(chunk, long) {
			found = true
		}
	}
	assert.True(t, found, "oversized sentence must not be split mid-sentence")
}

func TestSplitText_NoContentDropped(t *testing.T) {
	s := service.NewDocumentService(types.DocumentServiceConfig{MaxChunkSize: 30, OverlapSize: 5})

	text := "one two. three four. five six. seven eight. nine ten."
	chunks := s.SplitText(text)

	joined := strings.Join(chunks, " ")
	for _, word := range strings.Fields(strings.ReplaceAll(text, ".", "")) {
		assert.Contains(t, joined, word)
	}
}
