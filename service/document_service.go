package service

import (
	"strings"

	"github.com/docassist/docassist-be/types"
)

// DocumentService splits raw document text into bounded, overlapping chunks
// sized for a single model input window.
type DocumentService struct {
	maxChunkSize int // Maximum size of each text chunk
	overlapSize  int // Size of overlap between chunks
}

var DefaultSummaryChunking = types.DocumentServiceConfig{
	MaxChunkSize: 500,
	OverlapSize:  50,
}

// QA uses a wider window than summarization: candidate answer spans need more
// surrounding context.
var DefaultAnswerChunking = types.DocumentServiceConfig{
	MaxChunkSize: 1000,
	OverlapSize:  100,
}

// NewDocumentService creates a new document service with configurable chunk sizes
func NewDocumentService(config types.DocumentServiceConfig) *DocumentService {
	return &DocumentService{
		maxChunkSize: config.MaxChunkSize,
		overlapSize:  config.OverlapSize,
	}
}

// SplitText splits text into overlapping chunks of approximately maxChunkSize
// characters, never cutting inside a sentence. A single sentence longer than
// the window is emitted whole as its own chunk, so the bound is soft.
func (s *DocumentService) SplitText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sentences := SplitSentences(text)
	return s.createChunks(sentences)
}

// createChunks folds sentences, in order, into a running buffer. When a
// sentence would overflow the buffer, the buffer is emitted and the next one
// is seeded with the trailing overlapSize characters of the closed buffer so
// answers spanning a boundary are not missed by both neighbors.
func (s *DocumentService) createChunks(sentences []string) []string {
	var chunks []string
	current := ""

	for _, sentence := range sentences {
		if len(current)+len(sentence) <= s.maxChunkSize {
			current += " " + sentence
		} else {
			if strings.TrimSpace(current) != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			overlapPoint := len(current) - s.overlapSize
			if overlapPoint < 0 {
				overlapPoint = 0
			}
			current = current[overlapPoint:] + " " + sentence
		}
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}
