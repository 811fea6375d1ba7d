package service

import (
	"context"
)

// SummarizeBackend produces an abstractive summary of one chunk. Calls are
// independent: no shared session state is required between them.
type SummarizeBackend interface {
	SummarizeChunk(ctx context.Context, text string) (string, error)
}

// AnswerBackend extracts an answer span for a question from one chunk of
// context. The returned score is the backend's raw, unbounded value; the
// aggregator normalizes it before comparison.
type AnswerBackend interface {
	AnswerChunk(ctx context.Context, question, passage string) (string, float64, error)
}

// AIBackend is the full inference surface the assistant drives. Backends are
// constructed and readiness-checked once at wiring time, never lazily inside
// a chunk call.
type AIBackend interface {
	SummarizeBackend
	AnswerBackend
}
