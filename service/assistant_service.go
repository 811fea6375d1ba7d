package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docassist/docassist-be/repository"
	"github.com/docassist/docassist-be/types"
)

// User-facing messages returned by the aggregators. Document-level
// preconditions and total failure degrade to these strings, never to errors.
const (
	MsgNoDocument         = "Please load a document first."
	MsgNoMeaningfulText   = "Unable to extract meaningful text from the document."
	MsgNoMeaningfulTextQA = "Unable to extract meaningful text from the document to answer questions."
	MsgEmptyQuestion      = "Please enter a valid question."
	MsgNoSummary          = "Could not generate a summary. Try a different document or check document quality."
	MsgNoAnswer           = "I couldn't find an answer to that question in the document."
)

// Precondition sentinels. The aggregators translate them into the user-facing
// messages above instead of returning them to callers.
var (
	ErrNoDocument    = errors.New("no document loaded")
	ErrEmptyQuestion = errors.New("empty question")
)

// Chunks shorter than this are too short to summarize usefully.
const minSummaryChunkChars = 100

// rawScoreScale maps the QA backend's unbounded raw score into [0,1]. The
// divisor is a fixed heuristic, not calibrated to any backend's score
// distribution.
const rawScoreScale = 10.0

type AssistantServiceConfig struct {
	SummaryChunking types.DocumentServiceConfig
	AnswerChunking  types.DocumentServiceConfig
	SummaryTimeout  time.Duration // Per-chunk budget for summarization
	AnswerTimeout   time.Duration // Per-chunk budget for question answering
}

var DefaultAssistantServiceConfig = AssistantServiceConfig{
	SummaryChunking: DefaultSummaryChunking,
	AnswerChunking:  DefaultAnswerChunking,
	SummaryTimeout:  60 * time.Second,
	AnswerTimeout:   30 * time.Second,
}

// AssistantService drives the chunking pipeline over a session's document for
// the two inference tasks and merges per-chunk results. Chunk processing is
// strictly sequential so aggregation order always equals chunk order.
type AssistantService struct {
	summaryChunker *DocumentService
	answerChunker  *DocumentService
	backend        AIBackend
	summaryTimeout time.Duration
	answerTimeout  time.Duration

	mu       sync.RWMutex
	sessions map[string]*types.Session

	conversations repository.ConversationRepo // optional, nil disables history
}

func NewAssistantService(config AssistantServiceConfig, backend AIBackend, conversations repository.ConversationRepo) *AssistantService {
	return &AssistantService{
		summaryChunker: NewDocumentService(config.SummaryChunking),
		answerChunker:  NewDocumentService(config.AnswerChunking),
		backend:        backend,
		summaryTimeout: config.SummaryTimeout,
		answerTimeout:  config.AnswerTimeout,
		sessions:       make(map[string]*types.Session),
		conversations:  conversations,
	}
}

// CreateSession registers a new session holding the given document. A nil
// document creates an empty session; the assistant calls then short-circuit
// with MsgNoDocument until a document is loaded.
func (s *AssistantService) CreateSession(document *types.Document) *types.Session {
	session := &types.Session{
		ID:        uuid.NewString(),
		Document:  document,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

func (s *AssistantService) GetSession(id string) (*types.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// LoadDocument replaces the session's document wholesale and clears the
// persisted summary, which belonged to the previous document.
func (s *AssistantService) LoadDocument(session *types.Session, document *types.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.Document = document
	session.Summary = ""
	session.UpdatedAt = time.Now().Unix()
}

// GenerateSummary summarizes the session's document chunk by chunk and joins
// the per-chunk summaries in chunk order. A slow or failing chunk is skipped
// with a warning; it never aborts the whole document.
func (s *AssistantService) GenerateSummary(ctx context.Context, session *types.Session, reporter ProgressReporter) string {
	if reporter == nil {
		reporter = NopProgress{}
	}
	text, err := sessionText(session)
	if err != nil {
		return MsgNoDocument
	}

	chunks := s.summaryChunker.SplitText(text)
	if len(chunks) == 0 {
		return MsgNoMeaningfulText
	}

	var summaries []string
	for i, chunk := range chunks {
		reporter.Progress(float64(i+1) / float64(len(chunks)))
		reporter.Status(fmt.Sprintf("Processing chunk %d/%d...", i+1, len(chunks)))

		if len(chunk) < minSummaryChunkChars {
			continue
		}

		summary, err := RunWithTimeout(ctx, s.summaryTimeout, func(ctx context.Context) (string, error) {
			return s.backend.SummarizeChunk(ctx, chunk)
		})
		if err != nil {
			if errors.Is(err, ErrChunkTimeout) {
				reporter.Warning(fmt.Sprintf("Chunk %d took too long to summarize. Skipping.", i+1))
			} else {
				reporter.Warning(fmt.Sprintf("Error summarizing chunk %d: %v", i+1, err))
			}
			continue
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) == 0 {
		return MsgNoSummary
	}

	joined := strings.Join(summaries, " ")
	s.mu.Lock()
	session.Summary = joined
	session.UpdatedAt = time.Now().Unix()
	s.mu.Unlock()
	return joined
}

// AnswerQuestion runs extractive QA over every chunk of the session's
// document and returns the single best-scoring non-empty answer. Ties favor
// the earlier chunk: only a strictly better score replaces the running best.
func (s *AssistantService) AnswerQuestion(ctx context.Context, session *types.Session, question string, reporter ProgressReporter) string {
	if reporter == nil {
		reporter = NopProgress{}
	}
	text, err := sessionText(session)
	if err != nil {
		return MsgNoDocument
	}
	if err := validateQuestion(question); err != nil {
		return MsgEmptyQuestion
	}

	chunks := s.answerChunker.SplitText(text)
	if len(chunks) == 0 {
		return MsgNoMeaningfulTextQA
	}

	best := types.ChunkAnswer{}
	for i, chunk := range chunks {
		reporter.Progress(float64(i+1) / float64(len(chunks)))
		reporter.Status(fmt.Sprintf("Searching chunk %d/%d...", i+1, len(chunks)))

		candidate, err := RunWithTimeout(ctx, s.answerTimeout, func(ctx context.Context) (types.ChunkAnswer, error) {
			answer, rawScore, err := s.backend.AnswerChunk(ctx, question, chunk)
			if err != nil {
				return types.ChunkAnswer{}, err
			}
			return types.ChunkAnswer{Answer: answer, Score: normalizeScore(rawScore)}, nil
		})
		if err != nil {
			if errors.Is(err, ErrChunkTimeout) {
				reporter.Warning(fmt.Sprintf("Chunk %d took too long to process. Skipping.", i+1))
			} else {
				reporter.Warning(fmt.Sprintf("Error processing chunk %d: %v", i+1, err))
			}
			continue
		}

		if candidate.Score > best.Score && len(strings.TrimSpace(candidate.Answer)) > 0 {
			best = candidate
		}
	}

	if best.Answer == "" {
		return MsgNoAnswer
	}

	answer := fmt.Sprintf("%s (Confidence: %.2f)", best.Answer, best.Score)
	s.appendHistory(ctx, session, question, answer)
	return answer
}

// History returns the session's answered questions, oldest first.
func (s *AssistantService) History(ctx context.Context, sessionID string) ([]*types.ConversationEntry, error) {
	if s.conversations == nil {
		return nil, nil
	}
	return s.conversations.ListBySession(ctx, sessionID)
}

func (s *AssistantService) appendHistory(ctx context.Context, session *types.Session, question, answer string) {
	if s.conversations == nil {
		return
	}
	entry := &types.ConversationEntry{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.conversations.Append(ctx, entry); err != nil {
		log.Printf("Warning: failed to store conversation entry: %v", err)
	}
}

// sessionText returns the session's document text, or ErrNoDocument when no
// usable document is loaded.
func sessionText(session *types.Session) (string, error) {
	if session == nil || session.Document == nil || strings.TrimSpace(session.Document.Text) == "" {
		return "", ErrNoDocument
	}
	return session.Document.Text, nil
}

func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	return nil
}

// normalizeScore clamps the backend's raw score into [0,1] via a fixed linear
// scale.
func normalizeScore(raw float64) float64 {
	normalized := raw / rawScoreScale
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}
