package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService implements both inference backends on Gemini. Multiple API
// keys can be supplied; the client rotates to the next key after a failed
// call and retries once.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	modelName  string
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:    apiKeys,
		currentKey: 0,
		modelName:  modelName,
	}

	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		return err
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) SummarizeChunk(ctx context.Context, text string) (string, error) {
	model := s.client.GenerativeModel(s.modelName)
	prompt := genai.Text("Summarize the following text. Respond with the summary only:\n\n" + text)

	resp, err := model.GenerateContent(ctx, prompt)
	if err != nil {
		// Try rotating API key if there's an error
		if err := s.rotateAPIKey(); err != nil {
			return "", err
		}
		model = s.client.GenerativeModel(s.modelName)
		resp, err = model.GenerateContent(ctx, prompt)
		if err != nil {
			return "", err
		}
	}

	content := candidateText(resp)
	if content == "" {
		return "", errors.New("no response generated")
	}
	return content, nil
}

func (s *GeminiService) AnswerChunk(ctx context.Context, question, passage string) (string, float64, error) {
	model := s.client.GenerativeModel(s.modelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"answer": {Type: genai.TypeString},
			"score":  {Type: genai.TypeNumber},
		},
		Required: []string{"answer", "score"},
	}

	prompt := genai.Text(fmt.Sprintf(
		"Extract the answer to the question from the context, quoting the context as closely as possible. "+
			"Rate how well the context supports the answer with a score from 0 to 10. "+
			"If the context does not contain the answer, return an empty answer and a score of 0.\n\nQuestion: %s\n\nContext:\n%s",
		question, passage))

	resp, err := model.GenerateContent(ctx, prompt)
	if err != nil {
		if err := s.rotateAPIKey(); err != nil {
			return "", 0, err
		}
		model = s.client.GenerativeModel(s.modelName)
		resp, err = model.GenerateContent(ctx, prompt)
		if err != nil {
			return "", 0, err
		}
	}

	content := candidateText(resp)
	if content == "" {
		return "", 0, errors.New("no response generated")
	}

	var payload chunkAnswerPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return "", 0, fmt.Errorf("failed to parse answer payload: %w", err)
	}
	return payload.Answer, payload.Score, nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					content += string(text)
				}
			}
		}
	}
	return content
}
