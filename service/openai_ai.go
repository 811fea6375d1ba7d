package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var (
	SystemMessageSummarizer = openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: "You are a summarization engine. Write a short abstractive summary of the text you are given. Respond with the summary only, no preamble.",
	}
	SystemMessageExtractiveQA = openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleSystem,
		Content: "You are an extractive question answering engine. Extract the answer to the question from the given context, quoting the context as closely as possible. " +
			"Rate how well the context supports the answer with a score from 0 to 10. If the context does not contain the answer, return an empty answer and a score of 0.",
	}
)

// OpenAIService implements both inference backends against any
// OpenAI-compatible chat completion endpoint.
type OpenAIService struct {
	client       *openai.Client
	model        string
	answerSchema *jsonschema.Definition
}

// chunkAnswerPayload is the structured output contract for the QA call.
type chunkAnswerPayload struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// NewOpenAIService builds a ready-to-use backend handle or fails. Nothing is
// loaded lazily inside chunk calls.
func NewOpenAIService(baseURL, apiKey, model string) (*OpenAIService, error) {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // Set this to your local LLM server URL
	}

	answerSchema, err := jsonschema.GenerateSchemaForType(chunkAnswerPayload{})
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer schema: %w", err)
	}

	return &OpenAIService{
		client:       openai.NewClientWithConfig(config),
		model:        model,
		answerSchema: answerSchema,
	}, nil
}

func (s *OpenAIService) SummarizeChunk(ctx context.Context, text string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				SystemMessageSummarizer,
				{
					Role:    openai.ChatMessageRoleUser,
					Content: "Summarize the following text:\n\n" + text,
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) AnswerChunk(ctx context.Context, question, passage string) (string, float64, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				SystemMessageExtractiveQA,
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Question: %s\n\nContext:\n%s", question, passage),
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:   "chunk_answer",
					Schema: s.answerSchema,
					Strict: true,
				},
			},
		},
	)
	if err != nil {
		return "", 0, err
	}
	if len(resp.Choices) == 0 {
		return "", 0, errors.New("no response generated")
	}

	var payload chunkAnswerPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return "", 0, fmt.Errorf("failed to parse answer payload: %w", err)
	}
	return payload.Answer, payload.Score, nil
}
