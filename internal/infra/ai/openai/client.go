package openai

import (
	"context"
	"errors"
	"math"

	"github.com/sashabaranov/go-openai"

	"github.com/readyforswiss/cvscan/internal/domain/analysis"
	"github.com/readyforswiss/cvscan/internal/domain/persona"
)

const maxTokens = 2048

// Client talks to any OpenAI-compatible chat-completions endpoint; in
// production the base URL points at OpenRouter.
type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Analyze runs one scoring call: persona system prompt + resume text as
// user content, deterministic output, JSON-object mode. No retries.
func (c *Client) Analyze(ctx context.Context, text string, p persona.Config) (analysis.Result, error) {
	req := openai.ChatCompletionRequest{
		Model: c.Model,
		// A literal zero is dropped by omitempty and the provider default
		// kicks in, so send the smallest nonzero value instead.
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: p.UserPreamble + "\n" + text},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return analysis.Result{}, &analysis.ServiceError{Message: apiErr.Message}
		}
		return analysis.Result{}, &analysis.ServiceError{Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return analysis.Result{}, &analysis.ValidationError{Field: "choices", Reason: "empty"}
	}

	return analysis.ParseResult(resp.Choices[0].Message.Content, p.RiskLevels)
}
