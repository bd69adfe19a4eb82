package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/clinscribe/clinscribe/internal/config"
	"github.com/clinscribe/clinscribe/internal/logger"
)

// GeminiClient implements Completer over the Gemini API. Selected when
// llm.provider is "gemini"; transcription always stays on Groq.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	retry   RetryConfig
	logger  logger.Logger
}

// NewGemini creates the Gemini completer from the loaded configuration.
func NewGemini(ctx context.Context, cfg *config.Config, log logger.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   cfg.Gemini.Model,
		timeout: cfg.Pipeline.Timeout(),
		retry: RetryConfig{
			MaxAttempts: cfg.Pipeline.MaxAttempts,
			Backoff:     cfg.Pipeline.RetryBackoff(),
		},
		logger: log,
	}, nil
}

// Complete implements Completer.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var out string
	err := withRetry(ctx, c.retry, func() error {
		s, err := c.complete(ctx, req)
		if err != nil {
			return err
		}
		out = s
		return nil
	})
	return out, err
}

func (c *GeminiClient) complete(ctx context.Context, req CompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		TopP:            genai.Ptr(float32(req.TopP)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		genCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}

	result, err := c.client.Models.GenerateContent(callCtx, c.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{Op: "gemini completion", Timeout: c.timeout, Err: err}
		}
		if isQuotaError(err) {
			return "", &APIError{Op: "gemini completion", StatusCode: http.StatusTooManyRequests, Body: err.Error()}
		}
		return "", fmt.Errorf("gemini completion: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from gemini")
}

// isQuotaError matches rate-limit failures so the bounded retry applies.
func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
