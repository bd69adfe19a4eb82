package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clinscribe/clinscribe/internal/config"
	"github.com/clinscribe/clinscribe/internal/logger"
)

// GroqClient talks to Groq's OpenAI-compatible API. One client serves both
// chat completions and audio transcription; Groq hosts both behind the same
// base URL and key.
type GroqClient struct {
	apiKey       string
	baseURL      string
	chatModel    string
	whisperModel string
	timeout      time.Duration
	retry        RetryConfig
	httpClient   *http.Client
	logger       logger.Logger
}

// NewGroq creates the Groq client from the loaded configuration.
func NewGroq(cfg *config.Config, log logger.Logger) *GroqClient {
	return &GroqClient{
		apiKey:       cfg.Groq.APIKey,
		baseURL:      strings.TrimRight(cfg.Groq.BaseURL, "/"),
		chatModel:    cfg.Groq.ChatModel,
		whisperModel: cfg.Groq.WhisperModel,
		timeout:      cfg.Pipeline.Timeout(),
		retry: RetryConfig{
			MaxAttempts: cfg.Pipeline.MaxAttempts,
			Backoff:     cfg.Pipeline.RetryBackoff(),
		},
		httpClient: &http.Client{},
		logger:     log,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete implements Completer.
func (c *GroqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
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

func (c *GroqClient) complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(chatRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{Op: "chat completion", Timeout: c.timeout, Err: err}
		}
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", &APIError{Op: "chat completion", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	c.logger.Debug(ctx, "Chat completion done: %d prompt + %d completion tokens",
		out.Usage.PromptTokens, out.Usage.CompletionTokens)
	return out.Choices[0].Message.Content, nil
}

// TranscriptionResult carries the verbose transcription payload. The
// pipeline consumes Text; segments surface in debug logs only.
type TranscriptionResult struct {
	Text     string
	Language string
	Duration float64
	Segments []TranscriptionSegment
}

type TranscriptionSegment struct {
	ID    int
	Start float64
	End   float64
	Text  string
}

type transcriptionResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		ID    int     `json:"id"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe uploads the audio file at path and returns its transcription.
// The language hint is fixed per deployment, not detected.
func (c *GroqClient) Transcribe(ctx context.Context, path, language string) (TranscriptionResult, error) {
	var out TranscriptionResult
	err := withRetry(ctx, c.retry, func() error {
		r, err := c.transcribe(ctx, path, language)
		if err != nil {
			return err
		}
		out = r
		return nil
	})
	return out, err
}

func (c *GroqClient) transcribe(ctx context.Context, path, language string) (TranscriptionResult, error) {
	audioData, err := os.ReadFile(path)
	if err != nil {
		return TranscriptionResult{}, fmt.Errorf("read audio file: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return TranscriptionResult{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audioData); err != nil {
		return TranscriptionResult{}, fmt.Errorf("write audio data: %w", err)
	}
	_ = writer.WriteField("model", c.whisperModel)
	if language != "" {
		_ = writer.WriteField("language", language)
	}
	_ = writer.WriteField("response_format", "verbose_json")
	writer.Close()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return TranscriptionResult{}, fmt.Errorf("create transcription request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return TranscriptionResult{}, &TimeoutError{Op: "transcription", Timeout: c.timeout, Err: err}
		}
		return TranscriptionResult{}, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return TranscriptionResult{}, &APIError{Op: "transcription", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var decoded transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return TranscriptionResult{}, fmt.Errorf("decode transcription response: %w", err)
	}

	result := TranscriptionResult{
		Text:     decoded.Text,
		Language: decoded.Language,
		Duration: decoded.Duration,
	}
	for _, seg := range decoded.Segments {
		result.Segments = append(result.Segments, TranscriptionSegment{
			ID:    seg.ID,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return result, nil
}
