package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Groq     GroqConfig     `yaml:"groq"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	LLM      LLMConfig      `yaml:"llm"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Paths    PathsConfig    `yaml:"paths"`
	Server   ServerConfig   `yaml:"server"`
	Recorder RecorderConfig `yaml:"recorder"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type GroqConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	WhisperModel string `yaml:"whisper_model"`
	ChatModel    string `yaml:"chat_model"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type LLMConfig struct {
	Provider string `yaml:"provider" validate:"omitempty,oneof=groq gemini"`
}

type PipelineConfig struct {
	Language       string   `yaml:"language"`
	Formats        []string `yaml:"formats" validate:"dive,oneof=markdown pdf docx"`
	TimeoutSeconds int      `yaml:"timeout_seconds" validate:"omitempty,min=1"`
	MaxAttempts    int      `yaml:"max_attempts" validate:"omitempty,min=1,max=5"`
	RetryBackoffMS int      `yaml:"retry_backoff_ms" validate:"omitempty,min=1"`
}

type PathsConfig struct {
	Inbox   string `yaml:"inbox"`
	Output  string `yaml:"output"`
	Archive string `yaml:"archive"`
	Failed  string `yaml:"failed"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	MaxUploadMB   int    `yaml:"max_upload_mb" validate:"omitempty,min=1"`
	StoreCapacity int    `yaml:"store_capacity" validate:"omitempty,min=1"`
}

type RecorderConfig struct {
	FFmpegPath string `yaml:"ffmpeg_path"`
	Driver     string `yaml:"driver"`
	Device     string `yaml:"device"`
	SampleRate int    `yaml:"sample_rate" validate:"omitempty,min=8000"`
	Channels   int    `yaml:"channels" validate:"omitempty,min=1,max=2"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Timeout is the per-call collaborator deadline.
func (c *PipelineConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryBackoff is the pause before the single bounded retry.
func (c *PipelineConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMS) * time.Millisecond
}

func (c *Config) Validate() error {
	if c.Groq.APIKey == "" {
		return fmt.Errorf("groq.api_key is required (set GROQ_API_KEY in the environment or .env)")
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "groq"
	}
	if c.LLM.Provider == "gemini" && c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required when llm.provider is gemini")
	}

	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Groq.WhisperModel == "" {
		c.Groq.WhisperModel = "whisper-large-v3-turbo"
	}
	if c.Groq.ChatModel == "" {
		c.Groq.ChatModel = "llama-3.2-90b-vision-preview"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Pipeline.Language == "" {
		c.Pipeline.Language = "ur"
	}
	if len(c.Pipeline.Formats) == 0 {
		c.Pipeline.Formats = []string{"markdown", "pdf"}
	}
	if c.Pipeline.TimeoutSeconds == 0 {
		c.Pipeline.TimeoutSeconds = 120
	}
	if c.Pipeline.MaxAttempts == 0 {
		c.Pipeline.MaxAttempts = 2
	}
	if c.Pipeline.RetryBackoffMS == 0 {
		c.Pipeline.RetryBackoffMS = 500
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archive == "" {
		c.Paths.Archive = "data/archive"
	}
	if c.Paths.Failed == "" {
		c.Paths.Failed = "data/failed"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 25
	}
	if c.Server.StoreCapacity == 0 {
		c.Server.StoreCapacity = 100
	}
	if c.Recorder.FFmpegPath == "" {
		c.Recorder.FFmpegPath = "ffmpeg"
	}
	if c.Recorder.SampleRate == 0 {
		c.Recorder.SampleRate = 16000
	}
	if c.Recorder.Channels == 0 {
		c.Recorder.Channels = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if err := structValidator().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// structValidator reports violations under yaml field names.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}
