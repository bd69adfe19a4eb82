package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Groq: GroqConfig{APIKey: "gsk_test"},
			},
			wantErr: false,
		},
		{
			name:    "missing groq api key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "gemini provider without key",
			config: Config{
				Groq: GroqConfig{APIKey: "gsk_test"},
				LLM:  LLMConfig{Provider: "gemini"},
			},
			wantErr: true,
		},
		{
			name: "gemini provider with key",
			config: Config{
				Groq:   GroqConfig{APIKey: "gsk_test"},
				Gemini: GeminiConfig{APIKey: "AIza_test"},
				LLM:    LLMConfig{Provider: "gemini"},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: Config{
				Groq: GroqConfig{APIKey: "gsk_test"},
				LLM:  LLMConfig{Provider: "openai"},
			},
			wantErr: true,
		},
		{
			name: "unknown export format",
			config: Config{
				Groq:     GroqConfig{APIKey: "gsk_test"},
				Pipeline: PipelineConfig{Formats: []string{"markdown", "rtf"}},
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			config: Config{
				Groq:    GroqConfig{APIKey: "gsk_test"},
				Logging: LoggingConfig{Level: "trace"},
			},
			wantErr: true,
		},
		{
			name: "retry attempts out of range",
			config: Config{
				Groq:     GroqConfig{APIKey: "gsk_test"},
				Pipeline: PipelineConfig{MaxAttempts: 9},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Groq: GroqConfig{APIKey: "gsk_test"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Provider != "groq" {
		t.Errorf("Provider = %v, want groq", cfg.LLM.Provider)
	}
	if cfg.Groq.WhisperModel != "whisper-large-v3-turbo" {
		t.Errorf("WhisperModel = %v", cfg.Groq.WhisperModel)
	}
	if cfg.Pipeline.Language != "ur" {
		t.Errorf("Language = %v, want ur", cfg.Pipeline.Language)
	}
	if got := cfg.Pipeline.Timeout(); got != 120*time.Second {
		t.Errorf("Timeout() = %v, want 120s", got)
	}
	if cfg.Pipeline.MaxAttempts != 2 {
		t.Errorf("MaxAttempts = %v, want 2", cfg.Pipeline.MaxAttempts)
	}
	if len(cfg.Pipeline.Formats) != 2 {
		t.Errorf("Formats = %v, want markdown+pdf", cfg.Pipeline.Formats)
	}
	if cfg.Paths.Inbox != "data/inbox" {
		t.Errorf("Inbox = %v", cfg.Paths.Inbox)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v", cfg.Server.Addr)
	}
	if cfg.Recorder.SampleRate != 16000 {
		t.Errorf("SampleRate = %v", cfg.Recorder.SampleRate)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
groq:
  api_key: "gsk_test"
  chat_model: "llama-3.2-90b-vision-preview"

llm:
  provider: "groq"

pipeline:
  language: "ur"
  formats: ["markdown", "pdf", "docx"]
  timeout_seconds: 60

paths:
  inbox: "data/inbox"
  output: "data/output"

logging:
  level: "info"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Groq.ChatModel != "llama-3.2-90b-vision-preview" {
		t.Errorf("ChatModel = %v", cfg.Groq.ChatModel)
	}
	if len(cfg.Pipeline.Formats) != 3 {
		t.Errorf("Formats = %v, want 3 entries", cfg.Pipeline.Formats)
	}
	if cfg.Pipeline.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds = %v, want 60", cfg.Pipeline.TimeoutSeconds)
	}
	if cfg.Paths.Archive != "data/archive" {
		t.Errorf("Archive = %v, want default", cfg.Paths.Archive)
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GROQ_API_KEY", "gsk_from_env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Groq.APIKey != "gsk_from_env" {
		t.Errorf("APIKey = %v, want env value", cfg.Groq.APIKey)
	}
}

func TestLoadMissingFileRunsOnDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_from_env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Groq.APIKey != "gsk_from_env" {
		t.Errorf("APIKey = %v", cfg.Groq.APIKey)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v, want default", cfg.Server.Addr)
	}
}

func TestLoadMissingFileWithoutKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() should fail without an API key")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("groq: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}
