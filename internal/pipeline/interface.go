package pipeline

import (
	"context"
	"time"

	"github.com/clinscribe/clinscribe/internal/analysis"
)

// Pipeline defines the interface for consultation analysis operations
type Pipeline interface {
	// Analyze runs the speech-to-summary chain over raw audio. ext names
	// the audio container, with or without the leading dot.
	Analyze(ctx context.Context, audio []byte, ext string) (*Result, error)
	// Process analyzes one audio file from disk, writes the configured
	// export formats and archives the input.
	Process(ctx context.Context, audioPath string) (*Result, error)
}

// Result carries everything one consultation analysis produced.
type Result struct {
	ID             string
	AudioFile      string
	Transcript     string
	Translation    string
	Analysis       analysis.ConsultationAnalysis
	Degraded       bool
	DegradedReason string
	Markdown       string
	Prompts        PromptVersions
	GeneratedAt    time.Time
}

// PromptVersions names the prompt templates that produced this result.
// Prompt wording is a compatibility contract, so each result records which
// one it was generated with.
type PromptVersions struct {
	Translation string `json:"translation"`
	Extraction  string `json:"extraction"`
}
