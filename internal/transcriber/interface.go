package transcriber

import (
	"context"

	"github.com/clinscribe/clinscribe/internal/llm"
)

// Transcriber converts raw consultation audio into source-language text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, ext string) (string, error)
}

// SpeechClient is the speech-to-text collaborator surface the adapter
// consumes. *llm.GroqClient satisfies it.
type SpeechClient interface {
	Transcribe(ctx context.Context, path, language string) (llm.TranscriptionResult, error)
}
