package transcriber

import (
	"github.com/clinscribe/clinscribe/internal/logger"
)

type implTranscriber struct {
	speech   SpeechClient
	language string
	logger   logger.Logger
}

// New creates a Transcriber with a fixed source-language hint.
func New(speech SpeechClient, language string, log logger.Logger) Transcriber {
	return &implTranscriber{
		speech:   speech,
		language: language,
		logger:   log,
	}
}
