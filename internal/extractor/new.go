package extractor

import (
	"github.com/clinscribe/clinscribe/internal/llm"
	"github.com/clinscribe/clinscribe/internal/logger"
)

type implExtractor struct {
	completer llm.Completer
	logger    logger.Logger
}

// New creates an Extractor backed by the given chat collaborator.
func New(completer llm.Completer, log logger.Logger) Extractor {
	return &implExtractor{
		completer: completer,
		logger:    log,
	}
}
