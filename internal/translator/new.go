package translator

import (
	"github.com/clinscribe/clinscribe/internal/llm"
	"github.com/clinscribe/clinscribe/internal/logger"
)

type implTranslator struct {
	completer llm.Completer
	logger    logger.Logger
}

// New creates a Translator backed by the given chat collaborator.
func New(completer llm.Completer, log logger.Logger) Translator {
	return &implTranslator{
		completer: completer,
		logger:    log,
	}
}
