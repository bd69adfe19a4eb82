package pipeline

import (
	"github.com/clinscribe/clinscribe/internal/config"
	"github.com/clinscribe/clinscribe/internal/extractor"
	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/internal/transcriber"
	"github.com/clinscribe/clinscribe/internal/translator"
)

type implPipeline struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	translator  translator.Translator
	extractor   extractor.Extractor
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(cfg *config.Config, tr transcriber.Transcriber, tl translator.Translator, ex extractor.Extractor, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		transcriber: tr,
		translator:  tl,
		extractor:   ex,
		logger:      log,
	}
}
