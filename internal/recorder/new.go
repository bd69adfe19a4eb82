package recorder

import (
	"io"
	"os"

	"github.com/clinscribe/clinscribe/internal/config"
	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/pkg/executor"
)

type implRecorder struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
	control  io.Reader // a line here stops the capture
}

// New creates a new Recorder instance controlled from stdin
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Recorder {
	return &implRecorder{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		control:  os.Stdin,
	}
}
