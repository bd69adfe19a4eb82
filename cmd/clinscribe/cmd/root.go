package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clinscribe/clinscribe/internal/config"
	"github.com/clinscribe/clinscribe/internal/extractor"
	"github.com/clinscribe/clinscribe/internal/llm"
	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/internal/pipeline"
	"github.com/clinscribe/clinscribe/internal/transcriber"
	"github.com/clinscribe/clinscribe/internal/translator"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "clinscribe",
	Short: "Medical consultation transcription and analysis",
	Long: `clinscribe turns recorded doctor-patient consultations into
structured summaries: audio is transcribed, translated from Urdu to
English, distilled into a typed analysis and rendered as markdown,
PDF or Word documents.

Modes:
  process  - analyze a single recording
  record   - capture a consultation from the microphone
  watch    - monitor the inbox folder for new recordings
  serve    - expose the pipeline over HTTP`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the configured YAML file. --verbose forces debug
// logging regardless of the file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// buildPipeline wires the collaborator chain from configuration. Speech
// always goes through Groq Whisper; chat steps use the configured
// provider.
func buildPipeline(ctx context.Context, cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	groq := llm.NewGroq(cfg, log)

	var chat llm.Completer = groq
	if cfg.LLM.Provider == "gemini" {
		gemini, err := llm.NewGemini(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		chat = gemini
	}

	return pipeline.New(
		cfg,
		transcriber.New(groq, cfg.Pipeline.Language, log),
		translator.New(chat, log),
		extractor.New(chat, log),
		log,
	), nil
}

// ensureDirectories creates the pipeline folders if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Archive,
		cfg.Paths.Failed,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
