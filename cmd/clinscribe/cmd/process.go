package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process <audio-file>",
	Short: "Analyze a single consultation recording",
	Long: `Runs the full analysis chain over one audio file and writes the
configured formats to the output folder. The input moves to archive on
success and to the failed folder otherwise.

Examples:
  clinscribe process visit.m4a
  clinscribe process --config clinic.yaml data/inbox/visit.wav`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	audioPath := args[0]
	if !pipeline.IsSupportedAudio(audioPath) {
		return fmt.Errorf("unsupported audio format %q", filepath.Ext(audioPath))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	p, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	result, err := p.Process(ctx, audioPath)
	if err != nil {
		return err
	}

	if result.Degraded {
		log.Warn(ctx, "Summary used fallback content: %s", result.DegradedReason)
	}
	return nil
}
