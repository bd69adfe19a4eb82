package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/internal/recorder"
	"github.com/clinscribe/clinscribe/pkg/executor"
)

var (
	recordOutput  string
	recordAnalyze bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Capture a consultation from the microphone",
	Long: `Records microphone audio with ffmpeg until Enter is pressed.
The capture lands in the inbox folder so watch mode picks it up, or is
analyzed immediately with --analyze.

Examples:
  clinscribe record
  clinscribe record --output visit.wav
  clinscribe record --analyze`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringVarP(&recordOutput, "output", "o", "", "output WAV path (default: inbox/consultation-<timestamp>.wav)")
	recordCmd.Flags().BoolVar(&recordAnalyze, "analyze", false, "analyze the recording immediately")
}

func runRecord(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	outputPath := recordOutput
	if outputPath == "" {
		outputPath = filepath.Join(cfg.Paths.Inbox,
			fmt.Sprintf("consultation-%s.wav", time.Now().Format("20060102-150405")))
	}

	rec := recorder.New(cfg, executor.New(), log)
	if err := rec.Record(ctx, outputPath); err != nil {
		return err
	}

	if !recordAnalyze {
		return nil
	}

	p, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	result, err := p.Process(ctx, outputPath)
	if err != nil {
		return err
	}
	if result.Degraded {
		log.Warn(ctx, "Summary used fallback content: %s", result.DegradedReason)
	}
	return nil
}
