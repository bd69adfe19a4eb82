package cmd

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/internal/watcher"
)

var watchConcurrent int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the inbox folder for new recordings",
	Long: `Watches the inbox folder and analyzes every new consultation
recording as it arrives. Summaries are written to the output folder and
inputs move to archive (or failed) when done.

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchConcurrent, "concurrent", 1, "maximum concurrent analyses")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Consultation Analysis Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Chat provider: %s", cfg.LLM.Provider)
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	p, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	handler := func(ctx context.Context, path string) error {
		_, err := p.Process(ctx, path)
		return err
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, watchConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Consultation pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Formats: %s", strings.Join(cfg.Pipeline.Formats, ", "))
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		// Start drains in-flight analyses before returning.
		if err := <-errChan; err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher error: %v", err)
		}
	case err := <-errChan:
		if err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher error: %v", err)
		}
	}

	log.Info(ctx, "Consultation pipeline stopped")
	return nil
}
