package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the analysis pipeline over HTTP",
	Long: `Starts an HTTP server accepting consultation audio uploads.

Endpoints:
  POST /api/v1/consultations                      - upload and analyze audio
  GET  /api/v1/consultations/{id}                 - fetch a stored result
  GET  /api/v1/consultations/{id}/export/{format} - download markdown, pdf or docx
  GET  /healthz                                   - liveness probe

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level)

	p, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := server.New(cfg, p, log)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	log.Info(ctx, "Consultation API listening on %s", cfg.Server.Addr)
	log.Info(ctx, "Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info(ctx, "Shutdown signal received")
	return srv.Stop(ctx)
}
