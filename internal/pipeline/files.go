package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clinscribe/clinscribe/internal/report"
)

// SupportedExtensions lists the audio formats accepted for analysis.
var SupportedExtensions = []string{".m4a", ".mp3", ".wav"}

// IsSupportedAudio reports whether path carries a supported audio
// extension.
func IsSupportedAudio(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Process analyzes one audio file from disk, writes the configured export
// formats to the output folder and moves the input to archive. Inputs
// whose analysis fails move to the failed folder instead.
func (p *implPipeline) Process(ctx context.Context, audioPath string) (*Result, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	result, err := p.Analyze(ctx, audio, filepath.Ext(audioPath))
	if err != nil {
		if moveErr := p.moveTo(ctx, audioPath, p.cfg.Paths.Failed); moveErr != nil {
			p.logger.Warn(ctx, "Failed to move input to failed folder: %v", moveErr)
		}
		return nil, err
	}
	result.AudioFile = filepath.Base(audioPath)

	if err := p.writeExports(ctx, result); err != nil {
		return nil, err
	}

	if err := p.moveTo(ctx, audioPath, p.cfg.Paths.Archive); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archive folder: %v", err)
	}

	return result, nil
}

// writeExports writes every configured output format for the result.
// Degraded results carry a -fallback suffix so reviewers can spot them
// without opening the file.
func (p *implPipeline) writeExports(ctx context.Context, result *Result) error {
	base := exportBase(result)
	blocks := report.ParseBlocks(result.Markdown)

	for _, format := range p.cfg.Pipeline.Formats {
		outPath := filepath.Join(p.cfg.Paths.Output, base+exportExt(format))

		switch format {
		case "markdown":
			if err := os.WriteFile(outPath, []byte(result.Markdown), 0644); err != nil {
				return fmt.Errorf("write markdown: %w", err)
			}
		case "pdf":
			data, err := report.RenderPDF(blocks)
			if err != nil {
				return fmt.Errorf("render pdf: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("write pdf: %w", err)
			}
		case "docx":
			if err := report.WriteDOCX(blocks, outPath); err != nil {
				return fmt.Errorf("write docx: %w", err)
			}
		}

		p.logger.Info(ctx, "Output written: %s", outPath)
	}

	return nil
}

func exportBase(result *Result) string {
	name := strings.TrimSuffix(result.AudioFile, filepath.Ext(result.AudioFile))
	if result.Degraded {
		name += "-fallback"
	}
	return name
}

func exportExt(format string) string {
	switch format {
	case "markdown":
		return ".md"
	case "pdf":
		return ".pdf"
	default:
		return ".docx"
	}
}

// moveTo relocates a file into dir, keeping its base name.
func (p *implPipeline) moveTo(ctx context.Context, path, dir string) error {
	destPath := filepath.Join(dir, filepath.Base(path))

	p.logger.Info(ctx, "Moving input: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move input: %w", err)
	}

	return nil
}
