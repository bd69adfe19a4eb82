package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinscribe/clinscribe/internal/extractor"
	"github.com/clinscribe/clinscribe/internal/report"
	"github.com/clinscribe/clinscribe/internal/translator"
)

// Analyze orchestrates the entire consultation analysis chain
func (p *implPipeline) Analyze(ctx context.Context, audio []byte, ext string) (*Result, error) {
	startTime := time.Now()
	result := &Result{
		ID: uuid.NewString(),
		Prompts: PromptVersions{
			Translation: translator.PromptVersion,
			Extraction:  extractor.PromptVersion,
		},
		GeneratedAt: startTime.UTC(),
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting consultation analysis: %s", result.ID)
	p.logger.Info(ctx, "========================================")

	// Step 1: Transcribe audio
	transcript, err := p.transcriber.Transcribe(ctx, audio, ext)
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}
	result.Transcript = transcript

	// Step 2: Translate to English
	translation, err := p.translator.Translate(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("translate transcript: %w", err)
	}
	result.Translation = translation

	// Step 3: Extract structured analysis
	record, degradation, err := p.extractor.Extract(ctx, translation)
	if err != nil {
		return nil, fmt.Errorf("extract analysis: %w", err)
	}
	result.Analysis = record
	if degradation != nil {
		result.Degraded = true
		result.DegradedReason = degradation.Reason
	}

	// Step 4: Render markdown summary
	result.Markdown = report.Render(record)

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	if result.Degraded {
		p.logger.Warn(ctx, "Analysis completed with fallback content: %s", result.DegradedReason)
	} else {
		p.logger.Info(ctx, "Analysis completed successfully!")
	}
	p.logger.Info(ctx, "Analysis time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return result, nil
}
