package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clinscribe/clinscribe/internal/analysis"
	"github.com/clinscribe/clinscribe/internal/llm"
)

// ExtractionError wraps a collaborator-call failure during extraction.
// Parse failures never produce it; those degrade to the fallback record.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extract asks the chat collaborator for the structured record at low
// temperature and strictly decodes the reply. Unparseable output degrades
// to the canned fallback record with an explicit Degradation marker.
func (e *implExtractor) Extract(ctx context.Context, englishText string) (analysis.ConsultationAnalysis, *Degradation, error) {
	e.logger.Info(ctx, "Extracting structured analysis (prompt %s)", PromptVersion)

	raw, err := e.completer.Complete(ctx, llm.CompletionRequest{
		System:      systemPromptV1,
		Prompt:      fmt.Sprintf(promptV1, englishText),
		Temperature: 0.1,
		MaxTokens:   4024,
		TopP:        1,
	})
	if err != nil {
		return analysis.ConsultationAnalysis{}, nil, &ExtractionError{Err: err}
	}

	parsed, err := decodeAnalysis(raw)
	if err != nil {
		e.logger.Warn(ctx, "Model output unparseable, substituting fallback record: %v", err)
		return analysis.Fallback(), &Degradation{Reason: "model output was not valid analysis JSON", Err: err}, nil
	}

	e.logger.Info(ctx, "Extraction completed: %d medications, %d restrictions",
		len(parsed.Medications), len(parsed.Restrictions))
	return parsed, nil, nil
}

// rawAnalysis mirrors ConsultationAnalysis with pointers on the sections
// the schema requires, so their absence is detectable after decoding.
type rawAnalysis struct {
	Diagnosis    *analysis.Diagnosis    `json:"diagnosis"`
	Medications  []analysis.Medication  `json:"medications"`
	Restrictions []string               `json:"restrictions"`
	FollowUp     *analysis.FollowUp     `json:"follow_up"`
	SafetyAlerts *analysis.SafetyAlerts `json:"safety_alerts"`
}

func decodeAnalysis(raw string) (analysis.ConsultationAnalysis, error) {
	cleaned := extractJSON(raw)

	var decoded rawAnalysis
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return analysis.ConsultationAnalysis{}, fmt.Errorf("decode analysis JSON: %w", err)
	}
	if decoded.Diagnosis == nil || decoded.FollowUp == nil || decoded.SafetyAlerts == nil {
		return analysis.ConsultationAnalysis{}, fmt.Errorf("analysis JSON missing required sections")
	}

	a := analysis.ConsultationAnalysis{
		Diagnosis:    *decoded.Diagnosis,
		Medications:  decoded.Medications,
		Restrictions: decoded.Restrictions,
		FollowUp:     *decoded.FollowUp,
		SafetyAlerts: *decoded.SafetyAlerts,
	}
	a.ApplyDefaults()
	return a, nil
}

// extractJSON strips markdown code fences and isolates the outermost JSON
// object from a model reply.
func extractJSON(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
