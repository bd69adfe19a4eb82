package extractor

import (
	"context"

	"github.com/clinscribe/clinscribe/internal/analysis"
)

// Extractor turns the English consultation text into a structured record.
//
// A non-nil *Degradation means the model's output could not be parsed and
// the canned fallback record was substituted; the error return is reserved
// for collaborator-call failures, which are terminal.
type Extractor interface {
	Extract(ctx context.Context, englishText string) (analysis.ConsultationAnalysis, *Degradation, error)
}

// Degradation records why a fallback record was substituted. Callers must
// decide explicitly how to surface it; it never travels as an error.
type Degradation struct {
	Reason string
	Err    error
}
