package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/clinscribe/clinscribe/internal/llm"
)

// TranslationError wraps any failure of the translation stage.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed: %v", e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// Translate sends the transcript through the chat collaborator with the
// fixed translation prompt. The transcript is forwarded as-is, even when
// empty; the collaborator owns that judgment.
func (t *implTranslator) Translate(ctx context.Context, transcript string) (string, error) {
	t.logger.Info(ctx, "Translating consultation to English (prompt %s)", PromptVersion)

	out, err := t.completer.Complete(ctx, llm.CompletionRequest{
		System:      systemPromptV1,
		Prompt:      fmt.Sprintf(promptV1, transcript),
		Temperature: 0.3,
		MaxTokens:   4024,
		TopP:        1,
	})
	if err != nil {
		return "", &TranslationError{Err: err}
	}

	translation := strings.TrimSpace(out)
	t.logger.Info(ctx, "Translation completed: %d characters", len(translation))
	return translation, nil
}
