package translator

import "context"

// Translator renders the source-language transcript into English while
// preserving medical terminology.
type Translator interface {
	Translate(ctx context.Context, transcript string) (string, error)
}
