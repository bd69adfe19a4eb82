package recorder

import "context"

// Recorder defines the interface for microphone capture
type Recorder interface {
	// Record captures audio to outputPath until the user presses Enter
	// or the context is canceled.
	Record(ctx context.Context, outputPath string) error
}
