package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TranscriptionError wraps any failure of the speech-to-text stage.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// Transcribe writes the audio to a transient file, hands it to the speech
// collaborator and returns the transcript. The transient file is removed
// even when the call fails; the extension is preserved because the
// collaborator sniffs the container format from the filename.
func (t *implTranscriber) Transcribe(ctx context.Context, audio []byte, ext string) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	tmp, err := os.CreateTemp("", "consult-*"+ext)
	if err != nil {
		return "", &TranscriptionError{Err: fmt.Errorf("create temp audio: %w", err)}
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			t.logger.Warn(ctx, "Failed to cleanup temp audio %s: %v", tmpPath, err)
		} else {
			t.logger.Debug(ctx, "Cleaned up temp audio: %s", tmpPath)
		}
	}()

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return "", &TranscriptionError{Err: fmt.Errorf("write temp audio: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		return "", &TranscriptionError{Err: fmt.Errorf("close temp audio: %w", err)}
	}

	t.logger.Info(ctx, "Starting transcription: %d bytes, language %q", len(audio), t.language)

	result, err := t.speech.Transcribe(ctx, tmpPath, t.language)
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}

	for _, seg := range result.Segments {
		t.logger.Debug(ctx, "Segment %d [%.2fs-%.2fs]: %s", seg.ID, seg.Start, seg.End, seg.Text)
	}
	t.logger.Info(ctx, "Transcription completed: %d characters", len(result.Text))

	return result.Text, nil
}
