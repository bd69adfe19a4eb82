package watcher

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clinscribe/clinscribe/internal/logger"
)

func TestWatcherDetectsNewRecordings(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)

	handler := func(ctx context.Context, path string) error {
		seen <- path
		return nil
	}

	w, err := New(dir, handler, logger.NewWithWriter("error", io.Discard), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	audioPath := filepath.Join(dir, "visit.m4a")
	if err := os.WriteFile(audioPath, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-seen:
		if got != audioPath {
			t.Errorf("handler saw %q, want %q", got, audioPath)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler not called for a new recording")
	}

	select {
	case got := <-seen:
		t.Errorf("handler saw ignored file %q", got)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not stop after cancel")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), func(context.Context, string) error { return nil },
		logger.NewWithWriter("error", io.Discard), 1)
	if err == nil {
		t.Fatal("New() expected an error for a missing directory")
	}
}
