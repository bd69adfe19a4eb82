package recorder

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/clinscribe/clinscribe/internal/config"
	"github.com/clinscribe/clinscribe/internal/logger"
)

type fakeExecutor struct {
	execCalls  [][]string
	inputCalls [][]string
	stdin      string
	executeErr error
	inputErr   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.execCalls = append(f.execCalls, append([]string{name}, args...))
	return "", f.executeErr
}

func (f *fakeExecutor) ExecuteWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error) {
	data, _ := io.ReadAll(stdin)
	f.stdin = string(data)
	f.inputCalls = append(f.inputCalls, append([]string{name}, args...))
	return "", f.inputErr
}

func testRecorder(exec *fakeExecutor, control io.Reader) *implRecorder {
	cfg := &config.Config{}
	cfg.Recorder.FFmpegPath = "ffmpeg"
	cfg.Recorder.Driver = "alsa"
	cfg.Recorder.SampleRate = 16000
	cfg.Recorder.Channels = 1
	return &implRecorder{
		cfg:      cfg,
		executor: exec,
		logger:   logger.NewWithWriter("error", io.Discard),
		control:  control,
	}
}

func TestRecord(t *testing.T) {
	exec := &fakeExecutor{}
	r := testRecorder(exec, strings.NewReader("\n"))

	if err := r.Record(context.Background(), "visit.wav"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if len(exec.execCalls) != 1 || exec.execCalls[0][1] != "-version" {
		t.Errorf("version probe calls = %v", exec.execCalls)
	}
	wantArgs := []string{"ffmpeg", "-f", "alsa", "-i", "default", "-ar", "16000", "-ac", "1", "-y", "visit.wav"}
	if len(exec.inputCalls) != 1 || !reflect.DeepEqual(exec.inputCalls[0], wantArgs) {
		t.Errorf("capture call = %v, want %v", exec.inputCalls, wantArgs)
	}
	if exec.stdin != "q" {
		t.Errorf("capture stdin = %q, want the ffmpeg quit command", exec.stdin)
	}
}

func TestRecordMissingFFmpeg(t *testing.T) {
	exec := &fakeExecutor{executeErr: errors.New("not found")}
	r := testRecorder(exec, strings.NewReader("\n"))

	err := r.Record(context.Background(), "visit.wav")
	if err == nil {
		t.Fatal("Record() expected an error")
	}
	if !strings.Contains(err.Error(), "ffmpeg not available") {
		t.Errorf("Record() error = %v", err)
	}
	if len(exec.inputCalls) != 0 {
		t.Error("Record() started a capture without ffmpeg")
	}
}

func TestRecordCaptureFailure(t *testing.T) {
	exec := &fakeExecutor{inputErr: errors.New("device busy")}
	r := testRecorder(exec, strings.NewReader("\n"))

	err := r.Record(context.Background(), "visit.wav")
	if err == nil {
		t.Fatal("Record() expected an error")
	}
	if !strings.Contains(err.Error(), "capture audio") {
		t.Errorf("Record() error = %v", err)
	}
}

func TestRecordDshowRequiresDevice(t *testing.T) {
	exec := &fakeExecutor{}
	r := testRecorder(exec, strings.NewReader("\n"))
	r.cfg.Recorder.Driver = "dshow"

	err := r.Record(context.Background(), "visit.wav")
	if err == nil {
		t.Fatal("Record() expected an error for a missing dshow device")
	}
	if !strings.Contains(err.Error(), "recorder.device is required") {
		t.Errorf("Record() error = %v", err)
	}
}

func TestCaptureArgs(t *testing.T) {
	got := captureArgs("avfoundation", ":0", 44100, 2, "out.wav")
	want := []string{"-f", "avfoundation", "-i", ":0", "-ar", "44100", "-ac", "2", "-y", "out.wav"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("captureArgs() = %v, want %v", got, want)
	}
}

func TestDefaultDriver(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "avfoundation"},
		{"windows", "dshow"},
		{"linux", "alsa"},
		{"freebsd", "alsa"},
	}

	for _, tt := range tests {
		if got := defaultDriver(tt.goos); got != tt.want {
			t.Errorf("defaultDriver(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}
