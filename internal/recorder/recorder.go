package recorder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
)

// Record captures microphone audio to a speech-quality WAV file. The
// capture runs until a line arrives on the control reader, which sends
// ffmpeg its quit command so the container is finalized cleanly.
func (r *implRecorder) Record(ctx context.Context, outputPath string) error {
	driver := r.cfg.Recorder.Driver
	if driver == "" {
		driver = defaultDriver(runtime.GOOS)
	}
	device := r.cfg.Recorder.Device
	if device == "" {
		device = defaultDevice(driver)
	}
	if device == "" {
		return fmt.Errorf("recorder.device is required for the %s driver", driver)
	}

	if _, err := r.executor.Execute(ctx, r.cfg.Recorder.FFmpegPath, "-version"); err != nil {
		return fmt.Errorf("ffmpeg not available: %w", err)
	}

	args := captureArgs(driver, device, r.cfg.Recorder.SampleRate, r.cfg.Recorder.Channels, outputPath)

	r.logger.Info(ctx, "Recording to %s (driver %s, device %s)", outputPath, driver, device)
	r.logger.Info(ctx, "Press Enter to stop recording...")

	pr, pw := io.Pipe()
	defer pr.Close()
	go func() {
		defer pw.Close()
		if _, err := bufio.NewReader(r.control).ReadString('\n'); err != nil {
			return
		}
		// "q" asks ffmpeg to finalize the file and exit.
		pw.Write([]byte("q"))
	}()

	if _, err := r.executor.ExecuteWithInput(ctx, pr, r.cfg.Recorder.FFmpegPath, args...); err != nil {
		return fmt.Errorf("capture audio: %w", err)
	}

	r.logger.Info(ctx, "Recording saved: %s", outputPath)
	return nil
}

// captureArgs builds the ffmpeg invocation. 16kHz mono is what the
// transcription model expects, so that is the configured default.
func captureArgs(driver, device string, sampleRate, channels int, outputPath string) []string {
	return []string{
		"-f", driver,
		"-i", device,
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"-y",
		outputPath,
	}
}

func defaultDriver(goos string) string {
	switch goos {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "alsa"
	}
}

// defaultDevice picks the default capture source per driver. dshow has no
// portable default, so Windows users must configure recorder.device.
func defaultDevice(driver string) string {
	switch driver {
	case "avfoundation":
		return ":0"
	case "dshow":
		return ""
	default:
		return "default"
	}
}
