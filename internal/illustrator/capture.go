package illustrator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"

	// screencapture writes PNG.
	_ "image/png"
)

// Snapshot is an encoded screenshot ready for transport.
type Snapshot struct {
	MIMEType string
	Data     string
}

// ErrCaptureFailed reports that the screen-capture utility exited non-zero.
var ErrCaptureFailed = errors.New("screen capture failed")

// Capture brings the application window to the front, captures the
// configured screen region to a temporary file, and re-encodes the result
// as a base64 JPEG. The temporary file is removed on every return path.
func (b *Bridge) Capture(ctx context.Context, returnToApp string) (*Snapshot, error) {
	tmp, err := os.CreateTemp("", "illustrator-capture-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create capture file: %w", err)
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	b.logger.Debug().
		Str("app", b.cfg.AppName).
		Str("region", b.cfg.CaptureRegion).
		Str("return_to_app", returnToApp).
		Msg("Capturing application window")

	// Activation is best-effort. The window may already be frontmost, so a
	// failed activation does not abort the capture.
	activation := activationScript(b.cfg.AppName, returnToApp)
	if result, err := b.run(ctx, "osascript", "-e", activation); err != nil {
		b.logger.Warn().Err(err).Msg("Window activation failed")
	} else if result.ExitCode != 0 {
		b.logger.Warn().
			Int("exit_code", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Window activation exited non-zero")
	}

	result, err := b.run(ctx, "screencapture", "-R", b.cfg.CaptureRegion, "-C", "-T", "2", "-x", path)
	if err != nil {
		return nil, fmt.Errorf("failed to run screencapture: %w", err)
	}
	if result.ExitCode != 0 {
		b.logger.Warn().
			Int("exit_code", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Screen capture exited non-zero")
		return nil, ErrCaptureFailed
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to decode capture: %w", err)
	}

	encoded, err := encodeJPEG(img, b.cfg.JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode capture: %w", err)
	}

	b.logger.Debug().Int("bytes", len(encoded)).Msg("Capture encoded")

	return &Snapshot{
		MIMEType: "image/jpeg",
		Data:     base64.StdEncoding.EncodeToString(encoded),
	}, nil
}
