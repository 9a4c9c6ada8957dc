package encode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
)

// ErrFFmpegNotFound is returned when MP4 encoding is requested but no
// ffmpeg binary is on PATH.
var ErrFFmpegNotFound = errors.New("encode: ffmpeg not found in PATH")

// ffmpegBinary is variable so tests can point it at a stub.
var ffmpegBinary = "ffmpeg"

// HaveFFmpeg reports whether an ffmpeg binary is available.
func HaveFFmpeg() bool {
	_, err := exec.LookPath(ffmpegBinary)
	return err == nil
}

// MP4 writes the frames as an H.264 MP4 by streaming PNG-encoded frames to
// an external ffmpeg process. delayMS determines the output frame rate
// (1000/delayMS fps). Returns ErrFFmpegNotFound when no ffmpeg binary is
// available; the caller decides whether that is fatal.
func MP4(path string, frames []image.Image, delayMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode: no frames to write")
	}
	if _, err := exec.LookPath(ffmpegBinary); err != nil {
		return ErrFFmpegNotFound
	}

	fps := 1000.0 / float64(delayMS)

	var in bytes.Buffer
	for i, frame := range frames {
		if err := png.Encode(&in, frame); err != nil {
			return fmt.Errorf("encode: frame %d: %w", i, err)
		}
	}

	//nolint:gosec // fixed argument set, only path and rate vary
	cmd := exec.Command(ffmpegBinary,
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-framerate", strconv.FormatFloat(fps, 'f', 3, 64),
		"-i", "-",
		"-vcodec", "libx264",
		"-pix_fmt", "yuv420p",
		// H.264 requires even dimensions; pad odd frames by one pixel.
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		path,
	)
	cmd.Stdin = &in

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("encode: ffmpeg: %w: %s", err, bytes.TrimSpace(out))
	}
	return nil
}
