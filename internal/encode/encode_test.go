package encode

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func testFrames(n, w, h int) []image.Image {
	frames := make([]image.Image, n)
	for i := range frames {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: uint8(i * 40), G: uint8(x * 10), B: uint8(y * 10), A: 255})
			}
		}
		frames[i] = img
	}
	return frames
}

func TestGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")
	if err := GIF(path, testFrames(5, 8, 8), 100); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 5 {
		t.Errorf("frames = %d, want 5", len(g.Image))
	}
	if g.Delay[0] != 10 {
		t.Errorf("delay = %d, want 10 centiseconds", g.Delay[0])
	}
	if g.LoopCount != 0 {
		t.Errorf("loop count = %d, want 0 (loop forever)", g.LoopCount)
	}
}

func TestGIFMinimumDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.gif")
	if err := GIF(path, testFrames(2, 4, 4), 3); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if g.Delay[0] != 1 {
		t.Errorf("delay = %d, want the 1 centisecond floor", g.Delay[0])
	}
}

func TestGIFNoFrames(t *testing.T) {
	if err := GIF(filepath.Join(t.TempDir(), "empty.gif"), nil, 100); err == nil {
		t.Error("empty frame list did not error")
	}
}

func TestMP4MissingFFmpeg(t *testing.T) {
	old := ffmpegBinary
	ffmpegBinary = "ffmpeg-definitely-not-installed"
	defer func() { ffmpegBinary = old }()

	if HaveFFmpeg() {
		t.Fatal("stub binary reported as present")
	}
	err := MP4(filepath.Join(t.TempDir(), "out.mp4"), testFrames(2, 4, 4), 100)
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("error = %v, want ErrFFmpegNotFound", err)
	}
}

func TestMP4NoFrames(t *testing.T) {
	if err := MP4(filepath.Join(t.TempDir(), "empty.mp4"), nil, 100); err == nil {
		t.Error("empty frame list did not error")
	}
}
