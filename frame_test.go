package hersenen

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// Verify at compile time that Frame implements image.Image.
var _ image.Image = (*Frame)(nil)

func TestFramePixelRoundtrip(t *testing.T) {
	f := NewFrame(8, 4)
	c := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 0.9}
	f.SetPixel(3, 2, c)

	got := f.GetPixel(3, 2)
	const tolerance = 1.0 / 255
	if absDiff(got.R, c.R) > tolerance ||
		absDiff(got.G, c.G) > tolerance ||
		absDiff(got.B, c.B) > tolerance ||
		absDiff(got.A, c.A) > tolerance {
		t.Errorf("roundtrip: %+v -> %+v", c, got)
	}
}

func TestFrameOutOfBounds(t *testing.T) {
	f := NewFrame(4, 4)
	// Writes outside the raster are ignored, reads return Transparent.
	f.SetPixel(-1, 0, White)
	f.SetPixel(4, 0, White)
	f.SetPixel(0, 4, White)
	for _, p := range f.Data() {
		if p != 0 {
			t.Fatal("out-of-bounds write modified the raster")
		}
	}
	if got := f.GetPixel(-1, -1); got != Transparent {
		t.Errorf("GetPixel(-1,-1) = %+v, want Transparent", got)
	}
	if got := f.Alpha(9, 9); got != 0 {
		t.Errorf("Alpha(9,9) = %d, want 0", got)
	}
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(6, 3)
	if f.Width() != 6 || f.Height() != 3 {
		t.Errorf("dims = (%d,%d), want (6,3)", f.Width(), f.Height())
	}
	if got := f.Bounds(); got != image.Rect(0, 0, 6, 3) {
		t.Errorf("Bounds() = %v", got)
	}
	if f.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
}

func TestFrameToImage(t *testing.T) {
	f := NewFrame(2, 2)
	f.SetPixel(1, 0, RGB(1, 0, 0))
	img := f.ToImage()
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBAAt(1,0) = %+v", got)
	}
	// ToImage copies; mutating the image must not touch the frame.
	img.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	if f.GetPixel(0, 0) != Transparent {
		t.Error("ToImage() aliases the frame's storage")
	}
}

func TestFrameSavePNG(t *testing.T) {
	f := NewFrame(4, 4)
	f.SetPixel(0, 0, White)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := f.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("wrote empty PNG")
	}
}

func TestFrameDrawLabel(t *testing.T) {
	f := NewFrame(80, 20)
	f.DrawLabel(2, 14, "frame 1/3", White)
	changed := false
	for _, p := range f.Data() {
		if p != 0 {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("DrawLabel left the raster untouched")
	}
}
