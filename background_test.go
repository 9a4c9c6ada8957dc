package hersenen

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func uniformPlane(height, width int, v float64) [][]float64 {
	plane := make([][]float64, height)
	for y := range plane {
		plane[y] = make([]float64, width)
		for x := range plane[y] {
			plane[y][x] = v
		}
	}
	return plane
}

func TestNewBackground(t *testing.T) {
	tests := []struct {
		name    string
		plane   [][]float64
		wantErr bool
	}{
		{"valid", uniformPlane(4, 6, 0.5), false},
		{"empty", [][]float64{}, true},
		{"empty row", [][]float64{{}}, true},
		{"ragged", [][]float64{{0, 0}, {0}}, true},
		{"above one", [][]float64{{1.5}}, true},
		{"negative", [][]float64{{-0.1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBackground(tt.plane)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBackground() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *ValueError
				if !errors.As(err, &verr) {
					t.Errorf("error type = %T, want *ValueError", err)
				}
				return
			}
			if b.Height() != len(tt.plane) || b.Width() != len(tt.plane[0]) {
				t.Errorf("dims = (%d,%d), want (%d,%d)", b.Height(), b.Width(), len(tt.plane), len(tt.plane[0]))
			}
		})
	}
}

func TestBackgroundFromImageLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    color.NRGBA
		want float64
	}{
		{"black", color.NRGBA{0, 0, 0, 255}, 0},
		{"white", color.NRGBA{255, 255, 255, 255}, 1},
		{"pure red", color.NRGBA{255, 0, 0, 255}, 0.2989},
		{"pure green", color.NRGBA{0, 255, 0, 255}, 0.5870},
		{"pure blue", color.NRGBA{0, 0, 255, 255}, 0.1140},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
			for i := 0; i < 4; i++ {
				img.SetNRGBA(i%2, i/2, tt.c)
			}
			b, err := BackgroundFromImage(img)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.At(0, 0); absDiff(got, tt.want) > 1e-3 {
				t.Errorf("At(0,0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBackgroundResampleDimensions(t *testing.T) {
	tests := []struct {
		name         string
		srcH, srcW   int
		wantH, wantW int
	}{
		{"upscale", 10, 10, 64, 48},
		{"downscale", 100, 80, 16, 16},
		{"same size", 32, 32, 32, 32},
		{"one pixel source", 1, 1, 8, 8},
		{"anisotropic", 20, 60, 60, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBackground(uniformPlane(tt.srcH, tt.srcW, 0.25))
			if err != nil {
				t.Fatal(err)
			}
			got := b.Resample(tt.wantH, tt.wantW)
			if got.Height() != tt.wantH || got.Width() != tt.wantW {
				t.Fatalf("Resample dims = (%d,%d), want (%d,%d)", got.Height(), got.Width(), tt.wantH, tt.wantW)
			}
			// A constant plane resamples to the same constant.
			for y := 0; y < tt.wantH; y++ {
				for x := 0; x < tt.wantW; x++ {
					if absDiff(got.At(y, x), 0.25) > 1e-12 {
						t.Fatalf("At(%d,%d) = %v, want 0.25", y, x, got.At(y, x))
					}
				}
			}
		})
	}
}

func TestBackgroundResampleInterpolates(t *testing.T) {
	// Upscaling a two-pixel gradient must produce intermediate values,
	// not a nearest-neighbor step everywhere.
	b, err := NewBackground([][]float64{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	out := b.Resample(1, 8)
	sawIntermediate := false
	prev := out.At(0, 0)
	for x := 1; x < 8; x++ {
		cur := out.At(0, x)
		if cur < prev-1e-12 {
			t.Fatalf("gradient not monotonic at x=%d: %v -> %v", x, prev, cur)
		}
		if cur > 0.1 && cur < 0.9 {
			sawIntermediate = true
		}
		prev = cur
	}
	if !sawIntermediate {
		t.Error("no interpolated values found in upscaled gradient")
	}
}
