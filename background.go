package hersenen

import (
	"fmt"
	"image"
	"math"
)

// Luminance weights for reducing RGB to perceptual gray (ITU-R BT.601).
const (
	lumR = 0.2989
	lumG = 0.5870
	lumB = 0.1140
)

// Background is a static grayscale plane, intensity values in [0, 1].
// It keeps its source resolution; the Animator resamples it to the loaded
// volume's dimensions when frames are produced.
type Background struct {
	height int
	width  int
	data   []float64 // row-major gray values in [0, 1]
}

// NewBackground builds a Background from a rectangular [y][x] plane of
// gray intensities. Values must lie in [0, 1].
func NewBackground(plane [][]float64) (*Background, error) {
	const op = "NewBackground"
	if len(plane) == 0 {
		return nil, &ValueError{Op: op, Msg: "empty height axis"}
	}
	height := len(plane)
	width := len(plane[0])
	if width == 0 {
		return nil, &ValueError{Op: op, Msg: "empty width axis"}
	}

	b := &Background{
		height: height,
		width:  width,
		data:   make([]float64, height*width),
	}
	for y, row := range plane {
		if len(row) != width {
			return nil, &ValueError{Op: op, Msg: fmt.Sprintf("ragged width axis at row %d: got %d, want %d", y, len(row), width)}
		}
		for x, val := range row {
			if !isFinite(val) || val < 0 || val > 1 {
				return nil, &ValueError{Op: op, Msg: fmt.Sprintf("intensity %v at (%d,%d) outside [0, 1]", val, y, x)}
			}
			b.data[y*width+x] = val
		}
	}
	return b, nil
}

// BackgroundFromImage builds a Background from a decoded raster. Color
// images are reduced to gray with luminance weights 0.2989 R + 0.5870 G +
// 0.1140 B rather than a plain channel average, to match perceived
// brightness.
func BackgroundFromImage(img image.Image) (*Background, error) {
	const op = "BackgroundFromImage"
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, &ValueError{Op: op, Msg: "empty image"}
	}

	b := &Background{
		height: height,
		width:  width,
		data:   make([]float64, height*width),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			b.data[y*width+x] = clamp01(lumR*c.R + lumG*c.G + lumB*c.B)
		}
	}
	return b, nil
}

// Height returns the source height of the background.
func (b *Background) Height() int { return b.height }

// Width returns the source width of the background.
func (b *Background) Width() int { return b.width }

// At returns the gray value at (y, x) in the source resolution.
func (b *Background) At(y, x int) float64 {
	return b.data[y*b.width+x]
}

// sample performs bilinear interpolation at normalized coordinates (u, v),
// where (0,0) is top-left and (1,1) is bottom-right. Out-of-bounds
// coordinates clamp to the edge.
func (b *Background) sample(u, v float64) float64 {
	fx := u*float64(b.width) - 0.5
	fy := v*float64(b.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clampInt(x0+1, 0, b.width-1)
	y1 := clampInt(y0+1, 0, b.height-1)
	x0 = clampInt(x0, 0, b.width-1)
	y0 = clampInt(y0, 0, b.height-1)

	top := b.data[y0*b.width+x0]*(1-tx) + b.data[y0*b.width+x1]*tx
	bot := b.data[y1*b.width+x0]*(1-tx) + b.data[y1*b.width+x1]*tx
	return top*(1-ty) + bot*ty
}

// Resample returns the background resized to height x width by bilinear
// sampling. If the dimensions already match, the receiver's plane is
// returned as a copy. Output dimensions always equal the request exactly.
func (b *Background) Resample(height, width int) *Background {
	out := &Background{
		height: height,
		width:  width,
		data:   make([]float64, height*width),
	}
	if height == b.height && width == b.width {
		copy(out.data, b.data)
		return out
	}
	for y := 0; y < height; y++ {
		v := (float64(y) + 0.5) / float64(height)
		for x := 0; x < width; x++ {
			u := (float64(x) + 0.5) / float64(width)
			out.data[y*width+x] = clamp01(b.sample(u, v))
		}
	}
	return out
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
