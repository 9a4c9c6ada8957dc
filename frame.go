package hersenen

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Frame is a composited RGBA raster for a single time step. Pixels are
// stored row-major as 4 bytes per pixel, channel values in [0, 255],
// straight alpha. Frames are ephemeral: the Animator never retains them.
type Frame struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewFrame creates an all-transparent frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int { return f.width }

// Height returns the height of the frame.
func (f *Frame) Height() int { return f.height }

// Data returns the raw pixel data (RGBA format).
func (f *Frame) Data() []uint8 { return f.data }

// SetPixel sets the color of a single pixel.
func (f *Frame) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.data[i+0] = uint8(clamp255(c.R * 255))
	f.data[i+1] = uint8(clamp255(c.G * 255))
	f.data[i+2] = uint8(clamp255(c.B * 255))
	f.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (f *Frame) GetPixel(x, y int) RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Transparent
	}
	i := (y*f.width + x) * 4
	return RGBA{
		R: float64(f.data[i+0]) / 255,
		G: float64(f.data[i+1]) / 255,
		B: float64(f.data[i+2]) / 255,
		A: float64(f.data[i+3]) / 255,
	}
}

// Alpha returns the raw alpha byte of a single pixel.
func (f *Frame) Alpha(x, y int) uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.data[(y*f.width+x)*4+3]
}

// ToImage converts the frame to an image.NRGBA. The pixel data is copied.
func (f *Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return png.Encode(file, f.ToImage())
}

// DrawLabel draws a single line of text at (x, y) using the builtin 7x13
// bitmap face. y is the text baseline. Used by CreateAnimation to burn the
// title and frame counter into each frame.
func (f *Frame) DrawLabel(x, y int, text string, c RGBA) {
	img := f.ToImage()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	copy(f.data, img.Pix)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}
