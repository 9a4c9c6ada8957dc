package hersenen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Volume is a 3-dimensional array of activity scalars with axes
// (height, width, time). A Volume is immutable once constructed: all
// constructors validate and copy their input, and every sample is required
// to be finite. Slices are stored frame-major so a single time step is one
// contiguous block.
type Volume struct {
	height int
	width  int
	frames int
	data   []float64 // frames blocks of height*width samples
}

// NewVolume builds a Volume from nested slices indexed [y][x][t]. The input
// must be rectangular, every axis must be non-empty, and all values must be
// finite.
func NewVolume(data [][][]float64) (*Volume, error) {
	const op = "NewVolume"
	if len(data) == 0 {
		return nil, &ValueError{Op: op, Msg: "empty height axis"}
	}
	height := len(data)
	width := len(data[0])
	if width == 0 {
		return nil, &ValueError{Op: op, Msg: "empty width axis"}
	}
	frames := len(data[0][0])
	if frames == 0 {
		return nil, &ValueError{Op: op, Msg: "empty time axis"}
	}

	v := &Volume{
		height: height,
		width:  width,
		frames: frames,
		data:   make([]float64, height*width*frames),
	}
	for y, row := range data {
		if len(row) != width {
			return nil, &ValueError{Op: op, Msg: fmt.Sprintf("ragged width axis at row %d: got %d, want %d", y, len(row), width)}
		}
		for x, series := range row {
			if len(series) != frames {
				return nil, &ValueError{Op: op, Msg: fmt.Sprintf("ragged time axis at (%d,%d): got %d, want %d", y, x, len(series), frames)}
			}
			for t, val := range series {
				if !isFinite(val) {
					return nil, &ValueError{Op: op, Msg: fmt.Sprintf("non-finite value %v at (%d,%d,%d)", val, y, x, t)}
				}
				v.data[t*height*width+y*width+x] = val
			}
		}
	}
	return v, nil
}

// NewVolumeND builds a Volume from a flat sample buffer and explicit
// dimensions. dims must have exactly three entries (height, width, time);
// any other rank is a ShapeError. The buffer is laid out with time as the
// fastest-varying axis, matching data[y][x][t] flattened in order.
func NewVolumeND(dims []int, flat []float64) (*Volume, error) {
	const op = "NewVolumeND"
	if len(dims) != 3 {
		return nil, &ShapeError{Op: op, Got: len(dims), Want: 3}
	}
	height, width, frames := dims[0], dims[1], dims[2]
	for i, d := range dims {
		if d <= 0 {
			return nil, &ValueError{Op: op, Msg: fmt.Sprintf("empty axis %d (dim %d)", i, d)}
		}
	}
	if len(flat) != height*width*frames {
		return nil, &ValueError{Op: op, Msg: fmt.Sprintf("buffer length %d does not match %dx%dx%d", len(flat), height, width, frames)}
	}

	v := &Volume{
		height: height,
		width:  width,
		frames: frames,
		data:   make([]float64, len(flat)),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for t := 0; t < frames; t++ {
				val := flat[(y*width+x)*frames+t]
				if !isFinite(val) {
					return nil, &ValueError{Op: op, Msg: fmt.Sprintf("non-finite value %v at (%d,%d,%d)", val, y, x, t)}
				}
				v.data[t*height*width+y*width+x] = val
			}
		}
	}
	return v, nil
}

// Height returns the spatial height of the volume.
func (v *Volume) Height() int { return v.height }

// Width returns the spatial width of the volume.
func (v *Volume) Width() int { return v.width }

// Frames returns the time extent of the volume.
func (v *Volume) Frames() int { return v.frames }

// At returns the sample at (y, x) in time step t. Bounds are the caller's
// responsibility; At panics on out-of-range coordinates like a slice index.
func (v *Volume) At(y, x, t int) float64 {
	return v.data[t*v.height*v.width+y*v.width+x]
}

// Slice returns a copy of the 2D plane at time step t, row-major.
func (v *Volume) Slice(t int) []float64 {
	n := v.height * v.width
	out := make([]float64, n)
	copy(out, v.data[t*n:(t+1)*n])
	return out
}

// slice returns the plane at time step t without copying. Internal callers
// must treat it as read-only.
func (v *Volume) slice(t int) []float64 {
	n := v.height * v.width
	return v.data[t*n : (t+1)*n]
}

// MinMax returns the global minimum and maximum over all samples.
func (v *Volume) MinMax() (lo, hi float64) {
	return floats.Min(v.data), floats.Max(v.data)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
