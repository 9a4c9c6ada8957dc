package hersenen

import (
	"fmt"
	"image"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/AliceLynxx/BewegendeHersenen/internal/imageio"
)

// rangeEpsilon keeps normalization defined when a slice is constant:
// a degenerate [lo, lo] display range is widened to [lo, lo+rangeEpsilon],
// mapping every sample to 0.
const rangeEpsilon = 1e-12

// autoQuantile is the percentile used by AutoThreshold.
const autoQuantile = 0.75

// Animator composites activity volumes into RGBA frames. The configuration
// is fixed at construction; LoadData and LoadBackground are the only
// mutating operations. After loading, concurrent Frame calls are safe: the
// volume and background are treated as read-only and every frame is
// computed independently.
type Animator struct {
	cfg config

	volume     *Volume
	background *Background
	scaled     *Background // background resampled to the volume's dimensions

	// global display range, cached because the volume is immutable.
	globalLo, globalHi float64
	globalValid        bool
}

// New creates an Animator. Invalid option values (alpha outside [0, 1],
// non-positive interval, non-finite bounds) are reported as a *ValueError.
func New(opts ...Option) (*Animator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Animator{cfg: cfg}, nil
}

// MustNew is New for static configurations; it panics on option errors.
func MustNew(opts ...Option) *Animator {
	a, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// LoadData stores the activity volume to composite. A previously loaded
// volume is discarded, cached normalization statistics are invalidated, and
// any loaded background is resampled against the new dimensions.
func (a *Animator) LoadData(v *Volume) error {
	if v == nil {
		return &ValueError{Op: "LoadData", Msg: "nil volume"}
	}
	a.volume = v
	a.globalValid = false
	a.scaled = nil
	if a.cfg.rangeGlobal {
		// Computed here rather than lazily in Frame so that concurrent
		// Frame calls never mutate Animator state.
		a.globalLo, a.globalHi = v.MinMax()
		a.globalValid = true
	}
	if a.background != nil {
		a.scaled = a.background.Resample(v.height, v.width)
	}
	Logger().Info("volume loaded",
		"height", v.height, "width", v.width, "frames", v.frames)
	return nil
}

// LoadBackground stores a grayscale background plane. A previously loaded
// background is discarded. If a volume is already loaded the background is
// resampled to its dimensions now; otherwise the resample happens when a
// volume arrives.
func (a *Animator) LoadBackground(b *Background) error {
	if b == nil {
		return &ValueError{Op: "LoadBackground", Msg: "nil background"}
	}
	a.background = b
	a.scaled = nil
	if a.volume != nil {
		a.scaled = b.Resample(a.volume.height, a.volume.width)
		Logger().Debug("background resampled",
			"from_height", b.height, "from_width", b.width,
			"to_height", a.volume.height, "to_width", a.volume.width)
	}
	return nil
}

// LoadBackgroundImage converts a decoded raster to grayscale and loads it
// as the background.
func (a *Animator) LoadBackgroundImage(img image.Image) error {
	b, err := BackgroundFromImage(img)
	if err != nil {
		return err
	}
	return a.LoadBackground(b)
}

// LoadBackgroundFile reads and decodes a background image file (PNG, JPEG,
// BMP or TIFF). An unreadable or unsupported file is a *ResourceError;
// there is no fallback.
func (a *Animator) LoadBackgroundFile(path string) error {
	img, err := imageio.LoadImage(path)
	if err != nil {
		return &ResourceError{Op: "LoadBackgroundFile", Path: path, Err: err}
	}
	return a.LoadBackgroundImage(img)
}

// AutoDetectBackground probes the working directory for the conventional
// background file (background.png) and loads it when present. A missing
// file is not an error: the animator simply stays background-free and the
// probe reports false. A file that exists but cannot be decoded still
// fails with a *ResourceError.
func (a *Animator) AutoDetectBackground() (bool, error) {
	path, ok := imageio.DetectBackground(".")
	if !ok {
		Logger().Warn("no background auto-detected, compositing without one")
		return false, nil
	}
	if err := a.LoadBackgroundFile(path); err != nil {
		return false, err
	}
	return true, nil
}

// HasBackground reports whether a background is loaded.
func (a *Animator) HasBackground() bool { return a.background != nil }

// Volume returns the loaded volume, or nil.
func (a *Animator) Volume() *Volume { return a.volume }

// Interval returns the configured frame interval in milliseconds.
func (a *Animator) Interval() int { return a.cfg.intervalMS }

// displayRange resolves the [lo, hi] normalization bounds for a slice
// according to the configured policy.
func (a *Animator) displayRange(slice []float64) (lo, hi float64) {
	switch {
	case a.cfg.rangeFixed:
		lo, hi = a.cfg.rangeLo, a.cfg.rangeHi
	case a.cfg.rangeGlobal:
		lo, hi = a.globalLo, a.globalHi
		if !a.globalValid {
			lo, hi = a.volume.MinMax()
		}
	default:
		lo, hi = floats.Min(slice), floats.Max(slice)
	}
	if hi <= lo {
		hi = lo + rangeEpsilon
	}
	return lo, hi
}

// normalize maps a slice linearly from [lo, hi] to [0, 1], clamping values
// outside the range.
func normalize(slice []float64, lo, hi float64) []float64 {
	out := make([]float64, len(slice))
	scale := 1 / (hi - lo)
	for i, v := range slice {
		out[i] = clamp01((v - lo) * scale)
	}
	return out
}

// cutoff resolves the alpha-mask threshold for a normalized slice.
// The returned value is in the same normalized domain as the slice; with
// no threshold configured it is -Inf so every pixel passes.
func (a *Animator) cutoff(norm []float64) float64 {
	switch a.cfg.threshold.mode {
	case thresholdLiteral:
		return a.cfg.threshold.value
	case thresholdAuto:
		sorted := make([]float64, len(norm))
		copy(sorted, norm)
		sort.Float64s(sorted)
		return stat.Quantile(autoQuantile, stat.Empirical, sorted, nil)
	default:
		return math.Inf(-1)
	}
}

// Frame composites the time step at index into an RGBA frame.
//
// The slice is normalized to [0, 1] (per-slice bounds unless configured
// otherwise), colorized through the configured colormap, and masked:
// pixels below the threshold cutoff become fully transparent, pixels at or
// above it get the overlay alpha. With a background loaded the overlay is
// blended per channel as bg*(1-alpha) + overlay*alpha and the result is
// opaque; without one the overlay's own binary-alpha channel is preserved.
func (a *Animator) Frame(index int) (*Frame, error) {
	const op = "Frame"
	if a.volume == nil {
		return nil, &StateError{Op: op, Msg: "no volume loaded, call LoadData first"}
	}
	if index < 0 || index >= a.volume.frames {
		return nil, &IndexError{Op: op, Index: index, Extent: a.volume.frames}
	}

	height, width := a.volume.height, a.volume.width
	slice := a.volume.slice(index)
	lo, hi := a.displayRange(slice)
	norm := normalize(slice, lo, hi)
	cut := a.cutoff(norm)

	frame := NewFrame(width, height)
	alpha := a.cfg.overlayAlpha
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := norm[y*width+x]
			c := a.cfg.colormap.At(t)

			if t < cut {
				// Below threshold: fully transparent. Over a background
				// that means the background alone shows through.
				if a.scaled != nil {
					frame.SetPixel(x, y, Gray(a.scaled.At(y, x)))
				}
				continue
			}

			if a.scaled != nil {
				bg := a.scaled.At(y, x)
				frame.SetPixel(x, y, RGBA{
					R: bg*(1-alpha) + c.R*alpha,
					G: bg*(1-alpha) + c.G*alpha,
					B: bg*(1-alpha) + c.B*alpha,
					A: 1,
				})
			} else {
				frame.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: alpha})
			}
		}
	}

	Logger().Debug("frame composited",
		"index", index, "lo", lo, "hi", hi, "cutoff", cut)
	return frame, nil
}

// Frames composites every time step in order.
func (a *Animator) Frames() ([]*Frame, error) {
	if a.volume == nil {
		return nil, &StateError{Op: "Frames", Msg: "no volume loaded, call LoadData first"}
	}
	out := make([]*Frame, a.volume.frames)
	for i := range out {
		f, err := a.Frame(i)
		if err != nil {
			return nil, fmt.Errorf("hersenen: composite frame %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
