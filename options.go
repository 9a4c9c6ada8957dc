package hersenen

import "fmt"

// Threshold selects which activity values survive the alpha mask. The zero
// value means no thresholding (every pixel gets the overlay alpha).
//
// Thresholds are resolved against normalized slice values, so a literal
// threshold of 0.5 always means "the upper half of the display range",
// independent of the raw data scale. AutoThreshold recomputes the cutoff
// per frame as the 75th percentile of the normalized slice.
type Threshold struct {
	mode  thresholdMode
	value float64
}

type thresholdMode int

const (
	thresholdNone thresholdMode = iota
	thresholdLiteral
	thresholdAuto
)

// NoThreshold disables masking: the whole overlay is shown.
func NoThreshold() Threshold { return Threshold{} }

// LiteralThreshold masks every pixel whose normalized value is below v.
func LiteralThreshold(v float64) Threshold {
	return Threshold{mode: thresholdLiteral, value: v}
}

// AutoThreshold masks the lower three quartiles of each slice: the cutoff
// is the 75th percentile of the slice's normalized values.
func AutoThreshold() Threshold { return Threshold{mode: thresholdAuto} }

// config holds the resolved Animator configuration. It is immutable after
// New; options are applied once, never re-parsed per frame.
type config struct {
	colormap     Colormap
	overlayAlpha float64
	threshold    Threshold
	intervalMS   int

	// display range policy: fixed [lo, hi], the volume's global [min, max],
	// or (default) each slice's own [min, max].
	rangeFixed  bool
	rangeGlobal bool
	rangeLo     float64
	rangeHi     float64
}

func defaultConfig() config {
	return config{
		colormap:     Hot,
		overlayAlpha: 0.7,
		threshold:    NoThreshold(),
		intervalMS:   100,
	}
}

func (c *config) validate() error {
	const op = "New"
	if c.overlayAlpha < 0 || c.overlayAlpha > 1 || !isFinite(c.overlayAlpha) {
		return &ValueError{Op: op, Msg: fmt.Sprintf("overlay alpha %v outside [0, 1]", c.overlayAlpha)}
	}
	if c.intervalMS <= 0 {
		return &ValueError{Op: op, Msg: fmt.Sprintf("interval %dms is not positive", c.intervalMS)}
	}
	if c.threshold.mode == thresholdLiteral && !isFinite(c.threshold.value) {
		return &ValueError{Op: op, Msg: fmt.Sprintf("threshold %v is not finite", c.threshold.value)}
	}
	if c.rangeFixed {
		if !isFinite(c.rangeLo) || !isFinite(c.rangeHi) {
			return &ValueError{Op: op, Msg: "display range bounds must be finite"}
		}
		if c.rangeLo > c.rangeHi {
			return &ValueError{Op: op, Msg: fmt.Sprintf("display range [%v, %v] is inverted", c.rangeLo, c.rangeHi)}
		}
	}
	return nil
}

// Option configures an Animator during creation.
//
// Example:
//
//	an := hersenen.New(
//		hersenen.WithColormap(hersenen.Viridis),
//		hersenen.WithOverlayAlpha(0.8),
//	)
type Option func(*config)

// WithColormap sets the colormap used to colorize normalized activity.
// The default is Hot.
func WithColormap(m Colormap) Option {
	return func(c *config) { c.colormap = m }
}

// WithOverlayAlpha sets the opacity of above-threshold overlay pixels,
// in [0, 1]. The default is 0.7.
func WithOverlayAlpha(alpha float64) Option {
	return func(c *config) { c.overlayAlpha = alpha }
}

// WithThreshold sets the activity threshold. The default is NoThreshold.
func WithThreshold(t Threshold) Option {
	return func(c *config) { c.threshold = t }
}

// WithInterval sets the delay between frames in milliseconds. It is
// consumed by the player and encoders only; compositing ignores it.
// The default is 100.
func WithInterval(ms int) Option {
	return func(c *config) { c.intervalMS = ms }
}

// WithDisplayRange fixes the normalization range: values map linearly from
// [lo, hi] to [0, 1]. Without it each slice is normalized to its own
// [min, max].
func WithDisplayRange(lo, hi float64) Option {
	return func(c *config) {
		c.rangeFixed = true
		c.rangeGlobal = false
		c.rangeLo = lo
		c.rangeHi = hi
	}
}

// WithGlobalDisplayRange normalizes every slice against the volume's global
// [min, max] instead of per-slice bounds, keeping the color scale constant
// across the whole animation.
func WithGlobalDisplayRange() Option {
	return func(c *config) {
		c.rangeFixed = false
		c.rangeGlobal = true
	}
}
