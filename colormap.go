package hersenen

import (
	"fmt"
	"sort"
	"strings"
)

// Colormap identifies one of the fixed scalar-to-RGB mappings used to
// colorize normalized activity values.
type Colormap int

const (
	// Hot is a monotonic black -> red -> yellow -> white ramp.
	Hot Colormap = iota
	// Plasma is a perceptually uniform purple -> pink -> yellow ramp.
	Plasma
	// Inferno is a dark purple -> orange -> yellow ramp.
	Inferno
	// Viridis is a purple -> blue -> green -> yellow ramp.
	Viridis
)

// String returns the colormap name.
func (m Colormap) String() string {
	switch m {
	case Hot:
		return "hot"
	case Plasma:
		return "plasma"
	case Inferno:
		return "inferno"
	case Viridis:
		return "viridis"
	default:
		return "unknown"
	}
}

// ParseColormap resolves a colormap name (case-insensitive) to a Colormap.
func ParseColormap(name string) (Colormap, error) {
	switch strings.ToLower(name) {
	case "hot":
		return Hot, nil
	case "plasma":
		return Plasma, nil
	case "inferno":
		return Inferno, nil
	case "viridis":
		return Viridis, nil
	default:
		return 0, &ValueError{Op: "ParseColormap", Msg: fmt.Sprintf("unknown colormap %q (want hot, plasma, inferno or viridis)", name)}
	}
}

// ColorStop represents a color at a specific position in a colormap ramp.
type ColorStop struct {
	Offset float64 // Position in the ramp, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// The colormap tables below are the exact control points of each ramp.
// Lookups interpolate linearly in sRGB between adjacent stops, so output is
// bit-reproducible from these values alone. Stops are sorted by offset.
//
// Hot is piecewise by channel: red ramps over [0, 0.365079], green over
// [0.365079, 0.746032], blue over [0.746032, 1].
var (
	hotStops = []ColorStop{
		{0.000000, RGB(0, 0, 0)},
		{0.365079, RGB(1, 0, 0)},
		{0.746032, RGB(1, 1, 0)},
		{1.000000, RGB(1, 1, 1)},
	}

	plasmaStops = []ColorStop{
		{0.000, RGB(0.050383, 0.029803, 0.527975)},
		{0.125, RGB(0.294979, 0.009724, 0.631531)},
		{0.250, RGB(0.494877, 0.011990, 0.657865)},
		{0.375, RGB(0.665129, 0.138566, 0.585582)},
		{0.500, RGB(0.798216, 0.280197, 0.469538)},
		{0.625, RGB(0.902323, 0.425810, 0.359688)},
		{0.750, RGB(0.973416, 0.585761, 0.254980)},
		{0.875, RGB(0.995737, 0.765714, 0.155417)},
		{1.000, RGB(0.940015, 0.975158, 0.131326)},
	}

	infernoStops = []ColorStop{
		{0.000, RGB(0.001462, 0.000466, 0.013866)},
		{0.125, RGB(0.122908, 0.047536, 0.281624)},
		{0.250, RGB(0.341500, 0.062325, 0.429425)},
		{0.375, RGB(0.527111, 0.134129, 0.416416)},
		{0.500, RGB(0.735683, 0.215906, 0.330245)},
		{0.625, RGB(0.889731, 0.338631, 0.226989)},
		{0.750, RGB(0.967671, 0.537542, 0.121207)},
		{0.875, RGB(0.979666, 0.743565, 0.356981)},
		{1.000, RGB(0.988362, 0.998364, 0.644924)},
	}

	viridisStops = []ColorStop{
		{0.000, RGB(0.267004, 0.004874, 0.329415)},
		{0.125, RGB(0.282623, 0.140926, 0.457517)},
		{0.250, RGB(0.253935, 0.265254, 0.529983)},
		{0.375, RGB(0.206756, 0.371758, 0.553117)},
		{0.500, RGB(0.163625, 0.471133, 0.558148)},
		{0.625, RGB(0.127568, 0.566949, 0.550556)},
		{0.750, RGB(0.134692, 0.658636, 0.517649)},
		{0.875, RGB(0.266941, 0.748751, 0.440573)},
		{1.000, RGB(0.993248, 0.906157, 0.143936)},
	}
)

// Stops returns the control points of the colormap. The returned slice is
// shared; callers must not modify it.
func (m Colormap) Stops() []ColorStop {
	switch m {
	case Plasma:
		return plasmaStops
	case Inferno:
		return infernoStops
	case Viridis:
		return viridisStops
	default:
		return hotStops
	}
}

// At returns the ramp color for a normalized value t. Values outside [0, 1]
// are clamped to the edge colors.
func (m Colormap) At(t float64) RGBA {
	stops := m.Stops()
	t = clamp01(t)

	// Find the first stop at or past t. The tables are pre-sorted.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})

	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1 := stops[idx-1]
	s2 := stops[idx]

	// Coincident stops would divide by zero.
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, localT)
}
