package hersenen

import "testing"

func TestColormapString(t *testing.T) {
	tests := []struct {
		m    Colormap
		want string
	}{
		{Hot, "hot"},
		{Plasma, "plasma"},
		{Inferno, "inferno"},
		{Viridis, "viridis"},
		{Colormap(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseColormap(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Colormap
		wantErr bool
	}{
		{"hot", "hot", Hot, false},
		{"plasma", "plasma", Plasma, false},
		{"inferno", "inferno", Inferno, false},
		{"viridis", "viridis", Viridis, false},
		{"mixed case", "Viridis", Viridis, false},
		{"unknown", "jet", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColormap(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColormap(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColormap(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColormapEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		m     Colormap
		t     float64
		want  RGBA
		delta float64
	}{
		{"hot start is black", Hot, 0, Black, 0},
		{"hot end is white", Hot, 1, White, 0},
		{"hot red anchor", Hot, 0.365079, RGB(1, 0, 0), 1e-9},
		{"hot yellow anchor", Hot, 0.746032, RGB(1, 1, 0), 1e-9},
		{"viridis start", Viridis, 0, RGB(0.267004, 0.004874, 0.329415), 0},
		{"viridis end", Viridis, 1, RGB(0.993248, 0.906157, 0.143936), 0},
		{"plasma start", Plasma, 0, RGB(0.050383, 0.029803, 0.527975), 0},
		{"inferno start", Inferno, 0, RGB(0.001462, 0.000466, 0.013866), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.At(tt.t)
			if absDiff(got.R, tt.want.R) > tt.delta ||
				absDiff(got.G, tt.want.G) > tt.delta ||
				absDiff(got.B, tt.want.B) > tt.delta {
				t.Errorf("At(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColormapClampsOutOfRange(t *testing.T) {
	for _, m := range []Colormap{Hot, Plasma, Inferno, Viridis} {
		if got := m.At(-0.5); got != m.At(0) {
			t.Errorf("%v.At(-0.5) = %+v, want edge color %+v", m, got, m.At(0))
		}
		if got := m.At(1.5); got != m.At(1) {
			t.Errorf("%v.At(1.5) = %+v, want edge color %+v", m, got, m.At(1))
		}
	}
}

func TestColormapValuesInRange(t *testing.T) {
	const steps = 257
	for _, m := range []Colormap{Hot, Plasma, Inferno, Viridis} {
		for i := 0; i < steps; i++ {
			v := float64(i) / (steps - 1)
			c := m.At(v)
			if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
				t.Fatalf("%v.At(%v) = %+v outside [0, 1]", m, v, c)
			}
			if c.A != 1 {
				t.Fatalf("%v.At(%v) alpha = %v, want 1", m, v, c.A)
			}
		}
	}
}

func TestHotRampMonotonic(t *testing.T) {
	// Hot is a brightness ramp: each channel must be non-decreasing in t.
	const steps = 101
	prev := Hot.At(0)
	for i := 1; i < steps; i++ {
		c := Hot.At(float64(i) / (steps - 1))
		if c.R < prev.R-1e-12 || c.G < prev.G-1e-12 || c.B < prev.B-1e-12 {
			t.Fatalf("hot ramp decreases at t=%v: %+v -> %+v", float64(i)/(steps-1), prev, c)
		}
		prev = c
	}
}

func TestColormapMidpointInterpolation(t *testing.T) {
	// Halfway between two stops the color is the plain sRGB average.
	s := hotStops
	mid := (s[0].Offset + s[1].Offset) / 2
	got := Hot.At(mid)
	want := s[0].Color.Lerp(s[1].Color, 0.5)
	if absDiff(got.R, want.R) > 1e-12 || absDiff(got.G, want.G) > 1e-12 || absDiff(got.B, want.B) > 1e-12 {
		t.Errorf("At(%v) = %+v, want %+v", mid, got, want)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
