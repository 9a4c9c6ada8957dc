// Package synth generates procedural activity volumes and background
// planes for demos and tests. All generators are deterministic for a given
// seed.
package synth

import (
	"math"
	"math/rand"
)

// Center is one simulated activation site: a Gaussian spatial footprint
// whose intensity oscillates sinusoidally over time.
type Center struct {
	X, Y      int
	Intensity float64
	Frequency float64
}

// DefaultCenters returns the stock activation layout for a width x height
// field: five sites with mixed intensities and oscillation speeds.
func DefaultCenters(width, height int) []Center {
	return []Center{
		{X: width / 4, Y: height / 4, Intensity: 0.8, Frequency: 0.1},
		{X: 3 * width / 4, Y: height / 4, Intensity: 0.6, Frequency: 0.2},
		{X: width / 2, Y: 3 * height / 4, Intensity: 0.9, Frequency: 0.05},
		{X: width / 6, Y: 2 * height / 3, Intensity: 0.4, Frequency: 0.3},
		{X: 5 * width / 6, Y: height / 2, Intensity: 0.7, Frequency: 0.15},
	}
}

// ActivityVolume simulates an fMRI-like recording: each activation centre
// contributes a Gaussian spatial falloff modulated by a sine over time,
// plus optional Gaussian noise. The result is indexed [y][x][t] with
// values clamped to [0, 1].
func ActivityVolume(width, height, frames int, centers []Center, noise float64, seed int64) [][][]float64 {
	rng := rand.New(rand.NewSource(seed))
	sigma := float64(min(width, height)) / 10

	data := make([][][]float64, height)
	for y := range data {
		data[y] = make([][]float64, width)
		for x := range data[y] {
			data[y][x] = make([]float64, frames)
		}
	}

	for t := 0; t < frames; t++ {
		// 4π radians over the whole recording, like a slow task cycle.
		phase := 4 * math.Pi * float64(t) / float64(max(frames-1, 1))
		for _, c := range centers {
			temporal := c.Intensity * (0.5 + 0.5*math.Sin(phase*c.Frequency/0.1))
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					dx := float64(x - c.X)
					dy := float64(y - c.Y)
					spatial := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
					data[y][x][t] += temporal * spatial
				}
			}
		}
		if noise > 0 {
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					data[y][x][t] += noise * rng.NormFloat64() * 0.1
				}
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for t := 0; t < frames; t++ {
				data[y][x][t] = clamp01(data[y][x][t])
			}
		}
	}
	return data
}

// LinearRamp fills a volume whose every slice is the constant t/(frames-1),
// so activity rises linearly from 0 to 1 along the time axis. Useful for
// threshold calibration.
func LinearRamp(width, height, frames int) [][][]float64 {
	data := make([][][]float64, height)
	for y := range data {
		data[y] = make([][]float64, width)
		for x := range data[y] {
			data[y][x] = make([]float64, frames)
			for t := 0; t < frames; t++ {
				if frames > 1 {
					data[y][x][t] = float64(t) / float64(frames-1)
				}
			}
		}
	}
	return data
}

// BrainBackground draws a grayscale brain-like plane: a bright ellipse on a
// dark surround with a low-frequency sinusoidal texture inside. Values are
// in [0, 1], indexed [y][x].
func BrainBackground(width, height int) [][]float64 {
	cx := float64(width) / 2
	cy := float64(height) / 2
	a := float64(width) * 0.4
	b := float64(height) * 0.35

	plane := make([][]float64, height)
	for y := range plane {
		plane[y] = make([]float64, width)
		for x := range plane[y] {
			ex := (float64(x) - cx) / a
			ey := (float64(y) - cy) / b
			if ex*ex+ey*ey <= 1 {
				texture := 0.2 * math.Sin(0.3*float64(x)) * math.Sin(0.3*float64(y))
				plane[y][x] = clamp01(0.7 + texture)
			} else {
				plane[y][x] = 0.1
			}
		}
	}
	return plane
}

// LandscapeBackground draws the demo's sky-and-ground plane: a vertical
// sky gradient, Gaussian clouds, a horizon line and noisy ground texture.
func LandscapeBackground(width, height int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))

	plane := make([][]float64, height)
	for y := range plane {
		plane[y] = make([]float64, width)
		sky := 0.85 - 0.4*float64(y)/float64(max(height-1, 1))
		for x := range plane[y] {
			plane[y][x] = sky
		}
	}

	for i := 0; i < 4; i++ {
		cx := float64(width/6 + rng.Intn(max(2*width/3, 1)))
		cy := float64(height/8 + rng.Intn(max(height/4, 1)))
		sx := float64(width/10 + rng.Intn(max(width/10, 1)))
		sy := float64(height/15 + rng.Intn(max(height/15, 1)))
		for y := range plane {
			for x := range plane[y] {
				dx := float64(x) - cx
				dy := float64(y) - cy
				plane[y][x] += 0.12 * math.Exp(-(dx*dx/(2*sx*sx) + dy*dy/(2*sy*sy)))
			}
		}
	}

	horizon := int(float64(height) * 0.72)
	if horizon < height {
		for x := 0; x < width; x++ {
			plane[horizon][x] *= 0.88
		}
		for y := horizon; y < height; y++ {
			for x := 0; x < width; x++ {
				plane[y][x] += rng.NormFloat64() * 0.015
			}
		}
	}

	for y := range plane {
		for x := range plane[y] {
			plane[y][x] = clamp01(plane[y][x])
		}
	}
	return plane
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
