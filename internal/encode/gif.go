// Package encode writes composited frame sequences to animation
// containers: animated GIF (always available) and MP4 via an external
// ffmpeg binary.
package encode

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// GIF writes the frames as an animated GIF. delayMS is the per-frame delay
// in milliseconds; GIF timing has centisecond resolution, so the delay is
// rounded down (minimum one centisecond). Frames are palettized with the
// standard Plan 9 palette.
func GIF(path string, frames []image.Image, delayMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode: no frames to write")
	}

	delay := delayMS / 10
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0, // loop forever
	}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path) //nolint:gosec // output path is caller-chosen
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encode: write gif: %w", err)
	}
	return nil
}
