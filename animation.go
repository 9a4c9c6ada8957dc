package hersenen

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/AliceLynxx/BewegendeHersenen/internal/encode"
)

// AnimationOptions controls CreateAnimation. The zero value produces an
// untitled, unsaved animation.
type AnimationOptions struct {
	// Title, when non-empty, is burned into the top-left corner of every
	// frame together with a "frame i/n" counter.
	Title string

	// OutputPath, when non-empty, writes the animation after compositing.
	// ".gif" and ".mp4" select the container; any other extension gets
	// ".gif" appended.
	OutputPath string
}

// Animation is an ordered, fully composited frame sequence plus the
// playback metadata the encoders and player need. It never recomputes
// frames; the caller owns its storage.
type Animation struct {
	Frames     []*Frame
	IntervalMS int
	Title      string
}

// CreateAnimation composites every time step in order and returns the
// sequence. With OutputPath set it also encodes the result; a missing MP4
// codec is logged as a warning and reported as ErrCodecUnavailable with
// the animation still returned intact.
func (a *Animator) CreateAnimation(opts AnimationOptions) (*Animation, error) {
	frames, err := a.Frames()
	if err != nil {
		return nil, err
	}

	if opts.Title != "" {
		for i, f := range frames {
			label := fmt.Sprintf("%s - frame %d/%d", opts.Title, i+1, len(frames))
			f.DrawLabel(4, 14, label, White)
		}
	}

	anim := &Animation{
		Frames:     frames,
		IntervalMS: a.cfg.intervalMS,
		Title:      opts.Title,
	}

	if opts.OutputPath != "" {
		if err := anim.Save(opts.OutputPath); err != nil {
			return anim, err
		}
	}
	return anim, nil
}

// Save encodes the animation to path, selecting the container from the
// extension. Unknown extensions default to GIF, matching the encoder that
// is always available.
func (anim *Animation) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return anim.SaveGIF(path)
	case ".mp4":
		return anim.SaveMP4(path)
	default:
		Logger().Warn("unknown animation extension, writing GIF", "path", path)
		return anim.SaveGIF(path + ".gif")
	}
}

// SaveGIF writes the animation as an animated GIF.
func (anim *Animation) SaveGIF(path string) error {
	if err := encode.GIF(path, anim.images(), anim.IntervalMS); err != nil {
		return err
	}
	Logger().Info("animation saved", "path", path, "frames", len(anim.Frames))
	return nil
}

// SaveMP4 writes the animation as an MP4 via the external ffmpeg binary.
// Without ffmpeg on PATH it returns ErrCodecUnavailable; the caller can
// treat that as a warning and fall back to SaveGIF.
func (anim *Animation) SaveMP4(path string) error {
	err := encode.MP4(path, anim.images(), anim.IntervalMS)
	if errors.Is(err, encode.ErrFFmpegNotFound) {
		Logger().Warn("ffmpeg not found, MP4 output unavailable")
		return ErrCodecUnavailable
	}
	if err != nil {
		return err
	}
	Logger().Info("animation saved", "path", path, "frames", len(anim.Frames))
	return nil
}

func (anim *Animation) images() []image.Image {
	imgs := make([]image.Image, len(anim.Frames))
	for i, f := range anim.Frames {
		imgs[i] = f.ToImage()
	}
	return imgs
}

// QuickAnimation composites a volume with default settings and optionally
// saves it, for one-line use.
func QuickAnimation(v *Volume, outputPath string, opts ...Option) (*Animation, error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := a.LoadData(v); err != nil {
		return nil, err
	}
	return a.CreateAnimation(AnimationOptions{OutputPath: outputPath})
}

// AnimationWithBackground composites a volume over a background image file
// and optionally saves it.
func AnimationWithBackground(v *Volume, backgroundPath, outputPath string, opts ...Option) (*Animation, error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := a.LoadBackgroundFile(backgroundPath); err != nil {
		return nil, err
	}
	if err := a.LoadData(v); err != nil {
		return nil, err
	}
	return a.CreateAnimation(AnimationOptions{OutputPath: outputPath})
}
