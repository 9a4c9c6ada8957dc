// Package hersenen turns time-indexed 2D scalar fields into fMRI-style
// color animations.
//
// # Overview
//
// hersenen composites a stack of activity maps (one per time step) into a
// sequence of RGBA frames: each slice is normalized, run through a colormap,
// masked by an activity threshold, and optionally blended over a static
// grayscale background image. The frame sequence can be encoded as an
// animated GIF (always available) or MP4 (when ffmpeg is installed), or
// played back directly in the terminal.
//
// # Quick Start
//
//	import hersenen "github.com/AliceLynxx/BewegendeHersenen"
//
//	vol, err := hersenen.NewVolume(data) // (height, width, time) scalars
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	an := hersenen.New(
//		hersenen.WithColormap(hersenen.Hot),
//		hersenen.WithOverlayAlpha(0.7),
//		hersenen.WithThreshold(hersenen.AutoThreshold()),
//	)
//	if err := an.LoadData(vol); err != nil {
//		log.Fatal(err)
//	}
//
//	frame, err := an.Frame(0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = frame.SavePNG("frame0.png")
//
// # Frame Convention
//
// Frames are uint8 RGBA rasters, channel values in [0, 255], row-major,
// straight (non-premultiplied) alpha. Every frame has exactly the loaded
// volume's height and width, regardless of the background's resolution.
//
// # Thresholding
//
// The activity threshold selects which pixels are visible. Pixels whose
// normalized value falls below the threshold are fully transparent; pixels
// at or above it get the configured overlay alpha. Thresholds, whether a
// literal value or the automatic 75th-percentile mode, are always
// interpreted in the normalized [0, 1] domain of the slice being rendered.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Animator, Volume, Frame, Colormap, Option
//   - internal/imageio: background image decoding (PNG, JPEG, BMP, TIFF)
//   - internal/encode: GIF and MP4 encoders
//   - internal/player: terminal playback
//   - internal/synth: procedural demo data
package hersenen

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
