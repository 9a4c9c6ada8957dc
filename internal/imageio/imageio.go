// Package imageio decodes background image files for the compositor.
// Supported formats: PNG, JPEG, BMP, TIFF.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
)

// DefaultBackgroundName is the filename probed by DetectBackground.
const DefaultBackgroundName = "background.png"

// supportedExts lists the file extensions LoadImage accepts directly.
// Anything else falls back to content sniffing.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// LoadImage loads an image from the given file path, decoding by content.
// Unknown extensions are still attempted; a file no registered decoder
// understands fails with ErrUnsupportedFormat.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		ext := strings.ToLower(filepath.Ext(path))
		if !supportedExts[ext] {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
		return nil, fmt.Errorf("imageio: decode %s: %w", ext, err)
	}
	return img, nil
}

// DetectBackground probes dir for the conventional background file and
// reports its path and presence. It only checks existence; decoding is
// left to LoadImage so a corrupt file still fails loudly.
func DetectBackground(dir string) (path string, ok bool) {
	p := filepath.Join(dir, DefaultBackgroundName)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}
