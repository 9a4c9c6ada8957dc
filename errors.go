package hersenen

import (
	"errors"
	"fmt"
)

// ErrCodecUnavailable is returned when MP4 output is requested but no
// external ffmpeg binary can be found. Callers may treat it as a warning
// and fall back to GIF output; the frame sequence itself is unaffected.
var ErrCodecUnavailable = errors.New("hersenen: ffmpeg not found, MP4 encoding unavailable")

// ShapeError reports input of the wrong array rank.
type ShapeError struct {
	Op   string
	Got  int // rank received
	Want int // rank required
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("hersenen: %s: got %dD input, want %dD", e.Op, e.Got, e.Want)
}

// ValueError reports degenerate or out-of-domain numeric input, such as an
// empty axis, a non-finite sample or an alpha outside [0, 1].
type ValueError struct {
	Op  string
	Msg string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("hersenen: %s: %s", e.Op, e.Msg)
}

// StateError reports an operation invoked before its precondition was met,
// such as requesting a frame before any volume is loaded.
type StateError struct {
	Op  string
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("hersenen: %s: %s", e.Op, e.Msg)
}

// IndexError reports a frame index outside the volume's time extent.
type IndexError struct {
	Op     string
	Index  int
	Extent int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("hersenen: %s: frame index %d out of range [0, %d)", e.Op, e.Index, e.Extent)
}

// ResourceError reports an unreadable or unsupported external resource,
// typically a background image file. The underlying loader error is
// preserved and can be inspected with errors.Unwrap.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("hersenen: %s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
