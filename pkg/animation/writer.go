package animation

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates a save path with an extension outside the
// allowed set.
var ErrUnsupportedFormat = errors.New("animation: unsupported output extension (allowed: .gif, .mp4)")

// CheckFormat validates a save path's extension without doing any work, so
// the CLI can reject a bad path before the expensive precompute.
func CheckFormat(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif", ".mp4":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save writes the animation to path, choosing the encoder from the file
// extension. Unsupported extensions fail before any encoding work.
func Save(path string, plan *Plan, frames []*image.RGBA, fps, repeatDelayCS int) error {
	delayCS := 100 / fps
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return WriteGIF(path, plan, frames, delayCS, repeatDelayCS)
	case ".mp4":
		return WriteMP4(path, plan, frames, fps)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
