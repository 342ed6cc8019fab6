package fontkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution failures. Each one points at a broken
// build artifact rather than a transient condition, so none is retried.
var (
	// ErrMissingBundle is returned when the font bundle directory is absent.
	ErrMissingBundle = errors.New("fontkit: font bundle not found")

	// ErrMissingResource is returned when a font file is absent from the bundle.
	ErrMissingResource = errors.New("fontkit: font file not found in bundle")

	// ErrUnreadableResource is returned when a font file exists but cannot be read.
	ErrUnreadableResource = errors.New("fontkit: font file cannot be read")

	// ErrMalformedFontData is returned when font data cannot be parsed.
	ErrMalformedFontData = errors.New("fontkit: malformed font data")

	// ErrRegistrationFailed is returned when the font manager rejects a font.
	ErrRegistrationFailed = errors.New("fontkit: font registration failed")

	// ErrUnconstructibleFace is returned when no face can be created for a
	// font, whether or not it was registered by this resolver.
	ErrUnconstructibleFace = errors.New("fontkit: cannot create font face")
)

// FontError describes a failure to resolve a specific font.
// It unwraps to one of the sentinel errors above.
type FontError struct {
	ID   FontID
	File string
	Err  error
}

func (e *FontError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.ID, e.File, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
