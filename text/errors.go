package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilSource is returned when a nil FontSource is registered.
	ErrNilSource = errors.New("text: nil font source")

	// ErrFontNotRegistered is returned when a face is requested for an
	// unknown font name.
	ErrFontNotRegistered = errors.New("text: font not registered")
)

// RegistrationError is returned when a Registry refuses to register a font.
// Diagnostic carries the reason reported by the registry.
type RegistrationError struct {
	Name       string
	Diagnostic string
	Err        error
}

func (e *RegistrationError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("text: cannot register font %q", e.Name)
	}
	return fmt.Sprintf("text: cannot register font %q: %s", e.Name, e.Diagnostic)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
