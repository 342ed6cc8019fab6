package text

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"
)

// Registry is a font manager: it makes parsed fonts addressable by name
// and creates sized faces from them.
//
// A name can be registered once. Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	fonts  map[string]*FontSource
	config registryConfig
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	config := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Registry{
		fonts:  make(map[string]*FontSource),
		config: config,
	}
}

// Register makes src available under name.
// It returns a *RegistrationError if name is empty, src is nil or the
// name is already taken.
func (r *Registry) Register(name string, src *FontSource) error {
	if name == "" {
		return &RegistrationError{Name: name, Diagnostic: "empty font name"}
	}
	if src == nil {
		return &RegistrationError{Name: name, Diagnostic: "nil font source", Err: ErrNilSource}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fonts[name]; ok {
		return &RegistrationError{Name: name, Diagnostic: "font already registered"}
	}
	r.fonts[name] = src
	return nil
}

// RegisterData parses data and registers the result under name.
func (r *Registry) RegisterData(name string, data []byte, opts ...SourceOption) error {
	src, err := NewFontSource(data, opts...)
	if err != nil {
		return &RegistrationError{Name: name, Diagnostic: "invalid font data", Err: err}
	}
	return r.Register(name, src)
}

// RegisterFS registers every file of fsys matching pattern (see fs.Glob).
// Each font is named after its file base name without extension, so
// "Fonts/HelveticaNeue-Bold.ttf" becomes "HelveticaNeue-Bold".
// Failures do not stop the walk; they are joined in the returned error.
func (r *Registry) RegisterFS(fsys fs.FS, pattern string, opts ...SourceOption) error {
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("text: invalid pattern %q: %w", pattern, err)
	}

	var errs []error
	for _, match := range matches {
		data, err := fs.ReadFile(fsys, match)
		if err != nil {
			errs = append(errs, fmt.Errorf("text: failed to read font file: %w", err))
			continue
		}
		base := path.Base(match)
		name := strings.TrimSuffix(base, path.Ext(base))
		if err := r.RegisterData(name, data, opts...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the font registered under name.
func (r *Registry) Lookup(name string) (*FontSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.fonts[name]
	return src, ok
}

// Names returns the registered font names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.fonts))
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}

// NewFace creates a face for the font registered under name.
// It returns ErrFontNotRegistered if name is unknown, or the parser's
// error if the face cannot be built. The size is passed to the parser
// unchanged.
func (r *Registry) NewFace(name string, size float64) (*Face, error) {
	src, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotRegistered, name)
	}

	ff, err := src.Parsed().NewFace(size, r.config.dpi, r.config.hinting)
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face for %q at %vpt: %w", name, size, err)
	}

	return &Face{
		Face:   ff,
		name:   name,
		size:   size,
		source: src,
	}, nil
}
