package fontkit

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/gogpu/fontkit/text"
)

// Manager makes font programs addressable by name and creates sized
// faces from them. *text.Registry is the default implementation.
type Manager interface {
	// Register makes src available under name.
	Register(name string, src *text.FontSource) error

	// NewFace creates a face for the font registered under name.
	// The error explains why no face could be created.
	NewFace(name string, size float64) (*text.Face, error)
}

// Resolver turns a FontID, a size and a language tag into a font face.
//
// Fonts outside the pre-registered set are loaded from the bundle and
// registered with the Manager the first time they are needed. Each font
// is registered at most once per Resolver, and registration completes
// before any face for it is created, regardless of how many goroutines
// resolve it concurrently.
//
// Resolver is safe for concurrent use. Create one per process and share it.
type Resolver struct {
	manager Manager
	bundle  func() (*Bundle, error)
	preview bool

	// mu serializes every check-and-register of the registered set, for
	// the same and for different fonts alike.
	mu         sync.Mutex
	registered map[FontID]struct{}
}

// New creates a Resolver loading font files from the bundle directory
// of resources (DefaultBundleName unless WithBundleName is given).
//
// The bundle is opened on first use, so New does not fail; a missing
// bundle is reported by the first Resolve that needs it, or by Verify.
func New(resources fs.FS, opts ...Option) *Resolver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.manager == nil {
		cfg.manager = text.NewRegistry()
	}

	r := &Resolver{
		manager:    cfg.manager,
		preview:    cfg.preview,
		registered: make(map[FontID]struct{}, fontIDCount),
	}
	for _, id := range cfg.preregistered {
		r.registered[id] = struct{}{}
	}
	name := cfg.bundleName
	r.bundle = sync.OnceValues(func() (*Bundle, error) {
		return OpenBundle(resources, name)
	})
	return r
}

// Manager returns the font manager used by r.
func (r *Resolver) Manager() Manager {
	return r.manager
}

// Resolve returns a face for id at size, substituting the Arabic
// counterpart of id when lang is Arabic.
//
// The size is not validated. A new face is returned on every call; only
// font registration is cached. Errors wrap one of the Err* sentinels and
// are of type *FontError.
func (r *Resolver) Resolve(id FontID, size float64, lang string) (*text.Face, error) {
	return r.fontWith(r.Substitute(id, lang), size)
}

// MustResolve is like Resolve but panics if the font cannot be resolved.
// Fonts ship with the program, so a failure here is a packaging defect.
func (r *Resolver) MustResolve(id FontID, size float64, lang string) *text.Face {
	face, err := r.Resolve(id, size, lang)
	if err != nil {
		panic(err)
	}
	return face
}

// Substitute returns the font Resolve would use for id and lang.
// In preview mode it always returns id.
func (r *Resolver) Substitute(id FontID, lang string) FontID {
	if r.preview || !isArabic(lang) {
		return id
	}
	sub := id.Arabic()
	if sub != id {
		Logger().Debug("fontkit: localized font", "font", id, "lang", lang, "substitute", sub)
	}
	return sub
}

// Registered reports whether id is available to the manager, either
// because it was pre-registered or because r registered it.
func (r *Resolver) Registered(id FontID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.registered[id]
	return ok
}

// Preload registers ids ahead of their first use.
// It attempts every id and joins the failures.
func (r *Resolver) Preload(ids ...FontID) error {
	var errs []error
	for _, id := range ids {
		r.mu.Lock()
		err := r.ensureRegistered(id)
		r.mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Verify checks that the bundle holds a readable, parseable file for
// every font outside the pre-registered set. Nothing is registered.
// All failures are joined in the returned error.
func (r *Resolver) Verify() error {
	bundle, err := r.bundle()
	if err != nil {
		return err
	}

	var errs []error
	for _, id := range FontIDs() {
		if r.Registered(id) {
			continue
		}
		if _, err := loadFont(bundle, id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// fontWith registers id if needed and creates a face for it.
func (r *Resolver) fontWith(id FontID, size float64) (*text.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureRegistered(id); err != nil {
		return nil, err
	}

	asset := id.Asset()
	face, err := r.manager.NewFace(asset.Name, size)
	if err != nil {
		Logger().Warn("fontkit: cannot create face", "font", id, "size", size, "err", err)
		return nil, &FontError{ID: id, File: asset.Path(), Err: fmt.Errorf("%w: %w", ErrUnconstructibleFace, err)}
	}
	return face, nil
}

// ensureRegistered registers id unless it already is.
// r.mu must be held.
func (r *Resolver) ensureRegistered(id FontID) error {
	if !id.Valid() {
		return &FontError{ID: id, Err: fmt.Errorf("%w: unknown font", ErrMissingResource)}
	}
	if _, ok := r.registered[id]; ok {
		return nil
	}

	if err := r.register(id); err != nil {
		Logger().Warn("fontkit: font registration failed", "font", id, "err", err)
		return err
	}
	r.registered[id] = struct{}{}
	return nil
}

// register loads the font file for id from the bundle and hands it to
// the manager.
func (r *Resolver) register(id FontID) error {
	bundle, err := r.bundle()
	if err != nil {
		return &FontError{ID: id, File: id.Asset().Path(), Err: err}
	}

	src, err := loadFont(bundle, id)
	if err != nil {
		return err
	}

	asset := id.Asset()
	if err := r.manager.Register(asset.Name, src); err != nil {
		return &FontError{ID: id, File: asset.Path(), Err: fmt.Errorf("%w: %w", ErrRegistrationFailed, err)}
	}

	Logger().Debug("fontkit: registered font",
		"font", id,
		"file", asset.Path(),
		"bundle", bundle.Name(),
		"family", src.Name(),
		"bytes", src.Size(),
	)
	return nil
}

// loadFont reads and parses the font file for id.
func loadFont(bundle *Bundle, id FontID) (*text.FontSource, error) {
	asset := id.Asset()
	data, err := bundle.ReadAsset(asset)
	if err != nil {
		return nil, &FontError{ID: id, File: asset.Path(), Err: err}
	}

	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, &FontError{ID: id, File: asset.Path(), Err: fmt.Errorf("%w: %w", ErrMalformedFontData, err)}
	}
	return src, nil
}
