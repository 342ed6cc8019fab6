package fontkit

import (
	"errors"
	"fmt"
	"io/fs"
)

// DefaultBundleName is the directory holding font files inside the
// resource filesystem given to New.
const DefaultBundleName = "Fonts"

// Bundle is a read-only directory of font files.
// Bundle is safe for concurrent use if the underlying fs.FS is.
type Bundle struct {
	name string
	fsys fs.FS
}

// OpenBundle opens the child directory name of root.
// It returns an error wrapping ErrMissingBundle if name is not a directory.
func OpenBundle(root fs.FS, name string) (*Bundle, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: %s: no resource filesystem", ErrMissingBundle, name)
	}
	info, err := fs.Stat(root, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingBundle, name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrMissingBundle, name)
	}
	sub, err := fs.Sub(root, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingBundle, name, err)
	}
	return &Bundle{name: name, fsys: sub}, nil
}

// Name returns the bundle directory name.
func (b *Bundle) Name() string {
	return b.name
}

// has reports whether the bundle contains a regular file for a.
func (b *Bundle) has(a Asset) bool {
	info, err := fs.Stat(b.fsys, a.Path())
	return err == nil && info.Mode().IsRegular()
}

// ReadAsset returns the contents of the font file for a.
// A missing file yields ErrMissingResource; any other failure, including
// the path being a directory, yields ErrUnreadableResource.
func (b *Bundle) ReadAsset(a Asset) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, a.Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %w", ErrMissingResource, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrUnreadableResource, err)
	}
	return data, nil
}
