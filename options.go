package fontkit

// Option configures a Resolver.
type Option func(*config)

// config holds Resolver configuration.
type config struct {
	bundleName    string
	manager       Manager
	preview       bool
	preregistered []FontID
}

// defaultConfig returns the default Resolver configuration.
func defaultConfig() config {
	return config{
		bundleName:    DefaultBundleName,
		preview:       previewBuild,
		preregistered: systemFonts,
	}
}

// WithBundleName sets the directory of the resource filesystem that
// holds the font files. The default is DefaultBundleName.
func WithBundleName(name string) Option {
	return func(c *config) {
		c.bundleName = name
	}
}

// WithManager sets the font manager fonts are registered with and faces
// are created by. The default is a fresh text.Registry.
func WithManager(m Manager) Option {
	return func(c *config) {
		c.manager = m
	}
}

// WithPreview enables or disables preview mode. In preview mode
// Resolve never substitutes fonts for the language. The default is set
// by the fontkit_preview build tag.
func WithPreview(enabled bool) Option {
	return func(c *config) {
		c.preview = enabled
	}
}

// WithPreregistered replaces the set of fonts the host has already made
// available to the manager. Those fonts are never loaded from the
// bundle. The default is the HelveticaNeue family.
func WithPreregistered(ids ...FontID) Option {
	return func(c *config) {
		c.preregistered = ids
	}
}
