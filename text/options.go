package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// registryConfig holds configuration for Registry.
type registryConfig struct {
	dpi     float64
	hinting Hinting
}

// defaultRegistryConfig returns the default registry configuration.
// A DPI of 72 makes one point equal to one pixel.
func defaultRegistryConfig() registryConfig {
	return registryConfig{
		dpi:     72,
		hinting: HintingFull,
	}
}

// WithDPI sets the resolution used when faces are created.
// Non-positive values are ignored.
func WithDPI(dpi float64) RegistryOption {
	return func(c *registryConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the hinting mode for faces created by the registry.
func WithHinting(h Hinting) RegistryOption {
	return func(c *registryConfig) {
		c.hinting = h
	}
}
