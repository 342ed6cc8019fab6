package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// FontSource represents a loaded font program.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name           string
	postScriptName string
	desc           font.Description

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// The data is parsed twice: once by the configured FontParser, which
// backs face creation, and once by go-text/typesetting for the family
// and aspect description. Either failing makes the data malformed.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	described, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to describe font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:           dataCopy,
		parsed:         parsed,
		postScriptName: parsed.PostScriptName(),
		desc:           described.Describe(),
		config:         config,
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(parsed, s.desc)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// PostScriptName returns the PostScript name stored in the font, if any.
func (s *FontSource) PostScriptName() string {
	s.copyCheck()
	return s.postScriptName
}

// Description returns the family and aspect (style, weight, stretch)
// of the font as reported by go-text/typesetting.
func (s *FontSource) Description() font.Description {
	s.copyCheck()
	return s.desc
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Size returns the length of the font data in bytes.
func (s *FontSource) Size() int {
	s.copyCheck()
	return len(s.data)
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont, desc font.Description) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if desc.Family != "" {
		return desc.Family
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
