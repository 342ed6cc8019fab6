package text

import (
	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a font face at a specific size, created by a Registry from a
// registered font.
//
// Face embeds a golang.org/x/image/font.Face, so it can be handed to a
// font.Drawer directly. Like the embedded face it is not safe for
// concurrent use; create one face per goroutine.
type Face struct {
	font.Face

	name   string
	size   float64
	source *FontSource
}

// Name returns the name the font was registered under.
func (f *Face) Name() string {
	return f.name
}

// Size returns the requested size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Family returns the font family name.
func (f *Face) Family() string {
	return f.source.Name()
}

// Weight returns the weight of the font (400 regular, 700 bold).
func (f *Face) Weight() gotext.Weight {
	return f.source.Description().Aspect.Weight
}

// Description returns the family and aspect of the underlying font.
func (f *Face) Description() gotext.Description {
	return f.source.Description()
}

// LineMetrics returns the font metrics at this face's size.
func (f *Face) LineMetrics() Metrics {
	m := f.Face.Metrics()
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat64(m.Height) - ascent - descent,
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// Advance returns the total advance width of the text in pixels,
// including kerning.
func (f *Face) Advance(text string) float64 {
	return fixedToFloat64(font.MeasureString(f.Face, text))
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	_, ok := f.Face.GlyphAdvance(r)
	return ok
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
