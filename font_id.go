package fontkit

import "strconv"

// FontID identifies a font family and weight known to fontkit.
// The set of identifiers is closed; every value has a bundled or
// pre-registered font behind it.
type FontID uint8

// Known fonts.
const (
	HelveticaNeueThin FontID = iota
	HelveticaNeueLight
	HelveticaNeueMedium
	HelveticaNeueRegular
	HelveticaNeueBold
	CirceExtraLight
	CirceLight
	CirceRegular
	CirceBold
	ArabicHelveticaNeueLight
	ArabicHelveticaNeueRegular
	ArabicHelveticaNeueBold

	fontIDCount
)

// DefaultArabicFont substitutes fonts that have no Arabic counterpart.
const DefaultArabicFont = ArabicHelveticaNeueRegular

// Asset is the on-disk font file behind a FontID.
type Asset struct {
	// Name is the file base name. Fonts are registered under this name.
	Name string
	// Ext is the file extension without the leading dot.
	Ext string
}

// Path returns the file name of the asset inside a bundle.
func (a Asset) Path() string {
	return a.Name + "." + a.Ext
}

type fontInfo struct {
	asset  Asset
	arabic FontID
	// hasArabic is false for fonts that fall back to DefaultArabicFont.
	hasArabic bool
}

var fontTable = [fontIDCount]fontInfo{
	HelveticaNeueThin:          {Asset{"HelveticaNeue-Thin", "ttf"}, ArabicHelveticaNeueLight, true},
	HelveticaNeueLight:         {Asset{"HelveticaNeue-Light", "ttf"}, ArabicHelveticaNeueLight, true},
	HelveticaNeueMedium:        {Asset{"HelveticaNeue-Medium", "ttf"}, ArabicHelveticaNeueRegular, true},
	HelveticaNeueRegular:       {Asset{"HelveticaNeue-Regular", "ttf"}, ArabicHelveticaNeueRegular, true},
	HelveticaNeueBold:          {Asset{"HelveticaNeue-Bold", "ttf"}, ArabicHelveticaNeueBold, true},
	CirceExtraLight:            {Asset{"Circe-ExtraLight", "otf"}, ArabicHelveticaNeueLight, true},
	CirceLight:                 {Asset{"Circe-Light", "otf"}, ArabicHelveticaNeueLight, true},
	CirceRegular:               {Asset{"Circe-Regular", "otf"}, ArabicHelveticaNeueRegular, true},
	CirceBold:                  {Asset{"Circe-Bold", "otf"}, ArabicHelveticaNeueBold, true},
	ArabicHelveticaNeueLight:   {asset: Asset{"HelveticaNeueLTArabic-Light", "ttf"}},
	ArabicHelveticaNeueRegular: {asset: Asset{"HelveticaNeueLTArabic-Roman", "ttf"}},
	ArabicHelveticaNeueBold:    {asset: Asset{"HelveticaNeueLTArabic-Bold", "ttf"}},
}

// systemFonts are provided by the host and never loaded from the bundle.
var systemFonts = []FontID{
	HelveticaNeueThin,
	HelveticaNeueLight,
	HelveticaNeueMedium,
	HelveticaNeueRegular,
	HelveticaNeueBold,
}

// FontIDs returns every known FontID.
func FontIDs() []FontID {
	ids := make([]FontID, fontIDCount)
	for i := range ids {
		ids[i] = FontID(i)
	}
	return ids
}

// Valid reports whether id is a known FontID.
func (id FontID) Valid() bool {
	return id < fontIDCount
}

// Asset returns the font file behind id.
func (id FontID) Asset() Asset {
	if !id.Valid() {
		return Asset{}
	}
	return fontTable[id].asset
}

// Arabic returns the Arabic counterpart of id, or DefaultArabicFont if
// id has none.
func (id FontID) Arabic() FontID {
	if id.Valid() && fontTable[id].hasArabic {
		return fontTable[id].arabic
	}
	return DefaultArabicFont
}

// String returns the font name, which is also its asset name.
func (id FontID) String() string {
	if !id.Valid() {
		return "FontID(" + strconv.Itoa(int(id)) + ")"
	}
	return fontTable[id].asset.Name
}

// ParseFontID returns the FontID whose name is name.
func ParseFontID(name string) (FontID, bool) {
	for i := range fontTable {
		if fontTable[i].asset.Name == name {
			return FontID(i), true
		}
	}
	return 0, false
}
