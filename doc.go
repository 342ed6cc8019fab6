// Package fontkit resolves logical font identifiers into ready-to-use
// font faces.
//
// A Resolver maps a FontID, a point size and a language tag to a
// *text.Face. When the language is Arabic, the font is swapped for its
// Arabic counterpart (or DefaultArabicFont). Fonts that the host does
// not provide are read from a bundle directory of an fs.FS, typically an
// embed.FS, and registered with a font manager the first time they are
// used.
//
// # Example usage
//
//	//go:embed Fonts
//	var resources embed.FS
//
//	// The HelveticaNeue family is expected from the host.
//	reg := text.NewRegistry()
//	if err := reg.RegisterFS(os.DirFS("/opt/fonts"), "HelveticaNeue-*.ttf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fonts := fontkit.New(resources, fontkit.WithManager(reg))
//	face, err := fonts.Resolve(fontkit.CirceBold, 14, "ar")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
// # Preview builds
//
// Building with the fontkit_preview tag disables locale substitution so
// that design tools render the nominal font. WithPreview overrides the
// build tag per Resolver.
package fontkit
