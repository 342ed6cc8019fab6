// Package text holds the font machinery behind fontkit.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font program (parses TTF/OTF data)
//   - Registry: font manager that makes sources addressable by name
//   - Face: lightweight font instance at a specific size
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	reg := text.NewRegistry()
//	if err := reg.RegisterFS(os.DirFS("/usr/share/fonts"), "*.ttf"); err != nil {
//	    log.Print(err)
//	}
//
//	face, err := reg.NewFace("DejaVuSans", 14)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
