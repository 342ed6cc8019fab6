// Command fontdemo resolves a font with fontkit and renders a sample line.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/text"
)

func main() {
	var (
		fonts   = flag.String("fonts", ".", "directory containing the Fonts bundle")
		system  = flag.String("system", "", "directory of host fonts (HelveticaNeue-*.ttf)")
		name    = flag.String("font", "Circe-Regular", "font name")
		size    = flag.Float64("size", 32, "font size in points")
		lang    = flag.String("lang", "en", "language tag")
		sample  = flag.String("text", "The quick brown fox", "text to render")
		output  = flag.String("output", "fontdemo.png", "output file")
		verify  = flag.Bool("verify", false, "verify the bundle and exit")
		preview = flag.Bool("preview", false, "disable locale substitution")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		fontkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	id, ok := fontkit.ParseFontID(*name)
	if !ok {
		log.Fatalf("Unknown font %q", *name)
	}

	reg := hostFonts(*system)
	resolver := fontkit.New(os.DirFS(*fonts), fontkit.WithManager(reg), fontkit.WithPreview(*preview))

	if *verify {
		if err := resolver.Verify(); err != nil {
			log.Fatalf("Bundle verification failed:\n%v", err)
		}
		log.Printf("Bundle in %s is complete", *fonts)
		return
	}

	face := resolver.MustResolve(id, *size, *lang)
	defer func() {
		_ = face.Close()
	}()

	img := render(face, *sample)
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered %s (%s, weight %v) at %vpt to %s", face.Name(), face.Family(), face.Weight(), face.Size(), *output)
}

// hostFonts registers the fonts fontkit expects the host to provide.
// Without a system directory, Go fonts stand in for HelveticaNeue.
func hostFonts(dir string) *text.Registry {
	reg := text.NewRegistry()
	if dir != "" {
		if err := reg.RegisterFS(os.DirFS(dir), "HelveticaNeue-*.ttf"); err != nil {
			log.Printf("Some host fonts failed to load: %v", err)
		}
	}
	for _, id := range []fontkit.FontID{
		fontkit.HelveticaNeueThin,
		fontkit.HelveticaNeueLight,
		fontkit.HelveticaNeueMedium,
		fontkit.HelveticaNeueRegular,
		fontkit.HelveticaNeueBold,
	} {
		if _, ok := reg.Lookup(id.String()); ok {
			continue
		}
		data := goregular.TTF
		if id == fontkit.HelveticaNeueBold {
			data = gobold.TTF
		}
		if err := reg.RegisterData(id.String(), data); err != nil {
			log.Fatalf("Failed to register fallback for %s: %v", id, err)
		}
	}
	return reg
}

func render(face *text.Face, s string) *image.RGBA {
	const pad = 16

	m := face.LineMetrics()
	w := int(math.Ceil(face.Advance(s))) + 2*pad
	h := int(math.Ceil(m.LineHeight())) + 2*pad

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(pad, pad+int(math.Ceil(m.Ascent))),
	}
	d.DrawString(s)
	return img
}

func savePNG(path string, img image.Image) error {
	// #nosec G304 -- output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
