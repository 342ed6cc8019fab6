package text

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	source := loadTestFont(t)

	if err := reg.Register("HelveticaNeue-Regular", source); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, ok := reg.Lookup("HelveticaNeue-Regular")
	if !ok || got != source {
		t.Fatalf("Lookup = %p, %v; want %p, true", got, ok, source)
	}
	if _, ok := reg.Lookup("HelveticaNeue-Bold"); ok {
		t.Error("Lookup of unregistered name succeeded")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryRegisterErrors(t *testing.T) {
	reg := NewRegistry()
	source := loadTestFont(t)
	if err := reg.Register("Taken", source); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name       string
		fontName   string
		source     *FontSource
		diagnostic string
	}{
		{"empty name", "", source, "empty font name"},
		{"nil source", "Nil", nil, "nil font source"},
		{"duplicate", "Taken", source, "font already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(tt.fontName, tt.source)
			var regErr *RegistrationError
			if !errors.As(err, &regErr) {
				t.Fatalf("Register error = %v, want *RegistrationError", err)
			}
			if regErr.Diagnostic != tt.diagnostic {
				t.Errorf("Diagnostic = %q, want %q", regErr.Diagnostic, tt.diagnostic)
			}
			if regErr.Name != tt.fontName {
				t.Errorf("Name = %q, want %q", regErr.Name, tt.fontName)
			}
		})
	}

	if err := reg.Register("Nil", nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("Register(nil) error = %v, want ErrNilSource", err)
	}
}

func TestRegistryRegisterData(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterData("GoBold", gobold.TTF); err != nil {
		t.Fatalf("RegisterData failed: %v", err)
	}

	err := reg.RegisterData("Broken", []byte("not a font"))
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("RegisterData error = %v, want *RegistrationError", err)
	}
	if regErr.Diagnostic != "invalid font data" {
		t.Errorf("Diagnostic = %q, want %q", regErr.Diagnostic, "invalid font data")
	}
	if _, ok := reg.Lookup("Broken"); ok {
		t.Error("broken font should not be registered")
	}
}

func TestRegistryRegisterFS(t *testing.T) {
	fsys := fstest.MapFS{
		"System/HelveticaNeue-Regular.ttf": {Data: goregular.TTF},
		"System/HelveticaNeue-Bold.ttf":    {Data: gobold.TTF},
		"System/Menlo.otf":                 {Data: gomono.TTF},
		"System/Broken.ttf":                {Data: []byte("junk")},
		"System/README":                    {Data: []byte("not matched")},
	}

	reg := NewRegistry()
	err := reg.RegisterFS(fsys, "System/*.ttf")
	if err == nil {
		t.Fatal("expected error for Broken.ttf")
	}

	want := []string{"HelveticaNeue-Bold", "HelveticaNeue-Regular"}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	if err := reg.RegisterFS(fsys, "System/*.otf"); err != nil {
		t.Fatalf("RegisterFS(otf) failed: %v", err)
	}
	if _, ok := reg.Lookup("Menlo"); !ok {
		t.Error("Menlo not registered")
	}

	if err := reg.RegisterFS(fsys, "System/[.ttf"); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestRegistryNewFace(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterData("Circe-Bold", gobold.TTF); err != nil {
		t.Fatalf("RegisterData failed: %v", err)
	}

	face, err := reg.NewFace("Circe-Bold", 14)
	if err != nil {
		t.Fatalf("NewFace failed for registered font: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()

	if face.Name() != "Circe-Bold" {
		t.Errorf("Name() = %q, want %q", face.Name(), "Circe-Bold")
	}
	if face.Size() != 14 {
		t.Errorf("Size() = %v, want 14", face.Size())
	}

	_, err = reg.NewFace("Circe-Light", 14)
	if !errors.Is(err, ErrFontNotRegistered) {
		t.Errorf("NewFace error = %v, want ErrFontNotRegistered", err)
	}
	if err != nil && !strings.Contains(err.Error(), "Circe-Light") {
		t.Errorf("NewFace error %q does not name the font", err)
	}
}

func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry()
	source := loadTestFont(t)

	const n = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Half the goroutines race on the same name.
			name := "Shared"
			if i%2 == 0 {
				name = fmt.Sprintf("Font-%d", i)
			}
			if err := reg.Register(name, source); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
			if _, err := reg.NewFace(name, 12); err != nil {
				t.Errorf("NewFace(%q) failed: %v", name, err)
			}
		}(i)
	}
	wg.Wait()

	if failures != n/2-1 {
		t.Errorf("duplicate registrations rejected = %d, want %d", failures, n/2-1)
	}
	if reg.Len() != n/2+1 {
		t.Errorf("Len() = %d, want %d", reg.Len(), n/2+1)
	}
}

func TestRegistryOptions(t *testing.T) {
	reg := NewRegistry(WithDPI(144), WithHinting(HintingNone))
	if reg.config.dpi != 144 {
		t.Errorf("dpi = %v, want 144", reg.config.dpi)
	}
	if reg.config.hinting != HintingNone {
		t.Errorf("hinting = %v, want None", reg.config.hinting)
	}

	reg = NewRegistry(WithDPI(-1))
	if reg.config.dpi != 72 {
		t.Errorf("negative DPI should be ignored, got %v", reg.config.dpi)
	}
}
