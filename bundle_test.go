package fontkit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/gobold"
)

func TestOpenBundle(t *testing.T) {
	b, err := OpenBundle(testResources(), DefaultBundleName)
	if err != nil {
		t.Fatalf("OpenBundle failed: %v", err)
	}
	if b.Name() != DefaultBundleName {
		t.Errorf("Name() = %q, want %q", b.Name(), DefaultBundleName)
	}

	for _, id := range []FontID{CirceBold, ArabicHelveticaNeueRegular} {
		if !b.has(id.Asset()) {
			t.Errorf("bundle should contain %s", id.Asset().Path())
		}
		data, err := b.ReadAsset(id.Asset())
		if err != nil {
			t.Fatalf("ReadAsset(%s) failed: %v", id, err)
		}
		if len(data) == 0 {
			t.Errorf("ReadAsset(%s) returned no data", id)
		}
	}
	if b.has(HelveticaNeueBold.Asset()) {
		t.Error("bundle should not contain system fonts")
	}
}

func TestOpenBundleErrors(t *testing.T) {
	tests := []struct {
		name string
		root fstest.MapFS
	}{
		{"nil root", nil},
		{"absent", fstest.MapFS{"Other/Circe-Bold.otf": {Data: gobold.TTF}}},
		{"file", fstest.MapFS{"Fonts": {Data: []byte("x")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.root == nil {
				_, err = OpenBundle(nil, DefaultBundleName)
			} else {
				_, err = OpenBundle(tt.root, DefaultBundleName)
			}
			if !errors.Is(err, ErrMissingBundle) {
				t.Errorf("OpenBundle error = %v, want ErrMissingBundle", err)
			}
		})
	}
}

func TestBundleReadAssetErrors(t *testing.T) {
	root := fstest.MapFS{
		"Fonts/Circe-Light.otf/nested": {Data: gobold.TTF},
	}
	b, err := OpenBundle(root, DefaultBundleName)
	if err != nil {
		t.Fatalf("OpenBundle failed: %v", err)
	}

	if _, err := b.ReadAsset(CirceBold.Asset()); !errors.Is(err, ErrMissingResource) {
		t.Errorf("missing file error = %v, want ErrMissingResource", err)
	}
	if _, err := b.ReadAsset(CirceLight.Asset()); !errors.Is(err, ErrUnreadableResource) {
		t.Errorf("directory error = %v, want ErrUnreadableResource", err)
	}
	if b.has(CirceLight.Asset()) {
		t.Error("has should be false for a directory")
	}
}

func TestBundleFromDirFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "Fonts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Fonts", CirceBold.Asset().Path()), gobold.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	r := New(os.DirFS(dir), WithPreregistered())
	face, err := r.Resolve(CirceBold, 18, "en")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if face.Size() != 18 {
		t.Errorf("Size() = %v, want 18", face.Size())
	}
}
