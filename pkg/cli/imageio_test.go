package cli

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/editor"
)

func TestLoadImageAppliesOrientation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotated.jpg")
	data := buildJPEGWithEXIF(t, makeIndexedNRGBA(32, 16), binary.BigEndian, []ifdEntry{
		{tag: tagOrientation, typ: 3, count: 1, value: shortValue(binary.BigEndian, 6)},
	})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	img, format, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("format: %q", format)
	}
	b := img.Bounds()
	if b.Dx() != 16 || b.Dy() != 32 {
		t.Fatalf("orientation 6 should swap extents, got %v", b)
	}
	// rotated clockwise: the red left half ends up on top
	r, _, bl, _ := img.At(8, 4).RGBA()
	if r>>8 < 200 || bl>>8 > 60 {
		t.Fatalf("expected red at top after rotation, got r=%d b=%d", r>>8, bl>>8)
	}
}

func TestSaveAndReadInfo(t *testing.T) {
	dir := t.TempDir()
	src := makeIndexedNRGBA(10, 6)
	for _, name := range []string{"out.png", "out.jpg", "out.gif"} {
		path := filepath.Join(dir, name)
		writeTestImage(t, path, src, 90)
		info, err := ReadImageInfo(path)
		if err != nil {
			t.Fatalf("ReadImageInfo(%s): %v", name, err)
		}
		if info.Width != 10 || info.Height != 6 {
			t.Fatalf("%s: got %dx%d", name, info.Width, info.Height)
		}
		if info.Format != FormatFromPath(path) {
			t.Fatalf("%s: format %q", name, info.Format)
		}
	}
}

func TestImageInfoString(t *testing.T) {
	info := ImageInfo{Format: "jpeg", Width: 4, Height: 3, EXIF: &Metadata{Make: "Canon", Model: "R5", Orientation: 6}}
	want := "Format: JPEG, Width: 4, Height: 3, Orientation: 6, Camera: Canon R5"
	if got := info.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "junk.png")
	os.WriteFile(path, []byte("junk"), 0o644)
	if _, _, err := LoadImage(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSaveSessionErrors(t *testing.T) {
	empty := editor.NewSession(editor.Options{})
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SaveSession(path, empty, 90); !errors.Is(err, editor.ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
	if err := SaveSession(filepath.Join(t.TempDir(), "missing", "out.png"), empty, 90); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]string{
		"a.JPG": "jpeg", "b.jpeg": "jpeg", "c.gif": "gif", "d.png": "png", "e": "png", "f.webp": "png",
	} {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
