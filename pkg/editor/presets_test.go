package editor

import (
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBuiltinPresets(t *testing.T) {
	r := NewPresetRegistry()
	names := r.Names()
	for _, want := range []string{"original", "vivid", "noir", "vintage", "warm", "cool", "fade", "dramatic", "film"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing builtin preset %q", want)
		}
	}
	orig, ok := r.Get("Original")
	if !ok || !orig.Adjustments.IsIdentity() {
		t.Fatal("original preset should be identity and lookup case-insensitive")
	}
	noir, _ := r.Get("noir")
	if noir.Adjustments.Grayscale != 100 {
		t.Fatalf("noir grayscale: got %v", noir.Adjustments.Grayscale)
	}
}

func TestLoadPresetsPartialOverride(t *testing.T) {
	r := NewPresetRegistry()
	n, err := r.Load(strings.NewReader(`
presets:
  moody:
    description: dark and cold
    adjustments:
      brightness: 85
      hueRotate: 20
      duotoneEnabled: true
      duotoneLight: "#aaccff"
  vivid:
    adjustments:
      saturation: 300
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != 2 {
		t.Fatalf("loaded %d presets, want 2", n)
	}
	moody, ok := r.Get("moody")
	if !ok {
		t.Fatal("moody not registered")
	}
	a := moody.Adjustments
	if a.Brightness != 85 || a.HueRotate != 20 || !a.DuotoneEnabled || a.DuotoneLight != "#aaccff" {
		t.Fatalf("unexpected adjustments %+v", a)
	}
	if a.Contrast != 100 || a.Saturation != 100 || a.DuotoneDark != "#000000" {
		t.Fatalf("unset fields should keep identity values: %+v", a)
	}
	if moody.Description != "dark and cold" {
		t.Fatalf("description: %q", moody.Description)
	}
	vivid, _ := r.Get("vivid")
	if vivid.Adjustments.Saturation != 300 || vivid.Adjustments.Contrast != 100 {
		t.Fatalf("user preset should replace builtin: %+v", vivid.Adjustments)
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	r := NewPresetRegistry()
	if _, err := r.Load(strings.NewReader("presets: [1, 2")); err == nil {
		t.Fatal("expected a decode error")
	}
	if _, err := r.Load(strings.NewReader("presets:\n  bad:\n    adjustments:\n      brightness: lots\n")); err == nil {
		t.Fatal("expected a type error")
	}
	if _, ok := r.Get("bad"); ok {
		t.Fatal("failed load must not register presets")
	}
	if n, err := r.Load(strings.NewReader("")); err != nil || n != 0 {
		t.Fatalf("empty input: n=%d err=%v", n, err)
	}
}

func TestDecodeAdjustmentsRejectsUnknownKeys(t *testing.T) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte("brightnes: 120\n"), &node); err != nil {
		t.Fatal(err)
	}
	// Unmarshal wraps the mapping in a document node
	if _, err := DecodeAdjustments(node.Content[0]); err == nil || !strings.Contains(err.Error(), "brightnes") {
		t.Fatalf("expected error naming the misspelled key, got %v", err)
	}

	if err := yaml.Unmarshal([]byte("brightness: 120\nduotoneEnabled: true\n"), &node); err != nil {
		t.Fatal(err)
	}
	base := DefaultAdjustments()
	base.Contrast = 140
	got, err := DecodeAdjustmentsOnto(base, node.Content[0])
	if err != nil {
		t.Fatalf("DecodeAdjustmentsOnto: %v", err)
	}
	if got.Brightness != 120 || !got.DuotoneEnabled || got.Contrast != 140 {
		t.Fatalf("unexpected merge: %+v", got)
	}

	r := NewPresetRegistry()
	if _, err := r.Load(strings.NewReader("presets:\n  typo:\n    adjustments:\n      sepai: 40\n")); err == nil {
		t.Fatal("expected preset load to reject unknown adjustment")
	}
	if _, err := r.Load(strings.NewReader("presets:\n  typo:\n    descripton: x\n")); err == nil {
		t.Fatal("expected preset load to reject unknown preset field")
	}
}
