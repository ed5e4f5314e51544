package stdimg

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#fff":      {255, 255, 255, 255},
		"#000000":   {0, 0, 0, 255},
		"#ff000080": {255, 0, 0, 128},
		"#1a2b3c":   {0x1a, 0x2b, 0x3c, 255},
		"#abcd":     {0xaa, 0xbb, 0xcc, 0xdd},
		"Red":       {255, 0, 0, 255},
		" #00ff00 ": {0, 255, 0, 255},
	}
	for in, want := range cases {
		got, err := ParseHexColor(in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseHexColorErrors(t *testing.T) {
	for _, in := range []string{"", "fff", "#ggg", "#12345", "rgb(1,2,3)"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", in)
		}
	}
}

func TestParseColorOrFallback(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	if got := ParseColorOr("#zzzzzz", white); got != white {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := ParseColorOr("#102030", white); got != (color.NRGBA{0x10, 0x20, 0x30, 255}) {
		t.Fatalf("unexpected parse: %v", got)
	}
}
