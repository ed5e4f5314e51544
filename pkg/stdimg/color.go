package stdimg

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// a small set of CSS names; anything else must be given as hex
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"gray":    "#808080",
	"grey":    "#808080",
	"brown":   "#a52a2a",
	"navy":    "#000080",
	"teal":    "#008080",
	"gold":    "#ffd700",
	"silver":  "#c0c0c0",
}

// ParseHexColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa and a handful of CSS color names.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if hexs, ok := namedColors[strings.ToLower(s)]; ok {
		s = hexs
	}
	if s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("unsupported color format: %s", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		// expand shorthand: #abc -> #aabbcc
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("unsupported hex color length: %d", len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParseColorOr parses s like ParseHexColor and returns fallback when s is malformed.
func ParseColorOr(s string, fallback color.NRGBA) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
