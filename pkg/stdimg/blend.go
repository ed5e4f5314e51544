package stdimg

import (
	"image"
	"math"
	"strings"
)

// BlendMode selects the separable blend function used when compositing.
type BlendMode string

const (
	BlendNormal     BlendMode = "normal"
	BlendMultiply   BlendMode = "multiply"
	BlendScreen     BlendMode = "screen"
	BlendOverlay    BlendMode = "overlay"
	BlendDarken     BlendMode = "darken"
	BlendLighten    BlendMode = "lighten"
	BlendColorDodge BlendMode = "color-dodge"
	BlendColorBurn  BlendMode = "color-burn"
	BlendHardLight  BlendMode = "hard-light"
	BlendSoftLight  BlendMode = "soft-light"
)

// BlendModes lists every supported mode in a stable order.
var BlendModes = []BlendMode{
	BlendNormal, BlendMultiply, BlendScreen, BlendOverlay, BlendDarken,
	BlendLighten, BlendColorDodge, BlendColorBurn, BlendHardLight, BlendSoftLight,
}

// ParseBlendMode is case-insensitive and also accepts underscores or no separator
// ("colorDodge", "color_dodge"). ok is false for unknown names.
func ParseBlendMode(s string) (BlendMode, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", "-")
	if norm == "" || norm == "source-over" {
		return BlendNormal, true
	}
	for _, m := range BlendModes {
		if string(m) == norm || strings.ReplaceAll(string(m), "-", "") == norm {
			return m, true
		}
	}
	return BlendNormal, false
}

// blend functions take source s and backdrop d, both 0..1

func blendNormal(s, d float64) float64   { return s }
func blendMultiply(s, d float64) float64 { return s * d }
func blendScreen(s, d float64) float64   { return s + d - s*d }
func blendDarken(s, d float64) float64   { return math.Min(s, d) }
func blendLighten(s, d float64) float64  { return math.Max(s, d) }

func blendHardLight(s, d float64) float64 {
	if s <= 0.5 {
		return blendMultiply(2*s, d)
	}
	return blendScreen(2*s-1, d)
}

func blendOverlay(s, d float64) float64 { return blendHardLight(d, s) }

func blendColorDodge(s, d float64) float64 {
	if d == 0 {
		return 0
	}
	if s >= 1 {
		return 1
	}
	return math.Min(1, d/(1-s))
}

func blendColorBurn(s, d float64) float64 {
	if d >= 1 {
		return 1
	}
	if s <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

func blendSoftLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dd float64
	if d <= 0.25 {
		dd = ((16*d-12)*d + 4) * d
	} else {
		dd = math.Sqrt(d)
	}
	return d + (2*s-1)*(dd-d)
}

func (m BlendMode) fn() func(s, d float64) float64 {
	switch m {
	case BlendMultiply:
		return blendMultiply
	case BlendScreen:
		return blendScreen
	case BlendOverlay:
		return blendOverlay
	case BlendDarken:
		return blendDarken
	case BlendLighten:
		return blendLighten
	case BlendColorDodge:
		return blendColorDodge
	case BlendColorBurn:
		return blendColorBurn
	case BlendHardLight:
		return blendHardLight
	case BlendSoftLight:
		return blendSoftLight
	default:
		return blendNormal
	}
}

// Composite blends src over dst where both overlap (src is placed at dst's origin),
// scaling src alpha by opacity (clamped to 0..1). dst is modified in place and returned.
// The backdrop alpha gates the blend result, so a transparent backdrop receives
// the plain source colour.
func Composite(dst, src *image.NRGBA, mode BlendMode, opacity float64) *image.NRGBA {
	if dst == nil || src == nil {
		return dst
	}
	opacity = clamp01(opacity)
	if opacity == 0 {
		return dst
	}
	blendFunc := mode.fn()
	w := minInt(dst.Rect.Dx(), src.Rect.Dx())
	h := minInt(dst.Rect.Dy(), src.Rect.Dy())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(src.Rect.Min.X+x, src.Rect.Min.Y+y)
			di := dst.PixOffset(dst.Rect.Min.X+x, dst.Rect.Min.Y+y)
			sa := float64(src.Pix[si+3]) / 255.0 * opacity
			if sa == 0 {
				continue
			}
			da := float64(dst.Pix[di+3]) / 255.0
			outA := sa + da*(1-sa)
			for c := 0; c < 3; c++ {
				s := float64(src.Pix[si+c]) / 255.0
				d := float64(dst.Pix[di+c]) / 255.0
				mixed := (1-da)*s + da*blendFunc(s, d)
				dst.Pix[di+c] = unitToByte((sa*mixed + da*d*(1-sa)) / outA)
			}
			dst.Pix[di+3] = unitToByte(outA)
		}
	}
	return dst
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
