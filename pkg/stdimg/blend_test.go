package stdimg

import (
	"image/color"
	"testing"
)

func TestCompositeNormalHalfOpacity(t *testing.T) {
	bg := makeSolidNRGBA(8, 6, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	fg := makeSolidNRGBA(8, 6, color.NRGBA{R: 0, G: 0, B: 255, A: 255})

	Composite(bg, fg, BlendNormal, 0.5)

	i := bg.PixOffset(3, 3)
	if absDiff(bg.Pix[i+0], 128) > 1 || bg.Pix[i+1] != 0 || absDiff(bg.Pix[i+2], 128) > 1 {
		t.Fatalf("unexpected blend: %v", bg.Pix[i:i+4])
	}
	if bg.Pix[i+3] != 255 {
		t.Fatalf("alpha: got %d", bg.Pix[i+3])
	}
	saveTestOutput(t, bg)
}

func TestCompositeModes(t *testing.T) {
	grey := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	cases := []struct {
		mode    BlendMode
		dst     color.NRGBA
		src     color.NRGBA
		want    uint8
		comment string
	}{
		{BlendMultiply, grey, white, 128, "multiply by white is identity"},
		{BlendMultiply, grey, black, 0, "multiply by black is black"},
		{BlendScreen, grey, black, 128, "screen with black is identity"},
		{BlendScreen, grey, white, 255, "screen with white is white"},
		{BlendDarken, grey, white, 128, "darken keeps darker"},
		{BlendLighten, grey, black, 128, "lighten keeps lighter"},
		{BlendColorDodge, black, white, 0, "dodge of black backdrop stays black"},
		{BlendColorBurn, white, black, 255, "burn of white backdrop stays white"},
		{BlendHardLight, grey, white, 255, "hard light with white is screen"},
		{BlendOverlay, black, white, 0, "overlay on black backdrop"},
		{BlendSoftLight, white, black, 255, "soft light keeps white"},
	}
	for _, tc := range cases {
		dst := makeSolidNRGBA(2, 2, tc.dst)
		src := makeSolidNRGBA(2, 2, tc.src)
		Composite(dst, src, tc.mode, 1)
		if absDiff(dst.Pix[0], tc.want) > 1 {
			t.Errorf("%s (%s): got %d want %d", tc.mode, tc.comment, dst.Pix[0], tc.want)
		}
	}
}

func TestCompositeZeroOpacityNoop(t *testing.T) {
	bg := makeSolidNRGBA(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	fg := makeSolidNRGBA(4, 4, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	Composite(bg, fg, BlendScreen, -2)
	if bg.Pix[0] != 10 || bg.Pix[1] != 20 || bg.Pix[2] != 30 {
		t.Fatalf("expected untouched backdrop, got %v", bg.Pix[0:4])
	}
}

func TestParseBlendMode(t *testing.T) {
	cases := map[string]BlendMode{
		"multiply":    BlendMultiply,
		"Color-Dodge": BlendColorDodge,
		"colorburn":   BlendColorBurn,
		"soft_light":  BlendSoftLight,
		"":            BlendNormal,
	}
	for in, want := range cases {
		got, ok := ParseBlendMode(in)
		if !ok || got != want {
			t.Errorf("ParseBlendMode(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if m, ok := ParseBlendMode("xor"); ok || m != BlendNormal {
		t.Fatalf("unknown mode should fall back to normal with ok=false, got %q,%v", m, ok)
	}
}
