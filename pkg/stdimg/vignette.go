package stdimg

import (
	"image"
	"math"
)

// Vignette darkens img in place with a radial gaussian-like falloff centred on
// the image. strength is clamped to [0,1]; 0 leaves img untouched and 1 takes
// the corners fully to black. radius<=0 uses half the diagonal and sigma<=0
// uses radius/2.
//
// mask(d) = (1 - exp(-d²/2σ²)) / (1 - exp(-r²/2σ²)), clamped to [0,1], so the
// centre is untouched and the falloff reaches full strength at radius.
func Vignette(img *image.NRGBA, radius, sigma, strength float64) {
	if img == nil {
		return
	}
	strength = clamp01(strength)
	if strength == 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if radius <= 0 {
		radius = math.Hypot(float64(w), float64(h)) / 2.0
	}
	if sigma <= 0 {
		sigma = radius / 2.0
	}
	cx := float64(w-1) / 2.0
	cy := float64(h-1) / 2.0
	norm := 1 - math.Exp(-0.5*(radius*radius)/(sigma*sigma))

	forEachBand(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			dy := float64(y) - cy
			i := img.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x, i = x+1, i+4 {
				dx := float64(x) - cx
				d2 := dx*dx + dy*dy
				mask := 1 - math.Exp(-0.5*d2/(sigma*sigma))
				if norm > 0 {
					mask /= norm
				}
				factor := 1.0 - clamp01(mask)*strength
				img.Pix[i+0] = uint8(clampFloatToUint8(float64(img.Pix[i+0])*factor) + 0.5)
				img.Pix[i+1] = uint8(clampFloatToUint8(float64(img.Pix[i+1])*factor) + 0.5)
				img.Pix[i+2] = uint8(clampFloatToUint8(float64(img.Pix[i+2])*factor) + 0.5)
			}
		}
	})
}
