package editor

import (
	"image"
	"math"
	"math/rand"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// noiseScale converts the 0..100 noise field to a gaussian standard deviation
// in 8-bit units.
const noiseScale = 50.0

// tonalOps returns the colour steps before and after the blur, in chain order:
// brightness, contrast, saturation, grayscale, sepia, hue-rotate | blur |
// invert, exposure, gamma. Identity values contribute no op.
func tonalOps(a Adjustments) (pre, post []stdimg.PixelOp) {
	if k := percentFactor(a.Brightness); k != 1 {
		pre = append(pre, stdimg.Scale(k))
	}
	if k := percentFactor(a.Contrast); k != 1 {
		pre = append(pre, stdimg.Contrast(k))
	}
	if k := percentFactor(a.Saturation); k != 1 {
		pre = append(pre, stdimg.SaturateMatrix(k).Op())
	}
	if amt := percentAmount(a.Grayscale); amt > 0 {
		pre = append(pre, stdimg.LuminanceMatrix.Lerp(amt).Op())
	}
	if amt := percentAmount(a.Sepia); amt > 0 {
		pre = append(pre, stdimg.SepiaMatrix.Lerp(amt).Op())
	}
	if deg := a.HueRotate; !math.IsNaN(deg) && !math.IsInf(deg, 0) && math.Mod(deg, 360) != 0 {
		pre = append(pre, stdimg.HueRotateMatrix(deg).Op())
	}
	if amt := percentAmount(a.Invert); amt > 0 {
		post = append(post, stdimg.Invert(amt))
	}
	if k := exposureFactor(a.Exposure); k != 1 {
		post = append(post, stdimg.Scale(k))
	}
	if g := percentFactor(a.Gamma); g != 1 && g > 0 {
		post = append(post, stdimg.Gamma(g))
	}
	return pre, post
}

// applyTonal runs the full tonal chain on img in place.
func applyTonal(img *image.NRGBA, a Adjustments, rng *rand.Rand) {
	pre, post := tonalOps(a)
	if sigma := blurSigma(a.Blur); sigma > 0 {
		stdimg.ApplyPixelOps(img, pre...)
		blurred := stdimg.SeparableGaussianBlur(img, sigma)
		copy(img.Pix, blurred.Pix)
		stdimg.ApplyPixelOps(img, post...)
	} else {
		// no spatial step, so the whole chain collapses into one pass
		stdimg.ApplyPixelOps(img, append(pre, post...)...)
	}
	if v := percentAmount(a.Vignette); v > 0 {
		stdimg.Vignette(img, 0, 0, v)
	}
	if n := percentAmount(a.Noise); n > 0 {
		stdimg.AddNoise(img, stdimg.NoiseGaussian, n*noiseScale, rng)
	}
}
