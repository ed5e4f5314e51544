package stdimg

import (
	"image"
	"math/rand"
)

// NoiseKind selects the distribution used by AddNoise.
type NoiseKind int

const (
	NoiseGaussian NoiseKind = iota
	NoiseUniform
)

// AddNoise perturbs RGB of img in place. amount is the standard deviation
// (gaussian) or maximum deviation (uniform) in 8-bit units. The same delta is
// not shared between channels. Alpha is untouched. rng must not be nil when
// amount > 0; pass a seeded source for reproducible output.
func AddNoise(img *image.NRGBA, kind NoiseKind, amount float64, rng *rand.Rand) {
	if img == nil || amount <= 0 || rng == nil {
		return
	}
	sample := func() float64 {
		if kind == NoiseUniform {
			return (rng.Float64()*2 - 1) * amount
		}
		return rng.NormFloat64() * amount
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	// sequential: rng is not safe for concurrent use and output must be reproducible
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x, i = x+1, i+4 {
			if img.Pix[i+3] == 0 {
				continue
			}
			for c := 0; c < 3; c++ {
				v := float64(img.Pix[i+c]) + sample()
				img.Pix[i+c] = uint8(clampFloatToUint8(v) + 0.5)
			}
		}
	}
}
