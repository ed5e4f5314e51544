package editor

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// GrainMaxAlpha is the exclusive upper bound of a grain mark's opacity.
const GrainMaxAlpha = 0.05

var grainColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// GrainCount is the number of marks scattered over a w×h frame at the given
// intensity (clamped to 0..100).
func GrainCount(w, h int, grain float64) int {
	if w <= 0 || h <= 0 || math.IsNaN(grain) || grain <= 0 {
		return 0
	}
	grain = math.Min(grain, 100)
	return int(math.Floor(float64(w) * float64(h) * grain / 5000))
}

// applyGrain scatters translucent white single-pixel marks at random positions.
func applyGrain(img *image.NRGBA, grain float64, rng *rand.Rand) int {
	b := img.Bounds()
	n := GrainCount(b.Dx(), b.Dy(), grain)
	for i := 0; i < n; i++ {
		x := b.Min.X + rng.Intn(b.Dx())
		y := b.Min.Y + rng.Intn(b.Dy())
		stdimg.OverPixel(img, x, y, grainColor, rng.Float64()*GrainMaxAlpha)
	}
	return n
}
