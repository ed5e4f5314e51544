package editor

import (
	"image"
	"image/color"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

var (
	duotoneLightFallback = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	duotoneDarkFallback  = color.NRGBA{A: 255}
)

// duotoneColors parses the configured gradient ends. Malformed light falls back
// to white and malformed dark to black.
func duotoneColors(light, dark string) (color.NRGBA, color.NRGBA) {
	l, err := stdimg.ParseHexColor(light)
	if err != nil {
		Logger().Warn("invalid duotone light colour, using white", "color", light)
		l = duotoneLightFallback
	}
	d, err := stdimg.ParseHexColor(dark)
	if err != nil {
		Logger().Warn("invalid duotone dark colour, using black", "color", dark)
		d = duotoneDarkFallback
	}
	return l, d
}

// applyDuotone remaps every pixel of img along the dark→light gradient by its
// mean channel value. Alpha is left untouched.
func applyDuotone(img *image.NRGBA, light, dark string) {
	l, d := duotoneColors(light, dark)
	lr, lg, lb := float64(l.R), float64(l.G), float64(l.B)
	dr, dg, db := float64(d.R), float64(d.G), float64(d.B)
	b := img.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x, i = x+1, i+4 {
			avg := (float64(img.Pix[i]) + float64(img.Pix[i+1]) + float64(img.Pix[i+2])) / 3 / 255
			img.Pix[i+0] = uint8(dr + (lr-dr)*avg + 0.5)
			img.Pix[i+1] = uint8(dg + (lg-dg)*avg + 0.5)
			img.Pix[i+2] = uint8(db + (lb-db)*avg + 0.5)
		}
	}
}
