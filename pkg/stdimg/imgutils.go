package stdimg

import (
	"image"
	"image/color"
	"math"
)

// ToNRGBA converts any image.Image to a fresh *image.NRGBA whose bounds start at (0,0).
// The returned image never aliases src's pixel memory.
func ToNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		rowLen := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			si := n.PixOffset(b.Min.X, b.Min.Y+y)
			di := out.PixOffset(0, y)
			copy(out.Pix[di:di+rowLen], n.Pix[si:si+rowLen])
		}
		return out
	}
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[idx+0] = c.R
			out.Pix[idx+1] = c.G
			out.Pix[idx+2] = c.B
			out.Pix[idx+3] = c.A
			idx += 4
		}
	}
	return out
}

// CloneNRGBA returns a copy of the provided image.NRGBA
func CloneNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := image.NewNRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}

// NewSolidNRGBA returns a w×h image filled with c.
func NewSolidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Fill(img, c)
	return img
}

// Fill overwrites every pixel of img with c.
func Fill(img *image.NRGBA, c color.NRGBA) {
	if img == nil {
		return
	}
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// clampInt clamps v to [lo,hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampFloatToUint8 ensures v in [0,255]
func clampFloatToUint8(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// unitToByte maps a 0..1 channel value to the nearest 8-bit value.
func unitToByte(v float64) uint8 {
	return uint8(clampFloatToUint8(v*255.0) + 0.5)
}

// samplePixelClamped returns the color.NRGBA at integer coords clamped to image.
func samplePixelClamped(img *image.NRGBA, x, y int) color.NRGBA {
	b := img.Bounds()
	x = clampInt(x, b.Min.X, b.Max.X-1)
	y = clampInt(y, b.Min.Y, b.Max.Y-1)
	i := img.PixOffset(x, y)
	return color.NRGBA{img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

// OverPixel composites a single color with coverage alpha a (0..1) over the
// pixel at (x,y) using source-over. Out-of-bounds coordinates are ignored.
func OverPixel(dst *image.NRGBA, x, y int, c color.NRGBA, a float64) {
	if dst == nil || !(image.Point{x, y}.In(dst.Rect)) {
		return
	}
	sa := clamp01(a * float64(c.A) / 255.0)
	if sa == 0 {
		return
	}
	i := dst.PixOffset(x, y)
	da := float64(dst.Pix[i+3]) / 255.0
	outA := sa + da*(1-sa)
	if outA <= 0 {
		return
	}
	mix := func(sc, dc uint8) uint8 {
		s := float64(sc) / 255.0
		d := float64(dc) / 255.0
		return unitToByte((sa*s + da*d*(1-sa)) / outA)
	}
	dst.Pix[i+0] = mix(c.R, dst.Pix[i+0])
	dst.Pix[i+1] = mix(c.G, dst.Pix[i+1])
	dst.Pix[i+2] = mix(c.B, dst.Pix[i+2])
	dst.Pix[i+3] = unitToByte(outA)
}
