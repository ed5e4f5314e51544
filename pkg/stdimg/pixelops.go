package stdimg

import (
	"image"
	"math"
)

// PixelOp maps one non-premultiplied RGB triple in 0..1 space to another.
// Alpha is never touched.
type PixelOp func(r, g, b float64) (float64, float64, float64)

// ColorMatrix is a row-major 3x3 matrix applied to (r,g,b) column vectors.
type ColorMatrix [9]float64

// IdentityMatrix leaves every channel unchanged.
var IdentityMatrix = ColorMatrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Op returns m as a PixelOp.
func (m ColorMatrix) Op() PixelOp {
	return func(r, g, b float64) (float64, float64, float64) {
		return m[0]*r + m[1]*g + m[2]*b,
			m[3]*r + m[4]*g + m[5]*b,
			m[6]*r + m[7]*g + m[8]*b
	}
}

// Lerp blends m toward the identity: amount 0 is identity, 1 is m.
func (m ColorMatrix) Lerp(amount float64) ColorMatrix {
	amount = clamp01(amount)
	var out ColorMatrix
	for i := range m {
		out[i] = IdentityMatrix[i] + (m[i]-IdentityMatrix[i])*amount
	}
	return out
}

// SepiaMatrix is the classic sepia tone matrix.
var SepiaMatrix = ColorMatrix{
	0.393, 0.769, 0.189,
	0.349, 0.686, 0.168,
	0.272, 0.534, 0.131,
}

// LuminanceMatrix projects every channel onto Rec. 709 luma.
var LuminanceMatrix = ColorMatrix{
	0.2126, 0.7152, 0.0722,
	0.2126, 0.7152, 0.0722,
	0.2126, 0.7152, 0.0722,
}

// SaturateMatrix scales chroma by s (1 = identity, 0 = grayscale).
func SaturateMatrix(s float64) ColorMatrix {
	return ColorMatrix{
		0.2126 + 0.7874*s, 0.7152 - 0.7152*s, 0.0722 - 0.0722*s,
		0.2126 - 0.2126*s, 0.7152 + 0.2848*s, 0.0722 - 0.0722*s,
		0.2126 - 0.2126*s, 0.7152 - 0.7152*s, 0.0722 + 0.9278*s,
	}
}

// HueRotateMatrix rotates hue by deg degrees around the luma axis.
func HueRotateMatrix(deg float64) ColorMatrix {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return ColorMatrix{
		0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928,
		0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283,
		0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072,
	}
}

// Scale multiplies every channel by k. Used for brightness and exposure.
func Scale(k float64) PixelOp {
	return func(r, g, b float64) (float64, float64, float64) {
		return r * k, g * k, b * k
	}
}

// Contrast pushes channels away from (k>1) or toward (k<1) mid grey.
func Contrast(k float64) PixelOp {
	return func(r, g, b float64) (float64, float64, float64) {
		return (r-0.5)*k + 0.5, (g-0.5)*k + 0.5, (b-0.5)*k + 0.5
	}
}

// Invert mixes each channel with its negative; amount 1 is a full negate.
func Invert(amount float64) PixelOp {
	amount = clamp01(amount)
	return func(r, g, b float64) (float64, float64, float64) {
		return amount + r*(1-2*amount), amount + g*(1-2*amount), amount + b*(1-2*amount)
	}
}

// Gamma raises every channel to exp. exp<=0 is treated as identity.
func Gamma(exp float64) PixelOp {
	if exp <= 0 || math.IsNaN(exp) {
		exp = 1
	}
	return func(r, g, b float64) (float64, float64, float64) {
		return math.Pow(r, exp), math.Pow(g, exp), math.Pow(b, exp)
	}
}

// ApplyPixelOps runs ops in order on every pixel of img, in place, clamping
// to [0,1] after each op so the result equals applying the ops as separate passes
// (minus intermediate 8-bit rounding).
func ApplyPixelOps(img *image.NRGBA, ops ...PixelOp) {
	if img == nil || len(ops) == 0 {
		return
	}
	b := img.Bounds()
	w := b.Dx()
	forEachBand(b.Dy(), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			i := img.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x, i = x+1, i+4 {
				r := float64(img.Pix[i+0]) / 255.0
				g := float64(img.Pix[i+1]) / 255.0
				bl := float64(img.Pix[i+2]) / 255.0
				for _, op := range ops {
					r, g, bl = op(r, g, bl)
					r, g, bl = clamp01(r), clamp01(g), clamp01(bl)
				}
				img.Pix[i+0] = unitToByte(r)
				img.Pix[i+1] = unitToByte(g)
				img.Pix[i+2] = unitToByte(bl)
			}
		}
	})
}
