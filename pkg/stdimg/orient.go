package stdimg

import (
	"image"
)

// AutoOrient applies EXIF orientation to an image.Image and returns a new image.Image.
// orientation is the EXIF Orientation tag value (1..8). If orientation is 1 or unknown, the image is returned as-is.
func AutoOrient(img image.Image, orientation int) image.Image {
	if img == nil {
		return nil
	}
	if orientation <= 1 || orientation > 8 {
		return img
	}
	src := ToNRGBA(img)
	switch orientation {
	case 2:
		return FlopNRGBA(src)
	case 3:
		return Rotate180NRGBA(src)
	case 4:
		return FlipNRGBA(src)
	case 5:
		// transpose
		return FlopNRGBA(Rotate90CWNRGBA(src))
	case 6:
		return Rotate90CWNRGBA(src)
	case 7:
		// transverse
		return FlopNRGBA(Rotate90CCWNRGBA(src))
	case 8:
		return Rotate90CCWNRGBA(src)
	default:
		return img
	}
}

// NormalizeQuarterTurn maps any angle in degrees to one of 0, 90, 180, 270.
// Values that are not multiples of 90 snap down to the previous quarter turn.
func NormalizeQuarterTurn(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg - deg%90
}

// RotateQuarterTurns rotates src clockwise by deg (normalized with
// NormalizeQuarterTurn). The result never aliases src.
func RotateQuarterTurns(src *image.NRGBA, deg int) *image.NRGBA {
	if src == nil {
		return nil
	}
	switch NormalizeQuarterTurn(deg) {
	case 90:
		return Rotate90CWNRGBA(src)
	case 180:
		return Rotate180NRGBA(src)
	case 270:
		return Rotate90CCWNRGBA(src)
	default:
		return ToNRGBA(src)
	}
}

// remap copies every pixel of src to the destination coordinate returned by
// to(x, y, w, h). dstW/dstH give the output extents.
func remap(src *image.NRGBA, dstW, dstH int, to func(x, y, w, h int) (int, int)) *image.NRGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			dx, dy := to(x, y, w, h)
			dstIdx := out.PixOffset(dx, dy)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

func FlipNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	return remap(src, src.Rect.Dx(), src.Rect.Dy(), func(x, y, w, h int) (int, int) { return x, h - 1 - y })
}

func FlopNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	return remap(src, src.Rect.Dx(), src.Rect.Dy(), func(x, y, w, h int) (int, int) { return w - 1 - x, y })
}

func Rotate180NRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	return remap(src, src.Rect.Dx(), src.Rect.Dy(), func(x, y, w, h int) (int, int) { return w - 1 - x, h - 1 - y })
}

func Rotate90CWNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	return remap(src, src.Rect.Dy(), src.Rect.Dx(), func(x, y, w, h int) (int, int) { return h - 1 - y, x })
}

func Rotate90CCWNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	return remap(src, src.Rect.Dy(), src.Rect.Dx(), func(x, y, w, h int) (int, int) { return y, w - 1 - x })
}
