package editor

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// scaleToCover resamples src to exactly w×h with bilinear filtering.
func scaleToCover(src image.Image, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)
	return out
}

// applyOverlay stretches the overlay over the whole frame and blends it in with
// the configured mode and opacity.
func applyOverlay(img *image.NRGBA, ov OverlayState) {
	b := img.Bounds()
	if b.Empty() || ov.Image == nil || ov.Image.Bounds().Empty() {
		return
	}
	scaled := scaleToCover(ov.Image, b.Dx(), b.Dy())
	stdimg.Composite(img, scaled, ov.Mode, ov.Opacity)
}
