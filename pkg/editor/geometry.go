package editor

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// FrameSize returns the output extents for a w×h source rotated by deg.
// Quarter turns of odd parity swap width and height.
func FrameSize(w, h, deg int) (int, int) {
	switch stdimg.NormalizeQuarterTurn(deg) {
	case 90, 270:
		return h, w
	default:
		return w, h
	}
}

// renderGeometry writes src rotated by rotation into dst, which must already
// have the extents FrameSize reports. The background, when set, is filled
// first and the rotated source is drawn over it.
func renderGeometry(dst, src *image.NRGBA, rotation int, background string) {
	rotated := stdimg.RotateQuarterTurns(src, rotation)
	if background == "" {
		draw.Draw(dst, dst.Bounds(), rotated, image.Point{}, draw.Src)
		return
	}
	bg, err := stdimg.ParseHexColor(background)
	if err != nil {
		Logger().Warn("invalid background colour, using transparent", "background", background, "error", err)
		draw.Draw(dst, dst.Bounds(), rotated, image.Point{}, draw.Src)
		return
	}
	stdimg.Fill(dst, bg)
	draw.Draw(dst, dst.Bounds(), rotated, image.Point{}, draw.Over)
}
