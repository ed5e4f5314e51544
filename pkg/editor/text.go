package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// BoldWeight is the lowest numeric weight rendered with the bold face.
const BoldWeight = 600

// DefaultTextSize is used for labels with a non-positive size.
const DefaultTextSize = 32.0

var textFallback = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

type faceKey struct {
	bold bool
	size float64
}

// FontSet resolves a (weight, size) pair to a font.Face, caching faces.
// It is not safe for concurrent use.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

// NewFontSet returns a FontSet backed by the Go fonts.
func NewFontSet() *FontSet {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse goregular: %v", err))
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse gobold: %v", err))
	}
	return &FontSet{regular: regular, bold: bold, faces: map[faceKey]font.Face{}}
}

// LoadFontSet uses the TTF/OTF at path for every weight. An empty path, or a
// file that cannot be read or parsed, falls back to the Go fonts with a warning.
func LoadFontSet(path string) *FontSet {
	fs := NewFontSet()
	if path == "" {
		return fs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		Logger().Warn("failed to read font file, using Go fonts", "path", path, "error", err)
		return fs
	}
	f, err := opentype.Parse(data)
	if err != nil {
		Logger().Warn("failed to parse font, using Go fonts", "path", path, "error", err)
		return fs
	}
	fs.regular, fs.bold = f, f
	return fs
}

// Face returns the cached face for the given weight and pixel size.
func (fs *FontSet) Face(weight int, size float64) (font.Face, error) {
	if math.IsNaN(size) || size <= 0 {
		size = DefaultTextSize
	}
	key := faceKey{bold: weight >= BoldWeight, size: size}
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}
	src := fs.regular
	if key.bold {
		src = fs.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	fs.faces[key] = f
	return f, nil
}

// textOrigin returns the baseline start of a label so that it is aligned
// horizontally per align and centred vertically on the anchor.
func textOrigin(face font.Face, label TextLabel) fixed.Point26_6 {
	m := face.Metrics()
	x := fixed.Int26_6(math.Round(label.Pos.X * 64))
	y := fixed.Int26_6(math.Round(label.Pos.Y*64)) + (m.Ascent-m.Descent)/2
	adv := font.MeasureString(face, label.Text)
	switch label.Align {
	case AlignCenter:
		x -= adv / 2
	case AlignRight:
		x -= adv
	}
	return fixed.Point26_6{X: x, Y: y}
}

// renderTexts draws labels in slice order.
func renderTexts(img *image.NRGBA, fonts *FontSet, labels []TextLabel) {
	for _, label := range labels {
		if label.Text == "" {
			continue
		}
		face, err := fonts.Face(label.Weight, label.Size)
		if err != nil {
			Logger().Warn("skipping text label", "text", label.ID, "error", err)
			continue
		}
		c, err := stdimg.ParseHexColor(label.Color)
		if err != nil {
			Logger().Warn("invalid text colour, using white", "text", label.ID, "color", label.Color)
			c = textFallback
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  textOrigin(face, label),
		}
		d.DrawString(label.Text)
	}
}
