package editor

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// GlowFactor scales stroke width into the glow shadow's blur radius.
const GlowFactor = 2.0

var strokeFallback = color.NRGBA{A: 255}

// maxStrokeCoord bounds point coordinates so they stay inside 26.6 fixed point.
const maxStrokeCoord = 1 << 24

// strokeWidth returns w clamped to limit, or 1 for non-positive or NaN widths.
// A stroke wider than twice the frame diagonal cannot cover more of it.
func strokeWidth(w, limit float64) float64 {
	if math.IsNaN(w) || w <= 0 {
		return 1
	}
	return math.Min(w, math.Max(1, limit))
}

// glowSigma is the gaussian sigma matching a canvas shadow blur of GlowFactor×width.
func glowSigma(width float64) float64 {
	return GlowFactor * width / 2
}

// finitePoints drops points that are NaN, infinite or beyond maxStrokeCoord.
func finitePoints(in []Point) []Point {
	out := make([]Point, 0, len(in))
	for _, p := range in {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.Abs(p.X) > maxStrokeCoord || math.Abs(p.Y) > maxStrokeCoord {
			continue
		}
		out = append(out, p)
	}
	return out
}

// strokeBounds is the part of clip a stroke can touch, including glow.
func strokeBounds(s Stroke, width float64, clip image.Rectangle) image.Rectangle {
	pad := width/2 + 2
	if s.Style == StyleGlow {
		pad += 3 * glowSigma(width)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range s.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	// clip in float space before converting to int
	fx0 := math.Max(math.Floor(minX-pad), float64(clip.Min.X))
	fy0 := math.Max(math.Floor(minY-pad), float64(clip.Min.Y))
	fx1 := math.Min(math.Ceil(maxX+pad), float64(clip.Max.X))
	fy1 := math.Min(math.Ceil(maxY+pad), float64(clip.Max.Y))
	if fx0 >= fx1 || fy0 >= fy1 {
		return image.Rectangle{}
	}
	return image.Rect(int(fx0), int(fy0), int(fx1), int(fy1))
}

// rasterizeStroke draws s into a transparent layer covering area. Points are
// translated so area.Min maps to the layer origin.
func rasterizeStroke(s Stroke, width float64, c color.NRGBA, area image.Rectangle) *image.RGBA {
	w, h := area.Dx(), area.Dy()
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, layer, layer.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	ox, oy := float64(area.Min.X), float64(area.Min.Y)

	pts := dedupePoints(s.Points)
	if len(pts) == 1 {
		p := pts[0]
		filler := &dasher.Filler
		rasterx.AddCircle(p.X-ox, p.Y-oy, width/2, filler)
		filler.SetColor(c)
		filler.Draw()
		filler.Clear()
		return layer
	}

	dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	dasher.Start(rasterx.ToFixedP(pts[0].X-ox, pts[0].Y-oy))
	for _, p := range pts[1:] {
		dasher.Line(rasterx.ToFixedP(p.X-ox, p.Y-oy))
	}
	dasher.Stop(false)
	dasher.SetColor(c)
	dasher.Draw()
	dasher.Clear()
	return layer
}

// dedupePoints drops consecutive repeats. A path that never moves collapses
// to a single point and is drawn as a dot.
func dedupePoints(in []Point) []Point {
	out := make([]Point, 0, len(in))
	for i, p := range in {
		if i > 0 && p == in[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// glowLayer builds the shadow for a rendered stroke layer: the stroke's
// coverage tinted with c and blurred by sigma.
func glowLayer(layer *image.RGBA, c color.NRGBA, sigma float64) *image.NRGBA {
	shadow := image.NewNRGBA(layer.Bounds())
	for i := 0; i+3 < len(layer.Pix); i += 4 {
		a := layer.Pix[i+3]
		if a == 0 {
			continue
		}
		shadow.Pix[i+0] = c.R
		shadow.Pix[i+1] = c.G
		shadow.Pix[i+2] = c.B
		shadow.Pix[i+3] = a
	}
	return stdimg.SeparableGaussianBlur(shadow, sigma)
}

// drawStroke rasterizes one stroke onto img. Strokes without points draw nothing.
func drawStroke(img *image.NRGBA, s Stroke) {
	s.Points = finitePoints(s.Points)
	if len(s.Points) == 0 {
		return
	}
	b := img.Bounds()
	width := strokeWidth(s.Width, 2*math.Hypot(float64(b.Dx()), float64(b.Dy())))
	c, err := stdimg.ParseHexColor(s.Color)
	if err != nil {
		Logger().Warn("invalid stroke colour, using black", "stroke", s.ID, "color", s.Color)
		c = strokeFallback
	}
	area := strokeBounds(s, width, b)
	if area.Empty() {
		return
	}
	layer := rasterizeStroke(s, width, c, area)
	if s.Style == StyleGlow {
		shadow := glowLayer(layer, c, glowSigma(width))
		draw.Draw(img, area, shadow, image.Point{}, draw.Over)
	}
	draw.Draw(img, area, layer, image.Point{}, draw.Over)
}

// renderStrokes draws strokes in slice order, so later strokes cover earlier ones.
func renderStrokes(img *image.NRGBA, strokes []Stroke) {
	for _, s := range strokes {
		drawStroke(img, s)
	}
}
