package editor

import (
	"image"
	"strings"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// Point is a position in output-frame pixel coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// StrokeStyle selects how a stroke is drawn.
type StrokeStyle string

const (
	StylePencil StrokeStyle = "pencil"
	StyleGlow   StrokeStyle = "glow"
)

// ParseStrokeStyle returns StylePencil for anything that is not "glow".
func ParseStrokeStyle(s string) StrokeStyle {
	if strings.EqualFold(strings.TrimSpace(s), string(StyleGlow)) {
		return StyleGlow
	}
	return StylePencil
}

// Stroke is one freehand path. Points are append-only while the stroke is active.
type Stroke struct {
	ID     string
	Points []Point
	Color  string
	Width  float64
	Style  StrokeStyle
}

// Clone returns a copy that shares no memory with s.
func (s Stroke) Clone() Stroke {
	out := s
	out.Points = append([]Point(nil), s.Points...)
	return out
}

// Align is the horizontal alignment of a text label relative to its anchor.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign maps left/center/right (and "centre", "start", "end") to an Align.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre", "middle":
		return AlignCenter
	case "right", "end":
		return AlignRight
	default:
		return AlignLeft
	}
}

// TextLabel is immutable once added; edits are delete and recreate.
type TextLabel struct {
	ID     string
	Text   string
	Pos    Point
	Color  string
	Size   float64
	Weight int
	Align  Align
}

// OverlayState is the optional second image blended over the frame.
type OverlayState struct {
	Image   image.Image
	Opacity float64
	Mode    stdimg.BlendMode
}

// Active reports whether the overlay stage has anything to draw.
func (o OverlayState) Active() bool {
	return o.Image != nil && o.Opacity > 0
}

// EditorSnapshot is a deep copy of the editable state at one point in time.
// The overlay and source image are not part of it.
type EditorSnapshot struct {
	Adjustments Adjustments
	Rotation    int
	Strokes     []Stroke
	Texts       []TextLabel
	Background  string
}

// Clone returns a snapshot sharing no slices with s.
func (s EditorSnapshot) Clone() EditorSnapshot {
	out := s
	out.Strokes = cloneStrokes(s.Strokes)
	out.Texts = append([]TextLabel(nil), s.Texts...)
	return out
}

func cloneStrokes(in []Stroke) []Stroke {
	if in == nil {
		return nil
	}
	out := make([]Stroke, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
