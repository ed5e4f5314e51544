package editor

import (
	"image"
	"math/rand"
	"time"
)

// Params is everything a single render reads.
type Params struct {
	Adjustments Adjustments
	Rotation    int
	Background  string
	Overlay     OverlayState
	Strokes     []Stroke
	Texts       []TextLabel
}

// Pipeline runs the fixed stage order: geometry, tonal, duotone, overlay,
// grain, strokes, text. Every call recomputes the whole frame from the source.
type Pipeline struct {
	Fonts *FontSet
	Rand  *rand.Rand
}

// NewPipeline returns a Pipeline using fonts (Go fonts when nil) and rng
// (time-seeded when nil) for grain and noise.
func NewPipeline(fonts *FontSet, rng *rand.Rand) *Pipeline {
	if fonts == nil {
		fonts = NewFontSet()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Pipeline{Fonts: fonts, Rand: rng}
}

// Render draws src with p into dst and returns it. dst is reused when its
// extents already match the rotated frame and reallocated otherwise.
// A nil src renders nothing and returns dst unchanged.
func (pl *Pipeline) Render(dst, src *image.NRGBA, p Params) *image.NRGBA {
	if src == nil {
		return dst
	}
	start := time.Now()
	log := Logger()

	w, h := FrameSize(src.Bounds().Dx(), src.Bounds().Dy(), p.Rotation)
	if dst == nil || dst.Bounds() != image.Rect(0, 0, w, h) {
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	renderGeometry(dst, src, p.Rotation, p.Background)
	applyTonal(dst, p.Adjustments, pl.Rand)
	if p.Adjustments.DuotoneEnabled {
		applyDuotone(dst, p.Adjustments.DuotoneLight, p.Adjustments.DuotoneDark)
	} else {
		log.Debug("duotone disabled, skipping remap")
	}
	if p.Overlay.Active() {
		applyOverlay(dst, p.Overlay)
	}
	grain := applyGrain(dst, p.Adjustments.Grain, pl.Rand)
	renderStrokes(dst, p.Strokes)
	renderTexts(dst, pl.Fonts, p.Texts)

	log.Debug("render complete",
		"width", w, "height", h,
		"rotation", p.Rotation,
		"strokes", len(p.Strokes),
		"texts", len(p.Texts),
		"grain_marks", grain,
		"elapsed", time.Since(start))
	return dst
}
