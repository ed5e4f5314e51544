package editor

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// State is the session's position in the Empty → Ready ⇄ Drawing machine.
type State int

const (
	StateEmpty State = iota
	StateReady
	StateDrawing
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	case StateDrawing:
		return "drawing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures a Session. Zero values pick defaults.
type Options struct {
	HistoryCapacity int
	Fonts           *FontSet
	Rand            *rand.Rand
	Presets         *PresetRegistry
}

// Session owns one source image and every parameter of its render. Each
// mutating call re-renders the whole frame before returning; with no image
// loaded the render is skipped. A Session is not safe for concurrent use.
type Session struct {
	state    State
	source   *image.NRGBA
	frame    *image.NRGBA
	pipeline *Pipeline
	presets  *PresetRegistry
	history  *History

	adj        Adjustments
	rotation   int
	background string
	overlay    OverlayState
	strokes    []Stroke
	texts      []TextLabel
	active     int // index into strokes while drawing, else -1

	renders int
}

// NewSession returns an empty session.
func NewSession(opts Options) *Session {
	presets := opts.Presets
	if presets == nil {
		presets = NewPresetRegistry()
	}
	return &Session{
		state:    StateEmpty,
		pipeline: NewPipeline(opts.Fonts, opts.Rand),
		presets:  presets,
		history:  NewHistory(opts.HistoryCapacity),
		adj:      DefaultAdjustments(),
		active:   -1,
	}
}

// State reports the current state.
func (s *Session) State() State { return s.state }

// Presets is the registry used by ApplyPreset.
func (s *Session) Presets() *PresetRegistry { return s.presets }

// RenderCount is the number of renders performed so far.
func (s *Session) RenderCount() int { return s.renders }

func (s *Session) render() {
	if s.source == nil {
		return
	}
	s.frame = s.pipeline.Render(s.frame, s.source, s.params())
	s.renders++
}

func (s *Session) params() Params {
	return Params{
		Adjustments: s.adj,
		Rotation:    s.rotation,
		Background:  s.background,
		Overlay:     s.overlay,
		Strokes:     s.strokes,
		Texts:       s.texts,
	}
}

func (s *Session) resetParams() {
	s.adj = DefaultAdjustments()
	s.rotation = 0
	s.background = ""
	s.overlay = OverlayState{}
	s.strokes = nil
	s.texts = nil
	s.active = -1
}

// Load replaces the source image. Every parameter returns to its default,
// the history is cleared and a baseline snapshot of the fresh state is stored.
func (s *Session) Load(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrNoImage
	}
	s.source = stdimg.ToNRGBA(img)
	s.frame = nil
	s.resetParams()
	s.history.Clear()
	s.state = StateReady
	Logger().Info("image loaded", "width", s.source.Rect.Dx(), "height", s.source.Rect.Dy())
	s.render()
	s.CaptureSnapshot()
	return nil
}

// Size is the source image extents, or zero when empty.
func (s *Session) Size() (int, int) {
	if s.source == nil {
		return 0, 0
	}
	return s.source.Rect.Dx(), s.source.Rect.Dy()
}

// Adjustments returns the current adjustments.
func (s *Session) Adjustments() Adjustments { return s.adj }

// SetAdjustments replaces every adjustment.
func (s *Session) SetAdjustments(a Adjustments) {
	s.adj = a
	s.render()
}

// UpdateAdjustments edits the current adjustments in place.
func (s *Session) UpdateAdjustments(edit func(a *Adjustments)) {
	edit(&s.adj)
	s.render()
}

// ApplyPreset replaces the adjustments with a registered preset.
func (s *Session) ApplyPreset(name string) error {
	p, ok := s.presets.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	Logger().Info("preset applied", "preset", p.Name)
	s.SetAdjustments(p.Adjustments)
	return nil
}

// Rotation is the current rotation in degrees, one of 0, 90, 180, 270.
func (s *Session) Rotation() int { return s.rotation }

// SetRotation sets the rotation, normalized to a quarter turn.
func (s *Session) SetRotation(deg int) {
	s.rotation = stdimg.NormalizeQuarterTurn(deg)
	s.render()
}

// RotateBy adds delta degrees to the current rotation.
func (s *Session) RotateBy(delta int) {
	s.SetRotation(s.rotation + delta)
}

// Background is the fill colour behind the source; empty means transparent.
func (s *Session) Background() string { return s.background }

// SetBackground sets the background fill colour.
func (s *Session) SetBackground(hex string) {
	s.background = strings.TrimSpace(hex)
	s.render()
}

// Overlay returns the current overlay state.
func (s *Session) Overlay() OverlayState { return s.overlay }

// SetOverlay sets the overlay image, opacity (clamped to 0..1) and blend mode.
// Unknown modes fall back to normal.
func (s *Session) SetOverlay(img image.Image, opacity float64, mode string) {
	m, ok := stdimg.ParseBlendMode(mode)
	if !ok {
		Logger().Warn("unknown blend mode, using normal", "mode", mode)
	}
	s.overlay = OverlayState{Image: img, Opacity: clampUnit(opacity), Mode: m}
	s.render()
}

// ClearOverlay removes the overlay.
func (s *Session) ClearOverlay() {
	s.overlay = OverlayState{}
	s.render()
}

// BeginStroke starts a new stroke at p and enters Drawing. A stroke still in
// progress is finalized first. It returns the new stroke's ID, or false when
// no image is loaded.
func (s *Session) BeginStroke(p Point, color string, width float64, style StrokeStyle) (string, bool) {
	if s.state == StateEmpty {
		Logger().Debug("dropping stroke start, no image loaded")
		return "", false
	}
	if style != StyleGlow {
		style = StylePencil
	}
	st := Stroke{
		ID:     uuid.NewString(),
		Points: []Point{p},
		Color:  color,
		Width:  width,
		Style:  style,
	}
	s.strokes = append(s.strokes, st)
	s.active = len(s.strokes) - 1
	s.state = StateDrawing
	s.render()
	return st.ID, true
}

// ExtendStroke appends p to the active stroke. Without one the event is dropped.
func (s *Session) ExtendStroke(p Point) bool {
	if s.state != StateDrawing || s.active < 0 {
		Logger().Debug("dropping stroke point, no active stroke")
		return false
	}
	st := &s.strokes[s.active]
	st.Points = append(st.Points, p)
	s.render()
	return true
}

// EndStroke finalizes the active stroke and returns to Ready.
func (s *Session) EndStroke() bool {
	if s.state != StateDrawing {
		Logger().Debug("dropping stroke end, no active stroke")
		return false
	}
	s.active = -1
	s.state = StateReady
	s.render()
	return true
}

// Strokes returns a copy of every stroke in drawing order.
func (s *Session) Strokes() []Stroke { return cloneStrokes(s.strokes) }

// RemoveStroke deletes the stroke with the given ID. The active stroke
// cannot be removed.
func (s *Session) RemoveStroke(id string) bool {
	for i, st := range s.strokes {
		if st.ID != id {
			continue
		}
		if i == s.active {
			return false
		}
		s.strokes = append(s.strokes[:i], s.strokes[i+1:]...)
		if s.active > i {
			s.active--
		}
		s.render()
		return true
	}
	return false
}

// ClearStrokes deletes every stroke, ending any stroke in progress.
func (s *Session) ClearStrokes() {
	s.strokes = nil
	s.endDrawing()
	s.render()
}

// AddText appends a label and returns its ID. A label without an ID gets a
// fresh one.
func (s *Session) AddText(label TextLabel) string {
	if label.ID == "" {
		label.ID = uuid.NewString()
	}
	if label.Align == "" {
		label.Align = AlignLeft
	}
	s.texts = append(s.texts, label)
	s.render()
	return label.ID
}

// Texts returns a copy of every text label in drawing order.
func (s *Session) Texts() []TextLabel { return append([]TextLabel(nil), s.texts...) }

// RemoveText deletes the label with the given ID.
func (s *Session) RemoveText(id string) bool {
	for i, t := range s.texts {
		if t.ID == id {
			s.texts = append(s.texts[:i], s.texts[i+1:]...)
			s.render()
			return true
		}
	}
	return false
}

// ClearTexts deletes every text label.
func (s *Session) ClearTexts() {
	s.texts = nil
	s.render()
}

func (s *Session) endDrawing() {
	s.active = -1
	if s.state == StateDrawing {
		s.state = StateReady
	}
}

// Snapshot returns a deep copy of the current editable state.
func (s *Session) Snapshot() EditorSnapshot {
	return EditorSnapshot{
		Adjustments: s.adj,
		Rotation:    s.rotation,
		Strokes:     s.strokes,
		Texts:       s.texts,
		Background:  s.background,
	}.Clone()
}

// History exposes the undo log.
func (s *Session) History() *History { return s.history }

// CaptureSnapshot pushes the current state onto the history, discarding any
// redo tail and evicting the oldest entry beyond capacity.
func (s *Session) CaptureSnapshot() {
	s.history.Push(s.Snapshot())
}

// RestoreSnapshot replaces the live state with history entry i and moves the
// history cursor there. The overlay is not part of snapshots and is kept.
func (s *Session) RestoreSnapshot(i int) error {
	snap, err := s.history.Seek(i)
	if err != nil {
		return err
	}
	s.apply(snap)
	return nil
}

// Undo restores the previous snapshot.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo()
	if ok {
		s.apply(snap)
	}
	return ok
}

// Redo restores the next snapshot.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo()
	if ok {
		s.apply(snap)
	}
	return ok
}

// CanUndo reports whether Undo would do anything.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

func (s *Session) apply(snap EditorSnapshot) {
	s.adj = snap.Adjustments
	s.rotation = snap.Rotation
	s.strokes = snap.Strokes
	s.texts = snap.Texts
	s.background = snap.Background
	s.endDrawing()
	s.render()
}

// Output is the latest rendered frame, or nil when no image is loaded. The
// buffer is reused by the next render; callers must not modify it.
func (s *Session) Output() *image.NRGBA { return s.frame }

// Export encodes the latest frame as "png", "jpeg" ("jpg") or "gif". quality
// only applies to jpeg and is clamped to 1..100.
func (s *Session) Export(w io.Writer, format string, quality int) error {
	if s.frame == nil {
		return ErrNoImage
	}
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png", "":
		if err := png.Encode(w, s.frame); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case "jpeg", "jpg":
		quality = max(1, min(100, quality))
		if err := jpeg.Encode(w, s.frame, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
	case "gif":
		if err := gif.Encode(w, s.frame, nil); err != nil {
			return fmt.Errorf("encode gif: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

func clampUnit(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
