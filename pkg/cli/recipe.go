package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/editor"
)

// Recipe is a YAML description of an edit, replayed against a Session:
//
//	preset: vintage
//	adjustments:
//	  contrast: 120
//	rotation: 90
//	background: "#000000"
//	overlay: {path: texture.png, opacity: 0.4, mode: multiply}
//	strokes:
//	  - {color: "#ff0000", width: 6, style: glow, points: [[10, 10], [120, 80]]}
//	texts:
//	  - {text: Hello, x: 40, y: 40, color: "#ffffff", size: 32, weight: 700, align: left}
type Recipe struct {
	Preset      string         `yaml:"preset"`
	Adjustments yaml.Node      `yaml:"adjustments"`
	Rotation    int            `yaml:"rotation"`
	Background  string         `yaml:"background"`
	Overlay     *RecipeOverlay `yaml:"overlay"`
	Strokes     []RecipeStroke `yaml:"strokes"`
	Texts       []RecipeText   `yaml:"texts"`
}

type RecipeOverlay struct {
	Path    string   `yaml:"path"`
	Opacity *float64 `yaml:"opacity"`
	Mode    string   `yaml:"mode"`
}

type RecipeStroke struct {
	Color  string      `yaml:"color"`
	Width  float64     `yaml:"width"`
	Style  string      `yaml:"style"`
	Points [][]float64 `yaml:"points"`
}

type RecipeText struct {
	Text   string  `yaml:"text"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Color  string  `yaml:"color"`
	Size   float64 `yaml:"size"`
	Weight int     `yaml:"weight"`
	Align  string  `yaml:"align"`
}

// LoadRecipe decodes and validates a recipe.
func LoadRecipe(r io.Reader) (*Recipe, error) {
	var rec Recipe
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode recipe: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadRecipeFile reads the recipe at path.
func LoadRecipeFile(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rec, err := LoadRecipe(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Validate checks the structural parts the Session would otherwise silently drop.
func (r *Recipe) Validate() error {
	for i, s := range r.Strokes {
		for j, p := range s.Points {
			if len(p) != 2 {
				return fmt.Errorf("stroke %d point %d: want [x, y], got %d values", i, j, len(p))
			}
		}
	}
	if r.Overlay != nil && r.Overlay.Path == "" {
		return fmt.Errorf("overlay: path is required")
	}
	if _, err := editor.DecodeAdjustments(&r.Adjustments); err != nil {
		return err
	}
	return nil
}

// Apply replays the recipe against s, one mutation per step, capturing a
// history snapshot after each. Relative overlay paths resolve against baseDir.
func (r *Recipe) Apply(s *editor.Session, baseDir string) error {
	if r.Preset != "" {
		if err := s.ApplyPreset(r.Preset); err != nil {
			return err
		}
		s.CaptureSnapshot()
	}
	if r.Adjustments.Kind != 0 {
		adj, err := editor.DecodeAdjustmentsOnto(s.Adjustments(), &r.Adjustments)
		if err != nil {
			return err
		}
		s.SetAdjustments(adj)
		s.CaptureSnapshot()
	}
	if r.Rotation != 0 {
		s.SetRotation(r.Rotation)
		s.CaptureSnapshot()
	}
	if r.Background != "" {
		s.SetBackground(r.Background)
		s.CaptureSnapshot()
	}
	if ov := r.Overlay; ov != nil {
		path := ov.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		img, _, err := LoadImage(path)
		if err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
		opacity := 1.0
		if ov.Opacity != nil {
			opacity = *ov.Opacity
		}
		s.SetOverlay(img, opacity, ov.Mode)
	}
	for _, st := range r.Strokes {
		if len(st.Points) == 0 {
			continue
		}
		first := editor.Point{X: st.Points[0][0], Y: st.Points[0][1]}
		if _, ok := s.BeginStroke(first, st.Color, st.Width, editor.ParseStrokeStyle(st.Style)); !ok {
			return editor.ErrNoImage
		}
		for _, p := range st.Points[1:] {
			s.ExtendStroke(editor.Point{X: p[0], Y: p[1]})
		}
		s.EndStroke()
		s.CaptureSnapshot()
	}
	for _, t := range r.Texts {
		s.AddText(editor.TextLabel{
			Text:   t.Text,
			Pos:    editor.Point{X: t.X, Y: t.Y},
			Color:  t.Color,
			Size:   t.Size,
			Weight: t.Weight,
			Align:  editor.ParseAlign(t.Align),
		})
		s.CaptureSnapshot()
	}
	return nil
}
