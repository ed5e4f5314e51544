package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named bundle of adjustments.
type Preset struct {
	Name        string
	Description string
	Adjustments Adjustments
}

func preset(name, desc string, edit func(a *Adjustments)) Preset {
	a := DefaultAdjustments()
	edit(&a)
	return Preset{Name: name, Description: desc, Adjustments: a}
}

// BuiltinPresets returns the presets every registry starts with.
func BuiltinPresets() []Preset {
	return []Preset{
		preset("original", "no adjustments", func(a *Adjustments) {}),
		preset("vivid", "punchy colour and contrast", func(a *Adjustments) {
			a.Contrast, a.Saturation, a.Brightness = 115, 145, 105
		}),
		preset("noir", "high contrast black and white", func(a *Adjustments) {
			a.Grayscale, a.Contrast, a.Brightness, a.Vignette = 100, 135, 95, 30
		}),
		preset("vintage", "warm faded print", func(a *Adjustments) {
			a.Sepia, a.Contrast, a.Saturation, a.Vignette, a.Grain = 45, 90, 80, 35, 20
		}),
		preset("warm", "golden cast", func(a *Adjustments) {
			a.Sepia, a.Saturation, a.HueRotate, a.Brightness = 20, 120, -10, 104
		}),
		preset("cool", "blue cast", func(a *Adjustments) {
			a.HueRotate, a.Saturation, a.Brightness = 15, 90, 102
		}),
		preset("fade", "lifted blacks, muted colour", func(a *Adjustments) {
			a.Contrast, a.Saturation, a.Brightness, a.Gamma = 75, 70, 110, 90
		}),
		preset("dramatic", "deep shadows and strong vignette", func(a *Adjustments) {
			a.Contrast, a.Saturation, a.Exposure, a.Vignette = 150, 110, -10, 55
		}),
		preset("film", "soft contrast with grain", func(a *Adjustments) {
			a.Contrast, a.Saturation, a.Sepia, a.Grain, a.Noise = 105, 90, 10, 35, 4
		}),
	}
}

// PresetRegistry looks presets up by case-insensitive name.
type PresetRegistry struct {
	presets map[string]Preset
}

// NewPresetRegistry returns a registry holding the built-in presets.
func NewPresetRegistry() *PresetRegistry {
	r := &PresetRegistry{presets: map[string]Preset{}}
	for _, p := range BuiltinPresets() {
		r.Add(p)
	}
	return r
}

// Add stores p, replacing any preset with the same name.
func (r *PresetRegistry) Add(p Preset) {
	r.presets[strings.ToLower(p.Name)] = p
}

// Get looks a preset up by name.
func (r *PresetRegistry) Get(name string) (Preset, bool) {
	p, ok := r.presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names returns every preset name in sorted order.
func (r *PresetRegistry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for _, p := range r.presets {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return names
}

type presetFile struct {
	Presets map[string]struct {
		Description string    `yaml:"description"`
		Adjustments yaml.Node `yaml:"adjustments"`
	} `yaml:"presets"`
}

// Load reads user presets from YAML and adds them to r. Fields left out of a
// preset keep their identity value:
//
//	presets:
//	  moody:
//	    description: dark and cold
//	    adjustments:
//	      brightness: 85
//	      hueRotate: 20
//
// It returns the number of presets added.
func (r *PresetRegistry) Load(rd io.Reader) (int, error) {
	var f presetFile
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode presets: %w", err)
	}
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	loaded := make([]Preset, 0, len(names))
	for _, name := range names {
		entry := f.Presets[name]
		adj, err := DecodeAdjustments(&entry.Adjustments)
		if err != nil {
			return 0, fmt.Errorf("preset %q: %w", name, err)
		}
		loaded = append(loaded, Preset{Name: name, Description: entry.Description, Adjustments: adj})
	}
	for _, p := range loaded {
		r.Add(p)
	}
	return len(loaded), nil
}

// DecodeAdjustments decodes a YAML mapping over DefaultAdjustments, so absent
// keys keep their identity value. A nil or empty node yields the defaults.
func DecodeAdjustments(node *yaml.Node) (Adjustments, error) {
	return DecodeAdjustmentsOnto(DefaultAdjustments(), node)
}

// DecodeAdjustmentsOnto decodes node over base. Keys that name no adjustment
// are rejected.
func DecodeAdjustmentsOnto(base Adjustments, node *yaml.Node) (Adjustments, error) {
	if node == nil || node.Kind == 0 {
		return base, nil
	}
	// KnownFields only exists on Decoder
	raw, err := yaml.Marshal(node)
	if err != nil {
		return base, fmt.Errorf("decode adjustments: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	out := base
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode adjustments: %w", err)
	}
	return out, nil
}
