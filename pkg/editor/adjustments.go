package editor

import "math"

// Adjustments is the flat record of tonal parameters. Percentage fields use
// 100 as identity; amount fields use 0. Values are never rejected: each stage
// clamps what it reads.
type Adjustments struct {
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Saturation float64 `yaml:"saturation"`
	Grayscale  float64 `yaml:"grayscale"`
	Sepia      float64 `yaml:"sepia"`
	HueRotate  float64 `yaml:"hueRotate"`
	Blur       float64 `yaml:"blur"`
	Invert     float64 `yaml:"invert"`
	Exposure   float64 `yaml:"exposure"`
	Gamma      float64 `yaml:"gamma"`
	Vignette   float64 `yaml:"vignette"`
	Noise      float64 `yaml:"noise"`
	Grain      float64 `yaml:"grain"`

	// reserved, not rendered
	PerspectiveH float64 `yaml:"perspectiveH"`
	PerspectiveV float64 `yaml:"perspectiveV"`

	DuotoneEnabled bool   `yaml:"duotoneEnabled"`
	DuotoneLight   string `yaml:"duotoneLight"`
	DuotoneDark    string `yaml:"duotoneDark"`
}

// DefaultAdjustments returns the identity record.
func DefaultAdjustments() Adjustments {
	return Adjustments{
		Brightness:   100,
		Contrast:     100,
		Saturation:   100,
		Gamma:        100,
		DuotoneLight: "#ffffff",
		DuotoneDark:  "#000000",
	}
}

// IsIdentity reports whether rendering a with no other edits reproduces the source.
func (a Adjustments) IsIdentity() bool {
	d := DefaultAdjustments()
	return !a.DuotoneEnabled &&
		a.Brightness == d.Brightness && a.Contrast == d.Contrast &&
		a.Saturation == d.Saturation && a.Gamma == d.Gamma &&
		percentAmount(a.Grayscale) == 0 && percentAmount(a.Sepia) == 0 &&
		percentAmount(a.Invert) == 0 && math.Mod(a.HueRotate, 360) == 0 &&
		blurSigma(a.Blur) == 0 && a.Exposure == 0 &&
		percentAmount(a.Vignette) == 0 && percentAmount(a.Noise) == 0 &&
		percentAmount(a.Grain) == 0
}

// percentAmount maps a 0..100 amount field to 0..1.
func percentAmount(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 100 {
		return 1
	}
	return v / 100
}

// percentFactor maps a percentage field (100 = identity) to a non-negative multiplier.
func percentFactor(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return v / 100
}

func blurSigma(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return v
}

// exposureFactor maps exposure -100..100 to a brightness multiplier 0..2.
func exposureFactor(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	v = math.Max(-100, math.Min(100, v))
	return 1 + v/100
}
