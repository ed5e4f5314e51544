package editor

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func makeSolidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// makeGradientNRGBA has a distinct colour per pixel so geometry errors show up.
func makeGradientNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(1, w-1)),
				G: uint8(y * 255 / max(1, h-1)),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(Options{Rand: rand.New(rand.NewSource(1))})
}

func saveTestOutput(t *testing.T, img image.Image) {
	t.Helper()
	if os.Getenv("PIXELFORGE_SAVE_TEST_OUTPUT") != "1" || img == nil {
		return
	}
	f, err := os.Create(filepath.Join(os.TempDir(), filepath.Base(t.Name())+".png"))
	if err != nil {
		t.Logf("save test output: %v", err)
		return
	}
	defer f.Close()
	_ = png.Encode(f, img)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
