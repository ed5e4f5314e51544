package stdimg

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func makeSolidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	return NewSolidNRGBA(w, h, c)
}

// saveTestOutput writes img under the test's name when PIXELFORGE_SAVE_TEST_OUTPUT=1.
func saveTestOutput(t *testing.T, img image.Image) {
	t.Helper()
	if os.Getenv("PIXELFORGE_SAVE_TEST_OUTPUT") != "1" {
		return
	}
	f, err := os.Create(filepath.Join(os.TempDir(), t.Name()+".png"))
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
