package cli

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand"
	"testing"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/editor"
)

// makeIndexedNRGBA has a left half that is red and a right half that is blue,
// so orientation changes are visible even after JPEG compression.
func makeIndexedNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= w/2 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value []byte // inline when <= 4 bytes
}

// buildEXIFApp1 builds an APP1 segment holding a single big- or little-endian IFD0.
func buildEXIFApp1(order binary.ByteOrder, entries []ifdEntry) []byte {
	var tiff bytes.Buffer
	if order == binary.BigEndian {
		tiff.WriteString("MM")
	} else {
		tiff.WriteString("II")
	}
	binary.Write(&tiff, order, uint16(0x2A))
	binary.Write(&tiff, order, uint32(8))

	dataOff := 8 + 2 + len(entries)*12 + 4
	var extra bytes.Buffer
	binary.Write(&tiff, order, uint16(len(entries)))
	for _, e := range entries {
		binary.Write(&tiff, order, e.tag)
		binary.Write(&tiff, order, e.typ)
		binary.Write(&tiff, order, e.count)
		if len(e.value) <= 4 {
			v := make([]byte, 4)
			copy(v, e.value)
			tiff.Write(v)
		} else {
			binary.Write(&tiff, order, uint32(dataOff+extra.Len()))
			extra.Write(e.value)
		}
	}
	binary.Write(&tiff, order, uint32(0))
	tiff.Write(extra.Bytes())

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	seg := []byte{0xFF, 0xE1, 0, 0}
	binary.BigEndian.PutUint16(seg[2:], uint16(len(payload)+2))
	return append(seg, payload...)
}

func shortValue(order binary.ByteOrder, v uint16) []byte {
	b := make([]byte, 2)
	order.PutUint16(b, v)
	return b
}

// buildJPEGWithEXIF encodes img and splices an EXIF APP1 segment after SOI.
func buildJPEGWithEXIF(t *testing.T, img image.Image, order binary.ByteOrder, entries []ifdEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}
	raw := buf.Bytes()
	out := append([]byte{}, raw[:2]...)
	out = append(out, buildEXIFApp1(order, entries)...)
	return append(out, raw[2:]...)
}

// writeTestImage saves img to path through a Session, the same way render does.
func writeTestImage(t *testing.T, path string, img image.Image, quality int) {
	t.Helper()
	s := editor.NewSession(editor.Options{Rand: rand.New(rand.NewSource(1))})
	if err := s.Load(img); err != nil {
		t.Fatal(err)
	}
	if err := SaveSession(path, s, quality); err != nil {
		t.Fatalf("SaveSession(%s): %v", path, err)
	}
}
