package cli

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/editor"
	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/stdimg"
)

// LoadImage decodes the file at path. JPEG files carrying an EXIF orientation
// are rotated upright. It returns the decoded format name ("jpeg", "png",
// "gif", "webp", "bmp" or "tiff").
func LoadImage(path string) (image.Image, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	if format == "jpeg" {
		if o, err := ExtractJPEGOrientation(b); err == nil && o > 1 && o <= 8 {
			img = stdimg.AutoOrient(img, o)
		}
	}
	return img, format, nil
}

// FormatFromPath maps a file extension to an export format name. Unknown
// extensions default to png.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	default:
		return "png"
	}
}

// SaveSession writes the session's latest frame to path through
// Session.Export, using the format FormatFromPath picks. quality applies to
// JPEG only.
func SaveSession(path string, s *editor.Session, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.Export(f, FormatFromPath(path), quality); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

// ImageInfo summarizes an image file for the info command.
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
	EXIF   *Metadata
}

func (i ImageInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Format: %s, Width: %d, Height: %d", strings.ToUpper(i.Format), i.Width, i.Height)
	if m := i.EXIF; m != nil {
		if m.Orientation > 1 {
			fmt.Fprintf(&sb, ", Orientation: %d", m.Orientation)
		}
		if cam := strings.TrimSpace(m.Make + " " + m.Model); cam != "" {
			fmt.Fprintf(&sb, ", Camera: %s", cam)
		}
		if m.DateTime != "" {
			fmt.Fprintf(&sb, ", Taken: %s", m.DateTime)
		}
	}
	return sb.String()
}

// ReadImageInfo reads dimensions and metadata without applying orientation.
func ReadImageInfo(path string) (ImageInfo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ImageInfo{}, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode %s: %w", path, err)
	}
	info := ImageInfo{Path: path, Format: format, Width: cfg.Width, Height: cfg.Height}
	if format == "jpeg" {
		if m, err := ExtractJPEGMetadata(b); err == nil {
			info.EXIF = &m
		}
	}
	return info, nil
}
