package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"
)

// Previewer renders images inline in the terminal.
//
// Backend order:
//   - PREVIEW_BACKEND (kitty, inline, sixel, chafa) is tried first when set.
//   - Terminals implementing the iTerm2 OSC 1337 inline protocol (iTerm2,
//     WezTerm, Warp, Tabby, VSCode) get that sequence.
//   - kitty and kitty-compatible terminals (ghostty, Konsole) get the kitty
//     graphics protocol in 4096-byte base64 chunks.
//   - Sixel terminals get the output of img2sixel.
//   - chafa on PATH is the last resort.
type Previewer struct {
	Out    io.Writer
	Debug  bool
	Getenv func(string) string
}

// NewPreviewer returns a Previewer writing to out and reading the process environment.
func NewPreviewer(out io.Writer, debug bool) *Previewer {
	return &Previewer{Out: out, Debug: debug, Getenv: os.Getenv}
}

func (p *Previewer) debugf(format string, args ...any) {
	if p.Debug {
		fmt.Fprintf(os.Stderr, "pixelforge-preview: "+format+"\n", args...)
	}
}

func (p *Previewer) env(key string) string {
	if p.Getenv == nil {
		return os.Getenv(key)
	}
	return p.Getenv(key)
}

func (p *Previewer) isKitty() bool {
	if p.env("KITTY_WINDOW_ID") != "" || p.env("KONSOLE_VERSION") != "" {
		return true
	}
	term := strings.ToLower(p.env("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func (p *Previewer) isInlineCapable() bool {
	switch p.env("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "VSCode", "Tabby", "Bobcat":
		return true
	}
	if p.env("ITERM_SESSION_ID") != "" {
		return true
	}
	term := strings.ToLower(p.env("TERM"))
	return strings.Contains(term, "wezterm") || strings.Contains(term, "tabby") || strings.Contains(term, "vscode")
}

func (p *Previewer) isSixelCapable() bool {
	if p.env("SIXEL_PREVIEW") == "1" || p.env("WT_SESSION") != "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.env("TERM")), "foot")
}

func (p *Previewer) hasChafa() bool {
	if p.env("NO_CHAFA") == "1" {
		return false
	}
	_, err := exec.LookPath("chafa")
	return err == nil
}

// Supported reports whether any backend is likely to work.
func (p *Previewer) Supported() bool {
	return p.isKitty() || p.isInlineCapable() || p.isSixelCapable() || p.hasChafa()
}

// PreviewSize is the terminal cell area an image is drawn into.
type PreviewSize struct {
	Cols        int
	Rows        int
	PixelWidth  int
	PixelHeight int
}

// computePreviewSize fits the image into at most 80×40 cells of 8×16 pixels
// without upscaling, keeping the aspect ratio.
func computePreviewSize(img image.Image) PreviewSize {
	const (
		charW, charH     = 8, 16
		minCols, minRows = 6, 3
		maxCols, maxRows = 80, 40
	)
	w := max(1, img.Bounds().Dx())
	h := max(1, img.Bounds().Dy())
	scale := math.Min(1, math.Min(float64(maxCols*charW)/float64(w), float64(maxRows*charH)/float64(h)))
	cols := int(math.Round(float64(w) * scale / charW))
	rows := int(math.Round(float64(h) * scale / charH))
	cols = max(minCols, min(maxCols, cols))
	rows = max(minRows, min(maxRows, rows))
	return PreviewSize{Cols: cols, Rows: rows, PixelWidth: cols * charW, PixelHeight: rows * charH}
}

// postImageNewlines is the padding emitted after an image so following text
// lands below it.
func postImageNewlines(rows int) int {
	switch {
	case rows <= 0, rows <= 2:
		return 1
	case rows <= 6:
		return 2
	case rows <= 20:
		return 3
	default:
		return 4
	}
}

// Preview encodes img as PNG and draws it with the first backend that works.
func (p *Previewer) Preview(img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	size := computePreviewSize(img)
	blob := buf.Bytes()

	backends := map[string]func([]byte, PreviewSize) error{
		"kitty":  p.sendKitty,
		"inline": p.sendInline,
		"sixel":  p.sendSixel,
		"chafa":  p.sendChafa,
	}
	if v := strings.ToLower(p.env("PREVIEW_BACKEND")); v != "" {
		if v == "iterm" || v == "wezterm" {
			v = "inline"
		}
		if send, ok := backends[v]; ok {
			if err := send(blob, size); err == nil {
				return nil
			} else {
				p.debugf("override %s failed: %v", v, err)
			}
		} else {
			p.debugf("unknown PREVIEW_BACKEND value: %s", v)
		}
	}

	var order []string
	if p.isInlineCapable() {
		order = append(order, "inline")
	}
	if p.isKitty() {
		order = append(order, "kitty")
	}
	if p.isSixelCapable() {
		order = append(order, "sixel")
	}
	if p.hasChafa() {
		order = append(order, "chafa")
	}
	var lastErr error
	for _, name := range order {
		p.debugf("attempting %s", name)
		if lastErr = backends[name](blob, size); lastErr == nil {
			return nil
		}
		p.debugf("%s failed: %v", name, lastErr)
	}
	if lastErr != nil {
		return fmt.Errorf("preview failed: %w", lastErr)
	}
	return fmt.Errorf("no preview protocol matched")
}

func (p *Previewer) newlines(rows int) {
	for i := 0; i < postImageNewlines(rows); i++ {
		fmt.Fprintln(p.Out)
	}
}

// sendKitty transmits PNG bytes with the kitty graphics protocol. Only the
// first chunk carries the control keys; q=2 suppresses terminal replies.
func (p *Previewer) sendKitty(data []byte, size PreviewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096
	for pos := 0; pos < len(enc); pos += chunkSize {
		end := min(pos+chunkSize, len(enc))
		more := "0"
		if end < len(enc) {
			more = "1"
		}
		var seq string
		if pos == 0 {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,c=%d,r=%d,m=%s;%s\x1b\\", size.Cols, size.Rows, more, enc[pos:end])
		} else {
			seq = "\x1b_Gm=" + more + ";" + enc[pos:end] + "\x1b\\"
		}
		if _, err := io.WriteString(p.Out, seq); err != nil {
			return err
		}
	}
	p.newlines(size.Rows)
	return nil
}

// sendInline emits the iTerm2-style OSC 1337 inline file sequence.
func (p *Previewer) sendInline(data []byte, size PreviewSize) error {
	meta := fmt.Sprintf("size=%d;", len(data))
	if size.PixelWidth > 0 && size.PixelHeight > 0 {
		meta += fmt.Sprintf("width=%dpx;height=%dpx;", size.PixelWidth, size.PixelHeight)
	}
	seq := "\x1b]1337;File=name=preview.png;inline=1;" + meta + ":" + base64.StdEncoding.EncodeToString(data) + "\a"
	if _, err := io.WriteString(p.Out, seq); err != nil {
		return err
	}
	p.newlines(0)
	return nil
}

func (p *Previewer) runTool(data []byte, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = p.Out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// sendSixel pipes the PNG through img2sixel.
func (p *Previewer) sendSixel(data []byte, size PreviewSize) error {
	if err := p.runTool(data, "img2sixel", "-"); err != nil {
		return err
	}
	p.newlines(0)
	return nil
}

// sendChafa renders block symbols with chafa. CHAFA_FILL and CHAFA_SYMBOLS
// override the defaults.
func (p *Previewer) sendChafa(data []byte, size PreviewSize) error {
	if p.env("NO_CHAFA") == "1" {
		return fmt.Errorf("chafa usage disabled via NO_CHAFA=1")
	}
	fill, symbols := "block", "block"
	if v := p.env("CHAFA_FILL"); v != "" {
		fill = v
	}
	if v := p.env("CHAFA_SYMBOLS"); v != "" {
		symbols = v
	}
	args := []string{"--fill=" + fill, "--symbols=" + symbols, "-s", fmt.Sprintf("%dx%d", size.Cols, size.Rows), "-"}
	if err := p.runTool(data, "chafa", args...); err != nil {
		return err
	}
	p.newlines(size.Rows)
	return nil
}
