package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LoadFont parses the TrueType/OpenType font at path. An empty path
// selects the bundled Go Regular font.
func LoadFont(path string) (*opentype.Font, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	return f, nil
}

// WrapAwards wraps each award at width characters and joins them one per
// line. Lines break at spaces or after hyphens; a word longer than width
// is cut.
func WrapAwards(awards []string, width int) string {
	wrapped := make([]string, 0, len(awards))
	for _, a := range awards {
		wrapped = append(wrapped, wrapAward(a, width))
	}
	return strings.Join(wrapped, "\n")
}

func wrapAward(s string, width int) string {
	w := wordwrap.NewWriter(width)
	w.Breakpoints = []rune{'-'}
	_, _ = w.Write([]byte(s))
	_ = w.Close()
	return wrap.String(w.String(), width)
}

// textBlock is the measured extent of multi-line text at one font size.
type textBlock struct {
	lines   []string
	widths  []int
	width   int
	height  int
	lineH   int
	ascent  int
	spacing int
	size    int
}

func measure(face font.Face, text string, spacing int) textBlock {
	m := face.Metrics()
	b := textBlock{
		lines:   strings.Split(text, "\n"),
		lineH:   (m.Ascent + m.Descent).Ceil(),
		ascent:  m.Ascent.Ceil(),
		spacing: spacing,
	}
	for _, line := range b.lines {
		w := font.MeasureString(face, line).Ceil()
		b.widths = append(b.widths, w)
		if w > b.width {
			b.width = w
		}
	}
	n := len(b.lines)
	b.height = n*b.lineH + (n-1)*spacing
	return b
}

// fitFace returns the largest face, starting at size start and stepping down
// by one pixel, whose rendering of text is narrower than maxWidth. Size 1
// is returned if nothing fits. The caller closes the face.
func fitFace(f *opentype.Font, text string, start, spacing int, maxWidth float64) (font.Face, textBlock, error) {
	if start < 1 {
		start = 1
	}
	for size := start; ; size-- {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, textBlock{}, fmt.Errorf("font face at size %d: %w", size, err)
		}
		b := measure(face, text, spacing)
		b.size = size
		if float64(b.width) < maxWidth || size <= 1 {
			return face, b, nil
		}
		face.Close()
	}
}

// drawBlock draws b with its top-left corner at (x, y), centring each line
// within the block width.
func drawBlock(dst draw.Image, face font.Face, b textBlock, x, y int, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	for i, line := range b.lines {
		lx := x + (b.width-b.widths[i])/2
		ly := y + i*(b.lineH+b.spacing) + b.ascent
		d.Dot = fixed.P(lx, ly)
		d.DrawString(line)
	}
}
