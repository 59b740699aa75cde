package deck

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlide(id string) Slide {
	return Slide{
		StudentID: id,
		Name:      "Student " + id,
		Image:     imaging.New(192, 108, color.NRGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xff}),
	}
}

func TestWritePDF(t *testing.T) {
	d := Deck{Title: "Class of 2026", Slides: []Slide{testSlide("1"), testSlide("2")}}
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, d, 80))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
	assert.Contains(t, out, "/Count 2")
	assert.Contains(t, out, "%%EOF")
}

func TestWritePDFPageSizeMatchesSlide(t *testing.T) {
	wide := testSlide("1")
	small := testSlide("2")
	small.Image = imaging.New(64, 36, color.NRGBA{A: 0xff})

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Deck{Slides: []Slide{wide, small}}, 80))

	// one point per pixel
	boxes := regexp.MustCompile(`/MediaBox \[0 0 ([0-9.]+) ([0-9.]+)\]`).FindAllStringSubmatch(buf.String(), -1)
	var sizes [][2]float64
	for _, m := range boxes {
		w, err := strconv.ParseFloat(m[1], 64)
		require.NoError(t, err)
		h, err := strconv.ParseFloat(m[2], 64)
		require.NoError(t, err)
		sizes = append(sizes, [2]float64{w, h})
	}
	assert.Contains(t, sizes, [2]float64{192, 108})
	assert.Contains(t, sizes, [2]float64{64, 36})
}

func TestPDFWriterEmpty(t *testing.T) {
	pw := NewPDFWriter("empty", 80)
	err := pw.Output(&bytes.Buffer{})
	assert.True(t, errors.Is(err, ErrEmptyDeck))
	assert.True(t, errors.Is(pw.WriteFile(filepath.Join(t.TempDir(), "x.pdf")), ErrEmptyDeck))
}

func TestPDFWriterRejectsMissingImage(t *testing.T) {
	pw := NewPDFWriter("t", 80)
	err := pw.AddSlide(Slide{StudentID: "9"})
	assert.ErrorContains(t, err, "slide 9 has no image")
	assert.Zero(t, pw.Pages())
}

func TestPDFWriterWriteFile(t *testing.T) {
	pw := NewPDFWriter("t", 80)
	require.NoError(t, pw.AddSlide(testSlide("1")))
	assert.Equal(t, 1, pw.Pages())

	path := filepath.Join(t.TempDir(), "slideshow.pdf")
	require.NoError(t, pw.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestExportDeckText(t *testing.T) {
	var d Deck
	d.Title = "Class of 2026"
	d.Add(Slide{StudentID: "1001", Name: "Ada Lovelace", Awards: 2, HasPhoto: true})
	d.Add(testSlide("1002"))

	assert.Nil(t, d.Slides[1].Image)
	want := "# Class of 2026\n" +
		"001 1001 Ada Lovelace (photo, 2 awards)\n" +
		"002 1002 Student 1002 (no photo, 0 awards)\n"
	assert.Equal(t, want, ExportDeckText(d))
}
