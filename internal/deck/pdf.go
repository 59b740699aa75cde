package deck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"github.com/disintegration/imaging"
)

var ErrEmptyDeck = errors.New("deck has no slides")

// PDFWriter appends slides to a PDF document as full-bleed pages, one
// point per pixel.
type PDFWriter struct {
	pdf     *fpdf.Fpdf
	quality int
	pages   int
}

func NewPDFWriter(title string, quality int) *PDFWriter {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: 1920, Ht: 1080},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("gradslides", true)
	return &PDFWriter{pdf: pdf, quality: quality}
}

// AddSlide encodes s.Image as JPEG and adds it as a new page.
func (p *PDFWriter) AddSlide(s Slide) error {
	if s.Image == nil {
		return fmt.Errorf("slide %s has no image", s.StudentID)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, s.Image, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return fmt.Errorf("encode slide %s: %w", s.StudentID, err)
	}

	b := s.Image.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	name := fmt.Sprintf("slide-%04d", p.pages)
	opts := fpdf.ImageOptions{ImageType: "JPG"}

	p.pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	p.pdf.RegisterImageOptionsReader(name, opts, &buf)
	p.pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	if err := p.pdf.Error(); err != nil {
		return fmt.Errorf("add slide %s: %w", s.StudentID, err)
	}
	p.pages++
	return nil
}

func (p *PDFWriter) Pages() int {
	return p.pages
}

// Output writes the finished document to w.
func (p *PDFWriter) Output(w io.Writer) error {
	if p.pages == 0 {
		return ErrEmptyDeck
	}
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile writes the finished document to path.
func (p *PDFWriter) WriteFile(path string) error {
	if p.pages == 0 {
		return ErrEmptyDeck
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.Output(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePDF writes every slide of d, which must still carry images, to w.
func WritePDF(w io.Writer, d Deck, quality int) error {
	pw := NewPDFWriter(d.Title, quality)
	for _, s := range d.Slides {
		if err := pw.AddSlide(s); err != nil {
			return err
		}
	}
	return pw.Output(w)
}
