package deck

import "image"

// Slide is one rendered page. Image is only held until the slide is
// written to the document.
type Slide struct {
	StudentID string      `json:"student_id"`
	Name      string      `json:"name"`
	Awards    int         `json:"awards"`
	HasPhoto  bool        `json:"has_photo"`
	Image     image.Image `json:"-"`
}

// Deck records the slides of a document in page order.
type Deck struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Add records s without its image.
func (d *Deck) Add(s Slide) {
	s.Image = nil
	d.Slides = append(d.Slides, s)
}
