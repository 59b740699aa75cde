package imagepkg

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/youruser/gradslides/internal/roster"
)

const (
	smallLogoScale = 0.20
	largeLogoScale = 0.60
	smallLogoTop   = 60

	// more awards than this switch to the compact text style
	compactAwards = 5
)

// Renderer draws one slide per student on top of a shared base template.
type Renderer struct {
	Layout Layout

	primary   *opentype.Font
	secondary *opentype.Font
	cache     *PhotoCache
	base      *image.NRGBA
}

// NewRenderer builds the base template from logo, which may be nil.
func NewRenderer(layout Layout, primary, secondary *opentype.Font, cache *PhotoCache, logo image.Image) (*Renderer, error) {
	base, err := DrawBase(layout, logo)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		Layout:    layout,
		primary:   primary,
		secondary: secondary,
		cache:     cache,
		base:      base,
	}, nil
}

// Base returns a copy of the base template.
func (r *Renderer) Base() *image.NRGBA {
	return imaging.Clone(r.base)
}

func scaled(img image.Image, f float64) *image.NRGBA {
	w := int(float64(img.Bounds().Dx()) * f)
	h := int(float64(img.Bounds().Dy()) * f)
	return imaging.Resize(img, max(w, 1), max(h, 1), imaging.Lanczos)
}

// DrawBase creates the background shared by every slide: a small logo above
// the text column and a large logo behind the photo area.
func DrawBase(l Layout, logo image.Image) (*image.NRGBA, error) {
	bg := imaging.New(l.Width, l.Height, l.Background)

	if logo != nil {
		small := scaled(logo, smallLogoScale)
		left := l.LeftMidpoint() - small.Bounds().Dx()/2
		bg = imaging.Overlay(bg, small, image.Pt(left, smallLogoTop), 1.0)

		large := scaled(logo, largeLogoScale)
		left = l.RightMidpoint() - large.Bounds().Dx()/2
		top := l.Height/2 - large.Bounds().Dy()/2
		bg = imaging.Overlay(bg, large, image.Pt(left, top), 1.0)
	}

	if l.QRText != "" {
		size := l.scaleH(0.12)
		qr, err := GenerateQRImage(l.QRText, size)
		if err != nil {
			return nil, fmt.Errorf("branding qr: %w", err)
		}
		margin := l.scaleH(0.04)
		bg = imaging.Paste(bg, qr, image.Pt(margin, l.Height-margin-qr.Bounds().Dy()))
	}
	return bg, nil
}

// AddName draws the student's name centred on the text column, higher up
// when awards follow it.
func (r *Renderer) AddName(slide *image.NRGBA, name string, hasAwards bool) error {
	face, b, at, err := r.nameBlock(name, hasAwards)
	if err != nil {
		return err
	}
	defer face.Close()
	drawBlock(slide, face, b, at.X, at.Y, r.Layout.Primary)
	return nil
}

// nameBlock fits the name to half the slide width and returns the top-left
// corner of its block.
func (r *Renderer) nameBlock(name string, hasAwards bool) (font.Face, textBlock, image.Point, error) {
	l := r.Layout
	face, b, err := fitFace(r.primary, name, l.scaleH(0.13), 0, float64(l.Width)*0.5)
	if err != nil {
		return nil, textBlock{}, image.Point{}, err
	}
	yFrac := 0.45
	if hasAwards {
		yFrac = 0.30
	}
	at := image.Pt(l.LeftMidpoint()-b.width/2, int(float64(l.Height)*yFrac-float64(b.height/2)))
	return face, b, at, nil
}

// AddAchievements draws the awards as a centred block below the name.
func (r *Renderer) AddAchievements(slide *image.NRGBA, awards []string) error {
	if len(awards) == 0 {
		return nil
	}
	face, b, at, err := r.awardsBlock(awards)
	if err != nil {
		return err
	}
	defer face.Close()
	drawBlock(slide, face, b, at.X, at.Y, r.Layout.Secondary)
	return nil
}

// awardsStyle returns the starting font size and wrap width for n awards.
func (l Layout) awardsStyle(n int) (start, wrap int) {
	if n > compactAwards {
		return l.scaleH(0.05), 60
	}
	return l.scaleH(0.10), 40
}

func (r *Renderer) awardsBlock(awards []string) (font.Face, textBlock, image.Point, error) {
	l := r.Layout
	start, wrap := l.awardsStyle(len(awards))
	text := WrapAwards(awards, wrap)

	face, b, err := fitFace(r.secondary, text, start, l.scaleH(0.03), float64(l.Width)*0.45)
	if err != nil {
		return nil, textBlock{}, image.Point{}, err
	}
	at := image.Pt(l.LeftMidpoint()-b.width/2, l.scaleH(0.6)-b.height/2)
	return face, b, at, nil
}

// AddImage places the cached, resized photo centred on the right half.
func (r *Renderer) AddImage(slide *image.NRGBA, path string) (*image.NRGBA, error) {
	photo, err := r.cache.Load(path)
	if err != nil {
		return nil, err
	}
	left := r.Layout.RightMidpoint() - photo.Bounds().Dx()/2
	top := r.Layout.Height/2 - photo.Bounds().Dy()/2
	return imaging.Paste(slide, photo, image.Pt(left, top)), nil
}

// RenderSlide composes the full slide for s.
func (r *Renderer) RenderSlide(s roster.Student) (*image.NRGBA, error) {
	slide := r.Base()
	if err := r.AddName(slide, s.DisplayName(), s.HasAwards()); err != nil {
		return nil, fmt.Errorf("student %s: name: %w", s.StudentID, err)
	}
	if err := r.AddAchievements(slide, s.Awards); err != nil {
		return nil, fmt.Errorf("student %s: awards: %w", s.StudentID, err)
	}
	if s.HasPhoto() {
		var err error
		slide, err = r.AddImage(slide, s.ImageFile)
		if err != nil {
			return nil, fmt.Errorf("student %s: photo: %w", s.StudentID, err)
		}
	}
	return slide, nil
}
