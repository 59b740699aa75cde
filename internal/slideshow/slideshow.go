// Package slideshow runs the graduation deck pipeline: load the roster,
// match photos, render one slide per student and write the PDF.
package slideshow

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/youruser/gradslides/internal/config"
	"github.com/youruser/gradslides/internal/deck"
	imagepkg "github.com/youruser/gradslides/internal/image"
	"github.com/youruser/gradslides/internal/issue"
	"github.com/youruser/gradslides/internal/photos"
	"github.com/youruser/gradslides/internal/roster"
)

// Summary describes a finished run.
type Summary struct {
	Students      int
	Slides        int
	MatchedPhotos int
	Issues        []string
}

// Prepare loads the roster, matches photos and applies the configured
// filter. Matching runs on the full roster, so a filtered-out student's
// photo is not reported as unknown.
func Prepare(cfg config.Config, issues *issue.Log) ([]roster.Student, error) {
	students, err := roster.LoadStudents(cfg.DataFile, issues)
	if err != nil {
		return nil, err
	}
	if err := photos.Match(students, cfg.PhotosDir, cfg.PhotoSubdirs, issues); err != nil {
		return nil, err
	}
	photos.ReportMissing(students, issues)

	return roster.Filter(students, roster.FilterOptions{
		AwardsOnly: cfg.AwardsOnly,
		Statuses:   cfg.Statuses,
	}), nil
}

// NewRenderer loads fonts and the logo and builds the slide renderer.
func NewRenderer(ctx context.Context, cfg config.Config) (*imagepkg.Renderer, error) {
	layout, err := Layout(cfg)
	if err != nil {
		return nil, err
	}
	primary, err := imagepkg.LoadFont(cfg.PrimaryFont)
	if err != nil {
		return nil, fmt.Errorf("primary font: %w", err)
	}
	secondary, err := imagepkg.LoadFont(cfg.SecondaryFont)
	if err != nil {
		return nil, fmt.Errorf("secondary font: %w", err)
	}
	var logo image.Image
	if cfg.LogoPath != "" {
		img, err := imagepkg.LoadImage(ctx, cfg.LogoPath)
		if err != nil {
			return nil, fmt.Errorf("school logo: %w", err)
		}
		logo = img
	}
	cache := imagepkg.NewPhotoCache(cfg.CacheDir, int(float64(layout.Height)*0.9))
	return imagepkg.NewRenderer(layout, primary, secondary, cache, logo)
}

// Layout converts the configured size and colours.
func Layout(cfg config.Config) (imagepkg.Layout, error) {
	l := imagepkg.Layout{Width: cfg.Width, Height: cfg.Height, QRText: cfg.QRText}
	var err error
	if l.Background, err = config.ParseColor(cfg.Background); err != nil {
		return l, err
	}
	if l.Primary, err = config.ParseColor(cfg.PrimaryColor); err != nil {
		return l, err
	}
	if l.Secondary, err = config.ParseColor(cfg.SecondaryColor); err != nil {
		return l, err
	}
	return l, nil
}

// Run executes the whole pipeline. Issues are printed to out and are
// included in the summary even when the run fails.
func Run(ctx context.Context, cfg config.Config, out io.Writer) (sum Summary, err error) {
	if out == nil {
		out = io.Discard
	}
	issues := issue.New(out)
	defer func() {
		sum.Issues = issues.Items()
	}()

	students, err := Prepare(cfg, issues)
	if err != nil {
		return sum, err
	}
	if len(students) == 0 {
		return sum, fmt.Errorf("no students to render: %w", deck.ErrEmptyDeck)
	}
	sum.Students = len(students)

	r, err := NewRenderer(ctx, cfg)
	if err != nil {
		return sum, err
	}

	d := deck.Deck{Title: cfg.Title}
	pw := deck.NewPDFWriter(cfg.Title, cfg.JPEGQuality)
	for _, s := range students {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		img, err := r.RenderSlide(s)
		if err != nil {
			return sum, err
		}
		slide := deck.Slide{
			StudentID: s.StudentID,
			Name:      s.DisplayName(),
			Awards:    len(s.Awards),
			HasPhoto:  s.HasPhoto(),
			Image:     img,
		}
		if err := pw.AddSlide(slide); err != nil {
			return sum, err
		}
		d.Add(slide)
		if s.HasPhoto() {
			sum.MatchedPhotos++
		}
	}
	sum.Slides = pw.Pages()

	if err := pw.WriteFile(cfg.Output); err != nil {
		return sum, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Printf("wrote %d slides to %s, %d issues", sum.Slides, cfg.Output, issues.Len())

	if cfg.Manifest != "" {
		if err := os.WriteFile(cfg.Manifest, []byte(deck.ExportDeckText(d)), 0o644); err != nil {
			return sum, fmt.Errorf("write manifest: %w", err)
		}
	}
	return sum, nil
}
