package imagepkg

import "image/color"

// Layout holds slide dimensions and colours. All positions are derived
// from Width and Height.
type Layout struct {
	Width      int
	Height     int
	Background color.NRGBA
	Primary    color.NRGBA
	Secondary  color.NRGBA
	QRText     string
}

func DefaultLayout() Layout {
	return Layout{
		Width:      1920,
		Height:     1080,
		Background: color.NRGBA{A: 0xff},
		Primary:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Secondary:  color.NRGBA{R: 0xad, G: 0xad, B: 0xad, A: 0xff},
	}
}

// LeftMidpoint is the horizontal centre of the text column.
func (l Layout) LeftMidpoint() int {
	return int(float64(l.Width) * 0.29)
}

// RightMidpoint is the horizontal centre of the logo and photo.
func (l Layout) RightMidpoint() int {
	return int(float64(l.Width) * (1 - 0.23))
}

func (l Layout) scaleH(f float64) int {
	return int(float64(l.Height) * f)
}
