package model

import "fmt"

// PointsPerCm is the number of PDF points in one centimetre.
const PointsPerCm = 72.0 / 2.54

// Cm converts centimetres to points.
func Cm(n float64) float64 {
	return n * PointsPerCm
}

// PageSize is the size of a page in points.
type PageSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// A4 is the ISO A4 page size.
var A4 = PageSize{Width: 595.2756, Height: 841.8898}

// Margins holds the page margins in points.
type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// UniformMargins returns margins of the same size on all four sides.
func UniformMargins(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

// Page describes the single page a document is laid out on.
type Page struct {
	Size    PageSize `yaml:"size"`
	Margins Margins  `yaml:"margins"`
}

// Content returns the area inside the margins.
func (p Page) Content() BBox {
	return BBox{
		X:      p.Margins.Left,
		Y:      p.Margins.Bottom,
		Width:  p.Size.Width - p.Margins.Left - p.Margins.Right,
		Height: p.Size.Height - p.Margins.Top - p.Margins.Bottom,
	}
}

// Validate reports whether the page leaves a usable content area.
func (p Page) Validate() error {
	if !(p.Size.Width > 0 && p.Size.Height > 0) {
		return fmt.Errorf("invalid page size %.2fx%.2f", p.Size.Width, p.Size.Height)
	}
	m := p.Margins
	if !(m.Left >= 0 && m.Right >= 0 && m.Top >= 0 && m.Bottom >= 0) {
		return fmt.Errorf("negative page margin")
	}
	if !p.Content().IsValid() {
		return fmt.Errorf("margins leave no content area on a %.2fx%.2f page", p.Size.Width, p.Size.Height)
	}
	return nil
}
