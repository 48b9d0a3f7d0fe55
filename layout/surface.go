package layout

import (
	"github.com/tsawler/vitae/font"
	"github.com/tsawler/vitae/model"
)

// Surface is the page blocks draw on. Coordinates are PDF user space: the
// origin is the bottom-left corner and y grows upward.
type Surface interface {
	// Text draws s with its baseline starting at (x, y).
	Text(x, y float64, s string, face font.Face, c model.Color) error

	// Line strokes a straight line.
	Line(x1, y1, x2, y2, width float64, c model.Color)

	// Link makes the rectangle with bottom-left corner (x, y) a hyperlink.
	Link(x, y, w, h float64, url string)
}

// TextOp is a recorded Surface.Text call.
type TextOp struct {
	X, Y  float64
	Text  string
	Face  font.Face
	Color model.Color
}

// LineOp is a recorded Surface.Line call.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          model.Color
}

// LinkOp is a recorded Surface.Link call.
type LinkOp struct {
	Rect model.BBox
	URL  string
}

// Recorder is a Surface that remembers every call instead of drawing.
// It is used for dry runs and in tests.
type Recorder struct {
	Texts []TextOp
	Lines []LineOp
	Links []LinkOp
}

// Text records a text operation.
func (r *Recorder) Text(x, y float64, s string, face font.Face, c model.Color) error {
	r.Texts = append(r.Texts, TextOp{X: x, Y: y, Text: s, Face: face, Color: c})
	return nil
}

// Line records a line operation.
func (r *Recorder) Line(x1, y1, x2, y2, width float64, c model.Color) {
	r.Lines = append(r.Lines, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// Link records a link annotation.
func (r *Recorder) Link(x, y, w, h float64, url string) {
	r.Links = append(r.Links, LinkOp{Rect: model.NewBBox(x, y, w, h), URL: url})
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Texts, r.Lines, r.Links = nil, nil, nil
}

// Bounds returns the box enclosing all recorded text baselines and lines.
// The second result is false when nothing was recorded.
func (r *Recorder) Bounds() (model.BBox, bool) {
	var (
		box model.BBox
		ok  bool
	)
	add := func(b model.BBox) {
		if !ok {
			box, ok = b, true
			return
		}
		box = box.Union(b)
	}
	for _, t := range r.Texts {
		add(model.NewBBox(t.X, t.Y, t.Face.Width(t.Text), t.Face.Size))
	}
	for _, l := range r.Lines {
		add(model.NewBBox(min(l.X1, l.X2), min(l.Y1, l.Y2), abs(l.X2-l.X1), abs(l.Y2-l.Y1)))
	}
	return box, ok
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
