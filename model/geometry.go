package model

import "math"

// BBox is a rectangle anchored at its bottom-left corner.
type BBox struct {
	X, Y          float64
	Width, Height float64
}

// NewBBox returns the box with bottom-left corner (x, y).
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x of the right edge.
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the y of the top edge.
func (b BBox) Top() float64 { return b.Y + b.Height }

// Intersects reports whether b and o share any point. Boxes that only touch
// along an edge intersect.
func (b BBox) Intersects(o BBox) bool {
	return b.X <= o.Right() && o.X <= b.Right() &&
		b.Y <= o.Top() && o.Y <= b.Top()
}

// Union returns the smallest box enclosing b and o.
func (b BBox) Union(o BBox) BBox {
	x, y := math.Min(b.X, o.X), math.Min(b.Y, o.Y)
	return BBox{
		X:      x,
		Y:      y,
		Width:  math.Max(b.Right(), o.Right()) - x,
		Height: math.Max(b.Top(), o.Top()) - y,
	}
}

// IsValid reports whether the box has a positive width and height. NaN
// dimensions are not valid.
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}
