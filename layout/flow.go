package layout

import (
	"errors"
	"fmt"

	"github.com/tsawler/vitae/model"
)

// ErrInvalidWidth is returned when a block is placed into a region whose
// width is not positive.
var ErrInvalidWidth = errors.New("layout width must be positive")

// Block is a self-measuring unit of content.
type Block interface {
	// Measure returns the height the block needs when wrapped to maxWidth.
	// It must not change the block: measuring twice gives the same result.
	Measure(maxWidth float64) (float64, error)

	// Draw renders the block with its bottom-left corner at (x, y).
	Draw(s Surface, x, y, maxWidth float64) error
}

// Place measures b against maxWidth and draws it so that its top edge sits
// at y. It returns the new cursor, y minus the block height.
func Place(s Surface, x, y, maxWidth float64, b Block) (float64, error) {
	if !(maxWidth > 0) {
		return y, fmt.Errorf("%w: got %g", ErrInvalidWidth, maxWidth)
	}
	h, err := b.Measure(maxWidth)
	if err != nil {
		return y, fmt.Errorf("measure: %w", err)
	}
	if err := b.Draw(s, x, y-h, maxWidth); err != nil {
		return y, fmt.Errorf("draw: %w", err)
	}
	return y - h, nil
}

// Column is a vertical strip of the page.
type Column struct {
	X     float64
	Width float64
}

// Right returns the x coordinate of the column's right edge.
func (c Column) Right() float64 {
	return c.X + c.Width
}

// SplitColumns divides area into a left and a right column separated by
// gutter. The left column takes leftRatio of the width left after the gutter.
func SplitColumns(area model.BBox, leftRatio, gutter float64) (Column, Column, error) {
	if !(leftRatio > 0 && leftRatio < 1) {
		return Column{}, Column{}, fmt.Errorf("left column ratio must be between 0 and 1, got %g", leftRatio)
	}
	if !(gutter >= 0) {
		return Column{}, Column{}, fmt.Errorf("column gutter must not be negative, got %g", gutter)
	}
	usable := area.Width - gutter
	if !(usable > 0) {
		return Column{}, Column{}, fmt.Errorf("%w: gutter %g leaves no room in %g", ErrInvalidWidth, gutter, area.Width)
	}
	left := Column{X: area.X, Width: usable * leftRatio}
	right := Column{X: left.Right() + gutter, Width: usable - left.Width}
	return left, right, nil
}

// Entry is a block followed by extra vertical space.
type Entry struct {
	Block Block
	Gap   float64
}

// Flow places entries top-to-bottom in col starting at y0 and returns the
// final cursor: y0 minus the sum of every block height and gap. Nothing
// checks the cursor against the page bottom; content that runs past it is
// drawn anyway.
func Flow(s Surface, col Column, y0 float64, entries []Entry) (float64, error) {
	y := y0
	for i, e := range entries {
		next, err := Place(s, col.X, y, col.Width, e.Block)
		if err != nil {
			return y, fmt.Errorf("entry %d: %w", i, err)
		}
		y = next - e.Gap
	}
	return y, nil
}

// Height returns the vertical space Flow would consume for entries in col,
// without drawing anything.
func Height(col Column, entries []Entry) (float64, error) {
	if !(col.Width > 0) {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidWidth, col.Width)
	}
	total := 0.0
	for i, e := range entries {
		h, err := e.Block.Measure(col.Width)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		total += h + e.Gap
	}
	return total, nil
}

// Stack groups entries into a single block. Its height is the Height of its
// entries, trailing gap included.
type Stack struct {
	Entries []Entry
}

// Measure returns the stacked height of the entries at maxWidth.
func (st *Stack) Measure(maxWidth float64) (float64, error) {
	return Height(Column{Width: maxWidth}, st.Entries)
}

// Draw flows the entries down from the top of the box.
func (st *Stack) Draw(s Surface, x, y, maxWidth float64) error {
	h, err := st.Measure(maxWidth)
	if err != nil {
		return err
	}
	_, err = Flow(s, Column{X: x, Width: maxWidth}, y+h, st.Entries)
	return err
}
