package layout

import (
	"github.com/tsawler/vitae/font"
	"github.com/tsawler/vitae/model"
)

// DefaultBullet is the glyph drawn in front of list items.
const DefaultBullet = "•"

// List is a bulleted list. Each item is a paragraph indented by Indent;
// the bullet is drawn in the indent on the item's first baseline.
type List struct {
	Items  []string // inline markup, one entry per item
	Style  model.TextStyle
	Bullet string  // defaults to DefaultBullet
	Indent float64 // distance from the list edge to the item text
	Gap    float64 // extra space between items
}

func (l *List) item(text string) *Paragraph {
	style := l.Style
	style.LeftIndent += l.Indent
	style.SpaceBefore = 0
	return NewParagraph(text, style)
}

// Measure returns the summed item heights plus the gaps between them. The
// style's SpaceBefore is added once, above the first item.
func (l *List) Measure(maxWidth float64) (float64, error) {
	total := 0.0
	for i, text := range l.Items {
		h, err := l.item(text).Measure(maxWidth)
		if err != nil {
			return 0, err
		}
		total += h
		if i > 0 {
			total += l.Gap
		}
	}
	if total > 0 {
		total += l.Style.SpaceBefore
	}
	return total, nil
}

// Draw renders the items top to bottom inside the box whose bottom-left
// corner is (x, y).
func (l *List) Draw(s Surface, x, y, maxWidth float64) error {
	h, err := l.Measure(maxWidth)
	if err != nil {
		return err
	}
	bullet := l.Bullet
	if bullet == "" {
		bullet = DefaultBullet
	}
	face := font.Face{Family: l.Style.Family, Size: l.Style.Size * 0.9}

	top := y + h - l.Style.SpaceBefore
	for i, text := range l.Items {
		if i > 0 {
			top -= l.Gap
		}
		p := l.item(text)
		ih, err := p.Measure(maxWidth)
		if err != nil {
			return err
		}
		if err := p.Draw(s, x, top-ih, maxWidth); err != nil {
			return err
		}
		if ih > 0 {
			if err := s.Text(x+l.Style.LeftIndent, top-l.Style.Size, bullet, face, l.Style.Color); err != nil {
				return err
			}
		}
		top -= ih
	}
	return nil
}

// Rule is a horizontal line across the full width. It takes no vertical
// space; the line is drawn at the cursor.
type Rule struct {
	Thickness float64
	Color     model.Color
}

// Measure always returns zero.
func (r *Rule) Measure(maxWidth float64) (float64, error) {
	return 0, nil
}

// Draw strokes the rule at height y.
func (r *Rule) Draw(s Surface, x, y, maxWidth float64) error {
	s.Line(x, y, x+maxWidth, y, r.Thickness, r.Color)
	return nil
}

// Spacer is empty vertical space.
type Spacer struct {
	Height float64
}

// Measure returns the spacer height.
func (sp *Spacer) Measure(maxWidth float64) (float64, error) {
	return sp.Height, nil
}

// Draw does nothing.
func (sp *Spacer) Draw(s Surface, x, y, maxWidth float64) error {
	return nil
}
