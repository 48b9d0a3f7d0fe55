package layout

import (
	"fmt"

	"github.com/tsawler/vitae/markup"
	"github.com/tsawler/vitae/model"
)

// Paragraph is a block of inline markup wrapped to the available width.
// It holds only its source and style; every Measure and Draw parses and
// wraps from scratch, so the block never changes after construction.
type Paragraph struct {
	Text  string
	Style model.TextStyle
}

// NewParagraph creates a paragraph block.
func NewParagraph(text string, style model.TextStyle) *Paragraph {
	return &Paragraph{Text: text, Style: style}
}

// lines parses and wraps the paragraph for maxWidth.
func (p *Paragraph) lines(maxWidth float64) ([]line, error) {
	if !(maxWidth > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidWidth, maxWidth)
	}
	if err := p.Style.Validate(); err != nil {
		return nil, err
	}
	if err := faceFor(p.Style, markup.Run{}).Validate(); err != nil {
		return nil, err
	}
	avail := maxWidth - p.Style.LeftIndent
	if !(avail > 0) {
		return nil, fmt.Errorf("%w: indent %g leaves no room in %g", ErrInvalidWidth, p.Style.LeftIndent, maxWidth)
	}
	runs, err := markup.Parse(p.Text)
	if err != nil {
		return nil, err
	}
	return wrap(runs, p.Style, avail), nil
}

// Measure returns the number of wrapped lines times the leading, plus the
// style's SpaceBefore. A paragraph with no lines measures zero.
func (p *Paragraph) Measure(maxWidth float64) (float64, error) {
	lines, err := p.lines(maxWidth)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, nil
	}
	return p.Style.SpaceBefore + float64(len(lines))*p.Style.EffectiveLeading(), nil
}

// Draw renders the paragraph with its bottom-left corner at (x, y). The
// first baseline sits one font size below the top edge, or below the top
// edge less SpaceBefore; following baselines step down by the leading.
func (p *Paragraph) Draw(s Surface, x, y, maxWidth float64) error {
	lines, err := p.lines(maxWidth)
	if err != nil {
		return err
	}
	leading := p.Style.EffectiveLeading()
	top := y + float64(len(lines))*leading
	left := x + p.Style.LeftIndent
	avail := maxWidth - p.Style.LeftIndent

	for i, ln := range lines {
		baseline := top - p.Style.Size - float64(i)*leading
		last := i == len(lines)-1
		if err := p.drawLine(s, ln, left, baseline, avail, last); err != nil {
			return err
		}
	}
	return nil
}

func (p *Paragraph) drawLine(s Surface, ln line, x, baseline, avail float64, last bool) error {
	slack := avail - ln.width
	if slack < 0 {
		slack = 0
	}

	var extra float64 // added to every inter-word space
	switch p.Style.Alignment {
	case model.AlignCenter:
		x += slack / 2
	case model.AlignRight:
		x += slack
	case model.AlignJustify:
		if !last && !ln.forced {
			if gaps := spaceCount(ln); gaps > 0 {
				extra = slack / float64(gaps)
			}
		}
	}

	for i, w := range ln.words {
		for _, f := range w.frags {
			if err := s.Text(x, baseline, f.text, f.face, p.Style.Color); err != nil {
				return err
			}
			if f.link != "" {
				// Cover descenders below the baseline.
				s.Link(x, baseline-0.25*f.face.Size, f.width, 1.1*f.face.Size, f.link)
			}
			x += f.width
		}
		if i < len(ln.words)-1 {
			x += w.space
			if w.space > 0 {
				x += extra
			}
		}
	}
	return nil
}

// spaceCount returns the number of stretchable spaces between words on ln.
func spaceCount(ln line) int {
	n := 0
	for i := 0; i < len(ln.words)-1; i++ {
		if ln.words[i].space > 0 {
			n++
		}
	}
	return n
}
