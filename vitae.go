// Package vitae renders a one-page, two-column curriculum vitae to PDF.
//
// Basic usage:
//
//	res, err := vitae.DefaultResume()
//	if err != nil {
//	    // handle error
//	}
//	path, err := vitae.Generate(res, vitae.WithTheme("classic"))
//
// Generate measures and places every block in a single top-down pass. A
// header spans the content width; below it two columns are filled
// independently from the same starting height, and a footer is drawn at a
// fixed distance from the bottom margin. Content that runs past the bottom
// of a column is drawn anyway.
package vitae

import (
	"fmt"

	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/render"
)

// Placement reports where Layout put things. The column cursors are left
// as they fell; nothing balances them.
type Placement struct {
	// HeaderBottom is the y at which both columns start.
	HeaderBottom float64

	Left  layout.Column
	Right layout.Column

	LeftEnd  float64
	RightEnd float64

	// FooterTop is the top of the footer text.
	FooterTop float64
}

// Layout draws the whole page for res onto s using theme t.
func Layout(s layout.Surface, res Resume, t Theme) (Placement, error) {
	if err := t.Validate(); err != nil {
		return Placement{}, err
	}
	c := composer{res: res, theme: t}

	area := t.Page.Content()
	full := layout.Column{X: area.X, Width: area.Width}

	y0, err := layout.Flow(s, full, area.Top(), []layout.Entry{
		{Block: c.header(), Gap: t.HeaderGap},
		{Block: rule(t.HeaderRule), Gap: t.HeaderRuleGap},
	})
	if err != nil {
		return Placement{}, fmt.Errorf("header: %w", err)
	}

	left, right, err := layout.SplitColumns(area, t.LeftRatio, t.ColumnGap)
	if err != nil {
		return Placement{}, err
	}
	p := Placement{HeaderBottom: y0, Left: left, Right: right}

	if p.LeftEnd, err = layout.Flow(s, left, y0, c.leftColumn()); err != nil {
		return Placement{}, fmt.Errorf("left column: %w", err)
	}
	if p.RightEnd, err = layout.Flow(s, right, y0, c.rightColumn()); err != nil {
		return Placement{}, fmt.Errorf("right column: %w", err)
	}

	// The footer hangs from the bottom margin whatever the columns did.
	p.FooterTop = t.Page.Margins.Bottom - t.FooterOffset
	if _, err := layout.Flow(s, full, t.Page.Margins.Bottom, []layout.Entry{
		{Block: rule(t.FooterRule), Gap: t.FooterOffset},
		{Block: c.footer()},
	}); err != nil {
		return Placement{}, fmt.Errorf("footer: %w", err)
	}

	return p, nil
}

func rule(r RuleStyle) *layout.Rule {
	return &layout.Rule{Thickness: r.Thickness, Color: r.Color}
}

// Generate lays out res, writes the PDF and returns the path written.
func Generate(res Resume, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := res.Validate(); err != nil {
		return "", err
	}
	t, err := ThemeByName(o.theme)
	if err != nil {
		return "", err
	}
	path := res.Output
	if o.output != "" {
		path = o.output
	}

	pdf, err := render.NewPDF(render.Options{
		Page:     t.Page.Size,
		Compress: true,
		Metadata: render.Metadata{
			Title:        res.Name + " - CV",
			Author:       res.Name,
			Subject:      res.Title,
			Keywords:     keywords(res),
			Creator:      "vitae",
			CreationDate: o.created,
		},
	})
	if err != nil {
		return "", err
	}
	if _, err := Layout(pdf, res, t); err != nil {
		return "", err
	}
	if err := pdf.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// keywords lists the skill categories.
func keywords(res Resume) string {
	cats := make([]string, 0, len(res.Skills))
	for _, g := range res.Skills {
		cats = append(cats, g.Category)
	}
	return joinNonEmpty(", ", cats...)
}

// Must panics if err is non-nil. It is meant for scripts and tests.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

var _ layout.Surface = (*render.PDF)(nil)
