package font

import (
	"fmt"
	"strings"
)

// Font holds the glyph widths of one of the standard 14 PDF fonts.
type Font struct {
	BaseFont string

	// Character width information
	widths map[rune]float64
}

// Standard 14 font names. The oblique Helvetica and all Courier faces have
// the same advance widths as their upright regular forms.
var standardFonts = map[string]map[rune]float64{
	"Helvetica":             helveticaWidths,
	"Helvetica-Bold":        helveticaBoldWidths,
	"Helvetica-Oblique":     helveticaWidths,
	"Helvetica-BoldOblique": helveticaBoldWidths,
	"Times-Roman":           timesWidths,
	"Times-Bold":            timesBoldWidths,
	"Times-Italic":          timesItalicWidths,
	"Times-BoldItalic":      timesBoldItalicWidths,
	"Courier":               courierWidths,
	"Courier-Bold":          courierWidths,
	"Courier-Oblique":       courierWidths,
	"Courier-BoldOblique":   courierWidths,
}

// Lookup returns the metrics of a standard font by its PostScript name.
func Lookup(baseFont string) (*Font, error) {
	widths, ok := standardFonts[baseFont]
	if !ok {
		return nil, fmt.Errorf("font %q is not a standard PDF font", baseFont)
	}
	return &Font{BaseFont: baseFont, widths: widths}, nil
}

// GetWidth returns the width of a character (in 1000ths of em)
func (f *Font) GetWidth(r rune) float64 {
	if w, ok := f.widths[r]; ok {
		return w
	}

	// Default width if not found
	return 500.0
}

// GetStringWidth calculates the total width of a string
func (f *Font) GetStringWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += f.GetWidth(r)
	}
	return total
}

// Face is a font family and variant at a given size.
type Face struct {
	Family string // Helvetica, Times or Courier
	Bold   bool
	Italic bool
	Size   float64
}

// Families lists the font families a Face may use.
var Families = []string{"Helvetica", "Times", "Courier"}

// BaseFont returns the PostScript name of the face, e.g. "Helvetica-BoldOblique".
func (f Face) BaseFont() string {
	family := f.family()
	switch family {
	case "Times":
		switch {
		case f.Bold && f.Italic:
			return "Times-BoldItalic"
		case f.Bold:
			return "Times-Bold"
		case f.Italic:
			return "Times-Italic"
		}
		return "Times-Roman"
	default:
		switch {
		case f.Bold && f.Italic:
			return family + "-BoldOblique"
		case f.Bold:
			return family + "-Bold"
		case f.Italic:
			return family + "-Oblique"
		}
		return family
	}
}

// Style returns the variant as the one- or two-letter style code used by
// PDF writers: "", "B", "I" or "BI".
func (f Face) Style() string {
	var b strings.Builder
	if f.Bold {
		b.WriteByte('B')
	}
	if f.Italic {
		b.WriteByte('I')
	}
	return b.String()
}

// Validate checks that the face names a supported family and a positive size.
func (f Face) Validate() error {
	if _, err := Lookup(f.BaseFont()); err != nil {
		return err
	}
	if !(f.Size > 0) {
		return fmt.Errorf("font size must be positive, got %g", f.Size)
	}
	return nil
}

// Width returns the advance width of s in points.
func (f Face) Width(s string) float64 {
	m, err := Lookup(f.BaseFont())
	if err != nil {
		m = &Font{BaseFont: f.BaseFont(), widths: helveticaWidths}
	}
	return m.GetStringWidth(s) * f.Size / 1000
}

func (f Face) family() string {
	for _, fam := range Families {
		if strings.EqualFold(fam, f.Family) {
			return fam
		}
	}
	if f.Family == "" {
		return "Helvetica"
	}
	return f.Family
}
