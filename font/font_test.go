package font

import (
	"math"
	"testing"
)

// TestLookup tests standard font lookup
func TestLookup(t *testing.T) {
	tests := []struct {
		baseFont   string
		isStandard bool
	}{
		{"Helvetica", true},
		{"Helvetica-Bold", true},
		{"Times-Roman", true},
		{"Courier", true},
		{"Arial", false},
		{"CustomFont", false},
	}

	for _, tt := range tests {
		t.Run(tt.baseFont, func(t *testing.T) {
			f, err := Lookup(tt.baseFont)
			if (err == nil) != tt.isStandard {
				t.Fatalf("Lookup(%s) error = %v, want standard=%v", tt.baseFont, err, tt.isStandard)
			}
			if err == nil && f.BaseFont != tt.baseFont {
				t.Errorf("expected base font %s, got %s", tt.baseFont, f.BaseFont)
			}
		})
	}
}

// TestGetWidth tests character width retrieval
func TestGetWidth(t *testing.T) {
	f, err := Lookup("Helvetica")
	if err != nil {
		t.Fatal(err)
	}

	if width := f.GetWidth('A'); width != 667 {
		t.Errorf("expected width 667 for 'A', got %f", width)
	}
	if width := f.GetWidth(' '); width != 278 {
		t.Errorf("expected width 278 for space, got %f", width)
	}
	if width := f.GetWidth('•'); width != 350 {
		t.Errorf("expected width 350 for bullet, got %f", width)
	}
	// Unknown runes fall back to 500
	if width := f.GetWidth('€'); width != 500 {
		t.Errorf("expected fallback width 500, got %f", width)
	}
}

// TestGetStringWidth tests string width calculation
func TestGetStringWidth(t *testing.T) {
	f, _ := Lookup("Helvetica")

	width := f.GetStringWidth("Hi")

	// H=722, i=222
	expected := 722.0 + 222.0
	if width != expected {
		t.Errorf("expected width %f for 'Hi', got %f", expected, width)
	}
}

// TestBoldIsWider tests that the bold table is complete for ASCII
func TestBoldIsWider(t *testing.T) {
	regular, _ := Lookup("Helvetica")
	bold, _ := Lookup("Helvetica-Bold")

	for r := rune(32); r <= 126; r++ {
		if _, ok := bold.widths[r]; !ok {
			t.Errorf("Helvetica-Bold has no width for %q", r)
		}
	}

	text := "Technical Skills"
	if bold.GetStringWidth(text) <= regular.GetStringWidth(text) {
		t.Errorf("expected bold text to be wider than regular text")
	}
}

// TestCourierMonospaced tests Courier monospaced widths
func TestCourierMonospaced(t *testing.T) {
	f, _ := Lookup("Courier")
	for _, r := range "iW .•" {
		if w := f.GetWidth(r); w != 600 {
			t.Errorf("expected width 600 for %q, got %f", r, w)
		}
	}
}

func TestFaceBaseFont(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{Face{Family: "Helvetica"}, "Helvetica"},
		{Face{Family: "Helvetica", Bold: true}, "Helvetica-Bold"},
		{Face{Family: "Helvetica", Italic: true}, "Helvetica-Oblique"},
		{Face{Family: "helvetica", Bold: true, Italic: true}, "Helvetica-BoldOblique"},
		{Face{Family: "Times"}, "Times-Roman"},
		{Face{Family: "Times", Bold: true}, "Times-Bold"},
		{Face{Family: "Times", Italic: true}, "Times-Italic"},
		{Face{Family: "Times", Bold: true, Italic: true}, "Times-BoldItalic"},
		{Face{Family: "Courier", Italic: true}, "Courier-Oblique"},
		{Face{}, "Helvetica"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.face.BaseFont(); got != tt.want {
				t.Errorf("BaseFont() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFaceStyle(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{Face{}, ""},
		{Face{Bold: true}, "B"},
		{Face{Italic: true}, "I"},
		{Face{Bold: true, Italic: true}, "BI"},
	}

	for _, tt := range tests {
		if got := tt.face.Style(); got != tt.want {
			t.Errorf("Style() = %q, want %q", got, tt.want)
		}
	}
}

func TestFaceWidth(t *testing.T) {
	face := Face{Family: "Helvetica", Size: 10}

	// H=722, i=222 at 10pt
	if got := face.Width("Hi"); math.Abs(got-9.44) > 1e-9 {
		t.Errorf("Width(Hi) = %v, want 9.44", got)
	}
	if got := face.Width(""); got != 0 {
		t.Errorf("Width(\"\") = %v, want 0", got)
	}
}

func TestFaceValidate(t *testing.T) {
	if err := (Face{Family: "Times", Size: 11}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (Face{Family: "Comic Sans", Size: 11}).Validate(); err == nil {
		t.Error("expected error for non-standard family")
	}
	if err := (Face{Family: "Helvetica"}).Validate(); err == nil {
		t.Error("expected error for zero size")
	}
}

// TestItalicWidths checks that italic Times faces use their own metrics
func TestItalicWidths(t *testing.T) {
	tests := []struct {
		baseFont string
		r        rune
		want     float64
	}{
		{"Times-Roman", 'A', 722},
		{"Times-Italic", 'A', 611},
		{"Times-Italic", 'f', 278},
		{"Times-Italic", '—', 889},
		{"Times-BoldItalic", 'H', 778},
		{"Times-BoldItalic", 'ü', 556},
		{"Helvetica-Oblique", 'A', 667},
		{"Courier-BoldOblique", 'W', 600},
	}

	for _, tt := range tests {
		f, err := Lookup(tt.baseFont)
		if err != nil {
			t.Fatal(err)
		}
		if got := f.GetWidth(tt.r); got != tt.want {
			t.Errorf("%s width of %q = %v, want %v", tt.baseFont, tt.r, got, tt.want)
		}
	}

	upright := Face{Family: "Times", Size: 10}
	italic := Face{Family: "Times", Italic: true, Size: 10}
	if upright.Width("Final Year") == italic.Width("Final Year") {
		t.Error("Times italic measured with upright widths")
	}
}
