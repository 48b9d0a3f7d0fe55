// Package font provides metrics and text encoding for the standard 14 PDF
// fonts.
//
// The standard fonts need no embedding, so a layout engine can measure text
// without opening any font file:
//
//	face := font.Face{Family: "Helvetica", Bold: true, Size: 12}
//	w := face.Width("Projects")   // advance width in points
//	name := face.BaseFont()       // "Helvetica-Bold"
//
// # Character Widths
//
// [Font] exposes per-rune widths in 1000ths of em:
//
//	f, err := font.Lookup("Times-Roman")
//	width := f.GetWidth('A')
//	width = f.GetStringWidth("text")
//
// # Encodings
//
// Standard fonts are drawn with WinAnsiEncoding. [Sanitize] normalizes text
// and removes runes that encoding cannot represent; [EncodeWinAnsi] produces
// the single-byte string a PDF writer expects.
package font
