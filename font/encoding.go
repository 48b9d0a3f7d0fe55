package font

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Sanitize prepares text for the standard fonts, whose WinAnsiEncoding
// covers only Windows-1252. The text is normalized to NFC so accented
// letters compose into single code points, then every rune the encoding
// cannot represent (emoji, pictographs, CJK) is dropped. Whitespace runs,
// including those left behind by a dropped rune, collapse to one space.
// Leading and trailing space is kept so sanitized runs can be concatenated.
func Sanitize(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' {
			r = ' '
		}
		if !unicode.IsSpace(r) && !Encodable(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if lastSpace {
				continue
			}
			r = ' '
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Encodable reports whether r has a code point in WinAnsiEncoding.
func Encodable(r rune) bool {
	if r < 0x20 {
		return false
	}
	_, ok := charmap.Windows1252.EncodeRune(r)
	return ok
}

// EncodeWinAnsi converts UTF-8 text to the single-byte WinAnsiEncoding used
// by the standard fonts.
func EncodeWinAnsi(s string) (string, error) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("encode %q as WinAnsi: %w", s, err)
	}
	return out, nil
}
