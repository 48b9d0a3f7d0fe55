package layout

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/tsawler/vitae/font"
	"github.com/tsawler/vitae/markup"
	"github.com/tsawler/vitae/model"
)

// fragment is a piece of a word drawn with a single face.
type fragment struct {
	text  string
	face  font.Face
	link  string
	width float64
}

// word is the smallest unit the wrapper never splits unless it is wider
// than a whole line. A word may span runs, e.g. "<b>Go</b>lang".
type word struct {
	frags []fragment
	width float64

	// space is the width of the whitespace that followed the word in the
	// source; zero when the next word is glued to it.
	space float64
}

func (w *word) add(f fragment) {
	if n := len(w.frags); n > 0 && w.frags[n-1].face == f.face && w.frags[n-1].link == f.link {
		w.frags[n-1].text += f.text
		w.frags[n-1].width += f.width
	} else {
		w.frags = append(w.frags, f)
	}
	w.width += f.width
}

// line is one wrapped output line.
type line struct {
	words []word
	width float64 // natural width, excluding trailing space

	// forced is set when the line ends at an explicit <br/>.
	forced bool
}

func faceFor(style model.TextStyle, r markup.Run) font.Face {
	return font.Face{
		Family: style.Family,
		Bold:   style.Bold || r.Bold,
		Italic: style.Italic || r.Italic,
		Size:   style.Size,
	}
}

// words converts runs into words. Break opportunities come from the Unicode
// line breaking algorithm; a run boundary without whitespace is not a break
// opportunity. A nil word in the result marks a forced line break.
func words(runs []markup.Run, style model.TextStyle) []*word {
	var (
		out          []*word
		cur          *word
		atStart      = true
		lastWasSpace bool
	)

	flush := func(space float64) {
		if cur != nil && len(cur.frags) > 0 {
			cur.space = space
			out = append(out, cur)
		}
		cur = nil
	}

	for _, r := range runs {
		if r.Break {
			flush(0)
			out = append(out, nil)
			atStart = true
			continue
		}

		text := font.Sanitize(r.Text)
		if atStart || lastWasSpace {
			text = strings.TrimLeft(text, " ")
		}
		if text == "" {
			continue
		}
		face := faceFor(style, r)

		state := -1
		for len(text) > 0 {
			var segment string
			segment, text, _, state = uniseg.FirstLineSegmentInString(text, state)

			body := strings.TrimRight(segment, " ")
			trailing := len(segment) > len(body)

			if body != "" {
				if cur == nil {
					cur = &word{}
				}
				cur.add(fragment{text: body, face: face, link: r.Link, width: face.Width(body)})
				atStart = false
			}

			switch {
			case trailing:
				flush(face.Width(" "))
				lastWasSpace = true
			case len(text) > 0:
				// Break opportunity inside the run, e.g. after a hyphen.
				flush(0)
				lastWasSpace = false
			default:
				lastWasSpace = false
			}
		}
	}
	flush(0)
	return out
}

// wrap breaks runs into lines no wider than width.
func wrap(runs []markup.Run, style model.TextStyle, width float64) []line {
	var (
		lines []line
		cur   line
		// pending is the space owed before the next word on the current line.
		pending float64
	)

	newLine := func(forced bool) {
		cur.forced = forced
		lines = append(lines, cur)
		cur = line{}
		pending = 0
	}

	for _, w := range words(runs, style) {
		if w == nil {
			newLine(true)
			continue
		}

		if len(cur.words) > 0 && cur.width+pending+w.width > width+epsilon {
			newLine(false)
		}

		if len(cur.words) == 0 && w.width > width+epsilon {
			pieces := splitWord(*w, width)
			for i, p := range pieces {
				if i > 0 {
					newLine(false)
				}
				cur.words = append(cur.words, p)
				cur.width = p.width
			}
			pending = w.space
			continue
		}

		cur.width += pending + w.width
		cur.words = append(cur.words, *w)
		pending = w.space
	}

	if len(cur.words) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

const epsilon = 1e-6

// splitWord breaks a word wider than width at grapheme cluster boundaries.
// Every piece holds at least one cluster, so a single glyph wider than the
// line still makes progress.
func splitWord(w word, width float64) []word {
	var (
		pieces []word
		cur    word
	)
	for _, f := range w.frags {
		g := uniseg.NewGraphemes(f.text)
		for g.Next() {
			cluster := g.Str()
			cw := f.face.Width(cluster)
			if len(cur.frags) > 0 && cur.width+cw > width+epsilon {
				pieces = append(pieces, cur)
				cur = word{}
			}
			cur.add(fragment{text: cluster, face: f.face, link: f.link, width: cw})
		}
	}
	if len(cur.frags) > 0 {
		cur.space = w.space
		pieces = append(pieces, cur)
	}
	return pieces
}
