package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrMalformed is returned (wrapped) for markup the parser cannot accept.
var ErrMalformed = errors.New("malformed markup")

// Run is a span of text sharing one set of inline attributes.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Link   string // target URL, empty when the run is not a hyperlink

	// Break marks a forced line break; Text is empty for break runs.
	Break bool
}

// sameStyle reports whether two runs can be merged.
func (r Run) sameStyle(o Run) bool {
	return !r.Break && !o.Break && r.Bold == o.Bold && r.Italic == o.Italic && r.Link == o.Link
}

type tagKind int

const (
	tagBold tagKind = iota
	tagItalic
	tagLink
)

var tagKinds = map[string]tagKind{
	"b":      tagBold,
	"strong": tagBold,
	"i":      tagItalic,
	"em":     tagItalic,
	"link":   tagLink,
	"a":      tagLink,
}

type openTag struct {
	name string
	kind tagKind
	href string
}

// Parse splits inline markup into styled runs. The recognized tags are
// <b>/<strong>, <i>/<em>, <link href="...">/<a href="..."> and <br/>.
// Entities are decoded. Unknown tags, unbalanced tags, links without a
// target and nested links are rejected with an error wrapping ErrMalformed.
func Parse(s string) ([]Run, error) {
	z := html.NewTokenizer(strings.NewReader(s))

	var (
		runs  []Run
		stack []openTag
	)

	current := func() Run {
		var r Run
		for _, t := range stack {
			switch t.kind {
			case tagBold:
				r.Bold = true
			case tagItalic:
				r.Italic = true
			case tagLink:
				r.Link = t.href
			}
		}
		return r
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			if len(stack) > 0 {
				return nil, fmt.Errorf("%w: <%s> is never closed", ErrMalformed, stack[len(stack)-1].name)
			}
			return runs, nil

		case html.TextToken:
			text := string(z.Text())
			if text == "" {
				continue
			}
			r := current()
			r.Text = text
			runs = appendRun(runs, r)

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data == "br" {
				runs = append(runs, Run{Break: true})
				continue
			}
			kind, ok := tagKinds[tok.Data]
			if !ok {
				return nil, fmt.Errorf("%w: unknown tag <%s>", ErrMalformed, tok.Data)
			}
			if tt == html.SelfClosingTagToken {
				continue
			}
			open := openTag{name: tok.Data, kind: kind}
			if kind == tagLink {
				for _, t := range stack {
					if t.kind == tagLink {
						return nil, fmt.Errorf("%w: nested <%s>", ErrMalformed, tok.Data)
					}
				}
				open.href = strings.TrimSpace(attr(tok, "href"))
				if open.href == "" {
					return nil, fmt.Errorf("%w: <%s> without href", ErrMalformed, tok.Data)
				}
			}
			stack = append(stack, open)

		case html.EndTagToken:
			tok := z.Token()
			if tok.Data == "br" {
				runs = append(runs, Run{Break: true})
				continue
			}
			if len(stack) == 0 || stack[len(stack)-1].name != tok.Data {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrMalformed, tok.Data)
			}
			stack = stack[:len(stack)-1]

		case html.CommentToken, html.DoctypeToken:
			return nil, fmt.Errorf("%w: comments and doctypes are not allowed", ErrMalformed)
		}
	}
}

func appendRun(runs []Run, r Run) []Run {
	if n := len(runs); n > 0 && runs[n-1].sameStyle(r) {
		runs[n-1].Text += r.Text
		return runs
	}
	return append(runs, r)
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Plain returns the text of runs without markup; breaks become newlines.
func Plain(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Break {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// Escape escapes text so it can be embedded in markup unchanged.
func Escape(s string) string {
	return html.EscapeString(s)
}
