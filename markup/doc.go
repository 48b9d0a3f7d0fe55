// Package markup parses the small inline markup language used inside text
// blocks.
//
// Supported tags:
//
//   - <b>, <strong> - bold
//   - <i>, <em> - italic
//   - <link href="...">, <a href="..."> - hyperlink
//   - <br/> - forced line break
//
// Parsing yields a flat list of [Run] values:
//
//	runs, err := markup.Parse(`<b>Languages:</b> Go, Python`)
//
// Markup that cannot be parsed returns an error wrapping [ErrMalformed].
// Helpers such as [Escape], [Link] and [EnsureURL] build markup from plain
// content.
package markup
