package vitae

import "time"

// options holds configuration for Generate.
type options struct {
	theme  string
	output string // overrides Resume.Output when set

	// created fixes the document dates; zero means now.
	created time.Time
}

// defaultOptions returns the default generation options.
func defaultOptions() options {
	return options{
		theme: DefaultTheme,
	}
}

// Option configures Generate.
type Option func(*options)

// WithTheme selects a built-in theme by name.
func WithTheme(name string) Option {
	return func(o *options) {
		o.theme = name
	}
}

// WithOutput writes the PDF to path instead of the resume's output path.
func WithOutput(path string) Option {
	return func(o *options) {
		o.output = path
	}
}

// WithCreationDate fixes the creation and modification dates recorded in
// the document, which makes repeated runs produce identical files.
func WithCreationDate(t time.Time) Option {
	return func(o *options) {
		o.created = t
	}
}
