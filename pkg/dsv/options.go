package dsv

import (
	"unicode/utf8"
)

// Options configures a DSV parser or renderer.
type Options struct {
	// Separator is the field delimiter. Default: ':'
	Separator rune

	// Escape is the character making the next character literal,
	// including separators, newlines, and the escape character itself.
	// Default: '\\'
	Escape rune
}

// DefaultOptions returns the Unix DSV configuration: ':' as the field
// separator and '\' as the escape character, as used by /etc/passwd and
// friends.
func DefaultOptions() Options {
	return Options{
		Separator: ':',
		Escape:    '\\',
	}
}

// validChar reports whether r can serve as a separator or escape
// character. Newline is excluded because it is the fixed record
// terminator.
func validChar(r rune) bool {
	return r != 0 && r != '\n' && r != '\r' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks the options for degenerate configurations.
//
// The parser core accepts any configuration and resolves conflicts by
// its transition order, so validation is opt-in and belongs to callers
// constructing parsers from untrusted configuration (for example,
// user-supplied dialect files).
func (o Options) Validate() error {
	if !validChar(o.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid separator character"}
	}
	if !validChar(o.Escape) {
		return &OptionsError{Field: "Escape", Message: "invalid escape character"}
	}
	if o.Separator == o.Escape {
		return &OptionsError{Field: "Escape", Message: "escape character same as separator"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "dsv: invalid " + e.Field + ": " + e.Message
}
