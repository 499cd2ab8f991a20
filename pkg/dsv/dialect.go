package dsv

import (
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Dialect is a named separator/escape configuration.
//
// Two dialects ship built in:
//
//	dsv.Unix   // ':' separator, '\' escape (/etc/passwd and friends)
//	dsv.Tabbed // '\t' separator, '\' escape
//
// Additional dialects can be loaded from a YAML file with LoadDialects.
type Dialect struct {
	Name      string
	Separator rune
	Escape    rune
}

// Unix is the classic Unix DSV dialect used by /etc/passwd.
var Unix = Dialect{Name: "unix", Separator: ':', Escape: '\\'}

// Tabbed is a tab-separated dialect with backslash escaping.
var Tabbed = Dialect{Name: "tab", Separator: '\t', Escape: '\\'}

// Options returns the parser options for the dialect.
func (d Dialect) Options() Options {
	return Options{Separator: d.Separator, Escape: d.Escape}
}

// dialectFile is the YAML shape of a dialect definitions file:
//
//	dialects:
//	  - name: passwd
//	    separator: ":"
//	    escape: "\\"
//	  - name: pipes
//	    separator: "|"
//	    escape: "\\"
type dialectFile struct {
	Dialects []dialectEntry `yaml:"dialects"`
}

type dialectEntry struct {
	Name      string `yaml:"name"`
	Separator string `yaml:"separator"`
	Escape    string `yaml:"escape"`
}

// LoadDialects reads dialect definitions from YAML. Each entry must have
// a non-empty name and single-character separator and escape strings,
// and the resulting configuration must pass Options.Validate.
//
// Example:
//
//	file, _ := os.Open("dialects.yaml")
//	defer file.Close()
//	dialects, err := dsv.LoadDialects(file)
func LoadDialects(r io.Reader) ([]Dialect, error) {
	var file dialectFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("dsv: decoding dialect file: %w", err)
	}

	dialects := make([]Dialect, 0, len(file.Dialects))
	for i, entry := range file.Dialects {
		if entry.Name == "" {
			return nil, fmt.Errorf("dsv: dialect %d: missing name", i)
		}
		sep, err := singleRune(entry.Name, "separator", entry.Separator)
		if err != nil {
			return nil, err
		}
		esc, err := singleRune(entry.Name, "escape", entry.Escape)
		if err != nil {
			return nil, err
		}

		d := Dialect{Name: entry.Name, Separator: sep, Escape: esc}
		if err := d.Options().Validate(); err != nil {
			return nil, fmt.Errorf("dsv: dialect %q: %w", entry.Name, err)
		}
		dialects = append(dialects, d)
	}
	return dialects, nil
}

// singleRune decodes a YAML string field that must hold exactly one
// character.
func singleRune(dialect, field, value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if value == "" || size != len(value) || r == utf8.RuneError {
		return 0, fmt.Errorf("dsv: dialect %q: %s must be a single character, got %q",
			dialect, field, value)
	}
	return r, nil
}
