package dsv

import (
	"github.com/shapestone/shape-dsv/internal/machine"
)

// Typed is a DSV parser bound to a concrete sink type at compile time.
//
// Because the sink type is a type parameter, callback dispatch is static
// when S is a concrete type, which matters when the parser is embedded in
// a hot loop. When the sink is only known at runtime, use Parser instead.
//
// The promoted operations are:
//
//	FeedCharacter(c rune)            // push one character
//	FeedString(s string)             // push each rune of a string
//	Finish()                         // flush an in-progress record
//	Close() error                    // Finish, defer-friendly
//	Reset()                          // abandon state, notify sink
//	Parse(r io.RuneReader) error     // pull until EOF, no Finish
//	ParseAndFinish(r io.RuneReader) error
//	Sink() S                         // the bound sink
//	Separator() rune
//	Escape() rune
//	InRecord() bool
//
// Typed values must not be copied after first use.
type Typed[S Sink] struct {
	machine.Machine[S]
}

// NewTyped returns a statically dispatched parser in the initial state.
//
// Example:
//
//	sink := &dsv.RecordSink{}
//	p := dsv.NewTyped(sink, dsv.DefaultOptions())
//	if err := p.ParseAndFinish(strings.NewReader("root:x:0\n")); err != nil {
//	    // handle supply error
//	}
//	records := sink.Records()
func NewTyped[S Sink](sink S, opts Options) *Typed[S] {
	return &Typed[S]{
		Machine: machine.New(opts.Separator, opts.Escape, sink),
	}
}

// Parser is a DSV parser whose sink is selected at runtime through the
// Sink interface. It supports the same operations as Typed.
type Parser struct {
	Typed[Sink]
}

// NewParser returns a parser with the Unix DSV configuration
// (':' separator, '\' escape) driving the given sink.
func NewParser(sink Sink) *Parser {
	return NewParserWithOptions(sink, DefaultOptions())
}

// NewParserWithOptions returns a parser with a custom separator and
// escape character.
//
// The configuration is deliberately not validated here: the transition
// rules resolve any combination deterministically (see FeedCharacter).
// Call opts.Validate first to reject degenerate configurations such as a
// separator equal to the escape character.
func NewParserWithOptions(sink Sink, opts Options) *Parser {
	return &Parser{
		Typed: Typed[Sink]{
			Machine: machine.New(opts.Separator, opts.Escape, sink),
		},
	}
}
