// Package machine implements the DSV parsing state machine.
//
// DSV (Delimiter-Separated Values) is the classic Unix record format
// described in chapter five of "The Art of Unix Programming": one record
// per line, fields separated by a single delimiter character (commonly
// ':'), and a single escape character (commonly '\') that makes the
// following character literal, including delimiters and newlines. There
// is no quoting mechanism.
//
// The machine consumes one character at a time and drives a caller
// supplied sink through a record/field lifecycle. It owns exactly two
// booleans of state:
//
//   - escaping: set after an unescaped escape character; the next
//     character is delivered verbatim, then the flag clears.
//   - inRecord: set on the first character of a record, cleared when the
//     record terminates.
//
// The grammar is permissive: every character sequence is accepted and
// produces a deterministic callback sequence. Blank lines (a newline
// while not in a record) produce no callbacks at all.
package machine

import (
	"errors"
	"io"
)

// Sink receives parse lifecycle events. Methods are invoked synchronously,
// in stream order, from the feeding goroutine. A sink must not call back
// into the machine that is driving it.
type Sink interface {
	OnRecordStart()
	OnFieldCharacter(c rune)
	OnFieldEnd()
	OnRecordEnd()
	OnReset()
}

// Machine is the DSV state machine, generic over the sink type.
//
// Instantiating with a concrete sink type gives static dispatch on every
// callback; instantiating with an interface type gives runtime dispatch.
// The pkg/dsv facade exposes both forms.
//
// The zero Machine is not usable; construct with New.
type Machine[S Sink] struct {
	sink      S
	separator rune
	escape    rune

	// escaping is true for at most one character: set on an unescaped
	// escape character, cleared by the very next character fed.
	escaping bool

	// inRecord is true from the first content character of a record
	// until the record terminates.
	inRecord bool
}

// New returns a machine in the initial state (not escaping, not in a
// record). The separator and escape characters are fixed for the
// machine's lifetime.
//
// The configuration is not validated: a separator equal to the escape
// character, or to '\n', is accepted and resolved by the transition
// order documented on FeedCharacter. Callers wanting early rejection
// should validate at a higher layer.
func New[S Sink](separator, escape rune, sink S) Machine[S] {
	return Machine[S]{
		sink:      sink,
		separator: separator,
		escape:    escape,
	}
}

// Sink returns the sink the machine was constructed with.
func (m *Machine[S]) Sink() S { return m.sink }

// Separator returns the configured field separator character.
func (m *Machine[S]) Separator() rune { return m.separator }

// Escape returns the configured escape character.
func (m *Machine[S]) Escape() rune { return m.escape }

// InRecord reports whether the machine is mid-record, i.e. whether a
// Finish call would emit OnFieldEnd and OnRecordEnd.
func (m *Machine[S]) InRecord() bool { return m.inRecord }

// FeedCharacter consumes exactly one character, invoking zero or more
// sink callbacks. Transitions are applied in priority order:
//
//  1. If escaping, the character is delivered via OnFieldCharacter
//     regardless of its identity and the flag clears.
//  2. A non-newline character while not in a record starts one:
//     OnRecordStart fires, then the same character continues below.
//  3. A separator closes the current field (OnFieldEnd). An escape
//     character sets the escaping flag silently. A newline closes the
//     field and the record (OnFieldEnd, OnRecordEnd) if in a record,
//     and is a no-op otherwise. Anything else is field content.
//
// A consequence of the branch order in step 3: if the separator and
// escape characters are configured equal, the character acts as a
// separator and escaping is unreachable.
func (m *Machine[S]) FeedCharacter(c rune) {
	if m.escaping {
		m.sink.OnFieldCharacter(c)
		m.escaping = false
		return
	}
	if !m.inRecord && c != '\n' {
		m.inRecord = true
		m.sink.OnRecordStart()
	}
	switch {
	case c == m.separator:
		m.sink.OnFieldEnd()
	case c == m.escape:
		m.escaping = true
	case c == '\n':
		if m.inRecord {
			m.sink.OnFieldEnd()
			m.inRecord = false
			m.sink.OnRecordEnd()
		}
	default:
		m.sink.OnFieldCharacter(c)
	}
}

// FeedString feeds each rune of s in order.
func (m *Machine[S]) FeedString(s string) {
	for _, c := range s {
		m.FeedCharacter(c)
	}
}

// Finish flushes an in-progress record: if the machine is mid-record it
// emits OnFieldEnd then OnRecordEnd and clears all state, including a
// dangling escaping flag (an escape character at end of input is
// silently dropped). Finish is idempotent; calling it while not in a
// record does nothing.
//
// A machine that may hold an unterminated record must be finished before
// being discarded. Close provides the same guarantee in defer-friendly
// form.
func (m *Machine[S]) Finish() {
	if !m.inRecord {
		m.escaping = false
		return
	}
	m.sink.OnFieldEnd()
	m.escaping = false
	m.inRecord = false
	m.sink.OnRecordEnd()
}

// Close finishes the machine. It never fails; the error return satisfies
// io.Closer so the flush can ride on a defer.
func (m *Machine[S]) Close() error {
	m.Finish()
	return nil
}

// Reset abandons any in-progress state without emitting field or record
// end events, then notifies the sink via OnReset. This models "discard
// and start over", distinct from Finish. The machine is reusable
// indefinitely.
func (m *Machine[S]) Reset() {
	m.escaping = false
	m.inRecord = false
	m.sink.OnReset()
}

// Parse feeds characters drawn from r until the supply is exhausted.
// io.EOF is the normal termination signal and is not reported; any other
// reader error is returned unmodified with the machine state intact, so
// a caller can resume with another supply.
//
// Parse does not call Finish: a record left open when the supply runs
// dry stays open. Use ParseAndFinish for the common one-shot case.
func (m *Machine[S]) Parse(r io.RuneReader) error {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		m.FeedCharacter(c)
	}
}

// ParseAndFinish parses the supply to exhaustion, then finishes the
// machine. On a reader error the machine is not finished, mirroring
// Parse's resumability.
func (m *Machine[S]) ParseAndFinish(r io.RuneReader) error {
	if err := m.Parse(r); err != nil {
		return err
	}
	m.Finish()
	return nil
}
