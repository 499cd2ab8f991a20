package dsv

// Sink is the capability set a parse-event consumer implements.
//
// The parser invokes sink methods synchronously, in stream order, from
// the goroutine feeding it characters. The lifecycle for each record is:
//
//	OnRecordStart
//	  { OnFieldCharacter } OnFieldEnd   (once per field)
//	OnRecordEnd
//
// Exactly one OnRecordStart precedes the OnFieldEnd/OnRecordEnd pairs of
// a record, and exactly one OnRecordEnd terminates it. Escaped characters
// are delivered through OnFieldCharacter like any other content; the
// escape character itself is never delivered. OnReset fires only when the
// parser is explicitly reset, and implementations should discard any
// accumulated field or record state.
//
// Sink methods have no error returns. A sink that must abort parsing
// should panic; the parser does not recover, so the panic reaches the
// caller of FeedCharacter or Parse unmodified. A sink must not call back
// into the parser that is driving it.
type Sink interface {
	// OnRecordStart is called once when the first content character of
	// a new record is seen.
	OnRecordStart()

	// OnFieldCharacter is called once per content character of the
	// current field, in stream order.
	OnFieldCharacter(c rune)

	// OnFieldEnd closes the current, possibly empty, field. It fires on
	// a separator and when the record terminates.
	OnFieldEnd()

	// OnRecordEnd is called once the record is fully terminated, after
	// the final OnFieldEnd.
	OnRecordEnd()

	// OnReset is called when the parser is explicitly reset.
	OnReset()
}

// SinkFuncs adapts plain functions to the Sink interface. Nil fields are
// no-ops, so callers can subscribe to only the events they care about.
//
// Example:
//
//	fields := 0
//	sink := &dsv.SinkFuncs{
//	    FieldEnd: func() { fields++ },
//	}
//	p := dsv.NewParser(sink)
type SinkFuncs struct {
	RecordStart    func()
	FieldCharacter func(c rune)
	FieldEnd       func()
	RecordEnd      func()
	Reset          func()
}

// OnRecordStart implements Sink.
func (s *SinkFuncs) OnRecordStart() {
	if s.RecordStart != nil {
		s.RecordStart()
	}
}

// OnFieldCharacter implements Sink.
func (s *SinkFuncs) OnFieldCharacter(c rune) {
	if s.FieldCharacter != nil {
		s.FieldCharacter(c)
	}
}

// OnFieldEnd implements Sink.
func (s *SinkFuncs) OnFieldEnd() {
	if s.FieldEnd != nil {
		s.FieldEnd()
	}
}

// OnRecordEnd implements Sink.
func (s *SinkFuncs) OnRecordEnd() {
	if s.RecordEnd != nil {
		s.RecordEnd()
	}
}

// OnReset implements Sink.
func (s *SinkFuncs) OnReset() {
	if s.Reset != nil {
		s.Reset()
	}
}
