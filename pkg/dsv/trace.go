package dsv

import (
	"github.com/go-kit/log"
)

// TraceSink is a Sink decorator that logs every lifecycle event before
// forwarding it to the next sink. It is a debugging aid for callers who
// want to see exactly what callback sequence an input produces.
//
// Events are logged with the structured logger as "event" key-value
// pairs; field characters additionally carry a "char" value.
//
// Example:
//
//	logger := log.NewLogfmtLogger(os.Stderr)
//	sink := &dsv.RecordSink{}
//	p := dsv.NewParser(dsv.NewTraceSink(logger, sink))
//	p.FeedString("a:b\n")
//
// Output:
//
//	event=record_start
//	event=field_char char=a
//	event=field_end
//	...
type TraceSink struct {
	logger log.Logger
	next   Sink
}

// NewTraceSink returns a TraceSink logging to logger and forwarding to
// next. A nil next sink is allowed; events are then only logged.
func NewTraceSink(logger log.Logger, next Sink) *TraceSink {
	return &TraceSink{logger: logger, next: next}
}

// OnRecordStart implements Sink.
func (s *TraceSink) OnRecordStart() {
	_ = s.logger.Log("event", "record_start")
	if s.next != nil {
		s.next.OnRecordStart()
	}
}

// OnFieldCharacter implements Sink.
func (s *TraceSink) OnFieldCharacter(c rune) {
	_ = s.logger.Log("event", "field_char", "char", string(c))
	if s.next != nil {
		s.next.OnFieldCharacter(c)
	}
}

// OnFieldEnd implements Sink.
func (s *TraceSink) OnFieldEnd() {
	_ = s.logger.Log("event", "field_end")
	if s.next != nil {
		s.next.OnFieldEnd()
	}
}

// OnRecordEnd implements Sink.
func (s *TraceSink) OnRecordEnd() {
	_ = s.logger.Log("event", "record_end")
	if s.next != nil {
		s.next.OnRecordEnd()
	}
}

// OnReset implements Sink.
func (s *TraceSink) OnReset() {
	_ = s.logger.Log("event", "reset")
	if s.next != nil {
		s.next.OnReset()
	}
}
