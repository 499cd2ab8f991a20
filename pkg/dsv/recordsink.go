package dsv

// RecordSink is a complete Sink that assembles parsed input into string
// records. It is the batteries-included consumer for callers who want
// [][]string out of a DSV stream without writing their own sink.
//
//	sink := &dsv.RecordSink{}
//	p := dsv.NewParser(sink)
//	if err := p.ParseAndFinish(strings.NewReader(input)); err != nil {
//	    // handle supply error
//	}
//	for _, record := range sink.Records() {
//	    // record is []string
//	}
//
// The zero RecordSink is ready to use.
type RecordSink struct {
	FieldBuffer

	current []string
	records [][]string
}

// OnRecordStart implements Sink.
func (s *RecordSink) OnRecordStart() {
	s.current = nil
}

// OnFieldEnd implements Sink, closing the buffered field into the
// current record.
func (s *RecordSink) OnFieldEnd() {
	s.current = append(s.current, s.Field())
	s.ClearField()
}

// OnRecordEnd implements Sink, committing the current record.
func (s *RecordSink) OnRecordEnd() {
	if s.current == nil {
		s.current = []string{}
	}
	s.records = append(s.records, s.current)
	s.current = nil
}

// OnReset implements Sink, discarding the buffered field, the record in
// progress, and all completed records.
func (s *RecordSink) OnReset() {
	s.ClearField()
	s.current = nil
	s.records = nil
}

// Records returns all completed records, in input order. The returned
// slice is owned by the sink; it remains valid until the next OnReset.
func (s *RecordSink) Records() [][]string {
	return s.records
}

// Take returns the completed records and removes them from the sink, so
// streaming consumers can drain incrementally while a parse is underway.
func (s *RecordSink) Take() [][]string {
	records := s.records
	s.records = nil
	return records
}
