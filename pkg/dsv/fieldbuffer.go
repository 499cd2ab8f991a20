package dsv

// FieldBuffer accumulates field characters into a growable buffer.
//
// It implements only OnFieldCharacter and OnReset, by design: concrete
// sinks embed a FieldBuffer, supply the remaining Sink methods, read the
// completed field with Field in their OnFieldEnd, and then call
// ClearField. This keeps the character-accumulation behavior reusable
// across many sink variants.
//
//	type fieldCounter struct {
//	    dsv.FieldBuffer
//	    fields []string
//	}
//
//	func (s *fieldCounter) OnRecordStart() {}
//	func (s *fieldCounter) OnFieldEnd() {
//	    s.fields = append(s.fields, s.Field())
//	    s.ClearField()
//	}
//	func (s *fieldCounter) OnRecordEnd() {}
//
// The zero FieldBuffer is ready to use.
type FieldBuffer struct {
	field []rune
}

// OnFieldCharacter appends c to the buffer.
func (b *FieldBuffer) OnFieldCharacter(c rune) {
	b.field = append(b.field, c)
}

// OnReset clears the buffer. Embedding sinks that track their own state
// should override OnReset, discard that state, and call ClearField.
func (b *FieldBuffer) OnReset() {
	b.ClearField()
}

// Field returns the buffer's current contents.
func (b *FieldBuffer) Field() string {
	return string(b.field)
}

// Len returns the number of buffered characters.
func (b *FieldBuffer) Len() int {
	return len(b.field)
}

// ClearField empties the buffer, retaining its capacity.
func (b *FieldBuffer) ClearField() {
	b.field = b.field[:0]
}
