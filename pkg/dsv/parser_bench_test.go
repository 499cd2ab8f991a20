package dsv

import (
	"strings"
	"testing"
)

func benchInput(records int) string {
	var sb strings.Builder
	for i := 0; i < records; i++ {
		sb.WriteString("user:x:1000:1000:Some User\\: staff:/home/user:/bin/sh\n")
	}
	return sb.String()
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseDocument(b *testing.B) {
	input := benchInput(100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseDocument(input); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTypedVsDynamic pairs the statically and dynamically
// dispatched parsers over the same input and sink type.
func BenchmarkTypedVsDynamic(b *testing.B) {
	input := benchInput(100)

	b.Run("typed", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink := &RecordSink{}
			p := NewTyped(sink, DefaultOptions())
			if err := p.ParseAndFinish(strings.NewReader(input)); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("dynamic", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink := &RecordSink{}
			p := NewParser(sink)
			if err := p.ParseAndFinish(strings.NewReader(input)); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkRender(b *testing.B) {
	node, err := Parse(benchInput(100))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Render(node); err != nil {
			b.Fatal(err)
		}
	}
}
