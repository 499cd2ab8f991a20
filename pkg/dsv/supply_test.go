package dsv

import (
	"io"
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

func TestStreamReader_DrainsStream(t *testing.T) {
	stream := tokenizer.NewStream("a:b\n")
	reader := NewStreamReader(stream)

	var got []rune
	for {
		c, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadRune returned error: %v", err)
		}
		got = append(got, c)
	}
	if string(got) != "a:b\n" {
		t.Errorf("drained %q, expected a:b\\n", string(got))
	}
	if !reader.IsEOF() {
		t.Error("IsEOF() = false after drain")
	}
}

func TestStreamReader_FeedsParser(t *testing.T) {
	stream := tokenizer.NewStream("root:x:0\ndaemon:x:1")
	sink := &RecordSink{}
	p := NewParser(sink)

	if err := p.ParseAndFinish(NewStreamReader(stream)); err != nil {
		t.Fatalf("ParseAndFinish returned error: %v", err)
	}
	assertRecords(t, sink.Records(), [][]string{
		{"root", "x", "0"},
		{"daemon", "x", "1"},
	})
}

func TestStreamReader_MultibyteRuneSize(t *testing.T) {
	reader := NewStreamReader(tokenizer.NewStream("é:日\n"))

	expected := []struct {
		c    rune
		size int
	}{
		{'é', 2}, {':', 1}, {'日', 3}, {'\n', 1},
	}
	for i, e := range expected {
		c, size, err := reader.ReadRune()
		if err != nil {
			t.Fatalf("rune %d: ReadRune returned error: %v", i, err)
		}
		if c != e.c || size != e.size {
			t.Errorf("rune %d: got (%q, %d), expected (%q, %d)", i, c, size, e.c, e.size)
		}
	}
}

func TestStreamReader_FromReader(t *testing.T) {
	stream := tokenizer.NewStreamFromReader(strings.NewReader("a\\:b\n"))
	node, err := parseSupply(NewStreamReader(stream), DefaultOptions())
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	assertAST(t, node, [][]string{{"a:b"}})
}
