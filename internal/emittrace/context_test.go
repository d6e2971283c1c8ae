package emittrace

import (
	"bytes"
	"strings"
	"testing"
)

func TestTraceRecordAndCount(t *testing.T) {
	tr := New()
	if got := tr.Count(); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}
	tr.Record(0, "addi", []byte{0x13, 0x05, 0x00, 0x00})
	tr.Record(4, "ret", []byte{0x67, 0x80, 0x00, 0x00})
	if got := tr.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	events := tr.Events()
	if events[0].Mnemonic() != "addi" || events[0].Offset() != 0 {
		t.Fatalf("events[0] = %+v", events[0])
	}
	if events[1].Mnemonic() != "ret" || events[1].Offset() != 4 {
		t.Fatalf("events[1] = %+v", events[1])
	}
}

func TestTraceNilIsInert(t *testing.T) {
	var tr *Trace
	tr.Record(0, "nop", []byte{0x01, 0x00})
	if got := tr.Count(); got != 0 {
		t.Fatalf("Count() on nil Trace = %d, want 0", got)
	}
	if got := tr.Events(); got != nil {
		t.Fatalf("Events() on nil Trace = %v, want nil", got)
	}
}

func TestTraceDump(t *testing.T) {
	tr := New()
	tr.Record(0, "nop", []byte{0x01, 0x00})
	var buf bytes.Buffer
	if err := tr.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "nop") || !strings.Contains(out, "01 00") {
		t.Fatalf("Dump output = %q", out)
	}
}
