package emittrace

import (
	"fmt"
	"io"
	"sync"
)

// Trace is a passive, append-only accumulator of Events. It is safe for
// concurrent use, though the assembler itself is single-threaded (§5) and
// never calls it concurrently; the lock guards against a caller sharing a
// Trace across assemblers.
//
// Create a Trace exclusively through New(). A nil *Trace is a valid,
// inert sink: Record on a nil Trace is a no-op, so callers can pass a nil
// Trace when debug mode is disabled without branching at every call site.
type Trace struct {
	mu     sync.Mutex
	events []*Event
}

// New returns an empty Trace.
func New() *Trace {
	return &Trace{}
}

// Record appends one Event. Safe to call on a nil Trace (no-op).
func (t *Trace) Record(offset uint32, mnemonic string, bytes []byte) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, &Event{offset: offset, mnemonic: mnemonic, bytes: bytes})
}

// Events returns all recorded events in insertion order.
func (t *Trace) Events() []*Event {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	result := make([]*Event, len(t.events))
	copy(result, t.events)
	return result
}

// Count returns the number of recorded events.
func (t *Trace) Count() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.events)
}

// Dump renders every recorded event to w, one per line, matching the
// source's debug-mode hex dump (RV32_asm.hpp, IN_DEBUG_MODE block).
func (t *Trace) Dump(w io.Writer) error {
	for _, e := range t.Events() {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}
