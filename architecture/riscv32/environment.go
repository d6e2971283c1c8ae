package riscv32

import "encoding/binary"

// emitTrace is the minimal surface environment needs from an emission
// tracer; implemented by *emittrace.Trace. Kept as a small interface so
// environment does not depend on emittrace's concrete type.
type emitTrace interface {
	Record(offset uint32, mnemonic string, bytes []byte)
}

// environment implements the label table and deferred emission queue
// described in §4.B: a two-pass staging/replay machine. During staging,
// emit runs each closure once (to advance offset and build the label
// table) and queues it; during replay (driven by generate), the same
// closures run again with inGenerate set, this time writing real bytes
// with labels fully resolved.
type environment struct {
	offset  int32
	labels  map[string]int32
	queue   []emitter
	inGen   bool
	buf     []byte
	cursor  int
	remain  int
	trace   emitTrace
}

type emitter func(e *environment)

func newEnvironment() *environment {
	return &environment{labels: make(map[string]int32)}
}

// declare records labels[name] at the current offset. Re-declaration is a
// programming error.
func (e *environment) declare(name string) Label {
	if _, exists := e.labels[name]; exists {
		fail("L", "name", 0, "label \""+name+"\" already declared")
	}
	e.labels[name] = e.offset
	return Lbl(name)
}

// resolveLabel returns labels[name] - offset during replay, or 0 during
// staging (so forward-reference range checks succeed conservatively).
func (e *environment) resolveLabel(name string) int32 {
	if !e.inGen {
		return 0
	}
	off, ok := e.labels[name]
	if !ok {
		fail("generate", "label", 0, "undefined label \""+name+"\"")
	}
	return off - e.offset
}

// emit runs fn once for its staging side effect (via dh/dw) and queues it
// for replay.
func (e *environment) emit(fn emitter) {
	fn(e)
	e.queue = append(e.queue, fn)
}

// dw advances the offset by 4 and, during replay, writes word little-endian
// to the destination buffer.
func (e *environment) dw(word uint32, mnemonic string) {
	if e.inGen {
		e.write(mnemonic, func(b []byte) { binary.LittleEndian.PutUint32(b, word) }, 4)
	}
	e.offset += 4
}

// dh advances the offset by 2 and, during replay, writes half little-endian
// to the destination buffer.
func (e *environment) dh(half uint16, mnemonic string) {
	if e.inGen {
		e.write(mnemonic, func(b []byte) { binary.LittleEndian.PutUint16(b, half) }, 2)
	}
	e.offset += 2
}

func (e *environment) write(mnemonic string, put func([]byte), size int) {
	if e.remain < size {
		fail("generate", "capacity", int64(e.remain), "buffer too small for generated code")
	}
	b := e.buf[e.cursor : e.cursor+size]
	put(b)
	if e.trace != nil {
		e.trace.Record(uint32(e.offset), mnemonic, append([]byte(nil), b...))
	}
	e.cursor += size
	e.remain -= size
}

// generate resets the offset to zero, replays every queued emitter in
// order against buf, and returns the number of bytes written. It may be
// called repeatedly; the queue is never consumed.
func (e *environment) generate(buf []byte, capacity int) int {
	e.offset = 0
	e.buf = buf
	e.cursor = 0
	e.remain = capacity
	if len(buf) < capacity {
		e.remain = len(buf)
	}
	e.inGen = true
	for _, fn := range e.queue {
		fn(e)
	}
	e.inGen = false
	return e.cursor
}
