package riscv32

import (
	"github.com/m-z-k/RV32-asm/internal/emittrace"
)

// Version is the library's packed version word (major.minor.patch as
// 0xABCD meaning A.BC(D)). Matches the original implementation's VERSION.
const Version uint16 = 0x0100

// Assembler is a composable, in-memory RISC-V 32-bit encoder. It replaces
// the source's diamond-virtual-inheritance layer stack with a single
// state object plus a FeatureSet bitmask: every mnemonic method branches
// on the feature set at its own call site instead of relying on an
// override chain (§9 Design Notes).
type Assembler struct {
	features FeatureSet
	env      *environment
	alloc    allocator
	trace    *emittrace.Trace
}

// New constructs an Assembler for the given feature set. size is the
// maximum number of bytes the generated code may occupy (0 selects
// DefaultMaxCodeSize); buf, if non-nil, is used directly as the
// destination region instead of self-allocating one.
func New(features FeatureSet, size int, buf []byte) *Assembler {
	a := &Assembler{
		features: features,
		env:      newEnvironment(),
	}
	a.alloc.allocate(size, buf)
	return a
}

// EnableTrace turns on recording of every emitted instruction for later
// inspection via Trace/Dump — the "debug mode" ambient flag from §6.
func (a *Assembler) EnableTrace() {
	a.trace = emittrace.New()
	a.env.trace = a.trace
}

// Trace returns the assembler's emission trace, or nil if EnableTrace was
// never called.
func (a *Assembler) Trace() *emittrace.Trace { return a.trace }

// L declares a label at the current emission offset and returns a Label
// referencing it by name. Re-declaration of the same name is a
// programming error.
func (a *Assembler) L(name string) Label {
	return a.env.declare(name)
}

// GetVersion returns the packed library version word.
func (a *Assembler) GetVersion() uint16 { return Version }

// Generate replays the queued instruction stream into the destination
// buffer, resolving all labels, and returns the slice of bytes actually
// written. It flushes the instruction cache on RISC-V hosts (a no-op
// elsewhere) before returning. Calling Generate more than once on the
// same Assembler yields byte-identical output; the queue is never
// consumed.
func (a *Assembler) Generate() []byte {
	n := a.env.generate(a.alloc.memory(), a.alloc.capacity())
	clearInstructionCache(a.alloc.memory()[:n])
	return a.alloc.memory()[:n]
}

// GetCode is equivalent to Generate, named to mirror the source's
// get_code(out_size) accessor for callers translating from it directly.
func (a *Assembler) GetCode() (code []byte, size int) {
	b := a.Generate()
	return b, len(b)
}
