// Package riscv32 is an in-memory assembler for the RISC-V 32-bit
// instruction set and its standard extensions (I, M, A, F, D, C — jointly
// RV32GC). Callers issue one Go method call per mnemonic against an
// *Assembler, using typed register and label operands; Generate replays
// the accumulated instruction stream into an executable byte buffer.
//
// The assembler is two-pass: staging records one deferred emitter per
// mnemonic call and advances a running offset, while replay (driven by
// Generate) resolves label displacements and writes the final bytes,
// choosing between a compressed (16-bit) and base (32-bit) encoding where
// the C extension is enabled and the operand pattern qualifies.
package riscv32
