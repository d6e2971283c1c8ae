//go:build !riscv64

package riscv32

// clearInstructionCache is a no-op on every host except riscv64 — the
// generated code here targets RV32, which is never the host ISA on a
// non-riscv64 build, so there is no local icache to flush. See
// cache_riscv64.go for the real fence.i path.
func clearInstructionCache(code []byte) {}
