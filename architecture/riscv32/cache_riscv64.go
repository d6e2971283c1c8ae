//go:build riscv64

package riscv32

// clearInstructionCache issues fence.i so a just-written buffer is safe to
// execute, matching Generator::clear_cache's
// `asm volatile("fence.i" ::: "memory")` (RISC-V + GCC only, per
// RV32_asm.hpp). The generated RV32 code and the riscv64 host share the
// fence.i opcode.
func clearInstructionCache(code []byte) {
	fenceI()
}

func fenceI()
