package riscv32

import (
	"encoding/hex"
	"fmt"
)

// Example demonstrates the canonical byte-copy loop from the original
// implementation's sample/test.cpp, reproduced here as Go rather than
// transliterated C++ (SPEC_FULL.md §C.7): copy a2 bytes from a0 to a1.
func Example() {
	a := New(RV32GC, 0, nil)

	loop := a.L("loop")
	a.Lbu(T0, A0.At(0))
	a.Sb(T0, A1.At(0))
	a.Addi(A0, A0, 1)
	a.Addi(A1, A1, 1)
	a.Addi(A2, A2, -1)
	a.Bnez(A2, loop)
	a.Ret()

	code := a.Generate()
	fmt.Println(hex.EncodeToString(code))
	// Output: 8342050023805500050585057d166dfa8280
}
