package riscv32

import "testing"

func TestMExtensionRequiresM(t *testing.T) {
	a := New(RV32I, 0, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: M extension not enabled")
		}
	}()
	a.Mul(X1, X2, X3)
}

func TestMulEncoding(t *testing.T) {
	code := assemble(t, RV32IM, func(a *Assembler) { a.Mul(X1, X2, X3) })
	want := rFormat(0x33, 0b000, mFunct7, X1, X2, X3)
	got := uint32(code[0]) | uint32(code[1])<<8 | uint32(code[2])<<16 | uint32(code[3])<<24
	if got != want {
		t.Fatalf("mul x1,x2,x3 = %#08x, want %#08x", got, want)
	}
}

func TestMExtensionNeverCompresses(t *testing.T) {
	code := assemble(t, RV32IM|ExtC, func(a *Assembler) { a.Divu(X8, X9, X10) })
	if len(code) != 4 {
		t.Fatalf("divu: len(code) = %d, want 4", len(code))
	}
}
