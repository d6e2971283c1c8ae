package riscv32

import "testing"

func TestAExtensionRequiresA(t *testing.T) {
	a := New(RV32I, 0, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: A extension not enabled")
		}
	}()
	a.LrW(X1, X2)
}

func TestLrWEncodingClearsAqRl(t *testing.T) {
	code := assemble(t, RV32IMA, func(a *Assembler) { a.LrW(X1, X2) })
	got := uint32(code[0]) | uint32(code[1])<<8 | uint32(code[2])<<16 | uint32(code[3])<<24
	aq := (got >> 26) & 1
	rl := (got >> 25) & 1
	if aq != 0 || rl != 0 {
		t.Fatalf("lr.w aq/rl = %d/%d, want 0/0", aq, rl)
	}
	funct5 := (got >> 27) & 0x1F
	if funct5 != 0b00010 {
		t.Fatalf("lr.w funct5 = %#b, want 0b00010", funct5)
	}
	if rs2 := (got >> 20) & 0x1F; rs2 != 0 {
		t.Fatalf("lr.w rs2 = %d, want 0 (architecturally fixed)", rs2)
	}
}

func TestAmoswapWEncoding(t *testing.T) {
	code := assemble(t, RV32IMA, func(a *Assembler) { a.AmoswapW(X1, X2, X3) })
	got := uint32(code[0]) | uint32(code[1])<<8 | uint32(code[2])<<16 | uint32(code[3])<<24
	want := atomicFormat("amoswap.w", 0b00001, X1, X2, X3)
	if got != want {
		t.Fatalf("amoswap.w x1,x2,x3 = %#08x, want %#08x", got, want)
	}
}

func TestAtomicNeverCompresses(t *testing.T) {
	code := assemble(t, RV32IMA|ExtC, func(a *Assembler) { a.AmoaddW(X8, X9, X10) })
	if len(code) != 4 {
		t.Fatalf("amoadd.w: len(code) = %d, want 4", len(code))
	}
}
