package riscv32

import "testing"

func TestNewWithExternalBuffer(t *testing.T) {
	buf := make([]byte, 64)
	a := New(RV32I, len(buf), buf)
	a.Addi(X1, Zero, 1)
	code := a.Generate()
	if len(code) != 4 {
		t.Fatalf("len(code) = %d, want 4", len(code))
	}
}

func TestGenerateTooSmallBufferPanics(t *testing.T) {
	buf := make([]byte, 2)
	a := New(RV32I, 0, buf)
	a.Addi(X1, Zero, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: buffer too small")
		}
	}()
	a.Generate()
}

func TestGetCodeMatchesGenerate(t *testing.T) {
	a := New(RV32I, 0, nil)
	a.Addi(X1, Zero, 1)
	gen := a.Generate()
	code, size := a.GetCode()
	if size != len(gen) || string(code) != string(gen) {
		t.Fatalf("GetCode() = (%x, %d), want (%x, %d)", code, size, gen, len(gen))
	}
}

func TestTraceDisabledByDefault(t *testing.T) {
	a := New(RV32I, 0, nil)
	if a.Trace() != nil {
		t.Fatal("Trace() should be nil before EnableTrace")
	}
}

func TestTraceRecordsEveryInstruction(t *testing.T) {
	a := New(RV32I, 0, nil)
	a.EnableTrace()
	a.Addi(X1, Zero, 1)
	a.Addi(X2, Zero, 2)
	a.Generate()
	if n := a.Trace().Count(); n != 2 {
		t.Fatalf("Trace().Count() = %d, want 2", n)
	}
}

func TestGetVersion(t *testing.T) {
	a := New(RV32I, 0, nil)
	if v := a.GetVersion(); v != Version {
		t.Fatalf("GetVersion() = %#04x, want %#04x", v, Version)
	}
}
