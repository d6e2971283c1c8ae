package riscv32

import "testing"

func TestAllocateSelfAllocatedIsAligned(t *testing.T) {
	var alloc allocator
	alloc.allocate(128, nil)
	if len(alloc.memory()) != 128 {
		t.Fatalf("len(memory()) = %d, want 128", len(alloc.memory()))
	}
	if addr := sliceAddr(alloc.memory()); addr%align != 0 {
		t.Fatalf("self-allocated region address %#x is not %d-aligned", addr, align)
	}
}

func TestAllocateDefaultSize(t *testing.T) {
	var alloc allocator
	alloc.allocate(0, nil)
	if alloc.capacity() != DefaultMaxCodeSize {
		t.Fatalf("capacity() = %d, want %d", alloc.capacity(), DefaultMaxCodeSize)
	}
}

func TestAllocateUsesSuppliedBufferDirectly(t *testing.T) {
	buf := make([]byte, 16)
	var alloc allocator
	alloc.allocate(len(buf), buf)
	if &alloc.memory()[0] != &buf[0] {
		t.Fatal("allocate should use the supplied buffer directly, not copy it")
	}
}
