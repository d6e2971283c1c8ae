package riscv32

import "unsafe"

// sliceAddr reports the address of raw's backing array, used only to
// compute alignment padding for the self-allocated buffer path.
func sliceAddr(raw []byte) uintptr {
	return uintptr(unsafe.Pointer(&raw[0]))
}
