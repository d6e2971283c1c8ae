package emittrace

import "fmt"

// Event is a single emitted-instruction record: the byte offset it was
// written at, the mnemonic that produced it, and the raw encoded bytes
// (2 for a compressed instruction, 4 for a base instruction).
type Event struct {
	offset   uint32
	mnemonic string
	bytes    []byte
}

// Offset returns the byte offset the instruction was written at.
func (e *Event) Offset() uint32 { return e.offset }

// Mnemonic returns the mnemonic that produced the instruction.
func (e *Event) Mnemonic() string { return e.mnemonic }

// Bytes returns the raw encoded instruction bytes, little-endian.
func (e *Event) Bytes() []byte { return e.bytes }

// String renders "offset: hex mnemonic", with the hex column padded to the
// width of four bytes, e.g. "00000000: 13 05 00 00 addi" or
// "00000004: 82 80       c.jr".
func (e *Event) String() string {
	hex := ""
	for i, b := range e.bytes {
		if i > 0 {
			hex += " "
		}
		hex += fmt.Sprintf("%02x", b)
	}
	return fmt.Sprintf("%08x: %-11s %s", e.offset, hex, e.mnemonic)
}
