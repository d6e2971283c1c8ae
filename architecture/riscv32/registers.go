package riscv32

// noCIdx marks a register as absent from the 3-bit compressed-register
// subset (x8-x15 / f8-f15).
const noCIdx = 0xFF

// Register identifies one of the 32 general-purpose integer registers.
// Equality is index equality; construct Register values only through the
// named constants below (x0/zero .. x31/t6).
type Register struct {
	idx  uint8
	cidx uint8
}

// Index returns the register's integer index in [0,31].
func (r Register) Index() int { return int(r.idx) }

// IsCReg reports whether r is one of x8-x15, the subset directly
// addressable by the compressed instruction formats' 3-bit register fields.
func (r Register) IsCReg() bool { return r.cidx != noCIdx }

// CIndex returns the 3-bit compressed-register index in [0,7]. Only valid
// when IsCReg reports true; the compression selector never calls this
// otherwise, and base encoders never consult it at all (invariant 5).
func (r Register) CIndex() int { return int(r.cidx) }

// Equal reports whether r and other name the same register.
func (r Register) Equal(other Register) bool { return r.idx == other.idx }

// At indexes r by a signed offset, yielding a base+offset memory operand.
// This is the Go spelling of the source's overloaded reg[offset]/reg(offset)
// operators — Go has no operator overloading, so a single named method
// serves both call shapes the original exposes.
func (r Register) At(offset int32) Mem { return Mem{Base: r, Offset: offset} }

func reg(idx int) Register { return Register{idx: uint8(idx), cidx: noCIdx} }

func cReg(idx, cidx int) Register { return Register{idx: uint8(idx), cidx: uint8(cidx)} }

// General-purpose registers, with their ABI aliases. x8-x15 carry a
// compressed index; all others do not.
var (
	X0  = reg(0)
	X1  = reg(1)
	X2  = reg(2)
	X3  = reg(3)
	X4  = reg(4)
	X5  = reg(5)
	X6  = reg(6)
	X7  = reg(7)
	X8  = cReg(8, 0)
	X9  = cReg(9, 1)
	X10 = cReg(10, 2)
	X11 = cReg(11, 3)
	X12 = cReg(12, 4)
	X13 = cReg(13, 5)
	X14 = cReg(14, 6)
	X15 = cReg(15, 7)
	X16 = reg(16)
	X17 = reg(17)
	X18 = reg(18)
	X19 = reg(19)
	X20 = reg(20)
	X21 = reg(21)
	X22 = reg(22)
	X23 = reg(23)
	X24 = reg(24)
	X25 = reg(25)
	X26 = reg(26)
	X27 = reg(27)
	X28 = reg(28)
	X29 = reg(29)
	X30 = reg(30)
	X31 = reg(31)

	Zero = X0
	Ra   = X1
	Sp   = X2
	Gp   = X3
	Tp   = X4
	T0   = X5
	T1   = X6
	T2   = X7
	S0   = X8
	Fp   = X8
	S1   = X9
	A0   = X10
	A1   = X11
	A2   = X12
	A3   = X13
	A4   = X14
	A5   = X15
	A6   = X16
	A7   = X17
	S2   = X18
	S3   = X19
	S4   = X20
	S5   = X21
	S6   = X22
	S7   = X23
	S8   = X24
	S9   = X25
	S10  = X26
	S11  = X27
	T3   = X28
	T4   = X29
	T5   = X30
	T6   = X31
)

// FRegister identifies one of the 32 floating-point registers. It is a
// distinct type from Register so that a GP register can never be passed
// where a float register is expected, and vice versa.
type FRegister struct {
	idx  uint8
	cidx uint8
}

func (r FRegister) Index() int             { return int(r.idx) }
func (r FRegister) IsCReg() bool           { return r.cidx != noCIdx }
func (r FRegister) CIndex() int            { return int(r.cidx) }
func (r FRegister) Equal(other FRegister) bool { return r.idx == other.idx }

// At builds a base+offset memory operand for flw/fsw/fld/fsd from base and
// offset; r itself is not part of the result. The base register is always
// a GP register per the RISC-V ISA — only the value being loaded/stored is
// floating-point.
func (r FRegister) At(base Register, offset int32) Mem { return Mem{Base: base, Offset: offset} }

func freg(idx int) FRegister { return FRegister{idx: uint8(idx), cidx: noCIdx} }

func fcReg(idx, cidx int) FRegister { return FRegister{idx: uint8(idx), cidx: uint8(cidx)} }

var (
	F0  = freg(0)
	F1  = freg(1)
	F2  = freg(2)
	F3  = freg(3)
	F4  = freg(4)
	F5  = freg(5)
	F6  = freg(6)
	F7  = freg(7)
	F8  = fcReg(8, 0)
	F9  = fcReg(9, 1)
	F10 = fcReg(10, 2)
	F11 = fcReg(11, 3)
	F12 = fcReg(12, 4)
	F13 = fcReg(13, 5)
	F14 = fcReg(14, 6)
	F15 = fcReg(15, 7)
	F16 = freg(16)
	F17 = freg(17)
	F18 = freg(18)
	F19 = freg(19)
	F20 = freg(20)
	F21 = freg(21)
	F22 = freg(22)
	F23 = freg(23)
	F24 = freg(24)
	F25 = freg(25)
	F26 = freg(26)
	F27 = freg(27)
	F28 = freg(28)
	F29 = freg(29)
	F30 = freg(30)
	F31 = freg(31)

	Ft0  = F0
	Ft1  = F1
	Ft2  = F2
	Ft3  = F3
	Ft4  = F4
	Ft5  = F5
	Ft6  = F6
	Ft7  = F7
	Fs0  = F8
	Fs1  = F9
	Fa0  = F10
	Fa1  = F11
	Fa2  = F12
	Fa3  = F13
	Fa4  = F14
	Fa5  = F15
	Fa6  = F16
	Fa7  = F17
	Fs2  = F18
	Fs3  = F19
	Fs4  = F20
	Fs5  = F21
	Fs6  = F22
	Fs7  = F23
	Fs8  = F24
	Fs9  = F25
	Fs10 = F26
	Fs11 = F27
	Ft8  = F28
	Ft9  = F29
	Ft10 = F30
	Ft11 = F31
)

// Mem pairs a base register with a signed 12-bit byte offset, the operand
// shape used by every integer and floating-point load/store mnemonic.
type Mem struct {
	Base   Register
	Offset int32
}
