package riscv32

// RV32M: integer multiply/divide. All eight mnemonics share opcode 0x33,
// funct7 0b0000001; none have a compressed form (§4.H lists no M-extension
// compression). requireExt panics if ExtM was not enabled at New.

const mFunct7 = 0b0000001

func (a *Assembler) mul(mnemonic string, funct3 uint32, rd, rs1, rs2 Register) {
	requireExt(a.features, ExtM, mnemonic, "M")
	a.env.emit(func(e *environment) {
		e.dw(rFormat(0x33, funct3, mFunct7, rd, rs1, rs2), mnemonic)
	})
}

func (a *Assembler) Mul(rd, rs1, rs2 Register)    { a.mul("mul", 0b000, rd, rs1, rs2) }
func (a *Assembler) Mulh(rd, rs1, rs2 Register)   { a.mul("mulh", 0b001, rd, rs1, rs2) }
func (a *Assembler) Mulhsu(rd, rs1, rs2 Register) { a.mul("mulhsu", 0b010, rd, rs1, rs2) }
func (a *Assembler) Mulhu(rd, rs1, rs2 Register)  { a.mul("mulhu", 0b011, rd, rs1, rs2) }
func (a *Assembler) Div(rd, rs1, rs2 Register)    { a.mul("div", 0b100, rd, rs1, rs2) }
func (a *Assembler) Divu(rd, rs1, rs2 Register)   { a.mul("divu", 0b101, rd, rs1, rs2) }
func (a *Assembler) Rem(rd, rs1, rs2 Register)    { a.mul("rem", 0b110, rd, rs1, rs2) }
func (a *Assembler) Remu(rd, rs1, rs2 Register)   { a.mul("remu", 0b111, rd, rs1, rs2) }
