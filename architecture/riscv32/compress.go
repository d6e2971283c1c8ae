package riscv32

// Bit-packing for every RV32C compressed form used by the mnemonic
// layers. Field names follow the RISC-V C-extension specification's own
// instruction listing (the field order of _examples/other_examples' rvc.go
// decoder, read in the reverse direction). These are intentionally
// asymmetric and easy to get wrong one bit at a time; compress_test.go
// checks c.nop, c.li, c.jr, c.beqz, c.addi4spn and the C.J field scatter.

func bit(u uint32, n uint) uint32 { return (u >> n) & 1 }

// C.ADDI4SPN — CIW format, funct3=000, op=00.
func cAddi4spn(rd Register, nzuimm uint32) uint16 {
	b1211 := (nzuimm >> 4) & 0x3
	b107 := (nzuimm >> 6) & 0xF
	b6 := bit(nzuimm, 2)
	b5 := bit(nzuimm, 3)
	return uint16(0b000<<13 | b1211<<11 | b107<<7 | b6<<6 | b5<<5 | uint32(rd.CIndex())<<2 | 0b00)
}

// C.ADDI16SP — CI format, funct3=011, op=01, rd/rs1 field fixed to sp.
func cAddi16sp(imm int32) uint16 {
	u := uint32(imm) & 0x3FF
	b9 := bit(u, 9)
	b4 := bit(u, 4)
	b6 := bit(u, 6)
	b87 := (u >> 7) & 0x3
	b5 := bit(u, 5)
	return uint16(0b011<<13 | b9<<12 | 0b00010<<7 | b4<<6 | b6<<5 | b87<<3 | b5<<2 | 0b01)
}

// C.ADDI (labelled C.ADDIW in the source) — CI format, funct3=000, op=01.
func cAddi(rd Register, imm int32) uint16 {
	u := uint32(imm) & 0x3F
	b5 := bit(u, 5)
	b40 := u & 0x1F
	return uint16(0b000<<13 | b5<<12 | uint32(rd.idx)<<7 | b40<<2 | 0b01)
}

// C.LI — CI format, funct3=010, op=01.
func cLi(rd Register, imm int32) uint16 {
	u := uint32(imm) & 0x3F
	b5 := bit(u, 5)
	b40 := u & 0x1F
	return uint16(0b010<<13 | b5<<12 | uint32(rd.idx)<<7 | b40<<2 | 0b01)
}

// C.LUI — CI format, funct3=011, op=01. imm20 is the 20-bit LUI upper
// immediate (already shifted to represent bits [31:12]).
func cLui(rd Register, imm20 uint32) uint16 {
	v := imm20 & 0x3F
	b5 := bit(v, 5)
	b40 := v & 0x1F
	return uint16(0b011<<13 | b5<<12 | uint32(rd.idx)<<7 | b40<<2 | 0b01)
}

// C.LW — CL format, funct3=010, op=00.
func cLw(rd, rs1 Register, offset int32) uint16 {
	u := uint32(offset)
	imm53 := (u >> 3) & 0x7
	imm2 := bit(u, 2)
	imm6 := bit(u, 6)
	return uint16(0b010<<13 | imm53<<10 | uint32(rs1.CIndex())<<7 | imm6<<5 | imm2<<6 | uint32(rd.CIndex())<<2 | 0b00)
}

// C.SW — CS format, funct3=110, op=00.
func cSw(rs1, rs2 Register, offset int32) uint16 {
	u := uint32(offset)
	imm53 := (u >> 3) & 0x7
	imm2 := bit(u, 2)
	imm6 := bit(u, 6)
	return uint16(0b110<<13 | imm53<<10 | uint32(rs1.CIndex())<<7 | imm6<<5 | imm2<<6 | uint32(rs2.CIndex())<<2 | 0b00)
}

// C.LWSP — CI format, funct3=010, op=10.
func cLwsp(rd Register, offset int32) uint16 {
	u := uint32(offset)
	imm5 := bit(u, 5)
	imm42 := (u >> 2) & 0x7
	imm76 := (u >> 6) & 0x3
	return uint16(0b010<<13 | imm5<<12 | uint32(rd.idx)<<7 | imm42<<4 | imm76<<2 | 0b10)
}

// C.SWSP — CSS format, funct3=110, op=10.
func cSwsp(rs2 Register, offset int32) uint16 {
	u := uint32(offset)
	imm52 := (u >> 2) & 0xF
	imm76 := (u >> 6) & 0x3
	return uint16(0b110<<13 | imm52<<9 | imm76<<7 | uint32(rs2.idx)<<2 | 0b10)
}

// C.FLW — CL format, funct3=011, op=00 (single-precision, 4-byte aligned).
func cFlw(rd FRegister, rs1 Register, offset int32) uint16 {
	u := uint32(offset)
	imm53 := (u >> 3) & 0x7
	imm2 := bit(u, 2)
	imm6 := bit(u, 6)
	return uint16(0b011<<13 | imm53<<10 | uint32(rs1.CIndex())<<7 | imm6<<5 | imm2<<6 | uint32(rd.CIndex())<<2 | 0b00)
}

// C.FSW — CS format, funct3=111, op=00.
func cFsw(rs1 Register, rs2 FRegister, offset int32) uint16 {
	u := uint32(offset)
	imm53 := (u >> 3) & 0x7
	imm2 := bit(u, 2)
	imm6 := bit(u, 6)
	return uint16(0b111<<13 | imm53<<10 | uint32(rs1.CIndex())<<7 | imm6<<5 | imm2<<6 | uint32(rs2.CIndex())<<2 | 0b00)
}

// C.FLD — CL format, funct3=001, op=00 (double-precision, 8-byte aligned).
func cFld(rd FRegister, rs1 Register, offset int32) uint16 {
	u := uint32(offset)
	imm53 := (u >> 3) & 0x7
	imm76 := (u >> 6) & 0x3
	return uint16(0b001<<13 | imm53<<10 | uint32(rs1.CIndex())<<7 | imm76<<5 | uint32(rd.CIndex())<<2 | 0b00)
}

// C.FSD — CS format, funct3=101, op=00.
func cFsd(rs1 Register, rs2 FRegister, offset int32) uint16 {
	u := uint32(offset)
	imm53 := (u >> 3) & 0x7
	imm76 := (u >> 6) & 0x3
	return uint16(0b101<<13 | imm53<<10 | uint32(rs1.CIndex())<<7 | imm76<<5 | uint32(rs2.CIndex())<<2 | 0b00)
}

// C.FLWSP — CI format, funct3=011, op=10.
func cFlwsp(rd FRegister, offset int32) uint16 {
	u := uint32(offset)
	imm5 := bit(u, 5)
	imm42 := (u >> 2) & 0x7
	imm76 := (u >> 6) & 0x3
	return uint16(0b011<<13 | imm5<<12 | uint32(rd.idx)<<7 | imm42<<4 | imm76<<2 | 0b10)
}

// C.FSWSP — CSS format, funct3=111, op=10.
func cFswsp(rs2 FRegister, offset int32) uint16 {
	u := uint32(offset)
	imm52 := (u >> 2) & 0xF
	imm76 := (u >> 6) & 0x3
	return uint16(0b111<<13 | imm52<<9 | imm76<<7 | uint32(rs2.idx)<<2 | 0b10)
}

// C.FLDSP — CI format, funct3=001, op=10.
func cFldsp(rd FRegister, offset int32) uint16 {
	u := uint32(offset)
	imm5 := bit(u, 5)
	imm43 := (u >> 3) & 0x3
	imm86 := (u >> 6) & 0x7
	return uint16(0b001<<13 | imm5<<12 | uint32(rd.idx)<<7 | imm43<<5 | imm86<<2 | 0b10)
}

// C.FSDSP — CSS format, funct3=101, op=10.
func cFsdsp(rs2 FRegister, offset int32) uint16 {
	u := uint32(offset)
	imm53 := (u >> 3) & 0x7
	imm86 := (u >> 6) & 0x7
	return uint16(0b101<<13 | imm53<<10 | imm86<<7 | uint32(rs2.idx)<<2 | 0b10)
}

// C.SRLI / C.SRAI / C.ANDI — CB format, funct3=100, op=01, selector bits
// at [11:10].
func cShiftImm(selector uint32, rd Register, shamt uint32) uint16 {
	b5 := bit(shamt, 5)
	b40 := shamt & 0x1F
	return uint16(0b100<<13 | b5<<12 | selector<<10 | uint32(rd.CIndex())<<7 | b40<<2 | 0b01)
}

func cSrli(rd Register, shamt uint32) uint16 { return cShiftImm(0b00, rd, shamt) }
func cSrai(rd Register, shamt uint32) uint16 { return cShiftImm(0b01, rd, shamt) }
func cAndi(rd Register, imm int32) uint16    { return cShiftImm(0b10, rd, uint32(imm)&0x3F) }

// C.SUB / C.XOR / C.OR / C.AND — CA format, op=01, [15:10]=100011.
func cArith(funct2 uint32, rd, rs2 Register) uint16 {
	return uint16(0b100011<<10 | uint32(rd.CIndex())<<7 | funct2<<5 | uint32(rs2.CIndex())<<2 | 0b01)
}

func cSub(rd, rs2 Register) uint16 { return cArith(0b00, rd, rs2) }
func cXor(rd, rs2 Register) uint16 { return cArith(0b01, rd, rs2) }
func cOr(rd, rs2 Register) uint16  { return cArith(0b10, rd, rs2) }
func cAnd(rd, rs2 Register) uint16 { return cArith(0b11, rd, rs2) }

// C.SLLI — CI format, funct3=000, op=10.
func cSlli(rd Register, shamt uint32) uint16 {
	b5 := bit(shamt, 5)
	b40 := shamt & 0x1F
	return uint16(0b000<<13 | b5<<12 | uint32(rd.idx)<<7 | b40<<2 | 0b10)
}

// C.JR / C.JALR / C.MV / C.ADD / C.EBREAK — CR format, [15:12]=funct4,
// [11:7]=rd/rs1, [6:2]=rs2, op=10.
func cCR(funct4 uint32, rdrs1 Register, rs2idx uint32) uint16 {
	return uint16(funct4<<12 | uint32(rdrs1.idx)<<7 | rs2idx<<2 | 0b10)
}

func cJr(rs1 Register) uint16           { return cCR(0b1000, rs1, 0) }
func cJalr(rs1 Register) uint16         { return cCR(0b1001, rs1, 0) }
func cMv(rd, rs2 Register) uint16       { return cCR(0b1000, rd, uint32(rs2.idx)) }
func cAddCR(rd, rs2 Register) uint16    { return cCR(0b1001, rd, uint32(rs2.idx)) }
func cEbreak() uint16                   { return cCR(0b1001, X0, 0) }

// C.J / C.JAL — CJ format, op=01. The 11-bit target field scatters
// imm[11|4|9:8|10|6|7|3:1|5] across instruction bits [12:2].
func cJField(imm int32) uint32 {
	u := uint32(imm)
	var f uint32
	f |= bit(u, 11) << 10
	f |= bit(u, 4) << 9
	f |= bit(u, 9) << 8
	f |= bit(u, 8) << 7
	f |= bit(u, 10) << 6
	f |= bit(u, 6) << 5
	f |= bit(u, 7) << 4
	f |= ((u >> 1) & 0x7) << 1
	f |= bit(u, 5)
	return f
}

func cJ(imm int32) uint16   { return uint16(0b101<<13 | cJField(imm)<<2 | 0b01) }
func cJal(imm int32) uint16 { return uint16(0b001<<13 | cJField(imm)<<2 | 0b01) }

// C.BEQZ / C.BNEZ — CB format, op=01. Offset scatters
// imm[8|4:3] rs1' imm[7:6|2:1|5] across instruction bits [12:2].
func cBranchZeroField(imm int32) (hi3, lo5 uint32) {
	u := uint32(imm)
	hi3 = bit(u, 8)<<2 | (u>>3)&0x3
	lo5 = (u>>6)&0x3<<3 | (u>>1)&0x3<<1 | bit(u, 5)
	return
}

func cBeqz(rs1 Register, imm int32) uint16 {
	hi3, lo5 := cBranchZeroField(imm)
	return uint16(0b110<<13 | hi3<<10 | uint32(rs1.CIndex())<<7 | lo5<<2 | 0b01)
}

func cBnez(rs1 Register, imm int32) uint16 {
	hi3, lo5 := cBranchZeroField(imm)
	return uint16(0b111<<13 | hi3<<10 | uint32(rs1.CIndex())<<7 | lo5<<2 | 0b01)
}
