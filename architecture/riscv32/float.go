package riscv32

// RV32F/RV32D: single- and double-precision floating point. Arithmetic,
// conversion, and compare mnemonics live on OP-FP (0x53); the four fused
// multiply-add mnemonics get their own R4-type opcodes. Multi-part names
// (fcvt.w.s, fmv.x.w, ...) are flat CamelCase per §9 — FcvtWS, FmvXW.

// RoundMode selects the dynamic rounding behavior of an FP instruction;
// values 5 and 6 are reserved by the ISA and deliberately absent here.
type RoundMode uint32

const (
	Rne RoundMode = 0 // round to nearest, ties to even
	Rtz RoundMode = 1 // round toward zero
	Rdn RoundMode = 2 // round down (toward -inf)
	Rup RoundMode = 3 // round up (toward +inf)
	Rmm RoundMode = 4 // round to nearest, ties to max magnitude
	Dyn RoundMode = 7 // use the dynamic rounding mode in frm
)

const (
	fmtS = 0b00
	fmtD = 0b01
)

func opFP(funct7, rs2idx, rs1idx, rm, rdidx uint32) uint32 {
	return funct7<<25 | rs2idx<<20 | rs1idx<<15 | rm<<12 | rdidx<<7 | 0x53
}

func r4Format(opcode, fmt, rs3idx, rs2idx, rs1idx, rm, rdidx uint32) uint32 {
	return rs3idx<<27 | fmt<<25 | rs2idx<<20 | rs1idx<<15 | rm<<12 | rdidx<<7 | opcode
}

func fLoadFormat(mnemonic string, funct3 uint32, rd FRegister, rs1 Register, imm int32) uint32 {
	checkRange(mnemonic, "imm", int64(imm), -2048, 2047)
	return (uint32(imm)&0xFFF)<<20 | uint32(rs1.idx)<<15 | funct3<<12 | uint32(rd.idx)<<7 | 0x07
}

func fStoreFormat(mnemonic string, funct3 uint32, rs1 Register, rs2 FRegister, imm int32) uint32 {
	checkRange(mnemonic, "imm", int64(imm), -2048, 2047)
	u := uint32(imm) & 0xFFF
	return (u>>5)<<25 | uint32(rs2.idx)<<20 | uint32(rs1.idx)<<15 | funct3<<12 | (u&0x1F)<<7 | 0x27
}

func (a *Assembler) requireF(mnemonic string) { requireExt(a.features, ExtF, mnemonic, "F") }
func (a *Assembler) requireD(mnemonic string) { requireExt(a.features, ExtD, mnemonic, "D") }

// --- loads/stores ---

func (a *Assembler) Flw(rd FRegister, m Mem) {
	a.requireF("flw")
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.IsCReg() && m.Base.IsCReg() &&
			m.Offset >= 0 && m.Offset <= 124 && m.Offset%4 == 0 {
			e.dh(cFlw(rd, m.Base, m.Offset), "c.flw")
			return
		}
		if a.features.Has(ExtC) && m.Base.Equal(Sp) && m.Offset >= 0 && m.Offset <= 252 && m.Offset%4 == 0 {
			e.dh(cFlwsp(rd, m.Offset), "c.flwsp")
			return
		}
		e.dw(fLoadFormat("flw", 0b010, rd, m.Base, m.Offset), "flw")
	})
}

func (a *Assembler) Fsw(rs2 FRegister, m Mem) {
	a.requireF("fsw")
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rs2.IsCReg() && m.Base.IsCReg() &&
			m.Offset >= 0 && m.Offset <= 124 && m.Offset%4 == 0 {
			e.dh(cFsw(m.Base, rs2, m.Offset), "c.fsw")
			return
		}
		if a.features.Has(ExtC) && m.Base.Equal(Sp) && m.Offset >= 0 && m.Offset <= 252 && m.Offset%4 == 0 {
			e.dh(cFswsp(rs2, m.Offset), "c.fswsp")
			return
		}
		e.dw(fStoreFormat("fsw", 0b010, m.Base, rs2, m.Offset), "fsw")
	})
}

func (a *Assembler) Fld(rd FRegister, m Mem) {
	a.requireD("fld")
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.IsCReg() && m.Base.IsCReg() &&
			m.Offset >= 0 && m.Offset <= 248 && m.Offset%8 == 0 {
			e.dh(cFld(rd, m.Base, m.Offset), "c.fld")
			return
		}
		if a.features.Has(ExtC) && m.Base.Equal(Sp) && m.Offset >= 0 && m.Offset <= 504 && m.Offset%8 == 0 {
			e.dh(cFldsp(rd, m.Offset), "c.fldsp")
			return
		}
		e.dw(fLoadFormat("fld", 0b011, rd, m.Base, m.Offset), "fld")
	})
}

func (a *Assembler) Fsd(rs2 FRegister, m Mem) {
	a.requireD("fsd")
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rs2.IsCReg() && m.Base.IsCReg() &&
			m.Offset >= 0 && m.Offset <= 248 && m.Offset%8 == 0 {
			e.dh(cFsd(m.Base, rs2, m.Offset), "c.fsd")
			return
		}
		if a.features.Has(ExtC) && m.Base.Equal(Sp) && m.Offset >= 0 && m.Offset <= 504 && m.Offset%8 == 0 {
			e.dh(cFsdsp(rs2, m.Offset), "c.fsdsp")
			return
		}
		e.dw(fStoreFormat("fsd", 0b011, m.Base, rs2, m.Offset), "fsd")
	})
}

// --- fused multiply-add family (R4-type, own opcodes) ---

func (a *Assembler) fma(mnemonic string, opcode, fmt uint32, rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.env.emit(func(e *environment) {
		e.dw(r4Format(opcode, fmt, uint32(rs3.idx), uint32(rs2.idx), uint32(rs1.idx), uint32(rm), uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FmaddS(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireF("fmadd.s")
	a.fma("fmadd.s", 0x43, fmtS, rd, rs1, rs2, rs3, rm)
}
func (a *Assembler) FmaddD(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireD("fmadd.d")
	a.fma("fmadd.d", 0x43, fmtD, rd, rs1, rs2, rs3, rm)
}
func (a *Assembler) FmsubS(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireF("fmsub.s")
	a.fma("fmsub.s", 0x47, fmtS, rd, rs1, rs2, rs3, rm)
}
func (a *Assembler) FmsubD(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireD("fmsub.d")
	a.fma("fmsub.d", 0x47, fmtD, rd, rs1, rs2, rs3, rm)
}
func (a *Assembler) FnmsubS(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireF("fnmsub.s")
	a.fma("fnmsub.s", 0x4B, fmtS, rd, rs1, rs2, rs3, rm)
}
func (a *Assembler) FnmsubD(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireD("fnmsub.d")
	a.fma("fnmsub.d", 0x4B, fmtD, rd, rs1, rs2, rs3, rm)
}
func (a *Assembler) FnmaddS(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireF("fnmadd.s")
	a.fma("fnmadd.s", 0x4F, fmtS, rd, rs1, rs2, rs3, rm)
}
func (a *Assembler) FnmaddD(rd, rs1, rs2, rs3 FRegister, rm RoundMode) {
	a.requireD("fnmadd.d")
	a.fma("fnmadd.d", 0x4F, fmtD, rd, rs1, rs2, rs3, rm)
}

// --- arithmetic ---

func (a *Assembler) farith(mnemonic string, funct5, fmt uint32, rd, rs1, rs2 FRegister, rm RoundMode) {
	a.env.emit(func(e *environment) {
		e.dw(opFP(funct5<<2|fmt, uint32(rs2.idx), uint32(rs1.idx), uint32(rm), uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FaddS(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireF("fadd.s")
	a.farith("fadd.s", 0b00000, fmtS, rd, rs1, rs2, rm)
}
func (a *Assembler) FaddD(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireD("fadd.d")
	a.farith("fadd.d", 0b00000, fmtD, rd, rs1, rs2, rm)
}
func (a *Assembler) FsubS(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireF("fsub.s")
	a.farith("fsub.s", 0b00001, fmtS, rd, rs1, rs2, rm)
}
func (a *Assembler) FsubD(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireD("fsub.d")
	a.farith("fsub.d", 0b00001, fmtD, rd, rs1, rs2, rm)
}
func (a *Assembler) FmulS(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireF("fmul.s")
	a.farith("fmul.s", 0b00010, fmtS, rd, rs1, rs2, rm)
}
func (a *Assembler) FmulD(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireD("fmul.d")
	a.farith("fmul.d", 0b00010, fmtD, rd, rs1, rs2, rm)
}
func (a *Assembler) FdivS(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireF("fdiv.s")
	a.farith("fdiv.s", 0b00011, fmtS, rd, rs1, rs2, rm)
}
func (a *Assembler) FdivD(rd, rs1, rs2 FRegister, rm RoundMode) {
	a.requireD("fdiv.d")
	a.farith("fdiv.d", 0b00011, fmtD, rd, rs1, rs2, rm)
}

func (a *Assembler) fsqrt(mnemonic string, fmt uint32, rd, rs1 FRegister, rm RoundMode) {
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b01011<<2|fmt, 0, uint32(rs1.idx), uint32(rm), uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FsqrtS(rd, rs1 FRegister, rm RoundMode) {
	a.requireF("fsqrt.s")
	a.fsqrt("fsqrt.s", fmtS, rd, rs1, rm)
}
func (a *Assembler) FsqrtD(rd, rs1 FRegister, rm RoundMode) {
	a.requireD("fsqrt.d")
	a.fsqrt("fsqrt.d", fmtD, rd, rs1, rm)
}

// --- sign injection ---

func (a *Assembler) fsgnj(mnemonic string, funct3, fmt uint32, rd, rs1, rs2 FRegister) {
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b00100<<2|fmt, uint32(rs2.idx), uint32(rs1.idx), funct3, uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FsgnjS(rd, rs1, rs2 FRegister) {
	a.requireF("fsgnj.s")
	a.fsgnj("fsgnj.s", 0b000, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FsgnjD(rd, rs1, rs2 FRegister) {
	a.requireD("fsgnj.d")
	a.fsgnj("fsgnj.d", 0b000, fmtD, rd, rs1, rs2)
}
func (a *Assembler) FsgnjnS(rd, rs1, rs2 FRegister) {
	a.requireF("fsgnjn.s")
	a.fsgnj("fsgnjn.s", 0b001, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FsgnjnD(rd, rs1, rs2 FRegister) {
	a.requireD("fsgnjn.d")
	a.fsgnj("fsgnjn.d", 0b001, fmtD, rd, rs1, rs2)
}
func (a *Assembler) FsgnjxS(rd, rs1, rs2 FRegister) {
	a.requireF("fsgnjx.s")
	a.fsgnj("fsgnjx.s", 0b010, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FsgnjxD(rd, rs1, rs2 FRegister) {
	a.requireD("fsgnjx.d")
	a.fsgnj("fsgnjx.d", 0b010, fmtD, rd, rs1, rs2)
}

// FmvS/FnegS/FabsS (and their D counterparts) are the standard
// sign-injection pseudo-ops: each is its fsgnj* variant with rs2==rs1.
func (a *Assembler) FmvS(rd, rs FRegister)  { a.FsgnjS(rd, rs, rs) }
func (a *Assembler) FnegS(rd, rs FRegister) { a.FsgnjnS(rd, rs, rs) }
func (a *Assembler) FabsS(rd, rs FRegister) { a.FsgnjxS(rd, rs, rs) }
func (a *Assembler) FmvD(rd, rs FRegister)  { a.FsgnjD(rd, rs, rs) }
func (a *Assembler) FnegD(rd, rs FRegister) { a.FsgnjnD(rd, rs, rs) }
func (a *Assembler) FabsD(rd, rs FRegister) { a.FsgnjxD(rd, rs, rs) }

// --- min/max ---

func (a *Assembler) fminmax(mnemonic string, funct3, fmt uint32, rd, rs1, rs2 FRegister) {
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b00101<<2|fmt, uint32(rs2.idx), uint32(rs1.idx), funct3, uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FminS(rd, rs1, rs2 FRegister) {
	a.requireF("fmin.s")
	a.fminmax("fmin.s", 0b000, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FminD(rd, rs1, rs2 FRegister) {
	a.requireD("fmin.d")
	a.fminmax("fmin.d", 0b000, fmtD, rd, rs1, rs2)
}
func (a *Assembler) FmaxS(rd, rs1, rs2 FRegister) {
	a.requireF("fmax.s")
	a.fminmax("fmax.s", 0b001, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FmaxD(rd, rs1, rs2 FRegister) {
	a.requireD("fmax.d")
	a.fminmax("fmax.d", 0b001, fmtD, rd, rs1, rs2)
}

// --- conversions (float -> int) ---

func (a *Assembler) fcvtToInt(mnemonic string, fmt, rs2sel uint32, rd Register, rs1 FRegister, rm RoundMode) {
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b11000<<2|fmt, rs2sel, uint32(rs1.idx), uint32(rm), uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FcvtWS(rd Register, rs1 FRegister, rm RoundMode) {
	a.requireF("fcvt.w.s")
	a.fcvtToInt("fcvt.w.s", fmtS, 0b00000, rd, rs1, rm)
}
func (a *Assembler) FcvtWuS(rd Register, rs1 FRegister, rm RoundMode) {
	a.requireF("fcvt.wu.s")
	a.fcvtToInt("fcvt.wu.s", fmtS, 0b00001, rd, rs1, rm)
}
func (a *Assembler) FcvtWD(rd Register, rs1 FRegister, rm RoundMode) {
	a.requireD("fcvt.w.d")
	a.fcvtToInt("fcvt.w.d", fmtD, 0b00000, rd, rs1, rm)
}
func (a *Assembler) FcvtWuD(rd Register, rs1 FRegister, rm RoundMode) {
	a.requireD("fcvt.wu.d")
	a.fcvtToInt("fcvt.wu.d", fmtD, 0b00001, rd, rs1, rm)
}

// --- conversions (int -> float) ---

func (a *Assembler) fcvtFromInt(mnemonic string, fmt, rs2sel uint32, rd FRegister, rs1 Register, rm RoundMode) {
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b11010<<2|fmt, rs2sel, uint32(rs1.idx), uint32(rm), uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FcvtSW(rd FRegister, rs1 Register, rm RoundMode) {
	a.requireF("fcvt.s.w")
	a.fcvtFromInt("fcvt.s.w", fmtS, 0b00000, rd, rs1, rm)
}
func (a *Assembler) FcvtSWu(rd FRegister, rs1 Register, rm RoundMode) {
	a.requireF("fcvt.s.wu")
	a.fcvtFromInt("fcvt.s.wu", fmtS, 0b00001, rd, rs1, rm)
}

// FcvtDW/FcvtDWu always round rne: widening an int32 into a double is
// exact, so the rm field is fixed rather than exposed to the caller.
func (a *Assembler) FcvtDW(rd FRegister, rs1 Register) {
	a.requireD("fcvt.d.w")
	a.fcvtFromInt("fcvt.d.w", fmtD, 0b00000, rd, rs1, Rne)
}
func (a *Assembler) FcvtDWu(rd FRegister, rs1 Register) {
	a.requireD("fcvt.d.wu")
	a.fcvtFromInt("fcvt.d.wu", fmtD, 0b00001, rd, rs1, Rne)
}

// --- float <-> float width conversion ---

// FcvtDS widens single to double; always exact, rm fixed rne.
func (a *Assembler) FcvtDS(rd, rs1 FRegister) {
	a.requireD("fcvt.d.s")
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b0100001, 0b00000, uint32(rs1.idx), uint32(Rne), uint32(rd.idx)), "fcvt.d.s")
	})
}

// FcvtSD narrows double to single; takes an explicit rounding mode.
func (a *Assembler) FcvtSD(rd, rs1 FRegister, rm RoundMode) {
	a.requireF("fcvt.s.d")
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b0100000, 0b00001, uint32(rs1.idx), uint32(rm), uint32(rd.idx)), "fcvt.s.d")
	})
}

// --- bit-pattern move ---

func (a *Assembler) FmvXW(rd Register, rs1 FRegister) {
	a.requireF("fmv.x.w")
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b1110000, 0, uint32(rs1.idx), 0b000, uint32(rd.idx)), "fmv.x.w")
	})
}

func (a *Assembler) FmvWX(rd FRegister, rs1 Register) {
	a.requireF("fmv.w.x")
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b1111000, 0, uint32(rs1.idx), 0b000, uint32(rd.idx)), "fmv.w.x")
	})
}

// --- compare ---

func (a *Assembler) fcompare(mnemonic string, funct3, fmt uint32, rd Register, rs1, rs2 FRegister) {
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b10100<<2|fmt, uint32(rs2.idx), uint32(rs1.idx), funct3, uint32(rd.idx)), mnemonic)
	})
}

func (a *Assembler) FeqS(rd Register, rs1, rs2 FRegister) {
	a.requireF("feq.s")
	a.fcompare("feq.s", 0b010, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FeqD(rd Register, rs1, rs2 FRegister) {
	a.requireD("feq.d")
	a.fcompare("feq.d", 0b010, fmtD, rd, rs1, rs2)
}
func (a *Assembler) FltS(rd Register, rs1, rs2 FRegister) {
	a.requireF("flt.s")
	a.fcompare("flt.s", 0b001, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FltD(rd Register, rs1, rs2 FRegister) {
	a.requireD("flt.d")
	a.fcompare("flt.d", 0b001, fmtD, rd, rs1, rs2)
}
func (a *Assembler) FleS(rd Register, rs1, rs2 FRegister) {
	a.requireF("fle.s")
	a.fcompare("fle.s", 0b000, fmtS, rd, rs1, rs2)
}
func (a *Assembler) FleD(rd Register, rs1, rs2 FRegister) {
	a.requireD("fle.d")
	a.fcompare("fle.d", 0b000, fmtD, rd, rs1, rs2)
}

// --- classify ---

func (a *Assembler) FclassS(rd Register, rs1 FRegister) {
	a.requireF("fclass.s")
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b1110000, 0, uint32(rs1.idx), 0b001, uint32(rd.idx)), "fclass.s")
	})
}

func (a *Assembler) FclassD(rd Register, rs1 FRegister) {
	a.requireD("fclass.d")
	a.env.emit(func(e *environment) {
		e.dw(opFP(0b1110001, 0, uint32(rs1.idx), 0b001, uint32(rd.idx)), "fclass.d")
	})
}
