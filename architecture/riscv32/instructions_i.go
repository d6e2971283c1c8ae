package riscv32

// RV32I base integer instructions plus the §4.E pseudo-op set. Every
// base mnemonic method queues exactly one deferred emitter via
// (*environment).emit (Li may queue two: a lui and an addi);
// compression-eligible mnemonics branch on a.features.Has(ExtC) inline,
// following the feature-set-as-bitmask design instead of an override
// chain (§9 Design Notes). Mnemonic naming is flat CamelCase even for
// RISC-V's multi-part names (lr.w -> LrW) — the nested-class grouping
// the source uses is cosmetic and not reproduced here (§9).

// --- loads ---

func (a *Assembler) Lb(rd Register, m Mem) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("lb", 0x03, 0b000, rd, m.Base, m.Offset), "lb")
	})
}

func (a *Assembler) Lh(rd Register, m Mem) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("lh", 0x03, 0b001, rd, m.Base, m.Offset), "lh")
	})
}

func (a *Assembler) Lw(rd Register, m Mem) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.IsCReg() && m.Base.IsCReg() &&
			m.Offset >= 0 && m.Offset <= 124 && m.Offset%4 == 0 {
			e.dh(cLw(rd, m.Base, m.Offset), "c.lw")
			return
		}
		if a.features.Has(ExtC) && m.Base.Equal(Sp) && !rd.Equal(Zero) &&
			m.Offset >= 0 && m.Offset <= 252 && m.Offset%4 == 0 {
			e.dh(cLwsp(rd, m.Offset), "c.lwsp")
			return
		}
		e.dw(iFormat("lw", 0x03, 0b010, rd, m.Base, m.Offset), "lw")
	})
}

func (a *Assembler) Lbu(rd Register, m Mem) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("lbu", 0x03, 0b100, rd, m.Base, m.Offset), "lbu")
	})
}

// Lhu uses funct3=0b101; the source's emission table mistakenly reused
// lbu's funct3 (0b100) for lhu (see SPEC_FULL.md §C).
func (a *Assembler) Lhu(rd Register, m Mem) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("lhu", 0x03, 0b101, rd, m.Base, m.Offset), "lhu")
	})
}

// --- stores ---

func (a *Assembler) Sb(rs2 Register, m Mem) {
	a.env.emit(func(e *environment) {
		e.dw(sFormat("sb", 0x23, 0b000, m.Base, rs2, m.Offset), "sb")
	})
}

func (a *Assembler) Sh(rs2 Register, m Mem) {
	a.env.emit(func(e *environment) {
		e.dw(sFormat("sh", 0x23, 0b001, m.Base, rs2, m.Offset), "sh")
	})
}

func (a *Assembler) Sw(rs2 Register, m Mem) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rs2.IsCReg() && m.Base.IsCReg() &&
			m.Offset >= 0 && m.Offset <= 124 && m.Offset%4 == 0 {
			e.dh(cSw(m.Base, rs2, m.Offset), "c.sw")
			return
		}
		if a.features.Has(ExtC) && m.Base.Equal(Sp) &&
			m.Offset >= 0 && m.Offset <= 252 && m.Offset%4 == 0 {
			e.dh(cSwsp(rs2, m.Offset), "c.swsp")
			return
		}
		e.dw(sFormat("sw", 0x23, 0b010, m.Base, rs2, m.Offset), "sw")
	})
}

// --- arithmetic-immediate ---

func (a *Assembler) Addi(rd, rs1 Register, imm int32) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) {
			if rd.Equal(Zero) && rs1.Equal(Zero) && imm == 0 {
				e.dh(cAddi(Zero, 0), "c.nop")
				return
			}
			if rd.IsCReg() && rs1.Equal(Sp) && imm != 0 && imm%4 == 0 && imm >= 4 && imm <= 1020 {
				e.dh(cAddi4spn(rd, uint32(imm)), "c.addi4spn")
				return
			}
			if rd.Equal(Sp) && rs1.Equal(Sp) && imm != 0 && imm%16 == 0 && imm >= -512 && imm <= 496 {
				e.dh(cAddi16sp(imm), "c.addi16sp")
				return
			}
			if rd.Equal(rs1) && !rd.Equal(Zero) && imm != 0 && imm >= -32 && imm <= 31 {
				e.dh(cAddi(rd, imm), "c.addi")
				return
			}
			if !rd.Equal(Zero) && rs1.Equal(Zero) && imm >= -32 && imm <= 31 {
				e.dh(cLi(rd, imm), "c.li")
				return
			}
		}
		e.dw(iFormat("addi", 0x13, 0b000, rd, rs1, imm), "addi")
	})
}

func (a *Assembler) Slti(rd, rs1 Register, imm int32) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("slti", 0x13, 0b010, rd, rs1, imm), "slti")
	})
}

func (a *Assembler) Sltiu(rd, rs1 Register, imm int32) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("sltiu", 0x13, 0b011, rd, rs1, imm), "sltiu")
	})
}

func (a *Assembler) Xori(rd, rs1 Register, imm int32) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("xori", 0x13, 0b100, rd, rs1, imm), "xori")
	})
}

func (a *Assembler) Ori(rd, rs1 Register, imm int32) {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("ori", 0x13, 0b110, rd, rs1, imm), "ori")
	})
}

func (a *Assembler) Andi(rd, rs1 Register, imm int32) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.IsCReg() && rd.Equal(rs1) && imm >= -32 && imm <= 31 {
			e.dh(cAndi(rd, imm), "c.andi")
			return
		}
		e.dw(iFormat("andi", 0x13, 0b111, rd, rs1, imm), "andi")
	})
}

func shiftImmFormat(mnemonic string, funct7, funct3 uint32, rd, rs1 Register, shamt uint32) uint32 {
	checkRange(mnemonic, "shamt", int64(shamt), 0, 31)
	return funct7<<25 | shamt<<20 | uint32(rs1.idx)<<15 | funct3<<12 | uint32(rd.idx)<<7 | 0x13
}

func (a *Assembler) Slli(rd, rs1 Register, shamt uint32) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.Equal(rs1) && !rd.Equal(Zero) && shamt >= 1 && shamt <= 31 {
			e.dh(cSlli(rd, shamt), "c.slli")
			return
		}
		e.dw(shiftImmFormat("slli", 0b0000000, 0b001, rd, rs1, shamt), "slli")
	})
}

func (a *Assembler) Srli(rd, rs1 Register, shamt uint32) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.IsCReg() && rd.Equal(rs1) && shamt >= 1 && shamt <= 31 {
			e.dh(cSrli(rd, shamt), "c.srli")
			return
		}
		e.dw(shiftImmFormat("srli", 0b0000000, 0b101, rd, rs1, shamt), "srli")
	})
}

func (a *Assembler) Srai(rd, rs1 Register, shamt uint32) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.IsCReg() && rd.Equal(rs1) && shamt >= 1 && shamt <= 31 {
			e.dh(cSrai(rd, shamt), "c.srai")
			return
		}
		e.dw(shiftImmFormat("srai", 0b0100000, 0b101, rd, rs1, shamt), "srai")
	})
}

// --- arithmetic register-register ---

func (a *Assembler) Add(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) {
			if rd.Equal(rs1) && !rd.Equal(Zero) && !rs2.Equal(Zero) {
				e.dh(cAddCR(rd, rs2), "c.add")
				return
			}
			if !rd.Equal(Zero) && rs1.Equal(Zero) && !rs2.Equal(Zero) {
				e.dh(cMv(rd, rs2), "c.mv")
				return
			}
		}
		e.dw(rFormat(0x33, 0b000, 0b0000000, rd, rs1, rs2), "add")
	})
}

func (a *Assembler) Sub(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.Equal(rs1) && rd.IsCReg() && rs2.IsCReg() {
			e.dh(cSub(rd, rs2), "c.sub")
			return
		}
		e.dw(rFormat(0x33, 0b000, 0b0100000, rd, rs1, rs2), "sub")
	})
}

func (a *Assembler) Sll(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		e.dw(rFormat(0x33, 0b001, 0b0000000, rd, rs1, rs2), "sll")
	})
}

func (a *Assembler) Slt(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		e.dw(rFormat(0x33, 0b010, 0b0000000, rd, rs1, rs2), "slt")
	})
}

func (a *Assembler) Sltu(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		e.dw(rFormat(0x33, 0b011, 0b0000000, rd, rs1, rs2), "sltu")
	})
}

func (a *Assembler) Xor(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.Equal(rs1) && rd.IsCReg() && rs2.IsCReg() {
			e.dh(cXor(rd, rs2), "c.xor")
			return
		}
		e.dw(rFormat(0x33, 0b100, 0b0000000, rd, rs1, rs2), "xor")
	})
}

func (a *Assembler) Srl(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		e.dw(rFormat(0x33, 0b101, 0b0000000, rd, rs1, rs2), "srl")
	})
}

func (a *Assembler) Sra(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		e.dw(rFormat(0x33, 0b101, 0b0100000, rd, rs1, rs2), "sra")
	})
}

func (a *Assembler) Or(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.Equal(rs1) && rd.IsCReg() && rs2.IsCReg() {
			e.dh(cOr(rd, rs2), "c.or")
			return
		}
		e.dw(rFormat(0x33, 0b110, 0b0000000, rd, rs1, rs2), "or")
	})
}

func (a *Assembler) And(rd, rs1, rs2 Register) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && rd.Equal(rs1) && rd.IsCReg() && rs2.IsCReg() {
			e.dh(cAnd(rd, rs2), "c.and")
			return
		}
		e.dw(rFormat(0x33, 0b111, 0b0000000, rd, rs1, rs2), "and")
	})
}

// --- branches ---

func (a *Assembler) branch(mnemonic string, funct3 uint32, zeroCompress func(Register, int32) uint16, zeroTag string, rs1, rs2 Register, label Label) {
	a.env.emit(func(e *environment) {
		disp := label.resolve(e)
		if a.features.Has(ExtC) && zeroCompress != nil && rs2.Equal(Zero) && rs1.IsCReg() &&
			disp >= -256 && disp <= 254 && disp%2 == 0 {
			e.dh(zeroCompress(rs1, disp), zeroTag)
			return
		}
		e.dw(bFormat(mnemonic, 0x63, funct3, rs1, rs2, disp), mnemonic)
	})
}

func (a *Assembler) Beq(rs1, rs2 Register, label Label) {
	a.branch("beq", 0b000, cBeqz, "c.beqz", rs1, rs2, label)
}

func (a *Assembler) Bne(rs1, rs2 Register, label Label) {
	a.branch("bne", 0b001, cBnez, "c.bnez", rs1, rs2, label)
}

func (a *Assembler) Blt(rs1, rs2 Register, label Label) {
	a.branch("blt", 0b100, nil, "", rs1, rs2, label)
}

func (a *Assembler) Bge(rs1, rs2 Register, label Label) {
	a.branch("bge", 0b101, nil, "", rs1, rs2, label)
}

func (a *Assembler) Bltu(rs1, rs2 Register, label Label) {
	a.branch("bltu", 0b110, nil, "", rs1, rs2, label)
}

func (a *Assembler) Bgeu(rs1, rs2 Register, label Label) {
	a.branch("bgeu", 0b111, nil, "", rs1, rs2, label)
}

// --- jumps ---

func (a *Assembler) Jal(rd Register, label Label) {
	a.env.emit(func(e *environment) {
		disp := label.resolve(e)
		if a.features.Has(ExtC) && disp >= -2048 && disp <= 2046 && disp%2 == 0 {
			if rd.Equal(Zero) {
				e.dh(cJ(disp), "c.j")
				return
			}
			if rd.Equal(Ra) {
				e.dh(cJal(disp), "c.jal")
				return
			}
		}
		e.dw(jFormat("jal", 0x6F, rd, disp), "jal")
	})
}

func (a *Assembler) Jalr(rd, rs1 Register, imm int32) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && imm == 0 && !rs1.Equal(Zero) {
			if rd.Equal(Zero) {
				e.dh(cJr(rs1), "c.jr")
				return
			}
			if rd.Equal(Ra) {
				e.dh(cJalr(rs1), "c.jalr")
				return
			}
		}
		e.dw(iFormat("jalr", 0x67, 0b000, rd, rs1, imm), "jalr")
	})
}

// --- upper immediate ---

func (a *Assembler) Lui(rd Register, imm20 uint32) {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) && !rd.Equal(Zero) && !rd.Equal(Sp) && imm20 != 0 &&
			(imm20 <= 31 || (imm20 >= 0xFFFE0 && imm20 <= 0xFFFFF)) {
			e.dh(cLui(rd, imm20), "c.lui")
			return
		}
		e.dw(uFormat("lui", 0x37, rd, imm20), "lui")
	})
}

func (a *Assembler) Auipc(rd Register, imm20 uint32) {
	a.env.emit(func(e *environment) {
		e.dw(uFormat("auipc", 0x17, rd, imm20), "auipc")
	})
}

// --- system ---

func (a *Assembler) Ecall() {
	a.env.emit(func(e *environment) {
		e.dw(iFormat("ecall", 0x73, 0b000, Zero, Zero, 0), "ecall")
	})
}

func (a *Assembler) Ebreak() {
	a.env.emit(func(e *environment) {
		if a.features.Has(ExtC) {
			e.dh(cEbreak(), "c.ebreak")
			return
		}
		e.dw(iFormat("ebreak", 0x73, 0b000, Zero, Zero, 1), "ebreak")
	})
}

// --- pseudo-ops (§4.E) ---

func (a *Assembler) Nop()                           { a.Addi(Zero, Zero, 0) }
func (a *Assembler) Mv(rd, rs Register)              { a.Addi(rd, rs, 0) }
func (a *Assembler) Not(rd, rs Register)             { a.Xori(rd, rs, -1) }
func (a *Assembler) Neg(rd, rs Register)             { a.Sub(rd, Zero, rs) }
func (a *Assembler) Seqz(rd, rs Register)            { a.Sltiu(rd, rs, 1) }
func (a *Assembler) Snez(rd, rs Register)            { a.Sltu(rd, Zero, rs) }
func (a *Assembler) Sltz(rd, rs Register)            { a.Slt(rd, rs, Zero) }
func (a *Assembler) Sgtz(rd, rs Register)            { a.Slt(rd, Zero, rs) }

func (a *Assembler) Beqz(rs Register, label Label) { a.Beq(rs, Zero, label) }
func (a *Assembler) Bnez(rs Register, label Label) { a.Bne(rs, Zero, label) }
func (a *Assembler) Blez(rs Register, label Label) { a.Bge(Zero, rs, label) }
func (a *Assembler) Bgez(rs Register, label Label) { a.Bge(rs, Zero, label) }
func (a *Assembler) Bltz(rs Register, label Label) { a.Blt(rs, Zero, label) }
func (a *Assembler) Bgtz(rs Register, label Label) { a.Blt(Zero, rs, label) }

func (a *Assembler) Bgt(rs, rt Register, label Label)  { a.Blt(rt, rs, label) }
func (a *Assembler) Ble(rs, rt Register, label Label)  { a.Bge(rt, rs, label) }
func (a *Assembler) Bgtu(rs, rt Register, label Label) { a.Bltu(rt, rs, label) }
func (a *Assembler) Bleu(rs, rt Register, label Label) { a.Bgeu(rt, rs, label) }

func (a *Assembler) J(label Label)    { a.Jal(Zero, label) }
func (a *Assembler) JalTo(label Label) { a.Jal(Ra, label) }

func (a *Assembler) Jr(rs Register)     { a.Jalr(Zero, rs, 0) }
func (a *Assembler) JalrTo(rs Register) { a.Jalr(Ra, rs, 0) }
func (a *Assembler) Ret()               { a.Jalr(Zero, Ra, 0) }

// splitHiLo implements the standard RISC-V 32-bit immediate materialization
// split: hi is a multiple of 4096 suitable for lui/auipc, lo is a signed
// 12-bit value such that hi+lo == imm exactly, correcting for addi's sign
// extension of lo via the +0x1000 rounding trick.
func splitHiLo(imm int32) (hi int32, lo int32) {
	u := uint32(imm)
	h := (u & 0xFFFFF000) + ((u & 0x800) << 1)
	l := u & 0xFFF
	lo32 := int32(l)
	if l&0x800 != 0 {
		lo32 -= 0x1000
	}
	return int32(h), lo32
}

func hi20(hi int32) uint32 {
	return (uint32(hi) >> 12) & 0xFFFFF
}

// Li materializes an arbitrary 32-bit constant into rd, using a single
// addi when it fits in 12 signed bits (letting Addi's own compression
// selection produce c.li for small positive/negative values) and a
// lui otherwise, followed by an addi unless the low 12 bits are zero.
func (a *Assembler) Li(rd Register, imm int32) {
	hi, lo := splitHiLo(imm)
	if hi != 0 {
		a.Lui(rd, hi20(hi))
		if lo != 0 {
			a.Addi(rd, rd, lo)
		}
	} else {
		a.Addi(rd, Zero, lo)
	}
}

// Call always emits an auipc+jalr pair, 8 bytes, regardless of whether
// the C extension is enabled — far calls are never compressed.
func (a *Assembler) Call(label Label) {
	a.env.emit(func(e *environment) {
		disp := label.resolve(e)
		hi, lo := splitHiLo(disp)
		e.dw(uFormat("call", 0x17, Ra, hi20(hi)), "auipc")
		e.dw(iFormat("call", 0x67, 0b000, Ra, Ra, lo), "jalr")
	})
}

// Tail is Call's non-returning sibling: it uses t1 as the scratch link
// register (per the standard RISC-V calling convention, since ra must
// stay live for the caller-of-caller) and discards the return address.
func (a *Assembler) Tail(label Label) {
	a.env.emit(func(e *environment) {
		disp := label.resolve(e)
		hi, lo := splitHiLo(disp)
		e.dw(uFormat("tail", 0x17, T1, hi20(hi)), "auipc")
		e.dw(iFormat("tail", 0x67, 0b000, Zero, T1, lo), "jalr")
	})
}
