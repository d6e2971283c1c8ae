package riscv32

// RV32A: load-reserved/store-conditional and the AMO read-modify-write
// family. Opcode 0x2F, funct3=0b010 (word width) for every member; the
// funct5 field selects the operation. Multi-part mnemonics (lr.w,
// amoswap.w, ...) are spelled as flat CamelCase methods per §9's
// "nested-class trick is cosmetic" note — LrW, ScW, AmoswapW, and so on.
//
// aq/rl are always cleared at these call sites (SPEC_FULL.md §C.1): this
// package assembles single-threaded or externally-synchronized code
// sequences, never acquire/release barriers.

// aFormat keeps the aq/rl bits as real parameters, matching the bit layout
// the original source's atomic format builder carries — even though every
// mnemonic below always passes false, false (SPEC_FULL.md §C.1).
func aFormat(funct5 uint32, aq, rl bool, rd, rs1, rs2 Register) uint32 {
	return funct5<<27 | b2u(aq)<<26 | b2u(rl)<<25 | uint32(rs2.idx)<<20 | uint32(rs1.idx)<<15 | 0b010<<12 | uint32(rd.idx)<<7 | 0x2F
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// atomicFormat is the fixed-aq/rl convenience every mnemonic method below
// calls; this package assembles single-threaded or externally-synchronized
// sequences, never acquire/release barriers.
func atomicFormat(mnemonic string, funct5 uint32, rd, rs1, rs2 Register) uint32 {
	return aFormat(funct5, false, false, rd, rs1, rs2)
}

func (a *Assembler) amo(mnemonic string, funct5 uint32, rd, rs1, rs2 Register) {
	requireExt(a.features, ExtA, mnemonic, "A")
	a.env.emit(func(e *environment) {
		e.dw(atomicFormat(mnemonic, funct5, rd, rs1, rs2), mnemonic)
	})
}

// LrW loads reserved from (rs1); rs2 is architecturally fixed to x0.
func (a *Assembler) LrW(rd, rs1 Register) { a.amo("lr.w", 0b00010, rd, rs1, Zero) }

// ScW stores conditional from rs2 to (rs1), writing 0/1 success to rd.
func (a *Assembler) ScW(rd, rs1, rs2 Register) { a.amo("sc.w", 0b00011, rd, rs1, rs2) }

func (a *Assembler) AmoswapW(rd, rs1, rs2 Register) { a.amo("amoswap.w", 0b00001, rd, rs1, rs2) }
func (a *Assembler) AmoaddW(rd, rs1, rs2 Register)  { a.amo("amoadd.w", 0b00000, rd, rs1, rs2) }
func (a *Assembler) AmoxorW(rd, rs1, rs2 Register)  { a.amo("amoxor.w", 0b00100, rd, rs1, rs2) }
func (a *Assembler) AmoandW(rd, rs1, rs2 Register)  { a.amo("amoand.w", 0b01100, rd, rs1, rs2) }
func (a *Assembler) AmoorW(rd, rs1, rs2 Register)   { a.amo("amoor.w", 0b01000, rd, rs1, rs2) }
func (a *Assembler) AmominW(rd, rs1, rs2 Register)  { a.amo("amomin.w", 0b10000, rd, rs1, rs2) }
func (a *Assembler) AmomaxW(rd, rs1, rs2 Register)  { a.amo("amomax.w", 0b10100, rd, rs1, rs2) }
func (a *Assembler) AmominuW(rd, rs1, rs2 Register) { a.amo("amominu.w", 0b11000, rd, rs1, rs2) }
func (a *Assembler) AmomaxuW(rd, rs1, rs2 Register) { a.amo("amomaxu.w", 0b11100, rd, rs1, rs2) }
