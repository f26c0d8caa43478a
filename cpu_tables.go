package dmg

// baseOps is the primary 256-entry dispatch table, keyed on the opcode
// fetched at PC. Populated exhaustively: the 11 undefined primary opcodes
// (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD) are
// wired to a silent no-op, matching real hardware rather than being left as
// a gap a switch could fall through. Built the same way the teacher builds
// its baseOps/cbOps: a loop over the regular encodings (LD r,r'; INC/DEC r;
// the ALU 0x80-0xBF block; RST), then explicit per-opcode assignment for
// everything irregular.
var baseOps [256]func(*State)

func init() {
	for i := range baseOps {
		baseOps[i] = opNOP // unused opcodes no-op, as on real hardware
	}

	// LD r, r' (0x40-0x7F), with 0x76 reserved for HALT.
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			baseOps[op] = opHALT
			continue
		}
		dest := byte(op>>3) & 0x07
		src := byte(op) & 0x07
		baseOps[op] = ldRegReg(dest, src)
	}

	// INC r / DEC r / LD r, n over the 8-register field, including (HL).
	for code := byte(0); code <= 7; code++ {
		baseOps[0x04+8*int(code)] = incReg8(code)
		baseOps[0x05+8*int(code)] = decReg8(code)
		baseOps[0x06+8*int(code)] = ldRegImm(code)
	}

	// ALU A, r (0x80-0xBF): 8 groups of 8 register-field operands.
	aluOps := [8]func(*CPU, byte){aluAdd, aluAdc, aluSub, aluSbc, aluAnd, aluXor, aluOr, aluCp}
	for op := 0x80; op <= 0xBF; op++ {
		idx := op - 0x80
		group := aluOps[idx>>3]
		reg := byte(idx) & 0x07
		baseOps[op] = aluReg(group, reg)
	}

	// RST vectors: 0xC7 + 8n -> vector 8n, n=0..7.
	for n := 0; n <= 7; n++ {
		baseOps[0xC7+8*n] = rst(uint16(8 * n))
	}

	baseOps[0x00] = opNOP
	baseOps[0x01] = opLDBCnn
	baseOps[0x02] = opLDBCmemA
	baseOps[0x07] = opRLCA
	baseOps[0x08] = opLDnnSP
	baseOps[0x09] = opADDHLBC
	baseOps[0x0A] = opLDAmemBC
	baseOps[0x0F] = opRRCA

	baseOps[0x10] = opSTOP
	baseOps[0x11] = opLDDEnn
	baseOps[0x12] = opLDDEmemA
	baseOps[0x17] = opRLA
	baseOps[0x18] = opJRn
	baseOps[0x19] = opADDHLDE
	baseOps[0x1A] = opLDAmemDE
	baseOps[0x1F] = opRRA

	baseOps[0x20] = func(s *State) { jrCond(s, !s.CPU.Flag(FlagZ)) }
	baseOps[0x21] = opLDHLnn
	baseOps[0x22] = opLDHLIncA
	baseOps[0x27] = func(s *State) { s.CPU.daa() }
	baseOps[0x28] = func(s *State) { jrCond(s, s.CPU.Flag(FlagZ)) }
	baseOps[0x29] = opADDHLHL
	baseOps[0x2A] = opLDAHLInc
	baseOps[0x2F] = func(s *State) { s.CPU.cpl() }

	baseOps[0x30] = func(s *State) { jrCond(s, !s.CPU.Flag(FlagC)) }
	baseOps[0x31] = opLDSPnn
	baseOps[0x32] = opLDHLDecA
	baseOps[0x37] = func(s *State) { s.CPU.scf() }
	baseOps[0x38] = func(s *State) { jrCond(s, s.CPU.Flag(FlagC)) }
	baseOps[0x39] = opADDHLSP
	baseOps[0x3A] = opLDAHLDec
	baseOps[0x3F] = func(s *State) { s.CPU.ccf() }

	// INC/DEC of a 16-bit pair: not part of the regular 8-register loop
	// above, overwritten here.
	baseOps[0x03] = opINCBC
	baseOps[0x0B] = opDECBC
	baseOps[0x13] = opINCDE
	baseOps[0x1B] = opDECDE
	baseOps[0x23] = opINCHL16
	baseOps[0x2B] = opDECHL16
	baseOps[0x33] = opINCSP
	baseOps[0x3B] = opDECSP

	baseOps[0xC0] = func(s *State) { retCond(s, !s.CPU.Flag(FlagZ)) }
	baseOps[0xC1] = opPOPBC
	baseOps[0xC2] = func(s *State) { jpCond(s, !s.CPU.Flag(FlagZ)) }
	baseOps[0xC3] = opJPnn
	baseOps[0xC4] = func(s *State) { callCond(s, !s.CPU.Flag(FlagZ)) }
	baseOps[0xC5] = opPUSHBC
	baseOps[0xC6] = aluImm(aluAdd)
	baseOps[0xC8] = func(s *State) { retCond(s, s.CPU.Flag(FlagZ)) }
	baseOps[0xC9] = opRET
	baseOps[0xCA] = func(s *State) { jpCond(s, s.CPU.Flag(FlagZ)) }
	baseOps[0xCB] = opCBPrefix
	baseOps[0xCC] = func(s *State) { callCond(s, s.CPU.Flag(FlagZ)) }
	baseOps[0xCD] = opCALLnn
	baseOps[0xCE] = aluImm(aluAdc)

	baseOps[0xD0] = func(s *State) { retCond(s, !s.CPU.Flag(FlagC)) }
	baseOps[0xD1] = opPOPDE
	baseOps[0xD2] = func(s *State) { jpCond(s, !s.CPU.Flag(FlagC)) }
	baseOps[0xD4] = func(s *State) { callCond(s, !s.CPU.Flag(FlagC)) }
	baseOps[0xD5] = opPUSHDE
	baseOps[0xD6] = aluImm(aluSub)
	baseOps[0xD8] = func(s *State) { retCond(s, s.CPU.Flag(FlagC)) }
	baseOps[0xD9] = opRETI
	baseOps[0xDA] = func(s *State) { jpCond(s, s.CPU.Flag(FlagC)) }
	baseOps[0xDC] = func(s *State) { callCond(s, s.CPU.Flag(FlagC)) }
	baseOps[0xDE] = aluImm(aluSbc)

	baseOps[0xE0] = opLDHnA
	baseOps[0xE1] = opPOPHL
	baseOps[0xE2] = opLDHCmemA
	baseOps[0xE5] = opPUSHHL
	baseOps[0xE6] = aluImm(aluAnd)
	baseOps[0xE8] = opADDSPe
	baseOps[0xE9] = opJPHL
	baseOps[0xEA] = opLDnnA
	baseOps[0xEE] = aluImm(aluXor)

	baseOps[0xF0] = opLDHAn
	baseOps[0xF1] = opPOPAF
	baseOps[0xF2] = opLDHACmem
	baseOps[0xF3] = opDI
	baseOps[0xF5] = opPUSHAF
	baseOps[0xF6] = aluImm(aluOr)
	baseOps[0xF8] = opLDHLSPe
	baseOps[0xF9] = opLDSPHL
	baseOps[0xFA] = opLDAnn
	baseOps[0xFB] = opEI
	baseOps[0xFE] = aluImm(aluCp)
}
