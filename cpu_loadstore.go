package dmg

// readReg8 and writeReg8 decode the standard LR35902 3-bit register field
// (000=B, 001=C, 010=D, 011=E, 100=H, 101=L, 110=(HL), 111=A), exactly as
// the teacher's Z80 core decodes its identical register encoding. Code 6,
// (HL), costs an extra bus cycle beyond a plain register access; that cycle
// is charged by read8/write8 themselves, so callers add no timing of their
// own for it.
func (s *State) readReg8(code byte) byte {
	switch code {
	case 0:
		return s.CPU.B
	case 1:
		return s.CPU.C
	case 2:
		return s.CPU.D
	case 3:
		return s.CPU.E
	case 4:
		return s.CPU.H
	case 5:
		return s.CPU.L
	case 6:
		return s.read8(s.CPU.HL())
	default:
		return s.CPU.A
	}
}

func (s *State) writeReg8(code byte, v byte) {
	switch code {
	case 0:
		s.CPU.B = v
	case 1:
		s.CPU.C = v
	case 2:
		s.CPU.D = v
	case 3:
		s.CPU.E = v
	case 4:
		s.CPU.H = v
	case 5:
		s.CPU.L = v
	case 6:
		s.write8(s.CPU.HL(), v)
	default:
		s.CPU.A = v
	}
}

// ldRegReg returns an opcode implementation for LD dest, src over the
// standard 3-bit register fields.
func ldRegReg(dest, src byte) func(*State) {
	return func(s *State) {
		s.writeReg8(dest, s.readReg8(src))
	}
}

// ldRegImm returns an opcode implementation for LD r, n.
func ldRegImm(dest byte) func(*State) {
	return func(s *State) {
		s.writeReg8(dest, s.read8pc())
	}
}

func opLDBCnn(s *State) { s.CPU.SetBC(s.read16pc()) }
func opLDDEnn(s *State) { s.CPU.SetDE(s.read16pc()) }
func opLDHLnn(s *State) { s.CPU.SetHL(s.read16pc()) }
func opLDSPnn(s *State) { s.CPU.SP = s.read16pc() }

func opLDBCmemA(s *State) { s.write8(s.CPU.BC(), s.CPU.A) }
func opLDDEmemA(s *State) { s.write8(s.CPU.DE(), s.CPU.A) }
func opLDAmemBC(s *State) { s.CPU.A = s.read8(s.CPU.BC()) }
func opLDAmemDE(s *State) { s.CPU.A = s.read8(s.CPU.DE()) }

func opLDHLIncA(s *State) {
	hl := s.CPU.HL()
	s.write8(hl, s.CPU.A)
	s.CPU.SetHL(hl + 1)
}

func opLDHLDecA(s *State) {
	hl := s.CPU.HL()
	s.write8(hl, s.CPU.A)
	s.CPU.SetHL(hl - 1)
}

func opLDAHLInc(s *State) {
	hl := s.CPU.HL()
	s.CPU.A = s.read8(hl)
	s.CPU.SetHL(hl + 1)
}

func opLDAHLDec(s *State) {
	hl := s.CPU.HL()
	s.CPU.A = s.read8(hl)
	s.CPU.SetHL(hl - 1)
}

func opLDnnA(s *State) {
	addr := s.read16pc()
	s.write8(addr, s.CPU.A)
}

func opLDAnn(s *State) {
	addr := s.read16pc()
	s.CPU.A = s.read8(addr)
}

func opLDHnA(s *State) {
	offset := s.read8pc()
	s.write8(0xFF00+uint16(offset), s.CPU.A)
}

func opLDHAn(s *State) {
	offset := s.read8pc()
	s.CPU.A = s.read8(0xFF00 + uint16(offset))
}

func opLDHCmemA(s *State) { s.write8(0xFF00+uint16(s.CPU.C), s.CPU.A) }
func opLDHACmem(s *State) { s.CPU.A = s.read8(0xFF00 + uint16(s.CPU.C)) }

// 16-bit INC/DEC: no flags affected, one internal cycle beyond the fetch.
func opINCBC(s *State) { s.internalDelay(); s.CPU.SetBC(s.CPU.BC() + 1) }
func opINCDE(s *State) { s.internalDelay(); s.CPU.SetDE(s.CPU.DE() + 1) }
func opINCHL16(s *State) { s.internalDelay(); s.CPU.SetHL(s.CPU.HL() + 1) }
func opINCSP(s *State) { s.internalDelay(); s.CPU.SP++ }

func opDECBC(s *State) { s.internalDelay(); s.CPU.SetBC(s.CPU.BC() - 1) }
func opDECDE(s *State) { s.internalDelay(); s.CPU.SetDE(s.CPU.DE() - 1) }
func opDECHL16(s *State) { s.internalDelay(); s.CPU.SetHL(s.CPU.HL() - 1) }
func opDECSP(s *State) { s.internalDelay(); s.CPU.SP-- }

func opADDHLBC(s *State) { s.internalDelay(); s.CPU.addHL16(s.CPU.BC()) }
func opADDHLDE(s *State) { s.internalDelay(); s.CPU.addHL16(s.CPU.DE()) }
func opADDHLHL(s *State) { s.internalDelay(); s.CPU.addHL16(s.CPU.HL()) }
func opADDHLSP(s *State) { s.internalDelay(); s.CPU.addHL16(s.CPU.SP) }

// incReg8/decReg8 return opcode implementations for INC r / DEC r over the
// 3-bit register field, including the (HL) memory-operand form.
func incReg8(code byte) func(*State) {
	return func(s *State) {
		s.writeReg8(code, s.CPU.inc8(s.readReg8(code)))
	}
}

func decReg8(code byte) func(*State) {
	return func(s *State) {
		s.writeReg8(code, s.CPU.dec8(s.readReg8(code)))
	}
}

// aluImm returns an opcode implementation for an ALU op against an
// immediate byte.
func aluImm(op func(*CPU, byte)) func(*State) {
	return func(s *State) {
		op(&s.CPU, s.read8pc())
	}
}

// aluReg returns an opcode implementation for an ALU op against a
// register-field operand.
func aluReg(op func(*CPU, byte), src byte) func(*State) {
	return func(s *State) {
		op(&s.CPU, s.readReg8(src))
	}
}
