package dmg

// cbOps is the second 256-entry dispatch table, indexed by the byte
// following a 0xCB prefix. Built the same way the teacher decomposes its
// own CB table (initCBOps): the top two bits select the operation group,
// the next three bits select which rotate/shift/BIT/RES/SET, and the low
// three bits select the 8-register-field operand. The table is populated
// exhaustively; there are no undefined CB opcodes.
var cbOps [256]func(*State)

func init() {
	for op := 0; op <= 0x3F; op++ {
		group := byte(op>>3) & 0x07
		reg := byte(op) & 0x07
		cbOps[op] = cbRotateShift(group, reg)
	}
	for op := 0x40; op <= 0x7F; op++ {
		bit := byte(op>>3) & 0x07
		reg := byte(op) & 0x07
		cbOps[op] = cbBIT(bit, reg)
	}
	for op := 0x80; op <= 0xBF; op++ {
		bit := byte(op>>3) & 0x07
		reg := byte(op) & 0x07
		cbOps[op] = cbRES(bit, reg)
	}
	for op := 0xC0; op <= 0xFF; op++ {
		bit := byte(op>>3) & 0x07
		reg := byte(op) & 0x07
		cbOps[op] = cbSET(bit, reg)
	}
}

// cbRotateShift returns the CB rotate/shift operation selected by group
// (0=RLC, 1=RRC, 2=RL, 3=RR, 4=SLA, 5=SRA, 6=SWAP, 7=SRL) applied to the
// register field reg. Each sets Z from the result and clears N and H; the
// through-memory (HL) form costs two extra bus cycles (read, write-back)
// beyond the fetch, charged automatically by readReg8/writeReg8.
func cbRotateShift(group, reg byte) func(*State) {
	var fn func(*CPU, byte) byte
	switch group {
	case 0:
		fn = rlc
	case 1:
		fn = rrc
	case 2:
		fn = rl
	case 3:
		fn = rr
	case 4:
		fn = sla
	case 5:
		fn = sra
	case 6:
		fn = swap
	default:
		fn = srl
	}
	return func(s *State) {
		res := fn(&s.CPU, s.readReg8(reg))
		s.writeReg8(reg, res)
		s.CPU.SetFlag(FlagZ, res == 0)
		s.CPU.SetFlag(FlagN, false)
		s.CPU.SetFlag(FlagH, false)
	}
}

// cbBIT returns BIT n, r: Z is the complement of bit n, N is cleared, H is
// set, C is left untouched.
func cbBIT(bit, reg byte) func(*State) {
	mask := byte(1) << bit
	return func(s *State) {
		v := s.readReg8(reg)
		s.CPU.SetFlag(FlagZ, v&mask == 0)
		s.CPU.SetFlag(FlagN, false)
		s.CPU.SetFlag(FlagH, true)
	}
}

// cbRES returns RES n, r: clears bit n, no flags affected. The mask is
// applied before any OR, per the design-notes correction to the known
// set_bit bug (mask first, then OR — here there is nothing to OR in, so
// the bug cannot recur, but RES and SET share the same masking discipline).
func cbRES(bit, reg byte) func(*State) {
	mask := ^(byte(1) << bit)
	return func(s *State) {
		s.writeReg8(reg, s.readReg8(reg)&mask)
	}
}

// cbSET returns SET n, r: sets bit n, no flags affected.
func cbSET(bit, reg byte) func(*State) {
	mask := byte(1) << bit
	return func(s *State) {
		s.writeReg8(reg, (s.readReg8(reg)&^mask)|mask)
	}
}

func opCBPrefix(s *State) {
	opcode := s.read8pc()
	cbOps[opcode](s)
}
