package dmg

// inc8 implements 8-bit INC: H set if the low nibble was 0x0F before the
// increment, Z from the result, N cleared, C left untouched.
func (c *CPU) inc8(v byte) byte {
	res := v + 1
	c.SetFlag(FlagH, v&0x0F == 0x0F)
	c.SetFlag(FlagZ, res == 0)
	c.SetFlag(FlagN, false)
	return res
}

// dec8 implements 8-bit DEC: H set if the low nibble was 0x00 before the
// decrement, Z from the result, N set, C left untouched.
func (c *CPU) dec8(v byte) byte {
	res := v - 1
	c.SetFlag(FlagH, v&0x0F == 0x00)
	c.SetFlag(FlagZ, res == 0)
	c.SetFlag(FlagN, true)
	return res
}

func (c *CPU) add8(v byte) {
	a := c.A
	res := a + v
	c.SetFlag(FlagH, (a&0x0F)+(v&0x0F) > 0x0F)
	c.SetFlag(FlagC, uint16(a)+uint16(v) > 0xFF)
	c.A = res
	c.SetFlag(FlagZ, res == 0)
	c.SetFlag(FlagN, false)
}

func (c *CPU) adc8(v byte) {
	a := c.A
	carryIn := byte(0)
	if c.Flag(FlagC) {
		carryIn = 1
	}
	res := a + v + carryIn
	c.SetFlag(FlagH, (a&0x0F)+(v&0x0F)+carryIn > 0x0F)
	c.SetFlag(FlagC, uint16(a)+uint16(v)+uint16(carryIn) > 0xFF)
	c.A = res
	c.SetFlag(FlagZ, res == 0)
	c.SetFlag(FlagN, false)
}

func (c *CPU) sub8(v byte) {
	a := c.A
	res := a - v
	c.SetFlag(FlagH, a&0x0F < v&0x0F)
	c.SetFlag(FlagC, a < v)
	c.A = res
	c.SetFlag(FlagZ, res == 0)
	c.SetFlag(FlagN, true)
}

func (c *CPU) sbc8(v byte) {
	a := c.A
	carryIn := byte(0)
	if c.Flag(FlagC) {
		carryIn = 1
	}
	res := a - v - carryIn
	c.SetFlag(FlagH, int(a&0x0F)-int(v&0x0F)-int(carryIn) < 0)
	c.SetFlag(FlagC, int(a)-int(v)-int(carryIn) < 0)
	c.A = res
	c.SetFlag(FlagZ, res == 0)
	c.SetFlag(FlagN, true)
}

func (c *CPU) and8(v byte) {
	c.A &= v
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, true)
	c.SetFlag(FlagC, false)
}

func (c *CPU) xor8(v byte) {
	c.A ^= v
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, false)
}

func (c *CPU) or8(v byte) {
	c.A |= v
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, false)
}

func (c *CPU) cp8(v byte) {
	a := c.A
	c.sub8(v)
	c.A = a // CP discards the result, keeping only the flags
}

func (c *CPU) cpl() {
	c.A ^= 0xFF
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, true)
}

func (c *CPU) scf() {
	c.SetFlag(FlagC, true)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
}

func (c *CPU) ccf() {
	c.SetFlag(FlagC, !c.Flag(FlagC))
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
}

// daa implements the decimal-adjust accumulator, correcting A after a BCD
// ADD/ADC/SUB/SBC so that each nibble again holds a valid decimal digit.
func (c *CPU) daa() {
	a := c.A
	adjust := byte(0)
	carry := c.Flag(FlagC)
	if c.Flag(FlagN) {
		if c.Flag(FlagH) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	} else {
		if c.Flag(FlagH) || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}
	c.A = a
	c.SetFlag(FlagZ, a == 0)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, carry)
}

// addHL16 implements ADD HL,rr: N cleared, H set on 12-bit (bit 11) carry,
// C set on 16-bit carry, Z left untouched. Costs one internal cycle beyond
// the fetch, charged by the caller.
func (c *CPU) addHL16(v uint16) {
	hl := c.HL()
	res := hl + v
	c.SetFlag(FlagH, (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF)
	c.SetFlag(FlagC, uint32(hl)+uint32(v) > 0xFFFF)
	c.SetFlag(FlagN, false)
	c.SetHL(res)
}

// rotate helpers shared by the accumulator rotates and the CB-prefixed
// per-register rotate/shift group.

func rlc(c *CPU, v byte) byte {
	carry := v&0x80 != 0
	res := v << 1
	if carry {
		res |= 0x01
	}
	c.SetFlag(FlagC, carry)
	return res
}

func rrc(c *CPU, v byte) byte {
	carry := v&0x01 != 0
	res := v >> 1
	if carry {
		res |= 0x80
	}
	c.SetFlag(FlagC, carry)
	return res
}

func rl(c *CPU, v byte) byte {
	carryIn := byte(0)
	if c.Flag(FlagC) {
		carryIn = 1
	}
	carryOut := v&0x80 != 0
	res := (v << 1) | carryIn
	c.SetFlag(FlagC, carryOut)
	return res
}

func rr(c *CPU, v byte) byte {
	carryIn := byte(0)
	if c.Flag(FlagC) {
		carryIn = 0x80
	}
	carryOut := v&0x01 != 0
	res := (v >> 1) | carryIn
	c.SetFlag(FlagC, carryOut)
	return res
}

func sla(c *CPU, v byte) byte {
	carry := v&0x80 != 0
	res := v << 1
	c.SetFlag(FlagC, carry)
	return res
}

func sra(c *CPU, v byte) byte {
	carry := v&0x01 != 0
	res := (v >> 1) | (v & 0x80)
	c.SetFlag(FlagC, carry)
	return res
}

func srl(c *CPU, v byte) byte {
	carry := v&0x01 != 0
	res := v >> 1
	c.SetFlag(FlagC, carry)
	return res
}

func swap(c *CPU, v byte) byte {
	res := v<<4 | v>>4
	c.SetFlag(FlagC, false)
	return res
}

// Free-function adapters so the ALU ops can be stored and dispatched
// uniformly by cpu_tables.go alongside the register-field decoders.
func aluAdd(c *CPU, v byte) { c.add8(v) }
func aluAdc(c *CPU, v byte) { c.adc8(v) }
func aluSub(c *CPU, v byte) { c.sub8(v) }
func aluSbc(c *CPU, v byte) { c.sbc8(v) }
func aluAnd(c *CPU, v byte) { c.and8(v) }
func aluXor(c *CPU, v byte) { c.xor8(v) }
func aluOr(c *CPU, v byte)  { c.or8(v) }
func aluCp(c *CPU, v byte)  { c.cp8(v) }

func opRLCA(s *State) {
	s.CPU.A = rlc(&s.CPU, s.CPU.A)
	s.CPU.SetFlag(FlagZ, false)
	s.CPU.SetFlag(FlagN, false)
	s.CPU.SetFlag(FlagH, false)
}

func opRRCA(s *State) {
	s.CPU.A = rrc(&s.CPU, s.CPU.A)
	s.CPU.SetFlag(FlagZ, false)
	s.CPU.SetFlag(FlagN, false)
	s.CPU.SetFlag(FlagH, false)
}

func opRLA(s *State) {
	s.CPU.A = rl(&s.CPU, s.CPU.A)
	s.CPU.SetFlag(FlagZ, false)
	s.CPU.SetFlag(FlagN, false)
	s.CPU.SetFlag(FlagH, false)
}

func opRRA(s *State) {
	s.CPU.A = rr(&s.CPU, s.CPU.A)
	s.CPU.SetFlag(FlagZ, false)
	s.CPU.SetFlag(FlagN, false)
	s.CPU.SetFlag(FlagH, false)
}
