package dmg

import "testing"

func TestNewStatePowerOnDefaults(t *testing.T) {
	rom := make([]byte, 0x8000)
	s := NewState(rom)

	if !s.CPU.IME {
		t.Fatalf("IME = false, want true at power-on")
	}
	requireEqualU16(t, "PC", s.CPU.PC, 0)
	requireEqualU16(t, "SP", s.CPU.SP, 0)
	requireEqualU64(t, "Cycles", s.Cycles, 0)
	if s.PPU.Timer != 456 {
		t.Fatalf("PPU.Timer = %d, want 456", s.PPU.Timer)
	}
}

// Concrete scenario 1: power-on reset, one NOP.
func TestPowerOnResetThenNOP(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0] = 0x00 // NOP
	s := NewState(rom)

	cycles := s.Step()
	requireEqualU16(t, "PC", s.CPU.PC, 1)
	requireEqualU64(t, "cycles", s.Cycles, 4)
	requireEqualU64(t, "cycles consumed", cycles, 4)
}

func TestCyclesAlwaysMultipleOfFour(t *testing.T) {
	s := newTestState([]byte{
		0x3E, 0x05, // LD A, 5
		0xC6, 0x03, // ADD A, 3
		0x18, 0x00, // JR 0
	})
	for i := 0; i < 20; i++ {
		before := s.Cycles
		s.Step()
		delta := s.Cycles - before
		if delta == 0 || delta%4 != 0 {
			t.Fatalf("step %d: cycle delta = %d, want a positive multiple of 4", i, delta)
		}
	}
}

func TestFlagsLowNibbleAlwaysZero(t *testing.T) {
	s := newTestState([]byte{
		0x3E, 0xFF, // LD A, 0xFF
		0xC6, 0x01, // ADD A, 1 (sets Z, H, C)
		0x3C,       // INC A
	})
	for i := 0; i < 3; i++ {
		s.Step()
		if s.CPU.F&0x0F != 0 {
			t.Fatalf("step %d: F = 0x%02X, low nibble not zero", i, s.CPU.F)
		}
	}
}
