package dmg

import "testing"

func TestCBTableFullyPopulated(t *testing.T) {
	for i := 0; i < 256; i++ {
		if cbOps[i] == nil {
			t.Fatalf("cbOps[0x%02X] is nil", i)
		}
	}
}

func TestBaseTableFullyPopulated(t *testing.T) {
	for i := 0; i < 256; i++ {
		if baseOps[i] == nil {
			t.Fatalf("baseOps[0x%02X] is nil", i)
		}
	}
}

func TestCBBitInstruction(t *testing.T) {
	s := newTestState([]byte{0xCB, 0x7C}) // BIT 7, H
	s.CPU.H = 0x00

	s.Step()

	if !s.CPU.Flag(FlagZ) {
		t.Fatalf("BIT 7,H with H=0: Z not set")
	}
	if s.CPU.Flag(FlagN) || !s.CPU.Flag(FlagH) {
		t.Fatalf("F = 0x%02X, want N=0 H=1", s.CPU.F)
	}
}

func TestCBResAndSet(t *testing.T) {
	s := newTestState([]byte{
		0xCB, 0x87, // RES 0, A
		0xCB, 0xC7, // SET 0, A
	})
	s.CPU.A = 0xFF

	s.Step()
	requireEqualU8(t, "A after RES 0,A", s.CPU.A, 0xFE)

	s.Step()
	requireEqualU8(t, "A after SET 0,A", s.CPU.A, 0xFF)
}

func TestCBSwap(t *testing.T) {
	s := newTestState([]byte{0xCB, 0x37}) // SWAP A
	s.CPU.A = 0xA5

	s.Step()

	requireEqualU8(t, "A", s.CPU.A, 0x5A)
	if s.CPU.Flag(FlagC) {
		t.Fatalf("SWAP set C, should be 0")
	}
}

func TestCBSRLViaHLCostsTwoExtraCycles(t *testing.T) {
	s := newTestState([]byte{0xCB, 0x3E}) // SRL (HL)
	s.CPU.SetHL(0xC000)
	s.write8(0xC000, 0x03)

	cycles := s.Step()

	requireEqualU8(t, "(HL)", s.read8(0xC000), 0x01)
	requireEqualU64(t, "cycles", cycles, 16)
	if !s.CPU.Flag(FlagC) {
		t.Fatalf("SRL (HL): C not set from displaced bit")
	}
}

func TestSLAAndSRAPreserveBit7OnSRAOnly(t *testing.T) {
	s := newTestState([]byte{
		0xCB, 0x27, // SLA A
		0xCB, 0x2F, // SRA A
	})
	s.CPU.A = 0x81

	s.Step()
	requireEqualU8(t, "A after SLA", s.CPU.A, 0x02)
	if !s.CPU.Flag(FlagC) {
		t.Fatalf("SLA: C not set from bit 7")
	}

	s.CPU.A = 0x81
	s.Step()
	requireEqualU8(t, "A after SRA", s.CPU.A, 0xC0)
	if !s.CPU.Flag(FlagC) {
		t.Fatalf("SRA: C not set from bit 0")
	}
}
