package dmg

// PPU holds the per-cycle LCD state machine's mutable fields, grounded in
// the reference implementation's dmg_ppu_run: a countdown timer within the
// current scanline, two edge-trigger latches, the mode of the previous
// cycle (needed to detect the HBlank-entry edge), and the framebuffer.
type PPU struct {
	Timer int32

	// VBlankRaised prevents IF bit 0 (and its STAT companion) from being
	// raised more than once per frame; cleared when LY wraps past 153.
	VBlankRaised bool

	// StatRaised is the HBlank-entry latch: set the first cycle a line
	// enters mode 0, cleared at the start of the next line, so a STAT
	// interrupt is raised at most once per HBlank.
	StatRaised bool

	prevMode byte

	// LCD is the 160x144 framebuffer, row-major, top-left origin, packed
	// as 0xRRGGBBAA per pixel.
	LCD [160 * 144]uint32
}

const (
	ppuModeHBlank = 0
	ppuModeVBlank = 1
	ppuModeOAM    = 2
	ppuModeDraw   = 3
)

// palette maps a 2-bit BGP colour id to its fixed RGBA value.
var ppuPalette = [4]uint32{0xFFFFFFFF, 0xAAAAAAFF, 0x555555FF, 0x000000FF}

// StepPPU advances the PPU by exactly one machine cycle, per the contract
// that any other granularity desynchronises STAT/VBlank edges: callers
// invoke it once per cycle consumed by Step, never batched.
func (s *State) StepPPU(vblank func(*State)) {
	lcdc := s.io[IOLCDC]

	if lcdc&0x80 == 0 {
		s.io[IOLY] = 0
		s.io[IOSTAT] &^= 0x03
		s.PPU.Timer = 456
		s.PPU.prevMode = ppuModeHBlank
		return
	}

	ly := s.io[IOLY]
	stat := s.io[IOSTAT]

	var mode byte
	switch {
	case ly >= 144:
		mode = ppuModeVBlank
	case s.PPU.Timer >= 376:
		mode = ppuModeOAM
	case s.PPU.Timer >= 204:
		mode = ppuModeDraw
	default:
		mode = ppuModeHBlank
	}

	if mode == ppuModeHBlank && s.PPU.prevMode != ppuModeHBlank {
		if !s.PPU.StatRaised {
			if stat&0x08 != 0 {
				s.io[IOIF] |= IntStat
			}
			s.PPU.StatRaised = true
		}
	}
	s.PPU.prevMode = mode

	s.PPU.Timer--
	if s.PPU.Timer == 0 {
		s.PPU.Timer += 456
		ly++
		s.PPU.StatRaised = false

		if ly == 144 {
			if !s.PPU.VBlankRaised {
				s.io[IOIF] |= IntVBlank
				if stat&0x10 != 0 {
					s.io[IOIF] |= IntStat
				}
				s.PPU.VBlankRaised = true
				if vblank != nil {
					vblank(s)
				}
			}
		}

		if ly > 153 {
			ly = 0
			s.PPU.VBlankRaised = false
		}

		if ly == s.io[IOLYC] {
			if stat&0x40 != 0 {
				s.io[IOIF] |= IntStat
			}
			stat |= 0x04
		} else {
			stat &^= 0x04
		}

		s.io[IOLY] = ly
		if ly < 144 && lcdc&0x01 != 0 {
			s.renderScanline(ly)
		}
	}

	s.io[IOSTAT] = (stat &^ 0x03) | mode
}

// renderScanline draws the 160 background pixels of line y, per the
// tile-map/tile-data addressing and palette rules. Sprites and the window
// layer are not rendered (non-goal).
func (s *State) renderScanline(y byte) {
	lcdc := s.io[IOLCDC]
	scy := s.io[IOSCY]
	scx := s.io[IOSCX]
	bgp := s.io[IOBGP]

	mapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		mapBase = 0x9C00
	}
	signedAddressing := lcdc&0x10 == 0

	for x := 0; x < 160; x++ {
		px := byte(x)
		tx := uint16((px+scx)>>3) & 0x1F
		ty := uint16((y+scy)>>3) & 0x1F
		tileIdx := s.Read(mapBase + ty*32 + tx)

		var tileAddr uint16
		if signedAddressing {
			tileAddr = uint16(int32(0x9000) + int32(int8(tileIdx))*16)
		} else {
			tileAddr = 0x8000 + uint16(tileIdx)*16
		}

		cx := (px + scx) & 7
		cy := uint16((y+scy)&7) * 2
		lo := s.Read(tileAddr + cy)
		hi := s.Read(tileAddr + cy + 1)

		shift := 7 - cx
		colorID := (hi>>shift)&1<<1 | (lo>>shift)&1
		entry := (bgp >> (2 * colorID)) & 0x03

		s.PPU.LCD[uint16(y)*160+uint16(x)] = ppuPalette[entry]
	}
}
