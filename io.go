package dmg

// I/O register offsets within the 256-byte I/O register file (logical
// addresses 0xFF00-0xFFFF once mapped through the MMU). Named after the
// DMGIOPort enumeration in the reference implementation this core is
// modelled on; the full set is exposed for host debugger tooling per the
// external interfaces contract, even though only a subset is read or
// written by the CPU and PPU logic below.
const (
	IOJoypad byte = 0x00 // JOYP - storage only, non-goal
	IOSB     byte = 0x01 // serial transfer data - storage only, non-goal
	IOSC     byte = 0x02 // serial transfer control - storage only, non-goal
	IODIV    byte = 0x03 // divider - storage only, non-goal
	IOTIMA   byte = 0x04 // timer counter - storage only, non-goal
	IOTMA    byte = 0x05 // timer modulo - storage only, non-goal
	IOTAC    byte = 0x06 // timer control - storage only, non-goal

	IOIF byte = 0x0F // interrupt flag

	// Sound registers. The core stores whatever is written here; no
	// audio is synthesised (non-goal per spec).
	IONR10 byte = 0x10
	IONR11 byte = 0x11
	IONR12 byte = 0x12
	IONR13 byte = 0x13
	IONR14 byte = 0x14
	IONR21 byte = 0x16
	IONR22 byte = 0x17
	IONR23 byte = 0x18
	IONR24 byte = 0x19
	IONR30 byte = 0x1A
	IONR31 byte = 0x1B
	IONR32 byte = 0x1C
	IONR33 byte = 0x1D
	IONR34 byte = 0x1E
	IONR41 byte = 0x20
	IONR42 byte = 0x21
	IONR43 byte = 0x22
	IONR44 byte = 0x23
	IONR50 byte = 0x24
	IONR51 byte = 0x25
	IONR52 byte = 0x26

	IOLCDC byte = 0x40 // LCD control
	IOSTAT byte = 0x41 // LCD status
	IOSCY  byte = 0x42 // background scroll Y
	IOSCX  byte = 0x43 // background scroll X
	IOLY   byte = 0x44 // current scanline
	IOLYC  byte = 0x45 // scanline compare
	IODMA  byte = 0x46 // OAM DMA start address - storage only, no mapper/DMA modelled
	IOBGP  byte = 0x47 // background palette
	IOOBP0 byte = 0x48 // sprite palette 0 - storage only, sprites are a non-goal
	IOOBP1 byte = 0x49 // sprite palette 1 - storage only, sprites are a non-goal
	IOWY   byte = 0x4A // window Y - storage only, window is a non-goal
	IOWX   byte = 0x4B // window X - storage only, window is a non-goal

	IOKEY1 byte = 0x4D // GBC double-speed switch - storage only, non-goal
	IOVBK  byte = 0x4F // GBC VRAM bank select - storage only, non-goal
	IOBIOS byte = 0x50 // boot ROM disable - storage only, no boot ROM modelled

	IOHDMA1 byte = 0x51 // storage only, GBC HDMA is a non-goal
	IOHDMA2 byte = 0x52
	IOHDMA3 byte = 0x53
	IOHDMA4 byte = 0x54
	IOHDMA5 byte = 0x55
	IORP    byte = 0x56 // infrared port - storage only, non-goal

	IOBCPS byte = 0x68 // storage only, GBC palettes are a non-goal
	IOBCPD byte = 0x69
	IOOCPS byte = 0x6A
	IOOCPD byte = 0x6B
	IOSVBK byte = 0x70 // GBC WRAM bank select - storage only, non-goal

	IOIE byte = 0xFF // interrupt enable, aliased onto the I/O file's last byte
)

// Interrupt flag/enable bit positions, in service priority order (lowest
// bit serviced first).
const (
	IntVBlank byte = 1 << 0
	IntStat   byte = 1 << 1
	IntTimer  byte = 1 << 2
	IntSerial byte = 1 << 3
	IntJoypad byte = 1 << 4
)

// Interrupt vectors, indexed by the same priority order as the Int* bits.
var intVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}
