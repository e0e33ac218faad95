package ltdc

// Register offsets from the LTDC base address.
const (
	SSCR  uint32 = 0x08 // Synchronization Size Configuration
	BPCR  uint32 = 0x0C // Back Porch Configuration
	AWCR  uint32 = 0x10 // Active Width Configuration
	TWCR  uint32 = 0x14 // Total Width Configuration
	GCR   uint32 = 0x18 // Global Control
	SRCR  uint32 = 0x24 // Shadow Reload Configuration
	BCCR  uint32 = 0x2C // Background Color Configuration
	IER   uint32 = 0x34 // Interrupt Enable
	ISR   uint32 = 0x38 // Interrupt Status
	ICR   uint32 = 0x3C // Interrupt Clear
	LIPCR uint32 = 0x40 // Line Interrupt Position Configuration
	CPSR  uint32 = 0x44 // Current Position Status
	CDSR  uint32 = 0x48 // Current Display Status
)

// Layer register blocks and the offsets within a block.
const (
	Layer1 uint32 = 0x84
	Layer2 uint32 = 0x104

	LxCR     uint32 = 0x00 // Control
	LxWHPCR  uint32 = 0x04 // Window Horizontal Position Configuration
	LxWVPCR  uint32 = 0x08 // Window Vertical Position Configuration
	LxCKCR   uint32 = 0x0C // Color Keying Configuration
	LxPFCR   uint32 = 0x10 // Pixel Format Configuration
	LxCACR   uint32 = 0x14 // Constant Alpha Configuration
	LxDCCR   uint32 = 0x18 // Default Color Configuration
	LxBFCR   uint32 = 0x1C // Blending Factors Configuration
	LxCFBAR  uint32 = 0x28 // Color Frame Buffer Address
	LxCFBLR  uint32 = 0x2C // Color Frame Buffer Length
	LxCFBLNR uint32 = 0x30 // Color Frame Buffer Line Number
	LxCLUTWR uint32 = 0x40 // CLUT Write
)

// Size is the span of the register block.
const Size = 0x400

// GCR bits.
const (
	gcrHSPol  uint32 = 1 << 31
	gcrVSPol  uint32 = 1 << 30
	gcrDEPol  uint32 = 1 << 29
	gcrPCPol  uint32 = 1 << 28
	gcrLTDCEN uint32 = 1 << 0

	gcrPolMask = gcrHSPol | gcrVSPol | gcrDEPol | gcrPCPol
)

// SRCR bits.
const (
	srcrIMR uint32 = 1 << 0 // immediate reload
	srcrVBR uint32 = 1 << 1 // reload during vertical blanking
)

// LxCR bits.
const lxcrLEN uint32 = 1 << 0

// Blending factors: pixel alpha x constant alpha.
const (
	bf1PAxCA uint32 = 0x6 << 8
	bf2PAxCA uint32 = 0x7
)

// Field widths.
const (
	hMask = 0xFFF // 12 bits, horizontal fields at [27:16]
	vMask = 0x7FF // 11 bits, vertical fields at [10:0]

	pitchMask = 0x1FFF // CFBP [28:16]
	lenMask   = 0x1FFF // CFBLL [12:0]
	linesMask = 0x7FF  // CFBLNR [10:0]
)

// Registers is read/write access to the LTDC register block.
type Registers interface {
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
}

func hv(h, v int) uint32 {
	return uint32(h&hMask)<<16 | uint32(v&vMask)
}
