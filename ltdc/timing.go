package ltdc

import (
	"errors"
	"fmt"
)

// Polarity of the HSYNC, VSYNC and DE signals.
type Polarity bool

const (
	ActiveLow  Polarity = false
	ActiveHigh Polarity = true
)

func (p Polarity) String() string {
	if p == ActiveHigh {
		return "ActiveHigh"
	}
	return "ActiveLow"
}

// PixelClockPolarity selects the pixel clock edge.
type PixelClockPolarity bool

const (
	PixelClockNormal   PixelClockPolarity = false
	PixelClockInverted PixelClockPolarity = true
)

// Timing is the panel scan timing, in pixel clocks and lines.
type Timing struct {
	HSync       uint16
	HBackPorch  uint16
	ActiveWidth uint16
	HFrontPorch uint16

	VSync        uint16
	VBackPorch   uint16
	ActiveHeight uint16
	VFrontPorch  uint16

	HSyncPol      Polarity
	VSyncPol      Polarity
	DEPol         Polarity
	PixelClockPol PixelClockPolarity
}

// TotalWidth is the number of pixel clocks per line.
func (t Timing) TotalWidth() int {
	return int(t.HSync) + int(t.HBackPorch) + int(t.ActiveWidth) + int(t.HFrontPorch)
}

// TotalHeight is the number of lines per frame.
func (t Timing) TotalHeight() int {
	return int(t.VSync) + int(t.VBackPorch) + int(t.ActiveHeight) + int(t.VFrontPorch)
}

// Validate checks that every field can be programmed as given.
//
// Values are never rounded: anything that does not fit is an error.
func (t Timing) Validate() error {
	if t.HSync == 0 || t.VSync == 0 {
		return errors.New("ltdc: sync width must be at least 1")
	}
	if t.ActiveWidth == 0 || t.ActiveHeight == 0 {
		return errors.New("ltdc: active area must not be empty")
	}
	if w := t.TotalWidth(); w-1 > hMask {
		return fmt.Errorf("ltdc: total width %d exceeds %d", w, hMask+1)
	}
	if h := t.TotalHeight(); h-1 > vMask {
		return fmt.Errorf("ltdc: total height %d exceeds %d", h, vMask+1)
	}
	return nil
}

func (t Timing) String() string {
	return fmt.Sprintf("H{sync:%d bp:%d active:%d fp:%d} V{sync:%d bp:%d active:%d fp:%d}",
		t.HSync, t.HBackPorch, t.ActiveWidth, t.HFrontPorch,
		t.VSync, t.VBackPorch, t.ActiveHeight, t.VFrontPorch)
}

// accumulated returns the four SSCR/BPCR/AWCR/TWCR register values.
//
// Each register holds a running sum minus one.
func (t Timing) accumulated() (sscr, bpcr, awcr, twcr uint32) {
	h := int(t.HSync)
	v := int(t.VSync)
	sscr = hv(h-1, v-1)
	h += int(t.HBackPorch)
	v += int(t.VBackPorch)
	bpcr = hv(h-1, v-1)
	h += int(t.ActiveWidth)
	v += int(t.ActiveHeight)
	awcr = hv(h-1, v-1)
	h += int(t.HFrontPorch)
	v += int(t.VFrontPorch)
	twcr = hv(h-1, v-1)
	return
}

func (t Timing) gcr() uint32 {
	var g uint32
	if t.HSyncPol == ActiveHigh {
		g |= gcrHSPol
	}
	if t.VSyncPol == ActiveHigh {
		g |= gcrVSPol
	}
	if t.DEPol == ActiveHigh {
		g |= gcrDEPol
	}
	if t.PixelClockPol == PixelClockInverted {
		g |= gcrPCPol
	}
	return g
}

// Color is an 8-bit per channel color with alpha.
type Color struct {
	R, G, B, A uint8
}

func (c Color) rgb() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) argb() uint32 {
	return uint32(c.A)<<24 | c.rgb()
}
