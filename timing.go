package ili9341

import "periph.io/x/devices/v3/ili9341/ltdc"

// Panel resolution in pixels.
const (
	Width  = 240
	Height = 320
)

// RGB interface timing, in pixel clocks (horizontal) and lines (vertical).
const (
	HSync       = 10
	HBackPorch  = 20
	HFrontPorch = 10
	VSync       = 2
	VBackPorch  = 2
	VFrontPorch = 4
)

// Timing returns the RGB interface timing the panel expects once New has
// switched it to RGB mode. All sync signals are active low and data is
// sampled on the rising pixel clock edge.
func Timing() ltdc.Timing {
	return ltdc.Timing{
		HSync:         HSync,
		HBackPorch:    HBackPorch,
		ActiveWidth:   Width,
		HFrontPorch:   HFrontPorch,
		VSync:         VSync,
		VBackPorch:    VBackPorch,
		ActiveHeight:  Height,
		VFrontPorch:   VFrontPorch,
		HSyncPol:      ltdc.ActiveLow,
		VSyncPol:      ltdc.ActiveLow,
		DEPol:         ltdc.ActiveLow,
		PixelClockPol: ltdc.PixelClockNormal,
	}
}
