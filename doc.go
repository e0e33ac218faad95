// Package ili9341 brings up an ILI9341 TFT panel for RGB interface operation.
//
// The ILI9341 is a 240×320 262K-color TFT controller. This driver writes the
// panel's registers over the 4-line serial interface and leaves it in RGB
// interface mode, with GRAM write armed, so an external LCD-TFT controller
// (see package ltdc) can stream pixels without further register traffic.
//
// # Serial Interface
//
// Every byte is framed on its own: the DC line is set first (low for a
// register selector, high for a payload byte), then chip select is asserted,
// the byte is shifted out MSB first in SPI mode 0 and chip select is released.
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/SCK     → SPI Clock (SCLK)
//	SDA/SDI     → SPI Data (MOSI)
//	D/C (WRX)   → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO passed as Opts.CS
//
// The RGB interface lines (HSYNC, VSYNC, DE, DOTCLK, R/G/B) are wired to the
// LCD-TFT controller and are configured by the board firmware.
//
// # Initialization
//
// New runs a fixed power-on sequence: vendor power and driver timing setup,
// frame rate and VCOM, scan order, RGB interface selection, the full-panel
// address window, gamma correction, sleep out, display on and GRAM write.
// Two waits are part of the sequence:
//
//   - after the first GRAM select (Opts.GRAMSettle, at least 5ms)
//   - after sleep out (Opts.SleepOutSettle, at least 120ms)
//
// Any bus failure aborts the sequence. The Bus then refuses further traffic
// and no Dev is returned.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9341"
//		"periph.io/x/devices/v3/ili9341/ltdc"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		p, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		dev, err := ili9341.NewSPI(p, gpioreg.ByName("GPIO25"), nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		bank, err := ltdc.Map(ltdc.DefaultBase)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bank.Close()
//
//		c := ltdc.New(bank, nil)
//		if err := c.Configure(ili9341.Timing(), ltdc.Color{}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Timing
//
// Timing returns the scan timing programmed into the panel by New:
//
//	Horizontal: sync 10, back porch 20, active 240, front porch 10 (280 total)
//	Vertical:   sync 2,  back porch 2,  active 320, front porch 4  (328 total)
//
// HSYNC, VSYNC and DE are active low; data is latched on the normal pixel
// clock edge.
//
// # Testing
//
// Opts.Clock accepts a clockwork fake clock so settle waits and transfer
// timeouts can be driven without sleeping.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
package ili9341
