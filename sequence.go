package ili9341

import "fmt"

// State is the panel bring-up state as driven by the initialization sequence.
type State int

// Panel states, in bring-up order.
const (
	StateReset State = iota
	StateExtendedUnlocked
	StatePowerConfigured
	StateAddressingConfigured
	StateGammaConfigured
	StateSleepOut
	StateDisplayOn
	StateGRAMArmed
	StateDisplayOff
	StateHalted
)

var stateNames = [...]string{
	StateReset:                "Reset",
	StateExtendedUnlocked:     "ExtendedUnlocked",
	StatePowerConfigured:      "PowerConfigured",
	StateAddressingConfigured: "AddressingConfigured",
	StateGammaConfigured:      "GammaConfigured",
	StateSleepOut:             "SleepOut",
	StateDisplayOn:            "DisplayOn",
	StateGRAMArmed:            "GRAMArmed",
	StateDisplayOff:           "DisplayOff",
	StateHalted:               "Halted",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// settle names a post-command wait.
type settle int

const (
	noSettle settle = iota
	gramSettle
	sleepOutSettle
)

// command is one register selection with its payload.
type command struct {
	reg   Register
	data  []byte
	wait  settle
	reach State // state the panel is in once this command (and its wait) completed
}

// vendorUnlock is not documented in the ILI9341 register map but every
// reference bring-up sends it first.
const vendorUnlock Register = 0xCA

// Gamma calibration tables. They must be sent verbatim.
var (
	positiveGamma = []byte{0x0F, 0x29, 0x24, 0x0C, 0x0E, 0x09, 0x4E, 0x78, 0x3C, 0x09, 0x13, 0x05, 0x17, 0x11, 0x00}
	negativeGamma = []byte{0x00, 0x16, 0x1B, 0x04, 0x11, 0x07, 0x31, 0x33, 0x42, 0x05, 0x0C, 0x0A, 0x28, 0x2F, 0x0F}
)

// initSequence returns the power-on sequence for a width x height panel
// driven through the RGB interface.
func initSequence(width, height int) []command {
	x1, y1 := width-1, height-1
	return []command{
		// Extended registers.
		{reg: vendorUnlock, data: []byte{0xC3, 0x08, 0x50}, reach: StateExtendedUnlocked},
		{reg: PowerB, data: []byte{0x00, 0xC1, 0x30}, reach: StateExtendedUnlocked},
		{reg: PowerOnSequence, data: []byte{0x64, 0x03, 0x12, 0x81}, reach: StateExtendedUnlocked},
		{reg: DriverTimingA, data: []byte{0x85, 0x00, 0x78}, reach: StateExtendedUnlocked},
		{reg: PowerA, data: []byte{0x39, 0x2C, 0x00, 0x34, 0x02}, reach: StateExtendedUnlocked},
		{reg: PumpRatio, data: []byte{0x20}, reach: StateExtendedUnlocked},
		{reg: DriverTimingB, data: []byte{0x00, 0x00}, reach: StateExtendedUnlocked},

		// Frame rate, display function, power and VCOM.
		{reg: FrameRateNormal, data: []byte{0x00, 0x1B}, reach: StatePowerConfigured},
		{reg: DisplayFunction, data: []byte{0x0A, 0xA2}, reach: StatePowerConfigured},
		{reg: Power1, data: []byte{0x10}, reach: StatePowerConfigured},
		{reg: Power2, data: []byte{0x10}, reach: StatePowerConfigured},
		{reg: VCOM1, data: []byte{0x45, 0x15}, reach: StatePowerConfigured},
		{reg: VCOM2, data: []byte{0x90}, reach: StatePowerConfigured},

		// Scan order, RGB interface and the full-panel address window.
		{reg: MemoryAccessControl, data: []byte{MADCTLRowOrder | MADCTLColumnOrder | MADCTLBGR}, reach: StateAddressingConfigured},
		{reg: Gamma3Enable, data: []byte{0x00}, reach: StateAddressingConfigured},
		{reg: RGBInterface, data: []byte{0xC2}, reach: StateAddressingConfigured},
		{reg: DisplayFunction, data: []byte{0x0A, 0xA7, 0x27, 0x04}, reach: StateAddressingConfigured},
		{reg: ColumnAddr, data: window(0, x1), reach: StateAddressingConfigured},
		{reg: PageAddr, data: window(0, y1), reach: StateAddressingConfigured},
		{reg: InterfaceControl, data: []byte{0x01, 0x00, 0x06}, reach: StateAddressingConfigured},
		{reg: GRAM, wait: gramSettle, reach: StateAddressingConfigured},

		{reg: Gamma, data: []byte{0x01}, reach: StateGammaConfigured},
		{reg: PositiveGamma, data: positiveGamma, reach: StateGammaConfigured},
		{reg: NegativeGamma, data: negativeGamma, reach: StateGammaConfigured},

		{reg: SleepOut, wait: sleepOutSettle, reach: StateSleepOut},
		{reg: DisplayOn, reach: StateDisplayOn},
		// Arm GRAM so the RGB interface streams straight into frame memory.
		{reg: GRAM, reach: StateGRAMArmed},
	}
}

// window encodes an inclusive [start, end] address range, big endian.
func window(start, end int) []byte {
	return []byte{byte(start >> 8), byte(start), byte(end >> 8), byte(end)}
}

// run executes seq in order, stopping at the first failure.
func (d *Dev) run(seq []command) error {
	for _, c := range seq {
		if err := d.b.Command(c.reg, c.data...); err != nil {
			return fmt.Errorf("ili9341: %s: %w", c.reg, err)
		}
		switch c.wait {
		case gramSettle:
			d.clock.Sleep(d.gramSettle)
		case sleepOutSettle:
			d.clock.Sleep(d.sleepOutSettle)
		}
		d.setState(c.reach)
	}
	return nil
}
