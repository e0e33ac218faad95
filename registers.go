package ili9341

import "fmt"

// Register is an ILI9341 command opcode.
type Register byte

// Level 1 commands.
const (
	SoftwareReset       Register = 0x01 // Software Reset
	ReadDisplayID       Register = 0x04 // Read display identification information
	ReadDisplayStatus   Register = 0x09 // Read Display Status
	ReadPowerMode       Register = 0x0A // Read Display Power Mode
	ReadMADCTL          Register = 0x0B // Read Display MADCTL
	ReadPixelFormat     Register = 0x0C // Read Display Pixel Format
	ReadImageFormat     Register = 0x0D // Read Display Image Format
	ReadSignalMode      Register = 0x0E // Read Display Signal Mode
	ReadSelfDiagnostic  Register = 0x0F // Read Display Self-Diagnostic Result
	SleepIn             Register = 0x10 // Enter Sleep Mode
	SleepOut            Register = 0x11 // Sleep Out
	PartialModeOn       Register = 0x12 // Partial Mode ON
	NormalModeOn        Register = 0x13 // Normal Display Mode ON
	InversionOff        Register = 0x20 // Display Inversion OFF
	InversionOn         Register = 0x21 // Display Inversion ON
	Gamma               Register = 0x26 // Gamma Set
	DisplayOff          Register = 0x28 // Display OFF
	DisplayOn           Register = 0x29 // Display ON
	ColumnAddr          Register = 0x2A // Column Address Set
	PageAddr            Register = 0x2B // Page Address Set
	GRAM                Register = 0x2C // Memory Write
	ColorSet            Register = 0x2D // Color Set
	MemoryRead          Register = 0x2E // Memory Read
	PartialArea         Register = 0x30 // Partial Area
	VScrollDefinition   Register = 0x33 // Vertical Scrolling Definition
	TearingOff          Register = 0x34 // Tearing Effect Line OFF
	TearingOn           Register = 0x35 // Tearing Effect Line ON
	MemoryAccessControl Register = 0x36 // Memory Access Control
	VScrollStart        Register = 0x37 // Vertical Scrolling Start Address
	IdleOff             Register = 0x38 // Idle Mode OFF
	IdleOn              Register = 0x39 // Idle Mode ON
	PixelFormat         Register = 0x3A // COLMOD: Pixel Format Set
	WriteMemoryContinue Register = 0x3C // Write Memory Continue
	ReadMemoryContinue  Register = 0x3E // Read Memory Continue
	SetTearScanline     Register = 0x44 // Set Tear Scanline
	GetScanline         Register = 0x45 // Get Scanline
	WriteBrightness     Register = 0x51 // Write Display Brightness
	ReadBrightness      Register = 0x52 // Read Display Brightness
	WriteCTRLDisplay    Register = 0x53 // Write CTRL Display
	ReadCTRLDisplay     Register = 0x54 // Read CTRL Display
	WriteCABC           Register = 0x55 // Write Content Adaptive Brightness Control
	ReadCABC            Register = 0x56 // Read Content Adaptive Brightness Control
	WriteCABCMin        Register = 0x5E // Write CABC Minimum Brightness
	ReadCABCMin         Register = 0x5F // Read CABC Minimum Brightness
	ReadID1             Register = 0xDA // Read ID1
	ReadID2             Register = 0xDB // Read ID2
	ReadID3             Register = 0xDC // Read ID3
)

// Level 2 commands.
const (
	RGBInterface     Register = 0xB0 // RGB Interface Signal Control
	FrameRateNormal  Register = 0xB1 // Frame Rate Control (In Normal Mode)
	FrameRateIdle    Register = 0xB2 // Frame Rate Control (In Idle Mode)
	FrameRatePartial Register = 0xB3 // Frame Rate Control (In Partial Mode)
	InversionControl Register = 0xB4 // Display Inversion Control
	BlankingPorch    Register = 0xB5 // Blanking Porch Control
	DisplayFunction  Register = 0xB6 // Display Function Control
	EntryMode        Register = 0xB7 // Entry Mode Set
	Backlight1       Register = 0xB8 // Backlight Control 1
	Backlight2       Register = 0xB9 // Backlight Control 2
	Backlight3       Register = 0xBA // Backlight Control 3
	Backlight4       Register = 0xBB // Backlight Control 4
	Backlight5       Register = 0xBC // Backlight Control 5
	Backlight7       Register = 0xBE // Backlight Control 7
	Backlight8       Register = 0xBF // Backlight Control 8
	Power1           Register = 0xC0 // Power Control 1
	Power2           Register = 0xC1 // Power Control 2
	VCOM1            Register = 0xC5 // VCOM Control 1
	VCOM2            Register = 0xC7 // VCOM Control 2
	NVMemoryWrite    Register = 0xD0 // NV Memory Write
	NVMemoryKey      Register = 0xD1 // NV Memory Protection Key
	NVMemoryStatus   Register = 0xD2 // NV Memory Status Read
	ReadID4          Register = 0xD3 // Read ID4
	PositiveGamma    Register = 0xE0 // Positive Gamma Correction
	NegativeGamma    Register = 0xE1 // Negative Gamma Correction
	DigitalGamma1    Register = 0xE2 // Digital Gamma Control 1
	DigitalGamma2    Register = 0xE3 // Digital Gamma Control 2
	InterfaceControl Register = 0xF6 // Interface Control
)

// Extended commands.
const (
	PowerA          Register = 0xCB // Power control A
	PowerB          Register = 0xCF // Power control B
	DriverTimingA   Register = 0xE8 // Driver timing control A
	DriverTimingB   Register = 0xEA // Driver timing control B
	PowerOnSequence Register = 0xED // Power on sequence control
	Gamma3Enable    Register = 0xF2 // Enable 3 gamma control
	PumpRatio       Register = 0xF7 // Pump ratio control
)

// Memory access control (MemoryAccessControl) bits.
const (
	MADCTLRowOrder          byte = 0x80 // 1 = address bottom to top
	MADCTLColumnOrder       byte = 0x40 // 1 = address right to left
	MADCTLExchange          byte = 0x20 // row/column exchange
	MADCTLVerticalRefresh   byte = 0x10 // 1 = refresh bottom to top
	MADCTLBGR               byte = 0x08 // blue-green-red pixel order
	MADCTLHorizontalRefresh byte = 0x04 // 1 = refresh right to left
)

var registerNames = map[Register]string{
	SoftwareReset:       "SoftwareReset",
	ReadDisplayID:       "ReadDisplayID",
	ReadDisplayStatus:   "ReadDisplayStatus",
	ReadPowerMode:       "ReadPowerMode",
	ReadMADCTL:          "ReadMADCTL",
	ReadPixelFormat:     "ReadPixelFormat",
	ReadImageFormat:     "ReadImageFormat",
	ReadSignalMode:      "ReadSignalMode",
	ReadSelfDiagnostic:  "ReadSelfDiagnostic",
	SleepIn:             "SleepIn",
	SleepOut:            "SleepOut",
	PartialModeOn:       "PartialModeOn",
	NormalModeOn:        "NormalModeOn",
	InversionOff:        "InversionOff",
	InversionOn:         "InversionOn",
	Gamma:               "Gamma",
	DisplayOff:          "DisplayOff",
	DisplayOn:           "DisplayOn",
	ColumnAddr:          "ColumnAddr",
	PageAddr:            "PageAddr",
	GRAM:                "GRAM",
	ColorSet:            "ColorSet",
	MemoryRead:          "MemoryRead",
	PartialArea:         "PartialArea",
	VScrollDefinition:   "VScrollDefinition",
	TearingOff:          "TearingOff",
	TearingOn:           "TearingOn",
	MemoryAccessControl: "MemoryAccessControl",
	VScrollStart:        "VScrollStart",
	IdleOff:             "IdleOff",
	IdleOn:              "IdleOn",
	PixelFormat:         "PixelFormat",
	WriteMemoryContinue: "WriteMemoryContinue",
	ReadMemoryContinue:  "ReadMemoryContinue",
	SetTearScanline:     "SetTearScanline",
	GetScanline:         "GetScanline",
	WriteBrightness:     "WriteBrightness",
	ReadBrightness:      "ReadBrightness",
	WriteCTRLDisplay:    "WriteCTRLDisplay",
	ReadCTRLDisplay:     "ReadCTRLDisplay",
	WriteCABC:           "WriteCABC",
	ReadCABC:            "ReadCABC",
	WriteCABCMin:        "WriteCABCMin",
	ReadCABCMin:         "ReadCABCMin",
	ReadID1:             "ReadID1",
	ReadID2:             "ReadID2",
	ReadID3:             "ReadID3",
	RGBInterface:        "RGBInterface",
	FrameRateNormal:     "FrameRateNormal",
	FrameRateIdle:       "FrameRateIdle",
	FrameRatePartial:    "FrameRatePartial",
	InversionControl:    "InversionControl",
	BlankingPorch:       "BlankingPorch",
	DisplayFunction:     "DisplayFunction",
	EntryMode:           "EntryMode",
	Backlight1:          "Backlight1",
	Backlight2:          "Backlight2",
	Backlight3:          "Backlight3",
	Backlight4:          "Backlight4",
	Backlight5:          "Backlight5",
	Backlight7:          "Backlight7",
	Backlight8:          "Backlight8",
	Power1:              "Power1",
	Power2:              "Power2",
	VCOM1:               "VCOM1",
	VCOM2:               "VCOM2",
	NVMemoryWrite:       "NVMemoryWrite",
	NVMemoryKey:         "NVMemoryKey",
	NVMemoryStatus:      "NVMemoryStatus",
	ReadID4:             "ReadID4",
	PositiveGamma:       "PositiveGamma",
	NegativeGamma:       "NegativeGamma",
	DigitalGamma1:       "DigitalGamma1",
	DigitalGamma2:       "DigitalGamma2",
	InterfaceControl:    "InterfaceControl",
	PowerA:              "PowerA",
	PowerB:              "PowerB",
	DriverTimingA:       "DriverTimingA",
	DriverTimingB:       "DriverTimingB",
	PowerOnSequence:     "PowerOnSequence",
	Gamma3Enable:        "Gamma3Enable",
	PumpRatio:           "PumpRatio",
}

func (r Register) String() string {
	if n, ok := registerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("Register(0x%02X)", byte(r))
}
