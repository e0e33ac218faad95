// Package ili9341 brings up an ILI9341 TFT panel in RGB interface mode.
//
// The panel is 240x320. Registers are written over SPI; pixels are then
// streamed by the LCD-TFT controller, see package ltdc.
//
// See the examples for how to use this package.
package ili9341

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ili9341/rgb565"
)

// Datasheet minimum settle times.
const (
	MinGRAMSettle     = 5 * time.Millisecond
	MinSleepOutSettle = 120 * time.Millisecond
)

// DefaultSpeed is 72MHz/16, the divider used by the reference board.
const DefaultSpeed = 4500 * physic.KiloHertz

// ErrHalted is returned by operations on a halted panel.
var ErrHalted = errors.New("ili9341: halted")

// Opts is the configuration for the ILI9341 panel.
type Opts struct {
	// Optional software chip select. When nil the SPI port drives CS.
	CS gpio.PinOut

	Speed     physic.Frequency // SPI clock (default: DefaultSpeed)
	TxTimeout time.Duration    // Per-byte transfer bound (default: 100ms, negative disables)

	// Settle times after selecting GRAM and after sleep out.
	GRAMSettle     time.Duration // default and minimum: MinGRAMSettle
	SleepOutSettle time.Duration // default and minimum: MinSleepOutSettle

	// Clock used for settle delays and transfer timeouts (default: real clock).
	Clock clockwork.Clock
	// Logger receives bring-up events. Nil discards them.
	Logger logrus.FieldLogger
}

// normalize returns a copy of o with defaults applied.
func (o *Opts) normalize() (Opts, error) {
	var n Opts
	if o != nil {
		n = *o
	}
	if n.Speed == 0 {
		n.Speed = DefaultSpeed
	}
	if n.Speed < 0 {
		return n, fmt.Errorf("ili9341: invalid speed %s", n.Speed)
	}
	if n.TxTimeout == 0 {
		n.TxTimeout = 100 * time.Millisecond
	}
	if n.GRAMSettle == 0 {
		n.GRAMSettle = MinGRAMSettle
	}
	if n.GRAMSettle < MinGRAMSettle {
		return n, fmt.Errorf("ili9341: GRAM settle %s is below the %s minimum", n.GRAMSettle, MinGRAMSettle)
	}
	if n.SleepOutSettle == 0 {
		n.SleepOutSettle = MinSleepOutSettle
	}
	if n.SleepOutSettle < MinSleepOutSettle {
		return n, fmt.Errorf("ili9341: sleep out settle %s is below the %s minimum", n.SleepOutSettle, MinSleepOutSettle)
	}
	if n.Clock == nil {
		n.Clock = clockwork.NewRealClock()
	}
	if n.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		n.Logger = l
	}
	return n, nil
}

// Dev is the device handle for an initialized ILI9341 panel.
type Dev struct {
	mu    sync.Mutex
	b     *Bus
	clock clockwork.Clock
	log   logrus.FieldLogger
	rect  image.Rectangle

	gramSettle     time.Duration
	sleepOutSettle time.Duration

	state State
}

// NewSPI connects to the panel over SPI and initializes it.
//
// dc is the Data/Command pin. opts can be nil to use defaults.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	b, err := NewBus(p, dc, opts)
	if err != nil {
		return nil, err
	}
	return New(b, opts)
}

// New takes ownership of b and runs the power-on sequence.
//
// On success the panel is on with GRAM write armed, ready for the RGB
// interface. Any bus failure aborts the sequence and no Dev is returned.
func New(b *Bus, opts *Opts) (*Dev, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if err := b.claim(); err != nil {
		return nil, err
	}
	d := &Dev{
		b:              b,
		clock:          o.Clock,
		log:            o.Logger.WithField("dev", "ili9341"),
		rect:           image.Rect(0, 0, Width, Height),
		gramSettle:     o.GRAMSettle,
		sleepOutSettle: o.SleepOutSettle,
	}

	d.log.Info("initializing panel")
	start := d.clock.Now()
	if err := d.run(initSequence(Width, Height)); err != nil {
		d.log.WithError(err).WithField("state", d.state.String()).Error("initialization aborted")
		return nil, err
	}
	d.log.WithField("elapsed", d.clock.Since(start).String()).Info("panel on, GRAM armed")
	return d, nil
}

func (d *Dev) setState(s State) {
	if s == d.state {
		return
	}
	d.log.WithFields(logrus.Fields{"from": d.state.String(), "to": s.String()}).Debug("state")
	d.state = s
}

// State returns the current panel state.
func (d *Dev) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// On turns the display on. It does not repeat the power-on sequence.
func (d *Dev) On() error {
	return d.command(DisplayOn, StateDisplayOn)
}

// Off turns the display off. Frame memory and configuration are retained.
func (d *Dev) Off() error {
	return d.command(DisplayOff, StateDisplayOff)
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	r := InversionOff
	if invert {
		r = InversionOn
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateHalted {
		return ErrHalted
	}
	if err := d.b.WriteRegister(r); err != nil {
		return fmt.Errorf("ili9341: %s: %w", r, err)
	}
	return nil
}

// Halt turns the display off and puts the panel to sleep.
// After calling Halt, the panel will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateHalted {
		return nil
	}
	d.setState(StateHalted)
	if err := d.b.WriteRegister(DisplayOff); err != nil {
		return fmt.Errorf("ili9341: %s: %w", DisplayOff, err)
	}
	if err := d.b.WriteRegister(SleepIn); err != nil {
		return fmt.Errorf("ili9341: %s: %w", SleepIn, err)
	}
	return nil
}

func (d *Dev) command(r Register, next State) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateHalted {
		return ErrHalted
	}
	if err := d.b.WriteRegister(r); err != nil {
		return fmt.Errorf("ili9341: %s: %w", r, err)
	}
	d.setState(next)
	return nil
}

// ColorModel returns the color model of the RGB interface framebuffer.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the panel bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9341.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
