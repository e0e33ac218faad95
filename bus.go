package ili9341

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

var (
	// ErrTimeout is returned when a single byte transfer does not complete
	// within Opts.TxTimeout.
	ErrTimeout = errors.New("ili9341: bus transfer timed out")
	// ErrBusFault wraps the first transport or pin failure. The bus refuses
	// all traffic afterwards.
	ErrBusFault = errors.New("ili9341: bus fault")
	// ErrBusOwned is returned when a Bus is handed to a second Dev.
	ErrBusOwned = errors.New("ili9341: bus already owned by a panel")
)

// Bus frames bytes for the ILI9341 4-line serial interface.
//
// Every byte is its own transaction: the DC line is set first (Low for a
// register, High for data), then CS is asserted, the byte is shifted out and
// CS is released.
type Bus struct {
	mu      sync.Mutex
	c       conn.Conn
	dc      gpio.PinOut
	cs      gpio.PinOut // nil when the SPI port drives CS itself
	clock   clockwork.Clock
	timeout time.Duration
	err     error
	owned   bool
}

// NewBus connects to the SPI port.
//
// The port is configured for Mode0 (clock idle low, sample on the first edge)
// with 8-bit words. When opts.CS is set the port is told not to drive CS and
// the pin is used instead.
func NewBus(p spi.Port, dc gpio.PinOut, opts *Opts) (*Bus, error) {
	if dc == nil {
		return nil, errors.New("ili9341: DC pin is required")
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	mode := spi.Mode0
	if o.CS != nil {
		mode |= spi.NoCS
		if err := o.CS.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("ili9341: failed to release CS: %w", err)
		}
	}
	if err := dc.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("ili9341: failed to drive DC: %w", err)
	}

	c, err := p.Connect(o.Speed, mode, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9341: %w", err)
	}

	return &Bus{
		c:       c,
		dc:      dc,
		cs:      o.CS,
		clock:   o.Clock,
		timeout: o.TxTimeout,
	}, nil
}

// WriteRegister sends one register selector.
func (b *Bus) WriteRegister(r Register) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transfer(gpio.Low, byte(r))
}

// WriteData sends one payload byte for the most recently selected register.
func (b *Bus) WriteData(v byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transfer(gpio.High, v)
}

// Command selects r then sends data one byte at a time.
//
// The whole command holds the bus lock so no other caller can slip a byte in
// between the selector and its payload.
func (b *Bus) Command(r Register, data ...byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.transfer(gpio.Low, byte(r)); err != nil {
		return err
	}
	for _, v := range data {
		if err := b.transfer(gpio.High, v); err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of the bus.
func (b *Bus) String() string {
	return fmt.Sprintf("ili9341.Bus{%s}", b.c)
}

func (b *Bus) claim() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.owned {
		return ErrBusOwned
	}
	b.owned = true
	return nil
}

func (b *Bus) transfer(dc gpio.Level, v byte) error {
	if b.err != nil {
		return b.err
	}
	if err := b.frame(dc, v); err != nil {
		b.err = fmt.Errorf("%w: %w", ErrBusFault, err)
		return b.err
	}
	return nil
}

// frame performs one chip-select framed single byte transaction.
func (b *Bus) frame(dc gpio.Level, v byte) error {
	if err := b.dc.Out(dc); err != nil {
		return fmt.Errorf("failed to drive DC: %w", err)
	}
	if b.cs != nil {
		if err := b.cs.Out(gpio.Low); err != nil {
			return fmt.Errorf("failed to assert CS: %w", err)
		}
	}
	err := b.tx([]byte{v})
	if b.cs != nil {
		if cerr := b.cs.Out(gpio.High); cerr != nil && err == nil {
			err = fmt.Errorf("failed to release CS: %w", cerr)
		}
	}
	return err
}

func (b *Bus) tx(w []byte) error {
	if b.timeout <= 0 {
		return b.c.Tx(w, nil)
	}
	done := make(chan error, 1)
	go func() {
		done <- b.c.Tx(w, nil)
	}()
	t := b.clock.NewTimer(b.timeout)
	defer t.Stop()
	select {
	case err := <-done:
		return err
	case <-t.Chan():
		return ErrTimeout
	}
}
