package ili9341

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// trace is an ordered log of pin, transfer and sleep events.
type trace struct {
	mu     sync.Mutex
	events []string
}

func (tr *trace) add(format string, a ...any) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = append(tr.events, fmt.Sprintf(format, a...))
}

func (tr *trace) get() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]string(nil), tr.events...)
}

func (tr *trace) reset() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = nil
}

func (tr *trace) filter(prefix string) []string {
	var out []string
	for _, e := range tr.get() {
		if strings.HasPrefix(e, prefix) {
			out = append(out, e)
		}
	}
	return out
}

type tracePin struct {
	*gpiotest.Pin
	tr *trace
}

func (p *tracePin) Out(l gpio.Level) error {
	p.tr.add("%s %s", p.N, l)
	return p.Pin.Out(l)
}

var errTx = errors.New("tx failed")

type tracePort struct {
	tr   *trace
	fail int // 1-based Tx call that fails, 0 for never

	f    physic.Frequency
	mode spi.Mode
	bits int
}

func (p *tracePort) String() string { return "trace" }

func (p *tracePort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	p.f, p.mode, p.bits = f, mode, bits
	return &traceConn{p: p}, nil
}

type traceConn struct {
	p *tracePort
	n int
}

func (c *traceConn) String() string { return "trace" }

func (c *traceConn) Duplex() conn.Duplex { return conn.Half }

func (c *traceConn) TxPackets(p []spi.Packet) error {
	return errors.New("not supported")
}

func (c *traceConn) Tx(w, r []byte) error {
	c.n++
	if c.n == c.p.fail {
		return errTx
	}
	for _, v := range w {
		c.p.tr.add("W %02X", v)
	}
	return nil
}

// recordingClock logs sleeps instead of blocking.
type recordingClock struct {
	clockwork.Clock
	tr *trace
}

func (c *recordingClock) Sleep(d time.Duration) {
	c.tr.add("sleep %s", d)
}

type harness struct {
	tr   *trace
	port *tracePort
	dc   *tracePin
	cs   *tracePin
	opts *Opts
}

func newHarness() *harness {
	tr := &trace{}
	h := &harness{
		tr:   tr,
		port: &tracePort{tr: tr},
		dc:   &tracePin{Pin: &gpiotest.Pin{N: "DC"}, tr: tr},
		cs:   &tracePin{Pin: &gpiotest.Pin{N: "CS"}, tr: tr},
	}
	h.opts = &Opts{
		CS:    h.cs,
		Clock: &recordingClock{Clock: clockwork.NewRealClock(), tr: tr},
	}
	return h
}

func (h *harness) bus(t *testing.T) *Bus {
	t.Helper()
	b, err := NewBus(h.port, h.dc, h.opts)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	h.tr.reset()
	return b
}

func TestNewBusConnect(t *testing.T) {
	tests := []struct {
		name     string
		cs       bool
		speed    physic.Frequency
		wantMode spi.Mode
		wantF    physic.Frequency
	}{
		{"port driven CS", false, 0, spi.Mode0, DefaultSpeed},
		{"software CS", true, 0, spi.Mode0 | spi.NoCS, DefaultSpeed},
		{"custom speed", false, 10 * physic.MegaHertz, spi.Mode0, 10 * physic.MegaHertz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			if !tt.cs {
				h.opts.CS = nil
			}
			h.opts.Speed = tt.speed
			if _, err := NewBus(h.port, h.dc, h.opts); err != nil {
				t.Fatalf("NewBus: %v", err)
			}
			if h.port.mode != tt.wantMode {
				t.Errorf("mode = %s, want %s", h.port.mode, tt.wantMode)
			}
			if h.port.f != tt.wantF {
				t.Errorf("speed = %s, want %s", h.port.f, tt.wantF)
			}
			if h.port.bits != 8 {
				t.Errorf("bits = %d, want 8", h.port.bits)
			}
			if h.dc.L != gpio.High {
				t.Error("DC should idle high")
			}
			if tt.cs && h.cs.L != gpio.High {
				t.Error("CS should idle high")
			}
		})
	}
}

func TestNewBusErrors(t *testing.T) {
	h := newHarness()
	if _, err := NewBus(h.port, nil, h.opts); err == nil {
		t.Error("NewBus should fail without a DC pin")
	}
	h.opts.GRAMSettle = time.Millisecond
	if _, err := NewBus(h.port, h.dc, h.opts); err == nil {
		t.Error("NewBus should fail with invalid options")
	}
}

func TestBusFraming(t *testing.T) {
	h := newHarness()
	b := h.bus(t)

	if err := b.WriteRegister(DisplayOn); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteData(0xAB); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"DC Low", "CS Low", "W 29", "CS High",
		"DC High", "CS Low", "W AB", "CS High",
	}
	if got := h.tr.get(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestBusFramingPortCS(t *testing.T) {
	h := newHarness()
	h.opts.CS = nil
	b := h.bus(t)

	if err := b.Command(Power1, 0x10); err != nil {
		t.Fatal(err)
	}
	want := []string{"DC Low", "W C0", "DC High", "W 10"}
	if got := h.tr.get(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestBusCommand(t *testing.T) {
	h := newHarness()
	b := h.bus(t)

	if err := b.Command(ColumnAddr, 0x00, 0x00, 0x00, 0xEF); err != nil {
		t.Fatal(err)
	}
	wantW := []string{"W 2A", "W 00", "W 00", "W 00", "W EF"}
	if got := h.tr.filter("W "); !reflect.DeepEqual(got, wantW) {
		t.Errorf("writes = %q, want %q", got, wantW)
	}
	wantDC := []string{"DC Low", "DC High", "DC High", "DC High", "DC High"}
	if got := h.tr.filter("DC "); !reflect.DeepEqual(got, wantDC) {
		t.Errorf("DC = %q, want %q", got, wantDC)
	}
	if n := len(h.tr.filter("CS Low")); n != 5 {
		t.Errorf("CS asserted %d times, want 5", n)
	}
}

func TestBusFaultIsSticky(t *testing.T) {
	h := newHarness()
	h.port.fail = 2
	b := h.bus(t)

	err := b.Command(PowerB, 0x00, 0xC1, 0x30)
	if !errors.Is(err, ErrBusFault) {
		t.Fatalf("Command error = %v, want ErrBusFault", err)
	}
	if !errors.Is(err, errTx) {
		t.Errorf("Command error = %v, want it to wrap the transport error", err)
	}
	events := h.tr.get()
	if last := events[len(events)-1]; last != "CS High" {
		t.Errorf("last event = %q, CS must be released after a failed byte", last)
	}

	h.tr.reset()
	if err := b.WriteRegister(DisplayOn); !errors.Is(err, ErrBusFault) {
		t.Errorf("WriteRegister after fault = %v, want ErrBusFault", err)
	}
	if err := b.WriteData(0); !errors.Is(err, ErrBusFault) {
		t.Errorf("WriteData after fault = %v, want ErrBusFault", err)
	}
	if got := h.tr.get(); len(got) != 0 {
		t.Errorf("faulted bus emitted %q", got)
	}
}

type blockPort struct {
	release chan struct{}
}

func (p *blockPort) String() string { return "block" }

func (p *blockPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	return &blockConn{p}, nil
}

type blockConn struct {
	p *blockPort
}

func (c *blockConn) String() string { return "block" }

func (c *blockConn) Duplex() conn.Duplex { return conn.Half }

func (c *blockConn) TxPackets(p []spi.Packet) error {
	return errors.New("not supported")
}

func (c *blockConn) Tx(w, r []byte) error {
	<-c.p.release
	return nil
}

func TestBusTimeout(t *testing.T) {
	clk := clockwork.NewFakeClock()
	p := &blockPort{release: make(chan struct{})}
	defer close(p.release)

	b, err := NewBus(p, &gpiotest.Pin{N: "DC"}, &Opts{Clock: clk, TxTimeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- b.WriteRegister(SoftwareReset)
	}()
	clk.BlockUntil(1)
	clk.Advance(50 * time.Millisecond)

	select {
	case err := <-errc:
		if !errors.Is(err, ErrTimeout) {
			t.Errorf("WriteRegister error = %v, want ErrTimeout", err)
		}
		if !errors.Is(err, ErrBusFault) {
			t.Errorf("WriteRegister error = %v, want ErrBusFault", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WriteRegister did not time out")
	}

	if err := b.WriteData(0x01); !errors.Is(err, ErrTimeout) {
		t.Errorf("WriteData after timeout = %v, want the recorded timeout", err)
	}
}

func TestBusClaim(t *testing.T) {
	b := newHarness().bus(t)
	if err := b.claim(); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if err := b.claim(); !errors.Is(err, ErrBusOwned) {
		t.Errorf("second claim = %v, want ErrBusOwned", err)
	}
}

func TestBusString(t *testing.T) {
	b := newHarness().bus(t)
	if got, want := b.String(), "ili9341.Bus{trace}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
