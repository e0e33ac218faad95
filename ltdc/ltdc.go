// Package ltdc programs an STM32 LCD-TFT display controller.
//
// The controller generates HSYNC, VSYNC, DE and the pixel clock for a panel
// in RGB interface mode and continuously fetches up to two layers from
// memory. Configure must run before any layer is bound.
package ltdc

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotConfigured is returned when a layer is bound or the output is
	// enabled before Configure.
	ErrNotConfigured = errors.New("ltdc: timing not configured")
	// ErrLayer is returned for an invalid layer index or descriptor.
	ErrLayer = errors.New("ltdc: invalid layer")
)

// PixelFormat is the LxPFCR encoding of a layer.
type PixelFormat uint8

const (
	ARGB8888 PixelFormat = iota
	RGB888
	RGB565
	ARGB1555
	ARGB4444
	L8
	AL44
	AL88
)

var pixelFormatNames = [...]string{"ARGB8888", "RGB888", "RGB565", "ARGB1555", "ARGB4444", "L8", "AL44", "AL88"}

func (f PixelFormat) String() string {
	if int(f) < len(pixelFormatNames) {
		return pixelFormatNames[f]
	}
	return fmt.Sprintf("PixelFormat(%d)", uint8(f))
}

// BytesPerPixel returns the storage size of one pixel, or 0 for an unknown
// format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case ARGB8888:
		return 4
	case RGB888:
		return 3
	case RGB565, ARGB1555, ARGB4444, AL88:
		return 2
	case L8, AL44:
		return 1
	}
	return 0
}

// Memory is a framebuffer the controller can fetch from.
//
// pmem.Mem satisfies it.
type Memory interface {
	Bytes() []byte
	PhysAddr() uint64
}

// Layer describes one hardware layer.
//
// The controller only reads Buffer; it never writes to it.
type Layer struct {
	X, Y          int
	Width, Height int
	Format        PixelFormat
	Default       Color // color outside the window and under transparent pixels
	Buffer        Memory
}

func (l *Layer) validate(t Timing) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: empty window %dx%d", ErrLayer, l.Width, l.Height)
	}
	if l.X < 0 || l.Y < 0 || l.X+l.Width > int(t.ActiveWidth) || l.Y+l.Height > int(t.ActiveHeight) {
		return fmt.Errorf("%w: window (%d,%d)+%dx%d outside active area %dx%d",
			ErrLayer, l.X, l.Y, l.Width, l.Height, t.ActiveWidth, t.ActiveHeight)
	}
	bpp := l.Format.BytesPerPixel()
	if bpp == 0 {
		return fmt.Errorf("%w: unknown pixel format %d", ErrLayer, uint8(l.Format))
	}
	if l.Buffer == nil {
		return fmt.Errorf("%w: no framebuffer", ErrLayer)
	}
	if need := l.Width * l.Height * bpp; len(l.Buffer.Bytes()) < need {
		return fmt.Errorf("%w: framebuffer holds %d bytes, need %d", ErrLayer, len(l.Buffer.Bytes()), need)
	}
	if a := l.Buffer.PhysAddr(); a > 0xFFFFFFFF {
		return fmt.Errorf("%w: framebuffer address %#x is not 32-bit", ErrLayer, a)
	}
	if l.Width*bpp+3 > lenMask || l.Height > linesMask {
		return fmt.Errorf("%w: window too large", ErrLayer)
	}
	return nil
}

// Opts is the configuration for the controller.
type Opts struct {
	// Logger receives configuration events. Nil discards them.
	Logger logrus.FieldLogger
}

// Controller is the LTDC peripheral.
type Controller struct {
	mu         sync.Mutex
	r          Registers
	log        logrus.FieldLogger
	timing     Timing
	configured bool
	layers     [2]bool
}

// New returns a controller using the register block r.
//
// opts can be nil.
func New(r Registers, opts *Opts) *Controller {
	var log logrus.FieldLogger
	if opts != nil {
		log = opts.Logger
	}
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Controller{r: r, log: log.WithField("dev", "ltdc")}
}

// Configure programs sync widths, porches, active area, signal polarities and
// the background color, then reloads the shadow registers.
//
// The values must match the panel datasheet exactly. A mismatch is not
// detected here: the panel simply fails to lock.
func (c *Controller) Configure(t Timing, background Color) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	sscr, bpcr, awcr, twcr := t.accumulated()
	c.r.Write32(SSCR, sscr)
	c.r.Write32(BPCR, bpcr)
	c.r.Write32(AWCR, awcr)
	c.r.Write32(TWCR, twcr)
	c.r.Write32(GCR, c.r.Read32(GCR)&^gcrPolMask|t.gcr())
	c.r.Write32(BCCR, background.rgb())
	c.r.Write32(SRCR, srcrIMR)

	c.timing = t
	c.configured = true
	c.log.WithFields(logrus.Fields{
		"timing":      t.String(),
		"totalWidth":  t.TotalWidth(),
		"totalHeight": t.TotalHeight(),
	}).Info("timing configured")
	return nil
}

// BindLayer attaches l to layer slot index (0 or 1) and enables it.
//
// Configure must have been called first; the window position is relative to
// the programmed back porch.
func (c *Controller) BindLayer(index int, l Layer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.configured {
		return ErrNotConfigured
	}
	base, err := layerBase(index)
	if err != nil {
		return err
	}
	if err := l.validate(c.timing); err != nil {
		return err
	}

	ahbp := int(c.timing.HSync) + int(c.timing.HBackPorch) - 1
	avbp := int(c.timing.VSync) + int(c.timing.VBackPorch) - 1
	lineBytes := l.Width * l.Format.BytesPerPixel()

	c.r.Write32(base+LxWHPCR, uint32(l.X+l.Width+ahbp)<<16|uint32(l.X+ahbp+1))
	c.r.Write32(base+LxWVPCR, uint32(l.Y+l.Height+avbp)<<16|uint32(l.Y+avbp+1))
	c.r.Write32(base+LxPFCR, uint32(l.Format))
	c.r.Write32(base+LxCACR, 0xFF)
	c.r.Write32(base+LxDCCR, l.Default.argb())
	c.r.Write32(base+LxBFCR, bf1PAxCA|bf2PAxCA)
	c.r.Write32(base+LxCFBAR, uint32(l.Buffer.PhysAddr()))
	c.r.Write32(base+LxCFBLR, uint32(lineBytes&pitchMask)<<16|uint32((lineBytes+3)&lenMask))
	c.r.Write32(base+LxCFBLNR, uint32(l.Height&linesMask))
	c.r.Write32(base+LxCR, c.r.Read32(base+LxCR)|lxcrLEN)
	c.r.Write32(SRCR, srcrIMR)

	c.layers[index] = true
	c.log.WithFields(logrus.Fields{
		"layer":  index + 1,
		"window": fmt.Sprintf("(%d,%d)+%dx%d", l.X, l.Y, l.Width, l.Height),
		"format": l.Format.String(),
		"addr":   fmt.Sprintf("%#08x", l.Buffer.PhysAddr()),
	}).Info("layer bound")
	return nil
}

// DisableLayer stops fetching layer slot index.
func (c *Controller) DisableLayer(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	base, err := layerBase(index)
	if err != nil {
		return err
	}
	c.r.Write32(base+LxCR, c.r.Read32(base+LxCR)&^lxcrLEN)
	c.r.Write32(SRCR, srcrIMR)
	c.layers[index] = false
	return nil
}

// Enable starts the timing generator.
func (c *Controller) Enable() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.configured {
		return ErrNotConfigured
	}
	c.r.Write32(GCR, c.r.Read32(GCR)|gcrLTDCEN)
	c.log.Info("output enabled")
	return nil
}

// Disable stops the timing generator.
func (c *Controller) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.r.Write32(GCR, c.r.Read32(GCR)&^gcrLTDCEN)
}

// Halt implements conn.Resource.
func (c *Controller) Halt() error {
	c.Disable()
	return nil
}

// Timing returns the programmed timing and whether Configure has run.
func (c *Controller) Timing() (Timing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timing, c.configured
}

func (c *Controller) String() string {
	return "ltdc.Controller"
}

func layerBase(index int) (uint32, error) {
	switch index {
	case 0:
		return Layer1, nil
	case 1:
		return Layer2, nil
	}
	return 0, fmt.Errorf("%w: index %d", ErrLayer, index)
}
