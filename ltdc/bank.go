package ltdc

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/host/v3/pmem"
)

// DefaultBase is the LTDC base address on STM32F42x/43x parts.
const DefaultBase uint64 = 0x40016800

// ErrInUse is returned when the register block is already mapped.
var ErrInUse = errors.New("ltdc: register block already mapped")

var (
	mappedMu sync.Mutex
	mapped   = map[uint64]bool{}
)

// Bank is a memory mapped LTDC register block.
type Bank struct {
	base uint64
	view *pmem.View
	regs []uint32
}

// Map maps the register block at base through /dev/mem.
//
// A block can only be mapped once at a time; Close releases it.
func Map(base uint64) (*Bank, error) {
	mappedMu.Lock()
	defer mappedMu.Unlock()
	if mapped[base] {
		return nil, fmt.Errorf("%w: %#x", ErrInUse, base)
	}
	v, err := pmem.Map(base, Size)
	if err != nil {
		return nil, fmt.Errorf("ltdc: failed to map %#x: %w", base, err)
	}
	mapped[base] = true
	return &Bank{base: base, view: v, regs: v.Uint32()}, nil
}

// Read32 implements Registers.
func (b *Bank) Read32(off uint32) uint32 {
	return b.regs[off/4]
}

// Write32 implements Registers.
func (b *Bank) Write32(off uint32, v uint32) {
	b.regs[off/4] = v
}

// Close unmaps the block.
func (b *Bank) Close() error {
	mappedMu.Lock()
	defer mappedMu.Unlock()
	delete(mapped, b.base)
	b.regs = nil
	return b.view.Close()
}

func (b *Bank) String() string {
	return fmt.Sprintf("ltdc.Bank{%#x}", b.base)
}
