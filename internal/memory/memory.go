// Package memory implements a RAM image that records ownership of every
// byte that gets accessed through it.
package memory

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// Owner identifies who claimed a byte of RAM, in practice the index of the
// song whose data structures cover it.
type Owner uint8

// OutOfRangeError is returned for accesses outside the RAM image.
type OutOfRangeError struct {
	Address int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("access at %06X escapes RAM", e.Address)
}

// ColoredMemory pairs a read-only RAM image with a per-address set of
// owners. Reads through the colored accessors claim the bytes they touch
// for the active pen, peeks never do. Ownership only grows, a claimed byte
// stays claimed for the rest of the run.
type ColoredMemory struct {
	ram    []byte
	colors []set.Set[Owner]

	pen      Owner
	penSet   bool
	usedPens set.Set[Owner]
}

// New creates a colored memory for the given RAM image. The image is not
// copied, but it is never written to.
func New(ram []byte) *ColoredMemory {
	colors := make([]set.Set[Owner], len(ram))
	for i := range colors {
		colors[i] = set.New[Owner]()
	}

	return &ColoredMemory{
		ram:      ram,
		colors:   colors,
		usedPens: set.New[Owner](),
	}
}

// Size returns the number of addressable bytes.
func (m *ColoredMemory) Size() int {
	return len(m.ram)
}

// SetPen activates an owner for the following colored reads and records it
// in the used pen set.
func (m *ColoredMemory) SetPen(owner Owner) {
	m.usedPens.Add(owner)
	m.pen = owner
	m.penSet = true
}

// ClearPen deactivates coloring, colored reads then behave like peeks.
// Unlike SetPen this leaves the used pen set untouched.
func (m *ColoredMemory) ClearPen() {
	m.penSet = false
}

// Pen returns the active owner and whether one is set.
func (m *ColoredMemory) Pen() (Owner, bool) {
	return m.pen, m.penSet
}

// UsedPens returns the set of owners that have been activated via SetPen.
func (m *ColoredMemory) UsedPens() set.Set[Owner] {
	return m.usedPens
}

// PeekByte reads the byte at addr without claiming it.
func (m *ColoredMemory) PeekByte(addr int) (byte, error) {
	if err := m.checkRange(addr, 1); err != nil {
		return 0, err
	}
	return m.ram[addr], nil
}

// PeekWord reads the little-endian word at addr without claiming it.
func (m *ColoredMemory) PeekWord(addr int) (uint16, error) {
	if err := m.checkRange(addr, 2); err != nil {
		return 0, err
	}
	return uint16(m.ram[addr]) | uint16(m.ram[addr+1])<<8, nil
}

// PeekRange returns a copy of length bytes starting at addr without
// claiming them.
func (m *ColoredMemory) PeekRange(addr, length int) ([]byte, error) {
	if err := m.checkRange(addr, length); err != nil {
		return nil, err
	}
	data := make([]byte, length)
	copy(data, m.ram[addr:addr+length])
	return data, nil
}

// ReadByteColored reads the byte at addr and claims it for the active pen.
func (m *ColoredMemory) ReadByteColored(addr int) (byte, error) {
	value, err := m.PeekByte(addr)
	if err != nil {
		return 0, err
	}
	m.color(addr, 1)
	return value, nil
}

// ReadWordColored reads the little-endian word at addr and claims both
// bytes for the active pen.
func (m *ColoredMemory) ReadWordColored(addr int) (uint16, error) {
	value, err := m.PeekWord(addr)
	if err != nil {
		return 0, err
	}
	m.color(addr, 2)
	return value, nil
}

// MarkRange claims length bytes starting at addr for the active pen
// without reading them.
func (m *ColoredMemory) MarkRange(addr, length int) error {
	if err := m.checkRange(addr, length); err != nil {
		return err
	}
	m.color(addr, length)
	return nil
}

// Owned reports whether owner has claimed the byte at addr. Addresses
// outside the image are owned by nobody.
func (m *ColoredMemory) Owned(addr int, owner Owner) bool {
	if addr < 0 || addr >= len(m.colors) {
		return false
	}
	return m.colors[addr].Contains(owner)
}

// OwnedByAny reports whether any owner has claimed the byte at addr.
func (m *ColoredMemory) OwnedByAny(addr int) bool {
	if addr < 0 || addr >= len(m.colors) {
		return false
	}
	return len(m.colors[addr]) > 0
}

func (m *ColoredMemory) checkRange(addr, length int) error {
	if addr < 0 || length < 0 || addr+length > len(m.ram) {
		return &OutOfRangeError{Address: addr}
	}
	return nil
}

func (m *ColoredMemory) color(addr, length int) {
	if !m.penSet {
		return
	}
	for i := range length {
		m.colors[addr+i].Add(m.pen)
	}
}
