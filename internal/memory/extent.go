package memory

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// Extent is a half-open address interval [Start, End). Extents returned by
// the extraction functions are non-empty, sorted by address and do not
// overlap or touch each other.
type Extent struct {
	Start int
	End   int
}

// Len returns the number of bytes the extent covers.
func (e Extent) Len() int {
	return e.End - e.Start
}

// String renders the extent with inclusive bounds, the form used in
// reports and error messages.
func (e Extent) String() string {
	return fmt.Sprintf("%04X - %04X", e.Start, e.End-1)
}

// ExtentsWhere returns the maximal runs of addresses whose ownership sets
// match the predicate, scanning the whole image in address order.
func (m *ColoredMemory) ExtentsWhere(predicate func(owners set.Set[Owner]) bool) []Extent {
	var extents []Extent
	open := false
	start := 0

	for addr, cell := range m.colors {
		matches := predicate(cell)
		switch {
		case matches && !open:
			start = addr
			open = true
		case !matches && open:
			extents = append(extents, Extent{Start: start, End: addr})
			open = false
		}
	}

	// final run reaches the end of RAM
	if open {
		extents = append(extents, Extent{Start: start, End: len(m.colors)})
	}
	return extents
}

// ExtentsColoredBy returns the ranges claimed by owner. With exclusive set,
// only bytes claimed by owner and nobody else count.
func (m *ColoredMemory) ExtentsColoredBy(owner Owner, exclusive bool) []Extent {
	if exclusive {
		return m.ExtentsWhere(func(owners set.Set[Owner]) bool {
			return len(owners) == 1 && owners.Contains(owner)
		})
	}
	return m.ExtentsWhere(func(owners set.Set[Owner]) bool {
		return owners.Contains(owner)
	})
}

// ExtentsMulticolored returns the ranges claimed by more than one owner.
func (m *ColoredMemory) ExtentsMulticolored() []Extent {
	return m.ExtentsWhere(func(owners set.Set[Owner]) bool {
		return len(owners) > 1
	})
}

// ExtentsClaimed returns the ranges claimed by at least one owner.
func (m *ColoredMemory) ExtentsClaimed() []Extent {
	return m.ExtentsWhere(func(owners set.Set[Owner]) bool {
		return len(owners) > 0
	})
}

// ExtentsUnclaimed returns the ranges no owner has claimed.
func (m *ColoredMemory) ExtentsUnclaimed() []Extent {
	return m.ExtentsWhere(func(owners set.Set[Owner]) bool {
		return len(owners) == 0
	})
}
