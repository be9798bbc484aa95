// Package export writes claimed RAM ranges in machine readable formats.
package export

import (
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"

	"github.com/softglow/ramcolor/internal/memory"
)

// hexLineLength is the number of data bytes per Intel HEX record.
const hexLineLength = 16

// IntelHex writes the bytes of the given extents as Intel HEX records at
// their RAM addresses, adjacent extents end up merged into one segment.
func IntelHex(writer io.Writer, mem *memory.ColoredMemory, extents []memory.Extent) error {
	out := gohex.NewMemory()

	for _, extent := range extents {
		data, err := mem.PeekRange(extent.Start, extent.Len())
		if err != nil {
			return fmt.Errorf("reading extent %s: %w", extent, err)
		}
		if err := out.AddBinary(uint32(extent.Start), data); err != nil {
			return fmt.Errorf("adding extent %s: %w", extent, err)
		}
	}

	out.DumpIntelHex(writer, hexLineLength)
	return nil
}
