package tracer

import (
	"fmt"

	"github.com/softglow/ramcolor/internal/memory"
)

// ValidationError reports a song-level jump or repeat whose destination the
// song has not colored yet. Song flow control only ever moves backwards into
// data the song already owns, anything else means the structure being
// traversed is not a song.
type ValidationError struct {
	Song    memory.Owner
	Address int    // address of the destination word in the song stream
	Target  uint16 // destination the instruction names
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("song %02X at %04X: jump or repeat to uncolored RAM %04X",
		uint8(e.Song), e.Address, e.Target)
}

// BoundaryError reports a song start pointer above the instrument table,
// outside the space song data can occupy.
type BoundaryError struct {
	Song    memory.Owner
	Pointer uint16
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("song %02X: start pointer %04X escapes song space",
		uint8(e.Song), e.Pointer)
}
