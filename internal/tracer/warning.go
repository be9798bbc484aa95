package tracer

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"

	"github.com/softglow/ramcolor/internal/memory"
)

// WarningKind identifies what a warning is about.
type WarningKind uint8

const (
	// WarnImprobablePointer marks a pattern pointer above the instrument
	// table. The pointer is traversed anyway.
	WarnImprobablePointer WarningKind = iota

	// WarnPointerGoneBad marks a track cursor that ran off the end of RAM.
	// The track ends there, everything claimed so far stays claimed.
	WarnPointerGoneBad
)

// Warning records a suspicious but non-fatal find during traversal.
type Warning struct {
	Kind    WarningKind
	Song    memory.Owner
	Address int    // position the find was made at
	Pointer uint16 // the suspicious pointer, set for WarnImprobablePointer
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnImprobablePointer:
		return fmt.Sprintf("song %02X at %04X: improbable pattern pointer %04X",
			uint8(w.Song), w.Address, w.Pointer)
	case WarnPointerGoneBad:
		return fmt.Sprintf("song %02X: track pointer has gone bad at %06X",
			uint8(w.Song), w.Address)
	default:
		return fmt.Sprintf("song %02X at %04X: unknown warning", uint8(w.Song), w.Address)
	}
}

// addWarning records a warning and logs it.
func (t *Tracer) addWarning(warning Warning) {
	t.warnings = append(t.warnings, warning)

	switch warning.Kind {
	case WarnImprobablePointer:
		t.logger.Warn("Improbable pattern pointer",
			log.Uint8("song", uint8(warning.Song)),
			log.Hex("address", warning.Address),
			log.Hex("pointer", warning.Pointer))
	case WarnPointerGoneBad:
		t.logger.Warn("Track pointer has gone bad",
			log.Uint8("song", uint8(warning.Song)),
			log.Hex("address", warning.Address))
	}
}
