// Package report renders the results of a coloring run as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/softglow/ramcolor/internal/memory"
	"github.com/softglow/ramcolor/internal/nspc"
)

// Options of the report writer.
type Options struct {
	Free bool // include the ranges no song has claimed
}

// Writer renders per-song address ranges from a colored memory image.
type Writer struct {
	mem     *memory.ColoredMemory
	options Options
	writer  io.Writer
}

// New creates a new report writer.
func New(mem *memory.ColoredMemory, writer io.Writer, options Options) *Writer {
	return &Writer{
		mem:     mem,
		options: options,
		writer:  writer,
	}
}

// Write renders the report. Every song that was used as a pen gets one row
// in ascending song order, followed by the ranges claimed by more than one
// song and optionally the free ranges.
func (w Writer) Write() error {
	if err := w.writeLine("Address ranges shown are inclusive."); err != nil {
		return err
	}

	used := w.mem.UsedPens()
	for song := nspc.FirstSong; song < nspc.SongCount; song++ {
		owner := memory.Owner(song)
		if !used.Contains(owner) {
			continue
		}

		extents := w.mem.ExtentsColoredBy(owner, false)
		if err := w.writeRow(fmt.Sprintf("%02X", song), extents); err != nil {
			return err
		}
	}

	if multicolored := w.mem.ExtentsMulticolored(); len(multicolored) > 0 {
		if err := w.writeRow("multicolored", multicolored); err != nil {
			return err
		}
	}

	if w.options.Free {
		if err := w.writeRow("free", w.mem.ExtentsUnclaimed()); err != nil {
			return err
		}
	}
	return nil
}

// writeRow renders one label with its extents as inclusive ranges and the
// total byte count.
func (w Writer) writeRow(label string, extents []memory.Extent) error {
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteByte(':')

	total := 0
	for _, extent := range extents {
		fmt.Fprintf(&sb, " %s;", extent)
		total += extent.Len()
	}
	fmt.Fprintf(&sb, " %d bytes", total)

	return w.writeLine(sb.String())
}

func (w Writer) writeLine(line string) error {
	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
