// Package tracer walks the N-SPC sequencer structures in a RAM image and
// colors every byte of the songs it finds.
package tracer

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"

	"github.com/softglow/ramcolor/internal/memory"
	"github.com/softglow/ramcolor/internal/nspc"
)

// Options controls traversal policies.
type Options struct {
	// StrictBounds aborts the whole run when a track cursor runs off the
	// end of RAM instead of warning and ending the track.
	StrictBounds bool
}

// Tracer colors a RAM image by walking the song table and everything
// reachable from it. Hard errors abort a run with ownership only partially
// assigned, callers must not report results after a failed run.
type Tracer struct {
	logger  *log.Logger
	mem     *memory.ColoredMemory
	options Options

	song  memory.Owner // song currently being traced
	songs int

	tracksToParse      []int        // track start addresses not yet decoded
	tracksToParseAdded set.Set[int] // track addresses ever queued, reset per song

	warnings []Warning
}

// New creates a tracer for the given memory image.
func New(logger *log.Logger, mem *memory.ColoredMemory, options Options) *Tracer {
	return &Tracer{
		logger:  logger,
		mem:     mem,
		options: options,
	}
}

// Songs returns the number of songs traced.
func (t *Tracer) Songs() int {
	return t.songs
}

// Warnings returns the suspicious finds collected so far, in the order they
// were made.
func (t *Tracer) Warnings() []Warning {
	return t.warnings
}

// Run traces every song reachable from the song table. The table has no
// explicit length, the data of the first song directly follows it, so the
// table ends at the first slot that a previous song has already claimed.
func (t *Tracer) Run(ctx context.Context) error {
	for song := nspc.FirstSong; song < nspc.SongCount; song++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		slot := nspc.SongSlot(song)
		if t.mem.OwnedByAny(slot) {
			break
		}

		if err := t.traceSong(memory.Owner(song), slot); err != nil {
			return err
		}
		t.songs++
	}
	return nil
}

// traceSong colors everything reachable from one song table slot.
func (t *Tracer) traceSong(song memory.Owner, slot int) error {
	t.song = song
	t.mem.SetPen(song)
	t.tracksToParse = t.tracksToParse[:0]
	t.tracksToParseAdded = set.New[int]()

	start, err := t.mem.ReadWordColored(slot)
	if err != nil {
		return fmt.Errorf("song %02X: reading song table slot at %04X: %w", uint8(song), slot, err)
	}
	if int(start) > nspc.InstrumentTableBase {
		return &BoundaryError{Song: song, Pointer: start}
	}

	t.logger.Debug("Tracing song",
		log.Uint8("song", uint8(song)),
		log.Hex("start", start))

	patterns, err := t.walkSongStream(int(start))
	if err != nil {
		return err
	}

	for _, pattern := range patterns {
		if err := t.readPatternTable(pattern); err != nil {
			return err
		}
	}

	return t.drainTracks()
}

// walkSongStream decodes a song opcode stream and returns the pattern
// pointers it references, in order of appearance. The stream is a word
// sequence, it ends at an end or undefined word or at an unconditional
// jump, which marks an infinitely looping tail.
func (t *Tracer) walkSongStream(cursor int) ([]int, error) {
	var patterns []int

	for {
		op, err := t.mem.ReadWordColored(cursor)
		if err != nil {
			return nil, fmt.Errorf("song %02X: reading song stream at %06X: %w", uint8(t.song), cursor, err)
		}
		cursor += 2

		class := nspc.ClassifySongWord(op)
		switch class {
		case nspc.SongOpEnd, nspc.SongOpUndefined:
			return patterns, nil

		case nspc.SongOpRepeat, nspc.SongOpJump:
			dest, err := t.mem.ReadWordColored(cursor)
			if err != nil {
				return nil, fmt.Errorf("song %02X: reading destination at %06X: %w", uint8(t.song), cursor, err)
			}
			// song flow control only moves backwards into data this song
			// has already colored
			if !t.mem.Owned(int(dest), t.song) {
				return nil, &ValidationError{Song: t.song, Address: cursor, Target: dest}
			}
			cursor += 2

			// an unconditional jump is an infinitely looping tail
			if class == nspc.SongOpJump {
				return patterns, nil
			}

		case nspc.SongOpCommand:
			// no operand

		case nspc.SongOpPattern:
			if int(op) > nspc.InstrumentTableBase {
				t.addWarning(Warning{
					Kind:    WarnImprobablePointer,
					Song:    t.song,
					Address: cursor - 2,
					Pointer: op,
				})
			}
			patterns = append(patterns, int(op))
		}
	}
}
