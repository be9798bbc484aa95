package tracer

import (
	"fmt"

	"github.com/softglow/ramcolor/internal/nspc"
)

// readPatternTable claims a pattern's eight track pointers for the current
// song and queues every nonzero one for decoding.
func (t *Tracer) readPatternTable(pattern int) error {
	for i := range nspc.TrackCount {
		entry := pattern + 2*i
		track, err := t.mem.ReadWordColored(entry)
		if err != nil {
			return fmt.Errorf("song %02X: reading pattern table at %06X: %w", uint8(t.song), entry, err)
		}
		if track != 0 {
			t.addTrackToParse(int(track))
		}
	}
	return nil
}

// addTrackToParse queues a track start address unless it was queued before.
func (t *Tracer) addTrackToParse(addr int) {
	if t.tracksToParseAdded.Contains(addr) {
		return
	}
	t.tracksToParseAdded.Add(addr)
	t.tracksToParse = append(t.tracksToParse, addr)
}

// drainTracks decodes queued tracks until no new ones show up.
func (t *Tracer) drainTracks() error {
	for len(t.tracksToParse) > 0 {
		addr := t.tracksToParse[0]
		t.tracksToParse = t.tracksToParse[1:]

		if err := t.walkTrack(addr); err != nil {
			return err
		}
	}
	return nil
}

// walkTrack decodes one track opcode stream. Only opcode bytes are colored,
// operands stay unclaimed. Since a track start byte is colored before its
// jump target is checked, a jump back into decoded track data is seen as
// claimed and not queued again, which keeps the work list finite.
func (t *Tracer) walkTrack(start int) error {
	cursor := start

	for {
		op, err := t.mem.ReadByteColored(cursor)
		if err != nil {
			return t.trackPointerGoneBad(cursor, err)
		}
		cursor++

		switch op {
		case nspc.TrackEnd:
			return nil

		case nspc.TrackInstrument:
			index, err := t.mem.PeekByte(cursor)
			if err != nil {
				return t.trackPointerGoneBad(cursor, err)
			}
			cursor++

			addr, length := nspc.InstrumentRecord(index)
			if err := t.mem.MarkRange(addr, length); err != nil {
				return fmt.Errorf("song %02X: claiming instrument record %d: %w", uint8(t.song), index, err)
			}

		case nspc.TrackJump:
			target, err := t.mem.PeekWord(cursor)
			if err != nil {
				return t.trackPointerGoneBad(cursor, err)
			}
			count, err := t.mem.PeekByte(cursor + 2)
			if err != nil {
				return t.trackPointerGoneBad(cursor+2, err)
			}
			cursor += 3

			if !t.mem.Owned(int(target), t.song) {
				t.addTrackToParse(int(target))
			}
			// a repeat count of zero jumps for good, the track ends here
			if count == 0 {
				return nil
			}

		default:
			cursor += int(nspc.OperandLengths[op])
		}
	}
}

// trackPointerGoneBad handles a track cursor that ran off the end of RAM.
// The damage is contained to the one track, unless strict bounds checking
// turns it into a hard error.
func (t *Tracer) trackPointerGoneBad(cursor int, err error) error {
	if t.options.StrictBounds {
		return fmt.Errorf("song %02X: track pointer has gone bad at %06X: %w",
			uint8(t.song), cursor, err)
	}

	t.addWarning(Warning{Kind: WarnPointerGoneBad, Song: t.song, Address: cursor})
	return nil
}
