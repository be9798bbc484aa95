// Package nspc describes the N-SPC sequencer data layout inside SPC700 RAM.
package nspc

const (
	// RAMSize is the size of the SPC700 address space.
	RAMSize = 0x10000

	// SongTableBase is the address of the song pointer table. Entry 0 is
	// unused by the sound engine, the first real slot belongs to song 1.
	SongTableBase = 0x581E

	// InstrumentTableBase is the start of the instrument table. It also
	// serves as the upper bound for plausible song and pattern pointers:
	// sequencer data lives below it.
	InstrumentTableBase = 0x6C00

	// SampleTableBase is the start of the sample directory that follows
	// the instrument table.
	SampleTableBase = 0x6D00

	// InstrumentRecordSize is the number of bytes one instrument record
	// occupies in the instrument table.
	InstrumentRecordSize = 6

	// FirstSong is the lowest valid song index.
	FirstSong = 0x01

	// SongCount is the number of slots the song table can hold at most,
	// bounded by the instrument table that follows the song space.
	SongCount = 0x30

	// TrackCount is the number of track pointers in a pattern table.
	TrackCount = 8
)

// SongSlot returns the address of the song table slot for the given song.
func SongSlot(song int) int {
	return SongTableBase + 2*song
}

// InstrumentRecord returns the address and length of the instrument table
// record selected by index.
func InstrumentRecord(index byte) (int, int) {
	return InstrumentTableBase + InstrumentRecordSize*int(index), InstrumentRecordSize
}
