package nspc

// SongOp classifies a word read from a song opcode stream.
type SongOp int

// Song opcode classes. A song stream is a sequence of little-endian words,
// flow control words carry one destination word as operand.
const (
	SongOpEnd       SongOp = iota // 0x0000, end of song
	SongOpRepeat                  // 0x0001-0x007F, repeat count with destination word
	SongOpCommand                 // 0x0080-0x00FE, game specific command
	SongOpJump                    // 0x00FF, unconditional jump with destination word
	SongOpPattern                 // 0x0100-0xFFF8, pattern table pointer
	SongOpUndefined               // 0xFFF9-0xFFFF, undefined, treated as song end
)

const (
	songRepeatMax  = 0x007F
	songCommandMax = 0x00FE
	songJumpWord   = 0x00FF
	songPatternMax = 0xFFF8
)

// ClassifySongWord returns the song opcode class of a word.
func ClassifySongWord(word uint16) SongOp {
	switch {
	case word == 0:
		return SongOpEnd
	case word > songPatternMax:
		return SongOpUndefined
	case word <= songRepeatMax:
		return SongOpRepeat
	case word == songJumpWord:
		return SongOpJump
	case word <= songCommandMax:
		return SongOpCommand
	default:
		return SongOpPattern
	}
}

// Track opcodes that need bespoke handling during decoding. All other
// opcodes advance the cursor by their operand length.
const (
	TrackEnd        = 0x00 // end of track
	TrackInstrument = 0xE0 // select instrument, operand is the table index
	TrackJump       = 0xEF // jump to address with repeat count, 0 ends the track
)

// OperandLengths maps every track opcode to the number of operand bytes
// following it. Opcodes below 0xE0 are notes, note lengths or parameter
// bytes and carry no operands of their own.
var OperandLengths = [256]uint8{
	0xE0: 1, // instrument select
	0xE1: 1, // pan
	0xE2: 2, // pan fade
	0xE3: 3, // vibrato on
	0xE5: 1, // master volume
	0xE6: 2, // master volume fade
	0xE7: 1, // tempo
	0xE8: 2, // tempo fade
	0xE9: 1, // global transpose
	0xEA: 1, // per-voice transpose
	0xEB: 3, // tremolo on
	0xEC: 1, // volume
	0xEE: 2, // volume fade
	0xEF: 3, // jump with repeat count
	0xF0: 1, // vibrato fade
	0xF1: 3, // pitch envelope to
	0xF2: 3, // pitch envelope from
	0xF4: 1, // tuning
	0xF5: 3, // echo on
	0xF7: 3, // echo parameters
	0xF8: 3, // echo volume fade
	0xF9: 3, // pitch slide
}
