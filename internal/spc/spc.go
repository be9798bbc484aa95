// Package spc reads SPC700 memory dumps in the SPC file format.
package spc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	// HeaderSize is the length of the file prologue that precedes the RAM
	// image, covering the signature, the ID666 tag and the CPU registers.
	HeaderSize = 0x100

	// RAMSize is the size of the SPC700 RAM image that follows the header.
	RAMSize = 0x10000

	signature = "SNES-SPC700 Sound File Data"

	id666TagOffset  = 0x23
	id666TagPresent = 26

	songTitleOffset = 0x2E
	gameTitleOffset = 0x4E
	titleLength     = 32
)

// Dump is a loaded SPC700 memory snapshot.
type Dump struct {
	RAM []byte // the 64 KB RAM image

	SongTitle string // ID666 song title, empty if the dump carries no tag
	GameTitle string // ID666 game title, empty if the dump carries no tag
}

// Load reads a dump in the SPC file format, the header is validated and the
// ID666 titles are extracted when the tag is present.
func Load(reader io.Reader) (*Dump, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !bytes.HasPrefix(header, []byte(signature)) {
		return nil, fmt.Errorf("missing %q signature", signature)
	}

	ram := make([]byte, RAMSize)
	if _, err := io.ReadFull(reader, ram); err != nil {
		return nil, fmt.Errorf("reading RAM image: %w", err)
	}

	dump := &Dump{RAM: ram}
	if header[id666TagOffset] == id666TagPresent {
		dump.SongTitle = headerText(header, songTitleOffset)
		dump.GameTitle = headerText(header, gameTitleOffset)
	}
	return dump, nil
}

// LoadRaw reads a headerless 64 KB RAM image. Trailing data after the image
// is ignored.
func LoadRaw(reader io.Reader) (*Dump, error) {
	ram := make([]byte, RAMSize)
	if _, err := io.ReadFull(reader, ram); err != nil {
		return nil, fmt.Errorf("reading RAM image: %w", err)
	}
	return &Dump{RAM: ram}, nil
}

// headerText extracts a fixed-size text field, the ID666 text format pads
// with NUL or space bytes.
func headerText(header []byte, offset int) string {
	field := header[offset : offset+titleLength]
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return strings.TrimRight(string(field), " ")
}
