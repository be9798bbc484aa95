package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marcinbor85/gohex"
	"github.com/retroenv/retrogolib/assert"

	"github.com/softglow/ramcolor/internal/memory"
)

func TestIntelHexRoundTrip(t *testing.T) {
	ram := make([]byte, 0x10000)
	for i := range 8 {
		ram[0x5820+i] = byte(0x10 + i)
		ram[0x6C12+i] = byte(0x80 + i)
	}

	mem := memory.New(ram)
	mem.SetPen(1)
	assert.NoError(t, mem.MarkRange(0x5820, 8))
	assert.NoError(t, mem.MarkRange(0x6C12, 8))

	var buffer bytes.Buffer
	assert.NoError(t, IntelHex(&buffer, mem, mem.ExtentsClaimed()))

	parsed := gohex.NewMemory()
	assert.NoError(t, parsed.ParseIntelHex(&buffer))

	segments := parsed.GetDataSegments()
	assert.Equal(t, 2, len(segments))
	assert.Equal(t, uint32(0x5820), segments[0].Address)
	assert.Equal(t, ram[0x5820:0x5828], segments[0].Data)
	assert.Equal(t, uint32(0x6C12), segments[1].Address)
	assert.Equal(t, ram[0x6C12:0x6C1A], segments[1].Data)
}

func TestIntelHexLongExtent(t *testing.T) {
	// an extent longer than one record line spans multiple records
	ram := make([]byte, 0x100)
	for i := range 40 {
		ram[0x20+i] = byte(i)
	}

	mem := memory.New(ram)
	mem.SetPen(1)
	assert.NoError(t, mem.MarkRange(0x20, 40))

	var buffer bytes.Buffer
	assert.NoError(t, IntelHex(&buffer, mem, mem.ExtentsClaimed()))

	parsed := gohex.NewMemory()
	assert.NoError(t, parsed.ParseIntelHex(&buffer))

	segments := parsed.GetDataSegments()
	assert.Equal(t, 1, len(segments))
	assert.Equal(t, ram[0x20:0x48], segments[0].Data)
}

func TestIntelHexNoExtents(t *testing.T) {
	mem := memory.New(make([]byte, 0x100))

	var buffer bytes.Buffer
	assert.NoError(t, IntelHex(&buffer, mem, nil))

	// only the end of file record remains
	assert.Equal(t, ":00000001FF", strings.TrimSpace(buffer.String()))
}
