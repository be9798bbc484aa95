package report

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/softglow/ramcolor/internal/memory"
)

func TestWrite(t *testing.T) {
	mem := memory.New(make([]byte, 0x40))
	mem.SetPen(1)
	assert.NoError(t, mem.MarkRange(0x00, 4))
	mem.SetPen(2)
	assert.NoError(t, mem.MarkRange(0x02, 4))

	var buffer bytes.Buffer
	assert.NoError(t, New(mem, &buffer, Options{Free: true}).Write())

	want := `Address ranges shown are inclusive.
01: 0000 - 0003; 4 bytes
02: 0002 - 0005; 4 bytes
multicolored: 0002 - 0003; 2 bytes
free: 0006 - 003F; 58 bytes
`
	assert.Equal(t, want, buffer.String())
}

func TestWriteWithoutFree(t *testing.T) {
	mem := memory.New(make([]byte, 0x10))
	mem.SetPen(5)
	assert.NoError(t, mem.MarkRange(0x04, 2))

	var buffer bytes.Buffer
	assert.NoError(t, New(mem, &buffer, Options{}).Write())

	want := `Address ranges shown are inclusive.
05: 0004 - 0005; 2 bytes
`
	assert.Equal(t, want, buffer.String())
}

func TestWriteSongsInAscendingOrder(t *testing.T) {
	mem := memory.New(make([]byte, 0x10))
	mem.SetPen(0x0A)
	assert.NoError(t, mem.MarkRange(0x08, 2))
	mem.SetPen(2)
	assert.NoError(t, mem.MarkRange(0x00, 2))

	var buffer bytes.Buffer
	assert.NoError(t, New(mem, &buffer, Options{}).Write())

	want := `Address ranges shown are inclusive.
02: 0000 - 0001; 2 bytes
0A: 0008 - 0009; 2 bytes
`
	assert.Equal(t, want, buffer.String())
}

func TestWriteEmptyRun(t *testing.T) {
	mem := memory.New(make([]byte, 0x10))

	var buffer bytes.Buffer
	assert.NoError(t, New(mem, &buffer, Options{}).Write())

	assert.Equal(t, "Address ranges shown are inclusive.\n", buffer.String())
}

func TestWritePenWithoutClaims(t *testing.T) {
	mem := memory.New(make([]byte, 0x10))
	mem.SetPen(1)

	var buffer bytes.Buffer
	assert.NoError(t, New(mem, &buffer, Options{}).Write())

	want := `Address ranges shown are inclusive.
01: 0 bytes
`
	assert.Equal(t, want, buffer.String())
}
