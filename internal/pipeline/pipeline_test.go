package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcinbor85/gohex"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/softglow/ramcolor/internal/options"
	"github.com/softglow/ramcolor/internal/spc"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestExecuteWithDump(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	dump := &spc.Dump{RAM: testRAM()}
	var buffer bytes.Buffer

	err := p.ExecuteWithDump(context.Background(), dump, options.Program{}, &buffer)
	assert.NoError(t, err)
	assert.Equal(t, testReport, buffer.String())
}

func TestExecuteWithDumpFailedRun(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	// the song jumps to a destination it never colored, no report may be
	// written from the partial run
	ram := buildRAM(map[int][]byte{
		0x5820: words(0x5822),
		0x5822: words(0x00FF, 0x4000),
	})
	dump := &spc.Dump{RAM: ram}
	var buffer bytes.Buffer

	err := p.ExecuteWithDump(context.Background(), dump, options.Program{}, &buffer)
	assert.Error(t, err)
	assert.Equal(t, 0, buffer.Len())
}

func TestExecuteWithDumpHexFile(t *testing.T) {
	// two songs, the stream of song 2 covers the slot of song 3
	ram := buildRAM(map[int][]byte{
		0x5820: words(0x5830),
		0x5822: words(0x5824),
		0x5824: words(0x0000),
		0x5830: words(0x0000),
	})

	t.Run("claimed ranges", func(t *testing.T) {
		logger := log.NewTestLogger(t)
		p := New(logger)

		opts := options.Program{}
		opts.HexFile = filepath.Join(t.TempDir(), "claimed.hex")

		var buffer bytes.Buffer
		err := p.ExecuteWithDump(context.Background(), &spc.Dump{RAM: ram}, opts, &buffer)
		assert.NoError(t, err)

		segments := parseHexFile(t, opts.HexFile)
		assert.Equal(t, 2, len(segments))
		assert.Equal(t, uint32(0x5820), segments[0].Address)
		assert.Equal(t, words(0x5830, 0x5824, 0x0000), segments[0].Data)
		assert.Equal(t, uint32(0x5830), segments[1].Address)
		assert.Equal(t, words(0x0000), segments[1].Data)
	})

	t.Run("single song", func(t *testing.T) {
		logger := log.NewTestLogger(t)
		p := New(logger)

		opts := options.Program{}
		opts.HexFile = filepath.Join(t.TempDir(), "song.hex")
		opts.Song = 2

		var buffer bytes.Buffer
		err := p.ExecuteWithDump(context.Background(), &spc.Dump{RAM: ram}, opts, &buffer)
		assert.NoError(t, err)

		segments := parseHexFile(t, opts.HexFile)
		assert.Equal(t, 1, len(segments))
		assert.Equal(t, uint32(0x5822), segments[0].Address)
		assert.Equal(t, words(0x5824, 0x0000), segments[0].Data)
	})

	t.Run("unwritable file", func(t *testing.T) {
		logger := log.NewTestLogger(t)
		p := New(logger)

		opts := options.Program{}
		opts.HexFile = filepath.Join(t.TempDir(), "missing", "out.hex")

		var buffer bytes.Buffer
		err := p.ExecuteWithDump(context.Background(), &spc.Dump{RAM: ram}, opts, &buffer)
		assert.Error(t, err)
	})
}

func TestExecute(t *testing.T) {
	t.Run("spc file", func(t *testing.T) {
		data := make([]byte, spc.HeaderSize+spc.RAMSize)
		copy(data, "SNES-SPC700 Sound File Data v0.30")
		copy(data[spc.HeaderSize:], testRAM())
		tmpFile := createTempFile(t, "test.spc", data)

		logger := log.NewTestLogger(t)
		p := New(logger)

		opts := options.Program{}
		opts.Input = tmpFile
		opts.Quiet = true

		var buffer bytes.Buffer
		err := p.Execute(context.Background(), opts, &buffer)
		assert.NoError(t, err)
		assert.Equal(t, testReport, buffer.String())
	})

	t.Run("missing file", func(t *testing.T) {
		logger := log.NewTestLogger(t)
		p := New(logger)

		opts := options.Program{}
		opts.Input = filepath.Join(t.TempDir(), "missing.spc")

		var buffer bytes.Buffer
		err := p.Execute(context.Background(), opts, &buffer)
		assert.Error(t, err)
	})
}

// testRAM lays out one song: its stream plays pattern 0x6000 whose first
// track selects instrument 3 and ends.
func testRAM() []byte {
	return buildRAM(map[int][]byte{
		0x5820: words(0x5822),
		0x5822: words(0x6000, 0x0000),
		0x6000: words(0x6100),
		0x6100: {0xE0, 0x03, 0x00},
	})
}

const testReport = `Address ranges shown are inclusive.
01: 5820 - 5825; 6000 - 600F; 6100 - 6100; 6102 - 6102; 6C12 - 6C17; 30 bytes
`

// buildRAM returns a 64KB image with the given chunks copied in.
func buildRAM(chunks map[int][]byte) []byte {
	ram := make([]byte, spc.RAMSize)
	for address, data := range chunks {
		copy(ram[address:], data)
	}
	return ram
}

// words encodes values as little endian byte pairs.
func words(values ...uint16) []byte {
	buf := make([]byte, 0, len(values)*2)
	for _, value := range values {
		buf = append(buf, byte(value), byte(value>>8))
	}
	return buf
}

func parseHexFile(t *testing.T, name string) []gohex.DataSegment {
	t.Helper()

	file, err := os.Open(name)
	assert.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	parsed := gohex.NewMemory()
	assert.NoError(t, parsed.ParseIntelHex(file))
	return parsed.GetDataSegments()
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
