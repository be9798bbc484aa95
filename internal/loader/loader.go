// Package loader handles dump file loading operations.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/softglow/ramcolor/internal/options"
	"github.com/softglow/ramcolor/internal/spc"
)

// Loader handles loading SPC dump files from disk.
type Loader struct{}

// New creates a new dump loader.
func New() *Loader {
	return &Loader{}
}

// Load loads and parses a dump file. Files are read in the SPC file format
// unless raw mode is requested or the file extension marks a headerless
// RAM image.
func (l *Loader) Load(opts options.Program) (*spc.Dump, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	if opts.Raw || hasRawExtension(opts.Input) {
		dump, err := spc.LoadRaw(file)
		if err != nil {
			return nil, fmt.Errorf("loading RAM image: %w", err)
		}
		return dump, nil
	}

	dump, err := spc.Load(file)
	if err != nil {
		return nil, fmt.Errorf("loading SPC dump: %w", err)
	}
	return dump, nil
}

// LoadFromBytes parses an in-memory dump image.
func (l *Loader) LoadFromBytes(data []byte, raw bool) (*spc.Dump, error) {
	if raw {
		dump, err := spc.LoadRaw(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("loading RAM image: %w", err)
		}
		return dump, nil
	}

	dump, err := spc.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading SPC dump: %w", err)
	}
	return dump, nil
}

// hasRawExtension reports whether the file name marks a headerless image.
func hasRawExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".bin", ".ram", ".raw":
		return true
	default:
		return false
	}
}
