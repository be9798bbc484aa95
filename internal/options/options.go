// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input   string // SPC dump to analyze
	Output  string // report file, printed to stdout if empty
	HexFile string // Intel HEX file to write claimed ranges to
}

// Flags contains behavior options.
type Flags struct {
	Song   uint // restrict the Intel HEX export to a single song
	Free   bool // include unclaimed ranges in the report
	Raw    bool // treat the input as a headerless RAM image
	Strict bool // a track cursor leaving RAM aborts the run
	Debug  bool // enable debug logging
	Quiet  bool // only log errors
}

// Program options of the analyzer.
type Program struct {
	Parameters
	Flags
}
