// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/softglow/ramcolor/internal/nspc"
	"github.com/softglow/ramcolor/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: ramcolor [options] <spc file to analyze>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the file to analyze, please pass the file to analyze as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Song >= nspc.SongCount {
		return fmt.Errorf("invalid song index %02X: the song table holds songs %02X to %02X",
			opts.Song, nspc.FirstSong, nspc.SongCount-1)
	}
	if opts.Song != 0 && opts.HexFile == "" {
		return errors.New("-song requires -hex to name an export file")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output report file, printed on console if no name given")
	flags.StringVar(&opts.HexFile, "hex", "", "name of an Intel HEX file to write the claimed ranges to")
	flags.UintVar(&opts.Song, "song", 0, "song index to restrict the Intel HEX export to, for example 0x0A")
	flags.BoolVar(&opts.Free, "free", false, "include the unclaimed ranges in the report")
	flags.BoolVar(&opts.Raw, "raw", false, "read the input file as raw RAM image without any header")
	flags.BoolVar(&opts.Strict, "strict", false, "treat a track pointer that leaves RAM as a hard error")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
