// Package pipeline orchestrates the analysis workflow stages.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"

	"github.com/softglow/ramcolor/internal/export"
	"github.com/softglow/ramcolor/internal/loader"
	"github.com/softglow/ramcolor/internal/memory"
	"github.com/softglow/ramcolor/internal/options"
	"github.com/softglow/ramcolor/internal/report"
	"github.com/softglow/ramcolor/internal/spc"
	"github.com/softglow/ramcolor/internal/tracer"
)

// Pipeline orchestrates the complete analysis workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new analysis pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete analysis pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	dump, err := p.loader.Load(opts)
	if err != nil {
		return fmt.Errorf("loading dump: %w", err)
	}

	return p.ExecuteWithDump(ctx, dump, opts, writer)
}

// ExecuteWithDump runs the analysis pipeline with a pre-loaded dump.
// This is useful for testing and programmatic usage where the dump is already in memory.
func (p *Pipeline) ExecuteWithDump(ctx context.Context, dump *spc.Dump, opts options.Program, writer io.Writer) error {
	p.printInfo(opts, dump)

	mem := memory.New(dump.RAM)
	songTracer := tracer.New(p.logger, mem, tracer.Options{StrictBounds: opts.Strict})

	// a failed run leaves ownership partially assigned, no report may be
	// written from it
	if err := songTracer.Run(ctx); err != nil {
		return fmt.Errorf("tracing songs: %w", err)
	}

	p.logger.Info("Coloring finished",
		log.Int("songs", songTracer.Songs()),
		log.Int("warnings", len(songTracer.Warnings())),
	)

	if err := report.New(mem, writer, report.Options{Free: opts.Free}).Write(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if opts.HexFile != "" {
		if err := p.writeHexFile(opts, mem); err != nil {
			return fmt.Errorf("writing Intel HEX file: %w", err)
		}
	}
	return nil
}

// writeHexFile exports the claimed ranges, or one song's ranges, as Intel HEX.
func (p *Pipeline) writeHexFile(opts options.Program, mem *memory.ColoredMemory) error {
	extents := mem.ExtentsClaimed()
	if opts.Song != 0 {
		extents = mem.ExtentsColoredBy(memory.Owner(opts.Song), false)
	}

	file, err := os.Create(opts.HexFile)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", opts.HexFile, err)
	}

	writer := bufio.NewWriter(file)
	if err := export.IntelHex(writer, mem, extents); err != nil {
		_ = file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flushing file %s: %w", opts.HexFile, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", opts.HexFile, err)
	}

	p.logger.Info("Wrote Intel HEX export",
		log.String("file", opts.HexFile),
		log.Int("ranges", len(extents)),
	)
	return nil
}

// printInfo prints information about the dump being processed.
func (p *Pipeline) printInfo(opts options.Program, dump *spc.Dump) {
	if opts.Quiet {
		return
	}

	if dump.SongTitle == "" && dump.GameTitle == "" {
		p.logger.Info("Processing RAM image", log.String("file", opts.Input))
		return
	}

	p.logger.Info("Processing SPC dump",
		log.String("file", opts.Input),
		log.String("song", dump.SongTitle),
		log.String("game", dump.GameTitle),
	)
}
