// Package cli implements the shape-dsv command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/shapestone/shape-dsv/internal/output"
	"github.com/shapestone/shape-dsv/internal/source"
	"github.com/shapestone/shape-dsv/pkg/dsv"
)

const programName = "shape-dsv"

// Version is reported by --version.
var Version = "0.1.0"

// Exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// sniffLines is how many lines --delimiter auto looks at.
const sniffLines = 20

// Run executes the command line in argv (argv[0] is the program name) and
// returns the process exit code. Cancelling ctx stops the run between chunks.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, programName+": ", 0)

	f, err := newFlags()
	if err != nil {
		logger.Print(err)
		return ExitError
	}
	file, err := f.parse(argv)
	if err != nil {
		logger.Print(err)
		f.printUsage(stderr)
		return ExitUsage
	}
	if f.Help {
		f.printUsage(stdout)
		return ExitOK
	}
	if f.Version {
		fmt.Fprintln(stdout, programName, Version)
		return ExitOK
	}

	format, err := output.ParseFormat(f.OutputFormat)
	if err != nil {
		logger.Print(err)
		return ExitUsage
	}

	cfg := dsv.DefaultConfig()
	if f.Config != "" {
		if cfg, err = dsv.ReadConfigFile(f.Config); err != nil {
			logger.Print(err)
			return ExitUsage
		}
	}
	f.apply(&cfg)

	if cfg.Delimiter == autoDelimiter {
		if cfg.Delimiter, err = sniff(file, cfg.Encoding); err != nil {
			logger.Printf("--delimiter auto: %s", err)
			return ExitError
		}
		if f.Verbose {
			logger.Printf("detected delimiter %q", cfg.Delimiter)
		}
	}

	p, err := dsv.New(cfg)
	if err != nil {
		logger.Print(err)
		return ExitUsage
	}

	if file == "-" && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprint(stderr, "------\nReading from a terminal, end input with Ctrl+D\n------\n")
	}

	s, err := p.StreamFile(file)
	if err != nil {
		logger.Print(err)
		return ExitError
	}
	defer s.Close()

	w := output.NewWriter(stdout, format, cfg.Delimiter)
	if err := run(ctx, s, w, f.Stream, f.Verbose, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Print("interrupted")
			return ExitInterrupted
		}
		logger.Print(err)
		return ExitError
	}
	return ExitOK
}

func run(ctx context.Context, s *dsv.Stream, w *output.Writer, stream, verbose bool, logger *log.Logger) error {
	var all []dsv.Row
	for s.Next() {
		if err := ctx.Err(); err != nil {
			s.Close()
			return err
		}
		chunk := s.Chunk()
		if verbose {
			logger.Printf("stream %s: chunk %d, %d rows from row %d, columns %s",
				s.ID(), chunk.Index, len(chunk.Rows), chunk.FirstRow, s.Detection().Phase)
		}
		if !stream {
			all = append(all, chunk.Rows...)
			continue
		}
		if err := w.Write(chunk.Rows); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !stream {
		return w.Write(all)
	}
	return nil
}

// sniff guesses the delimiter from the first lines of file.
func sniff(file, encoding string) (string, error) {
	if file == "-" {
		return "", errors.New("cannot sniff standard input, name a file")
	}
	r, err := source.Open(file, source.Options{Encoding: encoding})
	if err != nil {
		return "", err
	}
	defer r.Close()

	var lines []string
	for len(lines) < sniffLines && r.Scan() {
		lines = append(lines, r.Line())
	}
	if err := r.Err(); err != nil {
		return "", err
	}
	return dsv.SniffDelimiter(lines), nil
}
