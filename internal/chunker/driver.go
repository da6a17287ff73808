package chunker

import (
	"errors"
	"strings"
)

// LineSource is a forward-only sequence of decoded, newline-free lines.
type LineSource interface {
	// Scan advances to the next line. It returns false at the end of input or on error.
	Scan() bool
	// Line returns the current line.
	Line() string
	// Err returns the first non-EOF error encountered by Scan.
	Err() error
	// Close releases the underlying resources.
	Close() error
}

// Line is one surviving input line.
type Line struct {
	// Row is the 1-based ordinal of the line after header skipping.
	Row  int
	Text string
}

// Options control line filtering and chunk size.
type Options struct {
	SkipHeaderRows int
	SkipFooterRows int
	SkipEmptyLines bool
	ChunkSize      int
}

// Driver pulls lines from a LineSource and groups the survivors into chunks.
//
// The source is closed exactly once: when it is exhausted, when it fails, or
// when Close is called, whichever happens first.
type Driver struct {
	src    LineSource
	opts   Options
	footer *Footer[Line]

	skipped int
	row     int
	done    bool
	closed  bool
	err     error
}

// New returns a Driver over src. opts.ChunkSize must be positive.
func New(src LineSource, opts Options) *Driver {
	if opts.ChunkSize < 1 {
		opts.ChunkSize = 1
	}
	return &Driver{
		src:    src,
		opts:   opts,
		footer: NewFooter[Line](opts.SkipFooterRows),
	}
}

// Next returns the next chunk. It returns false once the input is exhausted
// or an error occurred; check Err to tell them apart.
//
// All chunks except possibly the last hold exactly ChunkSize lines. A chunk
// that was interrupted by a source error is discarded.
func (d *Driver) Next() ([]Line, bool) {
	if d.done {
		return nil, false
	}

	chunk := make([]Line, 0, d.opts.ChunkSize)
	for len(chunk) < d.opts.ChunkSize {
		if !d.src.Scan() {
			if err := d.src.Err(); err != nil {
				d.fail(err)
				return nil, false
			}
			d.footer.Drain()
			d.finish()
			break
		}
		text := d.src.Line()

		if d.skipped < d.opts.SkipHeaderRows {
			d.skipped++
			continue
		}
		d.row++

		if d.opts.SkipEmptyLines && strings.TrimSpace(text) == "" {
			continue
		}

		if line, ok := d.footer.Push(Line{Row: d.row, Text: text}); ok {
			chunk = append(chunk, line)
		}
	}

	if len(chunk) == 0 {
		return nil, false
	}
	return chunk, true
}

// Err returns the first error from the source or from closing it.
func (d *Driver) Err() error {
	return d.err
}

// Close stops the driver and releases the source. It is safe to call more than once.
func (d *Driver) Close() error {
	d.done = true
	if d.closed {
		return nil
	}
	d.closed = true
	return d.src.Close()
}

func (d *Driver) finish() {
	if err := d.Close(); err != nil && d.err == nil {
		d.err = err
	}
}

func (d *Driver) fail(err error) {
	d.err = err
	if cerr := d.Close(); cerr != nil {
		d.err = errors.Join(err, cerr)
	}
}
