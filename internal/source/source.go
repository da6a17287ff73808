// Package source reads decoded, newline-normalized lines from files and readers.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// maxLineSize bounds a single line.
const maxLineSize = 64 << 20

// DecodingError reports input that is not valid in the configured encoding.
type DecodingError struct {
	// Row is the 1-based physical line number.
	Row      int
	Encoding string
	Err      error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("line %d: cannot decode as %s: %v", e.Row, e.Encoding, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// ErrInvalidUTF8 is wrapped by DecodingError for malformed UTF-8 input.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// Options configure how bytes become lines.
type Options struct {
	// Encoding names the input text encoding. Empty means utf-8.
	Encoding string
}

// Reader yields one line per Scan. It satisfies the chunker's LineSource.
type Reader struct {
	scanner  *bufio.Scanner
	closer   io.Closer
	encoding string
	validate bool

	line   string
	row    int
	err    error
	closed bool
}

// Open opens path for line reading. "-" reads standard input. Compressed
// input (gzip, zstd, xz) is detected by its magic bytes and decompressed.
func Open(path string, opts Options) (*Reader, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if path == "-" {
		f = io.NopCloser(os.Stdin)
	} else if f, err = os.Open(path); err != nil {
		return nil, err
	}

	rc, err := decompress(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r, err := newReader(rc, opts)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return r, nil
}

// NewReader returns a Reader over r. Closing the Reader closes r if it is an io.Closer.
func NewReader(r io.Reader, opts Options) (*Reader, error) {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return newReader(rc, opts)
}

func newReader(rc io.ReadCloser, opts Options) (*Reader, error) {
	enc, err := lookup(opts.Encoding)
	if err != nil {
		return nil, err
	}

	var in io.Reader = rc
	if enc.enc != nil {
		in = transform.NewReader(rc, enc.enc.NewDecoder())
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(ScanLines)

	return &Reader{
		scanner:  sc,
		closer:   rc,
		encoding: enc.name,
		validate: enc.enc == nil,
	}, nil
}

// Scan advances to the next line.
func (r *Reader) Scan() bool {
	if r.closed || r.err != nil {
		return false
	}
	if !r.scanner.Scan() {
		r.err = r.scanner.Err()
		return false
	}
	r.row++

	b := r.scanner.Bytes()
	if r.row == 1 {
		b = trimBOM(b)
	}
	if r.validate && !utf8.Valid(b) {
		r.err = &DecodingError{Row: r.row, Encoding: r.encoding, Err: ErrInvalidUTF8}
		return false
	}
	r.line = string(b)
	return true
}

// Line returns the line read by the last successful Scan.
func (r *Reader) Line() string {
	return r.line
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Close releases every layer of the reader. Later calls return nil.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.closer.Close()
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xef && b[1] == 0xbb && b[2] == 0xbf {
		return b[3:]
	}
	return b
}

// multiReadCloser closes every layer, innermost last.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
