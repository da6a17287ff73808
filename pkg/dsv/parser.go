package dsv

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/shapestone/shape-dsv/internal/columns"
	"github.com/shapestone/shape-dsv/internal/source"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Parser holds a validated Config. It is immutable and safe for concurrent use.
type Parser struct {
	cfg Config
	id  uuid.UUID
}

// New validates cfg and returns a Parser that uses a copy of it.
func New(cfg Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg, id: uuid.New()}, nil
}

// Config returns a copy of the parser's configuration.
func (p *Parser) Config() Config {
	return p.cfg
}

// ID returns the parser's correlation ID.
func (p *Parser) ID() uuid.UUID {
	return p.id
}

// ParseLine tokenizes a single line. When NormalizeColumns is set the row is
// reconciled to that width, and a strict mismatch is a *RecordWidthError
// with Row 1.
func (p *Parser) ParseLine(line string) (Row, error) {
	return p.parseRow(line, 1)
}

// ParseLines tokenizes each line independently and reconciles it to
// NormalizeColumns when that is set. No header, footer or blank line
// handling is applied, and no width is detected. A strict width error
// reports the 1-based index of the offending line.
func (p *Parser) ParseLines(lines []string) ([]Row, error) {
	rows := make([]Row, len(lines))
	for i, line := range lines {
		row, err := p.parseRow(line, i+1)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

func (p *Parser) parseRow(line string, rowNum int) (Row, error) {
	row := tokenizer.Tokenize(line, p.cfg.TokenizeOptions().internal())
	if p.cfg.NormalizeColumns == 0 {
		return row, nil
	}
	out, err := columns.Reconcile(row, p.cfg.NormalizeColumns, columns.Policy{
		RaiseOnMissing: p.cfg.RaiseOnMissingColumns,
		RaiseOnExtra:   p.cfg.RaiseOnExtraColumns,
	})
	if err != nil {
		var werr *columns.WidthError
		if errors.As(err, &werr) {
			werr.Row = rowNum
		}
		return nil, err
	}
	return out, nil
}

// Stream returns a Stream that pulls lines from src. The Stream owns src
// and closes it.
func (p *Parser) Stream(src LineSource) *Stream {
	return newStream(src, p.cfg)
}

// StreamFile opens path and streams it. "-" reads standard input.
// gzip, zstd and xz input is decompressed transparently.
func (p *Parser) StreamFile(path string) (*Stream, error) {
	r, err := source.Open(path, source.Options{Encoding: p.cfg.Encoding})
	if err != nil {
		return nil, err
	}
	return p.Stream(r), nil
}

// StreamReader streams lines decoded from r. If r is an io.Closer it is
// closed with the Stream.
func (p *Parser) StreamReader(r io.Reader) (*Stream, error) {
	sr, err := source.NewReader(r, source.Options{Encoding: p.cfg.Encoding})
	if err != nil {
		return nil, err
	}
	return p.Stream(sr), nil
}

// ParseFile reads the whole file at path and returns every row of every chunk.
func (p *Parser) ParseFile(path string) ([]Row, error) {
	s, err := p.StreamFile(path)
	if err != nil {
		return nil, err
	}
	return collectRows(s)
}

func collectRows(s *Stream) ([]Row, error) {
	defer s.Close()

	var rows []Row
	for s.Next() {
		rows = append(rows, s.Chunk().Rows...)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
