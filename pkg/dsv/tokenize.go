package dsv

import (
	"github.com/shapestone/shape-dsv/internal/columns"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Row is the ordered fields of one line. A zero-length Row comes from an empty line.
type Row []string

// TokenizeOptions is the subset of Config that applies to a single line.
type TokenizeOptions struct {
	Delimiter    string
	Strip        bool
	Bookend      string
	BookendStrip bool
}

func (o TokenizeOptions) validate() error {
	if o.Delimiter == "" {
		return &ConfigError{Field: "Delimiter", Message: "must not be empty"}
	}
	return nil
}

func (o TokenizeOptions) internal() tokenizer.Options {
	return tokenizer.Options{
		Delimiter:    o.Delimiter,
		Strip:        o.Strip,
		Bookend:      o.Bookend,
		BookendStrip: o.BookendStrip,
	}
}

// Tokenize splits line into a Row.
//
// If Strip is set the line and every field are trimmed. A line that is empty
// after trimming yields a zero-field Row. If Bookend is set it is removed once
// from both ends of every field that starts and ends with it and is longer
// than 2*len(Bookend)-1 bytes.
//
// Example:
//
//	row, _ := dsv.Tokenize("a||b||", dsv.TokenizeOptions{Delimiter: "||"})
//	// row: ["a", "b", ""]
func Tokenize(line string, opts TokenizeOptions) (Row, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return tokenizer.Tokenize(line, opts.internal()), nil
}

// TokenizeLines applies Tokenize to every line independently.
func TokenizeLines(lines []string, opts TokenizeOptions) ([]Row, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	topts := opts.internal()
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = tokenizer.Tokenize(line, topts)
	}
	return rows, nil
}

// Reconcile returns row with exactly width fields, padding with empty fields
// or truncating. A mismatch is a *RecordWidthError instead when the matching
// raise flag is set. A row already at width is returned unchanged.
func Reconcile(row Row, width int, raiseOnMissing, raiseOnExtra bool) (Row, error) {
	if width < 0 {
		return nil, &ConfigError{Field: "width", Message: "must not be negative"}
	}
	out, err := columns.Reconcile(row, width, columns.Policy{
		RaiseOnMissing: raiseOnMissing,
		RaiseOnExtra:   raiseOnExtra,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
