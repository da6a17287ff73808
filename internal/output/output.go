// Package output writes parsed rows in the formats offered by the command line.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// Format names an output format.
type Format string

const (
	Table  Format = "table"
	JSON   Format = "json"
	NDJSON Format = "ndjson"
	CSV    Format = "csv"
)

// Formats lists every supported format.
var Formats = []Format{Table, JSON, NDJSON, CSV}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want table, json, ndjson or csv)", s)
}

// NoData is written by the table format for an empty result.
const NoData = "No data found."

// Writer writes batches of rows to an io.Writer in one format.
type Writer struct {
	w         *bufio.Writer
	format    Format
	delimiter string
}

// NewWriter returns a Writer. delimiter is used by the csv format.
func NewWriter(w io.Writer, format Format, delimiter string) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: format, delimiter: delimiter}
}

// Write writes one batch of rows: the whole result, or one streamed chunk.
//
// table draws a padded table, json writes the batch as one array on one
// line, ndjson writes one array per row, and csv renders delimited text.
func (w *Writer) Write(rows []dsv.Row) error {
	var err error
	switch w.format {
	case Table:
		err = writeTable(w.w, rows)
	case JSON:
		err = writeJSON(w.w, rows)
	case NDJSON:
		err = writeNDJSON(w.w, rows)
	case CSV:
		err = writeCSV(w.w, rows, w.delimiter)
	default:
		err = fmt.Errorf("unknown output format %q", w.format)
	}
	if err != nil {
		return err
	}
	return w.w.Flush()
}

func writeJSON(w io.Writer, rows []dsv.Row) error {
	if rows == nil {
		rows = []dsv.Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}

func writeNDJSON(w io.Writer, rows []dsv.Row) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range rows {
		if row == nil {
			row = dsv.Row{}
		}
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, rows []dsv.Row, delimiter string) error {
	out, err := dsv.Render(dsv.Chunk{Rows: rows}.Node(), delimiter)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// writeTable writes rows as a pipe table with a rule under the first row.
// Short rows are padded with empty cells. Column widths are display widths.
func writeTable(w *bufio.Writer, rows []dsv.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, NoData)
		return err
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 1)
			}
			if n := runewidth.StringWidth(cellText(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for r, row := range rows {
		w.WriteString("|")
		for i, width := range widths {
			cell := ""
			if i < len(row) {
				cell = cellText(row[i])
			}
			w.WriteString(" ")
			w.WriteString(runewidth.FillRight(cell, width))
			w.WriteString(" |")
		}
		w.WriteString("\n")

		if r == 0 {
			w.WriteString("|")
			for _, width := range widths {
				w.WriteString(strings.Repeat("-", width+2))
				w.WriteString("|")
			}
			w.WriteString("\n")
		}
	}
	return nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// cellText keeps a cell on one table line.
func cellText(s string) string {
	return lineBreaks.Replace(s)
}
