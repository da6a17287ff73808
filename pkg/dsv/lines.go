package dsv

import "github.com/shapestone/shape-dsv/internal/chunker"

// LineSource is a forward-only sequence of decoded lines without terminators.
// Stream closes it when the input is exhausted, on error, or on Stream.Close.
type LineSource = chunker.LineSource

// Lines returns an in-memory LineSource over lines.
func Lines(lines ...string) LineSource {
	return &sliceSource{lines: lines, pos: -1}
}

type sliceSource struct {
	lines  []string
	pos    int
	closed bool
}

func (s *sliceSource) Scan() bool {
	if s.closed || s.pos+1 >= len(s.lines) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceSource) Line() string { return s.lines[s.pos] }

func (s *sliceSource) Err() error { return nil }

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}
