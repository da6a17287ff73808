package dsv

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/shapestone/shape-dsv/internal/chunker"
	"github.com/shapestone/shape-dsv/internal/columns"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Stream produces chunks of rows from a LineSource, one chunk per Next call.
// It makes a single forward pass and cannot be restarted.
//
// Example usage:
//
//	s := p.Stream(dsv.Lines("a,b", "c,d"))
//	defer s.Close()
//	for s.Next() {
//	    chunk := s.Chunk()
//	    fmt.Println(chunk.Index, chunk.Rows)
//	}
//	if err := s.Err(); err != nil {
//	    // handle error
//	}
type Stream struct {
	id     uuid.UUID
	driver *chunker.Driver
	tok    tokenizer.Options
	policy columns.Policy
	state  columns.State

	chunk Chunk
	index int
	err   error
	done  bool
}

func newStream(src LineSource, cfg Config) *Stream {
	return &Stream{
		id: uuid.New(),
		driver: chunker.New(src, chunker.Options{
			SkipHeaderRows: cfg.SkipHeaderRows,
			SkipFooterRows: cfg.SkipFooterRows,
			SkipEmptyLines: cfg.SkipEmptyLines,
			ChunkSize:      cfg.ChunkSize,
		}),
		tok: cfg.TokenizeOptions().internal(),
		policy: columns.Policy{
			RaiseOnMissing: cfg.RaiseOnMissingColumns,
			RaiseOnExtra:   cfg.RaiseOnExtraColumns,
		},
		state: columns.Initial(cfg.DetectColumns, cfg.NormalizeColumns, cfg.MaxDetectChunks),
	}
}

// ID returns the stream's correlation ID.
func (s *Stream) ID() uuid.UUID {
	return s.id
}

// Next advances to the next chunk. It returns false when the input is
// exhausted or an error occurred; Err tells them apart. A chunk containing
// a row rejected by width validation is not emitted.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}

	lines, ok := s.driver.Next()
	if !ok {
		s.done = true
		s.err = s.driver.Err()
		return false
	}

	rows := make([][]string, len(lines))
	nums := make([]int, len(lines))
	for i, l := range lines {
		rows[i] = tokenizer.Tokenize(l.Text, s.tok)
		nums[i] = l.Row
	}

	state, err := columns.Step(s.state, rows, nums, s.policy)
	if err != nil {
		s.done = true
		s.err = err
		if cerr := s.driver.Close(); cerr != nil {
			s.err = errors.Join(err, cerr)
		}
		return false
	}
	s.state = state

	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	s.chunk = Chunk{Index: s.index, FirstRow: nums[0], Rows: out}
	s.index++
	return true
}

// Chunk returns the chunk read by the last successful Next.
func (s *Stream) Chunk() Chunk {
	return s.chunk
}

// Err returns the error that stopped the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// Close stops the stream and closes its LineSource. It is safe to call more
// than once and after the stream has finished.
func (s *Stream) Close() error {
	s.done = true
	return s.driver.Close()
}

// All returns an iterator over the remaining chunks. If the stream fails the
// final pair carries the error. The stream is closed when iteration ends,
// including when the loop body breaks early.
//
//	for chunk, err := range s.All() {
//	    if err != nil {
//	        return err
//	    }
//	    process(chunk)
//	}
func (s *Stream) All() iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		defer s.Close()
		for s.Next() {
			if !yield(s.chunk, nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Chunk{}, err)
		}
	}
}

// DetectionPhase is the state of column detection in a stream.
type DetectionPhase int

const (
	// DetectionInactive means rows keep their natural width.
	DetectionInactive DetectionPhase = iota
	// DetectionScanning means no non-blank row has been seen yet.
	DetectionScanning
	// DetectionEstablished means every row from here on is reconciled to Width.
	DetectionEstablished
	// DetectionAbandoned means the detection window ran out.
	DetectionAbandoned
)

// String returns the string representation of DetectionPhase.
func (p DetectionPhase) String() string {
	switch p {
	case DetectionInactive:
		return "inactive"
	case DetectionScanning:
		return "scanning"
	case DetectionEstablished:
		return "established"
	case DetectionAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("DetectionPhase(%d)", int(p))
	}
}

// DetectionState is a snapshot of a stream's column detection.
type DetectionState struct {
	Phase DetectionPhase
	// Width is the target width when Phase is DetectionEstablished.
	Width int
	// ChunksScanned counts the chunks searched for the first non-blank row.
	ChunksScanned int
}

// Detection returns the current column detection state.
func (s *Stream) Detection() DetectionState {
	switch st := s.state.(type) {
	case columns.Scanning:
		return DetectionState{Phase: DetectionScanning, ChunksScanned: st.ChunksScanned}
	case columns.Established:
		return DetectionState{Phase: DetectionEstablished, Width: st.Width, ChunksScanned: st.ChunksScanned}
	case columns.Abandoned:
		return DetectionState{Phase: DetectionAbandoned, ChunksScanned: st.ChunksScanned}
	default:
		return DetectionState{Phase: DetectionInactive}
	}
}
