package columns

// State is the column handling state of one stream. It is one of Inactive,
// Scanning, Established or Abandoned.
type State interface {
	isState()
}

// Inactive passes every row through with its natural width.
type Inactive struct{}

// Scanning looks for the first non-blank row, one chunk at a time.
type Scanning struct {
	// ChunksScanned counts the chunks already searched.
	ChunksScanned int
	// Limit bounds ChunksScanned. 0 means unbounded.
	Limit int
}

// Established reconciles every row to Width.
type Established struct {
	Width int
	// ChunksScanned is the number of chunks searched before Width was found.
	// It is 0 for an explicitly configured width.
	ChunksScanned int
}

// Abandoned gave up after Limit chunks without a non-blank row. It is terminal.
type Abandoned struct {
	ChunksScanned int
}

func (Inactive) isState()    {}
func (Scanning) isState()    {}
func (Established) isState() {}
func (Abandoned) isState()   {}

// Initial returns the starting state for a stream.
//
// An explicit width > 0 wins over detection and starts Established.
// maxDetectChunks 0 means the detection window is unbounded.
func Initial(detect bool, width, maxDetectChunks int) State {
	switch {
	case width > 0:
		return Established{Width: width}
	case detect:
		return Scanning{Limit: maxDetectChunks}
	default:
		return Inactive{}
	}
}

// Step applies column handling to one chunk and returns the state for the next one.
//
// rows is modified in place. rowNums holds the row ordinal of each entry in rows
// and is only used for error positions; it may be nil.
//
// While Scanning, rows before the first non-blank row of the chunk are left
// untouched; that row and every row after it are reconciled to its width.
func Step(s State, rows [][]string, rowNums []int, p Policy) (State, error) {
	switch st := s.(type) {
	case Established:
		return st, reconcileFrom(rows, 0, st.Width, rowNums, p)

	case Scanning:
		st.ChunksScanned++
		for k, row := range rows {
			if Blank(row) {
				continue
			}
			est := Established{Width: len(row), ChunksScanned: st.ChunksScanned}
			return est, reconcileFrom(rows, k, est.Width, rowNums, p)
		}
		if st.Limit > 0 && st.ChunksScanned >= st.Limit {
			return Abandoned{ChunksScanned: st.ChunksScanned}, nil
		}
		return st, nil

	default:
		return s, nil
	}
}

// reconcileFrom reconciles rows[from:] to width.
func reconcileFrom(rows [][]string, from, width int, rowNums []int, p Policy) error {
	for i := from; i < len(rows); i++ {
		row, err := Reconcile(rows[i], width, p)
		if err != nil {
			if we, ok := err.(*WidthError); ok && i < len(rowNums) {
				we.Row = rowNums[i]
			}
			return err
		}
		rows[i] = row
	}
	return nil
}
