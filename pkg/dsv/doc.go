// Package dsv parses delimiter-separated values into rows and streams them in chunks.
//
// Fields are split on a literal delimiter string of any length. There is no
// quoting or escaping: a delimiter always separates fields. An optional
// bookend (for example a double quote) is removed once from both ends of a
// field.
//
// # Parsing APIs
//
// The package provides two levels of API:
//
//   - Tokenize / TokenizeLines - turn lines into rows with no cross-line state
//   - Parser.Stream / Parser.StreamFile - pull chunks of rows from a line source,
//     skipping header, footer and blank lines and reconciling row widths
//
// # Example usage with Tokenize:
//
//	row, err := dsv.Tokenize(`"a" , "b" , c`, dsv.TokenizeOptions{
//	    Delimiter: ",",
//	    Strip:     true,
//	    Bookend:   `"`,
//	})
//	// row is ["a", "b", "c"]
//
// # Example usage with a Stream:
//
//	cfg := dsv.CSV()
//	cfg.SkipHeaderRows = 1
//	cfg.DetectColumns = true
//	p, err := dsv.New(cfg)
//	if err != nil {
//	    // handle error
//	}
//	s, err := p.StreamFile("data.csv.gz")
//	if err != nil {
//	    // handle error
//	}
//	defer s.Close()
//	for s.Next() {
//	    for _, row := range s.Chunk().Rows {
//	        fmt.Println(row)
//	    }
//	}
//	if err := s.Err(); err != nil {
//	    // handle error
//	}
//
// # Thread Safety
//
// A Parser is immutable and safe for concurrent use. Each Stream belongs to a
// single goroutine.
package dsv
