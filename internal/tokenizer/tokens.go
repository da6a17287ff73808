// Package tokenizer splits delimited lines into fields using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited lines.
//
// There is no quote token: a delimiter is always a delimiter, and wrapping
// characters are handled after splitting by RemoveBookends.
const (
	TokenDelimiter = "Delimiter" // literal field separator
	TokenField     = "Field"     // run of field content
)
