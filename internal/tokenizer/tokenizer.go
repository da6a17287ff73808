package tokenizer

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures how a single line becomes a row of fields.
type Options struct {
	// Delimiter is the literal field separator. It may be longer than one character.
	Delimiter string
	// Strip trims surrounding whitespace from the line and from every field.
	Strip bool
	// Bookend is a literal wrapper removed once from both ends of a field. Empty disables it.
	Bookend string
	// BookendStrip trims whitespace from a field before bookend removal.
	BookendStrip bool
}

// NewTokenizer creates a tokenizer that emits delimiter and field tokens.
//
// The delimiter matcher is tried first, so a field token never starts with a
// complete delimiter. A field token may end early at a partial delimiter match;
// Split concatenates adjacent field tokens.
func NewTokenizer(delimiter string) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenDelimiter, delimiter),
		FieldContentMatcher(delimiter),
	)
}

// Tokenize converts one line into fields.
//
// A line that is empty (after the optional strip) yields a zero-field row,
// not a row holding one empty field.
func Tokenize(line string, opts Options) []string {
	if opts.Strip {
		line = strings.TrimSpace(line)
	}
	if line == "" {
		return []string{}
	}

	fields := Split(line, opts.Delimiter)
	for i, f := range fields {
		if opts.Strip {
			f = strings.TrimSpace(f)
		}
		if opts.Bookend != "" {
			f = RemoveBookends(f, opts.Bookend, opts.BookendStrip)
		}
		fields[i] = f
	}
	return fields
}

// Split splits line on every literal occurrence of delimiter.
// There is no quoting or escaping; the result always has at least one field.
func Split(line, delimiter string) []string {
	fields := make([]string, 0, 8)
	if delimiter == "" {
		return append(fields, line)
	}

	// The character stream decodes invalid UTF-8 to U+FFFD; split such input
	// on raw bytes so every byte survives and U+FFFD never matches them.
	if !utf8.ValidString(line) || !utf8.ValidString(delimiter) {
		return splitBytes(fields, line, delimiter)
	}

	tok := NewTokenizer(delimiter)
	tok.Initialize(line)

	var field strings.Builder
	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		switch token.Kind() {
		case TokenDelimiter:
			fields = append(fields, field.String())
			field.Reset()
		case TokenField:
			field.WriteString(token.ValueString())
		}
	}
	return append(fields, field.String())
}

func splitBytes(fields []string, line, delimiter string) []string {
	for {
		i := strings.Index(line, delimiter)
		if i < 0 {
			return append(fields, line)
		}
		fields = append(fields, line[:i])
		line = line[i+len(delimiter):]
	}
}

// RemoveBookends removes one bookend from each end of token.
//
// The token is first trimmed when strip is set. The bookend is removed only if
// the token starts and ends with it and is longer than 2*len(bookend)-1, so the
// prefix and suffix never overlap.
func RemoveBookends(token, bookend string, strip bool) string {
	if strip {
		token = strings.TrimSpace(token)
	}
	if bookend == "" {
		return token
	}
	if len(token) > 2*len(bookend)-1 &&
		strings.HasPrefix(token, bookend) && strings.HasSuffix(token, bookend) {
		return token[len(bookend) : len(token)-len(bookend)]
	}
	return token
}

// FieldContentMatcher creates a matcher for field content up to the next delimiter.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character not starting Delimiter> ;
//
// The first character is always consumed: the delimiter matcher has already
// failed at this position.
//
// Performance: Uses ByteStream with bytes.Index when available.
func FieldContentMatcher(delimiter string) tokenizer.Matcher {
	delim := []byte(delimiter)
	first, _ := utf8.DecodeRuneInString(delimiter)

	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return fieldContentMatcherByte(byteStream, delim)
		}
		return fieldContentMatcherRune(stream, first)
	}
}

// fieldContentMatcherByte finds the next delimiter with a single bytes.Index call.
func fieldContentMatcherByte(stream tokenizer.ByteStream, delim []byte) *tokenizer.Token {
	rest := stream.RemainingBytes()
	if len(rest) == 0 {
		return nil
	}

	// Never split a multi-byte character.
	_, lead := utf8.DecodeRune(rest)
	n := len(rest)
	if i := bytes.Index(rest[lead:], delim); i >= 0 {
		n = lead + i
	}

	startPos := stream.BytePosition()
	for i := 0; i < n; i++ {
		stream.NextByte()
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

// fieldContentMatcherRune is the fallback rune-based implementation.
// It stops before any rune that could start a delimiter.
func fieldContentMatcherRune(stream tokenizer.Stream, first rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if r == first && len(value) > 0 {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}
