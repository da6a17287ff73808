package dsv

// Default values used by DefaultConfig.
const (
	DefaultChunkSize    = 500
	DefaultMinChunkSize = 10
	DefaultEncoding     = "utf-8"
)

// Config configures tokenization and streaming.
type Config struct {
	// Delimiter is the literal field separator. Required.
	Delimiter string `yaml:"delimiter" toml:"delimiter"`

	// Strip trims whitespace around each line and each field.
	// Default: true
	Strip bool `yaml:"strip" toml:"strip"`

	// Bookend is removed once from both ends of a field. Empty disables it.
	Bookend string `yaml:"bookend" toml:"bookend"`

	// BookendStrip trims whitespace from a field before bookend removal.
	// Default: true
	BookendStrip bool `yaml:"bookend_strip" toml:"bookend_strip"`

	// Encoding names the text encoding of file and reader input.
	// Default: "utf-8"
	Encoding string `yaml:"encoding" toml:"encoding"`

	// SkipHeaderRows discards this many lines at the start of the input.
	SkipHeaderRows int `yaml:"skip_header_rows" toml:"skip_header_rows"`

	// SkipFooterRows discards this many lines at the end of the input.
	SkipFooterRows int `yaml:"skip_footer_rows" toml:"skip_footer_rows"`

	// SkipEmptyLines discards lines that are empty or all whitespace.
	SkipEmptyLines bool `yaml:"skip_empty_lines" toml:"skip_empty_lines"`

	// ChunkSize is the number of rows per streamed chunk.
	// Default: 500
	ChunkSize int `yaml:"chunk_size" toml:"chunk_size"`

	// MinChunkSize is the smallest ChunkSize Validate accepts.
	// Default: 10
	MinChunkSize int `yaml:"min_chunk_size" toml:"min_chunk_size"`

	// DetectColumns takes the width of the first non-blank row as the width
	// of every row after it.
	DetectColumns bool `yaml:"detect_columns" toml:"detect_columns"`

	// MaxDetectChunks bounds how many chunks detection searches.
	// 0 means unbounded.
	MaxDetectChunks int `yaml:"max_detect_chunks" toml:"max_detect_chunks"`

	// NormalizeColumns, if positive, is a fixed width for every row and
	// disables detection. 0 means unset.
	NormalizeColumns int `yaml:"normalize_columns" toml:"normalize_columns"`

	// RaiseOnMissingColumns fails the stream on a row shorter than the width.
	RaiseOnMissingColumns bool `yaml:"raise_on_missing_columns" toml:"raise_on_missing_columns"`

	// RaiseOnExtraColumns fails the stream on a row longer than the width.
	RaiseOnExtraColumns bool `yaml:"raise_on_extra_columns" toml:"raise_on_extra_columns"`
}

// DefaultConfig returns the default configuration. The delimiter is left
// empty and must be set before use; see CSV and TSV for complete presets.
func DefaultConfig() Config {
	return Config{
		Strip:        true,
		BookendStrip: true,
		Encoding:     DefaultEncoding,
		ChunkSize:    DefaultChunkSize,
		MinChunkSize: DefaultMinChunkSize,
	}
}

// CSV returns DefaultConfig with a comma delimiter.
func CSV() Config {
	c := DefaultConfig()
	c.Delimiter = ","
	return c
}

// TSV returns DefaultConfig with a tab delimiter.
func TSV() Config {
	c := DefaultConfig()
	c.Delimiter = "\t"
	return c
}

// Validate checks the configuration and returns a *ConfigError for the
// first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Delimiter == "":
		return &ConfigError{Field: "Delimiter", Message: "must not be empty"}
	case c.MinChunkSize < 1:
		return &ConfigError{Field: "MinChunkSize", Message: "must be at least 1"}
	case c.ChunkSize < c.MinChunkSize:
		return &ConfigError{Field: "ChunkSize", Message: "must be at least MinChunkSize"}
	case c.SkipHeaderRows < 0:
		return &ConfigError{Field: "SkipHeaderRows", Message: "must not be negative"}
	case c.SkipFooterRows < 0:
		return &ConfigError{Field: "SkipFooterRows", Message: "must not be negative"}
	case c.MaxDetectChunks < 0:
		return &ConfigError{Field: "MaxDetectChunks", Message: "must not be negative"}
	case c.NormalizeColumns < 0:
		return &ConfigError{Field: "NormalizeColumns", Message: "must not be negative"}
	}
	return nil
}

// TokenizeOptions returns the subset of c used to tokenize a single line.
func (c Config) TokenizeOptions() TokenizeOptions {
	return TokenizeOptions{
		Delimiter:    c.Delimiter,
		Strip:        c.Strip,
		Bookend:      c.Bookend,
		BookendStrip: c.BookendStrip,
	}
}
