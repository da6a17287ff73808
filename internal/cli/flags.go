package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"

	"github.com/shapestone/shape-dsv/internal/output"
	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// autoDelimiter asks for the delimiter to be sniffed from the input.
const autoDelimiter = "auto"

type flags struct {
	optSet *getopt.Set

	Help    bool `getopt:"-h --help     Display help"`
	Version bool `getopt:"--version     Print the version and exit"`
	Verbose bool `getopt:"-v --verbose  Log progress for every chunk on stderr"`

	Config       string `getopt:"--config -c=path          YAML or TOML file with parser settings; flags given explicitly override it"`
	OutputFormat string `getopt:"--output-format -o=format One of table, json, ndjson, csv. Default:"`

	Delimiter      string `getopt:"--delimiter -d=string Field delimiter, any length. 'auto' guesses among , tab ; |"`
	Bookend        string `getopt:"--bookend=string      Remove this wrapper once from both ends of every field"`
	NoStrip        bool   `getopt:"--no-strip            Keep whitespace around lines and fields"`
	NoBookendStrip bool   `getopt:"--no-bookend-strip    Do not trim fields before bookend removal"`
	Encoding       string `getopt:"--encoding=name       Input text encoding. Default:"`

	SkipHeader     int  `getopt:"--skip-header=rows  Discard this many lines at the start"`
	SkipFooter     int  `getopt:"--skip-footer=rows  Discard this many lines at the end"`
	SkipEmptyLines bool `getopt:"--skip-empty-lines  Discard empty and whitespace-only lines"`

	Stream    bool `getopt:"--stream          Print every chunk as soon as it is parsed"`
	ChunkSize int  `getopt:"--chunk-size=rows Rows per chunk; also the unit of --max-detect-chunks. Default:"`

	DetectColumns    bool `getopt:"--detect-columns             Pad or truncate rows to the width of the first non-blank row"`
	MaxDetectChunks  int  `getopt:"--max-detect-chunks=n        Give up detection after n chunks, 0 for no limit"`
	NormalizeColumns int  `getopt:"--normalize-columns=n        Pad or truncate every row to n fields"`
	RaiseOnMissing   bool `getopt:"--raise-on-missing-columns   Fail on rows shorter than the column width"`
	RaiseOnExtra     bool `getopt:"--raise-on-extra-columns     Fail on rows longer than the column width"`
}

func newFlags() (*flags, error) {
	def := dsv.DefaultConfig()
	f := &flags{
		OutputFormat: string(output.Table),
		Encoding:     def.Encoding,
		ChunkSize:    def.ChunkSize,
	}

	// Operate over a private set instead of the package globals so Run can
	// be called more than once.
	o := getopt.New()
	if err := options.RegisterSet("", f, o); err != nil {
		return nil, fmt.Errorf("option set registration failed: %w", err)
	}
	o.SetProgram(programName)
	o.SetParameters("file")
	f.optSet = o
	return f, nil
}

func (f *flags) parse(argv []string) (file string, err error) {
	if err := f.optSet.Getopt(argv, nil); err != nil {
		return "", err
	}
	if f.Help || f.Version {
		return "", nil
	}
	switch args := f.optSet.Args(); len(args) {
	case 0:
		return "", fmt.Errorf("missing input file (use - for stdin)")
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("unexpected free-form parameter(s): %s...", args[1])
	}
}

func (f *flags) printUsage(w io.Writer) {
	f.optSet.PrintUsage(w)
	fmt.Fprint(w, "\nInput may be gzip, zstd or xz compressed. Use - to read stdin.\n")
}

// apply layers the flags onto cfg. With a config file in play only flags
// that were given explicitly override it.
func (f *flags) apply(cfg *dsv.Config) {
	set := func(name string) bool {
		return f.Config == "" || f.optSet.IsSet(name)
	}

	if set("delimiter") && f.Delimiter != "" {
		cfg.Delimiter = unescape(f.Delimiter)
	}
	if set("bookend") {
		cfg.Bookend = f.Bookend
	}
	if set("no-strip") {
		cfg.Strip = !f.NoStrip
	}
	if set("no-bookend-strip") {
		cfg.BookendStrip = !f.NoBookendStrip
	}
	if set("encoding") {
		cfg.Encoding = f.Encoding
	}
	if set("skip-header") {
		cfg.SkipHeaderRows = f.SkipHeader
	}
	if set("skip-footer") {
		cfg.SkipFooterRows = f.SkipFooter
	}
	if set("skip-empty-lines") {
		cfg.SkipEmptyLines = f.SkipEmptyLines
	}
	if set("chunk-size") {
		cfg.ChunkSize = f.ChunkSize
	}
	if set("detect-columns") {
		cfg.DetectColumns = f.DetectColumns
	}
	if set("max-detect-chunks") {
		cfg.MaxDetectChunks = f.MaxDetectChunks
	}
	if set("normalize-columns") {
		cfg.NormalizeColumns = f.NormalizeColumns
	}
	if set("raise-on-missing-columns") {
		cfg.RaiseOnMissingColumns = f.RaiseOnMissing
	}
	if set("raise-on-extra-columns") {
		cfg.RaiseOnExtraColumns = f.RaiseOnExtra
	}
}

// unescape lets a shell user type \t for a tab delimiter.
func unescape(s string) string {
	return strings.NewReplacer(`\t`, "\t", `\\`, `\`).Replace(s)
}
