package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// textEncoding is a resolved encoding. A nil enc means the input is UTF-8
// and is validated rather than transformed.
type textEncoding struct {
	name string
	enc  encoding.Encoding
}

func lookup(name string) (textEncoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "utf-8", "utf8":
		return textEncoding{name: "utf-8"}, nil
	case "utf-8-sig", "utf8-sig":
		return textEncoding{name: "utf-8-sig"}, nil
	case "utf-16", "utf16":
		return textEncoding{name: "utf-16", enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}, nil
	case "utf-16le", "utf-16-le":
		return textEncoding{name: "utf-16le", enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}, nil
	case "utf-16be", "utf-16-be":
		return textEncoding{name: "utf-16be", enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return textEncoding{name: "latin-1", enc: charmap.ISO8859_1}, nil
	}

	enc, err := htmlindex.Get(key)
	if err != nil {
		return textEncoding{}, fmt.Errorf("unknown encoding %q", name)
	}
	return textEncoding{name: key, enc: enc}, nil
}
