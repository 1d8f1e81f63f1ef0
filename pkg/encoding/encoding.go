// Package encoding provides text decoding for OBJ/MTL sources written in
// legacy code pages (Shift-JIS, EUC-KR, Windows-1252, ...).
package encoding

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned by Lookup for names it cannot resolve.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Lookup resolves an encoding by its WHATWG label ("shift_jis", "euc-kr",
// "windows-1252", ...). An empty name or "utf-8" returns nil, meaning the
// input is used as-is.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// NewReader wraps r so that it yields UTF-8. A nil enc returns r unchanged.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
