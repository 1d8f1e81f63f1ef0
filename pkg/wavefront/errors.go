package wavefront

import (
	"errors"
	"fmt"
)

// Parse errors. Every error returned by Parser.Parse matches exactly one of
// these with errors.Is, except errors produced by a Resolver, which are
// passed through.
var (
	ErrNotEnoughData     = errors.New("not enough data")
	ErrInvalidFaceVertex = errors.New("invalid face vertex definition")
	ErrInvalidIndex      = errors.New("invalid index definition")
	ErrPathNotFound      = errors.New("path not found")
	ErrIO                = errors.New("i/o error")
	ErrParse             = errors.New("failed to parse a value")
)

// DataError reports a directive with fewer arguments than it requires.
type DataError struct {
	Found    int
	Expected int
}

func (e *DataError) Error() string {
	return fmt.Sprintf("not enough data (found %d, expected %d)", e.Found, e.Expected)
}

// Unwrap lets errors.Is(err, ErrNotEnoughData) match.
func (e *DataError) Unwrap() error {
	return ErrNotEnoughData
}

func notEnough(found, expected int) error {
	return &DataError{Found: found, Expected: expected}
}

// LineError locates a parse failure in its source.
type LineError struct {
	Source  string // "obj" or "mtl"
	Line    int    // 1-based, counting comments and blank lines
	Keyword string
	Err     error
}

func (e *LineError) Error() string {
	if e.Keyword == "" {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s: %v", e.Source, e.Line, e.Keyword, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
