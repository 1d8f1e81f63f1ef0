package wavefront

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// line is one directive: a keyword followed by its argument tokens.
type line struct {
	number  int
	keyword string
	args    []string
}

// lineReader splits a stream into directives, skipping blank lines and
// comments. Lines have no length limit.
type lineReader struct {
	r      *bufio.Reader
	number int
	done   bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next directive. ok is false at end of input.
func (lr *lineReader) next() (l line, ok bool, err error) {
	for !lr.done {
		text, readErr := lr.r.ReadString('\n')
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				return line{}, false, ioError(readErr)
			}
			lr.done = true
			if text == "" {
				break
			}
		}
		lr.number++

		fields := strings.FieldsFunc(text, isSpace)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		return line{number: lr.number, keyword: fields[0], args: fields[1:]}, true, nil
	}
	return line{}, false, nil
}

// isSpace reports ASCII whitespace only. Other Unicode spaces are part of
// a token.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
