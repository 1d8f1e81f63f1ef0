package wavefront

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFace resolves every face-vertex token of an f directive.
func parseFace(args []string) ([]FaceIndexPair, error) {
	if len(args) == 0 {
		return nil, notEnough(0, 1)
	}
	pairs := make([]FaceIndexPair, len(args))
	for i, tok := range args {
		p, err := parseFaceVertex(tok)
		if err != nil {
			return nil, fmt.Errorf("vertex %d %q: %w", i+1, tok, err)
		}
		pairs[i] = p
	}
	return pairs, nil
}

// parseFaceVertex parses one of v, v/t, v//n or v/t/n into 0-based indices.
// Empty or missing t and n fields are absent, not errors.
func parseFaceVertex(tok string) (FaceIndexPair, error) {
	fields := strings.Split(tok, "/")
	if len(fields) > 3 {
		return FaceIndexPair{}, fmt.Errorf("%w: too many fields", ErrInvalidFaceVertex)
	}
	if fields[0] == "" {
		return FaceIndexPair{}, fmt.Errorf("%w: missing vertex index", ErrInvalidFaceVertex)
	}

	v, err := parseIndex(fields[0])
	if err != nil {
		return FaceIndexPair{}, err
	}
	pair := FaceIndexPair{Vertex: v}

	if len(fields) > 1 && fields[1] != "" {
		t, err := parseIndex(fields[1])
		if err != nil {
			return FaceIndexPair{}, err
		}
		pair.TexCoord = Index(t)
	}
	if len(fields) > 2 && fields[2] != "" {
		n, err := parseIndex(fields[2])
		if err != nil {
			return FaceIndexPair{}, err
		}
		pair.Normal = Index(n)
	}
	return pair, nil
}

// parseIndex converts a 1-based index literal to 0-based. The sign is
// checked before subtracting.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an index", ErrParse, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}
	return n - 1, nil
}
