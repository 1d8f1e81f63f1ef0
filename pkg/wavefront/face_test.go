package wavefront

import (
	"errors"
	"testing"
)

func TestParseFaceVertex(t *testing.T) {
	tests := []struct {
		tok     string
		want    FaceIndexPair
		wantErr error
	}{
		{tok: "1", want: FaceIndexPair{Vertex: 0}},
		{tok: "3/2", want: FaceIndexPair{Vertex: 2, TexCoord: Index(1)}},
		{tok: "3/", want: FaceIndexPair{Vertex: 2}},
		{tok: "4//7", want: FaceIndexPair{Vertex: 3, Normal: Index(6)}},
		{tok: "4/5/6", want: FaceIndexPair{Vertex: 3, TexCoord: Index(4), Normal: Index(5)}},
		{tok: "4/5/", want: FaceIndexPair{Vertex: 3, TexCoord: Index(4)}},
		{tok: "1/x/2", wantErr: ErrParse},
		{tok: "1/2/y", wantErr: ErrParse},
		{tok: "a", wantErr: ErrParse},
		{tok: "/1/2", wantErr: ErrInvalidFaceVertex},
		{tok: "1/2/3/4", wantErr: ErrInvalidFaceVertex},
		{tok: "0", wantErr: ErrInvalidIndex},
		{tok: "-1", wantErr: ErrInvalidIndex},
		{tok: "1/0", wantErr: ErrInvalidIndex},
		{tok: "1//-3", wantErr: ErrInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := parseFaceVertex(tt.tok)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFace_Empty(t *testing.T) {
	_, err := parseFace(nil)
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if de.Found != 0 || de.Expected != 1 {
		t.Errorf("got found=%d expected=%d", de.Found, de.Expected)
	}
}

func TestParseFace_ReportsCorner(t *testing.T) {
	_, err := parseFace([]string{"1", "2", "3/x"})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if got := err.Error(); got != `vertex 3 "3/x": failed to parse a value: "x" is not an index` {
		t.Errorf("unexpected message %q", got)
	}
}
