package encoding

import (
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
)

func encodeString(t *testing.T, s string, enc encoding.Encoding) string {
	t.Helper()
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		t.Fatalf("failed to encode %q: %v", s, err)
	}
	return out
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantNil bool
		wantErr error
	}{
		{"empty", "", true, nil},
		{"utf-8", "UTF-8", true, nil},
		{"shift_jis", "shift_jis", false, nil},
		{"sjis alias", "sjis", false, nil},
		{"euc-kr", "euc-kr", false, nil},
		{"unknown", "klingon", true, ErrUnknownEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Lookup(tt.label)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (enc == nil) != tt.wantNil {
				t.Errorf("Lookup(%q) nil = %v, want %v", tt.label, enc == nil, tt.wantNil)
			}
		})
	}
}

func TestNewReader_ShiftJIS(t *testing.T) {
	src := encodeString(t, "o 立方体\n", japanese.ShiftJIS)
	if src == "o 立方体\n" {
		t.Fatal("expected Shift-JIS bytes to differ from UTF-8")
	}

	data, err := io.ReadAll(NewReader(strings.NewReader(src), japanese.ShiftJIS))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "o 立方体\n" {
		t.Errorf("got %q, want %q", data, "o 立方体\n")
	}
}

func TestNewReader_EUCKR(t *testing.T) {
	src := encodeString(t, "newmtl 나무", korean.EUCKR)

	data, err := io.ReadAll(NewReader(strings.NewReader(src), korean.EUCKR))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "newmtl 나무" {
		t.Errorf("got %q", data)
	}
}

func TestNewReader_NilPassthrough(t *testing.T) {
	r := strings.NewReader("v 0 0 0")
	if NewReader(r, nil) != io.Reader(r) {
		t.Error("expected nil encoding to return the reader unchanged")
	}
}
