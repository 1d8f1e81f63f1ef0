package wavefront

import (
	"errors"
	"testing"

	"github.com/Faultbox/wavefront/pkg/math"
)

func TestClassifyOBJ(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		args    []string
		check   func(t *testing.T, cmd objCommand)
		wantErr error
	}{
		{
			name: "vertex", keyword: "v", args: []string{"1.5", "-2", "0.25"},
			check: func(t *testing.T, cmd objCommand) {
				if cmd.kind != objVertex || cmd.vec3 != (math.Vec3{X: 1.5, Y: -2, Z: 0.25}) {
					t.Errorf("got %+v", cmd)
				}
			},
		},
		{
			name: "vertex with color ignored", keyword: "v", args: []string{"1", "2", "3", "0.5", "0.5", "0.5"},
			check: func(t *testing.T, cmd objCommand) {
				if cmd.vec3 != (math.Vec3{X: 1, Y: 2, Z: 3}) {
					t.Errorf("got %+v", cmd.vec3)
				}
			},
		},
		{
			name: "texcoord", keyword: "vt", args: []string{"0.1", "0.9"},
			check: func(t *testing.T, cmd objCommand) {
				if cmd.kind != objTexCoord || cmd.vec2 != (math.Vec2{X: 0.1, Y: 0.9}) {
					t.Errorf("got %+v", cmd)
				}
			},
		},
		{
			name: "normal not normalized", keyword: "vn", args: []string{"0", "2", "0"},
			check: func(t *testing.T, cmd objCommand) {
				if cmd.kind != objNormal || cmd.vec3 != (math.Vec3{Y: 2}) {
					t.Errorf("got %+v", cmd)
				}
			},
		},
		{
			name: "mtllib unescapes backslashes", keyword: "mtllib", args: []string{`textures\\scene.mtl`},
			check: func(t *testing.T, cmd objCommand) {
				if cmd.kind != objMaterialLibrary || cmd.name != `textures\scene.mtl` {
					t.Errorf("got %+v", cmd)
				}
			},
		},
		{
			name: "group without name", keyword: "g",
			check: func(t *testing.T, cmd objCommand) {
				if cmd.kind != objGroup || cmd.hasName {
					t.Errorf("got %+v", cmd)
				}
			},
		},
		{
			name: "object with spaced name", keyword: "o", args: []string{"left", "wing"},
			check: func(t *testing.T, cmd objCommand) {
				if cmd.kind != objObject || cmd.name != "left wing" || !cmd.hasName {
					t.Errorf("got %+v", cmd)
				}
			},
		},
		{
			name: "unknown keeps arguments", keyword: "s", args: []string{"off"},
			check: func(t *testing.T, cmd objCommand) {
				if cmd.kind != objUnknown || cmd.keyword != "s" || len(cmd.args) != 1 {
					t.Errorf("got %+v", cmd)
				}
			},
		},
		{
			name: "out of range saturates", keyword: "v", args: []string{"1e39", "-1e39", "1e-50"},
			check: func(t *testing.T, cmd objCommand) {
				if !(cmd.vec3.X > 3.4e38 && cmd.vec3.Y < -3.4e38 && cmd.vec3.Z == 0) {
					t.Errorf("expected +Inf, -Inf, 0; got %v", cmd.vec3)
				}
			},
		},
		{name: "vertex missing z", keyword: "v", args: []string{"1", "2"}, wantErr: ErrNotEnoughData},
		{name: "vertex bad number", keyword: "v", args: []string{"1", "two", "3"}, wantErr: ErrParse},
		{name: "texcoord missing v", keyword: "vt", args: []string{"1"}, wantErr: ErrNotEnoughData},
		{name: "usemtl missing name", keyword: "usemtl", wantErr: ErrNotEnoughData},
		{name: "mtllib missing path", keyword: "mtllib", wantErr: ErrPathNotFound},
		{name: "face bad texcoord", keyword: "f", args: []string{"1/x/2", "2", "3"}, wantErr: ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := classifyOBJ(tt.keyword, tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cmd)
		})
	}
}

func TestDataError_ReportsCounts(t *testing.T) {
	_, err := classifyOBJ("vn", []string{"1"})
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if de.Found != 1 || de.Expected != 3 {
		t.Errorf("got found=%d expected=%d, want 1/3", de.Found, de.Expected)
	}
	if de.Error() != "not enough data (found 1, expected 3)" {
		t.Errorf("unexpected message %q", de.Error())
	}
}
