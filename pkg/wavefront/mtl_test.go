package wavefront

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/wavefront/pkg/math"
)

func parseMTLString(t *testing.T, src string, policy MaterialCommit) []Material {
	t.Helper()
	materials, err := parseMTL(strings.NewReader(src), zap.NewNop(), policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return materials
}

func materialNames(materials []Material) []string {
	names := make([]string, len(materials))
	for i := range materials {
		names[i] = materials[i].Name()
	}
	return names
}

func TestParseMTL_TwoMaterials(t *testing.T) {
	src := `
# two materials
newmtl red
Kd 1 0 0
newmtl green
Kd 0 1 0
`
	materials := parseMTLString(t, src, MaterialCommitCompat)
	if len(materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(materials))
	}

	want := []struct {
		name string
		kd   math.Vec3
	}{
		{"red", math.Vec3{X: 1}},
		{"green", math.Vec3{Y: 1}},
	}
	for i, w := range want {
		m := &materials[i]
		if m.Name() != w.name {
			t.Errorf("material %d name = %q, want %q", i, m.Name(), w.name)
		}
		kd, ok := m.DiffuseColor()
		if !ok || kd != w.kd {
			t.Errorf("material %d Kd = %v, %v; want %v", i, kd, ok, w.kd)
		}
	}
}

func TestParseMTL_PropertyKinds(t *testing.T) {
	src := `newmtl wood
Ka 0.1 0.1 0.1
Ks 0.5 0.5 0.5
Ns 96.078431
Ni 1.45
illum 2
map_Kd textures\\wood.png
map_Bump -bm 0.5 wood_n.png
`
	materials := parseMTLString(t, src, MaterialCommitCompat)
	if len(materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(materials))
	}
	m := &materials[0]

	if v, ok := m.AmbientColor(); !ok || v != (math.Vec3{X: 0.1, Y: 0.1, Z: 0.1}) {
		t.Errorf("Ka = %v, %v", v, ok)
	}
	if v, ok := m.SpecularColor(); !ok || v != (math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Errorf("Ks = %v, %v", v, ok)
	}
	if v, ok := m.SpecularIntensity(); !ok || v != 96.078431 {
		t.Errorf("Ns = %v, %v", v, ok)
	}
	if v, ok := m.Illumination(); !ok || v != 2 {
		t.Errorf("illum = %v, %v", v, ok)
	}
	if v, ok := m.DiffuseMap(); !ok || v != `textures\wood.png` {
		t.Errorf("map_Kd = %q, %v", v, ok)
	}
	if p, ok := m.Get("map_Bump"); !ok || p.Kind() != PropertyPath || p.String() != "wood_n.png" {
		t.Errorf("map_Bump = %v, %v", p, ok)
	}
	if p, ok := m.Get("Ni"); !ok || p.Kind() != PropertyFloat {
		t.Errorf("Ni = %v, %v", p, ok)
	}
}

func TestParseMTL_CommitPolicy(t *testing.T) {
	src := `newmtl empty
newmtl full
Kd 1 1 1
newmtl trailing
`
	tests := []struct {
		name   string
		policy MaterialCommit
		want   []string
	}{
		{"compat drops empty mid-stream record", MaterialCommitCompat, []string{"full", "trailing"}},
		{"named keeps every record", MaterialCommitNamed, []string{"empty", "full", "trailing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := materialNames(parseMTLString(t, src, tt.policy))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMTL_EmptySource(t *testing.T) {
	tests := []struct {
		name   string
		policy MaterialCommit
		want   int
	}{
		{"compat keeps the unnamed final record", MaterialCommitCompat, 1},
		{"named drops it", MaterialCommitNamed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			materials := parseMTLString(t, "# nothing here\n", tt.policy)
			if len(materials) != tt.want {
				t.Fatalf("expected %d materials, got %v", tt.want, materialNames(materials))
			}
			if tt.want == 1 && (materials[0].Name() != "" || len(materials[0].Properties()) != 0) {
				t.Errorf("expected an unnamed empty material, got %q with %d properties",
					materials[0].Name(), len(materials[0].Properties()))
			}
		})
	}
}

func TestParseMTL_Redefinition(t *testing.T) {
	src := `newmtl a
Kd 1 0 0
newmtl b
Kd 0 1 0
newmtl a
Kd 0 0 1
`
	materials := parseMTLString(t, src, MaterialCommitCompat)
	if got := materialNames(materials); strings.Join(got, ",") != "a,b" {
		t.Fatalf("got %v, want [a b]", got)
	}
	if kd, _ := materials[0].DiffuseColor(); kd != (math.Vec3{Z: 1}) {
		t.Errorf("expected the later definition to win, got %v", kd)
	}
}

func TestParseMTL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		line    int
	}{
		{"short vector", "newmtl a\nKd 1 1\n", ErrNotEnoughData, 2},
		{"bad float", "newmtl a\nNs shiny\n", ErrParse, 2},
		{"negative illum", "newmtl a\n\nillum -1\n", ErrParse, 3},
		{"map without file", "newmtl a\nmap_Kd\n", ErrPathNotFound, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMTL(strings.NewReader(tt.src), zap.NewNop(), MaterialCommitCompat)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			var le *LineError
			if !errors.As(err, &le) {
				t.Fatalf("expected LineError, got %T", err)
			}
			if le.Source != "mtl" || le.Line != tt.line {
				t.Errorf("got %s:%d, want mtl:%d", le.Source, le.Line, tt.line)
			}
		})
	}
}

func TestParseMTL_UnknownKeywordWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := "newmtl glass\nd 0.5\nTf 1 1 1\nKd 1 1 1\n"

	materials, err := parseMTL(strings.NewReader(src), zap.New(core), MaterialCommitCompat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(materials) != 1 || len(materials[0].Properties()) != 1 {
		t.Fatalf("expected one material with only Kd, got %+v", materials)
	}

	warnings := logs.FilterMessage("unsupported MTL keyword").All()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if got := warnings[0].ContextMap()["keyword"]; got != "d" {
		t.Errorf("first warning keyword = %v, want d", got)
	}
}
