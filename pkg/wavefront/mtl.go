package wavefront

import (
	"io"
	"strings"

	"go.uber.org/zap"
)

// MaterialCommit selects when an in-progress material record is kept.
type MaterialCommit int

const (
	// MaterialCommitCompat keeps a record interrupted by newmtl only if it
	// has at least one property. The final record is always kept, so a
	// source without newmtl still yields one unnamed material.
	MaterialCommitCompat MaterialCommit = iota

	// MaterialCommitNamed keeps every record opened by newmtl, with or
	// without properties. An unnamed empty record is never kept.
	MaterialCommitNamed
)

// String returns the config name of the policy.
func (c MaterialCommit) String() string {
	switch c {
	case MaterialCommitCompat:
		return "compat"
	case MaterialCommitNamed:
		return "named"
	default:
		return "unknown"
	}
}

type mtlKind int

const (
	mtlUnknown mtlKind = iota
	mtlNewMaterial
	mtlProperty
)

// mtlCommand is a classified MTL line.
type mtlCommand struct {
	kind    mtlKind
	keyword string
	name    string
	prop    MaterialProperty
	args    []string
}

// classifyMTL maps a keyword and its arguments to a typed command.
func classifyMTL(keyword string, args []string) (mtlCommand, error) {
	cmd := mtlCommand{keyword: keyword, kind: mtlProperty}

	switch {
	case keyword == "newmtl":
		cmd.kind = mtlNewMaterial
		cmd.name = strings.Join(args, " ")

	case keyword == "illum":
		n, err := parseUint(args)
		if err != nil {
			return cmd, err
		}
		cmd.prop = IntegerProperty(n)

	case strings.HasPrefix(keyword, "K"):
		v, err := parseVec3(args)
		if err != nil {
			return cmd, err
		}
		cmd.prop = VectorProperty(v)

	case strings.HasPrefix(keyword, "N"):
		f, err := parseFloats(args, 1)
		if err != nil {
			return cmd, err
		}
		cmd.prop = FloatProperty(f[0])

	case strings.HasPrefix(keyword, "map_"):
		// Texture options (-s 1 1 1, -clamp on, ...) precede the file name.
		if len(args) > 1 {
			args = args[len(args)-1:]
		}
		p, err := parsePath(args)
		if err != nil {
			return cmd, err
		}
		cmd.prop = PathProperty(p)

	default:
		cmd.kind = mtlUnknown
		cmd.args = args
	}

	return cmd, nil
}

// mtlBuilder accumulates material records from an MTL stream.
type mtlBuilder struct {
	log    *zap.Logger
	policy MaterialCommit

	materials []Material
	current   Material
	named     bool
}

func newMTLBuilder(log *zap.Logger, policy MaterialCommit) *mtlBuilder {
	return &mtlBuilder{
		log:     log,
		policy:  policy,
		current: Material{properties: make(map[string]MaterialProperty)},
	}
}

// commit finishes the current record. final is true at end of input.
func (b *mtlBuilder) commit(final bool) {
	keep := len(b.current.properties) > 0
	switch {
	case keep:
	case b.policy == MaterialCommitNamed:
		keep = b.named
	default:
		keep = final
	}
	if !keep {
		return
	}

	if i, ok := findMaterial(b.materials, b.current.name); ok {
		b.log.Debug("material redefined", zap.String("name", b.current.name))
		b.materials[i] = b.current
		return
	}
	b.materials = append(b.materials, b.current)
}

func (b *mtlBuilder) apply(cmd mtlCommand, lineNo int) {
	switch cmd.kind {
	case mtlNewMaterial:
		b.commit(false)
		b.current = Material{name: cmd.name, properties: make(map[string]MaterialProperty)}
		b.named = true
	case mtlProperty:
		b.current.properties[cmd.keyword] = cmd.prop
	default:
		b.log.Warn("unsupported MTL keyword",
			zap.String("keyword", cmd.keyword),
			zap.Int("line", lineNo))
	}
}

// parseMTL reads a whole material library.
func parseMTL(r io.Reader, log *zap.Logger, policy MaterialCommit) ([]Material, error) {
	b := newMTLBuilder(log, policy)
	lr := newLineReader(r)

	for {
		l, ok, err := lr.next()
		if err != nil {
			return nil, &LineError{Source: "mtl", Line: lr.number + 1, Err: err}
		}
		if !ok {
			break
		}

		cmd, err := classifyMTL(l.keyword, l.args)
		if err != nil {
			return nil, &LineError{Source: "mtl", Line: l.number, Keyword: l.keyword, Err: err}
		}
		b.apply(cmd, l.number)
	}

	b.commit(true)
	return b.materials, nil
}
