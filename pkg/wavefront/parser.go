package wavefront

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	textenc "github.com/Faultbox/wavefront/pkg/encoding"
	"github.com/Faultbox/wavefront/pkg/math"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	log    *zap.Logger
	enc    encoding.Encoding
	commit MaterialCommit
}

// WithLogger sets the logger that receives warnings about unsupported
// directives. The default discards them.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithEncoding decodes OBJ and MTL input from enc to UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.enc = enc
	}
}

// WithMaterialCommit sets the MTL record commit policy.
func WithMaterialCommit(c MaterialCommit) Option {
	return func(o *options) {
		o.commit = c
	}
}

// Parser parses OBJ files, resolving mtllib directives through a Resolver.
// A Parser may be reused but not shared between goroutines during Parse.
type Parser[C any] struct {
	resolver Resolver[C]
	opts     options
}

// NewParser creates a parser that loads material libraries with resolver.
func NewParser[C any](resolver Resolver[C], opts ...Option) *Parser[C] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser[C]{resolver: resolver, opts: o}
}

// Parse reads an OBJ stream. ctx is handed to the resolver for every
// mtllib directive. The first error aborts parsing.
func (p *Parser[C]) Parse(r io.Reader, ctx C) (*Scene, error) {
	b := newBuilder(p.opts.log)
	lr := newLineReader(textenc.NewReader(r, p.opts.enc))

	for {
		l, ok, err := lr.next()
		if err != nil {
			return nil, &LineError{Source: "obj", Line: lr.number + 1, Err: err}
		}
		if !ok {
			break
		}

		cmd, err := classifyOBJ(l.keyword, l.args)
		if err == nil {
			err = p.apply(b, cmd, l.number, ctx)
		}
		if err != nil {
			if le, ok := err.(*LineError); ok && le.Source == "obj" {
				return nil, le
			}
			return nil, &LineError{Source: "obj", Line: l.number, Keyword: l.keyword, Err: err}
		}
	}

	return b.finish()
}

func (p *Parser[C]) apply(b *builder, cmd objCommand, lineNo int, ctx C) error {
	switch cmd.kind {
	case objMaterialLibrary:
		if len(cmd.args) > 0 {
			b.log.Warn("only the first material library is loaded",
				zap.String("path", cmd.name),
				zap.Strings("ignored", cmd.args),
				zap.Int("line", lineNo))
		}
		materials, err := p.loadMaterials(cmd.name, ctx)
		if err != nil {
			return err
		}
		b.replaceMaterials(materials)
	case objUseMaterial:
		b.useMaterial(cmd.name)
	case objObject:
		if err := b.commitGroup("", false); err != nil {
			return err
		}
		b.commitObject(cmd.name, cmd.hasName)
	case objGroup:
		return b.commitGroup(cmd.name, cmd.hasName)
	case objVertex:
		b.vertices = append(b.vertices, cmd.vec3)
	case objTexCoord:
		b.texCoords = append(b.texCoords, cmd.vec2)
	case objNormal:
		b.normals = append(b.normals, cmd.vec3)
	case objFace:
		return b.addFace(cmd.face, lineNo)
	default:
		b.log.Warn("unprocessable OBJ command",
			zap.String("keyword", cmd.keyword),
			zap.Int("line", lineNo))
	}
	return nil
}

// loadMaterials resolves and parses one material library.
func (p *Parser[C]) loadMaterials(path string, ctx C) ([]Material, error) {
	r, err := p.resolver.Resolve(path, ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", path, err)
	}
	if r == nil {
		return nil, fmt.Errorf("resolving %q: %w: resolver returned no stream", path, ErrPathNotFound)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	materials, err := parseMTL(textenc.NewReader(r, p.opts.enc), p.opts.log, p.opts.commit)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	p.opts.log.Debug("loaded material library",
		zap.String("path", path),
		zap.Int("materials", len(materials)))
	return materials, nil
}

// builder holds the mutable state of one Parse call.
type builder struct {
	log *zap.Logger

	materials []Material
	material  OptionalIndex

	objects       []Object
	objectName    string
	hasObjectName bool

	groups       []Group
	groupName    string
	hasGroupName bool

	vertices  []math.Vec3
	texCoords []math.Vec2
	normals   []math.Vec3
	faces     []Face
	faceLines []int

	// Elements committed by earlier groups.
	vertexOffset   int
	texCoordOffset int
	normalOffset   int
}

func newBuilder(log *zap.Logger) *builder {
	return &builder{log: log}
}

func (b *builder) useMaterial(name string) {
	i, ok := findMaterial(b.materials, name)
	if !ok {
		b.log.Debug("material not found, face will be untextured", zap.String("name", name))
		b.material = NoIndex
		return
	}
	b.material = Index(i)
}

// replaceMaterials installs a new material table. Faces already declared
// and the current selection follow their material by name.
func (b *builder) replaceMaterials(materials []Material) {
	rebind := func(idx OptionalIndex) OptionalIndex {
		i, ok := idx.Get()
		if !ok {
			return idx
		}
		if j, found := findMaterial(materials, b.materials[i].name); found {
			return Index(j)
		}
		return NoIndex
	}

	for _, faces := range b.allFaces() {
		for i := range faces {
			faces[i].material = rebind(faces[i].material)
		}
	}
	b.material = rebind(b.material)
	b.materials = materials
}

func (b *builder) allFaces() [][]Face {
	all := [][]Face{b.faces}
	for gi := range b.groups {
		all = append(all, b.groups[gi].faces)
	}
	for oi := range b.objects {
		for gi := range b.objects[oi].groups {
			all = append(all, b.objects[oi].groups[gi].faces)
		}
	}
	return all
}

// addFace rebases a face onto the current group's arrays. References to
// data committed by an earlier group are rejected.
func (b *builder) addFace(pairs []FaceIndexPair, lineNo int) error {
	rebased := make([]FaceIndexPair, len(pairs))
	for i, pair := range pairs {
		v := pair.Vertex - b.vertexOffset
		if v < 0 {
			return fmt.Errorf("%w: vertex %d belongs to an earlier group", ErrInvalidFaceVertex, pair.Vertex+1)
		}
		rebased[i].Vertex = v

		if t, ok := pair.TexCoord.Get(); ok {
			if t < b.texCoordOffset {
				return fmt.Errorf("%w: texture coordinate %d belongs to an earlier group", ErrInvalidFaceVertex, t+1)
			}
			rebased[i].TexCoord = Index(t - b.texCoordOffset)
		}
		if n, ok := pair.Normal.Get(); ok {
			if n < b.normalOffset {
				return fmt.Errorf("%w: normal %d belongs to an earlier group", ErrInvalidFaceVertex, n+1)
			}
			rebased[i].Normal = Index(n - b.normalOffset)
		}
	}

	b.faces = append(b.faces, Face{pairs: rebased, material: b.material})
	b.faceLines = append(b.faceLines, lineNo)
	return nil
}

// checkFaces verifies every face of the current group against the final
// array sizes, so faces may reference data declared after them.
func (b *builder) checkFaces() error {
	for fi, face := range b.faces {
		for _, pair := range face.pairs {
			var err error
			switch {
			case pair.Vertex >= len(b.vertices):
				err = fmt.Errorf("%w: vertex %d is not defined", ErrInvalidFaceVertex, pair.Vertex+b.vertexOffset+1)
			case pair.TexCoord.valid && pair.TexCoord.value >= len(b.texCoords):
				err = fmt.Errorf("%w: texture coordinate %d is not defined", ErrInvalidFaceVertex, pair.TexCoord.value+b.texCoordOffset+1)
			case pair.Normal.valid && pair.Normal.value >= len(b.normals):
				err = fmt.Errorf("%w: normal %d is not defined", ErrInvalidFaceVertex, pair.Normal.value+b.normalOffset+1)
			}
			if err != nil {
				return &LineError{Source: "obj", Line: b.faceLines[fi], Keyword: "f", Err: err}
			}
		}
	}
	return nil
}

// commitGroup closes the current group and opens one called name.
// Groups without faces are dropped.
func (b *builder) commitGroup(name string, hasName bool) error {
	if err := b.checkFaces(); err != nil {
		return err
	}

	b.vertexOffset += len(b.vertices)
	b.texCoordOffset += len(b.texCoords)
	b.normalOffset += len(b.normals)

	if len(b.faces) > 0 {
		b.groups = append(b.groups, Group{
			name:      b.groupName,
			hasName:   b.hasGroupName,
			vertices:  b.vertices,
			texCoords: b.texCoords,
			normals:   b.normals,
			faces:     b.faces,
		})
	} else if len(b.vertices) > 0 {
		b.log.Debug("dropping group without faces",
			zap.String("group", b.groupName),
			zap.Int("vertices", len(b.vertices)))
	}

	b.vertices, b.texCoords, b.normals = nil, nil, nil
	b.faces, b.faceLines = nil, nil
	b.groupName, b.hasGroupName = name, hasName
	return nil
}

// commitObject closes the current object and opens one called name.
// Objects without groups are dropped.
func (b *builder) commitObject(name string, hasName bool) {
	if len(b.groups) > 0 {
		b.objects = append(b.objects, Object{
			name:    b.objectName,
			hasName: b.hasObjectName,
			groups:  b.groups,
		})
	}
	b.groups = nil
	b.objectName, b.hasObjectName = name, hasName
}

// finish commits trailing data and returns the scene.
func (b *builder) finish() (*Scene, error) {
	if err := b.commitGroup("", false); err != nil {
		return nil, err
	}
	b.commitObject("", false)

	return &Scene{objects: b.objects, materials: b.materials}, nil
}

// LoadFile parses the OBJ file at path. Material libraries are resolved
// relative to its directory.
func LoadFile(path string, opts ...Option) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, ioError(err)
	}
	defer f.Close()

	return NewParser[string](DirResolver{}, opts...).Parse(f, filepath.Dir(path))
}
