// Package wavefront parses Wavefront OBJ geometry and its companion MTL
// material files into an immutable Scene.
//
// Each group owns its own vertex, texture coordinate and normal arrays, and
// face indices are rebased to be 0-based offsets into them.
package wavefront

import (
	"iter"
	"strconv"

	"github.com/Faultbox/wavefront/pkg/math"
)

// OptionalIndex is an index that may be absent.
type OptionalIndex struct {
	value int
	valid bool
}

// NoIndex is the absent index.
var NoIndex = OptionalIndex{}

// Index returns a present index.
func Index(i int) OptionalIndex {
	return OptionalIndex{value: i, valid: true}
}

// Get returns the index and whether it is present.
func (o OptionalIndex) Get() (int, bool) {
	return o.value, o.valid
}

// Valid reports whether the index is present.
func (o OptionalIndex) Valid() bool {
	return o.valid
}

func (o OptionalIndex) String() string {
	if !o.valid {
		return "-"
	}
	return strconv.Itoa(o.value)
}

// FaceIndexPair references one face corner. Vertex is always present.
type FaceIndexPair struct {
	Vertex   int
	TexCoord OptionalIndex
	Normal   OptionalIndex
}

// Face is a polygon and the material selected when it was declared.
type Face struct {
	pairs    []FaceIndexPair
	material OptionalIndex
}

// Pairs returns the corners of the face. The slice must not be modified.
func (f *Face) Pairs() []FaceIndexPair {
	return f.pairs
}

// MaterialIndex returns the index into Scene.Materials, if any.
func (f *Face) MaterialIndex() (int, bool) {
	return f.material.Get()
}

// Group is a named run of faces with its own vertex data.
type Group struct {
	name      string
	hasName   bool
	vertices  []math.Vec3
	texCoords []math.Vec2
	normals   []math.Vec3
	faces     []Face
}

// Name returns the group name given by g, if any.
func (g *Group) Name() (string, bool) {
	return g.name, g.hasName
}

// Vertices returns the vertex positions.
func (g *Group) Vertices() []math.Vec3 {
	return g.vertices
}

// TexCoords returns the texture coordinates.
func (g *Group) TexCoords() []math.Vec2 {
	return g.texCoords
}

// Normals returns the normals as written in the file (not normalized).
func (g *Group) Normals() []math.Vec3 {
	return g.normals
}

// FaceIndices returns the raw faces.
func (g *Group) FaceIndices() []Face {
	return g.faces
}

// Bounds returns the bounding box of the group's vertices.
func (g *Group) Bounds() (lo, hi math.Vec3, ok bool) {
	return math.Bounds(g.vertices)
}

// Faces iterates the faces of the group. Every call starts over.
func (g *Group) Faces() iter.Seq2[int, FaceView] {
	return func(yield func(int, FaceView) bool) {
		for i := range g.faces {
			if !yield(i, FaceView{group: g, face: &g.faces[i]}) {
				return
			}
		}
	}
}

// FaceVertex is a face corner with its indices dereferenced.
type FaceVertex struct {
	Position    math.Vec3
	TexCoord    math.Vec2
	HasTexCoord bool
	Normal      math.Vec3
	HasNormal   bool
}

// FaceView binds a face to the group that owns its vertex data.
type FaceView struct {
	group *Group
	face  *Face
}

// Len returns the number of corners.
func (fv FaceView) Len() int {
	return len(fv.face.pairs)
}

// MaterialIndex returns the index into Scene.Materials, if any.
func (fv FaceView) MaterialIndex() (int, bool) {
	return fv.face.MaterialIndex()
}

// Vertex resolves corner i.
func (fv FaceView) Vertex(i int) FaceVertex {
	p := fv.face.pairs[i]
	out := FaceVertex{Position: fv.group.vertices[p.Vertex]}
	if t, ok := p.TexCoord.Get(); ok {
		out.TexCoord, out.HasTexCoord = fv.group.texCoords[t], true
	}
	if n, ok := p.Normal.Get(); ok {
		out.Normal, out.HasNormal = fv.group.normals[n], true
	}
	return out
}

// Vertices iterates the corners, looking each one up as it is reached.
func (fv FaceView) Vertices() iter.Seq[FaceVertex] {
	return func(yield func(FaceVertex) bool) {
		for i := range fv.face.pairs {
			if !yield(fv.Vertex(i)) {
				return
			}
		}
	}
}

// Object is a named collection of groups.
type Object struct {
	name    string
	hasName bool
	groups  []Group
}

// Name returns the object name given by o, if any.
func (o *Object) Name() (string, bool) {
	return o.name, o.hasName
}

// Groups returns the non-empty groups of the object.
func (o *Object) Groups() []Group {
	return o.groups
}

// Scene is the result of parsing an OBJ file and its material library.
type Scene struct {
	objects   []Object
	materials []Material
}

// Objects returns the non-empty objects in file order.
func (s *Scene) Objects() []Object {
	return s.objects
}

// Materials returns the material table of the last mtllib directive.
func (s *Scene) Materials() []Material {
	return s.materials
}

// Material returns the material at index i, as stored in Face.
func (s *Scene) Material(i int) (*Material, bool) {
	if i < 0 || i >= len(s.materials) {
		return nil, false
	}
	return &s.materials[i], true
}

// MaterialByName returns the index of the material with the given name.
func (s *Scene) MaterialByName(name string) (int, bool) {
	return findMaterial(s.materials, name)
}

func findMaterial(materials []Material, name string) (int, bool) {
	for i := range materials {
		if materials[i].name == name {
			return i, true
		}
	}
	return -1, false
}
