package main

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wavefront/pkg/math"
	"github.com/Faultbox/wavefront/pkg/wavefront"
)

// flowVec marshals as an inline YAML sequence: [x, y, z].
type flowVec []float32

func vec3Flow(v math.Vec3) *flowVec {
	f := flowVec{v.X, v.Y, v.Z}
	return &f
}

func (v flowVec) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range v {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(float64(f), 'g', -1, 32),
		})
	}
	return n, nil
}

func (v flowVec) String() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

type sceneDoc struct {
	Objects   []objectDoc   `yaml:"objects"`
	Materials []materialDoc `yaml:"materials"`
}

type objectDoc struct {
	Name   string     `yaml:"name,omitempty"`
	Groups []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	Name      string    `yaml:"name,omitempty"`
	Vertices  []flowVec `yaml:"vertices,omitempty"`
	TexCoords []flowVec `yaml:"tex_coords,omitempty"`
	Normals   []flowVec `yaml:"normals,omitempty"`
	Faces     []faceDoc `yaml:"faces,omitempty"`

	VertexCount int `yaml:"vertex_count"`
	FaceCount   int `yaml:"face_count"`
}

type faceDoc struct {
	Material string   `yaml:"material,omitempty"`
	Corners  []string `yaml:"corners,flow"`
}

type materialDoc struct {
	Name       string         `yaml:"name"`
	Properties map[string]any `yaml:"properties,omitempty"`
}

// exportObjects converts the object tree. With full set, vertex data and
// faces are included; otherwise only counts.
func exportObjects(scene *wavefront.Scene, full bool) []objectDoc {
	docs := make([]objectDoc, 0, len(scene.Objects()))
	for oi := range scene.Objects() {
		obj := &scene.Objects()[oi]
		name, _ := obj.Name()
		od := objectDoc{Name: name}

		for gi := range obj.Groups() {
			g := &obj.Groups()[gi]
			gname, _ := g.Name()
			gd := groupDoc{
				Name:        gname,
				VertexCount: len(g.Vertices()),
				FaceCount:   len(g.FaceIndices()),
			}
			if full {
				gd.Vertices = vec3List(g.Vertices())
				gd.Normals = vec3List(g.Normals())
				for _, uv := range g.TexCoords() {
					gd.TexCoords = append(gd.TexCoords, flowVec{uv.X, uv.Y})
				}
				for fi := range g.FaceIndices() {
					gd.Faces = append(gd.Faces, exportFace(scene, &g.FaceIndices()[fi]))
				}
			}
			od.Groups = append(od.Groups, gd)
		}
		docs = append(docs, od)
	}
	return docs
}

func vec3List(vs []math.Vec3) []flowVec {
	var out []flowVec
	for _, v := range vs {
		out = append(out, flowVec{v.X, v.Y, v.Z})
	}
	return out
}

// exportFace writes corners as 0-based "v/t/n" with empty fields for
// absent indices.
func exportFace(scene *wavefront.Scene, f *wavefront.Face) faceDoc {
	fd := faceDoc{}
	if mi, ok := f.MaterialIndex(); ok {
		if m, ok := scene.Material(mi); ok {
			fd.Material = m.Name()
		}
	}
	for _, p := range f.Pairs() {
		corner := strconv.Itoa(p.Vertex)
		t, hasT := p.TexCoord.Get()
		n, hasN := p.Normal.Get()
		switch {
		case hasN:
			ts := ""
			if hasT {
				ts = strconv.Itoa(t)
			}
			corner += "/" + ts + "/" + strconv.Itoa(n)
		case hasT:
			corner += "/" + strconv.Itoa(t)
		}
		fd.Corners = append(fd.Corners, corner)
	}
	return fd
}

func exportMaterials(scene *wavefront.Scene) []materialDoc {
	docs := make([]materialDoc, 0, len(scene.Materials()))
	for mi := range scene.Materials() {
		m := &scene.Materials()[mi]
		md := materialDoc{Name: m.Name()}
		for key, p := range m.Properties() {
			if md.Properties == nil {
				md.Properties = make(map[string]any)
			}
			if v, ok := p.Vector(); ok {
				md.Properties[key] = flowVec{v.X, v.Y, v.Z}
				continue
			}
			md.Properties[key] = p.Value()
		}
		docs = append(docs, md)
	}
	return docs
}
