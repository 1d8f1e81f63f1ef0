package wavefront

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Faultbox/wavefront/pkg/math"
)

// PropertyKind is the type of a MaterialProperty value.
type PropertyKind int

const (
	PropertyFloat   PropertyKind = iota + 1 // N* directives
	PropertyInteger                         // illum
	PropertyVector                          // K* directives
	PropertyPath                            // map_* directives
)

// String returns a human-readable kind name.
func (k PropertyKind) String() string {
	switch k {
	case PropertyFloat:
		return "Float"
	case PropertyInteger:
		return "Integer"
	case PropertyVector:
		return "Vector"
	case PropertyPath:
		return "Path"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// MaterialProperty is a tagged material value.
type MaterialProperty struct {
	kind    PropertyKind
	float   float32
	integer uint32
	vector  math.Vec3
	path    string
}

// FloatProperty returns a float-valued property.
func FloatProperty(f float32) MaterialProperty {
	return MaterialProperty{kind: PropertyFloat, float: f}
}

// IntegerProperty returns an integer-valued property.
func IntegerProperty(n uint32) MaterialProperty {
	return MaterialProperty{kind: PropertyInteger, integer: n}
}

// VectorProperty returns a vector-valued property.
func VectorProperty(v math.Vec3) MaterialProperty {
	return MaterialProperty{kind: PropertyVector, vector: v}
}

// PathProperty returns a path-valued property.
func PathProperty(p string) MaterialProperty {
	return MaterialProperty{kind: PropertyPath, path: p}
}

// Kind returns the value type.
func (p MaterialProperty) Kind() PropertyKind { return p.kind }

// Float returns the value if it is a float.
func (p MaterialProperty) Float() (float32, bool) {
	return p.float, p.kind == PropertyFloat
}

// Integer returns the value if it is an integer.
func (p MaterialProperty) Integer() (uint32, bool) {
	return p.integer, p.kind == PropertyInteger
}

// Vector returns the value if it is a vector.
func (p MaterialProperty) Vector() (math.Vec3, bool) {
	return p.vector, p.kind == PropertyVector
}

// Path returns the value if it is a path.
func (p MaterialProperty) Path() (string, bool) {
	return p.path, p.kind == PropertyPath
}

// Value returns the property as an untyped value.
func (p MaterialProperty) Value() any {
	switch p.kind {
	case PropertyFloat:
		return p.float
	case PropertyInteger:
		return p.integer
	case PropertyVector:
		return p.vector
	case PropertyPath:
		return p.path
	default:
		return nil
	}
}

func (p MaterialProperty) String() string {
	return fmt.Sprint(p.Value())
}

// Material is a named set of properties from an MTL file.
type Material struct {
	name       string
	properties map[string]MaterialProperty
}

// Name returns the name given by newmtl.
func (m *Material) Name() string {
	return m.name
}

// Properties returns every property by keyword. The map must not be modified.
func (m *Material) Properties() map[string]MaterialProperty {
	return m.properties
}

// Keys returns the property keywords in sorted order.
func (m *Material) Keys() []string {
	return slices.Sorted(maps.Keys(m.properties))
}

// Get returns the property with the given keyword.
func (m *Material) Get(key string) (MaterialProperty, bool) {
	p, ok := m.properties[key]
	return p, ok
}

func (m *Material) vector(key string) (math.Vec3, bool) {
	p, ok := m.properties[key]
	if !ok {
		return math.Vec3{}, false
	}
	return p.Vector()
}

// AmbientColor returns Ka.
func (m *Material) AmbientColor() (math.Vec3, bool) { return m.vector("Ka") }

// DiffuseColor returns Kd.
func (m *Material) DiffuseColor() (math.Vec3, bool) { return m.vector("Kd") }

// SpecularColor returns Ks.
func (m *Material) SpecularColor() (math.Vec3, bool) { return m.vector("Ks") }

// SpecularIntensity returns Ns.
func (m *Material) SpecularIntensity() (float32, bool) {
	p, ok := m.properties["Ns"]
	if !ok {
		return 0, false
	}
	return p.Float()
}

// Illumination returns the illum model number.
func (m *Material) Illumination() (uint32, bool) {
	p, ok := m.properties["illum"]
	if !ok {
		return 0, false
	}
	return p.Integer()
}

// DiffuseMap returns the map_Kd texture path.
func (m *Material) DiffuseMap() (string, bool) {
	p, ok := m.properties["map_Kd"]
	if !ok {
		return "", false
	}
	return p.Path()
}
