// Package math provides the small vector types used by the wavefront data model.
package math

import "fmt"

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// String formats the vector as "(x, y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
