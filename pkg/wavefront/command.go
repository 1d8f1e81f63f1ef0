package wavefront

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/wavefront/pkg/math"
)

// objKind identifies an OBJ directive.
type objKind int

const (
	objUnknown objKind = iota
	objMaterialLibrary
	objUseMaterial
	objObject
	objGroup
	objVertex
	objTexCoord
	objNormal
	objFace
)

// objCommand is a classified OBJ line.
type objCommand struct {
	kind    objKind
	keyword string

	name    string // o, g, usemtl; the path for mtllib
	hasName bool

	vec2 math.Vec2
	vec3 math.Vec3
	face []FaceIndexPair

	args []string // unknown directives only
}

// classifyOBJ maps a keyword and its arguments to a typed command.
func classifyOBJ(keyword string, args []string) (objCommand, error) {
	cmd := objCommand{keyword: keyword}

	switch keyword {
	case "mtllib":
		path, err := parsePath(args)
		if err != nil {
			return cmd, err
		}
		cmd.kind = objMaterialLibrary
		cmd.name, cmd.hasName = path, true
		if len(args) > 1 {
			cmd.args = args[1:]
		}

	case "usemtl":
		if len(args) < 1 {
			return cmd, notEnough(0, 1)
		}
		cmd.kind = objUseMaterial
		cmd.name, cmd.hasName = args[0], true

	case "o", "g":
		cmd.kind = objObject
		if keyword == "g" {
			cmd.kind = objGroup
		}
		if len(args) > 0 {
			cmd.name, cmd.hasName = strings.Join(args, " "), true
		}

	case "v":
		v, err := parseVec3(args)
		if err != nil {
			return cmd, err
		}
		cmd.kind = objVertex
		cmd.vec3 = v

	case "vt":
		v, err := parseVec2(args)
		if err != nil {
			return cmd, err
		}
		cmd.kind = objTexCoord
		cmd.vec2 = v

	case "vn":
		v, err := parseVec3(args)
		if err != nil {
			return cmd, err
		}
		cmd.kind = objNormal
		cmd.vec3 = v

	case "f":
		face, err := parseFace(args)
		if err != nil {
			return cmd, err
		}
		cmd.kind = objFace
		cmd.face = face

	default:
		cmd.kind = objUnknown
		cmd.args = args
	}

	return cmd, nil
}

// parsePath takes the first argument as a path, collapsing the doubled
// backslashes written by Windows exporters.
func parsePath(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: missing file name", ErrPathNotFound)
	}
	return unescapePath(args[0]), nil
}

func unescapePath(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}

// parseFloats parses the first n arguments. Extra arguments are ignored.
func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, notEnough(len(args), n)
	}
	values := make([]float32, n)
	for i := range values {
		f, err := parseFloat(args[i])
		if err != nil {
			return nil, err
		}
		values[i] = f
	}
	return values, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	// Out of range values saturate to ±Inf.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParse, s)
	}
	return float32(f), nil
}

func parseVec2(args []string) (math.Vec2, error) {
	f, err := parseFloats(args, 2)
	if err != nil {
		return math.Vec2{}, err
	}
	return math.Vec2{X: f[0], Y: f[1]}, nil
}

func parseVec3(args []string) (math.Vec3, error) {
	f, err := parseFloats(args, 3)
	if err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: f[0], Y: f[1], Z: f[2]}, nil
}

// parseUint parses the single argument of an integer directive.
func parseUint(args []string) (uint32, error) {
	if len(args) < 1 {
		return 0, notEnough(0, 1)
	}
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrParse, args[0])
	}
	return uint32(n), nil
}
