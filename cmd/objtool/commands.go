package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/internal/logger"
	"github.com/Faultbox/wavefront/pkg/encoding"
	"github.com/Faultbox/wavefront/pkg/math"
	"github.com/Faultbox/wavefront/pkg/wavefront"
)

// loadScene parses the OBJ at path using the configured parser settings.
func loadScene(cfg *config.Config, path string) (*wavefront.Scene, error) {
	enc, err := encoding.Lookup(cfg.Parser.Encoding)
	if err != nil {
		return nil, err
	}

	commit := wavefront.MaterialCommitCompat
	if cfg.Parser.MaterialCommit == "named" {
		commit = wavefront.MaterialCommitNamed
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	parser := wavefront.NewParser[string](
		wavefront.SearchResolver{Dirs: cfg.Parser.MaterialPaths},
		wavefront.WithLogger(logger.Log),
		wavefront.WithEncoding(enc),
		wavefront.WithMaterialCommit(commit),
	)

	scene, err := parser.Parse(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logger.Debug("parsed scene",
		zap.String("path", path),
		zap.Int("objects", len(scene.Objects())),
		zap.Int("materials", len(scene.Materials())))
	if len(scene.Objects()) == 0 {
		logger.Warn("scene has no faces", zap.String("path", path))
	}
	return scene, nil
}

// sceneInfo summarizes a scene.
type sceneInfo struct {
	File       string   `yaml:"file"`
	Objects    int      `yaml:"objects"`
	Groups     int      `yaml:"groups"`
	Vertices   int      `yaml:"vertices"`
	TexCoords  int      `yaml:"tex_coords"`
	Normals    int      `yaml:"normals"`
	Faces      int      `yaml:"faces"`
	Materials  int      `yaml:"materials"`
	Untextured int      `yaml:"untextured_faces"`
	BoundsMin  *flowVec `yaml:"bounds_min,omitempty"`
	BoundsMax  *flowVec `yaml:"bounds_max,omitempty"`
	Size       *flowVec `yaml:"size,omitempty"`
}

func summarize(path string, scene *wavefront.Scene) sceneInfo {
	info := sceneInfo{
		File:      filepath.Base(path),
		Objects:   len(scene.Objects()),
		Materials: len(scene.Materials()),
	}

	var lo, hi math.Vec3
	hasBounds := false
	for _, obj := range scene.Objects() {
		info.Groups += len(obj.Groups())
		for gi := range obj.Groups() {
			g := &obj.Groups()[gi]
			info.Vertices += len(g.Vertices())
			info.TexCoords += len(g.TexCoords())
			info.Normals += len(g.Normals())
			info.Faces += len(g.FaceIndices())
			for fi := range g.FaceIndices() {
				if _, ok := g.FaceIndices()[fi].MaterialIndex(); !ok {
					info.Untextured++
				}
			}

			glo, ghi, ok := g.Bounds()
			if !ok {
				continue
			}
			if !hasBounds {
				lo, hi, hasBounds = glo, ghi, true
				continue
			}
			lo, hi = lo.Min(glo), hi.Max(ghi)
		}
	}

	if hasBounds {
		info.BoundsMin = vec3Flow(lo)
		info.BoundsMax = vec3Flow(hi)
		info.Size = vec3Flow(hi.Sub(lo))
	}
	return info
}

func cmdInfo(w io.Writer, cfg *config.Config, path string, scene *wavefront.Scene) error {
	info := summarize(path, scene)
	if cfg.Output.Format == "yaml" {
		return writeYAML(w, info)
	}

	fmt.Fprintf(w, "File:       %s\n", info.File)
	fmt.Fprintf(w, "Objects:    %d\n", info.Objects)
	fmt.Fprintf(w, "Groups:     %d\n", info.Groups)
	fmt.Fprintf(w, "Vertices:   %d\n", info.Vertices)
	fmt.Fprintf(w, "TexCoords:  %d\n", info.TexCoords)
	fmt.Fprintf(w, "Normals:    %d\n", info.Normals)
	fmt.Fprintf(w, "Faces:      %d (%d without material)\n", info.Faces, info.Untextured)
	fmt.Fprintf(w, "Materials:  %d\n", info.Materials)
	if info.BoundsMin != nil {
		fmt.Fprintf(w, "Bounds:     %s - %s\n", info.BoundsMin, info.BoundsMax)
		fmt.Fprintf(w, "Size:       %s\n", info.Size)
	}
	return nil
}

func cmdObjects(w io.Writer, cfg *config.Config, scene *wavefront.Scene) error {
	if cfg.Output.Format == "yaml" {
		return writeYAML(w, exportObjects(scene, false))
	}

	for oi := range scene.Objects() {
		obj := &scene.Objects()[oi]
		fmt.Fprintf(w, "%s\n", displayName(obj.Name()))
		for gi := range obj.Groups() {
			g := &obj.Groups()[gi]
			fmt.Fprintf(w, "  %-24s %6d vertices %6d faces\n",
				displayName(g.Name()), len(g.Vertices()), len(g.FaceIndices()))
		}
	}
	return nil
}

func cmdMaterials(w io.Writer, cfg *config.Config, scene *wavefront.Scene) error {
	if cfg.Output.Format == "yaml" {
		return writeYAML(w, exportMaterials(scene))
	}

	if len(scene.Materials()) == 0 {
		fmt.Fprintln(w, "No materials")
		return nil
	}
	for mi := range scene.Materials() {
		m := &scene.Materials()[mi]
		fmt.Fprintf(w, "%d: %s\n", mi, m.Name())
		for _, key := range m.Keys() {
			p, _ := m.Get(key)
			fmt.Fprintf(w, "  %-10s %-8s %s\n", key, p.Kind(), p)
		}
	}
	return nil
}

func cmdDump(w io.Writer, scene *wavefront.Scene) error {
	return writeYAML(w, sceneDoc{
		Objects:   exportObjects(scene, true),
		Materials: exportMaterials(scene),
	})
}

// cmdInitConfig writes the effective settings as a config file, to path
// when given and to the user config directory otherwise.
func cmdInitConfig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(w, "Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return nil
	}

	if err := cfg.SaveTo(args[0]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s\n", args[0])
	return nil
}

func displayName(name string, ok bool) string {
	if !ok {
		return "(unnamed)"
	}
	return name
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
