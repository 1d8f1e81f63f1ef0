// objtool is a CLI utility for inspecting Wavefront OBJ/MTL files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/internal/logger"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = run(os.Stdout, cfg, args[0], args[1:])
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command, writing its output to w.
func run(w io.Writer, cfg *config.Config, command string, args []string) error {
	switch command {
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	case "init-config":
		return cmdInitConfig(w, cfg, args)
	case "info", "objects", "materials", "dump":
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}

	if len(args) < 1 {
		return fmt.Errorf("usage: objtool %s <file.obj>", command)
	}

	scene, err := loadScene(cfg, args[0])
	if err != nil {
		return err
	}

	switch command {
	case "info":
		return cmdInfo(w, cfg, args[0], scene)
	case "objects":
		return cmdObjects(w, cfg, scene)
	case "materials":
		return cmdMaterials(w, cfg, scene)
	default:
		return cmdDump(w, scene)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `objtool - Wavefront OBJ/MTL inspection utility

Usage:
  objtool [flags] <command> <file.obj>

Commands:
  info <file.obj>        Show counts, bounds and material library summary
  objects <file.obj>     List objects and their groups
  materials <file.obj>   List materials and their properties
  dump <file.obj>        Print the whole parsed scene as YAML
  init-config [path]     Write the effective settings to a config file

Flags:
  -config <path>           Config file (default ./objtool.yaml, then user config dir)
  -encoding <label>        Input text encoding, e.g. shift_jis
  -mtl-path <dirs>         Extra directories searched for mtllib files
  -format text|yaml        Output format for info/objects/materials
  -keep-empty-materials    Keep materials without properties
  -debug                   Enable debug logging
  -log-file <path>         Also write logs to a rotated file

Examples:
  objtool info model.obj
  objtool -format yaml materials model.obj
  objtool -encoding shift_jis -mtl-path ./materials objects model.obj`)
}
