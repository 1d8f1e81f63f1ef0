package config

import (
	"flag"
	"path/filepath"
	"strings"
)

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagEncoding  = flag.String("encoding", "", "Text encoding of OBJ/MTL input (e.g. shift_jis)")
	flagMTLPath   = flag.String("mtl-path", "", "Extra directories searched for material libraries, separated by the OS list separator")
	flagFormat    = flag.String("format", "", "Output format: text or yaml")
	flagKeepEmpty = flag.Bool("keep-empty-materials", false, "Keep materials that declare no properties")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file (rotated)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagEncoding != "" {
		cfg.Parser.Encoding = *flagEncoding
	}
	if *flagMTLPath != "" {
		for _, dir := range strings.Split(*flagMTLPath, string(filepath.ListSeparator)) {
			if dir != "" {
				cfg.Parser.MaterialPaths = append(cfg.Parser.MaterialPaths, dir)
			}
		}
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagKeepEmpty {
		cfg.Parser.MaterialCommit = "named"
	}
}
