package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScale      = flag.Float64("scale", 0, "Model units between adjacent grid samples")
	flagWorkers    = flag.Int("workers", 0, "Row bands to build concurrently")
	flagBaseHeight = flag.String("base-height", "", "Flat base height when no base grid is given")
	flagStrict     = flag.Bool("strict", false, "Fail when the mesh is not watertight")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
)

// explicit holds the names of flags given on the command line.
var explicit = map[string]bool{}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Numeric flags given
// on the command line are applied as-is so Validate sees bad values.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if explicit["scale"] {
		cfg.Mesh.Scale = *flagScale
	}
	if explicit["workers"] {
		cfg.Mesh.Workers = *flagWorkers
	}
	if *flagBaseHeight != "" {
		h, err := parseHeight(*flagBaseHeight)
		if err != nil {
			return err
		}
		cfg.Mesh.BaseHeight = h
	}
	if *flagStrict {
		cfg.Check.Enabled = true
		cfg.Check.RequireWatertight = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	return nil
}
