package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagNu         = flag.Int("nu", 0, "Samples along each ring")
	flagNr         = flag.Int("nr", 0, "Samples along each meridian")
	flagRLines     = flag.Int("rlines", -1, "Number of rings")
	flagULines     = flag.Int("ulines", -1, "Number of meridians")
	flagExportDir  = flag.String("export-dir", "", "Directory for saved images")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseArgs parses flags from args instead of os.Args, for subcommands.
func ParseArgs(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the arguments left after flag parsing.
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
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagNu > 0 {
		cfg.Surface.Nu = *flagNu
	}
	if *flagNr > 0 {
		cfg.Surface.Nr = *flagNr
	}
	if *flagRLines >= 0 {
		cfg.Surface.RLines = *flagRLines
	}
	if *flagULines >= 0 {
		cfg.Surface.ULines = *flagULines
	}
	if *flagExportDir != "" {
		cfg.Export.Dir = *flagExportDir
	}
}
