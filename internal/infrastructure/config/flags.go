package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file inside the config directory")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLevel   = flag.Int("level", -1, "Start at this level index")
	flagLogFile = flag.String("log-file", "", "Also write logs to this file")
	flagNoSave  = flag.Bool("no-save", false, "Disable progress persistence")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagLevel >= 0 {
		cfg.StartLevel = *flagLevel
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagNoSave {
		cfg.Save.Enabled = false
	}
}
