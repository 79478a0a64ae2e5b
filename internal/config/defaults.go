package config

const (
	defaultLibraryFile = "~/.local/share/vidvault/videos.json"
	defaultLogDir      = "~/.local/share/vidvault/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryFile: defaultLibraryFile,
			LogDir:      defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
