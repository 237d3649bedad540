package config

const (
	defaultLibraryPath = "library.json"
	defaultLogDir      = "~/.local/share/bookshelf/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultColor       = "auto"

	// EnvLibraryPath overrides library.path when set.
	EnvLibraryPath = "BOOKSHELF_LIBRARY"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Library: Library{
			Path: defaultLibraryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
		Session: Session{
			ClearScreen: true,
			Color:       defaultColor,
		},
	}
}
