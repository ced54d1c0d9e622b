package constants

// Default file locations
const (
	// DefaultConfigFile is the default path to the configuration file
	DefaultConfigFile = "/etc/gosetsid/config.yml"
)

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Defaults applied when the config file is absent or a key is unset
const (
	// DefaultLogLevel keeps stderr quiet so it stays usable by the
	// replaced command
	DefaultLogLevel = LogLevelWarn
	// DefaultKillSignal is the signal the kill command sends when none is
	// given
	DefaultKillSignal = "TERM"
)
