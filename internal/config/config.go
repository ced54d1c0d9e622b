// Package config provides configuration management functionality for gosetsid
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gosetsid/internal/constants"
)

// Config holds the tool's settings. Everything has a working default; the
// config file is optional.
type Config struct {
	// LogLevel is the logrus level for diagnostics (debug, info, warn,
	// error).
	LogLevel string `mapstructure:"log_level"`
	// LogFile, when set, sends diagnostics to a rotated file instead of
	// stderr. Mainly useful for the detached child phase, whose stderr may
	// be long gone by the time something goes wrong.
	LogFile string `mapstructure:"log_file"`
	// KillSignal is the default signal name for the kill command.
	KillSignal string `mapstructure:"kill_signal"`
}

// Manager handles configuration management
type Manager struct {
	config     *Config
	configFile string
}

// New creates a new configuration manager with defaults applied
func New() *Manager {
	return &Manager{
		config: &Config{
			LogLevel:   constants.DefaultLogLevel,
			KillSignal: constants.DefaultKillSignal,
		},
		configFile: constants.DefaultConfigFile,
	}
}

// SetConfigFile sets the path to the config file (called from CLI flag)
func (m *Manager) SetConfigFile(path string) {
	m.configFile = path
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *Config {
	return m.config
}

// LoadConfig loads configuration from file. A missing file is not an error:
// defaults apply. A present but unreadable or malformed file is.
func (m *Manager) LoadConfig() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(m.configFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	if err := v.Unmarshal(m.config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	if m.config.LogLevel == "" {
		m.config.LogLevel = constants.DefaultLogLevel
	}
	if m.config.KillSignal == "" {
		m.config.KillSignal = constants.DefaultKillSignal
	}

	return nil
}

// SetupLogger applies the configured level and output to the given logger.
// levelOverride, when non-empty, wins over the config file.
func (m *Manager) SetupLogger(logger *logrus.Logger, levelOverride string) error {
	levelName := m.config.LogLevel
	if levelOverride != "" {
		levelName = levelOverride
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	logger.SetLevel(level)

	if m.config.LogFile != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:   m.config.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
	} else {
		logger.SetOutput(os.Stderr)
	}

	return nil
}
