package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bstn-hfmn/rustman/internal/keybinds"
	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.rustman)
	ConfigDir string

	// ConfigFile is the YAML settings file
	ConfigFile string

	// DatabasePath is the SQLite database file for request history
	DatabasePath string

	// LogFile receives debug logs while the TUI owns the terminal
	LogFile string
)

// Settings is the content of config.yaml
type Settings struct {
	History  HistorySettings  `yaml:"history"`
	Request  RequestSettings  `yaml:"request"`
	Keybinds *keybinds.Config `yaml:"keybinds,omitempty"`
}

// HistorySettings controls request history persistence
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"`
}

// RequestSettings controls request execution
type RequestSettings struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// Default returns the settings used when no config file exists
func Default() *Settings {
	return &Settings{
		History: HistorySettings{
			Enabled: true,
			Limit:   100,
		},
		Request: RequestSettings{
			Timeout:   30 * time.Second,
			UserAgent: "Rustman/ 1.0.0",
		},
	}
}

// Initialize sets up the configuration directory and files.
// It creates ~/.rustman/ and a default config.yaml if they don't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return InitializeAt(filepath.Join(homeDir, ".rustman"))
}

// InitializeAt sets the global paths relative to dir and creates missing files
func InitializeAt(dir string) error {
	ConfigDir = dir
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	DatabasePath = filepath.Join(ConfigDir, "rustman.db")
	LogFile = filepath.Join(ConfigDir, "debug.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		if err := Save(Default(), ConfigFile); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}

	return nil
}

// Load reads settings from path. Missing fields keep their default values.
func Load(path string) (*Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to path as YAML
func Save(settings *Settings, path string) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, FilePermissions)
}

// Validate rejects values that cannot be used
func (s *Settings) Validate() error {
	if s.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative")
	}
	if s.Request.Timeout < 0 {
		return fmt.Errorf("request.timeout must not be negative")
	}
	if s.Keybinds != nil {
		if result := keybinds.NewValidator().ValidateConfig(s.Keybinds); result.HasErrors() {
			return fmt.Errorf("keybinds: %s", result.String())
		}
	}
	return nil
}
