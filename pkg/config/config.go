// Package config provides configuration management for propverify.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propverify/pkg/explore"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Config is the tool configuration.
type Config struct {
	// Explore holds the exploration budgets.
	Explore ExploreConfig `yaml:"explore"`

	// Store configures the case store.
	Store StoreConfig `yaml:"store,omitempty"`

	// Log configures diagnostic output.
	Log LogConfig `yaml:"log,omitempty"`

	// Properties are the property files or directories run when none are
	// given on the command line.
	Properties []string `yaml:"properties,omitempty"`

	// Version is the configuration version (for migrations).
	Version string `yaml:"version,omitempty"`

	// UpdatedAt is when the config was last saved.
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}

// ExploreConfig mirrors explore.Settings.
type ExploreConfig struct {
	// MaxRuns bounds the executions per property. Zero means no bound.
	MaxRuns int `yaml:"max_runs"`

	// MaxDepth bounds the symbolic regions per path.
	MaxDepth int `yaml:"max_depth"`

	// Window is the number of neighbors tried around each boundary value.
	Window int `yaml:"window"`

	// EnumerateLimit is the largest range whose every value is tried. Larger
	// ranges are sampled around their bounds.
	EnumerateLimit int `yaml:"enumerate_limit"`

	// ExtraValues are additional patterns tried for wide regions.
	ExtraValues []uint64 `yaml:"extra_values,omitempty"`

	// Timeout bounds the time spent per property.
	Timeout Duration `yaml:"timeout,omitempty"`

	// StopOnFailure ends a property's exploration at its first failure.
	StopOnFailure bool `yaml:"stop_on_failure"`

	// Jobs is the number of properties explored at once.
	Jobs int `yaml:"jobs"`
}

// StoreConfig configures where failing cases are recorded.
type StoreConfig struct {
	// Path is the SQLite database. Empty means cases.db in the config directory.
	Path string `yaml:"path,omitempty"`

	// Disabled turns recording off.
	Disabled bool `yaml:"disabled,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// Duration is a wrapper around time.Duration for YAML serialization.
type Duration struct {
	time.Duration
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		d.Duration = 0
		return nil
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	s := explore.DefaultSettings()
	return &Config{
		Explore: ExploreConfig{
			MaxRuns:        s.MaxRuns,
			MaxDepth:       s.MaxDepth,
			Window:         s.Window,
			EnumerateLimit: s.EnumerateLimit,
			StopOnFailure:  s.StopOnFailure,
			Jobs:           s.Jobs,
		},
		Log:     LogConfig{Level: "warn"},
		Version: "1.0",
	}
}

// Settings converts the explore section to explorer budgets.
func (c *Config) Settings() explore.Settings {
	return explore.Settings{
		MaxRuns:        c.Explore.MaxRuns,
		MaxDepth:       c.Explore.MaxDepth,
		Window:         c.Explore.Window,
		EnumerateLimit: c.Explore.EnumerateLimit,
		ExtraValues:    c.Explore.ExtraValues,
		Timeout:        c.Explore.Timeout.Duration,
		StopOnFailure:  c.Explore.StopOnFailure,
		Jobs:           c.Explore.Jobs,
	}
}

// LogLevel returns the configured level, warn when unset.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.NoLevel, &ValidationError{Field: "log.level", Reason: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	return level, nil
}

// Validate checks a configuration.
func Validate(c *Config) error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	checks := []struct {
		field string
		value int
	}{
		{"explore.max_runs", c.Explore.MaxRuns},
		{"explore.max_depth", c.Explore.MaxDepth},
		{"explore.window", c.Explore.Window},
		{"explore.enumerate_limit", c.Explore.EnumerateLimit},
		{"explore.jobs", c.Explore.Jobs},
	}
	for _, ch := range checks {
		if ch.value < 0 {
			return &ValidationError{Field: ch.field, Reason: "must not be negative"}
		}
	}
	if c.Explore.Timeout.Duration < 0 {
		return &ValidationError{Field: "explore.timeout", Reason: "must not be negative"}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config value %s: %s", e.Field, e.Reason)
}

// Manager handles configuration persistence and retrieval.
type Manager struct {
	configDir string
}

// ManagerOption is a function that configures a Manager.
type ManagerOption func(*Manager)

// WithConfigDir sets a custom configuration directory.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.configDir = dir
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	m := &Manager{
		configDir: configDir,
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return m, nil
}

// GetConfigDir returns the platform-specific configuration directory.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("PROPVERIFY_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(homeDir, "Library", "Application Support", "propverify"), nil

	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, "propverify"), nil

	default:
		// XDG Base Directory Specification
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			xdgConfig = filepath.Join(homeDir, ".config")
		}
		return filepath.Join(xdgConfig, "propverify"), nil
	}
}

// ConfigDir returns the configuration directory path.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

// ConfigPath returns the path of the configuration file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.configDir, FileName)
}

// StorePath returns the case database configured by c, or the default one in
// the config directory.
func (m *Manager) StorePath(c *Config) string {
	if c != nil && c.Store.Path != "" {
		return expandHomeDirectory(c.Store.Path)
	}
	return filepath.Join(m.configDir, "cases.db")
}

// Load reads the configuration file. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func (m *Manager) Load() (*Config, error) {
	path := m.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}
	return config, nil
}

// Save writes the configuration file.
func (m *Manager) Save(config *Config) error {
	if err := Validate(config); err != nil {
		return err
	}

	config.UpdatedAt = time.Now()
	if config.Version == "" {
		config.Version = "1.0"
	}

	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write atomically by writing to temp file first
	path := m.ConfigPath()
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
