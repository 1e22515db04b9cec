package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

//go:embed config.example.toml
var exampleConf []byte

const (
	appName        = "listmerge"
	configFileName = "config.toml"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Source SourceConfig `toml:"source"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// SourceConfig contains the list data source settings.
type SourceConfig struct {
	URL                string `toml:"url"`
	Token              string `toml:"token"`
	TimeoutSeconds     int    `toml:"timeout_seconds"`
	MinRetryIntervalMS int    `toml:"min_retry_interval_ms"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	ColumnWidth int    `toml:"column_width"`
	Accent      string `toml:"accent"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Timeout returns the request timeout for the data source.
func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryInterval returns the minimum spacing between two fetches.
func (c SourceConfig) RetryInterval() time.Duration {
	return time.Duration(c.MinRetryIntervalMS) * time.Millisecond
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("%w: source.url is empty", ErrInvalidConfig)
	}
	if c.Source.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: source.timeout_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Source.MinRetryIntervalMS < 0 {
		return fmt.Errorf("%w: source.min_retry_interval_ms must not be negative", ErrInvalidConfig)
	}
	if c.UI.ColumnWidth != 0 && c.UI.ColumnWidth < 12 {
		return fmt.Errorf("%w: ui.column_width must be at least 12", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Settings missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// XDGConfigPath returns the per-user config location, e.g. ~/.config/listmerge/config.toml.
func XDGConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// ResolveConfigPath picks the config file to load.
//
// An explicit path always wins. Otherwise ./config.toml is preferred over the XDG location.
// Returns "" when no file exists, in which case callers fall back to [DefaultConfig].
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range []string{configFileName, XDGConfigPath()} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
