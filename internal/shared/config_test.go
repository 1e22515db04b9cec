package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Source.URL != "https://apis.ccbp.in/list-creation/lists" {
			t.Errorf("expected default source url, got %s", config.Source.URL)
		}

		if config.Source.Timeout() != 15*time.Second {
			t.Errorf("expected 15s timeout, got %v", config.Source.Timeout())
		}

		if config.Source.RetryInterval() != time.Second {
			t.Errorf("expected 1s retry interval, got %v", config.Source.RetryInterval())
		}

		if config.UI.ColumnWidth != 32 {
			t.Errorf("expected column width 32, got %d", config.UI.ColumnWidth)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should validate, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "nested", "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Source.URL != DefaultConfig().Source.URL {
			t.Errorf("created config source url doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("overrides and keeps defaults", func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			testConfig := `[source]
url = "http://localhost:9090/lists"
token = "secret"

[log]
level = "debug"
`
			if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			config, err := LoadConfig(configPath)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if config.Source.URL != "http://localhost:9090/lists" {
				t.Errorf("expected overridden url, got %s", config.Source.URL)
			}
			if config.Source.Token != "secret" {
				t.Errorf("expected token secret, got %s", config.Source.Token)
			}
			if config.Source.TimeoutSeconds != 15 {
				t.Errorf("expected default timeout to be kept, got %d", config.Source.TimeoutSeconds)
			}
			if config.Log.Level != "debug" {
				t.Errorf("expected debug level, got %s", config.Log.Level)
			}
		})

		t.Run("missing file", func(t *testing.T) {
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
			if err == nil {
				t.Fatal("expected error for missing file")
			}
		})

		t.Run("invalid toml", func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(configPath, []byte("[source\nurl ="), 0644)

			_, err := LoadConfig(configPath)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("invalid values", func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(configPath, []byte("[source]\nurl = \"\"\n"), 0644)

			_, err := LoadConfig(configPath)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			mutate func(*Config)
		}{
			{"negative timeout", func(c *Config) { c.Source.TimeoutSeconds = -1 }},
			{"negative retry interval", func(c *Config) { c.Source.MinRetryIntervalMS = -5 }},
			{"narrow columns", func(c *Config) { c.UI.ColumnWidth = 4 }},
			{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)
				if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})

	t.Run("ResolveConfigPath", func(t *testing.T) {
		t.Run("explicit path wins", func(t *testing.T) {
			if got := ResolveConfigPath("/some/where.toml"); got != "/some/where.toml" {
				t.Errorf("expected explicit path, got %s", got)
			}
		})

		t.Run("working directory file", func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			os.WriteFile(filepath.Join(dir, "config.toml"), []byte(""), 0644)

			if got := ResolveConfigPath(""); got != "config.toml" {
				t.Errorf("expected config.toml, got %q", got)
			}
		})
	})
}
