// Package config loads deskmate configuration: YAML file first, then
// environment overrides, then command-line flags (applied by the
// caller). Animation and timer intervals are fixed constants elsewhere
// and deliberately absent here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is everything deskmate reads at startup.
type Config struct {
	Sprites      SpriteConfig      `yaml:"sprites"`
	DocumentsDir string            `yaml:"documents_dir" env:"DESKMATE_DOCUMENTS_DIR"`
	Apps         map[string]string `yaml:"apps"`
	Logging      LoggingConfig     `yaml:"logging"`
}

// SpriteConfig holds the three mandatory text-art frame paths.
type SpriteConfig struct {
	Idle  string `yaml:"idle" env:"DESKMATE_SPRITE_IDLE"`
	Talk  string `yaml:"talk" env:"DESKMATE_SPRITE_TALK"`
	Blink string `yaml:"blink" env:"DESKMATE_SPRITE_BLINK"`
}

// LoggingConfig controls the zap file logger.
type LoggingConfig struct {
	Dir   string `yaml:"dir" env:"DESKMATE_LOG_DIR"`
	Level string `yaml:"level" env:"DESKMATE_LOG_LEVEL"`
}

// Default returns the built-in configuration: documents under the home
// directory, the stock browser table for this platform, logs under
// ~/.deskmate.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DocumentsDir: filepath.Join(home, "Documents"),
		Apps:         defaultApps(),
		Logging: LoggingConfig{
			Dir:   filepath.Join(home, ".deskmate", "logs"),
			Level: "info",
		},
	}
}

// Load builds the effective config: defaults, overlaid with the YAML
// file at path if it exists, overlaid with environment variables. A
// missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	if cfg.Apps == nil {
		cfg.Apps = defaultApps()
	}
	return cfg, nil
}

// DefaultPath is where the config file lives unless --config says
// otherwise.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".deskmate", "config.yaml")
}

func defaultApps() map[string]string {
	switch runtime.GOOS {
	case "windows":
		return map[string]string{
			"chrome": `C:/Program Files (x86)/Google/Chrome/Application/chrome.exe`,
			"edge":   `C:/Program Files (x86)/Microsoft/Edge/Application/msedge.exe`,
		}
	case "darwin":
		return map[string]string{
			"chrome": "/Applications/Google Chrome.app",
			"edge":   "/Applications/Microsoft Edge.app",
		}
	default:
		return map[string]string{
			"chrome": "/usr/bin/google-chrome",
			"edge":   "/usr/bin/microsoft-edge",
		}
	}
}
