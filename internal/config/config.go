// Package config loads the process-wide configuration: YAML file under
// the XDG config dir, overridden by CLI flags in cmd. An absent file
// yields the defaults, not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default mode for regular files
	FilePermissions = 0o644

	appDir = "burrow"
)

// Config is the process-wide configuration. All fields have workable
// zero-adjacent defaults; see Default.
type Config struct {
	// Start is the URL opened when no positional argument is given.
	Start string `yaml:"start"`

	// TLS requires TLS for every fetch; Tor routes every fetch
	// through the local SOCKS proxy. Mutually exclusive, Tor wins.
	TLS bool `yaml:"tls"`
	Tor bool `yaml:"tor"`

	// Wide disables the centered reading-width cap.
	Wide bool `yaml:"wide"`

	// TimeoutSeconds bounds each fetch (dial plus full read).
	TimeoutSeconds int `yaml:"timeout"`

	// Proxy is the SOCKS endpoint used when Tor is on.
	Proxy string `yaml:"proxy"`

	// DownloadDir receives saved binary documents.
	DownloadDir string `yaml:"downloads"`
}

// Default returns the built-in configuration.
func Default() Config {
	downloads := xdg.UserDirs.Download
	if downloads == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		downloads = filepath.Join(home, "Downloads")
	}
	return Config{
		Start:          "gopher://burrow/1/home",
		TimeoutSeconds: 8,
		Proxy:          "127.0.0.1:9050",
		DownloadDir:    downloads,
	}
}

// Load reads the YAML config at path, or the default path when path is
// empty. A missing file returns Default without error; a malformed
// file is an error so typos do not silently vanish.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}
	return cfg, nil
}

// Timeout returns the fetch budget as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultPath is the standard config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.yml")
}

// BookmarksPath is the bookmarks file location.
func BookmarksPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "bookmarks.gph")
}

// KeybindsPath is the optional keybinding overrides file.
func KeybindsPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "keys.yml")
}

// DebugLogPath is where --debug writes its log.
func DebugLogPath() string {
	return filepath.Join(xdg.StateHome, appDir, "debug.log")
}
