package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName      = "netprobe"
	settingsFile = "settings.yaml"
)

// Settings holds the tunable knobs for the probe layer. Durations are plain
// integers (seconds or milliseconds) so the YAML stays obvious; zero values
// fall back to the corresponding default.
type Settings struct {
	// PingCount is the number of echo requests sent per ping probe.
	PingCount int `yaml:"ping_count"`
	// HTTPTimeoutSec bounds a single HTTP check, in seconds.
	HTTPTimeoutSec int `yaml:"http_timeout_sec"`
	// DNSTimeoutSec bounds each record query in a DNS probe, in seconds.
	DNSTimeoutSec int `yaml:"dns_timeout_sec"`
	// DialTimeoutMS bounds a single TCP connect during a port scan, in milliseconds.
	DialTimeoutMS int `yaml:"dial_timeout_ms"`
	// ScanBatch is how many ports are probed concurrently per batch.
	ScanBatch int `yaml:"scan_batch"`
	// DefaultRange is the port range used when scan is invoked without one.
	DefaultRange string `yaml:"default_range"`
	// DiscoverService is the mDNS service type browsed by discover.
	DiscoverService string `yaml:"discover_service"`
	// DiscoverTimeoutSec bounds an mDNS browse, in seconds.
	DiscoverTimeoutSec int `yaml:"discover_timeout_sec"`
}

// Default returns the built-in settings used when no file is present.
func Default() *Settings {
	return &Settings{
		PingCount:          4,
		HTTPTimeoutSec:     5,
		DNSTimeoutSec:      3,
		DialTimeoutMS:      300,
		ScanBatch:          128,
		DefaultRange:       "1-1024",
		DiscoverService:    "_http._tcp",
		DiscoverTimeoutSec: 5,
	}
}

// HTTPTimeout returns the HTTP check timeout as a duration.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSec) * time.Second
}

// DNSTimeout returns the DNS query timeout as a duration.
func (s *Settings) DNSTimeout() time.Duration {
	return time.Duration(s.DNSTimeoutSec) * time.Second
}

// DialTimeout returns the scan connect timeout as a duration.
func (s *Settings) DialTimeout() time.Duration {
	return time.Duration(s.DialTimeoutMS) * time.Millisecond
}

// DiscoverTimeout returns the mDNS browse timeout as a duration.
func (s *Settings) DiscoverTimeout() time.Duration {
	return time.Duration(s.DiscoverTimeoutSec) * time.Second
}

// GetConfigDir returns the OS-appropriate configuration directory.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/netprobe or $HOME/.config/netprobe
//   - macOS: $HOME/.config/netprobe (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\netprobe
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems: Use XDG_CONFIG_HOME or $HOME/.config
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetSettingsPath returns the full path to the settings file.
func GetSettingsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFile), nil
}

// Load reads settings from the given path. An empty path means the platform
// default location. A missing file is not an error: the defaults are returned.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = GetSettingsPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve settings path: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := &Settings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	settings.fillDefaults()
	return settings, nil
}

// fillDefaults replaces zero values with the built-in defaults so a sparse
// settings file only overrides what it names.
func (s *Settings) fillDefaults() {
	d := Default()
	if s.PingCount <= 0 {
		s.PingCount = d.PingCount
	}
	if s.HTTPTimeoutSec <= 0 {
		s.HTTPTimeoutSec = d.HTTPTimeoutSec
	}
	if s.DNSTimeoutSec <= 0 {
		s.DNSTimeoutSec = d.DNSTimeoutSec
	}
	if s.DialTimeoutMS <= 0 {
		s.DialTimeoutMS = d.DialTimeoutMS
	}
	if s.ScanBatch <= 0 {
		s.ScanBatch = d.ScanBatch
	}
	if s.DefaultRange == "" {
		s.DefaultRange = d.DefaultRange
	}
	if s.DiscoverService == "" {
		s.DiscoverService = d.DiscoverService
	}
	if s.DiscoverTimeoutSec <= 0 {
		s.DiscoverTimeoutSec = d.DiscoverTimeoutSec
	}
}
