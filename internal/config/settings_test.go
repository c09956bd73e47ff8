package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "netprobe") {
		t.Errorf("GetConfigDir() = %v, should contain 'netprobe'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetSettingsPath(t *testing.T) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		t.Fatalf("GetSettingsPath() error = %v", err)
	}

	if filepath.Base(settingsPath) != "settings.yaml" {
		t.Errorf("GetSettingsPath() should end with 'settings.yaml', got: %v", settingsPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if settings.PingCount != want.PingCount {
		t.Errorf("PingCount = %v, want %v", settings.PingCount, want.PingCount)
	}
	if settings.DefaultRange != want.DefaultRange {
		t.Errorf("DefaultRange = %v, want %v", settings.DefaultRange, want.DefaultRange)
	}
	if settings.ScanBatch != want.ScanBatch {
		t.Errorf("ScanBatch = %v, want %v", settings.ScanBatch, want.ScanBatch)
	}
}

func TestLoadSparseFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "ping_count: 2\ndial_timeout_ms: 1000\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.PingCount != 2 {
		t.Errorf("PingCount = %v, want 2", settings.PingCount)
	}
	if settings.DialTimeout() != time.Second {
		t.Errorf("DialTimeout() = %v, want 1s", settings.DialTimeout())
	}
	// Unnamed fields fall back to defaults
	if settings.HTTPTimeoutSec != Default().HTTPTimeoutSec {
		t.Errorf("HTTPTimeoutSec = %v, want default %v", settings.HTTPTimeoutSec, Default().HTTPTimeoutSec)
	}
	if settings.DiscoverService != Default().DiscoverService {
		t.Errorf("DiscoverService = %v, want default %v", settings.DiscoverService, Default().DiscoverService)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("ping_count: [not a number\n"), 0600); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}
