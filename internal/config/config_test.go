package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitializeAt_CreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".rustman")

	if err := InitializeAt(dir); err != nil {
		t.Fatalf("InitializeAt: %v", err)
	}

	if ConfigFile != filepath.Join(dir, "config.yaml") {
		t.Errorf("ConfigFile = %s", ConfigFile)
	}
	if DatabasePath != filepath.Join(dir, "rustman.db") {
		t.Errorf("DatabasePath = %s", DatabasePath)
	}
	if _, err := os.Stat(ConfigFile); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	settings, err := Load(ConfigFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !settings.History.Enabled || settings.History.Limit != 100 {
		t.Errorf("unexpected history settings: %+v", settings.History)
	}
	if settings.Request.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", settings.Request.Timeout)
	}
}

func TestInitializeAt_KeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("history:\n  enabled: false\n"), FilePermissions); err != nil {
		t.Fatal(err)
	}

	if err := InitializeAt(dir); err != nil {
		t.Fatalf("InitializeAt: %v", err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.History.Enabled {
		t.Error("existing config was overwritten")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, s *Settings)
	}{
		{
			name:    "partial file keeps defaults",
			content: "request:\n  timeout: 5s\n",
			check: func(t *testing.T, s *Settings) {
				if s.Request.Timeout != 5*time.Second {
					t.Errorf("timeout = %v", s.Request.Timeout)
				}
				if s.Request.UserAgent != "Rustman/ 1.0.0" {
					t.Errorf("user agent = %q", s.Request.UserAgent)
				}
			},
		},
		{
			name:    "keybinds section",
			content: "keybinds:\n  navigate:\n    x: quit\n",
			check: func(t *testing.T, s *Settings) {
				if s.Keybinds == nil || s.Keybinds.Navigate["x"] != "quit" {
					t.Errorf("keybinds not parsed: %+v", s.Keybinds)
				}
			},
		},
		{
			name:    "unknown keybind action",
			content: "keybinds:\n  edit:\n    ctrl+w: teleport\n",
			wantErr: true,
		},
		{
			name:    "negative limit",
			content: "history:\n  limit: -1\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "history: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), FilePermissions); err != nil {
				t.Fatal(err)
			}

			s, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.History.Limit != 100 {
		t.Errorf("limit = %d", s.History.Limit)
	}
}
