package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 960 {
		t.Errorf("expected height 960, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	// Test camera defaults
	if cfg.Camera.Position != [3]float32{10, 10, 10} {
		t.Errorf("expected camera at (10,10,10), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Sensitivity != 5 {
		t.Errorf("expected sensitivity 5, got %f", cfg.Camera.Sensitivity)
	}

	// Test filter defaults
	if !cfg.Filter.Enabled || cfg.Filter.Depth != 10 || cfg.Filter.Weight != 0.75 {
		t.Errorf("unexpected filter defaults %+v", cfg.Filter)
	}

	// Test scene defaults
	if len(cfg.Scene.Anchors) != 3 {
		t.Fatalf("expected 3 anchors, got %d", len(cfg.Scene.Anchors))
	}
	if cfg.Scene.Anchors[1] != [3]float32{0, 0.5, 1} {
		t.Errorf("unexpected anchor 1: %v", cfg.Scene.Anchors[1])
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  position: [0, 5, 20]
  fov: 60
  sensitivity: 2.5

filter:
  enabled: false
  depth: 4
  weight: 0.5

scene:
  anchors:
    - [0, 0.5, 0]
    - [3, 0.5, 0]
  half_extent: 0.25

logging:
  level: "debug"
  log_file: "picker.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Position != [3]float32{0, 5, 20} {
		t.Errorf("expected position (0,5,20), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	// Keys absent from the file keep their defaults
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 1000 {
		t.Errorf("expected default near/far, got %f/%f", cfg.Camera.Near, cfg.Camera.Far)
	}

	if cfg.Filter.Enabled || cfg.Filter.Depth != 4 || cfg.Filter.Weight != 0.5 {
		t.Errorf("unexpected filter %+v", cfg.Filter)
	}

	if len(cfg.Scene.Anchors) != 2 || cfg.Scene.Anchors[1] != [3]float32{3, 0.5, 0} {
		t.Errorf("unexpected anchors %v", cfg.Scene.Anchors)
	}
	if cfg.Scene.HalfExtent != 0.25 {
		t.Errorf("expected half extent 0.25, got %f", cfg.Scene.HalfExtent)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "picker.log" {
		t.Errorf("expected log file 'picker.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 180 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"zero sensitivity", func(c *Config) { c.Camera.Sensitivity = 0 }},
		{"damping of one", func(c *Config) { c.Camera.Damping = 1 }},
		{"zero depth", func(c *Config) { c.Filter.Depth = 0 }},
		{"weight of one", func(c *Config) { c.Filter.Weight = 1 }},
		{"flat boxes", func(c *Config) { c.Scene.HalfExtent = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "boxpick.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find boxpick.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "no-filter flag",
			setup: func() { *flagNoFilter = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Filter.Enabled {
					t.Error("expected filter to be disabled")
				}
			},
			teardown: func() { *flagNoFilter = false },
		},
		{
			name:  "log-file flag",
			setup: func() { *flagLogFile = "run.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file run.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if path != configPath {
		t.Errorf("expected source %s, got %s", configPath, path)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("filter:\n  weight: 1.5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Filter.Weight = 0.5
	cfg.Scene.Anchors = append(cfg.Scene.Anchors, [3]float32{4, 0.5, 4})
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Filter.Weight != 0.5 {
		t.Errorf("expected weight 0.5, got %f", loaded.Filter.Weight)
	}
	if len(loaded.Scene.Anchors) != 4 {
		t.Errorf("expected 4 anchors, got %d", len(loaded.Scene.Anchors))
	}
}

func TestWatchEmitsValidChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("filter:\n  weight: 0.75\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("failed to watch: %v", err)
	}

	// An invalid edit is skipped
	if err := os.WriteFile(path, []byte("filter:\n  weight: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := os.WriteFile(path, []byte("filter:\n  enabled: false\n  weight: 0.5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Filter.Weight != 0.5 {
				// A write can be observed before it completes; wait for the next event.
				continue
			}
			if cfg.Filter.Enabled {
				t.Error("expected filter to be disabled after reload")
			}
			cancel()
			for range changes {
			}
			return
		case <-timeout:
			t.Fatal("no config change observed")
		}
	}
}
