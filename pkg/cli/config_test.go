package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdirTemp moves into an empty directory so a developer's .env is not picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"PIXELFORGE_HISTORY_CAPACITY", "PIXELFORGE_FONT_PATH", "PIXELFORGE_JPEG_QUALITY", "PIXELFORGE_LOG_LEVEL", "PIXELFORGE_PRESETS_FILE", "PREVIEW_DEBUG"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HistoryCapacity != 20 || cfg.JPEGQuality != 92 || cfg.LogLevel != slog.LevelInfo || cfg.PreviewDebug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PIXELFORGE_HISTORY_CAPACITY", "5")
	t.Setenv("PIXELFORGE_JPEG_QUALITY", "70")
	t.Setenv("PIXELFORGE_LOG_LEVEL", "debug")
	t.Setenv("PIXELFORGE_PRESETS_FILE", "presets.yaml")
	t.Setenv("PREVIEW_DEBUG", "true")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HistoryCapacity != 5 || cfg.JPEGQuality != 70 || cfg.LogLevel != slog.LevelDebug ||
		cfg.PresetsFile != "presets.yaml" || !cfg.PreviewDebug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("PIXELFORGE_JPEG_QUALITY", "")
	os.Unsetenv("PIXELFORGE_JPEG_QUALITY")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PIXELFORGE_JPEG_QUALITY=55\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.JPEGQuality != 55 {
		t.Fatalf("expected .env value 55, got %d", cfg.JPEGQuality)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"PIXELFORGE_HISTORY_CAPACITY": "many",
		"PIXELFORGE_JPEG_QUALITY":     "high",
		"PIXELFORGE_LOG_LEVEL":        "loud",
		"PREVIEW_DEBUG":               "maybe",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(key, val)
			if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error naming %s, got %v", key, err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{HistoryCapacity: 1, JPEGQuality: 100}, false},
		{"zero capacity", Config{HistoryCapacity: 0, JPEGQuality: 90}, true},
		{"quality too low", Config{HistoryCapacity: 3, JPEGQuality: 0}, true},
		{"quality too high", Config{HistoryCapacity: 3, JPEGQuality: 101}, true},
		{"missing font", Config{HistoryCapacity: 3, JPEGQuality: 90, FontPath: "/nonexistent/font.ttf"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: slog.LevelWarn}
	l := cfg.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output: %q", out)
	}
}
