package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFullConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	configContent := `
scan_dirs:
  - Documents/app
  - /srv/projects
exclude:
  - node_modules
  - projpick
theme: latte
log_level: debug
obsidian:
  docs_path: Library/Obsidian/NV/Personal/App
  vault: NV
  file_prefix: Personal%2FApp%2F
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if len(cfg.ScanDirs) != 2 || cfg.ScanDirs[1] != "/srv/projects" {
		t.Errorf("ScanDirs: got %v", cfg.ScanDirs)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, "latte")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Obsidian.Vault != "NV" {
		t.Errorf("Obsidian.Vault: got %q, want NV", cfg.Obsidian.Vault)
	}
	if cfg.Obsidian.FilePrefix != "Personal%2FApp%2F" {
		t.Errorf("Obsidian.FilePrefix: got %q", cfg.Obsidian.FilePrefix)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}

	def := DefaultConfig()
	if cfg.Theme != def.Theme {
		t.Errorf("Theme: got %q, want default %q", cfg.Theme, def.Theme)
	}
	if len(cfg.ScanDirs) != len(def.ScanDirs) {
		t.Errorf("ScanDirs: got %v, want defaults %v", cfg.ScanDirs, def.ScanDirs)
	}
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("scan_dirs: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err == nil {
		t.Error("malformed yaml should surface an error")
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Errorf("malformed yaml should fall back to defaults, got theme %q", cfg.Theme)
	}
}

func TestLoadEmptyThemeGetsDefault(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("scan_dirs: [Documents/app]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("Theme: got %q, want mocha", cfg.Theme)
	}
}

func TestResolveScanPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}

	cfg := Config{ScanDirs: []string{"Documents/app", "/abs/path"}}
	paths := cfg.ResolveScanPaths()

	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] != filepath.Join(home, "Documents", "app") {
		t.Errorf("relative dir not resolved against home: %s", paths[0])
	}
	if paths[1] != "/abs/path" {
		t.Errorf("absolute dir should pass through: %s", paths[1])
	}
}

func TestExcludeSet(t *testing.T) {
	cfg := Config{Exclude: []string{"node_modules", "tmp"}}
	set := cfg.ExcludeSet()

	if !set["node_modules"] || !set["tmp"] {
		t.Errorf("exclude set missing entries: %v", set)
	}
	if set["other"] {
		t.Error("unexpected entry in exclude set")
	}
}

func TestResolveDocsPath_Empty(t *testing.T) {
	cfg := Config{}
	if got := cfg.ResolveDocsPath(); got != "" {
		t.Errorf("unset docs path should resolve to empty, got %q", got)
	}
}
