// pattern: Imperative Shell

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user-facing picker configuration, read from
// ~/.config/projpick/config.yaml.
type Config struct {
	ScanDirs []string       `yaml:"scan_dirs"` // roots to scan, relative to home unless absolute
	Exclude  []string       `yaml:"exclude"`   // directory base names to skip
	Theme    string         `yaml:"theme"`     // catppuccin flavor name
	LogLevel string         `yaml:"log_level"` // debug, info, warn, error
	Obsidian ObsidianConfig `yaml:"obsidian"`
}

// ObsidianConfig points the picker at an Obsidian vault for project docs.
type ObsidianConfig struct {
	DocsPath   string `yaml:"docs_path"`   // folder with per-project markdown docs
	Vault      string `yaml:"vault"`       // vault name for obsidian:// URIs
	FilePrefix string `yaml:"file_prefix"` // escaped vault-relative folder prefix
}

func DefaultConfig() Config {
	return Config{
		ScanDirs: []string{"Documents/app", "Documents/playground"},
		Theme:    "mocha",
	}
}

func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}

	return cfg, nil
}

// ResolveScanPaths expands the configured scan dirs to absolute paths.
// Relative entries are resolved against the home directory.
func (c *Config) ResolveScanPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	paths := make([]string, 0, len(c.ScanDirs))
	for _, dir := range c.ScanDirs {
		if filepath.IsAbs(dir) {
			paths = append(paths, dir)
			continue
		}
		paths = append(paths, filepath.Join(home, dir))
	}
	return paths
}

// ExcludeSet returns the exclude list as a lookup set.
func (c *Config) ExcludeSet() map[string]bool {
	set := make(map[string]bool, len(c.Exclude))
	for _, name := range c.Exclude {
		set[name] = true
	}
	return set
}

// ResolveDocsPath expands the Obsidian docs path against home.
// Returns "" when no docs path is configured.
func (c *Config) ResolveDocsPath() string {
	if c.Obsidian.DocsPath == "" {
		return ""
	}
	if filepath.IsAbs(c.Obsidian.DocsPath) {
		return c.Obsidian.DocsPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.Obsidian.DocsPath)
}

// DataDir returns the directory for the lock file and logs.
func DataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "projpick")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "share", "projpick")
	}

	return filepath.Join(home, ".local", "share", "projpick")
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "projpick", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "projpick", "config.yaml")
	}

	return filepath.Join(home, ".config", "projpick", "config.yaml")
}
