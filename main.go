// pattern: Imperative Shell
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"projpick/internal/config"
	"projpick/internal/docs"
	"projpick/internal/gitstatus"
	"projpick/internal/instance"
	"projpick/internal/labels"
	"projpick/internal/logging"
	"projpick/internal/scan"
	"projpick/internal/tui"
)

var version = "dev"

func main() {
	configPath := flag.StringP("config", "c", "", "config file (default: ~/.config/projpick/config.yaml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("projpick " + version)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}

	dataDir := config.DataDir()

	// Acquire single-instance lock
	fl, err := instance.Lock(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer instance.Unlock(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath:   filepath.Join(dataDir, "projpick.log"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Level:      cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Infow("picker starting", "version", version)

	var matcher *docs.Matcher
	var prober scan.DocProber
	if docsPath := cfg.ResolveDocsPath(); docsPath != "" {
		matcher = docs.NewMatcher(docsPath)
		prober = matcher
	}

	scanner := scan.NewScanner(gitstatus.NewReader(), labels.NewScanner(), prober)
	roots := cfg.ResolveScanPaths()
	exclude := cfg.ExcludeSet()
	appLogger.Infow("scan configured", "roots", roots, "excludes", len(exclude))

	scanFn := func() []scan.Project {
		return scanner.ScanAll(roots, exclude)
	}

	model := tui.NewModel(&cfg, scanFn, matcher, logManager.For("tui"))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLogger.Errorw("picker exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Infow("picker stopped")
}

// loadConfig loads from the explicit path when given, else the
// default location.
func loadConfig(configPath string) (config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}
