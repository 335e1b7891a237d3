package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LittleCodeGeek/abcors"
	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// abcors shows the orbit hover panel on a map view drawn in the terminal.
// Hover a trajectory with the mouse to read the time, altitude, speed and angle at that point.

var (
	configPath   string
	scenarioPath string
	logPath      string
	verbose      bool
)

func init() {
	flag.StringVar(&configPath, "config", defaultConfigPath(), "display settings TOML file (created if missing)")
	flag.StringVar(&scenarioPath, "scenario", "", "scenario TOML file, the built-in scenario is used if unset")
	flag.StringVar(&logPath, "log", filepath.Join(os.TempDir(), "abcors.log"), "log file")
	flag.BoolVar(&verbose, "verbose", false, "log debug messages")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "abcors: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer f.Close()
	logger := newLogger(f, verbose)

	// Defaults are usable when the file could not be read or saved; the loader logs why.
	cfg, _ := abcors.LoadDisplayConfig(configPath, logger)
	cfg = withHostCulture(cfg, logger)
	sc, err := loadScenario(scenarioPath, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	newHost(screen, cfg, sc, logger).run()
	return nil
}

// withHostCulture sets the locale of the environment when the configuration does not name one.
func withHostCulture(cfg abcors.DisplayConfig, logger log.Logger) abcors.DisplayConfig {
	if cfg.Locale == "" {
		cfg.Locale = abcors.HostLocale()
		level.Debug(logger).Log("subsys", "config", "locale", cfg.Locale)
	}
	return cfg
}

func newLogger(f *os.File, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(f))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "abcors", "settings.toml")
}
