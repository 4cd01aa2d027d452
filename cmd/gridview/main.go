// Command gridview plays gridrun levels in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/gridrun/internal/application/session"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
	"github.com/younwookim/gridrun/internal/infrastructure/logger"
)

var (
	configDir = flag.String("config-dir", "cmd/game/configs", "Directory holding config.yaml and the level files")
	logPath   = flag.String("log", "gridview.log", "Log file; the terminal is taken by the map")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.ParseFlags()

	loader := config.NewLoader(*configDir)
	cfg, err := config.Load(loader)
	if err != nil {
		return err
	}

	logFile := cfg.Logging.LogFile
	if logFile == "" {
		logFile = *logPath
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(logFile), false); err != nil {
		return err
	}
	defer logger.Sync()

	levels, err := loader.LoadLevels(cfg.Levels)
	if err != nil {
		return err
	}
	s, err := session.New(cfg, levels, logger.Named("session"))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	NewViewer(screen, s, cfg.Display.Framerate, logger.Named("gridview")).Run()
	return nil
}
