package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/application/game"
	"github.com/younwookim/gridrun/internal/application/scene/playing"
	"github.com/younwookim/gridrun/internal/application/session"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
	"github.com/younwookim/gridrun/internal/infrastructure/logger"
	"github.com/younwookim/gridrun/internal/infrastructure/persistence"
)

//go:embed configs
var configFS embed.FS

var (
	recordFlag  = flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag  = flag.String("replay", "", "Replay a recording headlessly and print the outcome")
	configDir   = flag.String("config-dir", "", "Read config and levels from this directory instead of the built-in ones")
	newGameFlag = flag.Bool("new", false, "Ignore saved progress")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	config.ParseFlags()

	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := config.Load(loader)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	levels, err := loader.LoadLevels(cfg.Levels)
	if err != nil {
		return err
	}

	if *replayFlag != "" {
		result, err := runReplay(cfg, levels, *replayFlag, logger.Named("replay"))
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	}

	s, err := session.New(cfg, levels, logger.Named("session"))
	if err != nil {
		return err
	}
	restoreProgress(cfg, s)

	scene := playing.New(cfg, s, playing.NewKeyboardInput(), *recordFlag, logger.Named("playing"))
	g := game.New(scene, cfg.Display, logger.Named("game"))
	defer g.Close()

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("gridrun")
	ebiten.SetTPS(cfg.Display.Framerate)

	logger.Info("starting", zap.Int("levels", len(levels)), zap.Int("level", s.Level()))
	return ebiten.RunGame(g)
}

func newLoader() (*config.Loader, error) {
	if *configDir != "" {
		return config.NewLoader(*configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// restoreProgress resumes a saved run and keeps saving as levels are reached.
// Save data problems are logged and never stop the game.
func restoreProgress(cfg *config.Config, s *session.Session) {
	if !cfg.Save.Enabled {
		return
	}
	store, err := persistence.Open(cfg.Save.AppName, logger.Named("save"))
	if err != nil {
		logger.Warn("progress saving disabled", zap.Error(err))
		return
	}
	s.SetSaver(store)

	if *newGameFlag {
		if err := store.Clear(); err != nil {
			logger.Warn("failed to clear progress", zap.Error(err))
		}
		return
	}

	p, err := store.Load()
	if err != nil {
		logger.Warn("ignoring saved progress", zap.Error(err))
		return
	}
	if p == nil {
		return
	}
	if err := s.Restore(*p); err != nil {
		logger.Warn("saved progress does not fit the levels", zap.Error(err))
	}
}
