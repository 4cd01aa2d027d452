package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/application/replay"
	"github.com/younwookim/gridrun/internal/application/session"
	"github.com/younwookim/gridrun/internal/application/state"
	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// ReplayResult is where a replayed run ended up
type ReplayResult struct {
	Frames int
	Level  int
	State  state.GameState
	Cell   entity.Cell
	Lives  int
	Health int
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("frames=%d level=%d state=%s cell=(%d,%d) lives=%d health=%d",
		r.Frames, r.Level, r.State, r.Cell.Row, r.Cell.Col, r.Lives, r.Health)
}

// runReplay loads a recording and plays it without a window
func runReplay(cfg *config.Config, levels []*config.LevelData, path string, log *zap.Logger) (ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplayResult{}, err
	}
	log.Info("replaying", zap.String("path", path), zap.String("stage", data.Stage), zap.Int("frames", len(data.Frames)))
	return simulate(cfg, levels, *data, log)
}

// simulate feeds every recorded frame to a fresh session, stopping early
// once the run is over
func simulate(cfg *config.Config, levels []*config.LevelData, data replay.ReplayData, log *zap.Logger) (ReplayResult, error) {
	runCfg := *cfg
	runCfg.StartLevel = data.Level

	s, err := session.New(&runCfg, levels, log)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay %q: %w", data.Stage, err)
	}

	dt := 1.0 / float64(cfg.Display.Framerate)
	replayer := replay.NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok || s.Step(dt, input).IsOver() {
			break
		}
	}

	player := s.Player()
	return ReplayResult{
		Frames: replayer.CurrentFrame(),
		Level:  s.Level(),
		State:  s.State(),
		Cell:   player.Body.Position.Cell,
		Lives:  player.Lives,
		Health: player.Health,
	}, nil
}
