// Package session runs a level without any rendering or input device,
// stepping every actor in a fixed order once per frame.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/application/state"
	"github.com/younwookim/gridrun/internal/application/system"
	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
	"github.com/younwookim/gridrun/internal/infrastructure/persistence"
)

// ErrSpawnNotFound is returned when a level has no player spawn marker
var ErrSpawnNotFound = errors.New("spawn marker not found")

// ProgressSaver stores progress when a level is reached
type ProgressSaver interface {
	Save(p persistence.Progress) error
}

// Session owns the stage and every actor of a run
type Session struct {
	cfg    *config.Config
	levels []*config.LevelData
	log    *zap.Logger
	saver  ProgressSaver

	stage    *entity.Stage
	mover    *system.AxisMover
	players  *system.PlayerSystem
	chaser   *system.ChaserAI
	combat   *system.CombatSystem
	bow      *system.BowSystem
	contacts *system.ContactSystem

	player   *entity.Player
	gluttons []*entity.Glutton
	nextID   entity.EntityID

	state state.GameState
	frame int
}

// New builds a session over the given levels and enters cfg.StartLevel
func New(cfg *config.Config, levels []*config.LevelData, log *zap.Logger) (*Session, error) {
	stage, err := system.LoadStage(cfg.Grid, levels)
	if err != nil {
		return nil, err
	}

	mover := system.NewAxisMover(stage)
	physics := system.NewVerticalPhysics(mover, cfg.Physics)
	planner := system.NewPathPlanner(stage)

	bow := system.NewBowSystem(cfg.Bow, mover, log.Named("bow"))
	s := &Session{
		cfg:    cfg,
		levels: levels,
		log:    log,
		stage:  stage,
		mover:  mover,
		players: system.NewPlayerSystem(cfg.Player, cfg.Physics, mover, physics,
			system.NewBlockSystem(stage, cfg.Player),
			system.NewPickupSystem(stage, cfg.Player), bow),
		chaser:   system.NewChaserAI(cfg.Glutton, mover, physics, planner, log.Named("chaser")),
		combat:   system.NewCombatSystem(cfg.Projectile, mover, log.Named("combat")),
		bow:      bow,
		contacts: system.NewContactSystem(stage),
	}

	if err := s.enterLevel(cfg.StartLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// SetSaver enables progress saving
func (s *Session) SetSaver(saver ProgressSaver) {
	s.saver = saver
}

// Restore continues a saved run
func (s *Session) Restore(p persistence.Progress) error {
	if err := s.enterLevel(p.Level); err != nil {
		return err
	}
	if p.Lives > 0 {
		s.player.Lives = p.Lives
	}
	if p.Health > 0 {
		s.player.Health = min(p.Health, s.player.MaxHealth)
	}
	s.log.Info("progress restored",
		zap.Int("level", p.Level),
		zap.Int("lives", s.player.Lives),
		zap.Int("health", s.player.Health))
	return nil
}

// Step advances the run by one frame and returns the resulting state.
// The order is player, gluttons, projectiles and arrows, contacts, then
// state checks.
func (s *Session) Step(dt float64, input system.InputState) state.GameState {
	switch s.state {
	case state.StateStageClear:
		s.advance()
		return s.state
	case state.StatePlaying:
	default:
		return s.state
	}
	s.frame++

	event := s.players.Update(s.player, input, dt, s.gluttonCells())

	target := s.player.Body.Position.Cell
	for _, g := range s.gluttons {
		if shot, fired := s.chaser.Update(g, target, dt); fired {
			s.combat.Fire(shot)
		}
	}

	s.combat.Update()
	s.bow.Update()

	for _, hit := range s.contacts.ResolveArrows(s.bow.Arrows(), s.gluttons) {
		if s.bow.Strike(hit.Arrow, hit.Glutton) {
			s.player.Kills++
			s.log.Info("glutton defeated",
				zap.Uint32("glutton", uint32(hit.Glutton.ID)),
				zap.Int("kills", s.player.Kills),
				zap.Int("frame", s.frame))
		}
	}

	report := s.contacts.Resolve(s.player, s.gluttons, s.combat.Projectiles())
	for _, g := range report.Gluttons {
		s.chaser.Caught(g)
	}
	for _, p := range report.Projectiles {
		s.player.TakeDamage(p.Damage)
		s.combat.Hit(p)
	}

	s.checkState(event)
	return s.state
}

func (s *Session) checkState(event system.PlayerEvent) {
	switch event {
	case system.EventStageClear:
		s.state = state.StateStageClear
		s.log.Info("stage clear", zap.Int("level", s.stage.Level()), zap.Int("frame", s.frame))
		return
	case system.EventLost:
		s.gameOver("lose marker")
		return
	}

	if s.player.Health > 0 {
		return
	}
	s.player.Lives--
	if s.player.Lives <= 0 {
		s.gameOver("out of lives")
		return
	}
	s.player.Respawn()
	s.log.Info("player died", zap.Int("lives", s.player.Lives), zap.Int("frame", s.frame))
}

func (s *Session) gameOver(reason string) {
	s.state = state.StateGameOver
	s.log.Info("game over", zap.String("reason", reason), zap.Int("frame", s.frame))
}

// advance moves to the level after a cleared one
func (s *Session) advance() {
	next := s.stage.Level() + 1
	if next >= s.stage.LevelCount() {
		s.state = state.StateComplete
		s.log.Info("all levels complete", zap.Int("frame", s.frame))
		return
	}

	if err := s.enterLevel(next); err != nil {
		s.log.Error("cannot enter next level", zap.Int("level", next), zap.Error(err))
		s.gameOver("broken level")
		return
	}
	s.save()
}

func (s *Session) save() {
	if s.saver == nil {
		return
	}
	p := persistence.Progress{
		Level:  s.stage.Level(),
		Lives:  s.player.Lives,
		Health: s.player.Health,
	}
	if err := s.saver.Save(p); err != nil {
		s.log.Warn("saving progress failed", zap.Error(err))
	}
}

// enterLevel resets the level's tiles and places its actors
func (s *Session) enterLevel(index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("enter level %d: %w", index, entity.ErrLevelOutOfRange)
	}
	level := s.levels[index]
	if err := s.stage.SetLevel(index); err != nil {
		return fmt.Errorf("enter level %d: %w", index, err)
	}
	if err := system.ReloadLevel(s.stage, index, level); err != nil {
		return err
	}
	s.stage.Name = level.Name

	spawn, ok := s.stage.TakeSpawn(entity.TilePlayerSpawn)
	if !ok {
		return fmt.Errorf("level %q: player: %w", level.Name, ErrSpawnNotFound)
	}
	if s.player == nil {
		s.player = entity.NewPlayer(spawn, s.cfg.Player.MaxHealth, s.cfg.Player.Lives)
	} else {
		s.player.Spawn = spawn
		s.player.Respawn()
	}

	s.gluttons = s.gluttons[:0]
	for {
		cell, ok := s.stage.TakeSpawn(entity.TileGluttonSpawn)
		if !ok {
			break
		}
		s.nextID++
		s.gluttons = append(s.gluttons, entity.NewGlutton(s.nextID, cell, s.cfg.Glutton.Health))
	}

	s.combat.Clear()
	s.bow.Clear()
	s.state = state.StatePlaying
	s.log.Info("level started",
		zap.String("name", level.Name),
		zap.Int("index", index),
		zap.Int("gluttons", len(s.gluttons)))
	return nil
}

// Restart replays the current level from scratch with a fresh player
func (s *Session) Restart() error {
	s.player = nil
	s.frame = 0
	return s.enterLevel(s.stage.Level())
}

// TogglePause pauses a running level or resumes a paused one
func (s *Session) TogglePause() {
	switch s.state {
	case state.StatePlaying:
		s.state = state.StatePaused
	case state.StatePaused:
		s.state = state.StatePlaying
	}
}

func (s *Session) gluttonCells() []entity.Cell {
	cells := make([]entity.Cell, 0, len(s.gluttons))
	for _, g := range s.gluttons {
		if g.Active {
			cells = append(cells, g.Body.Position.Cell)
		}
	}
	return cells
}

// Stage returns the tile grid of the run
func (s *Session) Stage() *entity.Stage { return s.stage }

// Player returns the player
func (s *Session) Player() *entity.Player { return s.player }

// Gluttons returns the enemies of the current level
func (s *Session) Gluttons() []*entity.Glutton { return s.gluttons }

// Projectiles returns the projectile slots, including spent ones
func (s *Session) Projectiles() []*entity.Projectile { return s.combat.Projectiles() }

// Arrows returns the player's arrow slots, including spent ones
func (s *Session) Arrows() []*entity.Arrow { return s.bow.Arrows() }

// State returns the current state
func (s *Session) State() state.GameState { return s.state }

// Frame returns the number of frames played on the current run
func (s *Session) Frame() int { return s.frame }

// Level returns the index of the current level
func (s *Session) Level() int { return s.stage.Level() }
