package system

import (
	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// PlayerSystem applies the player's intents through the shared movers
type PlayerSystem struct {
	cfg     config.PlayerConfig
	physCfg config.PhysicsConfig
	mover   *AxisMover
	physics *VerticalPhysics
	blocks  *BlockSystem
	pickups *PickupSystem
	bow     *BowSystem
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg config.PlayerConfig, physCfg config.PhysicsConfig, mover *AxisMover, physics *VerticalPhysics, blocks *BlockSystem, pickups *PickupSystem, bow *BowSystem) *PlayerSystem {
	return &PlayerSystem{
		cfg:     cfg,
		physCfg: physCfg,
		mover:   mover,
		physics: physics,
		blocks:  blocks,
		pickups: pickups,
		bow:     bow,
	}
}

// Update runs one frame for the player. occupied lists the cells other
// actors stand in, where no block may be built.
func (s *PlayerSystem) Update(p *entity.Player, input InputState, dt float64, occupied []entity.Cell) PlayerEvent {
	s.updateTimers(p, dt)

	intents := IntentsFromInput(input, p.Facing)
	for _, in := range intents {
		if move, ok := in.(MoveIntent); ok {
			s.walk(p, move.Direction)
		}
	}
	s.physics.CheckLedge(&p.Body)

	for _, in := range intents {
		if _, ok := in.(JumpIntent); ok {
			s.jump(p)
		}
	}
	s.physics.Tick(&p.Body, dt)

	drawing := false
	for _, in := range intents {
		switch in := in.(type) {
		case BuildIntent:
			s.blocks.Build(p.Body.Position.Cell.Step(in.Direction), occupied)
		case BreakIntent:
			s.blocks.Break(p, p.Body.Position.Cell.Step(in.Direction))
		case DrawBowIntent:
			drawing = true
		}
	}
	if drawing {
		s.bow.Draw(p, dt)
	} else {
		s.bow.Loose(p)
	}

	return s.pickups.Interact(p)
}

func (s *PlayerSystem) updateTimers(p *entity.Player, dt float64) {
	if p.SpeedTimer > 0 {
		p.SpeedTimer -= dt
		if p.SpeedTimer < 0 {
			p.SpeedTimer = 0
		}
	}
	s.blocks.Cooldown(p, dt)
}

func (s *PlayerSystem) walk(p *entity.Player, dir entity.Direction) {
	p.Facing = dir
	steps := s.cfg.WalkSteps
	if p.IsSpeedBoosted() {
		steps = s.cfg.SpeedSteps
	}
	s.mover.TryMove(&p.Body.Position, dir, steps)
}

// jump uses a high jump charge when one is left
func (s *PlayerSystem) jump(p *entity.Player) {
	velocity := s.physCfg.JumpVelocity
	high := p.HighJumpCharges > 0
	if high {
		velocity = s.physCfg.HighJumpVelocity
	}
	if s.physics.Jump(&p.Body, velocity) && high {
		p.HighJumpCharges--
	}
}
