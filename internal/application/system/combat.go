package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// CombatSystem owns enemy projectiles and moves them through the grid
type CombatSystem struct {
	cfg         config.ProjectileConfig
	mover       *AxisMover
	log         *zap.Logger
	projectiles []*entity.Projectile
	nextID      entity.EntityID
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg config.ProjectileConfig, mover *AxisMover, log *zap.Logger) *CombatSystem {
	return &CombatSystem{
		cfg:         cfg,
		mover:       mover,
		log:         log,
		projectiles: make([]*entity.Projectile, 0, 16),
		nextID:      1,
	}
}

// Fire spawns a projectile for a shot
func (s *CombatSystem) Fire(shot Shot) *entity.Projectile {
	heading := entity.Direction{X: shot.Heading.X}
	if heading.IsZero() {
		heading = entity.DirRight
	}
	proj := entity.NewProjectile(s.nextID, shot.From, heading, s.cfg.Speed, s.cfg.Damage)
	s.nextID++

	// Reuse an inactive slot before growing
	for i, p := range s.projectiles {
		if !p.Active {
			s.projectiles[i] = proj
			return proj
		}
	}
	s.projectiles = append(s.projectiles, proj)
	return proj
}

// Update moves every active projectile
func (s *CombatSystem) Update() {
	for _, proj := range s.projectiles {
		if !proj.Active {
			continue
		}
		if !fly(s.mover, proj, proj.TakeSteps()) {
			s.deactivate(proj, "blocked")
		}
	}
}

// fly moves a shot in 1-microstep substeps. It reports false once a wall
// or the grid edge stops the shot.
func fly(mover *AxisMover, proj *entity.Projectile, steps int) bool {
	for i := 0; i < steps; i++ {
		before := proj.Position
		out := mover.TryMove(&proj.Position, proj.Heading, 1)
		if !out.Applied || proj.Position == before {
			return false
		}
	}
	return true
}

// Hit deactivates a projectile that struck the player
func (s *CombatSystem) Hit(proj *entity.Projectile) {
	s.deactivate(proj, "hit")
}

func (s *CombatSystem) deactivate(proj *entity.Projectile, reason string) {
	proj.Active = false
	s.log.Debug("projectile removed",
		zap.Uint32("id", uint32(proj.ID)),
		zap.String("reason", reason),
		zap.Int("row", proj.Position.Cell.Row),
		zap.Int("col", proj.Position.Cell.Col))
}

// Projectiles returns the projectile slots, including inactive ones
func (s *CombatSystem) Projectiles() []*entity.Projectile {
	return s.projectiles
}

// ActiveCount returns the number of projectiles in flight
func (s *CombatSystem) ActiveCount() int {
	n := 0
	for _, p := range s.projectiles {
		if p.Active {
			n++
		}
	}
	return n
}

// Clear removes all projectiles
func (s *CombatSystem) Clear() {
	s.projectiles = s.projectiles[:0]
}
