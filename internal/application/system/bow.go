package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// BowSystem charges the player's bow and flies the arrows it looses
type BowSystem struct {
	cfg    config.BowConfig
	mover  *AxisMover
	log    *zap.Logger
	arrows []*entity.Arrow
	nextID entity.EntityID
}

// NewBowSystem creates a new bow system
func NewBowSystem(cfg config.BowConfig, mover *AxisMover, log *zap.Logger) *BowSystem {
	return &BowSystem{
		cfg:    cfg,
		mover:  mover,
		log:    log,
		arrows: make([]*entity.Arrow, 0, 8),
		nextID: 1,
	}
}

// Draw holds the bow for one frame. The first frame sets the minimum
// charge; later frames add to it up to the maximum.
func (s *BowSystem) Draw(p *entity.Player, dt float64) {
	if p.BowCharge <= 0 {
		p.BowCharge = s.cfg.MinCharge
		return
	}
	p.BowCharge = min(s.cfg.MaxCharge, p.BowCharge+s.cfg.ChargeRate*dt)
}

// Loose fires the drawn bow along the player's facing and empties it.
// An undrawn bow fires nothing.
func (s *BowSystem) Loose(p *entity.Player) *entity.Arrow {
	charge := p.BowCharge
	if charge <= 0 {
		return nil
	}
	p.BowCharge = 0

	heading := entity.Direction{X: p.Facing.X}
	if heading.IsZero() {
		heading = entity.DirRight
	}
	damage := float64(s.cfg.Damage) * charge
	if p.HasStrength {
		damage *= s.cfg.StrengthMultiplier
	}

	arrow := entity.NewArrow(s.nextID, p.Body.Position, heading, charge,
		s.cfg.SpeedPerCharge*charge, int(s.cfg.RangePerCharge*charge), int(damage))
	s.nextID++
	s.log.Debug("arrow loosed",
		zap.Uint32("id", uint32(arrow.ID)),
		zap.Float64("charge", charge),
		zap.Int("damage", arrow.Damage),
		zap.Int("stopCol", arrow.StopCol))

	for i, a := range s.arrows {
		if !a.Active {
			s.arrows[i] = arrow
			return arrow
		}
	}
	s.arrows = append(s.arrows, arrow)
	return arrow
}

// Update flies every arrow and retires those stopped by a wall or at the
// end of their reach
func (s *BowSystem) Update() {
	for _, a := range s.arrows {
		if !a.Active {
			continue
		}
		switch {
		case !fly(s.mover, &a.Projectile, a.TakeSteps()):
			s.retire(a, "blocked")
		case a.Spent():
			s.retire(a, "spent")
		}
	}
}

// Strike applies an arrow to the glutton it hit and reports whether the
// glutton was defeated
func (s *BowSystem) Strike(a *entity.Arrow, g *entity.Glutton) bool {
	s.retire(a, "hit")
	return g.TakeDamage(a.Damage)
}

func (s *BowSystem) retire(a *entity.Arrow, reason string) {
	a.Active = false
	s.log.Debug("arrow removed",
		zap.Uint32("id", uint32(a.ID)),
		zap.String("reason", reason),
		zap.Int("row", a.Position.Cell.Row),
		zap.Int("col", a.Position.Cell.Col))
}

// Arrows returns the arrow slots, including spent ones
func (s *BowSystem) Arrows() []*entity.Arrow {
	return s.arrows
}

// ActiveCount returns the number of arrows in flight
func (s *BowSystem) ActiveCount() int {
	n := 0
	for _, a := range s.arrows {
		if a.Active {
			n++
		}
	}
	return n
}

// Clear removes all arrows
func (s *BowSystem) Clear() {
	s.arrows = s.arrows[:0]
}
