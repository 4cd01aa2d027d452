package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// Shot is a request from an enemy to fire a projectile
type Shot struct {
	From    entity.GridPosition
	Heading entity.Direction
}

// ChaserAI runs the glutton state machine on top of the shared movers
type ChaserAI struct {
	cfg     config.GluttonConfig
	mover   *AxisMover
	physics *VerticalPhysics
	planner *PathPlanner
	log     *zap.Logger
}

// NewChaserAI creates the chaser system
func NewChaserAI(cfg config.GluttonConfig, mover *AxisMover, physics *VerticalPhysics, planner *PathPlanner, log *zap.Logger) *ChaserAI {
	return &ChaserAI{
		cfg:     cfg,
		mover:   mover,
		physics: physics,
		planner: planner,
		log:     log,
	}
}

// Update runs one frame for a glutton chasing target. It returns a shot
// when the glutton fires this frame.
func (a *ChaserAI) Update(g *entity.Glutton, target entity.Cell, dt float64) (Shot, bool) {
	if !g.Active {
		return Shot{}, false
	}

	shot, fired := a.decide(g, target, dt)
	a.physics.CheckLedge(&g.Body)
	a.physics.Tick(&g.Body, dt)
	return shot, fired
}

func (a *ChaserAI) decide(g *entity.Glutton, target entity.Cell, dt float64) (Shot, bool) {
	cell := g.Body.Position.Cell
	distance := Euclidean(cell, target)

	switch g.State {
	case entity.ChaseIdle:
		if g.Counter > a.cfg.PatrolTimeout {
			a.transition(g, entity.ChasePatrol)
			return Shot{}, false
		}
		g.Counter++

	case entity.ChasePatrol:
		switch {
		case g.Counter > a.cfg.PatrolTimeout:
			a.transition(g, entity.ChaseIdle)
		case distance < a.cfg.ProximityRadius:
			a.transition(g, entity.ChaseTrace)
		case a.scanForWall(g, target):
			a.transition(g, entity.ChaseJumpOverWall)
		default:
			if g.Heading.X == 0 {
				g.Heading = entity.Direction{X: towards(cell.Col, target.Col)}
			}
			a.step(g, target)
			g.Counter++
		}

	case entity.ChaseTrace:
		switch {
		case distance >= a.cfg.ProximityRadius:
			a.transition(g, entity.ChasePatrol)
		case distance >= a.cfg.TraceStopDistance || cell.Row != target.Row:
			a.follow(g, target, target, a.cfg.TracePathDepth)
			g.Counter++
		case a.scanForWall(g, target):
			a.transition(g, entity.ChaseJumpOverWall)
		default:
			a.transition(g, entity.ChaseShoot)
		}

	case entity.ChaseShoot:
		if cell.Row != target.Row {
			a.transition(g, entity.ChaseIdle)
			return Shot{}, false
		}
		g.ShotTimer -= dt
		if g.ShotTimer <= 0 {
			g.ShotTimer = a.cfg.ShotInterval
			return Shot{
				From:    entity.GridPosition{Cell: cell},
				Heading: entity.Direction{X: towards(cell.Col, target.Col)},
			}, true
		}

	case entity.ChaseJumpOverWall:
		switch {
		case cell == g.WallTarget:
			a.transition(g, entity.ChaseShoot)
		case g.Counter > a.cfg.PatrolTimeout:
			a.transition(g, entity.ChasePatrol)
		default:
			a.follow(g, g.WallTarget, target, a.cfg.WallPathDepth)
			g.Counter++
		}
	}

	return Shot{}, false
}

// follow plans toward goal and takes one step along the straight run of
// the path. No path means no movement this frame.
func (a *ChaserAI) follow(g *entity.Glutton, goal, target entity.Cell, depth int) {
	cell := g.Body.Position.Cell
	path := a.planner.FindPath(cell, goal, Euclidean, depth)
	heading, dest := CollapsePath(cell, path)
	if heading.IsZero() {
		a.log.Debug("no path",
			zap.Uint32("glutton", uint32(g.ID)),
			zap.Int("row", cell.Row), zap.Int("col", cell.Col),
			zap.Int("goalRow", goal.Row), zap.Int("goalCol", goal.Col))
		return
	}
	g.Heading = heading
	g.Destination = dest
	a.step(g, target)
}

// step walks one stride along the heading, turning around on a blocked
// move, and jumps when the heading points up toward a target within reach
func (a *ChaserAI) step(g *entity.Glutton, target entity.Cell) {
	if g.Heading.X != 0 {
		out := a.mover.TryMove(&g.Body.Position, entity.Direction{X: g.Heading.X}, a.cfg.WalkSteps)
		if !out.Applied {
			g.Heading.X = -g.Heading.X
		}
	}

	if g.Heading.Y > 0 && target.Row-g.Body.Position.Cell.Row < a.cfg.JumpTriggerRows &&
		g.Body.State == entity.MotionIdle {
		a.physics.Jump(&g.Body, a.cfg.JumpVelocity)
	}
}

// scanForWall looks along the row in the heading for a solid tile within
// range. Meeting the target's column first means there is no wall between
// them. A wall sets the wall target two tiles past it.
func (a *ChaserAI) scanForWall(g *entity.Glutton, target entity.Cell) bool {
	cell := g.Body.Position.Cell
	dir := g.Heading.X
	if dir == 0 {
		dir = towards(cell.Col, target.Col)
	}

	grid := a.mover.Grid()
	for i := 1; i < a.cfg.WallScanRange; i++ {
		col := cell.Col + dir*i
		if col == target.Col {
			return false
		}
		if col < 0 || col >= grid.NumTilesX() {
			return false
		}
		if !entity.IsSolid(grid.GetTileValue(cell.Row, col)) {
			continue
		}

		dest := entity.Cell{Row: cell.Row, Col: cell.Col + dir*(i+2)}
		if dest.Col < 0 || dest.Col >= grid.NumTilesX() || entity.IsSolid(grid.GetTileValue(dest.Row, dest.Col)) {
			return false
		}
		g.WallTarget = dest
		return true
	}
	return false
}

// Caught resets the state counter of a glutton touching the player
func (a *ChaserAI) Caught(g *entity.Glutton) {
	g.Counter = 0
}

func (a *ChaserAI) transition(g *entity.Glutton, to entity.ChaseState) {
	a.log.Debug("glutton state",
		zap.Uint32("glutton", uint32(g.ID)),
		zap.Stringer("from", g.State),
		zap.Stringer("to", to))
	g.SetChaseState(to)
}

// towards returns the column step from col toward target, right when level
func towards(col, target int) int {
	if target < col {
		return -1
	}
	return 1
}
