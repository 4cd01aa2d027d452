package system

import (
	"github.com/younwookim/gridrun/internal/domain/entity"
)

// MoveOutcome reports whether a requested move was kept
type MoveOutcome struct {
	Applied bool
}

// AxisMover moves grid positions one axis at a time and rejects moves that
// would put the actor's footprint into a solid tile
type AxisMover struct {
	grid entity.TileGrid
}

// NewAxisMover creates a mover over the given grid
func NewAxisMover(grid entity.TileGrid) *AxisMover {
	return &AxisMover{grid: grid}
}

// Grid returns the grid the mover validates against
func (m *AxisMover) Grid() entity.TileGrid {
	return m.grid
}

// TryMove advances pos by steps microsteps in dir. Strides longer than a
// tile are walked one tile at a time and every tile entered is checked. A
// blocked move puts the actor back on its pre-move tile with that axis'
// microstep zeroed, so repeating a blocked move never drifts.
func (m *AxisMover) TryMove(pos *entity.GridPosition, dir entity.Direction, steps float64) MoveOutcome {
	if dir.IsZero() {
		return MoveOutcome{}
	}

	snapshot := *pos
	axis := dir.Axis()
	perTile := m.stepsPerTile(axis)
	sign := float64(dir.Sign())

	for remaining := steps; ; {
		chunk := min(remaining, float64(perTile))
		pos.AdvanceAxis(axis, sign*chunk, perTile)
		pos.ClampToBounds(axis, m.numTiles(axis))

		if !m.CheckPosition(pos, dir) {
			*pos = snapshot
			if axis == entity.AxisX {
				pos.StepX = 0
			} else {
				pos.StepY = 0
			}
			return MoveOutcome{}
		}

		remaining -= chunk
		if remaining < 1 {
			return MoveOutcome{Applied: true}
		}
	}
}

// CheckPosition reports whether pos is free for an actor moving in dir.
// Horizontal moves test the current column, plus the row above while the
// actor straddles two rows. Upward moves test the row above the head,
// downward moves the current row, each plus the next column while the
// actor straddles two columns. The right and top edges always pass and
// zero the microstep on that axis.
func (m *AxisMover) CheckPosition(pos *entity.GridPosition, dir entity.Direction) bool {
	row, col := pos.Cell.Row, pos.Cell.Col

	switch {
	case dir.X < 0:
		return m.open(row, col) && (pos.StepY == 0 || m.open(row+1, col))
	case dir.X > 0:
		if col >= m.grid.NumTilesX()-1 {
			pos.StepX = 0
			return true
		}
		return m.open(row, col) && (pos.StepY == 0 || m.open(row+1, col))
	case dir.Y > 0:
		if row >= m.grid.NumTilesY()-1 {
			pos.StepY = 0
			return true
		}
		return m.open(row+1, col) && (pos.StepX == 0 || m.open(row+1, col+1))
	case dir.Y < 0:
		return m.open(row, col) && (pos.StepX == 0 || m.open(row, col+1))
	}
	return true
}

// IsMidAir reports whether an actor horizontally aligned to its tile has
// nothing under it
func (m *AxisMover) IsMidAir(pos entity.GridPosition) bool {
	if pos.Cell.Row <= 0 || pos.StepX != 0 {
		return false
	}
	return m.grid.GetTileValue(pos.Cell.Row-1, pos.Cell.Col) == entity.TileEmpty
}

func (m *AxisMover) open(row, col int) bool {
	return !entity.IsSolid(m.grid.GetTileValue(row, col))
}

func (m *AxisMover) stepsPerTile(axis entity.Axis) int {
	if axis == entity.AxisX {
		return m.grid.StepsPerTileX()
	}
	return m.grid.StepsPerTileY()
}

func (m *AxisMover) numTiles(axis entity.Axis) int {
	if axis == entity.AxisX {
		return m.grid.NumTilesX()
	}
	return m.grid.NumTilesY()
}
