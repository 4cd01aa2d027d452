package entity

// Axis selects the horizontal or vertical component of a position
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Direction is a unit step on the grid. X is the column delta, Y the row delta.
type Direction struct {
	X int
	Y int
}

var (
	DirNone  = Direction{}
	DirLeft  = Direction{X: -1}
	DirRight = Direction{X: 1}
	DirUp    = Direction{Y: 1}
	DirDown  = Direction{Y: -1}
)

// IsZero reports whether the direction requests no movement
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Axis returns the axis a single-axis direction moves along
func (d Direction) Axis() Axis {
	if d.X != 0 {
		return AxisX
	}
	return AxisY
}

// Sign returns the signed component along the direction's axis
func (d Direction) Sign() int {
	if d.X != 0 {
		return d.X
	}
	return d.Y
}

// GridPosition is a fixed-point position: a tile index plus a microstep
// offset on each axis in [0, StepsPerTile).
type GridPosition struct {
	Cell  Cell
	StepX int
	StepY int
}

// NewGridPosition returns a position aligned to the given cell
func NewGridPosition(cell Cell) GridPosition {
	return GridPosition{Cell: cell}
}

// Aligned reports whether both microsteps are zero
func (p GridPosition) Aligned() bool {
	return p.StepX == 0 && p.StepY == 0
}

// AdvanceAxis adds delta microsteps (truncated toward zero) on one axis and
// carries any overflow or underflow into the tile index, across as many
// tiles as needed.
func (p *GridPosition) AdvanceAxis(axis Axis, delta float64, stepsPerTile int) {
	tile, step := p.component(axis)
	step += int(delta)
	tile += floorDiv(step, stepsPerTile)
	step = floorMod(step, stepsPerTile)
	p.setComponent(axis, tile, step)
}

// ClampToBounds keeps the tile index inside [0, numTiles). Reaching either
// edge zeroes that axis' microstep; the last tile cannot be straddled.
func (p *GridPosition) ClampToBounds(axis Axis, numTiles int) {
	tile, step := p.component(axis)
	switch {
	case tile < 0:
		tile, step = 0, 0
	case tile > numTiles-1:
		tile, step = numTiles-1, 0
	case tile == numTiles-1:
		step = 0
	}
	p.setComponent(axis, tile, step)
}

// ToWorldSpace maps the position on one axis to a continuous coordinate,
// measured from the grid origin in tile-size units
func (p GridPosition) ToWorldSpace(axis Axis, tileSize float64, stepsPerTile int) float64 {
	tile, step := p.component(axis)
	return (float64(tile) + float64(step)/float64(stepsPerTile)) * tileSize
}

func (p GridPosition) component(axis Axis) (tile, step int) {
	if axis == AxisX {
		return p.Cell.Col, p.StepX
	}
	return p.Cell.Row, p.StepY
}

func (p *GridPosition) setComponent(axis Axis, tile, step int) {
	if axis == AxisX {
		p.Cell.Col, p.StepX = tile, step
		return
	}
	p.Cell.Row, p.StepY = tile, step
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
