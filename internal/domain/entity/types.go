package entity

import "errors"

// EntityID is a unique identifier for an actor within a session
type EntityID uint32

// Tile values stored in the stage. Values below TileSolid are walkable,
// values at or above it block movement.
const (
	TileEmpty          = 0
	TileHealthPotion   = 2
	TileSpeedPotion    = 3
	TileStrengthPotion = 4
	TileJumpPotion     = 5
	TileExtraLife      = 10
	TileHazard         = 20
	TileShovel         = 33
	TileLoseMarker     = 98
	TileLevelExit      = 99

	TileSolid     = 100
	TileCracked   = 102
	TileCrumbling = 103
	TileBreakMax  = 108

	TilePlayerSpawn  = 200
	TileGluttonSpawn = 302
)

// ErrLevelOutOfRange is returned when switching to a level the stage does not hold
var ErrLevelOutOfRange = errors.New("level out of range")

// IsSolid reports whether a tile value blocks movement
func IsSolid(value int) bool {
	return value >= TileSolid
}

// Cell addresses one tile. Row 0 is the bottom row.
type Cell struct {
	Row int
	Col int
}

// Step returns the neighbouring cell in direction d
func (c Cell) Step(d Direction) Cell {
	return Cell{Row: c.Row + d.Y, Col: c.Col + d.X}
}

// TileGrid is the query/mutation surface the kinematics core works against
type TileGrid interface {
	GetTileValue(row, col int) int
	SetTileValue(row, col, value int)
	NumTilesX() int
	NumTilesY() int
	StepsPerTileX() int
	StepsPerTileY() int
	TileWidth() float64
	TileHeight() float64
}

// MicroStepSizeX returns the world width of one horizontal microstep
func MicroStepSizeX(g TileGrid) float64 {
	return g.TileWidth() / float64(g.StepsPerTileX())
}

// MicroStepSizeY returns the world height of one vertical microstep
func MicroStepSizeY(g TileGrid) float64 {
	return g.TileHeight() / float64(g.StepsPerTileY())
}

// Stage holds the tile values of every level and tracks the active one.
// Tiles are indexed [level][row][col].
type Stage struct {
	Name   string
	Width  int
	Height int

	StepsX int
	StepsY int
	TileW  float64
	TileH  float64

	levels [][][]int
	level  int
}

// NewStage creates a stage with the given number of empty levels
func NewStage(width, height, levels, stepsX, stepsY int, tileW, tileH float64) *Stage {
	s := &Stage{
		Width:  width,
		Height: height,
		StepsX: stepsX,
		StepsY: stepsY,
		TileW:  tileW,
		TileH:  tileH,
		levels: make([][][]int, levels),
	}
	for i := range s.levels {
		s.levels[i] = newTiles(width, height)
	}
	return s
}

func newTiles(width, height int) [][]int {
	tiles := make([][]int, height)
	for row := range tiles {
		tiles[row] = make([]int, width)
	}
	return tiles
}

// GetTileValue returns the value at (row, col) on the active level.
// Anything outside the stage reads as solid.
func (s *Stage) GetTileValue(row, col int) int {
	if !s.InBounds(row, col) {
		return TileSolid
	}
	return s.levels[s.level][row][col]
}

// SetTileValue writes a value on the active level. Out-of-range writes are ignored.
func (s *Stage) SetTileValue(row, col, value int) {
	if !s.InBounds(row, col) {
		return
	}
	s.levels[s.level][row][col] = value
}

// InBounds reports whether (row, col) lies inside the stage
func (s *Stage) InBounds(row, col int) bool {
	return row >= 0 && row < s.Height && col >= 0 && col < s.Width
}

func (s *Stage) NumTilesX() int      { return s.Width }
func (s *Stage) NumTilesY() int      { return s.Height }
func (s *Stage) StepsPerTileX() int  { return s.StepsX }
func (s *Stage) StepsPerTileY() int  { return s.StepsY }
func (s *Stage) TileWidth() float64  { return s.TileW }
func (s *Stage) TileHeight() float64 { return s.TileH }

// Level returns the active level index
func (s *Stage) Level() int {
	return s.level
}

// LevelCount returns how many levels the stage holds
func (s *Stage) LevelCount() int {
	return len(s.levels)
}

// SetLevel switches the active level
func (s *Stage) SetLevel(level int) error {
	if level < 0 || level >= len(s.levels) {
		return ErrLevelOutOfRange
	}
	s.level = level
	return nil
}

// LoadLevel replaces the tiles of one level. rows[0] is the bottom row.
func (s *Stage) LoadLevel(level int, rows [][]int) error {
	if level < 0 || level >= len(s.levels) {
		return ErrLevelOutOfRange
	}
	tiles := newTiles(s.Width, s.Height)
	for row := 0; row < s.Height && row < len(rows); row++ {
		copy(tiles[row], rows[row])
	}
	s.levels[level] = tiles
	return nil
}

// FindFirstTileWithValue scans the active level bottom-up, left to right
func (s *Stage) FindFirstTileWithValue(value int) (Cell, bool) {
	for row, cols := range s.levels[s.level] {
		for col, v := range cols {
			if v == value {
				return Cell{Row: row, Col: col}, true
			}
		}
	}
	return Cell{}, false
}

// TakeSpawn locates a spawn marker and erases it so it is not walked over as data
func (s *Stage) TakeSpawn(value int) (Cell, bool) {
	cell, ok := s.FindFirstTileWithValue(value)
	if ok {
		s.SetTileValue(cell.Row, cell.Col, TileEmpty)
	}
	return cell, ok
}
