package system

import (
	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// NextBreakStage returns the tile a block turns into when hit once more.
// Tiles that cannot be broken are returned unchanged.
func NextBreakStage(v int) int {
	switch v {
	case entity.TileSolid:
		return entity.TileCracked
	case entity.TileCracked:
		return entity.TileCrumbling
	case entity.TileCrumbling:
		return entity.TileEmpty
	default:
		return v
	}
}

// BlockSystem lets the player place and dig blocks
type BlockSystem struct {
	grid entity.TileGrid
	cfg  config.PlayerConfig
}

// NewBlockSystem creates a new block system
func NewBlockSystem(grid entity.TileGrid, cfg config.PlayerConfig) *BlockSystem {
	return &BlockSystem{grid: grid, cfg: cfg}
}

// Build places a solid block on an empty cell no actor stands in
func (s *BlockSystem) Build(cell entity.Cell, occupied []entity.Cell) bool {
	if !s.inBounds(cell) || s.grid.GetTileValue(cell.Row, cell.Col) != entity.TileEmpty {
		return false
	}
	for _, c := range occupied {
		if c == cell {
			return false
		}
	}
	s.grid.SetTileValue(cell.Row, cell.Col, entity.TileSolid)
	return true
}

// Cooldown counts the player's break timer down
func (s *BlockSystem) Cooldown(p *entity.Player, dt float64) {
	if p.BreakTimer > 0 {
		p.BreakTimer -= dt
	}
}

// Break hits the block at cell once if the player's break timer allows it.
// It reports whether the tile changed.
func (s *BlockSystem) Break(p *entity.Player, cell entity.Cell) bool {
	if p.BreakTimer > 0 || !s.inBounds(cell) {
		return false
	}
	v := s.grid.GetTileValue(cell.Row, cell.Col)
	next := NextBreakStage(v)
	if next == v {
		return false
	}
	s.grid.SetTileValue(cell.Row, cell.Col, next)

	if p.HasShovel {
		p.BreakTimer = s.cfg.ShovelBreakInterval
	} else {
		p.BreakTimer = s.cfg.BreakInterval
	}
	return true
}

func (s *BlockSystem) inBounds(c entity.Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < s.grid.NumTilesY() && c.Col < s.grid.NumTilesX()
}
