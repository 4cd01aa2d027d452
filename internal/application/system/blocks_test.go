package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

func createTestPlayerConfig() config.PlayerConfig {
	return config.Default().Player
}

func TestNextBreakStage(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{entity.TileSolid, entity.TileCracked},
		{entity.TileCracked, entity.TileCrumbling},
		{entity.TileCrumbling, entity.TileEmpty},
		{entity.TileEmpty, entity.TileEmpty},
		{entity.TileLevelExit, entity.TileLevelExit},
		{entity.TileBreakMax, entity.TileBreakMax},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextBreakStage(tt.in), "stage after %d", tt.in)
	}
}

func TestBlockSystem_Build(t *testing.T) {
	stage := createTestStage(6, 6)
	stage.SetTileValue(2, 4, entity.TileHealthPotion)
	blocks := NewBlockSystem(stage, createTestPlayerConfig())

	assert.True(t, blocks.Build(entity.Cell{Row: 2, Col: 3}, nil))
	assert.Equal(t, entity.TileSolid, stage.GetTileValue(2, 3))

	t.Run("only on empty tiles", func(t *testing.T) {
		assert.False(t, blocks.Build(entity.Cell{Row: 2, Col: 3}, nil))
		assert.False(t, blocks.Build(entity.Cell{Row: 2, Col: 4}, nil))
		assert.Equal(t, entity.TileHealthPotion, stage.GetTileValue(2, 4))
	})

	t.Run("never on an actor", func(t *testing.T) {
		occupied := []entity.Cell{{Row: 3, Col: 1}}
		assert.False(t, blocks.Build(entity.Cell{Row: 3, Col: 1}, occupied))
		assert.Equal(t, entity.TileEmpty, stage.GetTileValue(3, 1))
	})

	t.Run("not outside the grid", func(t *testing.T) {
		assert.False(t, blocks.Build(entity.Cell{Row: -1, Col: 1}, nil))
	})
}

func TestBlockSystem_Break(t *testing.T) {
	t.Run("three hits clear a block", func(t *testing.T) {
		stage := createTestStage(6, 6)
		stage.SetTileValue(1, 2, entity.TileSolid)
		blocks := NewBlockSystem(stage, createTestPlayerConfig())
		p := entity.NewPlayer(entity.Cell{Row: 1, Col: 1}, 100, 3)
		cell := entity.Cell{Row: 1, Col: 2}

		assert.True(t, blocks.Break(p, cell))
		assert.Equal(t, entity.TileCracked, stage.GetTileValue(1, 2))
		assert.InDelta(t, 0.2, p.BreakTimer, 1e-9)

		// Still cooling down
		assert.False(t, blocks.Break(p, cell))

		blocks.Cooldown(p, 0.2)
		assert.True(t, blocks.Break(p, cell))
		assert.Equal(t, entity.TileCrumbling, stage.GetTileValue(1, 2))

		blocks.Cooldown(p, 0.2)
		assert.True(t, blocks.Break(p, cell))
		assert.Equal(t, entity.TileEmpty, stage.GetTileValue(1, 2))
	})

	t.Run("shovel halves the interval", func(t *testing.T) {
		stage := createTestStage(6, 6)
		stage.SetTileValue(1, 2, entity.TileSolid)
		blocks := NewBlockSystem(stage, createTestPlayerConfig())
		p := entity.NewPlayer(entity.Cell{Row: 1, Col: 1}, 100, 3)
		p.HasShovel = true

		assert.True(t, blocks.Break(p, entity.Cell{Row: 1, Col: 2}))
		assert.InDelta(t, 0.1, p.BreakTimer, 1e-9)
	})

	t.Run("nothing to break", func(t *testing.T) {
		stage := createTestStage(6, 6)
		blocks := NewBlockSystem(stage, createTestPlayerConfig())
		p := entity.NewPlayer(entity.Cell{Row: 1, Col: 1}, 100, 3)

		assert.False(t, blocks.Break(p, entity.Cell{Row: 1, Col: 2}))
		assert.Equal(t, 0.0, p.BreakTimer)
	})
}
