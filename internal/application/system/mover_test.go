package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gridrun/internal/domain/entity"
)

// createTestStage returns an empty single-level stage with 8 microsteps
// per tile and one world unit per tile
func createTestStage(width, height int) *entity.Stage {
	return entity.NewStage(width, height, 1, 8, 8, 1, 1)
}

func TestAxisMover_TryMoveRightIntoWall(t *testing.T) {
	stage := createTestStage(10, 10)
	stage.SetTileValue(5, 6, entity.TileSolid)
	mover := NewAxisMover(stage)

	pos := entity.NewGridPosition(entity.Cell{Row: 5, Col: 5})
	for i := 1; i <= 7; i++ {
		out := mover.TryMove(&pos, entity.DirRight, 1)
		require.True(t, out.Applied, "move %d", i)
		assert.Equal(t, 5, pos.Cell.Col)
		assert.Equal(t, i, pos.StepX)
	}

	out := mover.TryMove(&pos, entity.DirRight, 1)
	assert.False(t, out.Applied)
	assert.Equal(t, entity.Cell{Row: 5, Col: 5}, pos.Cell)
	assert.Equal(t, 0, pos.StepX)
	assert.Equal(t, 0, pos.StepY)
}

func TestAxisMover_LongStrideStopsAtWall(t *testing.T) {
	tests := []struct {
		name  string
		wall  entity.Cell
		dir   entity.Direction
		steps float64
	}{
		{"right two tiles, wall one away", entity.Cell{Row: 5, Col: 6}, entity.DirRight, 16},
		{"right with a remainder", entity.Cell{Row: 5, Col: 6}, entity.DirRight, 20},
		{"left three tiles, wall two away", entity.Cell{Row: 5, Col: 3}, entity.DirLeft, 24},
		{"down through a floor", entity.Cell{Row: 4, Col: 5}, entity.DirDown, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := createTestStage(10, 10)
			stage.SetTileValue(tt.wall.Row, tt.wall.Col, entity.TileSolid)
			mover := NewAxisMover(stage)

			pos := entity.NewGridPosition(entity.Cell{Row: 5, Col: 5})
			out := mover.TryMove(&pos, tt.dir, tt.steps)

			assert.False(t, out.Applied)
			assert.Equal(t, entity.NewGridPosition(entity.Cell{Row: 5, Col: 5}), pos)
		})
	}
}

func TestAxisMover_LongStrideInOpenSpace(t *testing.T) {
	stage := createTestStage(10, 10)
	mover := NewAxisMover(stage)

	pos := entity.NewGridPosition(entity.Cell{Row: 5, Col: 1})
	out := mover.TryMove(&pos, entity.DirRight, 20)

	require.True(t, out.Applied)
	assert.Equal(t, entity.GridPosition{Cell: entity.Cell{Row: 5, Col: 3}, StepX: 4}, pos)

	out = mover.TryMove(&pos, entity.DirLeft, 12)

	require.True(t, out.Applied)
	assert.Equal(t, entity.NewGridPosition(entity.Cell{Row: 5, Col: 2}), pos)
}

func TestAxisMover_BlockedMoveIsIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		wall  entity.Cell
		dir   entity.Direction
		steps float64
	}{
		{"left into wall", entity.Cell{Row: 5, Col: 4}, entity.DirLeft, 1},
		{"left with big stride", entity.Cell{Row: 5, Col: 4}, entity.DirLeft, 3},
		{"up into ceiling", entity.Cell{Row: 6, Col: 5}, entity.DirUp, 1},
		{"down into floor", entity.Cell{Row: 4, Col: 5}, entity.DirDown, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := createTestStage(10, 10)
			stage.SetTileValue(tt.wall.Row, tt.wall.Col, entity.TileSolid)
			mover := NewAxisMover(stage)

			pos := entity.NewGridPosition(entity.Cell{Row: 5, Col: 5})
			want := pos
			for i := 0; i < 5; i++ {
				out := mover.TryMove(&pos, tt.dir, tt.steps)
				assert.False(t, out.Applied)
				assert.Equal(t, want, pos)
			}
		})
	}
}

func TestAxisMover_RightEdgeRelaxation(t *testing.T) {
	stage := createTestStage(10, 10)
	mover := NewAxisMover(stage)

	pos := entity.NewGridPosition(entity.Cell{Row: 2, Col: 9})
	for i := 0; i < 20; i++ {
		out := mover.TryMove(&pos, entity.DirRight, 1)
		require.True(t, out.Applied)
		assert.Equal(t, 9, pos.Cell.Col)
		assert.Equal(t, 0, pos.StepX)
	}
}

func TestAxisMover_TopEdgeRelaxation(t *testing.T) {
	stage := createTestStage(10, 10)
	mover := NewAxisMover(stage)

	pos := entity.NewGridPosition(entity.Cell{Row: 9, Col: 3})
	out := mover.TryMove(&pos, entity.DirUp, 5)
	assert.True(t, out.Applied)
	assert.Equal(t, 9, pos.Cell.Row)
	assert.Equal(t, 0, pos.StepY)
}

func TestAxisMover_LeftEdgeClamps(t *testing.T) {
	stage := createTestStage(10, 10)
	mover := NewAxisMover(stage)

	pos := entity.NewGridPosition(entity.Cell{Row: 2, Col: 0})
	mover.TryMove(&pos, entity.DirLeft, 1)
	assert.Equal(t, 0, pos.Cell.Col)
	assert.Equal(t, 0, pos.StepX)
}

func TestAxisMover_ZeroDirection(t *testing.T) {
	stage := createTestStage(10, 10)
	mover := NewAxisMover(stage)

	pos := entity.NewGridPosition(entity.Cell{Row: 2, Col: 2})
	out := mover.TryMove(&pos, entity.DirNone, 4)
	assert.False(t, out.Applied)
	assert.Equal(t, entity.NewGridPosition(entity.Cell{Row: 2, Col: 2}), pos)
}

func TestAxisMover_CheckPositionStraddling(t *testing.T) {
	stage := createTestStage(10, 10)
	stage.SetTileValue(4, 6, entity.TileSolid)
	mover := NewAxisMover(stage)

	t.Run("down checks the next column while straddling", func(t *testing.T) {
		pos := entity.GridPosition{Cell: entity.Cell{Row: 4, Col: 5}, StepX: 3}
		assert.False(t, mover.CheckPosition(&pos, entity.DirDown))
	})

	t.Run("down ignores the next column when aligned", func(t *testing.T) {
		pos := entity.GridPosition{Cell: entity.Cell{Row: 4, Col: 5}}
		assert.True(t, mover.CheckPosition(&pos, entity.DirDown))
	})

	t.Run("left checks the row above while straddling", func(t *testing.T) {
		pos := entity.GridPosition{Cell: entity.Cell{Row: 3, Col: 6}, StepY: 2}
		assert.False(t, mover.CheckPosition(&pos, entity.DirLeft))
	})

	t.Run("up checks the row above the head", func(t *testing.T) {
		pos := entity.GridPosition{Cell: entity.Cell{Row: 3, Col: 6}}
		assert.False(t, mover.CheckPosition(&pos, entity.DirUp))
	})
}

func TestAxisMover_IsMidAir(t *testing.T) {
	stage := createTestStage(10, 10)
	mover := NewAxisMover(stage)

	pos := entity.NewGridPosition(entity.Cell{Row: 3, Col: 4})
	assert.True(t, mover.IsMidAir(pos))

	stage.SetTileValue(2, 4, entity.TileSolid)
	assert.False(t, mover.IsMidAir(pos))

	t.Run("bottom row is never mid-air", func(t *testing.T) {
		assert.False(t, mover.IsMidAir(entity.NewGridPosition(entity.Cell{Row: 0, Col: 1})))
	})

	t.Run("straddling two columns is never mid-air", func(t *testing.T) {
		p := entity.GridPosition{Cell: entity.Cell{Row: 5, Col: 1}, StepX: 4}
		assert.False(t, mover.IsMidAir(p))
	})

	t.Run("pickup below is not empty", func(t *testing.T) {
		stage.SetTileValue(4, 7, entity.TileHealthPotion)
		assert.False(t, mover.IsMidAir(entity.NewGridPosition(entity.Cell{Row: 5, Col: 7})))
	})
}
