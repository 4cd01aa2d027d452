package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gridrun/internal/domain/entity"
)

func TestHeuristics(t *testing.T) {
	a := entity.Cell{Row: 0, Col: 0}
	b := entity.Cell{Row: 3, Col: 4}

	assert.InDelta(t, 5.0, Euclidean(a, b), 1e-9)
	assert.InDelta(t, 7.0, Manhattan(a, b), 1e-9)
	assert.Equal(t, 0.0, Euclidean(b, b))
}

func TestPathPlanner_StraightLine(t *testing.T) {
	planner := NewPathPlanner(createTestStage(6, 6))

	path := planner.FindPath(entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 3, Col: 0}, Euclidean, 10)

	assert.Equal(t, []entity.Cell{
		{Row: 1, Col: 0},
		{Row: 2, Col: 0},
		{Row: 3, Col: 0},
	}, path)
}

func TestPathPlanner_StartIsGoal(t *testing.T) {
	planner := NewPathPlanner(createTestStage(6, 6))

	assert.Empty(t, planner.FindPath(entity.Cell{Row: 2, Col: 2}, entity.Cell{Row: 2, Col: 2}, Euclidean, 10))
}

func TestPathPlanner_AroundWall(t *testing.T) {
	stage := createTestStage(5, 5)
	for row := 0; row < 4; row++ {
		stage.SetTileValue(row, 2, entity.TileSolid)
	}
	planner := NewPathPlanner(stage)

	start := entity.Cell{Row: 0, Col: 0}
	goal := entity.Cell{Row: 0, Col: 4}
	path := planner.FindPath(start, goal, Manhattan, 100)

	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[len(path)-1])

	prev := start
	for _, c := range path {
		assert.False(t, entity.IsSolid(stage.GetTileValue(c.Row, c.Col)), "path crosses %v", c)
		assert.Equal(t, 1.0, Manhattan(prev, c), "non-adjacent step %v -> %v", prev, c)
		prev = c
	}
	assert.Contains(t, path, entity.Cell{Row: 4, Col: 2})
}

func TestPathPlanner_UnreachableGoal(t *testing.T) {
	stage := createTestStage(7, 7)
	// Box in the goal at (3,5)
	for _, c := range []entity.Cell{{Row: 2, Col: 5}, {Row: 4, Col: 5}, {Row: 3, Col: 4}, {Row: 3, Col: 6}} {
		stage.SetTileValue(c.Row, c.Col, entity.TileSolid)
	}
	planner := NewPathPlanner(stage)

	goal := entity.Cell{Row: 3, Col: 5}
	path := planner.FindPath(entity.Cell{Row: 3, Col: 0}, goal, Euclidean, 200)

	require.NotEmpty(t, path)
	assert.NotContains(t, path, goal)
	// Ends on a corner diagonal to the boxed goal
	assert.InDelta(t, 1.4142, Euclidean(path[len(path)-1], goal), 1e-3)
}

func TestPathPlanner_DepthLimit(t *testing.T) {
	planner := NewPathPlanner(createTestStage(8, 8))

	path := planner.FindPath(entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 0, Col: 5}, Euclidean, 1)

	assert.Equal(t, []entity.Cell{{Row: 0, Col: 1}}, path)
}

func TestPathPlanner_Diagonal(t *testing.T) {
	t.Run("takes diagonal steps when enabled", func(t *testing.T) {
		planner := NewPathPlanner(createTestStage(6, 6))
		planner.SetDiagonalMovement(true)

		path := planner.FindPath(entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 3, Col: 3}, Euclidean, 20)

		assert.Equal(t, []entity.Cell{
			{Row: 1, Col: 1},
			{Row: 2, Col: 2},
			{Row: 3, Col: 3},
		}, path)
	})

	t.Run("never cuts a corner", func(t *testing.T) {
		stage := createTestStage(6, 6)
		stage.SetTileValue(0, 1, entity.TileSolid)
		planner := NewPathPlanner(stage)
		planner.SetDiagonalMovement(true)

		path := planner.FindPath(entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 1, Col: 1}, Euclidean, 20)

		assert.Equal(t, []entity.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, path)
	})

	t.Run("disabled by default", func(t *testing.T) {
		planner := NewPathPlanner(createTestStage(6, 6))

		path := planner.FindPath(entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 1, Col: 1}, Euclidean, 20)

		assert.Len(t, path, 2)
	})
}

func TestCollapsePath(t *testing.T) {
	start := entity.Cell{Row: 0, Col: 0}

	t.Run("stops before the first turn", func(t *testing.T) {
		path := []entity.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}

		dir, dest := CollapsePath(start, path)

		assert.Equal(t, entity.Direction{X: 0, Y: 1}, dir)
		assert.Equal(t, entity.Cell{Row: 2, Col: 0}, dest)
	})

	t.Run("runs to the end of a straight path", func(t *testing.T) {
		path := []entity.Cell{{Row: 0, Col: -1}, {Row: 0, Col: -2}, {Row: 0, Col: -3}}

		dir, dest := CollapsePath(start, path)

		assert.Equal(t, entity.DirLeft, dir)
		assert.Equal(t, entity.Cell{Row: 0, Col: -3}, dest)
	})

	t.Run("empty path means no movement", func(t *testing.T) {
		dir, dest := CollapsePath(start, nil)

		assert.True(t, dir.IsZero())
		assert.Equal(t, start, dest)
	})

	t.Run("path of only the start", func(t *testing.T) {
		dir, dest := CollapsePath(start, []entity.Cell{start})

		assert.Equal(t, entity.DirNone, dir)
		assert.Equal(t, start, dest)
	})
}
