package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gridrun/internal/domain/entity"
)

func createTestPlayerSystem(stage *entity.Stage) *PlayerSystem {
	cfg := createTestPlayerConfig()
	mover := NewAxisMover(stage)
	return NewPlayerSystem(
		cfg,
		createTestPhysicsConfig(),
		mover,
		NewVerticalPhysics(mover, createTestPhysicsConfig()),
		NewBlockSystem(stage, cfg),
		NewPickupSystem(stage, cfg),
		createTestBow(stage),
	)
}

// createFloorStage returns a stage with a solid floor on row 0
func createFloorStage(width, height int) *entity.Stage {
	stage := createTestStage(width, height)
	for col := 0; col < width; col++ {
		stage.SetTileValue(0, col, entity.TileSolid)
	}
	return stage
}

const frame = 1.0 / 60

func TestPlayerSystem_Walk(t *testing.T) {
	sys := createTestPlayerSystem(createFloorStage(10, 6))
	p := entity.NewPlayer(entity.Cell{Row: 1, Col: 2}, 100, 3)

	sys.Update(p, InputState{Left: true}, frame, nil)

	assert.Equal(t, entity.DirLeft, p.Facing)
	assert.Equal(t, 1, p.Body.Position.Cell.Col)
	assert.Equal(t, 7, p.Body.Position.StepX)

	t.Run("speed potion doubles the stride", func(t *testing.T) {
		p := entity.NewPlayer(entity.Cell{Row: 1, Col: 2}, 100, 3)
		p.SpeedTimer = 5

		sys.Update(p, InputState{Right: true}, frame, nil)

		assert.Equal(t, 2, p.Body.Position.StepX)
		assert.InDelta(t, 5-frame, p.SpeedTimer, 1e-9)
	})
}

func TestPlayerSystem_WalkOffLedgeFalls(t *testing.T) {
	stage := createTestStage(10, 6)
	stage.SetTileValue(2, 3, entity.TileSolid)
	sys := createTestPlayerSystem(stage)
	p := entity.NewPlayer(entity.Cell{Row: 3, Col: 3}, 100, 3)
	p.Body.Position.StepX = 7

	sys.Update(p, InputState{Right: true}, frame, nil)

	assert.Equal(t, 4, p.Body.Position.Cell.Col)
	assert.Equal(t, entity.MotionFall, p.Body.State)
}

func TestPlayerSystem_Jump(t *testing.T) {
	sys := createTestPlayerSystem(createFloorStage(10, 12))

	t.Run("regular jump", func(t *testing.T) {
		p := entity.NewPlayer(entity.Cell{Row: 1, Col: 2}, 100, 3)

		sys.Update(p, InputState{JumpPressed: true}, frame, nil)

		require.Equal(t, entity.MotionJump, p.Body.State)
		assert.Equal(t, 1, p.Body.JumpCount)
		assert.Less(t, p.Body.Velocity, 24.0)
		assert.Greater(t, p.Body.Velocity, 20.0)
	})

	t.Run("high jump spends a charge", func(t *testing.T) {
		p := entity.NewPlayer(entity.Cell{Row: 1, Col: 2}, 100, 3)
		p.HighJumpCharges = 2

		sys.Update(p, InputState{JumpPressed: true}, frame, nil)

		assert.Equal(t, 1, p.HighJumpCharges)
		assert.Greater(t, p.Body.Velocity, 30.0)
	})

	t.Run("no charge spent on a refused jump", func(t *testing.T) {
		p := entity.NewPlayer(entity.Cell{Row: 5, Col: 2}, 100, 3)
		p.Body.SetState(entity.MotionJump)
		p.Body.JumpCount = 2
		p.Body.Velocity = 10
		p.HighJumpCharges = 1

		sys.Update(p, InputState{JumpPressed: true}, frame, nil)

		assert.Equal(t, 1, p.HighJumpCharges)
		assert.Equal(t, 2, p.Body.JumpCount)
	})
}

func TestPlayerSystem_BuildAndBreak(t *testing.T) {
	stage := createFloorStage(10, 6)
	sys := createTestPlayerSystem(stage)
	p := entity.NewPlayer(entity.Cell{Row: 1, Col: 2}, 100, 3)

	sys.Update(p, InputState{Build: true}, frame, nil)
	assert.Equal(t, entity.TileSolid, stage.GetTileValue(1, 3))

	sys.Update(p, InputState{Break: true}, frame, nil)
	assert.Equal(t, entity.TileCracked, stage.GetTileValue(1, 3))

	t.Run("dig the floor", func(t *testing.T) {
		p.BreakTimer = 0
		sys.Update(p, InputState{Down: true, Break: true}, frame, nil)
		assert.Equal(t, entity.TileCracked, stage.GetTileValue(0, 2))
	})

	t.Run("no block on another actor", func(t *testing.T) {
		sys.Update(p, InputState{Left: true, Build: true}, frame, []entity.Cell{{Row: 1, Col: 0}})
		assert.Equal(t, entity.TileEmpty, stage.GetTileValue(1, 0))
	})
}

func TestPlayerSystem_PicksUp(t *testing.T) {
	stage := createFloorStage(10, 6)
	stage.SetTileValue(1, 3, entity.TileLevelExit)
	sys := createTestPlayerSystem(stage)
	p := entity.NewPlayer(entity.Cell{Row: 1, Col: 2}, 100, 3)
	p.Body.Position.StepX = 7

	event := sys.Update(p, InputState{Right: true}, frame, nil)

	assert.Equal(t, EventStageClear, event)
	assert.Equal(t, 3, p.Body.Position.Cell.Col)
}

func TestPlayerSystem_DrawAndLoose(t *testing.T) {
	sys := createTestPlayerSystem(createFloorStage(20, 6))
	p := entity.NewPlayer(entity.Cell{Row: 1, Col: 2}, 100, 3)

	sys.Update(p, InputState{}, frame, nil)
	assert.Empty(t, sys.bow.Arrows())

	sys.Update(p, InputState{Fire: true}, frame, nil)
	sys.Update(p, InputState{Fire: true}, frame, nil)
	assert.InDelta(t, 1+frame, p.BowCharge, 1e-9)
	assert.Empty(t, sys.bow.Arrows())

	sys.Update(p, InputState{}, frame, nil)

	require.Equal(t, 1, sys.bow.ActiveCount())
	a := sys.bow.Arrows()[0]
	assert.Equal(t, entity.DirRight, a.Heading)
	assert.InDelta(t, 1+frame, a.Charge, 1e-9)
	assert.Zero(t, p.BowCharge)
}
