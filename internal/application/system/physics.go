package system

import (
	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// Integrate advances a constant-acceleration body by dt and returns the
// displacement over the interval and the velocity at its end
func Integrate(velocity, acceleration, dt float64) (displacement, finalVelocity float64) {
	finalVelocity = velocity + acceleration*dt
	displacement = velocity*dt + 0.5*acceleration*dt*dt
	return displacement, finalVelocity
}

// VerticalPhysics drives the Idle/Jump/Fall machine of an actor and
// reconciles its vertical motion with the grid
type VerticalPhysics struct {
	mover    *AxisMover
	gravity  float64
	maxJumps int
}

// NewVerticalPhysics creates the vertical physics system
func NewVerticalPhysics(mover *AxisMover, cfg config.PhysicsConfig) *VerticalPhysics {
	return &VerticalPhysics{
		mover:    mover,
		gravity:  cfg.Gravity,
		maxJumps: cfg.MaxJumps,
	}
}

// Jump starts a jump with the given upward velocity. Grounded actors can
// always jump; airborne ones only while jump boosts remain.
func (p *VerticalPhysics) Jump(k *entity.Kinematics, velocity float64) bool {
	if k.State != entity.MotionIdle && k.JumpCount >= p.maxJumps {
		return false
	}
	k.JumpCount++
	k.SetState(entity.MotionJump)
	k.Velocity = velocity
	return true
}

// CheckLedge drops an idle actor into Fall when nothing is under it.
// Call it after the actor's horizontal move.
func (p *VerticalPhysics) CheckLedge(k *entity.Kinematics) bool {
	if k.State != entity.MotionIdle || !p.mover.IsMidAir(k.Position) {
		return false
	}
	k.SetState(entity.MotionFall)
	return true
}

// Tick integrates one frame of vertical motion
func (p *VerticalPhysics) Tick(k *entity.Kinematics, dt float64) {
	if dt < 0 {
		dt = 0
	}

	switch k.State {
	case entity.MotionJump:
		disp, v := Integrate(k.Velocity, p.gravity, dt)
		k.Velocity = v
		if disp <= 0 {
			k.SetState(entity.MotionFall)
			return
		}
		p.rise(k, p.toSteps(disp))
	case entity.MotionFall:
		disp, v := Integrate(k.Velocity, p.gravity, dt)
		k.Velocity = v
		if disp >= 0 {
			return
		}
		p.fall(k, p.toSteps(-disp))
	}
}

// rise moves up and validates every row crossed. The first blocked row
// stops the jump where it is, aligned to the grid.
func (p *VerticalPhysics) rise(k *entity.Kinematics, steps int) {
	pos := &k.Position
	from := pos.Cell.Row
	pos.AdvanceAxis(entity.AxisY, float64(steps), p.mover.grid.StepsPerTileY())
	pos.ClampToBounds(entity.AxisY, p.mover.grid.NumTilesY())
	to := pos.Cell.Row

	for row := from; row <= to; row++ {
		pos.Cell.Row = row
		if !p.mover.CheckPosition(pos, entity.DirUp) {
			pos.StepY = 0
			k.SetState(entity.MotionFall)
			return
		}
	}
}

// fall moves down and validates every row crossed. The first blocked row
// lands the actor on the row above it.
func (p *VerticalPhysics) fall(k *entity.Kinematics, steps int) {
	pos := &k.Position
	from := pos.Cell.Row
	pos.AdvanceAxis(entity.AxisY, -float64(steps), p.mover.grid.StepsPerTileY())
	pos.ClampToBounds(entity.AxisY, p.mover.grid.NumTilesY())
	to := pos.Cell.Row

	for row := from; row >= to; row-- {
		pos.Cell.Row = row
		if !p.mover.CheckPosition(pos, entity.DirDown) {
			if row != from {
				pos.Cell.Row = row + 1
			}
			p.land(k)
			return
		}
	}

	// The bottom edge of the grid is a floor
	if pos.Cell.Row == 0 && pos.StepY == 0 {
		p.land(k)
	}
}

func (p *VerticalPhysics) land(k *entity.Kinematics) {
	k.Position.StepY = 0
	k.JumpCount = 0
	k.SetState(entity.MotionIdle)
}

func (p *VerticalPhysics) toSteps(displacement float64) int {
	return int(displacement / entity.MicroStepSizeY(p.mover.grid))
}
