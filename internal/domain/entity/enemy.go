package entity

// ChaseState is the behaviour state of a chasing enemy
type ChaseState int

const (
	ChaseIdle ChaseState = iota
	ChasePatrol
	ChaseTrace
	ChaseShoot
	ChaseJumpOverWall
)

// String returns the string representation of the chase state
func (s ChaseState) String() string {
	switch s {
	case ChaseIdle:
		return "Idle"
	case ChasePatrol:
		return "Patrol"
	case ChaseTrace:
		return "Trace"
	case ChaseShoot:
		return "Shoot"
	case ChaseJumpOverWall:
		return "JumpOverWall"
	default:
		return "Unknown"
	}
}

// Glutton is a chasing enemy that patrols, traces the player along paths,
// hops over walls and fires projectiles along its row
type Glutton struct {
	ID     EntityID
	Active bool
	Body   Kinematics

	Spawn Cell
	State ChaseState

	// Heading for horizontal steps; Y > 0 asks for a jump
	Heading Direction
	// End of the straight run currently being walked
	Destination Cell
	// Landing cell past the wall being hopped over
	WallTarget Cell

	Health    int
	MaxHealth int

	// Frames spent in the current state
	Counter   int
	ShotTimer float64
}

// NewGlutton creates a glutton standing on the given cell
func NewGlutton(id EntityID, cell Cell, health int) *Glutton {
	return &Glutton{
		ID:          id,
		Active:      true,
		Body:        Kinematics{Position: NewGridPosition(cell)},
		Spawn:       cell,
		State:       ChaseIdle,
		Heading:     DirRight,
		Destination: cell,
		WallTarget:  cell,
		Health:      health,
		MaxHealth:   health,
	}
}

// SetChaseState switches state and restarts the state counter
func (g *Glutton) SetChaseState(state ChaseState) {
	g.State = state
	g.Counter = 0
}

// TakeDamage reduces health and removes the glutton from play at zero.
// It reports whether this hit defeated it.
func (g *Glutton) TakeDamage(damage int) bool {
	if !g.Active {
		return false
	}
	g.Health -= damage
	if g.Health > 0 {
		return false
	}
	g.Health = 0
	g.Active = false
	return true
}
