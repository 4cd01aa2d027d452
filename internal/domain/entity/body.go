package entity

// Player is the controllable actor
type Player struct {
	Body   Kinematics
	Spawn  Cell
	Facing Direction

	Health    int
	MaxHealth int
	Lives     int

	// Pickup effects
	SpeedTimer      float64 // seconds of doubled walking speed left
	HighJumpCharges int
	HasShovel       bool
	HasStrength     bool

	// Charge of the drawn bow; zero when not drawn
	BowCharge float64
	Kills     int

	// Seconds left before the next break hit lands
	BreakTimer float64
}

// NewPlayer creates a player standing on its spawn cell
func NewPlayer(spawn Cell, maxHealth, lives int) *Player {
	return &Player{
		Body:      Kinematics{Position: NewGridPosition(spawn)},
		Spawn:     spawn,
		Facing:    DirRight,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Lives:     lives,
	}
}

// Respawn puts the player back on its spawn cell at rest with full health
func (p *Player) Respawn() {
	p.Body = Kinematics{Position: NewGridPosition(p.Spawn)}
	p.Health = p.MaxHealth
	p.BreakTimer = 0
	p.BowCharge = 0
}

// TakeDamage reduces health and reports whether the player is out of health
func (p *Player) TakeDamage(damage int) bool {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// IsSpeedBoosted reports whether the speed potion is still active
func (p *Player) IsSpeedBoosted() bool {
	return p.SpeedTimer > 0
}
