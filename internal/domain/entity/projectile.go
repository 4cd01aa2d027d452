package entity

// Projectile is a horizontally travelling shot fired by an enemy
type Projectile struct {
	ID       EntityID
	Position GridPosition
	Heading  Direction
	Active   bool

	// Fractional microsteps not yet applied
	RemX float64

	Speed  float64 // microsteps per tick
	Damage int
}

// NewProjectile creates an active projectile at the shooter's position
func NewProjectile(id EntityID, pos GridPosition, heading Direction, speed float64, damage int) *Projectile {
	return &Projectile{
		ID:       id,
		Position: pos,
		Heading:  heading,
		Active:   true,
		Speed:    speed,
		Damage:   damage,
	}
}

// TakeSteps adds this tick's travel to the remainder and returns the whole
// microsteps ready to apply, keeping the fraction for later ticks
func (p *Projectile) TakeSteps() int {
	p.RemX += p.Speed
	steps := int(p.RemX)
	p.RemX -= float64(steps)
	return steps
}
