package entity

// Arrow is a player shot. Its speed, reach and damage were fixed by the
// bow's charge when it was loosed.
type Arrow struct {
	Projectile
	Charge float64

	// Column at which the arrow has flown its full reach
	StopCol int
}

// NewArrow creates an active arrow that flies reach tiles from pos
func NewArrow(id EntityID, pos GridPosition, heading Direction, charge, speed float64, reach, damage int) *Arrow {
	return &Arrow{
		Projectile: *NewProjectile(id, pos, heading, speed, damage),
		Charge:     charge,
		StopCol:    pos.Cell.Col + heading.X*reach,
	}
}

// Spent reports whether the arrow has reached its stop column
func (a *Arrow) Spent() bool {
	if a.Heading.X < 0 {
		return a.Position.Cell.Col <= a.StopCol
	}
	return a.Position.Cell.Col >= a.StopCol
}
