package system

import (
	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// PlayerEvent is an outcome of the player's frame that the session acts on
type PlayerEvent int

const (
	EventNone PlayerEvent = iota
	EventPickup
	EventStageClear
	EventLost
)

// String returns the string representation of the event
func (e PlayerEvent) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventPickup:
		return "Pickup"
	case EventStageClear:
		return "StageClear"
	case EventLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// PickupSystem applies the tile under the player
type PickupSystem struct {
	grid entity.TileGrid
	cfg  config.PlayerConfig
}

// NewPickupSystem creates a new pickup system
func NewPickupSystem(grid entity.TileGrid, cfg config.PlayerConfig) *PickupSystem {
	return &PickupSystem{grid: grid, cfg: cfg}
}

// Interact consumes or reacts to the tile the player stands in
func (s *PickupSystem) Interact(p *entity.Player) PlayerEvent {
	c := p.Body.Position.Cell
	v := s.grid.GetTileValue(c.Row, c.Col)

	switch v {
	case entity.TileHealthPotion:
		p.Heal(s.cfg.HealAmount)
	case entity.TileSpeedPotion:
		p.SpeedTimer = s.cfg.SpeedDuration
	case entity.TileStrengthPotion:
		p.HasStrength = true
	case entity.TileJumpPotion:
		p.HighJumpCharges += s.cfg.HighJumpCharges
	case entity.TileExtraLife:
		p.Lives++
	case entity.TileShovel:
		p.HasShovel = true
	case entity.TileHazard:
		p.TakeDamage(s.cfg.HazardDamage)
		return EventNone
	case entity.TileLevelExit:
		return EventStageClear
	case entity.TileLoseMarker:
		return EventLost
	default:
		return EventNone
	}

	s.grid.SetTileValue(c.Row, c.Col, entity.TileEmpty)
	return EventPickup
}
