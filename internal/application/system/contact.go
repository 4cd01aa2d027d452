package system

import (
	"github.com/solarlune/resolv"

	"github.com/younwookim/gridrun/internal/domain/entity"
)

const (
	tagPlayer     = "player"
	tagGlutton    = "glutton"
	tagProjectile = "projectile"
	tagArrow      = "arrow"
)

// ContactReport lists what the player touched this frame
type ContactReport struct {
	Gluttons    []*entity.Glutton
	Projectiles []*entity.Projectile
}

// Empty reports whether nothing was touched
func (r ContactReport) Empty() bool {
	return len(r.Gluttons) == 0 && len(r.Projectiles) == 0
}

// ContactSystem finds overlaps between the player and other actors. Each
// actor occupies one tile-sized box at its microstep position; the resolv
// space is laid out in microsteps with y growing down.
type ContactSystem struct {
	grid    entity.TileGrid
	space   *resolv.Space
	objects []*resolv.Object
}

// NewContactSystem creates a contact system sized to the grid
func NewContactSystem(grid entity.TileGrid) *ContactSystem {
	sx, sy := grid.StepsPerTileX(), grid.StepsPerTileY()
	return &ContactSystem{
		grid:  grid,
		space: resolv.NewSpace(grid.NumTilesX()*sx, grid.NumTilesY()*sy, sx, sy),
	}
}

// Resolve rebuilds the space from the current positions and returns the
// actors overlapping the player
func (c *ContactSystem) Resolve(player *entity.Player, gluttons []*entity.Glutton, projectiles []*entity.Projectile) ContactReport {
	c.reset()

	playerObj := c.add(player.Body.Position, player, tagPlayer)
	for _, g := range gluttons {
		if g.Active {
			c.add(g.Body.Position, g, tagGlutton)
		}
	}
	for _, p := range projectiles {
		if p.Active {
			c.add(p.Position, p, tagProjectile)
		}
	}

	var report ContactReport
	for _, tag := range []string{tagGlutton, tagProjectile} {
		check := playerObj.Check(0, 0, tag)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			if !c.overlaps(playerObj, obj) {
				continue
			}
			switch actor := obj.Data.(type) {
			case *entity.Glutton:
				report.Gluttons = append(report.Gluttons, actor)
			case *entity.Projectile:
				report.Projectiles = append(report.Projectiles, actor)
			}
		}
	}
	return report
}

// ArrowHit pairs a player arrow with the glutton it struck
type ArrowHit struct {
	Arrow   *entity.Arrow
	Glutton *entity.Glutton
}

// ResolveArrows returns, for each arrow in flight, the first live glutton
// it overlaps
func (c *ContactSystem) ResolveArrows(arrows []*entity.Arrow, gluttons []*entity.Glutton) []ArrowHit {
	c.reset()

	for _, g := range gluttons {
		if g.Active {
			c.add(g.Body.Position, g, tagGlutton)
		}
	}

	var hits []ArrowHit
	for _, a := range arrows {
		if !a.Active {
			continue
		}
		arrowObj := c.add(a.Position, a, tagArrow)
		check := arrowObj.Check(0, 0, tagGlutton)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			g, ok := obj.Data.(*entity.Glutton)
			if ok && g.Active && c.overlaps(arrowObj, obj) {
				hits = append(hits, ArrowHit{Arrow: a, Glutton: g})
				break
			}
		}
	}
	return hits
}

func (c *ContactSystem) add(pos entity.GridPosition, data any, tag string) *resolv.Object {
	x, y := c.spacePosition(pos)
	obj := resolv.NewObject(x, y, float64(c.grid.StepsPerTileX()), float64(c.grid.StepsPerTileY()), tag)
	obj.Data = data
	c.space.Add(obj)
	c.objects = append(c.objects, obj)
	return obj
}

func (c *ContactSystem) reset() {
	if len(c.objects) > 0 {
		c.space.Remove(c.objects...)
	}
	c.objects = c.objects[:0]
}

// spacePosition converts a grid position to the top-left corner of its box
func (c *ContactSystem) spacePosition(pos entity.GridPosition) (float64, float64) {
	sx, sy := c.grid.StepsPerTileX(), c.grid.StepsPerTileY()
	x := pos.Cell.Col*sx + pos.StepX
	bottom := pos.Cell.Row*sy + pos.StepY
	y := c.grid.NumTilesY()*sy - bottom - sy
	return float64(x), float64(y)
}

// overlaps is the exact box test; touching edges do not count
func (c *ContactSystem) overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
