package system

import (
	"container/heap"
	"math"

	"github.com/younwookim/gridrun/internal/domain/entity"
)

// Heuristic estimates the remaining cost between two cells
type Heuristic func(a, b entity.Cell) float64

// Euclidean is the straight-line distance between cell centres
func Euclidean(a, b entity.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Manhattan is the 4-connected grid distance
func Manhattan(a, b entity.Cell) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

type pathStep struct {
	row, col int
	cost     float64
	diagonal bool
}

var pathStepOffsets = [...]pathStep{
	{row: 1, col: 0, cost: 1},
	{row: 0, col: 1, cost: 1},
	{row: -1, col: 0, cost: 1},
	{row: 0, col: -1, cost: 1},
	{row: 1, col: 1, cost: math.Sqrt2, diagonal: true},
	{row: 1, col: -1, cost: math.Sqrt2, diagonal: true},
	{row: -1, col: 1, cost: math.Sqrt2, diagonal: true},
	{row: -1, col: -1, cost: math.Sqrt2, diagonal: true},
}

// PathPlanner runs a bounded best-first search over walkable tiles
type PathPlanner struct {
	grid     entity.TileGrid
	diagonal bool
}

// NewPathPlanner creates a 4-connected planner over the grid
func NewPathPlanner(grid entity.TileGrid) *PathPlanner {
	return &PathPlanner{grid: grid}
}

// SetDiagonalMovement allows diagonal steps. A diagonal step is only taken
// when both orthogonal neighbours it cuts past are walkable.
func (p *PathPlanner) SetDiagonalMovement(enabled bool) {
	p.diagonal = enabled
}

type pathNode struct {
	cell   entity.Cell
	g      float64
	h      float64
	f      float64
	index  int
	parent *pathNode
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].f == pq[j].f {
		return pq[i].h < pq[j].h
	}
	return pq[i].f < pq[j].f
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	item := x.(*pathNode)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// FindPath searches from start toward goal expanding at most maxDepth
// nodes. It returns the cells after start up to the goal, or up to the
// expanded cell closest to the goal when the goal was not reached. An empty
// path means there is nowhere better to go.
func (p *PathPlanner) FindPath(start, goal entity.Cell, heuristic Heuristic, maxDepth int) []entity.Cell {
	if heuristic == nil {
		heuristic = Euclidean
	}
	if start == goal || maxDepth <= 0 {
		return nil
	}

	open := &pathQueue{}
	heap.Init(open)
	h := heuristic(start, goal)
	heap.Push(open, &pathNode{cell: start, h: h, f: h})
	gScore := map[entity.Cell]float64{start: 0}
	closed := make(map[entity.Cell]struct{})

	var best *pathNode
	expanded := 0
	for open.Len() > 0 && expanded < maxDepth {
		current := heap.Pop(open).(*pathNode)
		if _, seen := closed[current.cell]; seen {
			continue
		}
		closed[current.cell] = struct{}{}
		expanded++

		if current.cell == goal {
			return reconstructPath(current)
		}
		if best == nil || current.h < best.h || (current.h == best.h && current.g < best.g) {
			best = current
		}

		for _, step := range pathStepOffsets {
			if step.diagonal && !p.canTraverseDiagonal(current.cell, step) {
				continue
			}
			next := entity.Cell{Row: current.cell.Row + step.row, Col: current.cell.Col + step.col}
			if !p.walkable(next) {
				continue
			}
			if _, seen := closed[next]; seen {
				continue
			}
			tentativeG := current.g + step.cost
			if prev, ok := gScore[next]; ok && tentativeG >= prev {
				continue
			}
			gScore[next] = tentativeG
			nh := heuristic(next, goal)
			heap.Push(open, &pathNode{
				cell:   next,
				g:      tentativeG,
				h:      nh,
				f:      tentativeG + nh,
				parent: current,
			})
		}
	}

	// Out of budget: the frontier may hold the goal or cells closer to it
	for _, n := range *open {
		if n.cell == goal {
			return reconstructPath(n)
		}
		if n.h < best.h || (n.h == best.h && n.g < best.g) {
			best = n
		}
	}
	return reconstructPath(best)
}

func (p *PathPlanner) walkable(c entity.Cell) bool {
	if c.Row < 0 || c.Col < 0 || c.Row >= p.grid.NumTilesY() || c.Col >= p.grid.NumTilesX() {
		return false
	}
	return !entity.IsSolid(p.grid.GetTileValue(c.Row, c.Col))
}

func (p *PathPlanner) canTraverseDiagonal(from entity.Cell, step pathStep) bool {
	if !p.diagonal {
		return false
	}
	horiz := entity.Cell{Row: from.Row, Col: from.Col + step.col}
	vert := entity.Cell{Row: from.Row + step.row, Col: from.Col}
	return p.walkable(horiz) && p.walkable(vert)
}

// reconstructPath walks parents back to the start and drops the start cell
func reconstructPath(end *pathNode) []entity.Cell {
	if end == nil {
		return nil
	}
	path := make([]entity.Cell, 0)
	for node := end; node.parent != nil; node = node.parent {
		path = append(path, node.cell)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// CollapsePath reduces a path to the heading of its first step and the last
// cell reached before that heading changes. Cells equal to start are
// skipped. An empty path yields a zero heading and start as destination.
func CollapsePath(start entity.Cell, path []entity.Cell) (entity.Direction, entity.Cell) {
	i := 0
	for i < len(path) && path[i] == start {
		i++
	}
	if i == len(path) {
		return entity.DirNone, start
	}

	dir := entity.Direction{
		X: sign(path[i].Col - start.Col),
		Y: sign(path[i].Row - start.Row),
	}
	dest := path[i]
	for j := i + 1; j < len(path); j++ {
		step := entity.Direction{
			X: path[j].Col - path[j-1].Col,
			Y: path[j].Row - path[j-1].Row,
		}
		if step != dir {
			break
		}
		dest = path[j]
	}
	return dir, dest
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
