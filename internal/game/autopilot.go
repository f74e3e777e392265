package game

import "github.com/nickdavies/go-astar/astar"

// Autopilot feeds the action queue one directional move per tick, routed
// toward the nearest apple with A*. It produces commands like any other
// input source; the queue's skip policy still applies to them.
type Autopilot struct {
	grid  *Grid
	snake *Snake
	queue *ActionQueue
}

func NewAutopilot(grid *Grid, snake *Snake, queue *ActionQueue) *Autopilot {
	return &Autopilot{grid: grid, snake: snake, queue: queue}
}

// Step enqueues the next move toward the closest apple. Pending player
// input takes priority; a crashed or uninitialized snake is left alone.
// A* does not route across wrapped edges, so with wrap-around on the
// chosen path is merely not always the shortest.
func (a *Autopilot) Step() {
	if !a.queue.IsEmpty() {
		return
	}
	s := a.snake
	if !s.Valid() || s.Crashed() {
		return
	}
	head := s.Head()
	apple := a.nearestApple(head)
	if apple == nil {
		return
	}

	router := astar.NewAStar(a.grid.Rows(), a.grid.Cols())
	for r := 0; r < a.grid.Rows(); r++ {
		for c := 0; c < a.grid.Cols(); c++ {
			t := a.grid.Tile(r, c)
			if (t.IsSnake() || t.IsWall()) && t != head {
				router.FillTile(astar.Point{Row: r, Col: c}, -1)
			}
		}
	}

	// Source and target are swapped so the returned parent chain walks
	// head-first; the first parent is the tile to step onto.
	path := router.FindPath(
		astar.NewPointToPoint(),
		[]astar.Point{{Row: apple.Row, Col: apple.Col}},
		[]astar.Point{{Row: head.Row, Col: head.Col}},
	)
	if path == nil || path.Parent == nil {
		return
	}
	next := a.grid.Tile(path.Parent.Row, path.Parent.Col)
	d := a.grid.DirectionBetween(head, next, false)
	if !d.Valid() {
		return
	}
	a.queue.Enqueue(MoveAction(d))
}

func (a *Autopilot) nearestApple(from *Tile) *Tile {
	var best *Tile
	bestDist := 0
	for r := 0; r < a.grid.Rows(); r++ {
		for c := 0; c < a.grid.Cols(); c++ {
			t := a.grid.Tile(r, c)
			if !t.IsApple() {
				continue
			}
			d := abs(t.Row-from.Row) + abs(t.Col-from.Col)
			if best == nil || d < bestDist {
				best = t
				bestDist = d
			}
		}
	}
	return best
}
