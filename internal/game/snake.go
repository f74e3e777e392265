package game

import "errors"

// Precondition and state errors. These are programmer errors raised before
// any state change; gameplay failures (blocked move, crashed attempt,
// missing tail) are reported as a false return plus an EventMoveFailed,
// never as errors.
var (
	ErrNotInitialized   = errors.New("snake has no body; call Initialize first")
	ErrMissingTile      = errors.New("tile is required")
	ErrNotOnGrid        = errors.New("tile does not belong to the snake's grid")
	ErrInvalidDirection = errors.New("direction must set exactly one flag")
)

// Snake is the movement/growth state machine over a Body. It is Invalid
// (empty) until Initialize seeds a one-cell body, then Valid until Reset.
// Exceeding the allowed consecutive failures puts it in the crashed state,
// which blocks movement until Revive.
type Snake struct {
	grid   *Grid
	cfg    *Settings
	events *EventBus
	body   *Body

	failCount int
	crashed   bool
	ateApple  bool
}

func NewSnake(grid *Grid, cfg *Settings, events *EventBus) *Snake {
	return &Snake{
		grid:   grid,
		cfg:    cfg,
		events: events,
		body:   NewBody(grid, cfg.PlayerMarker),
	}
}

func (s *Snake) Grid() *Grid    { return s.grid }
func (s *Snake) Body() *Body    { return s.body }
func (s *Snake) Valid() bool    { return s.body.Len() > 0 }
func (s *Snake) Len() int       { return s.body.Len() }
func (s *Snake) Head() *Tile    { return s.body.Head() }
func (s *Snake) Tail() *Tile    { return s.body.Tail() }
func (s *Snake) Crashed() bool  { return s.crashed }
func (s *Snake) FailCount() int { return s.failCount }
func (s *Snake) AteApple() bool { return s.ateApple }

// Heading is the direction the snake currently faces. A lone cell's flag
// is its facing; a longer body's head flag points backward at its
// successor, so the facing is its inverse.
func (s *Snake) Heading() Direction {
	h := s.body.Head()
	switch {
	case h == nil:
		return DirNone
	case s.body.Len() == 1:
		return h.Dirs()
	default:
		return h.Dirs().Invert()
	}
}

// Initialize seeds a one-cell body at t, facing right, from any state.
// Fail count and status flags are cleared.
func (s *Snake) Initialize(t *Tile) error {
	if t == nil {
		return ErrMissingTile
	}
	if !s.grid.ContainsTile(t) {
		return ErrNotOnGrid
	}
	s.clearBody()
	t.Clear()
	s.body.SetMarker(s.cfg.PlayerMarker)
	s.body.PushHead(t, DirRight)
	s.failCount = 0
	s.crashed = false
	s.ateApple = false
	s.events.Emit(Event{Type: EventInitialized, Dir: DirRight, Tile: t})
	return nil
}

// Reset returns the snake to the Invalid state, clearing any body tiles
// that still belong to the grid.
func (s *Snake) Reset() {
	s.clearBody()
	s.failCount = 0
	s.crashed = false
	s.ateApple = false
	s.events.Emit(Event{Type: EventReset})
}

// SetGrid swaps the grid collaborator. The body cannot survive a swap, so
// the snake is reset to Invalid.
func (s *Snake) SetGrid(g *Grid) {
	s.Reset()
	s.grid = g
	s.body = NewBody(g, s.cfg.PlayerMarker)
}

// Move advances the head one tile in direction d, dropping the tail so
// the length is preserved (unless an apple triggers growth). d == DirNone
// means the direction currently faced.
func (s *Snake) Move(d Direction) (bool, error) {
	return s.advance(d, false)
}

// Add grows the snake one tile in direction d: the head advances and the
// tail stays.
func (s *Snake) Add(d Direction) (bool, error) {
	return s.advance(d, true)
}

func (s *Snake) advance(d Direction, grow bool) (bool, error) {
	if !s.Valid() {
		return false, ErrNotInitialized
	}
	d, err := s.resolveDir(d)
	if err != nil {
		return false, err
	}
	if s.crashed {
		// Crashed attempts fail immediately: no feasibility check, no
		// fail-count change.
		s.events.Emit(Event{Type: EventMoveFailed, Dir: d})
		return false, nil
	}

	next := s.grid.Adjacent(s.Head(), d, s.cfg.WrapAround)
	feasible := next != nil &&
		(next.IsEmpty() || (next.IsApple() && s.cfg.EatApples))
	if !feasible {
		// A backward no-op is never penalized while a tail exists; the
		// body itself blocks the reversal, not the board.
		backward := s.body.Len() >= 2 && d == s.Heading().Invert()
		if !backward {
			s.failCount++
		}
		wasCrashed := s.crashed
		s.crashed = s.cfg.AllowedFails >= 0 && s.failCount > s.cfg.AllowedFails
		if s.crashed && !wasCrashed {
			s.events.Emit(Event{Type: EventCrashed, Dir: d})
		}
		s.events.Emit(Event{Type: EventMoveFailed, Dir: d, Tile: next})
		return false, nil
	}

	ate := next.IsApple()
	grow = grow || (ate && s.cfg.GrowOnApple)

	s.grid.SetAdjusting(true)
	s.body.PushHead(next, d)
	if !grow {
		s.body.PollTail()
	}
	s.grid.SetAdjusting(false)

	s.failCount = 0
	s.ateApple = ate
	if ate {
		s.events.Emit(Event{Type: EventAppleEaten, Dir: d, Tile: next})
	}
	if grow {
		s.events.Emit(Event{Type: EventTileAdded, Dir: d, Tile: next})
	} else {
		s.events.Emit(Event{Type: EventMoved, Dir: d, Tile: next})
	}
	return true, nil
}

// resolveDir maps DirNone to the current heading and rejects multi-flag
// values.
func (s *Snake) resolveDir(d Direction) (Direction, error) {
	if d == DirNone {
		d = s.Heading()
	}
	if !d.Valid() {
		return DirNone, ErrInvalidDirection
	}
	return d, nil
}

// Revive clears the crashed state and resets the fail count. Reviving an
// idle snake is a no-op (idle is already the target state).
func (s *Snake) Revive() error {
	if !s.Valid() {
		return ErrNotInitialized
	}
	wasCrashed := s.crashed
	s.failCount = 0
	s.crashed = false
	if wasCrashed {
		s.events.Emit(Event{Type: EventRevived, Dir: s.Heading()})
	}
	return nil
}

// RemoveTail shrinks the body by one from the tail end. With no tail
// (length < 2) this is a gameplay failure, not an error.
func (s *Snake) RemoveTail() bool {
	if s.body.Tail() == nil {
		s.events.Emit(Event{Type: EventMoveFailed})
		return false
	}
	t := s.body.PollTail()
	s.events.Emit(Event{Type: EventTileRemoved, Tile: t})
	return true
}

// Flip reverses which end of the body is the head.
func (s *Snake) Flip() error {
	if !s.Valid() {
		return ErrNotInitialized
	}
	s.body.Flip()
	s.events.Emit(Event{Type: EventFlipped, Dir: s.Heading()})
	return nil
}

// Repair drops externally cleared tiles from the body and recomputes
// every remaining tile's direction flags.
func (s *Snake) Repair() {
	s.grid.SetAdjusting(true)
	s.body.Repair(s.cfg.WrapAround)
	s.grid.SetAdjusting(false)
	s.events.Emit(Event{Type: EventRepaired, Dir: s.Heading()})
}

// SetAllowedFails changes the crash threshold. If the current fail count
// no longer exceeds it, an existing crash is lifted.
func (s *Snake) SetAllowedFails(n int) {
	if s.cfg.AllowedFails == n {
		return
	}
	s.cfg.AllowedFails = n
	s.cfg.notify()
	if s.crashed && (n < 0 || s.failCount <= n) {
		s.crashed = false
		s.events.Emit(Event{Type: EventRevived, Dir: s.Heading()})
	}
}

// SetMarker restamps the whole body with a new player marker.
func (s *Snake) SetMarker(m int) {
	s.cfg.PlayerMarker = m
	s.grid.SetAdjusting(true)
	s.body.SetMarker(m)
	s.grid.SetAdjusting(false)
	s.cfg.notify()
}

func (s *Snake) clearBody() {
	s.grid.SetAdjusting(true)
	for i := 0; i < s.body.Len(); i++ {
		if t := s.body.At(i); s.grid.ContainsTile(t) {
			t.Clear()
		}
	}
	s.grid.SetAdjusting(false)
	s.body.Reset()
}
