package game

// ActionKind tags a deferred operation so feasibility checks can switch on
// it instead of inspecting types at runtime.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionAdd
	ActionFlip
	ActionRevive
	ActionRemoveTail
	ActionRunDefault
	ActionCustom
)

// Action is one deferred operation: a named command token or, for
// ActionCustom, an arbitrary function.
type Action struct {
	Kind ActionKind
	Dir  Direction // Move/Add only; DirNone = current heading
	Run  func()    // Custom only
}

func MoveAction(d Direction) Action { return Action{Kind: ActionMove, Dir: d} }
func AddAction(d Direction) Action  { return Action{Kind: ActionAdd, Dir: d} }

// sameAction reports whether two actions are the same command. Custom
// actions never compare equal; function values carry no usable identity.
func sameAction(a, b Action) bool {
	if a.Kind == ActionCustom || b.Kind == ActionCustom {
		return false
	}
	return a.Kind == b.Kind && a.Dir == b.Dir
}

// ActionQueue buffers deferred operations between a fast producer (input,
// autopilot) and the fixed per-tick consumer. RunNext executes at most one
// operation per call and never attempts one that is currently infeasible.
type ActionQueue struct {
	snake *Snake
	cfg   *Settings

	queue      []Action
	defaultAct *Action
}

func NewActionQueue(snake *Snake, cfg *Settings) *ActionQueue {
	return &ActionQueue{snake: snake, cfg: cfg}
}

// SetDefault installs the fallback executed when the queue is empty or
// fully exhausted by skips. nil disables the fallback.
func (q *ActionQueue) SetDefault(a *Action) { q.defaultAct = a }

func (q *ActionQueue) Enqueue(a Action) {
	q.queue = append(q.queue, a)
}

func (q *ActionQueue) PeekNext() (Action, bool) {
	if len(q.queue) == 0 {
		return Action{}, false
	}
	return q.queue[0], true
}

func (q *ActionQueue) PollNext() (Action, bool) {
	if len(q.queue) == 0 {
		return Action{}, false
	}
	a := q.queue[0]
	q.queue = q.queue[1:]
	return a, true
}

func (q *ActionQueue) Clear()        { q.queue = q.queue[:0] }
func (q *ActionQueue) Size() int     { return len(q.queue) }
func (q *ActionQueue) IsEmpty() bool { return len(q.queue) == 0 }

// RunNext dequeues entries until one passes the must-skip policy and
// executes it. If the queue is empty, or every entry is skipped, the
// default action runs instead (when installed).
func (q *ActionQueue) RunNext() {
	for {
		a, ok := q.PollNext()
		if !ok {
			q.runDefault()
			return
		}
		if q.mustSkip(a) {
			continue
		}
		q.execute(a)
		return
	}
}

// mustSkip applies the skip policy in order: unresolved entries, repeated
// commands (when skip-repeats is on), and state-dependent commands whose
// precondition currently fails.
func (q *ActionQueue) mustSkip(a Action) bool {
	if a.Kind == ActionCustom {
		return a.Run == nil
	}
	if q.cfg.SkipRepeats {
		// Collapse runs of duplicates to a single effective execution.
		if head, ok := q.PeekNext(); ok && sameAction(a, head) {
			return true
		}
	}

	s := q.snake
	switch a.Kind {
	case ActionMove, ActionAdd:
		if !s.Valid() || s.Crashed() {
			return true
		}
		d := a.Dir
		if d == DirNone {
			d = s.Heading()
		}
		if !d.Valid() {
			return true
		}
		// A reverse-direction move with a tail present could never
		// succeed; drop it rather than burn the tick.
		return s.Len() >= 2 && d == s.Heading().Invert()
	case ActionFlip:
		return !s.Valid()
	case ActionRevive:
		return !s.Valid() || !s.Crashed()
	case ActionRemoveTail:
		return s.Tail() == nil
	case ActionRunDefault:
		return q.defaultAct == nil
	}
	return false
}

func (q *ActionQueue) execute(a Action) {
	switch a.Kind {
	case ActionMove:
		q.snake.Move(a.Dir)
	case ActionAdd:
		q.snake.Add(a.Dir)
	case ActionFlip:
		q.snake.Flip()
	case ActionRevive:
		q.snake.Revive()
	case ActionRemoveTail:
		q.snake.RemoveTail()
	case ActionRunDefault:
		q.runDefault()
	case ActionCustom:
		a.Run()
	}
}

func (q *ActionQueue) runDefault() {
	if q.defaultAct == nil {
		return
	}
	q.execute(*q.defaultAct)
}
