package game

import "testing"

func newTestSnake(rows, cols int) (*Grid, *Snake, *Settings, *EventBus) {
	cfg := DefaultSettings()
	events := NewEventBus()
	cfg.Bind(events)
	g := NewGrid(rows, cols)
	s := NewSnake(g, cfg, events)
	return g, s, cfg, events
}

// mustGrow extends the snake along its heading to the given length.
func mustGrow(t *testing.T, s *Snake, length int) {
	t.Helper()
	for s.Len() < length {
		ok, err := s.Add(DirNone)
		if err != nil || !ok {
			t.Fatalf("grow to %d failed at %d: ok=%v err=%v", length, s.Len(), ok, err)
		}
	}
}

func countEvents(events *EventBus, types ...EventType) map[EventType]*int {
	counts := make(map[EventType]*int)
	for _, ty := range types {
		n := new(int)
		counts[ty] = n
		events.Subscribe(ty, func(Event) { *n++ })
	}
	return counts
}

func TestSnakeInvalidUntilInitialized(t *testing.T) {
	_, s, _, _ := newTestSnake(6, 6)

	if s.Valid() {
		t.Fatal("fresh snake should be Invalid")
	}
	if _, err := s.Move(DirRight); err != ErrNotInitialized {
		t.Errorf("Move on Invalid should fail with ErrNotInitialized, got %v", err)
	}
	if err := s.Flip(); err != ErrNotInitialized {
		t.Errorf("Flip on Invalid should fail with ErrNotInitialized, got %v", err)
	}
	if err := s.Revive(); err != ErrNotInitialized {
		t.Errorf("Revive on Invalid should fail with ErrNotInitialized, got %v", err)
	}
}

func TestSnakeInitialize(t *testing.T) {
	g, s, _, _ := newTestSnake(6, 6)

	if err := s.Initialize(nil); err != ErrMissingTile {
		t.Errorf("nil tile should be a precondition error, got %v", err)
	}
	foreign := NewGrid(6, 6).Tile(2, 2)
	if err := s.Initialize(foreign); err != ErrNotOnGrid {
		t.Errorf("foreign tile should be a precondition error, got %v", err)
	}

	start := g.Tile(3, 2)
	if err := s.Initialize(start); err != nil {
		t.Fatal(err)
	}
	if !s.Valid() || s.Len() != 1 || s.Head() != start {
		t.Fatal("initialize should seed a one-cell body")
	}
	if s.Tail() != nil {
		t.Error("length 1 has no tail")
	}
	if s.Heading() != DirRight {
		t.Errorf("seeded snake faces right, got %v", s.Heading())
	}

	// Re-initializing from any state clears the previous body.
	mustGrow(t, s, 3)
	next := g.Tile(1, 1)
	if err := s.Initialize(next); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || s.Head() != next {
		t.Fatal("re-initialize should reseed a one-cell body")
	}
	if !start.IsEmpty() {
		t.Error("old body tiles should be cleared on re-initialize")
	}
}

func TestSnakeMovePreservesLength(t *testing.T) {
	g, s, _, _ := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 1))
	mustGrow(t, s, 3)

	tail := s.Tail()
	ok, err := s.Move(DirNone)
	if err != nil || !ok {
		t.Fatalf("move failed: ok=%v err=%v", ok, err)
	}
	if s.Len() != 3 {
		t.Errorf("move should preserve length, got %d", s.Len())
	}
	if !tail.IsEmpty() {
		t.Error("old tail should have been cleared")
	}
	checkJoin(t, g, s.Body(), false)
}

func TestSnakeAddGrows(t *testing.T) {
	g, s, _, _ := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 1))

	ok, err := s.Add(DirDown)
	if err != nil || !ok {
		t.Fatalf("add failed: ok=%v err=%v", ok, err)
	}
	if s.Len() != 2 {
		t.Errorf("add should grow by one, got %d", s.Len())
	}
	if s.Head() != g.Tile(4, 1) {
		t.Error("add should place the head on the adjacent tile")
	}
	checkJoin(t, g, s.Body(), false)
}

func TestSnakeDirectionResolution(t *testing.T) {
	g, s, _, _ := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 1))

	if _, err := s.Move(DirUp | DirLeft); err != ErrInvalidDirection {
		t.Errorf("multi-flag direction should be a precondition error, got %v", err)
	}

	// Zero means the direction currently faced.
	ok, _ := s.Move(DirNone)
	if !ok || s.Head() != g.Tile(3, 2) {
		t.Error("Move(0) should advance along the heading")
	}
}

func TestSnakeAppleGrowth(t *testing.T) {
	g, s, cfg, events := newTestSnake(6, 10)
	cfg.EatApples = true
	cfg.GrowOnApple = true
	s.Initialize(g.Tile(3, 1))
	mustGrow(t, s, 2)

	counts := countEvents(events, EventAppleEaten, EventTileAdded)
	g.Tile(3, 3).SetKind(TileApple)

	tail := s.Tail()
	ok, err := s.Move(DirNone)
	if err != nil || !ok {
		t.Fatalf("move onto apple failed: ok=%v err=%v", ok, err)
	}
	if s.Len() != 3 {
		t.Errorf("apple should grow the snake, got length %d", s.Len())
	}
	if !s.AteApple() {
		t.Error("consumed-apple flag should be set")
	}
	if !tail.IsSnake() {
		t.Error("tail should stay in place on apple growth")
	}
	if *counts[EventAppleEaten] != 1 || *counts[EventTileAdded] != 1 {
		t.Error("apple move should emit eaten + added notifications")
	}
	checkJoin(t, g, s.Body(), false)

	// A plain move afterwards clears the flag.
	s.Move(DirNone)
	if s.AteApple() {
		t.Error("consumed-apple flag should clear on a plain move")
	}
}

func TestSnakeAppleBlockedWhenEatingDisabled(t *testing.T) {
	g, s, cfg, _ := newTestSnake(6, 10)
	cfg.EatApples = false
	s.Initialize(g.Tile(3, 1))
	g.Tile(3, 2).SetKind(TileApple)

	ok, err := s.Move(DirNone)
	if err != nil || ok {
		t.Fatalf("move onto apple should fail with eating disabled: ok=%v err=%v", ok, err)
	}
	if s.FailCount() != 1 {
		t.Errorf("failCount = %d, want 1", s.FailCount())
	}
}

func TestSnakeCrashScenario(t *testing.T) {
	// Length-3 snake facing right with its head at the right edge,
	// wrap-around disabled, allowedFails = 2: three forward moves fail,
	// and the third one crashes it.
	g, s, cfg, events := newTestSnake(6, 10)
	cfg.WrapAround = false
	cfg.AllowedFails = 2
	s.Initialize(g.Tile(3, 7))
	mustGrow(t, s, 3)
	if s.Head() != g.Tile(3, 9) {
		t.Fatal("head should be at the right edge")
	}

	counts := countEvents(events, EventCrashed, EventMoveFailed)
	for i := 1; i <= 3; i++ {
		ok, err := s.Move(DirNone)
		if err != nil || ok {
			t.Fatalf("edge move %d should fail: ok=%v err=%v", i, ok, err)
		}
		if s.FailCount() != i {
			t.Fatalf("failCount after move %d = %d", i, s.FailCount())
		}
		wantCrashed := i == 3
		if s.Crashed() != wantCrashed {
			t.Fatalf("crashed after move %d = %v, want %v", i, s.Crashed(), wantCrashed)
		}
	}
	if *counts[EventCrashed] != 1 {
		t.Errorf("crash should be notified exactly once, got %d", *counts[EventCrashed])
	}
	if *counts[EventMoveFailed] != 3 {
		t.Errorf("each failed move should be notified, got %d", *counts[EventMoveFailed])
	}

	// Crashed attempts fail immediately without touching the count.
	s.Move(DirDown)
	if s.FailCount() != 3 {
		t.Errorf("crashed attempt changed failCount to %d", s.FailCount())
	}

	// Revive clears the crash and the count.
	if err := s.Revive(); err != nil {
		t.Fatal(err)
	}
	if s.Crashed() || s.FailCount() != 0 {
		t.Error("revive should clear crashed and failCount")
	}
	if ok, _ := s.Move(DirDown); !ok {
		t.Error("revived snake should move again")
	}
}

func TestSnakeBackwardMoveNotPenalized(t *testing.T) {
	g, s, _, _ := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 1))
	mustGrow(t, s, 3) // facing right, body to the left

	ok, err := s.Move(DirLeft)
	if err != nil || ok {
		t.Fatalf("backward move should fail: ok=%v err=%v", ok, err)
	}
	if s.FailCount() != 0 {
		t.Errorf("backward no-op must not be penalized, failCount = %d", s.FailCount())
	}

	// A single-cell snake has no tail blocking it; its reverse attempt is
	// judged by the board alone and does count.
	s.Initialize(g.Tile(3, 0))
	ok, err = s.Move(DirLeft)
	if err != nil || ok {
		t.Fatalf("edge move should fail: ok=%v err=%v", ok, err)
	}
	if s.FailCount() != 1 {
		t.Errorf("single-cell reverse fail should count, failCount = %d", s.FailCount())
	}
}

func TestSnakeUnlimitedFails(t *testing.T) {
	g, s, cfg, _ := newTestSnake(6, 10)
	cfg.AllowedFails = -1
	s.Initialize(g.Tile(0, 0))

	for i := 0; i < 10; i++ {
		s.Move(DirUp)
	}
	if s.Crashed() {
		t.Error("negative allowedFails means no crash, ever")
	}
	if s.FailCount() != 10 {
		t.Errorf("failCount = %d, want 10", s.FailCount())
	}
}

func TestSnakeSetAllowedFailsLiftsCrash(t *testing.T) {
	g, s, cfg, _ := newTestSnake(6, 10)
	cfg.AllowedFails = 0
	s.Initialize(g.Tile(0, 0))

	s.Move(DirUp)
	if !s.Crashed() {
		t.Fatal("one fail over a zero threshold should crash")
	}
	s.SetAllowedFails(5)
	if s.Crashed() {
		t.Error("raising the threshold above the count should lift the crash")
	}
}

func TestSnakeWrapAround(t *testing.T) {
	g, s, cfg, _ := newTestSnake(6, 10)
	cfg.WrapAround = true
	s.Initialize(g.Tile(3, 9))

	ok, err := s.Move(DirRight)
	if err != nil || !ok {
		t.Fatalf("wrapped move failed: ok=%v err=%v", ok, err)
	}
	if s.Head() != g.Tile(3, 0) {
		t.Error("head should wrap to the first column")
	}
}

func TestSnakeRemoveTail(t *testing.T) {
	g, s, _, events := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 1))

	counts := countEvents(events, EventTileRemoved, EventMoveFailed)

	// No tail on a one-cell snake: a gameplay failure, not an error.
	if s.RemoveTail() {
		t.Error("RemoveTail without a tail should report false")
	}
	if *counts[EventMoveFailed] != 1 {
		t.Error("failed tail removal should emit a failure notification")
	}

	mustGrow(t, s, 3)
	if !s.RemoveTail() {
		t.Error("RemoveTail with a tail should succeed")
	}
	if s.Len() != 2 {
		t.Errorf("length = %d, want 2", s.Len())
	}
	if *counts[EventTileRemoved] != 1 {
		t.Error("tail removal should emit a removed notification")
	}
	checkJoin(t, g, s.Body(), false)
}

func TestSnakeFlipAndMoveBack(t *testing.T) {
	g, s, _, _ := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 2))
	mustGrow(t, s, 3) // head at (3,4) facing right

	if err := s.Flip(); err != nil {
		t.Fatal(err)
	}
	if s.Head() != g.Tile(3, 2) {
		t.Error("flip should make the old tail the head")
	}
	if s.Heading() != DirLeft {
		t.Errorf("flipped snake heads left, got %v", s.Heading())
	}

	ok, err := s.Move(DirNone)
	if err != nil || !ok {
		t.Fatalf("move after flip failed: ok=%v err=%v", ok, err)
	}
	if s.Head() != g.Tile(3, 1) {
		t.Error("flipped snake should advance leftward")
	}
	checkJoin(t, g, s.Body(), false)
}

func TestSnakeReset(t *testing.T) {
	g, s, _, events := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 1))
	mustGrow(t, s, 3)

	counts := countEvents(events, EventReset)
	tiles := []*Tile{s.Body().At(0), s.Body().At(1), s.Body().At(2)}
	s.Reset()

	if s.Valid() {
		t.Error("reset should return the snake to Invalid")
	}
	for _, tile := range tiles {
		if !tile.IsEmpty() {
			t.Error("reset should clear body tiles")
		}
	}
	if *counts[EventReset] != 1 {
		t.Error("reset should be notified")
	}
}

func TestSnakeRepairAfterExternalRemoval(t *testing.T) {
	g, s, _, events := newTestSnake(6, 10)
	s.Initialize(g.Tile(3, 1))
	mustGrow(t, s, 4)

	counts := countEvents(events, EventRepaired)
	// External bulk removal wipes a middle cell behind the head.
	g.Tile(3, 2).Clear()
	s.Repair()

	if s.Len() != 3 {
		t.Errorf("length after repair = %d, want 3", s.Len())
	}
	if *counts[EventRepaired] != 1 {
		t.Error("repair should be notified")
	}
}
