package game

import "testing"

// checkJoin verifies the join invariant: length 1 means a single facing
// flag; otherwise head and tail carry exactly one flag pointing at their
// sequence neighbor and every interior tile carries exactly two.
func checkJoin(t *testing.T, g *Grid, b *Body, wrap bool) {
	t.Helper()
	n := b.Len()
	if n == 0 {
		return
	}
	if n == 1 {
		if !b.Head().Dirs().Valid() {
			t.Fatalf("lone cell should have exactly one flag, got %v", b.Head().Dirs())
		}
		return
	}
	for i := 0; i < n; i++ {
		tile := b.At(i)
		want := DirNone
		if i > 0 {
			want |= g.DirectionBetween(tile, b.At(i-1), wrap)
		}
		if i < n-1 {
			want |= g.DirectionBetween(tile, b.At(i+1), wrap)
		}
		if tile.Dirs() != want {
			t.Fatalf("cell %d at (%d,%d): dirs = %v, want %v",
				i, tile.Row, tile.Col, tile.Dirs(), want)
		}
	}
}

// buildBody pushes a straight rightward body of the given length starting
// at (row, col).
func buildBody(g *Grid, row, col, length int) *Body {
	b := NewBody(g, 1)
	b.PushHead(g.Tile(row, col), DirRight)
	for i := 1; i < length; i++ {
		b.PushHead(g.Tile(row, col+i), DirRight)
	}
	return b
}

func TestBodyPushHead(t *testing.T) {
	g := NewGrid(5, 8)
	b := NewBody(g, 7)

	b.PushHead(g.Tile(2, 2), DirRight)
	if b.Len() != 1 || b.Head() != g.Tile(2, 2) {
		t.Fatal("seed cell should be the head")
	}
	if b.Tail() != nil {
		t.Error("length 1 has no tail")
	}
	if d := b.Head().Dirs(); d != DirRight {
		t.Errorf("lone cell faces right, got %v", d)
	}
	checkJoin(t, g, b, false)

	b.PushHead(g.Tile(2, 3), DirRight)
	if b.Head() != g.Tile(2, 3) || b.Tail() != g.Tile(2, 2) {
		t.Fatal("head/tail wrong after second push")
	}
	if !b.Contains(g.Tile(2, 2)) || b.Contains(g.Tile(0, 0)) {
		t.Error("Contains should track membership")
	}
	if m := b.Head().Marker(); m != 7 {
		t.Errorf("head should carry the player marker, got %d", m)
	}
	checkJoin(t, g, b, false)

	// Turn upward.
	b.PushHead(g.Tile(1, 3), DirUp)
	checkJoin(t, g, b, false)
	if b.Len() != 3 {
		t.Fatalf("length = %d, want 3", b.Len())
	}
	// The middle cell joins both neighbors.
	mid := g.Tile(2, 3)
	if mid.Dirs() != DirUp|DirLeft {
		t.Errorf("interior dirs = %v, want up|left", mid.Dirs())
	}
}

func TestBodyPollTail(t *testing.T) {
	g := NewGrid(5, 8)
	b := buildBody(g, 2, 1, 4)

	tail := b.Tail()
	got := b.PollTail()
	if got != tail {
		t.Fatal("PollTail should remove the tail cell")
	}
	if !got.IsEmpty() || got.Dirs() != DirNone {
		t.Error("removed cell should be cleared")
	}
	checkJoin(t, g, b, false)

	// Down to one cell: the survivor's flag becomes its facing.
	b.PollTail()
	b.PollTail()
	if b.Len() != 1 {
		t.Fatalf("length = %d, want 1", b.Len())
	}
	if d := b.Head().Dirs(); d != DirRight {
		t.Errorf("lone survivor should face right, got %v", d)
	}

	b.PollTail()
	if b.Len() != 0 {
		t.Error("empty body expected")
	}
	if b.PollTail() != nil {
		t.Error("PollTail on empty body should be nil")
	}
}

func TestBodyPollHead(t *testing.T) {
	g := NewGrid(5, 8)
	b := buildBody(g, 2, 1, 4)

	head := b.Head()
	got := b.PollHead()
	if got != head {
		t.Fatal("PollHead should remove the head cell")
	}
	if !got.IsEmpty() {
		t.Error("removed cell should be cleared")
	}
	checkJoin(t, g, b, false)

	b.PollHead()
	if b.Len() != 2 {
		t.Fatalf("length = %d, want 2", b.Len())
	}
	checkJoin(t, g, b, false)
}

func TestBodyFlipTwiceRestores(t *testing.T) {
	g := NewGrid(5, 8)
	b := buildBody(g, 2, 1, 4)
	head, tail := b.Head(), b.Tail()
	dirs := make([]Direction, b.Len())
	for i := range dirs {
		dirs[i] = b.At(i).Dirs()
	}

	b.Flip()
	if b.Head() != tail || b.Tail() != head {
		t.Fatal("flip should swap logical ends")
	}
	checkJoin(t, g, b, false)

	b.Flip()
	if b.Head() != head || b.Tail() != tail {
		t.Fatal("double flip should restore the original ends")
	}
	for i := range dirs {
		if b.At(i).Dirs() != dirs[i] {
			t.Fatalf("cell %d dirs changed across double flip", i)
		}
	}
}

func TestBodyFlipSingleCell(t *testing.T) {
	g := NewGrid(5, 8)
	b := buildBody(g, 2, 2, 1)

	b.Flip()
	if d := b.Head().Dirs(); d != DirLeft {
		t.Errorf("single-cell flip should invert facing, got %v", d)
	}
	b.Flip()
	if d := b.Head().Dirs(); d != DirRight {
		t.Errorf("double flip should restore facing, got %v", d)
	}
}

func TestBodyMutationAfterFlip(t *testing.T) {
	g := NewGrid(5, 8)
	b := buildBody(g, 2, 1, 3) // cells at cols 1..3, head at 3

	b.Flip() // head is now (2,1)
	b.PushHead(g.Tile(2, 0), DirLeft)
	if b.Head() != g.Tile(2, 0) {
		t.Fatal("push after flip should extend the flipped head end")
	}
	checkJoin(t, g, b, false)

	// The old pre-flip head is now the tail.
	if b.Tail() != g.Tile(2, 3) {
		t.Fatal("tail after flip should be the pre-flip head")
	}
	b.PollTail()
	checkJoin(t, g, b, false)
}

func TestBodyRepair(t *testing.T) {
	g := NewGrid(5, 8)
	b := buildBody(g, 2, 1, 5)

	// External bulk removal: clear two cells behind the head.
	g.Tile(2, 2).Clear()
	g.Tile(2, 3).Clear()
	b.Repair(false)

	if b.Len() != 3 {
		t.Fatalf("length after repair = %d, want 3", b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		if !b.At(i).IsSnake() {
			t.Fatal("repaired body should only hold snake cells")
		}
	}
	// (2,4) and (2,5) are still adjacent; (2,1) is cut off, and repair
	// recomputes what flags it can.
	if d := b.At(0).Dirs(); d != DirLeft {
		t.Errorf("head flag = %v, want left toward its successor", d)
	}
}

func TestBodyIteratorFailFast(t *testing.T) {
	g := NewGrid(5, 8)
	b := buildBody(g, 2, 1, 3)

	it := b.Iterator()
	if tile, err := it.Next(); err != nil || tile != b.Head() {
		t.Fatal("iterator should start at the head")
	}

	b.Flip() // structural mutation
	if _, err := it.Next(); err != ErrConcurrentModification {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}

	// A fresh iterator walks head to tail and then reports exhaustion.
	it = b.Iterator()
	seen := 0
	for {
		tile, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tile == nil {
			break
		}
		seen++
	}
	if seen != b.Len() {
		t.Errorf("iterated %d cells, want %d", seen, b.Len())
	}
}
