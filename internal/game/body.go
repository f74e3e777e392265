package game

import "errors"

// ErrConcurrentModification is returned by a body iterator whose body was
// structurally mutated (growth, shrink, flip, reset) after the iterator
// was created.
var ErrConcurrentModification = errors.New("body modified during iteration")

// Body is the snake's cell sequence: a ring deque of tile references plus
// an orientation bit. The bit decides which physical end is the logical
// head, so Flip never reorders storage.
//
// Join invariant: after any mutating call the sequence is either empty or
// every interior tile carries exactly two direction flags pointing at its
// sequence neighbors while head and tail carry exactly one. A length-1
// body's single flag is the direction it faces.
type Body struct {
	grid    *Grid
	cells   []*Tile
	start   int // physical front index into cells
	n       int
	flipped bool
	marker  int
	gen     uint64
}

func NewBody(grid *Grid, marker int) *Body {
	return &Body{grid: grid, marker: marker}
}

func (b *Body) Len() int { return b.n }

// At returns the i-th tile in logical order, head first.
func (b *Body) At(i int) *Tile {
	if i < 0 || i >= b.n {
		return nil
	}
	if b.flipped {
		return b.cells[b.phys(i)]
	}
	return b.cells[b.phys(b.n-1-i)]
}

// Head returns the logical front tile, or nil when empty.
func (b *Body) Head() *Tile { return b.At(0) }

// Tail returns the logical back tile. A tail only exists from length 2 on.
func (b *Body) Tail() *Tile {
	if b.n < 2 {
		return nil
	}
	return b.At(b.n - 1)
}

// Contains reports whether t is part of the body.
func (b *Body) Contains(t *Tile) bool {
	for i := 0; i < b.n; i++ {
		if b.cells[b.phys(i)] == t {
			return true
		}
	}
	return false
}

// PushHead inserts t as the new logical head. d is the single direction
// flag leading from the current head to t; for the first cell it is the
// direction the snake faces. Both the previous head and t are stamped
// with the player marker and their direction flags adjusted so the join
// invariant holds.
func (b *Body) PushHead(t *Tile, d Direction) {
	old := b.Head()
	switch {
	case old == nil:
		// Seeding: the lone cell's flag is its facing.
		t.SetState(d)
	case b.n == 1:
		// The old head becomes the tail: exactly one flag, toward t.
		old.SetState(d)
		old.SetSnake(b.marker)
		t.SetState(d.Invert())
	default:
		// The old head becomes interior: keep its flag toward its
		// successor, add the flag toward t.
		old.AddDirection(d)
		old.SetSnake(b.marker)
		t.SetState(d.Invert())
	}
	t.SetSnake(b.marker)
	if b.flipped {
		b.pushFront(t)
	} else {
		b.pushBack(t)
	}
	b.gen++
}

// PollTail removes and clears the logical back tile and repairs the new
// end's direction flags. Returns nil when empty.
func (b *Body) PollTail() *Tile {
	if b.n == 0 {
		return nil
	}
	var t *Tile
	if b.flipped {
		t = b.popBack()
	} else {
		t = b.popFront()
	}
	tdirs := t.Dirs()
	t.Clear()
	switch {
	case b.n == 1:
		// Length 2 -> 1: the survivor's flag pointed back at the removed
		// tail; a lone cell's flag is its facing, so invert it.
		b.Head().Flip()
	case b.n > 1:
		// The new tail drops its flag toward the removed cell. The removed
		// tail's single flag pointed at the new tail, so the reverse flag
		// is the one to clear.
		b.Tail().RemoveDirection(tdirs.Invert())
	}
	b.gen++
	return t
}

// PollHead removes and clears the logical front tile and repairs the new
// head's direction flags. Returns nil when empty.
func (b *Body) PollHead() *Tile {
	if b.n == 0 {
		return nil
	}
	var t *Tile
	if b.flipped {
		t = b.popFront()
	} else {
		t = b.popBack()
	}
	hdirs := t.Dirs()
	t.Clear()
	if b.n > 1 {
		// The new head keeps only its flag toward its own successor.
		// Length 2 -> 1 needs no repair: the survivor's remaining flag
		// already points where the head used to be, which is its facing.
		b.Head().RemoveDirection(hdirs.Invert())
	}
	b.gen++
	return t
}

// Flip swaps which physical end is the logical head. Direction flags stay
// valid as-is: every flag points at a physical neighbor regardless of
// orientation. A length-1 body flips the lone cell's facing instead.
func (b *Body) Flip() {
	if b.n == 1 {
		b.Head().Flip()
	} else if b.n > 1 {
		b.flipped = !b.flipped
	}
	b.gen++
}

// SetMarker restamps every body tile with a new player marker.
func (b *Body) SetMarker(m int) {
	b.marker = m
	for i := 0; i < b.n; i++ {
		b.cells[b.phys(i)].SetSnake(m)
	}
}

// Repair recomputes every tile's direction flags in one O(length) pass.
// Tiles that lost their snake marking (bulk external removal) are dropped
// from the sequence first. wrap must match the grid's adjacency rule.
func (b *Body) Repair(wrap bool) {
	// Compact in logical order, dropping externally cleared tiles.
	kept := make([]*Tile, 0, b.n)
	for i := 0; i < b.n; i++ {
		if t := b.At(i); t.IsSnake() {
			kept = append(kept, t)
		}
	}
	b.cells = kept
	b.start = 0
	b.n = len(kept)
	b.flipped = true // kept is head-first, i.e. logical order == physical order

	for i := 0; i < b.n; i++ {
		t := kept[i]
		if b.n == 1 {
			if !t.Dirs().Valid() {
				t.SetState(DirRight)
			}
			break
		}
		d := DirNone
		if i > 0 {
			d |= b.grid.DirectionBetween(t, kept[i-1], wrap)
		}
		if i < b.n-1 {
			d |= b.grid.DirectionBetween(t, kept[i+1], wrap)
		}
		t.SetState(d)
	}
	b.gen++
}

// Reset drops all cell references without touching the tiles.
func (b *Body) Reset() {
	for i := range b.cells {
		b.cells[i] = nil
	}
	b.start = 0
	b.n = 0
	b.flipped = false
	b.gen++
}

// Iterator walks the body head-to-tail and fails fast: any structural
// mutation after creation makes the next call return
// ErrConcurrentModification.
type BodyIterator struct {
	b   *Body
	i   int
	gen uint64
}

func (b *Body) Iterator() *BodyIterator {
	return &BodyIterator{b: b, gen: b.gen}
}

// Next returns the next tile in logical order, nil at exhaustion.
func (it *BodyIterator) Next() (*Tile, error) {
	if it.gen != it.b.gen {
		return nil, ErrConcurrentModification
	}
	if it.i >= it.b.n {
		return nil, nil
	}
	t := it.b.At(it.i)
	it.i++
	return t, nil
}

// ---- ring deque internals ------------------------------------------------

func (b *Body) phys(i int) int {
	return (b.start + i) % len(b.cells)
}

func (b *Body) grow() {
	if b.n < len(b.cells) {
		return
	}
	c := len(b.cells) * 2
	if c < 8 {
		c = 8
	}
	next := make([]*Tile, c)
	for i := 0; i < b.n; i++ {
		next[i] = b.cells[b.phys(i)]
	}
	b.cells = next
	b.start = 0
}

func (b *Body) pushBack(t *Tile) {
	b.grow()
	b.cells[b.phys(b.n)] = t
	b.n++
}

func (b *Body) pushFront(t *Tile) {
	b.grow()
	b.start = (b.start - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.start] = t
	b.n++
}

func (b *Body) popFront() *Tile {
	t := b.cells[b.start]
	b.cells[b.start] = nil
	b.start = (b.start + 1) % len(b.cells)
	b.n--
	return t
}

func (b *Body) popBack() *Tile {
	i := b.phys(b.n - 1)
	t := b.cells[i]
	b.cells[i] = nil
	b.n--
	return t
}
