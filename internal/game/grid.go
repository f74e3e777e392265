package game

// Grid is the tile board: a fixed rows x cols array of tiles addressed by
// (row, col). Adjacency is wrap-aware on request; with wrapping off, a
// lookup past the edge returns nil.
type Grid struct {
	rows, cols int
	tiles      []Tile

	// adjusting is an advisory hint set around compound mutations
	// (push+poll, bulk marker changes) so listeners can defer their own
	// bookkeeping. It is not a lock.
	adjusting bool
}

func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := &g.tiles[r*cols+c]
			t.Row = r
			t.Col = c
		}
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether (row, col) addresses a tile on this grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// ContainsTile reports whether t is one of this grid's own tiles.
// A tile with matching coordinates from another grid does not count.
func (g *Grid) ContainsTile(t *Tile) bool {
	if t == nil || !g.Contains(t.Row, t.Col) {
		return false
	}
	return t == &g.tiles[t.Row*g.cols+t.Col]
}

// Tile returns the tile at (row, col), or nil when out of bounds.
func (g *Grid) Tile(row, col int) *Tile {
	if !g.Contains(row, col) {
		return nil
	}
	return &g.tiles[row*g.cols+col]
}

// Adjacent returns t's neighbor in direction d. d must be a single flag.
// With wrap enabled the lookup crosses the edges torus-style; otherwise a
// neighbor past the edge is nil.
func (g *Grid) Adjacent(t *Tile, d Direction, wrap bool) *Tile {
	if t == nil || !d.Valid() {
		return nil
	}
	dr, dc := d.Delta()
	row, col := t.Row+dr, t.Col+dc
	if wrap {
		row = (row + g.rows) % g.rows
		col = (col + g.cols) % g.cols
	}
	return g.Tile(row, col)
}

// DirectionBetween returns the single flag leading from a to b, or DirNone
// when b is not adjacent to a (under the given wrap rule).
func (g *Grid) DirectionBetween(a, b *Tile, wrap bool) Direction {
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		if g.Adjacent(a, d, wrap) == b {
			return d
		}
	}
	return DirNone
}

func (g *Grid) SetAdjusting(v bool) { g.adjusting = v }
func (g *Grid) Adjusting() bool     { return g.adjusting }

// Reset clears every tile.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i].Clear()
	}
}

// CountKind returns how many tiles currently hold the given kind.
func (g *Grid) CountKind(k TileKind) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].kind == k {
			n++
		}
	}
	return n
}
