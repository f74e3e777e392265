package game

// TileKind classifies what currently occupies a tile.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
	TileApple
	TileSnake
)

// Tile is one grid cell: a fixed address plus mutable occupancy state.
// Tiles are owned by a Grid and referenced by pointer; the snake body
// never copies them.
type Tile struct {
	Row, Col int

	kind   TileKind
	marker int // player marker while kind == TileSnake
	dirs   Direction
}

func (t *Tile) Kind() TileKind { return t.kind }
func (t *Tile) Marker() int    { return t.marker }
func (t *Tile) Dirs() Direction { return t.dirs }

func (t *Tile) IsEmpty() bool { return t.kind == TileEmpty }
func (t *Tile) IsApple() bool { return t.kind == TileApple }
func (t *Tile) IsWall() bool  { return t.kind == TileWall }
func (t *Tile) IsSnake() bool { return t.kind == TileSnake }

// SetState replaces the tile's direction flags.
func (t *Tile) SetState(d Direction) { t.dirs = d & DirAll }

// AddDirection sets an additional direction flag.
func (t *Tile) AddDirection(d Direction) { t.dirs |= d & DirAll }

// RemoveDirection clears a direction flag.
func (t *Tile) RemoveDirection(d Direction) { t.dirs &^= d }

// Flip inverts every direction flag on the tile.
func (t *Tile) Flip() { t.dirs = t.dirs.Invert() }

// SetSnake marks the tile as snake-occupied with the given player marker.
func (t *Tile) SetSnake(marker int) {
	t.kind = TileSnake
	t.marker = marker
}

// SetKind changes the occupant kind, clearing any stale player marker.
func (t *Tile) SetKind(k TileKind) {
	t.kind = k
	if k != TileSnake {
		t.marker = 0
	}
}

// Clear resets the tile to empty with no direction flags.
func (t *Tile) Clear() {
	t.kind = TileEmpty
	t.marker = 0
	t.dirs = DirNone
}
