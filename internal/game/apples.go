package game

// AppleSystem keeps a target number of apples on the board, respawning a
// replacement a short delay after one is eaten.
type AppleSystem struct {
	grid       *Grid
	rng        *Rand
	target     int
	SpawnTimer float64
}

func NewAppleSystem(grid *Grid, seed uint64, target int) *AppleSystem {
	return &AppleSystem{
		grid:   grid,
		rng:    NewRand(seed),
		target: target,
	}
}

func (a *AppleSystem) Count() int {
	return a.grid.CountKind(TileApple)
}

// Update counts down the respawn timer and tops the board back up to the
// target apple count.
func (a *AppleSystem) Update(dt float64) {
	if a.Count() >= a.target {
		a.SpawnTimer = AppleRespawnTime
		return
	}
	a.SpawnTimer -= dt
	if a.SpawnTimer <= 0 {
		a.spawnOne()
		a.SpawnTimer = AppleRespawnTime
	}
}

// SpawnRandom places up to n apples immediately.
func (a *AppleSystem) SpawnRandom(n int) {
	for i := 0; i < n; i++ {
		if !a.spawnOne() {
			return
		}
	}
}

// spawnOne picks a random empty tile. A handful of random probes first,
// then a linear scan from a random offset so a crowded board still works.
func (a *AppleSystem) spawnOne() bool {
	rows, cols := a.grid.Rows(), a.grid.Cols()
	for i := 0; i < 16; i++ {
		t := a.grid.Tile(a.rng.Intn(rows), a.rng.Intn(cols))
		if t.IsEmpty() {
			t.SetKind(TileApple)
			return true
		}
	}
	total := rows * cols
	off := a.rng.Intn(total)
	for i := 0; i < total; i++ {
		idx := (off + i) % total
		t := a.grid.Tile(idx/cols, idx%cols)
		if t.IsEmpty() {
			t.SetKind(TileApple)
			return true
		}
	}
	return false
}

// PlaceWalls scatters small obstacle clusters, keeping the spawn row clear.
func PlaceWalls(grid *Grid, rng *Rand, clusters int) {
	spawnRow := grid.Rows() / 2
	for i := 0; i < clusters; i++ {
		r := rng.Range(1, grid.Rows()-2)
		c := rng.Range(1, grid.Cols()-2)
		if abs(r-spawnRow) < 2 {
			continue
		}
		length := rng.Range(2, 4)
		d := DirRight
		if rng.Intn(2) == 0 {
			d = DirDown
		}
		t := grid.Tile(r, c)
		for j := 0; j < length && t != nil; j++ {
			if t.IsEmpty() {
				t.SetKind(TileWall)
			}
			t = grid.Adjacent(t, d, false)
		}
	}
}
