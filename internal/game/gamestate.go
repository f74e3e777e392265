package game

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
)

// GameSession tracks the run state around the snake core: score, tick
// pacing, and menu/playing transitions. A crash is not the end of a run;
// the snake stays on the board until revived or the run is abandoned.
type GameSession struct {
	State     GameState
	Score     int
	BestScore int
	Ticks     int

	moveTimer    float64
	moveInterval float64
}

func NewGameSession(events *EventBus) *GameSession {
	s := &GameSession{
		State:        StateMenu,
		moveInterval: MoveInterval,
	}
	events.Subscribe(EventAppleEaten, func(Event) {
		s.Score++
		// Eating speeds the game up, down to the floor interval.
		s.moveInterval = clampF(s.moveInterval-SpeedupPerApple,
			MinMoveInterval, MoveInterval)
	})
	return s
}

// StartRun resets the board and seeds a fresh snake mid-board.
func (s *GameSession) StartRun(grid *Grid, snake *Snake, queue *ActionQueue, apples *AppleSystem, seed uint64) error {
	if s.Score > s.BestScore {
		s.BestScore = s.Score
	}
	s.Score = 0
	s.Ticks = 0
	s.moveTimer = 0
	s.moveInterval = MoveInterval

	queue.Clear()
	snake.Reset()
	grid.Reset()
	PlaceWalls(grid, NewRand(seed^0xA11), WallClusters)

	start := grid.Tile(grid.Rows()/2, grid.Cols()/4)
	if err := snake.Initialize(start); err != nil {
		return err
	}
	// Grow to the starting length along the facing direction.
	for i := 1; i < StartLength; i++ {
		if ok, err := snake.Add(DirNone); err != nil || !ok {
			break
		}
	}
	apples.SpawnRandom(AppleTarget)

	s.State = StatePlaying
	return nil
}

// Tick accumulates frame time and reports how many game ticks elapsed.
// One tick = one queue consumption.
func (s *GameSession) Tick(dt float64) int {
	if s.State != StatePlaying {
		return 0
	}
	s.moveTimer += dt
	n := 0
	for s.moveTimer >= s.moveInterval {
		s.moveTimer -= s.moveInterval
		s.Ticks++
		n++
	}
	return n
}

// EndRun returns to the menu, keeping the best score.
func (s *GameSession) EndRun() {
	if s.Score > s.BestScore {
		s.BestScore = s.Score
	}
	s.State = StateMenu
}
