package game

type EventType int

const (
	EventReset EventType = iota
	EventInitialized
	EventTileAdded
	EventMoved
	EventTileRemoved
	EventAppleEaten
	EventFlipped
	EventCrashed
	EventRevived
	EventMoveFailed
	EventRepaired
	EventSettingChanged
)

type Event struct {
	Type EventType
	Dir  Direction
	Tile *Tile // target cell where one exists (added/moved/removed/eaten)
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
