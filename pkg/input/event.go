package input

// EventType 输入事件类型
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventClick
	EventMouseMove
	EventPointerLock
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventClick:
		return "click"
	case EventMouseMove:
		return "mousemove"
	case EventPointerLock:
		return "pointerlock"
	}
	return "unknown"
}

// Event is one host input occurrence.
type Event struct {
	Type   EventType
	Key    Key     // KeyDown / KeyUp
	DX, DY float64 // MouseMove
	Locked bool    // PointerLock
}

func KeyDown(k Key) Event             { return Event{Type: EventKeyDown, Key: k} }
func KeyUp(k Key) Event               { return Event{Type: EventKeyUp, Key: k} }
func Click() Event                    { return Event{Type: EventClick} }
func MouseMove(dx, dy float64) Event  { return Event{Type: EventMouseMove, DX: dx, DY: dy} }
func PointerLockChanged(l bool) Event { return Event{Type: EventPointerLock, Locked: l} }

// Queue is a FIFO of events. Push may be called by the host adapter; Drain is
// called once per frame by the game.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns queued events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *Queue) Len() int {
	return len(q.events)
}
