package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Entity  EntityID
	Payload interface{}
}

type EventType uint16

const (
	EvtTileSpawned EventType = iota
	EvtUnitSpawned
	EvtUnitSelected
	EvtUnitDeselected
	EvtMoveOrdered
	EvtMoveCompleted
)

func (t EventType) String() string {
	switch t {
	case EvtTileSpawned:
		return "tile_spawned"
	case EvtUnitSpawned:
		return "unit_spawned"
	case EvtUnitSelected:
		return "unit_selected"
	case EvtUnitDeselected:
		return "unit_deselected"
	case EvtMoveOrdered:
		return "move_ordered"
	case EvtMoveCompleted:
		return "move_completed"
	default:
		return "unknown"
	}
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events in arrival order.
// Events emitted by handlers are delivered on the next Dispatch.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}
