package core

import "sync"

type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Resized/resolution changed from the OS.
	/* Context usage:
	 * data := context.Data.(*SystemEvent)
	 * data.WindowWidth, data.WindowHeight
	 */
	EVENT_CODE_RESIZED EventCode = 0x08

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

// SystemEvent is the payload of EVENT_CODE_RESIZED.
type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type FnOnEvent func(context EventContext)

// EventSystem dispatches events synchronously to the registered callbacks,
// in registration order. It is safe to fire from other goroutines
// (e.g. the OS signal handler).
type EventSystem struct {
	mu         sync.RWMutex
	registered map[EventCode][]FnOnEvent
}

func NewEventSystem() *EventSystem {
	return &EventSystem{
		registered: make(map[EventCode][]FnOnEvent),
	}
}

// Register listens for events sent with the provided code.
// Returns false for an out of range code or a nil callback.
func (es *EventSystem) Register(code EventCode, onEvent FnOnEvent) bool {
	if code > MAX_EVENT_CODE || onEvent == nil {
		return false
	}
	es.mu.Lock()
	defer es.mu.Unlock()
	es.registered[code] = append(es.registered[code], onEvent)
	return true
}

// Fire sends the event to every listener of its code and reports whether
// anybody was listening.
func (es *EventSystem) Fire(context EventContext) bool {
	es.mu.RLock()
	listeners := make([]FnOnEvent, len(es.registered[context.Type]))
	copy(listeners, es.registered[context.Type])
	es.mu.RUnlock()

	for _, l := range listeners {
		l(context)
	}
	return len(listeners) > 0
}

func (es *EventSystem) Shutdown() error {
	es.mu.Lock()
	defer es.mu.Unlock()
	// Free the events arrays. Listeners are destroyed on their own.
	es.registered = make(map[EventCode][]FnOnEvent)
	return nil
}
