// Package events defines the notification boundary between the engine
// and whatever front end consumes it. The sink is injected at session
// construction; nothing in the engine reaches for a global bus.
package events

import "darkdepths/pkg/engine/world"

// Type tags the notification kinds emitted by navigation and discovery.
type Type string

// Notification types
const (
	ExitTileEntered      Type = "exit-tile-entered"
	ExitTileLeft         Type = "exit-tile-left"
	JackEntryTileEntered Type = "jack-entry-tile-entered"
	JackDeepTileEntered  Type = "jack-deep-tile-entered"
	JackTileLeft         Type = "jack-tile-left"
	TreasureTileEntered  Type = "treasure-tile-entered"
	TreasureTileLeft     Type = "treasure-tile-left"
	TrapTriggered        Type = "trap-triggered"
	EncounterTriggered   Type = "encounter-triggered"
	SpecialSquareFound   Type = "special-square-found"
)

// Event carries a notification's position, floor and payload. Only the
// fields relevant to the Type are set.
type Event struct {
	Type  Type
	Floor int
	X     int
	Y     int

	Trap      world.TrapKind
	Encounter *world.Encounter
	Special   *world.SpecialSquare
	Message   string
}

// Sink receives engine notifications, fire and forget.
type Sink interface {
	Emit(Event)
}

// Emit sends an event to the sink if one is attached.
func Emit(s Sink, e Event) {
	if s != nil {
		s.Emit(e)
	}
}

// Queue is a buffering sink for tests and the CLI. Events accumulate
// until drained.
type Queue struct {
	events []Event
}

// Emit appends the event to the queue.
func (q *Queue) Emit(e Event) {
	q.events = append(q.events, e)
}

// Drain returns and clears all buffered events.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}
