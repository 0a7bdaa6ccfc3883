// Package gameplay provides the navigation and interaction rules: moving
// and turning, doors, encounter checks, secret searches and floor
// changes. All game-rule failures are boolean results, never errors.
package gameplay

import (
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/events"
	"darkdepths/pkg/game/state"
)

// MoveDirection is a movement request relative to the current facing.
type MoveDirection int

// Relative movement directions
const (
	Forward MoveDirection = iota
	Backward
)

// TurnDirection is a quarter-turn request.
type TurnDirection int

// Turn directions
const (
	Left TurnDirection = iota
	Right
)

// Turn rotates the player's facing in place.
func Turn(s *state.Session, dir TurnDirection) {
	if dir == Left {
		s.Facing = s.Facing.TurnLeft()
	} else {
		s.Facing = s.Facing.TurnRight()
	}
}

// Move attempts one step forward or backward from the current facing,
// wrapping toroidally on both axes. On success the pose updates, tile
// enter/leave notifications fire, position-entry checks run and fog of
// war extends from the new position. On failure the pose is untouched
// and Move returns false.
func Move(s *state.Session, dir MoveDirection) bool {
	f := s.ActiveFloor()

	facing := s.Facing
	if dir == Backward {
		facing = facing.Opposite()
	}
	dx, dy := facing.Delta()
	nx := world.Wrap(s.X+dx, f.Width)
	ny := world.Wrap(s.Y+dy, f.Height)

	target := f.Tile(nx, ny)
	if !target.Walkable() {
		return false
	}

	left := f.Tile(s.X, s.Y)
	s.X, s.Y = nx, ny

	emitTileTransitions(s, left, target)
	runEntryChecks(s, target)
	s.MarkExplored(s.X, s.Y, state.FogRadius)

	return true
}

// emitTileTransitions fires the leave notification for the tile stepped
// off and the enter notification for the tile stepped onto. A leave only
// fires when the new tile is not the same kind.
func emitTileTransitions(s *state.Session, left, entered world.Tile) {
	if left.Kind != entered.Kind {
		switch {
		case left.Kind == world.KindExit:
			events.Emit(s.Events, eventAt(s, events.ExitTileLeft))
		case left.IsJack() && !entered.IsJack():
			events.Emit(s.Events, eventAt(s, events.JackTileLeft))
		case left.Kind == world.KindTreasure:
			events.Emit(s.Events, eventAt(s, events.TreasureTileLeft))
		}
	}

	switch entered.Kind {
	case world.KindExit:
		events.Emit(s.Events, eventAt(s, events.ExitTileEntered))
	case world.KindJackEntry:
		events.Emit(s.Events, eventAt(s, events.JackEntryTileEntered))
	case world.KindJackDeep:
		events.Emit(s.Events, eventAt(s, events.JackDeepTileEntered))
	case world.KindTreasure:
		events.Emit(s.Events, eventAt(s, events.TreasureTileEntered))
	}
}

// runEntryChecks runs the trap, encounter and special-square checks for
// the cell just entered.
func runEntryChecks(s *state.Session, entered world.Tile) {
	if entered.Kind == world.KindTrap && !s.Discovery.TrapDisarmed(s.CurrentFloor, s.X, s.Y) {
		ev := eventAt(s, events.TrapTriggered)
		ev.Trap = entered.Trap
		events.Emit(s.Events, ev)
	}

	if e := CheckEncounter(s); e != nil {
		ev := eventAt(s, events.EncounterTriggered)
		ev.X, ev.Y = e.X, e.Y
		ev.Encounter = e
		events.Emit(s.Events, ev)
	}

	checkSpecialSquare(s)
}

// eventAt builds an event stamped with the current pose and floor.
func eventAt(s *state.Session, typ events.Type) events.Event {
	return events.Event{Type: typ, Floor: s.CurrentFloor, X: s.X, Y: s.Y}
}

func checkSpecialSquare(s *state.Session) {
	sq := s.ActiveFloor().SpecialAt(s.X, s.Y)
	if sq == nil || sq.Used || s.Discovery.SpecialUsed(s.CurrentFloor, s.X, s.Y) {
		return
	}
	ev := eventAt(s, events.SpecialSquareFound)
	ev.Special = sq
	ev.Message = sq.Message
	events.Emit(s.Events, ev)
}
