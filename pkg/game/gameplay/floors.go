package gameplay

import (
	"context"
	"log"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

// Vertical is a floor-change request.
type Vertical int

// Floor change directions
const (
	Up Vertical = iota
	Down
)

// FloorChange is the outcome of a ChangeFloor call.
type FloorChange int

// Floor change outcomes
const (
	// FloorChangeBlocked means the player was not standing on the
	// matching jack tile; nothing changed.
	FloorChangeBlocked FloorChange = iota

	// FloorChangeMoved means the player transitioned to another floor.
	FloorChangeMoved

	// FloorChangeTown means the player took the entry jack out of
	// floor 1; the caller handles the return to town.
	FloorChangeTown
)

// ChangeFloor moves the player between floors via the jack the player is
// standing on. Going up requires standing on an entry jack, going down a
// deep jack; anything else is blocked. The target floor is generated
// lazily and cached, so revisits keep all accumulated state.
func ChangeFloor(s *state.Session, dir Vertical) FloorChange {
	f := s.ActiveFloor()
	here := f.Tile(s.X, s.Y)

	if dir == Up {
		if here.Kind != world.KindJackEntry {
			return FloorChangeBlocked
		}
		if s.CurrentFloor == 1 {
			return FloorChangeTown
		}
		s.CurrentFloor--
		arriveAt(s, world.KindJackDeep)
		return FloorChangeMoved
	}

	if here.Kind != world.KindJackDeep {
		return FloorChangeBlocked
	}
	s.CurrentFloor++
	arriveAt(s, world.KindJackEntry)
	return FloorChangeMoved
}

// arriveAt positions the player on the counterpart jack of the floor
// just entered, hydrates the floor's encounters and extends fog of war.
// When the jack is truly absent the resolver logs a warning and the
// pose keeps its old coordinates.
func arriveAt(s *state.Session, kind world.TileKind) {
	f := s.ActiveFloor()
	if pos := s.JackPosition(f, kind); pos != nil {
		s.X, s.Y = pos.X, pos.Y
	}
	if err := HydrateEncounters(context.Background(), s.Monsters, f); err != nil {
		log.Printf("hydrating floor %d encounters: %v", f.Number, err)
	}
	s.MarkExplored(s.X, s.Y, state.FogRadius)
}
