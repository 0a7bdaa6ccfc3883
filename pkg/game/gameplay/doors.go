package gameplay

import (
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

// OpenDoorAt opens the door-family tile at the given coordinate.
// Returns false (and changes nothing) if the tile there is not a door,
// hidden door or secret passage, or is already open.
func OpenDoorAt(s *state.Session, x, y int) bool {
	return setDoorOpen(s, x, y, true)
}

// CloseDoorAt closes the door-family tile at the given coordinate.
func CloseDoorAt(s *state.Session, x, y int) bool {
	return setDoorOpen(s, x, y, false)
}

// OpenDoorAhead opens the door-family tile directly ahead of the
// player's facing.
func OpenDoorAhead(s *state.Session) bool {
	x, y := cellAhead(s)
	return OpenDoorAt(s, x, y)
}

// CloseDoorAhead closes the door-family tile directly ahead.
func CloseDoorAhead(s *state.Session) bool {
	x, y := cellAhead(s)
	return CloseDoorAt(s, x, y)
}

func cellAhead(s *state.Session) (int, int) {
	f := s.ActiveFloor()
	dx, dy := s.Facing.Delta()
	return world.Wrap(s.X+dx, f.Width), world.Wrap(s.Y+dy, f.Height)
}

func setDoorOpen(s *state.Session, x, y int, open bool) bool {
	f := s.ActiveFloor()
	t := f.Tile(x, y)
	if !t.DoorFamily() || t.Open == open {
		return false
	}
	t.Open = open
	f.SetTile(x, y, t)
	return true
}
