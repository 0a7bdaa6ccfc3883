// Package state holds the session: the player pose, the floor arena and
// the discovery tracker. Floors are generated lazily and cached for the
// session, so revisiting a floor returns the same instance with all its
// accumulated mutations.
package state

import (
	"log"

	"darkdepths/pkg/engine/rng"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/bestiary"
	"darkdepths/pkg/game/events"
	"darkdepths/pkg/game/generator"
)

// Session is the single mutable aggregate for one play session. There is
// exactly one active pose and one active floor; floor grids are owned by
// the arena and discovery sets by the session.
type Session struct {
	// Pose
	X            int
	Y            int
	Facing       world.Direction
	CurrentFloor int

	Gen    generator.FloorGenerator
	Rng    rng.Source
	Events events.Sink

	// Monsters supplies monster data for encounters on floors entered
	// during play. Nil leaves encounters unhydrated.
	Monsters bestiary.Source

	floors map[int]*world.Floor

	Discovery *Discovery

	Messages []string
}

// NewSession creates a session wired to the given collaborators. A nil
// generator falls back to the package default; a nil event sink is
// tolerated (notifications are dropped).
func NewSession(gen generator.FloorGenerator, src rng.Source, sink events.Sink) *Session {
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	if src == nil {
		src = rng.New(0)
	}
	return &Session{
		Facing:       world.North,
		CurrentFloor: 1,
		Gen:          gen,
		Rng:          src,
		Events:       sink,
		floors:       make(map[int]*world.Floor),
		Discovery:    NewDiscovery(),
	}
}

// Floor returns the floor for a number, generating and caching it on
// first use.
func (s *Session) Floor(number int) *world.Floor {
	if f, ok := s.floors[number]; ok {
		return f
	}
	f := s.Gen.Generate(number)
	s.floors[number] = f
	return f
}

// ActiveFloor returns the floor the player is currently on.
func (s *Session) ActiveFloor() *world.Floor {
	return s.Floor(s.CurrentFloor)
}

// CachedFloors returns the floor arena keyed by number. The persistence
// codec iterates this; nothing else should hold onto it.
func (s *Session) CachedFloors() map[int]*world.Floor {
	return s.floors
}

// PutFloor installs a restored floor into the arena, replacing any
// generated instance for that number.
func (s *Session) PutFloor(f *world.Floor) {
	s.floors[f.Number] = f
}

// Start places the player on floor 1's entry jack facing north, falling
// back to a grid scan and then the first walkable tile.
func (s *Session) Start() {
	s.CurrentFloor = 1
	s.Facing = world.North
	f := s.ActiveFloor()

	if pos := s.jackPosition(f, world.KindJackEntry); pos != nil {
		s.X, s.Y = pos.X, pos.Y
	} else if pos, ok := firstWalkable(f); ok {
		s.X, s.Y = pos.X, pos.Y
	}
	s.MarkExplored(s.X, s.Y, FogRadius)
}

// jackPosition resolves a jack coordinate: stored position first, then a
// full tile scan, then a logged warning and nil.
func (s *Session) jackPosition(f *world.Floor, kind world.TileKind) *world.Position {
	var stored *world.Position
	if kind == world.KindJackEntry {
		stored = f.Jacks.Entry
	} else {
		stored = f.Jacks.Deep
	}
	if stored != nil {
		return stored
	}
	if pos, ok := f.FindTile(kind); ok {
		return &pos
	}
	log.Printf("floor %d has no %v tile; leaving pose unset", f.Number, kind)
	return nil
}

// JackPosition resolves where the player should land when arriving on a
// floor via the given jack kind.
func (s *Session) JackPosition(f *world.Floor, kind world.TileKind) *world.Position {
	return s.jackPosition(f, kind)
}

func firstWalkable(f *world.Floor) (world.Position, bool) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Tile(x, y).Walkable() {
				return world.Position{X: x, Y: y}, true
			}
		}
	}
	return world.Position{}, false
}

// AddMessage adds a message to the session's bounded message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = nil
}

// MarkEncounterDefeated flips the triggered flag on the encounter at the
// exact position of the given floor. Returns false if no untriggered
// encounter sits there.
func (s *Session) MarkEncounterDefeated(floor, x, y int) bool {
	e := s.Floor(floor).EncounterAt(x, y)
	if e == nil {
		return false
	}
	e.Triggered = true
	return true
}
