package state

import (
	"testing"

	"darkdepths/pkg/engine/rng"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/generator"
)

func devSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(&generator.DevMapGenerator{}, rng.New(1), nil)
}

func TestFloorCaching(t *testing.T) {
	s := NewSession(nil, rng.New(1), nil)
	first := s.Floor(3)
	second := s.Floor(3)
	if first != second {
		t.Error("Floor(3) returned different instances on revisit")
	}
}

func TestFloorCachingKeepsMutations(t *testing.T) {
	s := devSession(t)
	f := s.Floor(1)
	f.SetTile(3, 2, world.Tile{Kind: world.KindDoor, Open: true})

	if got := s.Floor(1).Tile(3, 2); !got.Open {
		t.Error("tile mutation lost after refetching the cached floor")
	}
}

func TestMarkEncounterDefeated(t *testing.T) {
	s := devSession(t)
	f := s.Floor(1)
	f.Encounters = []world.Encounter{{X: 6, Y: 2, Level: 1}}

	if !s.MarkEncounterDefeated(1, 6, 2) {
		t.Fatal("MarkEncounterDefeated on an existing encounter returned false")
	}
	if f.EncounterAt(6, 2) != nil {
		t.Error("defeated encounter still detected at its position")
	}
	if s.MarkEncounterDefeated(1, 6, 2) {
		t.Error("second defeat call on the same position returned true")
	}
	if s.MarkEncounterDefeated(1, 0, 0) {
		t.Error("defeat call on an empty position returned true")
	}
}

func TestMarkExplored_LineOfSightGate(t *testing.T) {
	s := devSession(t)
	s.CurrentFloor = 1
	s.MarkExplored(1, 2, 4)

	// Room A is in plain sight of its center.
	for _, pos := range []world.Position{{X: 0, Y: 1}, {X: 2, Y: 3}, {X: 2, Y: 2}} {
		if !s.Discovery.TileExplored(1, pos.X, pos.Y) {
			t.Errorf("cell (%d,%d) in the same room should be explored", pos.X, pos.Y)
		}
	}

	// The closed door at (3,2) occludes everything beyond it.
	for _, pos := range []world.Position{{X: 4, Y: 2}, {X: 5, Y: 2}} {
		if s.Discovery.TileExplored(1, pos.X, pos.Y) {
			t.Errorf("cell (%d,%d) behind the closed door leaked through fog", pos.X, pos.Y)
		}
	}
}

func TestMarkExplored_RadiusBound(t *testing.T) {
	s := devSession(t)
	s.MarkExplored(1, 2, 2)

	if s.Discovery.TileExplored(1, 6, 2) {
		t.Error("cell far outside the radius was explored")
	}
}

func TestMarkExplored_OpenDoorRevealsCorridor(t *testing.T) {
	s := devSession(t)
	f := s.Floor(1)
	f.SetTile(3, 2, world.Tile{Kind: world.KindDoor, Open: true})

	s.MarkExplored(1, 2, 4)
	if !s.Discovery.TileExplored(1, 4, 2) {
		t.Error("corridor cell behind an open door should be explored")
	}
}

func TestStartFallsBackToFirstWalkable(t *testing.T) {
	// The dev map has no jacks, so Start must fall back to a scan
	// instead of leaving the pose at an arbitrary value.
	s := devSession(t)
	s.Start()

	if !s.ActiveFloor().Tile(s.X, s.Y).Walkable() {
		t.Errorf("Start landed on non-walkable tile (%d,%d)", s.X, s.Y)
	}
	if s.Facing != world.North {
		t.Errorf("Start facing = %v, want North", s.Facing)
	}
}

func TestDiscoverySetsAreIndependent(t *testing.T) {
	d := NewDiscovery()
	d.DisarmTrap(2, 4, 4)

	if d.SpecialUsed(2, 4, 4) {
		t.Error("disarming a trap marked the special set")
	}
	if d.TileExplored(2, 4, 4) {
		t.Error("disarming a trap marked the explored set")
	}
	if !d.TrapDisarmed(2, 4, 4) {
		t.Error("disarmed trap not found in the disarmed set")
	}
	if d.TrapDisarmed(3, 4, 4) {
		t.Error("disarmed set ignored the floor namespace")
	}
}

func TestSecretKeysIncludeKind(t *testing.T) {
	d := NewDiscovery()
	d.MarkSecret(1, 5, 5, world.KindHiddenDoor)

	if !d.SecretKnown(1, 5, 5, world.KindHiddenDoor) {
		t.Error("marked secret not found")
	}
	if d.SecretKnown(1, 5, 5, world.KindSecretPassage) {
		t.Error("secret lookup ignored the tile kind")
	}
}
