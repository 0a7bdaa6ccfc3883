package gameplay

import (
	"testing"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/generator"
	"darkdepths/pkg/game/state"
)

func TestOpenAndCloseDoor(t *testing.T) {
	s, _ := devScenario(t, 2, 2, world.East)

	if !OpenDoorAt(s, 3, 2) {
		t.Fatal("opening a closed door failed")
	}
	if !s.ActiveFloor().Tile(3, 2).Open {
		t.Error("door tile not marked open")
	}
	if OpenDoorAt(s, 3, 2) {
		t.Error("opening an already open door reported success")
	}

	if !CloseDoorAt(s, 3, 2) {
		t.Fatal("closing an open door failed")
	}
	if s.ActiveFloor().Tile(3, 2).Open {
		t.Error("door tile still open after closing")
	}
	if CloseDoorAt(s, 3, 2) {
		t.Error("closing an already closed door reported success")
	}
}

func TestDoorOpsRejectNonDoors(t *testing.T) {
	s, _ := devScenario(t, 2, 2, world.East)

	if OpenDoorAt(s, 1, 1) {
		t.Error("opened a plain floor tile")
	}
	if OpenDoorAt(s, 0, 0) {
		t.Error("opened a wall")
	}
	if CloseDoorAt(s, 1, 1) {
		t.Error("closed a plain floor tile")
	}
}

func TestDoorAheadUsesFacing(t *testing.T) {
	s, _ := devScenario(t, 2, 2, world.East)

	if !OpenDoorAhead(s) {
		t.Fatal("door directly ahead did not open")
	}
	if !s.ActiveFloor().Tile(3, 2).Open {
		t.Error("door ahead not marked open")
	}
	if !CloseDoorAhead(s) {
		t.Fatal("door directly ahead did not close")
	}

	s.Facing = world.North
	if OpenDoorAhead(s) {
		t.Error("opened something while facing away from the door")
	}
}

func TestDoorAheadWraps(t *testing.T) {
	doorOnEdge := func(n int) *world.Floor {
		f := openCage(n)
		f.SetTile(3, 1, world.Tile{Kind: world.KindDoor})
		return f
	}
	s := state.NewSession(genFunc(doorOnEdge), &scriptedRng{}, nil)
	s.X, s.Y = 0, 1
	s.Facing = world.West

	if !OpenDoorAhead(s) {
		t.Fatal("facing west off the grid edge did not reach the wrapped door")
	}
	if !s.ActiveFloor().Tile(3, 1).Open {
		t.Error("wrapped door not marked open")
	}
}

func TestOpenSecretPassage(t *testing.T) {
	s := state.NewSession(&generator.DevMapGenerator{}, &scriptedRng{}, nil)
	s.ActiveFloor().SetTile(4, 1, world.Tile{Kind: world.KindSecretPassage})

	if !OpenDoorAt(s, 4, 1) {
		t.Fatal("secret passages must open like doors once found")
	}
	if !s.ActiveFloor().Tile(4, 1).Walkable() {
		t.Error("opened secret passage is not walkable")
	}
}
