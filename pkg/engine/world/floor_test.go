package world

import "testing"

func TestTileWraparound(t *testing.T) {
	f := NewFloor(1, 7, 5)
	f.SetTile(2, 3, FloorTile)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			base := f.Tile(x, y)
			if got := f.Tile(x+f.Width, y); got != base {
				t.Fatalf("Tile(%d+w,%d) = %+v, want %+v", x, y, got, base)
			}
			if got := f.Tile(x-f.Width, y); got != base {
				t.Fatalf("Tile(%d-w,%d) = %+v, want %+v", x, y, got, base)
			}
			if got := f.Tile(x, y+f.Height); got != base {
				t.Fatalf("Tile(%d,%d+h) = %+v, want %+v", x, y, got, base)
			}
			if got := f.Tile(x, y-f.Height); got != base {
				t.Fatalf("Tile(%d,%d-h) = %+v, want %+v", x, y, got, base)
			}
		}
	}
}

func TestSetTileWraps(t *testing.T) {
	f := NewFloor(1, 4, 4)
	f.SetTile(-1, -1, FloorTile)
	if got := f.Tile(3, 3); got != FloorTile {
		t.Errorf("SetTile(-1,-1) did not land on (3,3): got %+v", got)
	}
}

func TestStampPerimeter(t *testing.T) {
	f := NewFloor(1, 6, 4)
	f.ForEachTile(func(x, y int, _ Tile) {
		f.SetTile(x, y, FloorTile)
	})
	f.StampPerimeter()

	f.ForEachTile(func(x, y int, tile Tile) {
		onEdge := f.OnPerimeter(x, y)
		if onEdge && tile != WallTile {
			t.Errorf("perimeter cell (%d,%d) = %+v, want wall", x, y, tile)
		}
		if !onEdge && tile != FloorTile {
			t.Errorf("interior cell (%d,%d) = %+v, want floor", x, y, tile)
		}
	})
}

func TestFindTile(t *testing.T) {
	f := NewFloor(1, 5, 5)
	f.SetTile(3, 2, Tile{Kind: KindJackDeep})

	pos, ok := f.FindTile(KindJackDeep)
	if !ok || pos.X != 3 || pos.Y != 2 {
		t.Errorf("FindTile(KindJackDeep) = %+v, %v, want (3,2), true", pos, ok)
	}
	if _, ok := f.FindTile(KindTreasure); ok {
		t.Error("FindTile(KindTreasure) found a tile on an empty floor")
	}
}

func TestEncounterLookups(t *testing.T) {
	f := NewFloor(1, 10, 10)
	f.Encounters = []Encounter{
		{X: 4, Y: 4, Level: 1},
		{X: 8, Y: 8, Level: 1, Triggered: true},
	}

	if e := f.EncounterAt(4, 4); e == nil {
		t.Fatal("EncounterAt(4,4) = nil, want the placed encounter")
	}
	if e := f.EncounterAt(8, 8); e != nil {
		t.Error("EncounterAt(8,8) returned a triggered encounter")
	}
	if e := f.EncounterNear(5, 5); e == nil {
		t.Error("EncounterNear(5,5) = nil, want encounter at Chebyshev distance 1")
	}
	if e := f.EncounterNear(6, 4); e != nil {
		t.Error("EncounterNear(6,4) found an encounter two cells away")
	}
}

func TestWalkableCountCategories(t *testing.T) {
	f := NewFloor(1, 4, 4)
	f.SetTile(1, 1, FloorTile)
	f.SetTile(2, 1, TrapTile(TrapPit))
	f.SetTile(1, 2, Tile{Kind: KindHiddenDoor})
	f.SetTile(2, 2, Tile{Kind: KindDoor}) // doors do not count

	if got := f.WalkableCount(); got != 3 {
		t.Errorf("WalkableCount() = %d, want 3 (floor, trap, hidden door)", got)
	}
}
