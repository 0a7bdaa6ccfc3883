package generator

import (
	"testing"

	"darkdepths/pkg/engine/rng"
	"darkdepths/pkg/engine/world"
)

func mazeGen(t *testing.T, seed int64) *MazeGenerator {
	t.Helper()
	g := NewMazeGenerator(rng.New(seed))
	return g
}

func TestGenerate_PerimeterIsAlwaysWall(t *testing.T) {
	g := mazeGen(t, 1)
	for floor := 1; floor <= 8; floor++ {
		f := g.Generate(floor)
		f.ForEachTile(func(x, y int, tile world.Tile) {
			if f.OnPerimeter(x, y) && tile.Kind != world.KindWall {
				t.Errorf("floor %d: perimeter cell (%d,%d) = %v, want wall", floor, x, y, tile.Kind)
			}
		})
	}
}

func TestGenerate_DensityFloor(t *testing.T) {
	g := mazeGen(t, 2)
	for floor := 1; floor <= 8; floor++ {
		f := g.Generate(floor)
		walkable := f.WalkableCount()
		minimum := f.Width * f.Height * 3 / 10
		if walkable < minimum {
			t.Errorf("floor %d: walkable count %d below 30%% floor of %d", floor, walkable, minimum)
		}
	}
}

func TestGenerate_DoorGeometry(t *testing.T) {
	g := mazeGen(t, 3)
	for floor := 1; floor <= 6; floor++ {
		f := g.Generate(floor)
		f.ForEachTile(func(x, y int, tile world.Tile) {
			if tile.Kind != world.KindDoor {
				return
			}
			for _, d := range [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
				if !f.Tile(x+d[0], y+d[1]).WallLike() {
					t.Errorf("floor %d: door (%d,%d) has floor-like diagonal neighbor", floor, x, y)
				}
			}
			horizontal := f.Tile(x-1, y).FloorLike() && f.Tile(x+1, y).FloorLike()
			vertical := f.Tile(x, y-1).FloorLike() && f.Tile(x, y+1).FloorLike()
			if horizontal == vertical {
				t.Errorf("floor %d: door (%d,%d) is not a corridor throat", floor, x, y)
			}
		})
	}
}

func TestGenerate_JackPlacement(t *testing.T) {
	g := mazeGen(t, 4)
	g.MaxDepth = 4

	for floor := 1; floor <= 4; floor++ {
		f := g.Generate(floor)
		if f.Jacks.Entry == nil {
			t.Errorf("floor %d: no entry jack", floor)
		} else if got := f.Tile(f.Jacks.Entry.X, f.Jacks.Entry.Y); got.Kind != world.KindJackEntry {
			t.Errorf("floor %d: entry jack position holds %v", floor, got.Kind)
		}

		if floor < g.MaxDepth {
			if f.Jacks.Deep == nil {
				t.Errorf("floor %d: no deep jack above max depth", floor)
			}
		} else if f.Jacks.Deep != nil {
			t.Errorf("deepest floor %d: unexpectedly has a deep jack", floor)
		}
	}
}

func TestGenerate_LegacyJackAliases(t *testing.T) {
	f := mazeGen(t, 5).Generate(1)
	if f.Jacks.Up() != f.Jacks.Entry {
		t.Error("Jacks.Up() should alias Entry")
	}
	if f.Jacks.Down() != f.Jacks.Deep {
		t.Error("Jacks.Down() should alias Deep")
	}
}

func TestGenerate_EncounterCountAndPositions(t *testing.T) {
	f := mazeGen(t, 6).Generate(3)
	if len(f.Encounters) < 5 || len(f.Encounters) > 12 {
		t.Fatalf("encounter count = %d, want 5..12", len(f.Encounters))
	}

	seen := make(map[world.Position]bool)
	for _, e := range f.Encounters {
		pos := world.Position{X: e.X, Y: e.Y}
		if seen[pos] {
			t.Errorf("two encounters share position (%d,%d)", e.X, e.Y)
		}
		seen[pos] = true
		if e.MonsterID == "" {
			t.Errorf("encounter at (%d,%d) has no monster id", e.X, e.Y)
		}
		if e.Triggered {
			t.Errorf("freshly generated encounter at (%d,%d) is already triggered", e.X, e.Y)
		}
	}
}

func TestGenerate_SpecialSquares(t *testing.T) {
	f := mazeGen(t, 7).Generate(2)
	if len(f.Specials) < 2 || len(f.Specials) > 5 {
		t.Fatalf("special square count = %d, want 2..5", len(f.Specials))
	}
	for _, sq := range f.Specials {
		if sq.Kind == "" || sq.Message == "" {
			t.Errorf("special at (%d,%d) missing kind or message", sq.X, sq.Y)
		}
		if sq.Used {
			t.Errorf("special at (%d,%d) starts used", sq.X, sq.Y)
		}
	}
}

func TestGenerate_TrapsKeepClearOfJacksAndSpecials(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := mazeGen(t, seed)
		for floor := 1; floor <= 6; floor++ {
			f := g.Generate(floor)
			check := func(what string, x, y int) {
				if g.nextToTrap(f, x, y) {
					t.Errorf("seed %d floor %d: %s at (%d,%d) has a trap next to it", seed, floor, what, x, y)
				}
			}
			if f.Jacks.Entry != nil {
				check("entry jack", f.Jacks.Entry.X, f.Jacks.Entry.Y)
			}
			if f.Jacks.Deep != nil {
				check("deep jack", f.Jacks.Deep.X, f.Jacks.Deep.Y)
			}
			for _, sq := range f.Specials {
				check("special square", sq.X, sq.Y)
			}
		}
	}
}

func TestGenerate_DeepFloorsNeverPanic(t *testing.T) {
	g := mazeGen(t, 8)
	for _, floor := range []int{1, 5, 10, 16, 25, 100} {
		f := g.Generate(floor)
		if f == nil {
			t.Fatalf("Generate(%d) returned nil", floor)
		}
	}
}
