package generator

import (
	"testing"

	"darkdepths/pkg/engine/world"
)

func TestDevMapLayout(t *testing.T) {
	f := (&DevMapGenerator{}).Generate(1)

	if f.Width != 9 || f.Height != 5 {
		t.Fatalf("dev map size = %dx%d, want 9x5", f.Width, f.Height)
	}

	checks := []struct {
		x, y int
		kind world.TileKind
	}{
		{1, 2, world.KindExit},
		{3, 2, world.KindDoor},
		{4, 2, world.KindFloor},
		{6, 2, world.KindTreasure},
		{0, 1, world.KindFloor},
		{2, 3, world.KindFloor},
		{5, 1, world.KindFloor},
		{7, 3, world.KindFloor},
		{4, 0, world.KindWall},
		{3, 1, world.KindWall},
		{8, 2, world.KindWall},
	}
	for _, c := range checks {
		if got := f.Tile(c.x, c.y).Kind; got != c.kind {
			t.Errorf("tile (%d,%d) = %v, want %v", c.x, c.y, got, c.kind)
		}
	}

	if f.Tile(3, 2).Open {
		t.Error("dev map door should start closed")
	}
}
