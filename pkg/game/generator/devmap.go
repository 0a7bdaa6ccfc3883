package generator

import (
	"darkdepths/pkg/engine/world"
)

// DevMapGenerator produces a fixed, hand-laid 9x5 floor with two rooms
// joined by a single door and corridor cell. It is the deterministic
// fixture for walkthrough checks and the CLI's dev mode; unlike
// procedurally generated floors it has open cells on the west edge, which
// also makes it the natural place to exercise toroidal wrap.
type DevMapGenerator struct{}

// Name returns the name of this generator
func (g *DevMapGenerator) Name() string {
	return "Dev Two-Room Map"
}

// Generate returns the fixed layout regardless of floor number:
//
//	x:  0 1 2 3 4 5 6 7 8
//	y0  # # # # # # # # #
//	y1  . . . # # . . . #
//	y2  . E . D c . T . #
//	y3  . . . # # . . . #
//	y4  # # # # # # # # #
//
// E is the exit tile, D the (closed) door, c the corridor cell and T the
// treasure tile.
func (g *DevMapGenerator) Generate(floorNumber int) *world.Floor {
	f := world.NewFloor(floorNumber, 9, 5)

	for y := 1; y <= 3; y++ {
		for x := 0; x <= 2; x++ {
			f.SetTile(x, y, world.FloorTile)
		}
		for x := 5; x <= 7; x++ {
			f.SetTile(x, y, world.FloorTile)
		}
	}

	f.SetTile(3, 2, world.Tile{Kind: world.KindDoor})
	f.SetTile(4, 2, world.FloorTile)
	f.SetTile(1, 2, world.Tile{Kind: world.KindExit})
	f.SetTile(6, 2, world.Tile{Kind: world.KindTreasure})

	return f
}
