// Package view computes the renderer feed: a bounded, purely descriptive
// set of walls, doors, passages, monsters and objects visible from the
// current pose. It mutates nothing; the renderer that consumes the feed
// lives outside this repository.
package view

import (
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

// ViewDistance is how many cells ahead the forward scan covers.
const ViewDistance = 5

// BandHalfWidth is the perpendicular scan range on each side of the
// forward axis.
const BandHalfWidth = 2

// sideProbeDepth is how far the side-wall pass probes outward per side.
const sideProbeDepth = 3

// Feature is one visible tile, located by forward distance and
// perpendicular offset relative to the facing (negative offsets are to
// the player's left).
type Feature struct {
	X        int
	Y        int
	Distance int
	Offset   int
	Kind     world.TileKind

	// Framing marks a wall that bounds a corridor mouth, giving the
	// renderer doorway context at the edges of the view cone.
	Framing bool
}

// MonsterSighting is an untriggered encounter on the forward axis.
type MonsterSighting struct {
	Distance  int
	Encounter *world.Encounter
}

// Info is the full renderer feed for one pose.
type Info struct {
	Walls    []Feature
	Doors    []Feature
	Passages []Feature
	Monsters []MonsterSighting
	Objects  []Feature
	Facing   world.Direction
	Position world.Position
}

// GetViewingInfo scans the view cone ahead of the player. Undiscovered
// hidden doors and secret passages are reported as walls so they stay
// indistinguishable until found. A closed tile on the forward axis halts
// deeper forward scanning; the side-wall pass keeps running past that
// point so corridor walls stay visible beyond a blocking door.
func GetViewingInfo(s *state.Session) *Info {
	f := s.ActiveFloor()
	info := &Info{
		Facing:   s.Facing,
		Position: world.Position{X: s.X, Y: s.Y},
	}

	fdx, fdy := s.Facing.Delta()
	rdx, rdy := s.Facing.TurnRight().Delta()

	cellAt := func(dist, offset int) (int, int) {
		return s.X + fdx*dist + rdx*offset, s.Y + fdy*dist + rdy*offset
	}

	blocked := false
	for dist := 1; dist <= ViewDistance; dist++ {
		if !blocked {
			for offset := -BandHalfWidth; offset <= BandHalfWidth; offset++ {
				x, y := cellAt(dist, offset)
				if !f.InBounds(x, y) {
					continue
				}
				classify(s, info, f.Tile(x, y), x, y, dist, offset)
			}

			cx, cy := cellAt(dist, 0)
			if f.InBounds(cx, cy) {
				center := f.Tile(cx, cy)
				if haltsView(center) {
					blocked = true
				} else if e := f.EncounterAt(cx, cy); e != nil {
					info.Monsters = append(info.Monsters, MonsterSighting{Distance: dist, Encounter: e})
				}
			} else {
				blocked = true
			}
		}

		probeSideWalls(s, info, f, cellAt, dist)
	}

	return info
}

// classify routes one scanned tile into the output lists.
func classify(s *state.Session, info *Info, t world.Tile, x, y, dist, offset int) {
	feature := Feature{X: x, Y: y, Distance: dist, Offset: offset, Kind: t.Kind}

	switch t.Kind {
	case world.KindWall:
		info.Walls = append(info.Walls, feature)
	case world.KindHiddenDoor:
		if s.Discovery.SecretKnown(s.CurrentFloor, x, y, t.Kind) {
			info.Doors = append(info.Doors, feature)
		} else {
			feature.Kind = world.KindWall
			info.Walls = append(info.Walls, feature)
		}
	case world.KindSecretPassage:
		if s.Discovery.SecretKnown(s.CurrentFloor, x, y, t.Kind) {
			info.Passages = append(info.Passages, feature)
		} else {
			feature.Kind = world.KindWall
			info.Walls = append(info.Walls, feature)
		}
	case world.KindDoor:
		if !t.Open {
			info.Doors = append(info.Doors, feature)
		}
	case world.KindTreasure:
		info.Objects = append(info.Objects, feature)
	}
}

// haltsView reports whether a centered tile stops the forward scan. A
// closed secret passage halts like a wall even before discovery, since
// it presents wall texture to the eye.
func haltsView(t world.Tile) bool {
	switch t.Kind {
	case world.KindWall:
		return true
	case world.KindDoor, world.KindHiddenDoor, world.KindSecretPassage:
		return !t.Open
	}
	return false
}

// probeSideWalls finds the nearest room-boundary wall on each side at
// this distance and flags framing walls at corridor mouths. It runs even
// when the forward scan has halted, which is what keeps side walls
// visible beyond a blocking door.
func probeSideWalls(s *state.Session, info *Info, f *world.Floor, cellAt func(int, int) (int, int), dist int) {
	for _, side := range []int{-1, 1} {
		for k := 1; k <= sideProbeDepth; k++ {
			x, y := cellAt(dist, side*k)
			if !f.InBounds(x, y) {
				break
			}
			t := f.Tile(x, y)
			if !t.WallLike() {
				continue
			}

			feature := Feature{X: x, Y: y, Distance: dist, Offset: side * k, Kind: world.KindWall}
			// Corridor mouth: open center flanked by this wall at
			// offset 1 frames a doorway for the renderer.
			if k == 1 {
				cx, cy := cellAt(dist, 0)
				if f.InBounds(cx, cy) && f.Tile(cx, cy).FloorLike() {
					feature.Framing = true
				}
			}
			if !containsWall(info.Walls, x, y) {
				info.Walls = append(info.Walls, feature)
			} else if feature.Framing {
				markFraming(info.Walls, x, y)
			}
			break
		}
	}
}

func containsWall(walls []Feature, x, y int) bool {
	for i := range walls {
		if walls[i].X == x && walls[i].Y == y {
			return true
		}
	}
	return false
}

func markFraming(walls []Feature, x, y int) {
	for i := range walls {
		if walls[i].X == x && walls[i].Y == y {
			walls[i].Framing = true
			return
		}
	}
}
