package generator

import (
	"darkdepths/pkg/engine/rng"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/bestiary"
)

// MazeGenerator builds floors as a room-and-corridor maze: rectangular
// rooms, a coarse corridor grid, random-walk passages, corridor-throat
// doors, secret features, traps, encounters, special squares and the
// jack egress pair. Generation never fails; every step degrades by
// placing less when no valid site exists.
type MazeGenerator struct {
	Rng rng.Source

	// MaxDepth is the deepest floor; that floor gets no deep jack.
	MaxDepth int
}

// Constants for maze generation
const (
	minRoomSize     = 3  // Minimum room width/height
	maxRoomSize     = 6  // Maximum room width/height
	roomBuffer      = 2  // Required clearance around a placed room
	corridorSpacing = 6  // Distance between coarse corridor lines
	corridorFill    = .8 // Per-cell chance a corridor line cell is floored
	passageBranch   = .3 // Per-step chance a maze walk carves a branch cell
	doorFraction    = .4 // Fraction of valid door throats that get a door
	defaultMaxDepth = 16
)

// NewMazeGenerator creates a maze generator drawing from the given source.
func NewMazeGenerator(src rng.Source) *MazeGenerator {
	return &MazeGenerator{Rng: src, MaxDepth: defaultMaxDepth}
}

// Name returns the name of this generator
func (g *MazeGenerator) Name() string {
	return "Procedural Maze"
}

// Generate creates a floor for the given depth. The grid grows with depth
// up to a cap, the layout gets denser with secrets and traps, and the
// monster pool strengthens.
func (g *MazeGenerator) Generate(floorNumber int) *world.Floor {
	// Scale grid size with depth (add 2 for the perimeter ring)
	size := 22 + floorNumber*2
	if size > 44 {
		size = 44
	}
	f := world.NewFloor(floorNumber, size, size)

	rooms := g.placeRooms(f)
	g.layCorridorGrid(f)
	for _, r := range rooms {
		g.connectRoom(f, r)
	}
	g.carvePassages(f)
	g.placeDoors(f)
	g.placeSecrets(f)
	g.placeTraps(f)
	g.placeEncounters(f)
	g.placeSpecials(f)
	g.placeJacks(f)
	g.validateAndFix(f)

	return f
}

// rect is a placed room's bounds, inclusive.
type rect struct {
	x1, y1, x2, y2 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x1 && x <= r.x2 && y >= r.y1 && y <= r.y2
}

func (r rect) overlapsWithBuffer(o rect) bool {
	return r.x1-roomBuffer <= o.x2 && r.x2+roomBuffer >= o.x1 &&
		r.y1-roomBuffer <= o.y2 && r.y2+roomBuffer >= o.y1
}

// placeRooms samples rectangular rooms inside the playable area. The
// per-attempt acceptance chance decreases with depth so deeper floors
// lean more on maze passages than open rooms.
func (g *MazeGenerator) placeRooms(f *world.Floor) []rect {
	roomChance := 0.4 - 0.02*float64(f.Number)
	if roomChance < 0.2 {
		roomChance = 0.2
	}

	maxRooms := f.Width * f.Height / 40
	attempts := maxRooms * 4

	var rooms []rect
	for i := 0; i < attempts && len(rooms) < maxRooms; i++ {
		if !g.Rng.Chance(roomChance) {
			continue
		}

		w := g.Rng.Integer(minRoomSize, maxRoomSize)
		h := g.Rng.Integer(minRoomSize, maxRoomSize)
		if w >= f.Width-2 || h >= f.Height-2 {
			continue
		}
		x := g.Rng.Integer(1, f.Width-1-w)
		y := g.Rng.Integer(1, f.Height-1-h)
		candidate := rect{x1: x, y1: y, x2: x + w - 1, y2: y + h - 1}

		blocked := false
		for _, existing := range rooms {
			if candidate.overlapsWithBuffer(existing) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		for ry := candidate.y1; ry <= candidate.y2; ry++ {
			for rx := candidate.x1; rx <= candidate.x2; rx++ {
				f.SetTile(rx, ry, world.FloorTile)
			}
		}
		rooms = append(rooms, candidate)
	}
	return rooms
}

// layCorridorGrid lays coarse horizontal and vertical corridor lines at
// fixed spacing. Cells are floored independently with a high chance, so
// the lines have deliberate gaps the maze passages can exploit.
func (g *MazeGenerator) layCorridorGrid(f *world.Floor) {
	for y := corridorSpacing / 2; y < f.Height-1; y += corridorSpacing {
		for x := 1; x < f.Width-1; x++ {
			if g.Rng.Chance(corridorFill) {
				g.carveFloor(f, x, y)
			}
		}
	}
	for x := corridorSpacing / 2; x < f.Width-1; x += corridorSpacing {
		for y := 1; y < f.Height-1; y++ {
			if g.Rng.Chance(corridorFill) {
				g.carveFloor(f, x, y)
			}
		}
	}
}

// connectRoom searches outward from the room center until it reaches an
// existing floor tile outside the room, then carves the discovered path.
func (g *MazeGenerator) connectRoom(f *world.Floor, room rect) {
	startX := (room.x1 + room.x2) / 2
	startY := (room.y1 + room.y2) / 2

	type node struct {
		x, y int
	}
	prev := make(map[node]node)
	start := node{startX, startY}
	visited := map[node]bool{start: true}
	queue := []node{start}

	var goal *node
	for len(queue) > 0 && goal == nil {
		current := queue[0]
		queue = queue[1:]

		for _, d := range world.AllDirections() {
			dx, dy := d.Delta()
			next := node{current.x + dx, current.y + dy}
			if visited[next] {
				continue
			}
			if next.x < 1 || next.x >= f.Width-1 || next.y < 1 || next.y >= f.Height-1 {
				continue
			}
			visited[next] = true
			prev[next] = current

			if f.Tile(next.x, next.y).Kind == world.KindFloor && !room.contains(next.x, next.y) {
				goal = &next
				break
			}
			queue = append(queue, next)
		}
	}
	if goal == nil {
		return // nothing outside the room to connect to yet
	}

	for at := *goal; at != start; at = prev[at] {
		g.carveFloor(f, at.x, at.y)
	}
}

// carvePassages runs short random walks from wall seeds, flooring each
// step with an occasional one-cell branch. Passage count scales with the
// depth-driven complexity factor.
func (g *MazeGenerator) carvePassages(f *world.Floor) {
	complexity := 0.3 + 0.05*float64(f.Number)
	if complexity > 0.8 {
		complexity = 0.8
	}
	walks := int(complexity * float64(f.Width*f.Height) / 40)

	for i := 0; i < walks; i++ {
		x := g.Rng.Integer(1, f.Width-2)
		y := g.Rng.Integer(1, f.Height-2)
		if f.Tile(x, y).Kind != world.KindWall {
			continue
		}

		length := g.Rng.Integer(3, 8)
		for step := 0; step < length; step++ {
			g.carveFloor(f, x, y)

			if g.Rng.Chance(passageBranch) {
				bd := world.Direction(g.Rng.Integer(0, 3))
				bx, by := bd.Delta()
				g.carveFloor(f, x+bx, y+by)
			}

			d := world.Direction(g.Rng.Integer(0, 3))
			dx, dy := d.Delta()
			nx, ny := x+dx, y+dy
			if nx < 1 || nx >= f.Width-1 || ny < 1 || ny >= f.Height-1 {
				break
			}
			x, y = nx, ny
		}
	}
}

// carveFloor floors a cell only if it is a plain wall inside the playable
// area, so it never erodes the perimeter or stomps a placed feature.
func (g *MazeGenerator) carveFloor(f *world.Floor, x, y int) {
	if x < 1 || x >= f.Width-1 || y < 1 || y >= f.Height-1 {
		return
	}
	if f.Tile(x, y).Kind == world.KindWall {
		f.SetTile(x, y, world.FloorTile)
	}
}

// validDoorSite reports whether a wall tile is a true corridor throat:
// all four diagonal neighbors wall-like, and exactly one axis with both
// orthogonal neighbors floor-like while the other axis is wall-like on
// both sides. Room corners never qualify.
func validDoorSite(f *world.Floor, x, y int) bool {
	if f.Tile(x, y).Kind != world.KindWall {
		return false
	}
	for _, d := range [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if !f.Tile(x+d[0], y+d[1]).WallLike() {
			return false
		}
	}
	horizontal := f.Tile(x-1, y).FloorLike() && f.Tile(x+1, y).FloorLike()
	vertical := f.Tile(x, y-1).FloorLike() && f.Tile(x, y+1).FloorLike()
	if horizontal == vertical {
		return false
	}
	if horizontal {
		return f.Tile(x, y-1).WallLike() && f.Tile(x, y+1).WallLike()
	}
	return f.Tile(x-1, y).WallLike() && f.Tile(x+1, y).WallLike()
}

// placeDoors stamps doors on a fraction of the valid corridor throats,
// skipping candidates that already touch a placed door.
func (g *MazeGenerator) placeDoors(f *world.Floor) {
	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < f.Width-1; x++ {
			if !validDoorSite(f, x, y) {
				continue
			}
			adjacentDoor := false
			for _, d := range world.AllDirections() {
				dx, dy := d.Delta()
				if f.Tile(x+dx, y+dy).Kind == world.KindDoor {
					adjacentDoor = true
					break
				}
			}
			if adjacentDoor || !g.Rng.Chance(doorFraction) {
				continue
			}
			f.SetTile(x, y, world.Tile{Kind: world.KindDoor})
		}
	}
}

// placeSecrets converts some remaining wall tiles that border at least
// two floor tiles into hidden doors or secret passages. The rate grows
// slowly with depth.
func (g *MazeGenerator) placeSecrets(f *world.Floor) {
	rate := 0.04 + 0.01*float64(f.Number)
	if rate > 0.15 {
		rate = 0.15
	}

	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < f.Width-1; x++ {
			if f.Tile(x, y).Kind != world.KindWall {
				continue
			}
			adjacentFloor := 0
			for _, d := range world.AllDirections() {
				dx, dy := d.Delta()
				if f.Tile(x+dx, y+dy).Kind == world.KindFloor {
					adjacentFloor++
				}
			}
			if adjacentFloor < 2 || !g.Rng.Chance(rate) {
				continue
			}
			if g.Rng.Chance(0.7) {
				f.SetTile(x, y, world.Tile{Kind: world.KindHiddenDoor})
			} else {
				f.SetTile(x, y, world.Tile{Kind: world.KindSecretPassage})
			}
		}
	}
}

// placeTraps stamps trap tiles on floor cells at a depth-scaled rate.
// Jacks and specials are placed afterwards and keep clear of traps, so
// the no-trap-next-to-feature rule holds for the finished floor.
func (g *MazeGenerator) placeTraps(f *world.Floor) {
	rate := 0.02 + 0.01*float64(f.Number)
	if rate > 0.12 {
		rate = 0.12
	}

	kinds := world.AllTrapKinds()
	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < f.Width-1; x++ {
			if f.Tile(x, y).Kind != world.KindFloor {
				continue
			}
			if !g.Rng.Chance(rate) {
				continue
			}
			f.SetTile(x, y, world.TrapTile(rng.Choice(g.Rng, kinds)))
		}
	}
}

// nextToTrap reports whether any of the 8 neighbors is a trap tile.
func (g *MazeGenerator) nextToTrap(f *world.Floor, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if f.Tile(x+dx, y+dy).Kind == world.KindTrap {
				return true
			}
		}
	}
	return false
}

// placeEncounters picks 5 to 12 distinct floor tiles and assigns each a
// monster from the depth tier pool, with a small chance of the pool's
// strongest entry marked as a boss.
func (g *MazeGenerator) placeEncounters(f *world.Floor) {
	pool := bestiary.PoolForDepth(f.Number)
	count := g.Rng.Integer(5, 12)

	taken := make(map[world.Position]bool)
	for i := 0; i < count; i++ {
		pos, ok := g.randomFloorTile(f, taken)
		if !ok {
			break
		}
		taken[pos] = true

		e := world.Encounter{
			X:     pos.X,
			Y:     pos.Y,
			Level: f.Number,
		}
		if g.Rng.Chance(0.1) {
			e.MonsterID = pool.Strongest()
			e.Boss = true
		} else {
			e.MonsterID = rng.Choice(g.Rng, pool.Monsters)
		}
		f.Encounters = append(f.Encounters, e)
	}
}

// specialFlavors pairs each special square kind with its flavor text.
var specialFlavors = []world.SpecialSquare{
	{Kind: "fountain", Message: "A stone fountain burbles with unnaturally clear water."},
	{Kind: "teleporter", Message: "A ring of runes pulses faintly in the floor."},
	{Kind: "message", Message: "Someone has scratched a warning into the wall here."},
	{Kind: "chest", Message: "A banded chest sits half-buried in rubble."},
}

// placeSpecials scatters 2 to 5 special squares on free floor tiles,
// keeping clear of trap neighborhoods.
func (g *MazeGenerator) placeSpecials(f *world.Floor) {
	count := g.Rng.Integer(2, 5)
	taken := make(map[world.Position]bool)
	for _, e := range f.Encounters {
		taken[world.Position{X: e.X, Y: e.Y}] = true
	}

	for i := 0; i < count; i++ {
		pos, ok := g.randomClearTile(f, taken)
		if !ok {
			break
		}
		taken[pos] = true

		flavor := rng.Choice(g.Rng, specialFlavors)
		f.Specials = append(f.Specials, world.SpecialSquare{
			X:       pos.X,
			Y:       pos.Y,
			Kind:    flavor.Kind,
			Message: flavor.Message,
		})
	}
}

// placeJacks places the entry jack on every floor and the deep jack on
// every floor above MaxDepth, both on plain floor tiles away from traps.
func (g *MazeGenerator) placeJacks(f *world.Floor) {
	if pos, ok := g.randomClearTile(f, nil); ok {
		f.SetTile(pos.X, pos.Y, world.Tile{Kind: world.KindJackEntry})
		f.Jacks.Entry = &pos
	}
	if f.Number >= g.MaxDepth {
		return
	}
	if pos, ok := g.randomClearTile(f, nil); ok {
		f.SetTile(pos.X, pos.Y, world.Tile{Kind: world.KindJackDeep})
		f.Jacks.Deep = &pos
	}
}

// randomFloorTile samples plain floor tiles, avoiding the taken set.
// Returns false when sampling keeps missing, so callers place less
// instead of looping forever.
func (g *MazeGenerator) randomFloorTile(f *world.Floor, taken map[world.Position]bool) (world.Position, bool) {
	for attempt := 0; attempt < 200; attempt++ {
		x := g.Rng.Integer(1, f.Width-2)
		y := g.Rng.Integer(1, f.Height-2)
		if f.Tile(x, y).Kind != world.KindFloor {
			continue
		}
		pos := world.Position{X: x, Y: y}
		if taken != nil && taken[pos] {
			continue
		}
		return pos, true
	}
	return world.Position{}, false
}

// randomClearTile is randomFloorTile restricted to tiles with no trap in
// their 8-neighborhood, for the features traps must keep away from.
func (g *MazeGenerator) randomClearTile(f *world.Floor, taken map[world.Position]bool) (world.Position, bool) {
	for attempt := 0; attempt < 200; attempt++ {
		pos, ok := g.randomFloorTile(f, taken)
		if !ok {
			return world.Position{}, false
		}
		if g.nextToTrap(f, pos.X, pos.Y) {
			continue
		}
		return pos, true
	}
	return world.Position{}, false
}

// validateAndFix pads walkable density up to the 30% floor and then
// re-stamps the perimeter unconditionally. Padding skips cells touching
// a door-family tile so the corridor-throat geometry placed earlier
// stays intact.
func (g *MazeGenerator) validateAndFix(f *world.Floor) {
	target := f.Width * f.Height * 3 / 10
	attempts := f.Width * f.Height * 10
	for f.WalkableCount() < target && attempts > 0 {
		attempts--
		x := g.Rng.Integer(1, f.Width-2)
		y := g.Rng.Integer(1, f.Height-2)
		if f.Tile(x, y).Kind != world.KindWall || g.nextToDoor(f, x, y) {
			continue
		}
		f.SetTile(x, y, world.FloorTile)
	}
	f.StampPerimeter()
}

func (g *MazeGenerator) nextToDoor(f *world.Floor, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if f.Tile(x+dx, y+dy).DoorFamily() {
				return true
			}
		}
	}
	return false
}
