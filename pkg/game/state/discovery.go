package state

import (
	"github.com/zyedidia/generic/mapset"

	"darkdepths/pkg/engine/world"
)

// FogRadius is the fog-of-war reveal radius applied on every step.
const FogRadius = 4

// Key identifies a discovered thing: a cell on a floor, optionally
// qualified by tile kind. Kind matters only for secrets, where a hidden
// door and a secret passage could in theory share a coordinate across
// floors; the other categories leave it zero.
type Key struct {
	Floor int
	X     int
	Y     int
	Kind  world.TileKind
}

// Discovery tracks everything the party has found this session: secrets,
// disarmed traps, consumed special squares and fog-of-war explored
// tiles. All sets span the whole session; the floor number inside the
// key namespaces them.
type Discovery struct {
	Secrets  mapset.Set[Key]
	Disarmed mapset.Set[Key]
	Used     mapset.Set[Key]
	Explored mapset.Set[Key]
}

// NewDiscovery creates empty discovery sets.
func NewDiscovery() *Discovery {
	return &Discovery{
		Secrets:  mapset.New[Key](),
		Disarmed: mapset.New[Key](),
		Used:     mapset.New[Key](),
		Explored: mapset.New[Key](),
	}
}

// SecretKnown reports whether the secret tile at the position has been
// discovered.
func (d *Discovery) SecretKnown(floor, x, y int, kind world.TileKind) bool {
	return d.Secrets.Has(Key{Floor: floor, X: x, Y: y, Kind: kind})
}

// MarkSecret records a discovered hidden door or secret passage.
func (d *Discovery) MarkSecret(floor, x, y int, kind world.TileKind) {
	d.Secrets.Put(Key{Floor: floor, X: x, Y: y, Kind: kind})
}

// TrapDisarmed reports whether the trap at the position was disarmed.
func (d *Discovery) TrapDisarmed(floor, x, y int) bool {
	return d.Disarmed.Has(Key{Floor: floor, X: x, Y: y})
}

// DisarmTrap records a disarmed trap so it stops re-triggering.
func (d *Discovery) DisarmTrap(floor, x, y int) {
	d.Disarmed.Put(Key{Floor: floor, X: x, Y: y})
}

// SpecialUsed reports whether the special square was already consumed.
func (d *Discovery) SpecialUsed(floor, x, y int) bool {
	return d.Used.Has(Key{Floor: floor, X: x, Y: y})
}

// UseSpecial records a consumed special square.
func (d *Discovery) UseSpecial(floor, x, y int) {
	d.Used.Put(Key{Floor: floor, X: x, Y: y})
}

// TileExplored reports whether fog of war has lifted from the cell.
func (d *Discovery) TileExplored(floor, x, y int) bool {
	return d.Explored.Has(Key{Floor: floor, X: x, Y: y})
}

// MarkExplored lifts fog of war around a center point on the active
// floor. A cell is revealed only when it is inside the Euclidean radius,
// inside the grid and there is an unoccluded line of sight from the
// center, so reveal never leaks through walls around corners.
func (s *Session) MarkExplored(centerX, centerY, radius int) {
	f := s.ActiveFloor()
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := centerX+dx, centerY+dy
			if !f.InBounds(x, y) {
				continue
			}
			if !world.HasLineOfSight(f, centerX, centerY, x, y) {
				continue
			}
			s.Discovery.Explored.Put(Key{Floor: f.Number, X: x, Y: y})
		}
	}
}
