// Package world provides the tile grid primitives for Dark Depths: tile
// variants, cardinal directions, the toroidal floor grid and line of sight.
// These are engine-level constructs; game rules live in pkg/game.
package world

// TileKind is the closed set of tile variants a floor cell can hold.
type TileKind uint8

// Tile kinds
const (
	KindWall TileKind = iota
	KindFloor
	KindDoor
	KindHiddenDoor
	KindSecretPassage
	KindTrap
	KindJackEntry
	KindJackDeep
	KindExit
	KindTreasure
)

// TrapKind distinguishes the trap tile variants.
type TrapKind uint8

// Trap kinds
const (
	TrapPit TrapKind = iota
	TrapPoisonDart
	TrapTeleport
	TrapAlarm
)

// AllTrapKinds returns every trap kind for placement rolls.
func AllTrapKinds() []TrapKind {
	return []TrapKind{TrapPit, TrapPoisonDart, TrapTeleport, TrapAlarm}
}

// Tile is a single cell of a floor grid. Open is only meaningful for the
// door family (door, hidden door, secret passage); Trap only for KindTrap.
type Tile struct {
	Kind TileKind
	Trap TrapKind
	Open bool
}

// Convenience constructors for the common tiles.
var (
	WallTile  = Tile{Kind: KindWall}
	FloorTile = Tile{Kind: KindFloor}
)

// TrapTile returns a trap tile of the given kind.
func TrapTile(k TrapKind) Tile {
	return Tile{Kind: KindTrap, Trap: k}
}

// DoorFamily reports whether the tile can be opened and closed.
func (t Tile) DoorFamily() bool {
	switch t.Kind {
	case KindDoor, KindHiddenDoor, KindSecretPassage:
		return true
	}
	return false
}

// Walkable reports whether the player can stand on this tile. Closed
// doors, hidden doors and secret passages are not walkable.
func (t Tile) Walkable() bool {
	switch t.Kind {
	case KindFloor, KindExit, KindTreasure, KindTrap, KindJackEntry, KindJackDeep:
		return true
	case KindDoor, KindHiddenDoor, KindSecretPassage:
		return t.Open
	}
	return false
}

// BlocksSight reports whether the tile stops a line of sight passing
// through it. Secret passages read as ordinary wall texture to the eye,
// but only walls, closed doors and closed hidden doors occlude.
func (t Tile) BlocksSight() bool {
	switch t.Kind {
	case KindWall:
		return true
	case KindDoor, KindHiddenDoor:
		return !t.Open
	}
	return false
}

// FloorLike reports whether the tile counts as open ground for the
// door-placement geometry and secret/trap site checks.
func (t Tile) FloorLike() bool {
	switch t.Kind {
	case KindFloor, KindExit, KindTreasure, KindTrap, KindJackEntry, KindJackDeep:
		return true
	}
	return false
}

// WallLike is the complement of FloorLike for the door geometry: walls
// and anything embedded in a wall (doors, secrets) count.
func (t Tile) WallLike() bool {
	return !t.FloorLike()
}

// IsJack reports whether the tile is an egress point.
func (t Tile) IsJack() bool {
	return t.Kind == KindJackEntry || t.Kind == KindJackDeep
}

// String returns the canonical wire tag for the tile. This vocabulary is
// the serialization boundary; in-memory code switches on Kind instead.
func (t Tile) String() string {
	switch t.Kind {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindDoor:
		if t.Open {
			return "open_door"
		}
		return "door"
	case KindHiddenDoor:
		if t.Open {
			return "open_hidden_door"
		}
		return "hidden_door"
	case KindSecretPassage:
		if t.Open {
			return "open_secret_passage"
		}
		return "secret_passage"
	case KindTrap:
		switch t.Trap {
		case TrapPit:
			return "trap_pit_trap"
		case TrapPoisonDart:
			return "trap_poison_dart"
		case TrapTeleport:
			return "trap_teleport_trap"
		case TrapAlarm:
			return "trap_alarm_trap"
		}
	case KindJackEntry:
		return "jack_entry"
	case KindJackDeep:
		return "jack_deep"
	case KindExit:
		return "exit"
	case KindTreasure:
		return "treasure"
	}
	return "wall"
}

// ParseTile converts a wire tag back to a tile. The legacy stairs_up and
// stairs_down tags from older saves alias the jack tiles. Unknown tags
// resolve to wall so a damaged save degrades instead of failing.
func ParseTile(s string) Tile {
	switch s {
	case "floor":
		return FloorTile
	case "door":
		return Tile{Kind: KindDoor}
	case "open_door":
		return Tile{Kind: KindDoor, Open: true}
	case "hidden_door":
		return Tile{Kind: KindHiddenDoor}
	case "open_hidden_door":
		return Tile{Kind: KindHiddenDoor, Open: true}
	case "secret_passage":
		return Tile{Kind: KindSecretPassage}
	case "open_secret_passage":
		return Tile{Kind: KindSecretPassage, Open: true}
	case "trap_pit_trap":
		return TrapTile(TrapPit)
	case "trap_poison_dart":
		return TrapTile(TrapPoisonDart)
	case "trap_teleport_trap":
		return TrapTile(TrapTeleport)
	case "trap_alarm_trap":
		return TrapTile(TrapAlarm)
	case "jack_entry", "stairs_up":
		return Tile{Kind: KindJackEntry}
	case "jack_deep", "stairs_down":
		return Tile{Kind: KindJackDeep}
	case "exit":
		return Tile{Kind: KindExit}
	case "treasure":
		return Tile{Kind: KindTreasure}
	}
	return WallTile
}

// String returns the bare trap tag without the tile prefix.
func (k TrapKind) String() string {
	switch k {
	case TrapPit:
		return "pit"
	case TrapPoisonDart:
		return "poison_dart"
	case TrapTeleport:
		return "teleport"
	case TrapAlarm:
		return "alarm"
	default:
		return "pit"
	}
}
