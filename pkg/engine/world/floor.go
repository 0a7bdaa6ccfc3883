package world

// Position is a tile coordinate on a floor.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Encounter is a monster placement on a floor. Encounters are never
// removed; Triggered flips only through an explicit defeat call.
type Encounter struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Level     int    `json:"level"`
	Boss      bool   `json:"boss"`
	MonsterID string `json:"monsterId,omitempty"`
	Triggered bool   `json:"triggered"`

	// Monster holds hydrated stat data when the out-of-band lookup has
	// completed. A nil Monster is still a valid encounter.
	Monster any `json:"-"`
}

// SpecialSquare is a one-shot interactive tile: fountain, teleporter,
// message plaque or chest. Used is set externally once consumed.
type SpecialSquare struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Kind    string `json:"type"`
	Used    bool   `json:"used"`
	Message string `json:"message"`
}

// Jacks holds a floor's egress points. Entry leads back toward the
// surface, Deep advances further in.
type Jacks struct {
	Entry *Position `json:"entry,omitempty"`
	Deep  *Position `json:"deep,omitempty"`
}

// Up is the legacy alias for Entry.
func (j Jacks) Up() *Position { return j.Entry }

// Down is the legacy alias for Deep.
func (j Jacks) Down() *Position { return j.Deep }

// Floor is one level of the dungeon: a toroidal tile grid plus the
// feature lists derived during generation. A Floor is owned by the
// session's floor arena, created once per number and cached.
type Floor struct {
	Number int
	Width  int
	Height int

	tiles [][]Tile

	Encounters []Encounter
	Specials   []SpecialSquare
	Jacks      Jacks
}

// NewFloor creates a floor of the given size with every tile set to wall.
func NewFloor(number, width, height int) *Floor {
	if width <= 0 || height <= 0 {
		panic("floor dimensions must be positive")
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Floor{
		Number: number,
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// Wrap maps an unbounded coordinate onto the torus.
func Wrap(v, size int) int {
	return ((v % size) + size) % size
}

// Tile returns the tile at (x, y) with toroidal wrap on both axes.
func (f *Floor) Tile(x, y int) Tile {
	return f.tiles[Wrap(y, f.Height)][Wrap(x, f.Width)]
}

// SetTile replaces the tile at (x, y), wrapping both axes.
func (f *Floor) SetTile(x, y int, t Tile) {
	f.tiles[Wrap(y, f.Height)][Wrap(x, f.Width)] = t
}

// InBounds reports whether (x, y) is a real grid coordinate (no wrap).
func (f *Floor) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// OnPerimeter reports whether (x, y) lies on the outer wall ring.
func (f *Floor) OnPerimeter(x, y int) bool {
	return x == 0 || y == 0 || x == f.Width-1 || y == f.Height-1
}

// StampPerimeter forces every perimeter cell back to wall. Generation
// calls this last so no earlier step can erode the border.
func (f *Floor) StampPerimeter() {
	for x := 0; x < f.Width; x++ {
		f.tiles[0][x] = WallTile
		f.tiles[f.Height-1][x] = WallTile
	}
	for y := 0; y < f.Height; y++ {
		f.tiles[y][0] = WallTile
		f.tiles[y][f.Width-1] = WallTile
	}
}

// ForEachTile iterates the grid in row order.
func (f *Floor) ForEachTile(fn func(x, y int, t Tile)) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			fn(x, y, f.tiles[y][x])
		}
	}
}

// WalkableCount returns the number of tiles counting toward the density
// invariant: plain floor, traps and hidden doors.
func (f *Floor) WalkableCount() int {
	count := 0
	f.ForEachTile(func(x, y int, t Tile) {
		switch t.Kind {
		case KindFloor, KindTrap, KindHiddenDoor:
			count++
		}
	})
	return count
}

// FindTile scans the grid for the first tile of the given kind, in row
// order. Used as the fallback when a stored jack position is missing.
func (f *Floor) FindTile(kind TileKind) (Position, bool) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.tiles[y][x].Kind == kind {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// EncounterAt returns the untriggered encounter at the exact position,
// or nil if none.
func (f *Floor) EncounterAt(x, y int) *Encounter {
	for i := range f.Encounters {
		e := &f.Encounters[i]
		if e.X == x && e.Y == y && !e.Triggered {
			return e
		}
	}
	return nil
}

// EncounterNear returns an untriggered encounter within Chebyshev
// distance 1 of the position, or nil if none.
func (f *Floor) EncounterNear(x, y int) *Encounter {
	for i := range f.Encounters {
		e := &f.Encounters[i]
		if e.Triggered {
			continue
		}
		dx := e.X - x
		if dx < 0 {
			dx = -dx
		}
		dy := e.Y - y
		if dy < 0 {
			dy = -dy
		}
		if dx <= 1 && dy <= 1 {
			return e
		}
	}
	return nil
}

// SpecialAt returns the special square at the exact position, or nil.
func (f *Floor) SpecialAt(x, y int) *SpecialSquare {
	for i := range f.Specials {
		s := &f.Specials[i]
		if s.X == x && s.Y == y {
			return s
		}
	}
	return nil
}
