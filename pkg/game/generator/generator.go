// Package generator builds dungeon floors. The procedural maze generator
// is the canonical one; the dev map generator produces the fixed two-room
// fixture used by scenario tests and the CLI's dev mode.
package generator

import (
	"darkdepths/pkg/engine/rng"
	"darkdepths/pkg/engine/world"
)

// FloorGenerator is an interface for floor generation algorithms
type FloorGenerator interface {
	Generate(floor int) *world.Floor
	Name() string
}

// DefaultGenerator is the generator sessions use unless told otherwise.
var DefaultGenerator FloorGenerator = NewMazeGenerator(rng.New(0))
