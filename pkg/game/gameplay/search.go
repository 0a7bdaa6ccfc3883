package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

// SecretFind describes one secret revealed by a search.
type SecretFind struct {
	X       int
	Y       int
	Kind    world.TileKind
	Message string
}

// searchChance is the flat per-secret discovery chance of one search.
const searchChance = 0.25

// SearchArea examines the 3x3 neighborhood of the player. Every hidden
// door or secret passage there that is still undiscovered gets an
// independent discovery roll; successes are added to the discovered
// secrets set and reported with a message keyed by tile kind.
func SearchArea(s *state.Session) []SecretFind {
	f := s.ActiveFloor()

	var found []SecretFind
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x := world.Wrap(s.X+dx, f.Width)
			y := world.Wrap(s.Y+dy, f.Height)
			t := f.Tile(x, y)

			if t.Kind != world.KindHiddenDoor && t.Kind != world.KindSecretPassage {
				continue
			}
			if s.Discovery.SecretKnown(s.CurrentFloor, x, y, t.Kind) {
				continue
			}
			if !s.Rng.Chance(searchChance) {
				continue
			}

			s.Discovery.MarkSecret(s.CurrentFloor, x, y, t.Kind)
			msg := secretMessage(t.Kind)
			s.AddMessage(msg)
			found = append(found, SecretFind{X: x, Y: y, Kind: t.Kind, Message: msg})
		}
	}
	return found
}

// Message keys are the English defaults, so play reads fine even
// before a translation catalog is installed.
func secretMessage(kind world.TileKind) string {
	if kind == world.KindHiddenDoor {
		return gotext.Get("You found a hidden door!")
	}
	return gotext.Get("You found a secret passage!")
}
