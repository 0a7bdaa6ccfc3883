package gameplay

import (
	"context"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/bestiary"
	"darkdepths/pkg/game/state"
)

// CheckEncounter runs the per-step encounter check for the player's
// position. A fixed (exact-position, untriggered) encounter always wins
// and suppresses the random roll; otherwise a depth-scaled chance may
// surface any untriggered encounter within Chebyshev distance 1.
// Detection never flips the triggered flag, so an unresolved encounter
// is re-detected on the next step.
func CheckEncounter(s *state.Session) *world.Encounter {
	f := s.ActiveFloor()

	if e := f.EncounterAt(s.X, s.Y); e != nil {
		return e
	}

	chance := 0.02 + 0.005*float64(s.CurrentFloor)
	if !s.Rng.Chance(chance) {
		return nil
	}
	return f.EncounterNear(s.X, s.Y)
}

// HydrateEncounters enriches a floor's encounter records with full
// monster data from the lookup source. Partial completion is fine: an
// encounter whose lookup failed or returned nothing stays valid, it just
// lacks stat data until a later pass. Only context cancellation stops
// the sweep early.
func HydrateEncounters(ctx context.Context, src bestiary.Source, f *world.Floor) error {
	if src == nil {
		return nil
	}
	for i := range f.Encounters {
		e := &f.Encounters[i]
		if e.Monster != nil || e.MonsterID == "" {
			continue
		}
		record, err := src.GetMonsterData(ctx, e.MonsterID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		if record != nil {
			e.Monster = record
		}
	}
	return nil
}
