// Package bestiary provides the monster lookup collaborator. Generation
// only needs identifiers from the depth-tier pools; full stat records are
// fetched out of band when an encounter list is hydrated.
package bestiary

import (
	"context"
	"fmt"
)

// MonsterRecord is the hydrated stat data for a monster identifier.
type MonsterRecord struct {
	ID    string
	Name  string
	Level int
	Tier  int
	Boss  bool
}

// Source fetches monster data by identifier. Implementations may be
// backed by a database or remote service; a nil record with no error
// means the identifier is unknown.
type Source interface {
	GetMonsterData(ctx context.Context, id string) (*MonsterRecord, error)
}

// Pool is the monster identifier list for one depth tier, ordered from
// weakest to strongest. The last entry is the boss candidate.
type Pool struct {
	Tier     int
	Monsters []string
}

// Strongest returns the pool's boss candidate.
func (p Pool) Strongest() string {
	if len(p.Monsters) == 0 {
		return ""
	}
	return p.Monsters[len(p.Monsters)-1]
}

// tierPools covers depth tiers 1 through 8. Deeper floors map onto
// stronger pools; floors past the last tier keep using it.
var tierPools = []Pool{
	{Tier: 1, Monsters: []string{"giant_rat", "cave_bat", "kobold", "goblin"}},
	{Tier: 2, Monsters: []string{"goblin", "skeleton", "zombie", "hobgoblin"}},
	{Tier: 3, Monsters: []string{"hobgoblin", "orc", "ghoul", "giant_spider"}},
	{Tier: 4, Monsters: []string{"orc_shaman", "wight", "gnoll", "ogre"}},
	{Tier: 5, Monsters: []string{"wraith", "troll", "basilisk", "minotaur"}},
	{Tier: 6, Monsters: []string{"mummy", "gorgon", "chimera", "vampire"}},
	{Tier: 7, Monsters: []string{"spectre", "stone_golem", "hydra", "lich"}},
	{Tier: 8, Monsters: []string{"iron_golem", "balrog", "ancient_wyrm", "demon_lord"}},
}

// PoolForDepth returns the pool for a floor number. Floors one and two
// share tier 1; every two floors after that advance a tier, capped at 8.
func PoolForDepth(floor int) Pool {
	tier := (floor + 1) / 2
	if tier < 1 {
		tier = 1
	}
	if tier > len(tierPools) {
		tier = len(tierPools)
	}
	return tierPools[tier-1]
}

// StaticSource serves monster records from the built-in tier tables, so
// generation and hydration run without an external database.
type StaticSource struct{}

// GetMonsterData returns the record for an identifier, or nil if the
// identifier is not in any pool.
func (StaticSource) GetMonsterData(ctx context.Context, id string) (*MonsterRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, pool := range tierPools {
		for i, name := range pool.Monsters {
			if name != id {
				continue
			}
			return &MonsterRecord{
				ID:    id,
				Name:  displayName(id),
				Level: pool.Tier*2 + i,
				Tier:  pool.Tier,
				Boss:  i == len(pool.Monsters)-1,
			}, nil
		}
	}
	return nil, nil
}

func displayName(id string) string {
	out := make([]rune, 0, len(id))
	upper := true
	for _, r := range id {
		if r == '_' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
			upper = false
		}
		out = append(out, r)
	}
	return string(out)
}

// Describe formats a record for the message log.
func Describe(m *MonsterRecord) string {
	if m == nil {
		return "something unseen"
	}
	if m.Boss {
		return fmt.Sprintf("%s (boss, level %d)", m.Name, m.Level)
	}
	return fmt.Sprintf("%s (level %d)", m.Name, m.Level)
}
