package persist

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/state"
)

// PartySave is the per-group pose and discovery snapshot.
type PartySave struct {
	CurrentFloor      int      `json:"currentFloor"`
	PlayerX           int      `json:"playerX"`
	PlayerY           int      `json:"playerY"`
	PlayerDirection   string   `json:"playerDirection"`
	DiscoveredSecrets []string `json:"discoveredSecrets"`
	DisarmedTraps     []string `json:"disarmedTraps"`
	UsedSpecials      []string `json:"usedSpecials"`
	ExploredTiles     []string `json:"exploredTiles"`
}

// SaveData is the full persisted shape: the party snapshot plus the
// floor graph as [floorNumber, floor] pairs.
type SaveData struct {
	PartySave
	Floors []FloorEntry `json:"floors"`
}

// floorRecord is the serialized form of one floor. Tiles use the
// canonical wire vocabulary, one string per cell in row order.
type floorRecord struct {
	Number     int                   `json:"number"`
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	Tiles      [][]string            `json:"tiles"`
	Encounters []world.Encounter     `json:"encounters"`
	Specials   []world.SpecialSquare `json:"specialSquares"`
	Jacks      world.Jacks           `json:"jacks"`
}

// FloorEntry marshals as the two-element [number, floor] array the
// persisted shape calls for.
type FloorEntry struct {
	Number int
	Record floorRecord
}

// MarshalJSON encodes the entry as [number, floor].
func (e FloorEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Number, e.Record})
}

// UnmarshalJSON decodes the [number, floor] pair form.
func (e *FloorEntry) UnmarshalJSON(b []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("floor entry is not a pair: %w", err)
	}
	if err := json.Unmarshal(raw[0], &e.Number); err != nil {
		return fmt.Errorf("floor entry number: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Record); err != nil {
		return fmt.Errorf("floor entry body: %w", err)
	}
	return nil
}

// encodeKey renders a discovery key as floor:x:y or floor:x:y:kind.
func encodeKey(k state.Key, withKind bool) string {
	if withKind {
		return fmt.Sprintf("%d:%d:%d:%s", k.Floor, k.X, k.Y, world.Tile{Kind: k.Kind}.String())
	}
	return fmt.Sprintf("%d:%d:%d", k.Floor, k.X, k.Y)
}

// decodeKey parses both key forms. Malformed keys are dropped by the
// caller rather than failing the whole load.
func decodeKey(s string) (state.Key, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return state.Key{}, false
	}
	nums := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return state.Key{}, false
		}
		nums[i] = n
	}
	key := state.Key{Floor: nums[0], X: nums[1], Y: nums[2]}
	if len(parts) == 4 {
		key.Kind = world.ParseTile(parts[3]).Kind
	}
	return key, true
}

func encodeFloor(f *world.Floor) floorRecord {
	tiles := make([][]string, f.Height)
	for y := range tiles {
		tiles[y] = make([]string, f.Width)
	}
	f.ForEachTile(func(x, y int, t world.Tile) {
		tiles[y][x] = t.String()
	})
	return floorRecord{
		Number:     f.Number,
		Width:      f.Width,
		Height:     f.Height,
		Tiles:      tiles,
		Encounters: f.Encounters,
		Specials:   f.Specials,
		Jacks:      f.Jacks,
	}
}

func decodeFloor(r floorRecord) *world.Floor {
	width, height := r.Width, r.Height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	f := world.NewFloor(r.Number, width, height)
	for y := 0; y < height && y < len(r.Tiles); y++ {
		row := r.Tiles[y]
		for x := 0; x < width && x < len(row); x++ {
			f.SetTile(x, y, world.ParseTile(row[x]))
		}
	}
	f.Encounters = r.Encounters
	f.Specials = r.Specials
	f.Jacks = r.Jacks
	return f
}

// Snapshot converts a session into the persisted shape.
func Snapshot(s *state.Session) *SaveData {
	data := &SaveData{
		PartySave: PartySave{
			CurrentFloor:    s.CurrentFloor,
			PlayerX:         s.X,
			PlayerY:         s.Y,
			PlayerDirection: s.Facing.String(),
		},
	}

	s.Discovery.Secrets.Each(func(k state.Key) {
		data.DiscoveredSecrets = append(data.DiscoveredSecrets, encodeKey(k, true))
	})
	s.Discovery.Disarmed.Each(func(k state.Key) {
		data.DisarmedTraps = append(data.DisarmedTraps, encodeKey(k, false))
	})
	s.Discovery.Used.Each(func(k state.Key) {
		data.UsedSpecials = append(data.UsedSpecials, encodeKey(k, false))
	})
	s.Discovery.Explored.Each(func(k state.Key) {
		data.ExploredTiles = append(data.ExploredTiles, encodeKey(k, false))
	})

	for number, f := range s.CachedFloors() {
		data.Floors = append(data.Floors, FloorEntry{Number: number, Record: encodeFloor(f)})
	}
	return data
}

// Restore applies a persisted snapshot onto a session: floors into the
// arena, pose and discovery sets in place. The session keeps its wired
// generator, rng and event sink.
func Restore(s *state.Session, data *SaveData) {
	if data == nil {
		return
	}
	for _, entry := range data.Floors {
		f := decodeFloor(entry.Record)
		f.Number = entry.Number
		s.PutFloor(f)
	}

	s.CurrentFloor = data.CurrentFloor
	s.X = data.PlayerX
	s.Y = data.PlayerY
	s.Facing = world.ParseDirection(data.PlayerDirection)

	restoreSet := func(keys []string, put func(state.Key)) {
		for _, raw := range keys {
			if k, ok := decodeKey(raw); ok {
				put(k)
			}
		}
	}
	restoreSet(data.DiscoveredSecrets, s.Discovery.Secrets.Put)
	restoreSet(data.DisarmedTraps, s.Discovery.Disarmed.Put)
	restoreSet(data.UsedSpecials, s.Discovery.Used.Put)
	restoreSet(data.ExploredTiles, s.Discovery.Explored.Put)
}
