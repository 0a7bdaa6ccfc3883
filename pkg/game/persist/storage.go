// Package persist is the storage boundary: a Storage interface with JSON
// file and PostgreSQL implementations, plus the codec that converts a
// session to and from the persisted shape. Composite string keys and the
// tile wire vocabulary exist only here.
package persist

import "log"

// Storage defines the interface for dungeon persistence. LoadDungeon and
// LoadPartyPosition return (nil, nil) when nothing is stored for the
// group, so callers fall back to fresh generation.
type Storage interface {
	SaveDungeon(groupID string, data *SaveData) error
	LoadDungeon(groupID string) (*SaveData, error)
	SavePartyPosition(groupID string, party *PartySave) error
	LoadPartyPosition(groupID string) (*PartySave, error)
	Close() error
}

// LoadOrNil wraps LoadDungeon with the boundary policy: failures are
// logged and resolved to nil rather than propagated, leaving the caller
// to generate a default floor 1.
func LoadOrNil(store Storage, groupID string) *SaveData {
	data, err := store.LoadDungeon(groupID)
	if err != nil {
		log.Printf("dungeon load for group %q failed, starting fresh: %v", groupID, err)
		return nil
	}
	return data
}
