package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// JSONStore persists save data in a single local JSON file, one record
// set per group id. Good enough for a single machine; the Postgres store
// covers anything shared.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *jsonData
}

type jsonData struct {
	Dungeons map[string]*SaveData  `json:"dungeons"`
	Parties  map[string]*PartySave `json:"parties"`
}

// NewJSONStore creates a JSON file store, loading existing data if the
// file is already there.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data: &jsonData{
			Dungeons: make(map[string]*SaveData),
			Parties:  make(map[string]*PartySave),
		},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}

	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(file, js.data)
}

func (js *JSONStore) saveToFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	data, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(js.filePath, data, 0644)
}

// SaveDungeon stores the full dungeon snapshot for a group.
func (js *JSONStore) SaveDungeon(groupID string, data *SaveData) error {
	js.mutex.Lock()
	js.data.Dungeons[groupID] = data
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadDungeon returns the stored dungeon snapshot for a group, or nil if
// none is stored.
func (js *JSONStore) LoadDungeon(groupID string) (*SaveData, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	return js.data.Dungeons[groupID], nil
}

// SavePartyPosition stores the pose and discovery snapshot for a group.
func (js *JSONStore) SavePartyPosition(groupID string, party *PartySave) error {
	js.mutex.Lock()
	js.data.Parties[groupID] = party
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadPartyPosition returns the stored party snapshot, or nil if none.
func (js *JSONStore) LoadPartyPosition(groupID string) (*PartySave, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	return js.data.Parties[groupID], nil
}

// Close flushes the store to disk.
func (js *JSONStore) Close() error {
	return js.saveToFile()
}
