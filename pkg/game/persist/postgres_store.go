package persist

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore persists save data as JSONB rows keyed by group id.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to PostgreSQL and ensures the schema exists.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS dungeons (
		group_id TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS parties (
		group_id TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	_, err := ps.db.Exec(schema)
	return err
}

// SaveDungeon upserts the full dungeon snapshot for a group.
func (ps *PostgresStore) SaveDungeon(groupID string, data *SaveData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal dungeon: %w", err)
	}

	_, err = ps.db.Exec(`
		INSERT INTO dungeons (group_id, data, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (group_id) DO UPDATE SET data = $2, updated_at = NOW()`,
		groupID, blob)
	if err != nil {
		return fmt.Errorf("failed to save dungeon: %w", err)
	}
	return nil
}

// LoadDungeon returns the stored dungeon snapshot for a group, or nil if
// no row exists.
func (ps *PostgresStore) LoadDungeon(groupID string) (*SaveData, error) {
	var blob []byte
	err := ps.db.QueryRow(`SELECT data FROM dungeons WHERE group_id = $1`, groupID).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dungeon: %w", err)
	}

	var data SaveData
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dungeon: %w", err)
	}
	return &data, nil
}

// SavePartyPosition upserts the pose and discovery snapshot for a group.
func (ps *PostgresStore) SavePartyPosition(groupID string, party *PartySave) error {
	blob, err := json.Marshal(party)
	if err != nil {
		return fmt.Errorf("failed to marshal party: %w", err)
	}

	_, err = ps.db.Exec(`
		INSERT INTO parties (group_id, data, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (group_id) DO UPDATE SET data = $2, updated_at = NOW()`,
		groupID, blob)
	if err != nil {
		return fmt.Errorf("failed to save party: %w", err)
	}
	return nil
}

// LoadPartyPosition returns the stored party snapshot, or nil if no row
// exists.
func (ps *PostgresStore) LoadPartyPosition(groupID string) (*PartySave, error) {
	var blob []byte
	err := ps.db.QueryRow(`SELECT data FROM parties WHERE group_id = $1`, groupID).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load party: %w", err)
	}

	var party PartySave
	if err := json.Unmarshal(blob, &party); err != nil {
		return nil, fmt.Errorf("failed to unmarshal party: %w", err)
	}
	return &party, nil
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
