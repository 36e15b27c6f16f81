package storage

import (
	"context"
	"fmt"

	"github.com/terraincognita07/utero/internal/models"
)

type StateEntryRepository interface {
	FindByKey(ctx context.Context, key string) (models.StateEntry, bool, error)
	Upsert(ctx context.Context, entry *models.StateEntry) error
}

// SQLiteStore persists values in the kv_entries table.
type SQLiteStore struct {
	entries StateEntryRepository
}

func NewSQLiteStore(entries StateEntryRepository) *SQLiteStore {
	return &SQLiteStore{entries: entries}
}

func (store *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	entry, found, err := store.entries.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load state entry %s: %w", key, err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return []byte(entry.Value), nil
}

func (store *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.StateEntry{Key: key, Value: string(value)}
	if err := store.entries.Upsert(ctx, &entry); err != nil {
		return fmt.Errorf("save state entry %s: %w", key, err)
	}
	return nil
}
