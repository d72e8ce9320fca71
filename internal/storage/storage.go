package storage

import (
	"context"

	"github.com/louisbranch/textcraft/internal/game/roster"
)

// Kind names a store implementation.
type Kind string

const (
	KindFlatFile Kind = "flatfile"
	KindSQLite   Kind = "sqlite"
)

// Store loads and saves the full set of player records.
type Store interface {
	// Load returns every persisted record in save order. A store that has
	// never been written returns no records and no error.
	Load(ctx context.Context) ([]roster.Record, error)
	// Save replaces the persisted state with records.
	Save(ctx context.Context, records []roster.Record) error
	Close() error
}
