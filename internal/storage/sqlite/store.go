// Package sqlite provides a SQLite-backed player record store.
//
// Unlike the flat files, consumables are persisted alongside collectibles.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/louisbranch/textcraft/internal/game/account"
	"github.com/louisbranch/textcraft/internal/game/economy"
	"github.com/louisbranch/textcraft/internal/game/inventory"
	"github.com/louisbranch/textcraft/internal/game/roster"
	sqlitemigrate "github.com/louisbranch/textcraft/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/textcraft/internal/storage"
	"github.com/louisbranch/textcraft/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	kindCollectible = "collectible"
	kindConsumable  = "consumable"
)

// Store persists player records in SQLite.
type Store struct {
	sqlDB  *sql.DB
	logger *log.Logger
}

// Open opens a SQLite record store and applies embedded migrations. A nil
// logger drops diagnostics.
func Open(ctx context.Context, path string, logger *log.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, logger: logger}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load returns every account with its inventory, in save order.
func (s *Store) Load(ctx context.Context) ([]roster.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT username, money, tool_level FROM accounts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var records []roster.Record
	index := make(map[string]int)
	for rows.Next() {
		var acct account.Account
		if err := rows.Scan(&acct.Username, &acct.Money, &acct.ToolLevel); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		acct.ToolLevel = min(max(acct.ToolLevel, economy.ToolLevelMin), economy.ToolLevelMax)
		index[acct.Username] = len(records)
		records = append(records, roster.Record{Account: acct, Inventory: inventory.New()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("close account rows: %w", err)
	}

	items, err := s.sqlDB.QueryContext(ctx,
		`SELECT username, token FROM inventory_items ORDER BY username, kind, slot`)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer items.Close()

	dropped := 0
	for items.Next() {
		var username, token string
		if err := items.Scan(&username, &token); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		i, ok := index[username]
		if !ok || !records[i].Inventory.InsertToken(token) {
			dropped++
		}
	}
	if err := items.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory items: %w", err)
	}
	if dropped > 0 && s.logger != nil {
		s.logger.Printf("dropped %d unreadable inventory items", dropped)
	}
	return records, nil
}

// Save replaces all rows with records in one transaction.
func (s *Store) Save(ctx context.Context, records []roster.Record) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM inventory_items`); err != nil {
		return fmt.Errorf("clear inventory items: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clear accounts: %w", err)
	}

	for position, rec := range records {
		acct := rec.Account
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO accounts (username, money, tool_level, position) VALUES (?, ?, ?, ?)`,
			acct.Username, acct.Money, acct.ToolLevel, position,
		); err != nil {
			return fmt.Errorf("insert account %s: %w", acct.Username, err)
		}
		if err = insertTokens(ctx, tx, acct.Username, kindCollectible, rec.Inventory.CollectibleTokens()); err != nil {
			return err
		}
		if err = insertTokens(ctx, tx, acct.Username, kindConsumable, rec.Inventory.ConsumableTokens()); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func insertTokens(ctx context.Context, tx *sql.Tx, username, kind string, tokens []string) error {
	for slot, token := range tokens {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory_items (username, kind, slot, token) VALUES (?, ?, ?, ?)`,
			username, kind, slot, token,
		); err != nil {
			return fmt.Errorf("insert %s item for %s: %w", kind, username, err)
		}
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
