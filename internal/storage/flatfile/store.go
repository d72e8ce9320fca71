// Package flatfile persists player records in two line-oriented text files:
// one account line per player and one inventory line per player, both in
// save order.
package flatfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/textcraft/internal/game/roster"
	"github.com/louisbranch/textcraft/internal/storage"
)

// Store reads and rewrites the account and inventory files.
type Store struct {
	accountPath   string
	inventoryPath string
	logger        *log.Logger
}

// Open returns a store over the two files. The files need not exist yet;
// their parent directories are created on first save. A nil logger drops
// diagnostics.
func Open(accountPath, inventoryPath string, logger *log.Logger) (*Store, error) {
	accountPath = strings.TrimSpace(accountPath)
	inventoryPath = strings.TrimSpace(inventoryPath)
	if accountPath == "" {
		return nil, fmt.Errorf("account file path is required")
	}
	if inventoryPath == "" {
		return nil, fmt.Errorf("inventory file path is required")
	}
	return &Store{
		accountPath:   filepath.Clean(accountPath),
		inventoryPath: filepath.Clean(inventoryPath),
		logger:        logger,
	}, nil
}

// Load reads every well-formed account line and attaches the inventory
// found for its username. A missing account file means no players yet.
func (s *Store) Load(ctx context.Context) ([]roster.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	accounts, err := os.ReadFile(s.accountPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read account file: %w", err)
	}
	inventories, err := os.ReadFile(s.inventoryPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read inventory file: %w", err)
	}

	var (
		records []roster.Record
		skipped int
	)
	scanner := bufio.NewScanner(bytes.NewReader(accounts))
	for scanner.Scan() {
		acct, ok := ParseAccount(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		inv, _, err := FindInventory(bytes.NewReader(inventories), acct.Username)
		if err != nil {
			return nil, fmt.Errorf("scan inventory for %s: %w", acct.Username, err)
		}
		records = append(records, roster.Record{Account: acct, Inventory: inv})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan account file: %w", err)
	}
	if skipped > 0 {
		s.logf("skipped %d malformed account lines in %s", skipped, s.accountPath)
	}
	return records, nil
}

// Save rewrites both files from records.
func (s *Store) Save(ctx context.Context, records []roster.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("storage is not configured")
	}

	var accounts, inventories strings.Builder
	for _, rec := range records {
		accounts.WriteString(FormatAccount(rec.Account))
		inventories.WriteString(FormatInventory(rec.Account.Username, rec.Inventory))
	}
	if err := writeFile(s.accountPath, accounts.String()); err != nil {
		return fmt.Errorf("write account file: %w", err)
	}
	if err := writeFile(s.inventoryPath, inventories.String()); err != nil {
		return fmt.Errorf("write inventory file: %w", err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (s *Store) Close() error {
	return nil
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// writeFile replaces path via a temp file in the same directory.
func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var _ storage.Store = (*Store)(nil)
