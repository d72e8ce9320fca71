// Package textcraft parses textcraft command flags and composes the game
// loop over a record store.
package textcraft

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/textcraft/internal/game/roster"
	entrypoint "github.com/louisbranch/textcraft/internal/platform/cmd"
	"github.com/louisbranch/textcraft/internal/platform/config"
	"github.com/louisbranch/textcraft/internal/platform/id"
	"github.com/louisbranch/textcraft/internal/platform/otel"
	"github.com/louisbranch/textcraft/internal/random"
	"github.com/louisbranch/textcraft/internal/services/textcraft/menu"
	"github.com/louisbranch/textcraft/internal/storage"
	"github.com/louisbranch/textcraft/internal/storage/flatfile"
	"github.com/louisbranch/textcraft/internal/storage/sqlite"
)

// DotEnvPath is read before the environment is parsed.
const DotEnvPath = ".env"

// Config holds textcraft command configuration.
type Config struct {
	Store         string `env:"TEXTCRAFT_STORE"          envDefault:"flatfile"`
	AccountFile   string `env:"TEXTCRAFT_ACCOUNT_FILE"   envDefault:"data/account.txt"`
	InventoryFile string `env:"TEXTCRAFT_INVENTORY_FILE" envDefault:"data/inventory.txt"`
	DBPath        string `env:"TEXTCRAFT_DB_PATH"        envDefault:"data/textcraft.db"`
	Seed          int64  `env:"TEXTCRAFT_SEED"`
	Locale        string `env:"TEXTCRAFT_LOCALE"         envDefault:"en-US"`
	Verbose       bool   `env:"TEXTCRAFT_VERBOSE"`

	Telemetry otel.Config
}

// ParseConfig parses .env, environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := config.LoadDotEnv(DotEnvPath); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Store, "store", cfg.Store, "record store: flatfile or sqlite")
	fs.StringVar(&cfg.AccountFile, "account-file", cfg.AccountFile, "flat-file account records")
	fs.StringVar(&cfg.InventoryFile, "inventory-file", cfg.InventoryFile, "flat-file inventory records")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for money formatting")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log every save")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// OpenStore builds the record store selected by cfg.Store.
func OpenStore(ctx context.Context, cfg Config, logger *log.Logger) (storage.Store, error) {
	switch storage.Kind(strings.ToLower(strings.TrimSpace(cfg.Store))) {
	case storage.KindFlatFile, "":
		return flatfile.Open(cfg.AccountFile, cfg.InventoryFile, logger)
	case storage.KindSQLite:
		return sqlite.Open(ctx, cfg.DBPath, logger)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Run loads the roster, plays until the player exits or in ends, and
// saves along the way. Cancellation of ctx is a clean exit. Diagnostics go
// to errOut.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	err := entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTextcraft, entrypoint.RunOptions{
		Telemetry: cfg.Telemetry,
	}, func(ctx context.Context) error {
		runID, err := id.NewID()
		if err != nil {
			return fmt.Errorf("generate run id: %w", err)
		}
		logger := log.New(errOut, "[TEXTCRAFT] ", log.LstdFlags)

		store, err := OpenStore(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Printf("close store: %v", err)
			}
		}()

		records, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		rng, seed, err := random.New(cfg.Seed)
		if err != nil {
			return fmt.Errorf("seed random source: %w", err)
		}

		opts := menu.Options{
			Locale: menu.ResolveLocale(cfg.Locale),
			RunID:  runID,
		}
		if cfg.Verbose {
			opts.Logger = logger
			logger.Printf("run %s: seed %d, %d players", runID, seed, len(records))
		}

		loop := menu.New(roster.New(records, rng), store, in, out, opts)
		if err := loop.Run(ctx); err != nil {
			return fmt.Errorf("play: %w", err)
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
