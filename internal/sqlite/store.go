package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

// Compile-time interface check: Store must implement LessonStore.
var _ types.LessonStore = (*Store)(nil)

// Store implements the LessonStore contract using SQLite as the engine.
// All operations are synchronous; the store assumes a single caller at a
// time, matching the contract.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the SQLite database at path, enables
// foreign keys, and initializes the schema. An Open failure leaves the
// store unusable; it is the caller's fatal startup error.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Error("open database failed", "path", path, "err", err)
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		logger.Error("enable foreign keys failed", "err", err)
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			logger.Error("initialize schema failed", "err", err)
			return nil, fmt.Errorf("initialize schema: %w", err)
		}
	}

	logger.Info("opened database", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the database handle. Idempotent: closing a closed store
// succeeds. After Close, all operations return ErrStoreClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	s.db = nil
	s.logger.Info("closed database")
	return nil
}

// ready returns ErrStoreClosed when the store has been closed.
func (s *Store) ready() error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	return nil
}
