package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkoval/algotrack/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database handle and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows a single writer; serializing access through one
	// connection avoids SQLITE_BUSY under concurrent upserts.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Users returns a repository for user rows.
func (d *DB) Users() *UserRepository { return NewUserRepository(d) }

// Categories returns a repository for category rows.
func (d *DB) Categories() *CategoryRepository { return NewCategoryRepository(d) }

// Algorithms returns a repository for the algorithm catalog.
func (d *DB) Algorithms() *AlgorithmRepository { return NewAlgorithmRepository(d) }

// Progress returns a repository for user progress records.
func (d *DB) Progress() *ProgressRepository { return NewProgressRepository(d) }
