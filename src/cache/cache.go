// Package cache stores word counts in an SQLite database so that songs already
// counted in a previous run do not have to be fetched again.
package cache

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	migrate "github.com/ironsmile/sql-migrate"
	"go.uber.org/zap"

	// Registers the sqlite3 database/sql driver.
	_ "github.com/mattn/go-sqlite3"
)

// sqlMigrateDirectory is the directory within `migrationsFS` which contains the
// .sql files for sql-migrate.
const sqlMigrateDirectory = "migrations"

//go:embed migrations
var migrationsFS embed.FS

// Cache is a persistent store of present word counts keyed by artist and title.
// It is safe for concurrent use.
type Cache struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens the cache database at path, creating it if necessary, and makes sure
// its schema is up to date.
func Open(path string, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite allows only one writer at a time. Serializing everything through a
	// single connection avoids "database is locked" errors from concurrent
	// counters.
	db.SetMaxOpenConns(1)

	c := &Cache{
		db:     db,
		logger: logger.Named("cache"),
	}

	if err := c.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// applyMigrations applies the database migrations to the open database if it is
// necessary.
func (c *Cache) applyMigrations() error {
	migrationFiles, err := fs.Sub(migrationsFS, sqlMigrateDirectory)
	if err != nil {
		return fmt.Errorf("locating migrate dir within migrations fs.FS failed: %w", err)
	}

	migrations := &migrate.HttpFileSystemMigrationSource{
		FileSystem: http.FS(migrationFiles),
	}

	_, err = migrate.ExecMax(c.db, "sqlite3", migrations, migrate.Up, 0)
	if err == nil {
		return nil
	}

	var planErr *migrate.PlanError
	if errors.As(err, &planErr) {
		c.logger.Warn("error applying cache migrations", zap.Error(err))
		return nil
	}

	return fmt.Errorf("executing cache db migration failed: %w", err)
}

// Get returns the stored word count for title by artist. The second return value
// is false when there is none.
func (c *Cache) Get(ctx context.Context, artist, title string) (int, bool, error) {
	const query = `
		SELECT words
		FROM word_counts
		WHERE artist = ? AND title = ?
	`

	var words int
	err := c.db.QueryRowContext(ctx, query, artist, title).Scan(&words)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("querying word count: %w", err)
	}

	return words, true, nil
}

// Put stores the word count for title by artist, replacing any previous one.
func (c *Cache) Put(ctx context.Context, artist, title string, words int) error {
	const query = `
		INSERT OR REPLACE INTO word_counts (artist, title, words, updated_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, artist, title, words, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("storing word count: %w", err)
	}

	return nil
}

// Close frees all resources used by the cache.
func (c *Cache) Close() error {
	return c.db.Close()
}
