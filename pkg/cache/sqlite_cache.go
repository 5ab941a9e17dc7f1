package cache

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/XiaoConstantine/treegp/pkg/errors"
)

// SQLiteCache implements Cache backed by a SQLite file, so fitness scores
// survive between runs against the same config. It stores scores only, never
// populations.
type SQLiteCache struct {
	db    *sql.DB
	mu    sync.RWMutex
	stats Stats
}

// NewSQLiteCache opens (creating if needed) a fitness store at path.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CacheFailed, "failed to open sqlite fitness store")
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, errors.CacheFailed, "failed to enable WAL mode")
	}

	const schema = `
CREATE TABLE IF NOT EXISTS fitness (
	tree    TEXT PRIMARY KEY,
	score   REAL NOT NULL,
	created INTEGER NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, errors.CacheFailed, "failed to initialize fitness table")
	}

	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Get(ctx context.Context, key string) (float64, bool, error) {
	var fitness float64
	err := c.db.QueryRowContext(ctx, "SELECT score FROM fitness WHERE tree = ?", key).Scan(&fitness)

	c.mu.Lock()
	c.stats.LastAccess = time.Now()
	switch err {
	case nil:
		c.stats.Hits++
	case sql.ErrNoRows:
		c.stats.Misses++
	}
	c.mu.Unlock()

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, errors.CacheFailed, "fitness lookup failed")
	}
	return fitness, true, nil
}

func (c *SQLiteCache) Set(ctx context.Context, key string, fitness float64) error {
	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO fitness (tree, score, created) VALUES (?, ?, ?)",
		key, fitness, time.Now().UnixNano())
	if err != nil {
		return errors.Wrap(err, errors.CacheFailed, "fitness insert failed")
	}

	c.mu.Lock()
	c.stats.Sets++
	c.stats.LastAccess = time.Now()
	c.mu.Unlock()
	return nil
}

func (c *SQLiteCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := c.stats
	var size int64
	if err := c.db.QueryRow("SELECT COUNT(*) FROM fitness").Scan(&size); err == nil {
		stats.Size = size
	}
	return stats
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
