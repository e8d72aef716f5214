package imghost

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
	_ "modernc.org/sqlite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS uploads (
	content_hash TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	uploaded_at INTEGER NOT NULL
);`

// urlCache deduplicates uploads across runs: identical image bytes resolve
// to the previously hosted URL without touching the network.
type urlCache struct {
	mu  sync.Mutex
	db  *sql.DB
	get *sql.Stmt
	put *sql.Stmt
}

func openCache(path string) (*urlCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// An in-memory database lives inside a single connection; pinning the
	// pool to one keeps it alive and serializes file access too.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(cacheSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	get, err := db.Prepare("SELECT url FROM uploads WHERE content_hash = ?")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare lookup: %w", err)
	}
	put, err := db.Prepare("INSERT OR REPLACE INTO uploads (content_hash, url, uploaded_at) VALUES (?, ?, ?)")
	if err != nil {
		_ = get.Close()
		_ = db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}

	return &urlCache{db: db, get: get, put: put}, nil
}

func (c *urlCache) lookup(ctx context.Context, hash string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var url string
	err := c.get.QueryRowContext(ctx, hash).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query upload cache: %w", err)
	}
	return url, true, nil
}

func (c *urlCache) store(ctx context.Context, hash, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.put.ExecContext(ctx, hash, url, time.Now().Unix()); err != nil {
		return fmt.Errorf("store upload cache entry: %w", err)
	}
	return nil
}

func (c *urlCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return multierr.Combine(c.get.Close(), c.put.Close(), c.db.Close())
}
