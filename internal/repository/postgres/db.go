package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// PoolConfig bounds the shared connection pool. MaxIdleConns is the number
// of idle connections kept open for reuse; database/sql has no minimum pool
// size, so warm connections are only kept after they have been used once.
type PoolConfig struct {
	URL          string
	MaxConns     int
	MaxIdleConns int
}

// Open creates a Postgres connection pool and pings it so a bad DSN or an
// unreachable server fails at startup.
func Open(ctx context.Context, cfg PoolConfig) (*sql.DB, error) {
	connector, err := pq.NewConnector(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	db := sql.OpenDB(connector)
	configurePool(db, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func configurePool(db *sql.DB, cfg PoolConfig) {
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
}
