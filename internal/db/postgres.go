package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"campdash/internal/config/configs"
)

// NewPostgresPool opens a pool for the Postgres campaign source and pings it
// with a 5 second timeout. The source reads once per load, so the pool is
// capped at cfg.MaxConns. The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
