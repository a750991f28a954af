package database

import (
	"context"
	"time"

	"github.com/Tharaka1103/Hotel-Website-sub000/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool sized by the database config. Zero values
// fall back to conservative defaults so a partial config still yields a
// working pool.
func Connect(ctx context.Context, dbCfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbCfg.URL)
	if err != nil {
		return nil, err
	}

	cfg.MinConns = int32(dbCfg.MinConns)
	if cfg.MinConns < 1 {
		cfg.MinConns = 1
	}
	cfg.MaxConns = int32(dbCfg.MaxConns)
	if cfg.MaxConns < cfg.MinConns {
		cfg.MaxConns = 10
	}
	cfg.MaxConnLifetime = dbCfg.MaxLifetime
	if cfg.MaxConnLifetime <= 0 {
		cfg.MaxConnLifetime = time.Hour
	}
	cfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.NewWithConfig(ctx, cfg)
}
