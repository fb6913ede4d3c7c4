// Package db provides database connectivity and schema bootstrap for the
// taskhub application. It establishes the pgx connection pool and creates the
// schema idempotently at startup. Uniqueness of usernames, confirmation
// tokens and list titles is enforced here with partial unique indexes over
// non-deleted rows; application-level existence checks are an optimization,
// the constraints are the correctness guarantee.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/config"
)

// NewPool establishes a connection pool to PostgreSQL using the provided
// configuration and verifies it with a ping.
func NewPool(cfg *config.PoolConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable&pool_max_conns=%d",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.MaxSize,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error creating pool for database %s", cfg.DBName), err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to database %s", cfg.DBName), err)
	}

	return pool, nil
}

// schemaStatements create the schema. Each statement is idempotent so the
// bootstrap can run on every startup. Rows are only ever soft-deleted by
// setting deleted_at, hence the partial unique indexes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		hashed_password TEXT NOT NULL,
		confirmation_token TEXT NOT NULL,
		confirmed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key
		ON users (username) WHERE deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_confirmation_token_key
		ON users (confirmation_token) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS task_lists (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		created_by INTEGER NOT NULL REFERENCES users (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS task_lists_title_key
		ON task_lists (title) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		done BOOLEAN NOT NULL DEFAULT FALSE,
		list_id INTEGER NOT NULL REFERENCES task_lists (id),
		created_by INTEGER NOT NULL REFERENCES users (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS tasks_list_id_idx ON tasks (list_id)`,
}

// EnsureSchema creates the application schema if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		stmtCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		_, err := pool.Exec(stmtCtx, stmt)
		cancel()
		if err != nil {
			return apperror.NewDatabaseError("failed to bootstrap schema", err)
		}
	}
	return nil
}
