package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL is idempotent: every statement is create-if-missing, so running
// it on every startup is safe and the first run bootstraps an empty database.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          SERIAL PRIMARY KEY,
		image_url   VARCHAR(500) NOT NULL,
		name        VARCHAR(200) NOT NULL,
		description TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id          SERIAL PRIMARY KEY,
		image_url   VARCHAR(500) NOT NULL,
		name        VARCHAR(200) NOT NULL,
		description TEXT NOT NULL,
		designation VARCHAR(200) NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id         SERIAL PRIMARY KEY,
		full_name  VARCHAR(200) NOT NULL,
		email      VARCHAR(200) NOT NULL,
		mobile     VARCHAR(20) NOT NULL,
		city       VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS subscribers (
		id         SERIAL PRIMARY KEY,
		email      VARCHAR(200) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the four entity tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, ddl := range schemaDDL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
