// Package repository persists advisory records with ent on Postgres.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"agroadvisor/internal/ent"
)

// ErrNotFound reports a lookup that matched nothing.
var ErrNotFound = errors.New("repository: not found")

// Open connects an ent client over pgx.
func Open(dsn string) (*ent.Client, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	drv := entsql.OpenDB(dialect.Postgres, db)
	return ent.NewClient(ent.Driver(drv)), nil
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, client *ent.Client) error {
	return client.Schema.Create(ctx)
}
