package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/db/migrations"
)

// RunMigrations brings the journal schema (runs, sim_events) up to date and
// returns the schema version it ended on.
func RunMigrations(ctx context.Context, dsn string) (int64, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, fmt.Errorf("opening journal database for migrations: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return 0, fmt.Errorf("migrating journal schema: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, conn)
	if err != nil {
		return 0, fmt.Errorf("reading journal schema version: %w", err)
	}
	slog.Info("journal schema ready", "version", version)
	return version, nil
}
