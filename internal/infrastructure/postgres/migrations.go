package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/southgenetics/inventario/pkg/logger"
)

// RunMigrations aplica las migraciones SQL pendientes con goose sobre una
// conexión database/sql derivada del pool pgx.
func RunMigrations(pool *pgxpool.Pool, migrationsDir string, log *logger.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	log.Info().Str("dir", migrationsDir).Msg("aplicando migraciones pendientes")
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	log.Info().Msg("migraciones al día")
	return nil
}
