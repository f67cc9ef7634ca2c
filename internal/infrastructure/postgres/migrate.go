package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// newMigrator abre un *sql.DB sobre el pool (driver pgx) y arma el migrador con los
// scripts embebidos. El *sql.DB comparte conexiones con el pool: no cerrarlo.
func newMigrator(pool *pgxpool.Pool) (*migrate.Migrate, error) {
	if pool == nil {
		return nil, errors.New("migrations: pool requerido")
	}
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp aplica las migraciones pendientes. Sin cambios no es error.
func MigrateUp(pool *pgxpool.Pool) error {
	m, err := newMigrator(pool)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// MigrateDown revierte `steps` migraciones (steps <= 0 revierte todas).
func MigrateDown(pool *pgxpool.Pool, steps int) error {
	m, err := newMigrator(pool)
	if err != nil {
		return err
	}
	if steps <= 0 {
		err = m.Down()
	} else {
		err = m.Steps(-steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("revert migrations: %w", err)
	}
	return nil
}

// MigrationVersion versión aplicada y si quedó marcada como dirty.
func MigrationVersion(pool *pgxpool.Pool) (uint, bool, error) {
	m, err := newMigrator(pool)
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration version: %w", err)
	}
	return v, dirty, nil
}
