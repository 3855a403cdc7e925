package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lukaszlop/ketoggler/internal/database/migrations"
	"github.com/lukaszlop/ketoggler/internal/model"
)

// gooseUp and gooseDown are seams for testing the postgres path.
var (
	gooseUp = func(ctx context.Context, db *sql.DB) error {
		return goose.UpContext(ctx, db, ".")
	}
	gooseDown = func(ctx context.Context, db *sql.DB) error {
		return goose.DownContext(ctx, db, ".")
	}
)

// Migrator applies the schema. PostgreSQL uses the embedded goose
// migrations, sqlite falls back to gorm's AutoMigrate.
type Migrator struct {
	db  *gorm.DB
	dsn string
	log logrus.FieldLogger
}

// NewMigrator creates a migrator. dsn is only used for PostgreSQL.
func NewMigrator(db *gorm.DB, dsn string, log logrus.FieldLogger) *Migrator {
	return &Migrator{db: db, dsn: dsn, log: log}
}

// Up applies every pending migration
func (m *Migrator) Up(ctx context.Context) error {
	if m.db.Dialector.Name() == "sqlite" {
		m.log.Info("Using GORM auto-migration for SQLite")
		if err := m.db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	return m.withGoose(ctx, func(sqlDB *sql.DB) error {
		if err := gooseUp(ctx, sqlDB); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		m.log.Info("Migrations applied")
		return nil
	})
}

// Down rolls back the most recent migration. On sqlite every table is dropped.
func (m *Migrator) Down(ctx context.Context) error {
	if m.db.Dialector.Name() == "sqlite" {
		tables := model.All()
		for i := len(tables) - 1; i >= 0; i-- {
			if err := m.db.WithContext(ctx).Migrator().DropTable(tables[i]); err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
		}
		m.log.Info("Dropped all tables")
		return nil
	}

	return m.withGoose(ctx, func(sqlDB *sql.DB) error {
		if err := gooseDown(ctx, sqlDB); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		m.log.Info("Rolled back latest migration")
		return nil
	})
}

func (m *Migrator) withGoose(ctx context.Context, fn func(*sql.DB) error) error {
	sqlDB, err := sql.Open("postgres", m.dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return fn(sqlDB)
}
