package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/and161185/counters-admin/internal/errs"
	"github.com/and161185/counters-admin/internal/utils"
	"github.com/and161185/counters-admin/model"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage connects to the database and applies pending migrations.
func NewPostgresStorage(ctx context.Context, databaseDsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", databaseDsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := NewStorage(db)
	if err := store.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := store.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// NewStorage wraps an open database handle.
func NewStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (store *PostgresStorage) Migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(store.db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	// m.Close would close store.db as well.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func (store *PostgresStorage) Save(ctx context.Context, m model.Metric) error {
	return utils.WithRetry(ctx, func() error {
		_, err := store.db.ExecContext(ctx, `
			INSERT INTO metrics (name, value) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value
		`, m.Name, m.Value)
		return err
	})
}

func (store *PostgresStorage) ListAll(ctx context.Context) ([]model.Metric, error) {
	var result []model.Metric

	err := utils.WithRetry(ctx, func() error {
		rows, err := store.db.QueryContext(ctx, `SELECT name, value FROM metrics ORDER BY name`)
		if err != nil {
			return err
		}
		defer rows.Close()

		metrics := make([]model.Metric, 0)
		for rows.Next() {
			var m model.Metric
			if err := rows.Scan(&m.Name, &m.Value); err != nil {
				return err
			}
			metrics = append(metrics, m)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		result = metrics
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (store *PostgresStorage) FindOne(ctx context.Context, name string) (*model.Metric, error) {
	m := model.Metric{Name: name}

	err := utils.WithRetry(ctx, func() error {
		return store.db.QueryRowContext(ctx, `SELECT value FROM metrics WHERE name = $1`, name).Scan(&m.Value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrMetricNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Reset deletes the metric row. Unknown names are not an error.
func (store *PostgresStorage) Reset(ctx context.Context, name string) error {
	return utils.WithRetry(ctx, func() error {
		_, err := store.db.ExecContext(ctx, `DELETE FROM metrics WHERE name = $1`, name)
		return err
	})
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return utils.WithRetry(ctx, func() error {
		return store.db.PingContext(ctx)
	})
}

func (store *PostgresStorage) Close() error {
	return store.db.Close()
}
