package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/and161185/counters-admin/internal/errs"
	"github.com/and161185/counters-admin/model"
	"github.com/stretchr/testify/require"
)

func newMockStorage(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStorage(db), mock
}

func TestPostgresStorage_ListAll(t *testing.T) {
	store, mock := newMockStorage(t)

	rows := sqlmock.NewRows([]string{"name", "value"}).
		AddRow("counter.a", 5.0).
		AddRow("gauge.x", 9.0)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name, value FROM metrics ORDER BY name`)).WillReturnRows(rows)

	got, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Metric{{Name: "counter.a", Value: 5}, {Name: "gauge.x", Value: 9}}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_ListAll_Empty(t *testing.T) {
	store, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT name, value FROM metrics`).WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	got, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPostgresStorage_ListAll_Error(t *testing.T) {
	store, mock := newMockStorage(t)

	boom := errors.New("syntax error")
	mock.ExpectQuery(`SELECT name, value FROM metrics`).WillReturnError(boom)

	_, err := store.ListAll(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestPostgresStorage_FindOne(t *testing.T) {
	store, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metrics WHERE name = $1`)).
		WithArgs("counter.a").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(5.0))

	got, err := store.FindOne(context.Background(), "counter.a")
	require.NoError(t, err)
	require.Equal(t, &model.Metric{Name: "counter.a", Value: 5}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_FindOne_NotFound(t *testing.T) {
	store, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT value FROM metrics WHERE name`).
		WithArgs("counter.none").
		WillReturnError(sql.ErrNoRows)

	_, err := store.FindOne(context.Background(), "counter.none")
	require.ErrorIs(t, err, errs.ErrMetricNotFound)
}

func TestPostgresStorage_Reset(t *testing.T) {
	store, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM metrics WHERE name = $1`)).
		WithArgs("counter.a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Reset(context.Background(), "counter.a"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_Save(t *testing.T) {
	store, mock := newMockStorage(t)

	mock.ExpectExec(`INSERT INTO metrics`).
		WithArgs("counter.a", 7.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), model.Metric{Name: "counter.a", Value: 7}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	require.NoError(t, NewStorage(db).Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
