package kv

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		CREATE TABLE IF NOT EXISTS kv_entries (
		    "key"      TEXT PRIMARY KEY,
		    value      TEXT NOT NULL,
		    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
    `)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.EnsureSchema(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT value
		FROM kv_entries
		WHERE "key" = $1;
    `)).
		WithArgs("announcements:seen").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"a":"1"}`))

	value, err := repo.Get(context.Background(), "announcements:seen")
	assert.NoError(t, err)
	assert.Equal(t, `{"a":"1"}`, value)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT value
		FROM kv_entries
		WHERE "key" = $1;
    `)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSet(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO kv_entries ("key", value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT ("key") DO UPDATE
		SET value = EXCLUDED.value, updated_at = now();
    `)).
		WithArgs("announcements:seen", `{"a":"1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Set(context.Background(), "announcements:seen", `{"a":"1"}`)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
