package repository

import (
	"errors"
	"testing"

	"invoicing-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSanitizeClientFields(t *testing.T) {
	fields := map[string]interface{}{
		"name":       "Acme Industries",
		"createdAt":  "1999-01-01T00:00:00Z",
		"created_at": "1999-01-01T00:00:00Z",
		"id":         "spoofed",
	}

	out := sanitizeClientFields(fields)

	assert.Equal(t, "Acme Industries", out["name"])
	assert.NotContains(t, out, "createdAt")
	assert.NotContains(t, out, "created_at")
	assert.NotContains(t, out, "id")
	assert.Contains(t, out, "updated_at")

	// the caller's map is left untouched
	assert.Contains(t, fields, "createdAt")
}

func TestClientRepoWithoutConnection(t *testing.T) {
	repo := NewClientRepository(nil, zap.NewNop())

	assert.ErrorIs(t, repo.Create(&models.Client{}), ErrStoreUnavailable)
	assert.Empty(t, repo.List())
	assert.ErrorIs(t, repo.Update(uuid.NewString(), map[string]interface{}{"name": "x"}), ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Delete(uuid.NewString()), ErrStoreUnavailable)
}

func TestClientRepoListDegradesToEmpty(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewClientRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "clients"`).WillReturnError(errors.New("connection reset"))

	clientList := repo.List()
	require.NotNil(t, clientList)
	assert.Empty(t, clientList)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepoUpdate(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewClientRepository(db, zap.NewNop())

	mock.ExpectExec(`UPDATE "clients" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(uuid.NewString(), map[string]interface{}{"name": "Acme"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepoUpdateUnknownID(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewClientRepository(db, zap.NewNop())

	mock.ExpectExec(`UPDATE "clients" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(uuid.NewString(), map[string]interface{}{"name": "Acme"}), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
