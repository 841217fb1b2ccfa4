package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewAdminRepo(db)
	ctx := t.Context()

	t.Run("CreateAdmin_Success", func(t *testing.T) {
		// Arrange
		admin := &models.Admin{Email: "owner@example.com", Password: "hashed", Name: "Owner"}
		now := time.Now()
		newID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO admins(email, password, name, created_at, updated_at)`)).
			WithArgs(admin.Email, admin.Password, admin.Name).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))

		// Act
		err := repo.CreateAdmin(ctx, admin)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newID, admin.ID)
		assert.WithinDuration(t, now, admin.CreatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetAdminByEmail_Success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM admins`)).
			WithArgs("owner@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "created_at", "updated_at"}).
				AddRow(id, "owner@example.com", "hashed", "Owner", now, now))

		admin, err := repo.GetAdminByEmail(ctx, "owner@example.com")

		require.NoError(t, err)
		assert.Equal(t, id, admin.ID)
		assert.Equal(t, "hashed", admin.Password)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetAdminByEmail_NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM admins`)).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		admin, err := repo.GetAdminByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, admin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetAdminByEmail_DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM admins`)).
			WithArgs("owner@example.com").
			WillReturnError(errors.New("connection lost"))

		admin, err := repo.GetAdminByEmail(ctx, "owner@example.com")

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, admin)
	})
}
