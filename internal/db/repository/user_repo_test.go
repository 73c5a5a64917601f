package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizza-pixel/ordering-service/internal/models"
)

func userColumns() []string {
	return []string{"id", "first_name", "last_name", "email", "password", "role", "phone", "address", "avatar_url", "created_at"}
}

func TestUserRepository_GetByEmail_FoldsCase(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Ada", "Lovelace", "ada@example.com", "pw", "customer", "", "", "", time.Now()))

	user, err := repo.GetByEmail(context.Background(), "Ada@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_Create_StoresLowercaseEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ada", "Lovelace", "ada@example.com", "hashed", models.RoleCustomer).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Ada", "Lovelace", "ada@example.com", "hashed", "customer", "", "", "", time.Now()))

	created, err := repo.Create(context.Background(), models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Password:  "hashed",
		Role:      models.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), "nobody@example.com", models.ProfileUpdateRequest{
		FirstName: "N",
		LastName:  "Body",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
