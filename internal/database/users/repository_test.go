package users

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/florianfabre/countrynews/internal/database"
	"github.com/florianfabre/countrynews/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	dbPath := "./test_users_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), cleanup
}

func TestRepository_CreateUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.CreateUser("alice", "secret")
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "secret", user.Password)
}

func TestRepository_GetUser(t *testing.T) {
	t.Run("matches username and password", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.CreateUser("alice", "secret")
		require.NoError(t, err)

		user, err := repo.GetUser("alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password is not found", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.CreateUser("alice", "secret")
		require.NoError(t, err)

		_, err = repo.GetUser("alice", "wrong")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRepository_GetUserByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser("bob", "pw")
	require.NoError(t, err)

	user, err := repo.GetUserByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, err = repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteUser(t *testing.T) {
	t.Run("removes the account", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.CreateUser("bob", "pw")
		require.NoError(t, err)

		require.NoError(t, repo.DeleteUser("bob"))

		_, err = repo.GetUserByUsername("bob")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("unknown username is a no-op", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repo.DeleteUser("nobody"))
	})
}

func TestRepository_InsertUsers(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.InsertUsers([]entities.User{
		{Username: "carol", Password: "one"},
		{Username: "dave", Password: "two"},
	}))

	count, err := repo.CountUsers()
	require.NoError(t, err)
	// The database seeds one default account on creation.
	assert.Equal(t, int64(3), count)
}

func TestRepository_SeededDefaultUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.GetUser("Odonata", "azertyuiop")
	require.NoError(t, err)
	assert.Equal(t, "Odonata", user.Username)
}
