package auth

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianfabre/countrynews/internal/database"
	"github.com/florianfabre/countrynews/internal/database/users"
)

func setupTestService(t *testing.T) (*Service, func()) {
	t.Helper()

	dbPath := "./test_auth_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewService(users.NewRepository(db.DB), &PlaintextVerifier{}), cleanup
}

func TestService_CreateAccount(t *testing.T) {
	t.Run("creates a new account", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		user, err := service.CreateAccount("alice", "secret")
		require.NoError(t, err)
		assert.NotZero(t, user.UserID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.CreateAccount("alice", "secret")
		require.NoError(t, err)

		_, err = service.CreateAccount("alice", "different")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("usernames are case-sensitive", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.CreateAccount("alice", "secret")
		require.NoError(t, err)

		_, err = service.CreateAccount("Alice", "secret")
		assert.NoError(t, err)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.CreateAccount("", "secret")
		assert.ErrorIs(t, err, ErrUsernameRequired)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.CreateAccount("alice", "")
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})
}

func TestService_Authenticate(t *testing.T) {
	t.Run("accepts valid credentials", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		created, err := service.CreateAccount("alice", "secret")
		require.NoError(t, err)

		user, err := service.Authenticate("alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, created.UserID, user.UserID)
	})

	t.Run("accepts the seeded default account", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		user, err := service.Authenticate("Odonata", "azertyuiop")
		require.NoError(t, err)
		assert.Equal(t, "Odonata", user.Username)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.CreateAccount("alice", "secret")
		require.NoError(t, err)

		_, errUnknown := service.Authenticate("nobody", "secret")
		_, errWrong := service.Authenticate("alice", "wrong")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrong)
	})
}

func TestService_DeleteAccount(t *testing.T) {
	t.Run("deletes the account", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.CreateAccount("alice", "secret")
		require.NoError(t, err)

		require.NoError(t, service.DeleteAccount("alice"))

		_, err = service.Authenticate("alice", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deleting an unknown account succeeds", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		assert.NoError(t, service.DeleteAccount("nobody"))
	})

	t.Run("rejects empty username", func(t *testing.T) {
		service, cleanup := setupTestService(t)
		defer cleanup()

		assert.ErrorIs(t, service.DeleteAccount(""), ErrUsernameRequired)
	})
}

func TestService_HasUsers(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	// The seeded default account counts.
	hasUsers, err := service.HasUsers()
	require.NoError(t, err)
	assert.True(t, hasUsers)
}
