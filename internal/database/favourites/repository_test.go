package favourites

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianfabre/countrynews/internal/database"
	"github.com/florianfabre/countrynews/internal/database/countries"
	"github.com/florianfabre/countrynews/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *countries.Repository, func()) {
	t.Helper()

	dbPath := "./test_favourites_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), countries.NewRepository(db.DB), cleanup
}

func seedCatalog(t *testing.T, repo *countries.Repository) {
	t.Helper()
	require.NoError(t, repo.InsertAll([]entities.Country{
		{CountryID: 0, Name: "Belgium", ISO2: "BE"},
		{CountryID: 1, Name: "Brazil", ISO2: "BR"},
		{CountryID: 2, Name: "France", ISO2: "FR"},
	}))
}

func TestRepository_AddFavourite(t *testing.T) {
	t.Run("creates link", func(t *testing.T) {
		repo, catalog, cleanup := setupTestDB(t)
		defer cleanup()
		seedCatalog(t, catalog)

		require.NoError(t, repo.AddFavourite(1, 1))

		fav, err := repo.IsFavourite(1, 1)
		require.NoError(t, err)
		assert.True(t, fav)
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo, catalog, cleanup := setupTestDB(t)
		defer cleanup()
		seedCatalog(t, catalog)

		require.NoError(t, repo.AddFavourite(1, 1))
		require.NoError(t, repo.AddFavourite(1, 1))

		list, err := repo.ListFavourites(1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestRepository_RemoveFavourite(t *testing.T) {
	t.Run("removes link", func(t *testing.T) {
		repo, catalog, cleanup := setupTestDB(t)
		defer cleanup()
		seedCatalog(t, catalog)

		require.NoError(t, repo.AddFavourite(2, 1))
		require.NoError(t, repo.RemoveFavourite(2, 1))

		fav, err := repo.IsFavourite(2, 1)
		require.NoError(t, err)
		assert.False(t, fav)
	})

	t.Run("missing link is a no-op", func(t *testing.T) {
		repo, _, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repo.RemoveFavourite(42, 1))
	})

	t.Run("only the exact pair is removed", func(t *testing.T) {
		repo, catalog, cleanup := setupTestDB(t)
		defer cleanup()
		seedCatalog(t, catalog)

		require.NoError(t, repo.AddFavourite(0, 1))
		require.NoError(t, repo.AddFavourite(0, 2))

		require.NoError(t, repo.RemoveFavourite(0, 1))

		fav, err := repo.IsFavourite(0, 2)
		require.NoError(t, err)
		assert.True(t, fav)
	})
}

func TestRepository_ListFavourites(t *testing.T) {
	t.Run("returns only the user's countries", func(t *testing.T) {
		repo, catalog, cleanup := setupTestDB(t)
		defer cleanup()
		seedCatalog(t, catalog)

		require.NoError(t, repo.AddFavourite(0, 1))
		require.NoError(t, repo.AddFavourite(2, 1))
		require.NoError(t, repo.AddFavourite(1, 2))

		list, err := repo.ListFavourites(1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Belgium", list[0].Name)
		assert.Equal(t, "France", list[1].Name)
	})

	t.Run("no favourites returns empty slice", func(t *testing.T) {
		repo, catalog, cleanup := setupTestDB(t)
		defer cleanup()
		seedCatalog(t, catalog)

		list, err := repo.ListFavourites(7)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("links to missing countries are skipped", func(t *testing.T) {
		repo, catalog, cleanup := setupTestDB(t)
		defer cleanup()
		seedCatalog(t, catalog)

		require.NoError(t, repo.AddFavourite(1, 1))
		require.NoError(t, repo.AddFavourite(99, 1))

		list, err := repo.ListFavourites(1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Brazil", list[0].Name)
	})
}

func TestRepository_ListFavouritesByName(t *testing.T) {
	repo, catalog, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, catalog)

	require.NoError(t, repo.AddFavourite(0, 1))
	require.NoError(t, repo.AddFavourite(1, 1))
	require.NoError(t, repo.AddFavourite(2, 1))

	list, err := repo.ListFavouritesByName("B", 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Belgium", list[0].Name)
	assert.Equal(t, "Brazil", list[1].Name)

	list, err = repo.ListFavouritesByName("Fr", 2)
	require.NoError(t, err)
	assert.Empty(t, list)
}
