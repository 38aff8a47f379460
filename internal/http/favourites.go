package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/florianfabre/countrynews/internal/entities"
)

// FavouritesStore defines database operations for favourites management.
type FavouritesStore interface {
	AddFavourite(countryID int, userID uint) error
	RemoveFavourite(countryID int, userID uint) error
	IsFavourite(countryID int, userID uint) (bool, error)
	ListFavourites(userID uint) ([]entities.Country, error)
	ListFavouritesByName(name string, userID uint) ([]entities.Country, error)
}

type FavouritesController struct {
	store FavouritesStore
}

func NewFavouritesController(store FavouritesStore) *FavouritesController {
	return &FavouritesController{store: store}
}

// AddFavourite links a country to the authenticated user.
// POST /api/favourites/:id
func (fc *FavouritesController) AddFavourite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.store.AddFavourite(id, GetUserID(c)); err != nil {
		respondInternalError(c, err, "add favourite")
		return
	}

	respondSuccess(c, "favourite added")
}

// RemoveFavourite unlinks a country from the authenticated user. Removing
// a country that was never favourited succeeds.
// DELETE /api/favourites/:id
func (fc *FavouritesController) RemoveFavourite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.store.RemoveFavourite(id, GetUserID(c)); err != nil {
		respondInternalError(c, err, "remove favourite")
		return
	}

	respondSuccess(c, "favourite removed")
}

// GetFavourite reports whether the country is favourited by the
// authenticated user.
// GET /api/favourites/:id
func (fc *FavouritesController) GetFavourite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	favourite, err := fc.store.IsFavourite(id, GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "check favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favourite": favourite})
}

// ListFavourites returns the authenticated user's favourite countries,
// optionally restricted to a name prefix.
// GET /api/favourites?name=<prefix>
func (fc *FavouritesController) ListFavourites(c *gin.Context) {
	userID := GetUserID(c)

	var (
		countries []entities.Country
		err       error
	)
	if name := c.Query("name"); name != "" {
		countries, err = fc.store.ListFavouritesByName(name, userID)
	} else {
		countries, err = fc.store.ListFavourites(userID)
	}
	if err != nil {
		respondInternalError(c, err, "list favourites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"countries": countries,
		"total":     len(countries),
	})
}
