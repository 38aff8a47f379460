// Package favourites provides database operations for the many-to-many
// link between users and countries.
//
// # Usage
//
//	repo := favourites.NewRepository(db)
//	err := repo.AddFavourite(5, userID)
//	list, err := repo.ListFavourites(userID)
package favourites

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/florianfabre/countrynews/internal/entities"
)

// Repository handles all favourites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favourites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddFavourite links a country to a user. Inserting an existing link
// replaces it, so the operation is idempotent.
func (r *Repository) AddFavourite(countryID int, userID uint) error {
	favourite := entities.Favourite{CountryID: countryID, UserID: userID}
	return r.db.Clauses(clause.Insert{Modifier: "OR REPLACE"}).Create(&favourite).Error
}

// RemoveFavourite deletes the exact (country, user) link. Removing a
// link that does not exist is a no-op, not an error.
func (r *Repository) RemoveFavourite(countryID int, userID uint) error {
	return r.db.Where("country_id = ? AND user_id = ?", countryID, userID).
		Delete(&entities.Favourite{}).Error
}

// IsFavourite reports whether the (country, user) link exists.
func (r *Repository) IsFavourite(countryID int, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Favourite{}).
		Where("country_id = ? AND user_id = ?", countryID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListFavourites returns the countries the user has favourited. The link
// rows and the catalog are read separately and intersected in memory,
// which also skips links whose country no longer exists.
func (r *Repository) ListFavourites(userID uint) ([]entities.Country, error) {
	var links []entities.Favourite
	if err := r.db.Where("user_id = ?", userID).Find(&links).Error; err != nil {
		return nil, err
	}

	var countries []entities.Country
	if err := r.db.Order("country_id ASC").Find(&countries).Error; err != nil {
		return nil, err
	}

	return filterByLinks(countries, links), nil
}

// ListFavouritesByName returns the user's favourited countries whose name
// starts with the given prefix, ordered by name ascending.
func (r *Repository) ListFavouritesByName(name string, userID uint) ([]entities.Country, error) {
	var links []entities.Favourite
	err := r.db.Model(&entities.Favourite{}).
		Select("favourites.*").
		Joins("INNER JOIN countries ON favourites.country_id = countries.country_id").
		Where("countries.name LIKE ? AND favourites.user_id = ?", name+"%", userID).
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	var countries []entities.Country
	err = r.db.Where("name LIKE ?", name+"%").Order("name ASC").Find(&countries).Error
	if err != nil {
		return nil, err
	}

	return filterByLinks(countries, links), nil
}

func filterByLinks(countries []entities.Country, links []entities.Favourite) []entities.Country {
	linked := make(map[int]struct{}, len(links))
	for _, link := range links {
		linked[link.CountryID] = struct{}{}
	}

	filtered := make([]entities.Country, 0, len(linked))
	for _, country := range countries {
		if _, ok := linked[country.CountryID]; ok {
			filtered = append(filtered, country)
		}
	}
	return filtered
}
