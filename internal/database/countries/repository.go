// Package countries provides database operations for the country catalog.
//
// # Usage
//
//	repo := countries.NewRepository(db)
//	all, err := repo.GetAllCountries()
package countries

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/florianfabre/countrynews/internal/entities"
)

// Repository handles all country database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new countries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InsertAll bulk-inserts countries, replacing any row that conflicts on
// either the local identifier or the iso2 natural key.
func (r *Repository) InsertAll(countries []entities.Country) error {
	if len(countries) == 0 {
		return nil
	}
	return r.db.Clauses(clause.Insert{Modifier: "OR REPLACE"}).Create(&countries).Error
}

// GetAllCountries returns the full catalog in local identifier order.
func (r *Repository) GetAllCountries() ([]entities.Country, error) {
	var countries []entities.Country
	err := r.db.Order("country_id ASC").Find(&countries).Error
	return countries, err
}

// GetAllCountriesReverse returns the full catalog ordered by name descending.
func (r *Repository) GetAllCountriesReverse() ([]entities.Country, error) {
	var countries []entities.Country
	err := r.db.Order("name DESC").Find(&countries).Error
	return countries, err
}

// GetCountriesByName returns countries whose name starts with the given
// prefix, ordered by name ascending.
func (r *Repository) GetCountriesByName(name string) ([]entities.Country, error) {
	var countries []entities.Country
	err := r.db.Where("name LIKE ?", name+"%").Order("name ASC").Find(&countries).Error
	return countries, err
}

// GetCountryByISO2 retrieves a country by its ISO 3166-1 alpha-2 code.
func (r *Repository) GetCountryByISO2(iso2 string) (*entities.Country, error) {
	var country entities.Country
	err := r.db.Where("iso2 = ?", iso2).First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetCountryByID retrieves a country by its local identifier.
func (r *Repository) GetCountryByID(countryID int) (*entities.Country, error) {
	var country entities.Country
	err := r.db.Where("country_id = ?", countryID).First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// UpdateCountryByISO2 updates a country's attributes by natural key and
// returns the number of rows affected.
func (r *Repository) UpdateCountryByISO2(iso2 string, country entities.Country) (int64, error) {
	result := r.db.Model(&entities.Country{}).Where("iso2 = ?", iso2).Updates(map[string]any{
		"name":      country.Name,
		"iso3":      country.ISO3,
		"currency":  country.Currency,
		"flag":      country.Flag,
		"capital":   country.Capital,
		"dial_code": country.DialCode,
	})
	return result.RowsAffected, result.Error
}

// CountCountries returns the number of rows in the catalog.
func (r *Repository) CountCountries() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Country{}).Count(&count).Error
	return count, err
}
