// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByUsername(username)
package users

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/florianfabre/countrynews/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user row. Username uniqueness is the caller's
// responsibility (lookup first, then insert).
func (r *Repository) CreateUser(username, password string) (*entities.User, error) {
	user := &entities.User{
		Username: username,
		Password: password,
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// InsertUsers bulk-inserts users, replacing rows on key conflict. Used
// for seeding.
func (r *Repository) InsertUsers(users []entities.User) error {
	if len(users) == 0 {
		return nil
	}
	return r.db.Clauses(clause.Insert{Modifier: "OR REPLACE"}).Create(&users).Error
}

// GetUser retrieves a user matching both username and password exactly.
func (r *Repository) GetUser(username, password string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (r *Repository) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user with the given username. Favourite links
// owned by the user are left in place.
func (r *Repository) DeleteUser(username string) error {
	return r.db.Where("username = ?", username).Delete(&entities.User{}).Error
}

// CountUsers returns the number of user rows.
func (r *Repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}
