// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema version gate, user seeding
//	├── countries/       # Country catalog reads and bulk upserts
//	├── favourites/      # Favourite link management
//	└── users/           # User accounts
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./countrynews.db")
//
//	// Create domain-specific repositories
//	countriesRepo := countries.NewRepository(db.DB)
//	favouritesRepo := favourites.NewRepository(db.DB)
//	usersRepo := users.NewRepository(db.DB)
//
//	// Use repositories
//	all, err := countriesRepo.GetAllCountries()
//	err = favouritesRepo.AddFavourite(5, userID)
//
// # Schema versioning
//
// NewDatabase compares the version recorded in the schema_info table with
// config.SchemaVersion. On a mismatch all tables are dropped and recreated
// and the data loss is logged; there is no incremental migration path.
package database
