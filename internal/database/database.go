package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/florianfabre/countrynews/internal/config"
	"github.com/florianfabre/countrynews/internal/entities"
)

// defaultUsers are seeded on first run so the app is usable before any
// account has been registered.
var defaultUsers = []entities.User{
	{Username: "Odonata", Password: "azertyuiop"},
}

// schemaInfo records the schema version the database file was created
// with. A mismatch against config.SchemaVersion triggers a destructive
// wipe-and-recreate of all tables.
type schemaInfo struct {
	ID      uint `gorm:"primaryKey"`
	Version int
}

func (schemaInfo) TableName() string {
	return "schema_info"
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := checkSchemaVersion(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entities.Country{},
		&entities.User{},
		&entities.Favourite{},
		&schemaInfo{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := stampSchemaVersion(db); err != nil {
		return nil, err
	}

	database := &Database{DB: db}

	if err := database.seedUsers(); err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// checkSchemaVersion compares the persisted schema version against
// config.SchemaVersion. On a mismatch every table is dropped and the
// loss is logged; there is no migration path.
func checkSchemaVersion(db *gorm.DB) error {
	if !db.Migrator().HasTable(&schemaInfo{}) {
		return nil
	}

	var info schemaInfo
	err := db.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if info.Version == config.SchemaVersion {
		return nil
	}

	log.Printf("WARNING: schema version mismatch (found %d, expected %d), wiping and recreating database - all data lost",
		info.Version, config.SchemaVersion)

	err = db.Migrator().DropTable(
		&entities.Country{},
		&entities.User{},
		&entities.Favourite{},
		&schemaInfo{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables for schema recreation: %w", err)
	}

	return nil
}

func stampSchemaVersion(db *gorm.DB) error {
	var info schemaInfo
	err := db.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&schemaInfo{Version: config.SchemaVersion}).Error
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	return nil
}

// seedUsers creates the default accounts when the user table is empty.
func (d *Database) seedUsers() error {
	var count int64
	if err := d.DB.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, user := range defaultUsers {
		if err := d.DB.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Username, err)
		}
		log.Printf("Created default user: %s", user.Username)
	}
	return nil
}
