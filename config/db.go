package config

import (
	"fmt"
	"os"
	"path/filepath"

	"recipe-share/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the SQLite store at cfg.DBPath (creating the parent
// directory on first run), migrates the schema and seeds sample data
// when the store is empty.
func InitDB(cfg Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	if err := Seed(db); err != nil {
		return nil, fmt.Errorf("seed database: %w", err)
	}
	return db, nil
}

// Migrate auto-migrates every model. Exposed separately so tests can
// run it against an in-memory store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Image{},
		&models.Ingredient{},
		&models.RecipeIngredient{},
		&models.Review{},
		&models.DietaryTag{},
	)
}
