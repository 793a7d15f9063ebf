package database

import (
	"fmt"

	"hopa-consensus/config"
	"hopa-consensus/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the catalog database selected by cfg.DBDriver ("postgres" or "sqlite").
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres", "":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	return gorm.Open(dialector, &gorm.Config{})
}

// Migrate creates or updates the template catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.AllConsensusModels()...)
}
