package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vasp-registry/config"
	"vasp-registry/models"
)

// OpenDatabase öffnet je nach DB_DRIVER PostgreSQL oder eine SQLite-Datei.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Migrate legt alle Tabellen an bzw. passt sie an.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Element{}, &models.Potential{}, &models.Hubbard{})
}
