// Package testutil stellt Hilfen für Tests bereit: SQLite-Datenbanken und einen S3-Ersatz.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vasp-registry/models"
	"vasp-registry/storage"
)

// TestElements sind die Elemente, die NewDB vorbelegt.
var TestElements = []models.Element{
	{Symbol: "H", Name: "Hydrogen", Z: 1},
	{Symbol: "Li", Name: "Lithium", Z: 3},
	{Symbol: "O", Name: "Oxygen", Z: 8},
	{Symbol: "F", Name: "Fluorine", Z: 9},
	{Symbol: "Mn", Name: "Manganese", Z: 25},
	{Symbol: "Fe", Name: "Iron", Z: 26},
	{Symbol: "Co", Name: "Cobalt", Z: 27},
	{Symbol: "Ni", Name: "Nickel", Z: 28},
	{Symbol: "Cu", Name: "Copper", Z: 29},
}

// NewDB erstellt eine migrierte SQLite-Datenbank im Temp-Verzeichnis des Tests
// und legt TestElements an. Die Verbindung wird beim Testende geschlossen.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, storage.Migrate(db), "Failed to migrate test database")
	elements := append([]models.Element(nil), TestElements...)
	require.NoError(t, db.Create(&elements).Error, "Failed to seed elements")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
