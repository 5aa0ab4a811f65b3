package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vasp-registry/models"
	"vasp-registry/providers"
)

// PotentialService liest POTCAR-Inhalte ein und verwaltet die gespeicherten Potentiale.
type PotentialService struct {
	DB       *gorm.DB
	Elements ElementLookup
	Logger   *zap.Logger
}

// NewPotentialService erstellt eine neue Instanz des PotentialService.
func NewPotentialService(db *gorm.DB, elements ElementLookup, logger *zap.Logger) *PotentialService {
	return &PotentialService{DB: db, Elements: elements, Logger: logger}
}

// ImportResult ist das Ergebnis eines Imports: alle Potentiale der Datei in
// Reihenfolge und wie viele davon neu angelegt wurden.
type ImportResult struct {
	Potentials []*models.Potential
	Created    int
}

// Import parst eine POTCAR-Datei und speichert alle Blöcke in einer einzigen
// Transaktion. Scheitert ein Block, wird nichts gespeichert.
func (s *PotentialService) Import(ctx context.Context, file providers.PotcarFile) (*ImportResult, error) {
	log := s.Logger.With(zap.String("source", file.Source), zap.String("release", file.Release))

	parsed, err := ParsePotcar(ctx, file.Content, file.Release, s.Elements)
	if err != nil {
		log.Warn("POTCAR konnte nicht geparst werden", zap.Error(err))
		return nil, err
	}

	result := &ImportResult{}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, pot := range parsed {
			stored, created, err := getOrCreatePotential(tx, pot)
			if err != nil {
				return fmt.Errorf("store potential %s: %w", pot.Name, err)
			}
			if created {
				result.Created++
			}
			result.Potentials = append(result.Potentials, stored)
		}
		return nil
	})
	if err != nil {
		log.Error("Speichern der Potentiale fehlgeschlagen", zap.Error(err))
		return nil, err
	}

	log.Info("POTCAR importiert", zap.Int("potentials", len(result.Potentials)), zap.Int("created", result.Created))
	return result, nil
}

// ImportPath liest ein POTCAR (und ggf. ../VERSION) von der Platte und importiert es.
func (s *PotentialService) ImportPath(ctx context.Context, path string) (*ImportResult, error) {
	file, err := providers.ReadLocal(path)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, file)
}

// getOrCreatePotential legt pot an, falls es noch kein Potential mit gleicher
// Identity gibt, und liefert sonst das vorhandene. Der Rohtext wird nur beim
// Anlegen geschrieben.
func getOrCreatePotential(tx *gorm.DB, pot *models.Potential) (*models.Potential, bool, error) {
	pot.Identity = pot.IdentityKey()

	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoNothing: true,
	}).Create(pot)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		return pot, true, nil
	}

	var existing models.Potential
	if err := tx.Where("identity = ?", pot.Identity).First(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

// PotentialFilter schränkt List ein. Leere Felder filtern nicht.
type PotentialFilter struct {
	Element string `form:"element"`
	XC      string `form:"xc"`
	Release string `form:"release"`
}

// List liefert die Potentiale passend zum Filter, sortiert nach Element und Name.
func (s *PotentialService) List(ctx context.Context, filter PotentialFilter) ([]models.Potential, error) {
	query := s.DB.WithContext(ctx).Model(&models.Potential{}).Omit("potcar")
	if filter.Element != "" {
		query = query.Where("element_symbol = ?", filter.Element)
	}
	if filter.XC != "" {
		query = query.Where("xc = ?", filter.XC)
	}
	if filter.Release != "" {
		query = query.Where("release_tag = ?", filter.Release)
	}

	var potentials []models.Potential
	if err := query.Order("element_symbol, name, id").Find(&potentials).Error; err != nil {
		return nil, err
	}
	return potentials, nil
}

// Get liefert ein Potential inklusive Rohtext.
func (s *PotentialService) Get(ctx context.Context, id uint) (*models.Potential, error) {
	var pot models.Potential
	if err := s.DB.WithContext(ctx).First(&pot, id).Error; err != nil {
		return nil, err
	}
	return &pot, nil
}
