package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vasp-registry/models"
)

// HubbardError meldet ein Element oder einen Liganden, der nicht aufgelöst werden konnte.
type HubbardError struct {
	Role   string // "element" oder "ligand"
	Symbol string
	Err    error
}

func (e *HubbardError) Error() string {
	return fmt.Sprintf("hubbard %s %q: %v", e.Role, e.Symbol, e.Err)
}

func (e *HubbardError) Unwrap() error {
	return e.Err
}

// HubbardOption setzt einen optionalen Parameter für HubbardRegistry.Get.
type HubbardOption func(*models.Hubbard)

func WithLigand(symbol string) HubbardOption {
	return func(h *models.Hubbard) { h.LigandSymbol = &symbol }
}

func WithConvention(convention string) HubbardOption {
	return func(h *models.Hubbard) { h.Convention = convention }
}

func WithOxidationState(ox float64) HubbardOption {
	return func(h *models.Hubbard) { h.OxidationState = &ox }
}

// WithU setzt den Hubbard-U-Wert (Standard 0). -0 wird als 0 gespeichert.
func WithU(u float64) HubbardOption {
	if u == 0 {
		u = 0
	}
	return func(h *models.Hubbard) { h.U = u }
}

// WithL setzt die Bahndrehimpuls-Quantenzahl: -1 keine Korrektur, 0..3 für s, p, d, f.
func WithL(l int) HubbardOption {
	return func(h *models.Hubbard) { h.L = l }
}

// HubbardRegistry liefert Hubbard-Parametrisierungen idempotent: gleiche
// Parameter ergeben immer denselben gespeicherten Datensatz.
type HubbardRegistry struct {
	DB       *gorm.DB
	Elements ElementLookup
	Logger   *zap.Logger
}

func NewHubbardRegistry(db *gorm.DB, elements ElementLookup, logger *zap.Logger) *HubbardRegistry {
	return &HubbardRegistry{DB: db, Elements: elements, Logger: logger}
}

// Get sucht die Parametrisierung zu (element, ligand, convention,
// oxidation_state, l, u) oder legt sie an.
func (r *HubbardRegistry) Get(ctx context.Context, element string, opts ...HubbardOption) (*models.Hubbard, error) {
	hub := &models.Hubbard{ElementSymbol: element, L: models.NoHubbardL}
	for _, opt := range opts {
		opt(hub)
	}

	if _, err := r.Elements.Element(ctx, hub.ElementSymbol); err != nil {
		return nil, &HubbardError{Role: "element", Symbol: hub.ElementSymbol, Err: err}
	}
	if hub.LigandSymbol != nil {
		if _, err := r.Elements.Element(ctx, *hub.LigandSymbol); err != nil {
			return nil, &HubbardError{Role: "ligand", Symbol: *hub.LigandSymbol, Err: err}
		}
	}

	hub.Identity = hub.IdentityKey()
	db := r.DB.WithContext(ctx)
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoNothing: true,
	}).Create(hub)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		r.Logger.Info("Hubbard-Parameter angelegt", zap.String("hubbard", hub.String()), zap.String("convention", hub.Convention))
		return hub, nil
	}

	var existing models.Hubbard
	if err := db.Where("identity = ?", hub.Identity).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// List liefert alle gespeicherten Parametrisierungen.
func (r *HubbardRegistry) List(ctx context.Context) ([]models.Hubbard, error) {
	var hubbards []models.Hubbard
	err := r.DB.WithContext(ctx).Order("element_symbol, id").Find(&hubbards).Error
	return hubbards, err
}

// Table baut die In-Memory-Tabelle Key() -> Hubbard. Bei gleichem Key gewinnt
// der zuerst gespeicherte Datensatz.
func (r *HubbardRegistry) Table(ctx context.Context) (map[string]models.Hubbard, error) {
	var hubbards []models.Hubbard
	if err := r.DB.WithContext(ctx).Order("id").Find(&hubbards).Error; err != nil {
		return nil, err
	}
	table := make(map[string]models.Hubbard, len(hubbards))
	for _, h := range hubbards {
		if _, exists := table[h.Key()]; !exists {
			table[h.Key()] = h
		}
	}
	return table, nil
}
