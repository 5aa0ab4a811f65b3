package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vasp-registry/models"
)

// ErrUnknownElement wird zurückgegeben, wenn ein Symbol nicht in der Referenztabelle steht.
var ErrUnknownElement = errors.New("unknown element")

// ElementLookup löst Element-Symbole gegen die Referenztabelle auf.
type ElementLookup interface {
	Element(ctx context.Context, symbol string) (*models.Element, error)
}

// ElementDirectory liest die Element-Tabelle über einen In-Memory-Cache.
type ElementDirectory struct {
	DB     *gorm.DB
	Logger *zap.Logger
	cache  *gocache.Cache
}

// NewElementDirectory erstellt ein ElementDirectory. Elemente ändern sich praktisch nie,
// daher bleiben Treffer eine Stunde im Cache.
func NewElementDirectory(db *gorm.DB, logger *zap.Logger) *ElementDirectory {
	return &ElementDirectory{
		DB:     db,
		Logger: logger,
		cache:  gocache.New(time.Hour, 2*time.Hour),
	}
}

// Element liefert das Element zum Symbol oder ErrUnknownElement.
func (d *ElementDirectory) Element(ctx context.Context, symbol string) (*models.Element, error) {
	if cached, found := d.cache.Get(symbol); found {
		if el, ok := cached.(models.Element); ok {
			return &el, nil
		}
	}

	var el models.Element
	err := d.DB.WithContext(ctx).Where("symbol = ?", symbol).First(&el).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	if err != nil {
		d.Logger.Error("Element-Abfrage fehlgeschlagen", zap.String("symbol", symbol), zap.Error(err))
		return nil, err
	}

	d.cache.SetDefault(symbol, el)
	return &el, nil
}

// All liefert alle Elemente nach Ordnungszahl.
func (d *ElementDirectory) All(ctx context.Context) ([]models.Element, error) {
	var elements []models.Element
	err := d.DB.WithContext(ctx).Order("z").Find(&elements).Error
	return elements, err
}

// SeedElements befüllt eine leere Element-Tabelle mit dem Periodensystem.
func SeedElements(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Element{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	elements := append([]models.Element(nil), referenceElements...)
	if err := db.CreateInBatches(&elements, 50).Error; err != nil {
		logger.Warn("Failed to seed elements", zap.Error(err))
		return err
	}
	logger.Info("Reference elements seeded.", zap.Int("count", len(elements)))
	return nil
}
