package models

// Element ist ein Eintrag der Referenztabelle des Periodensystems.
type Element struct {
	Symbol string `json:"symbol" gorm:"primaryKey;size:3"` // z.B. "Li"
	Name   string `json:"name" gorm:"not null"`
	Z      int    `json:"z" gorm:"uniqueIndex;not null"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (Element) TableName() string {
	return "elements"
}
