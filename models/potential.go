package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Austausch-Korrelations-Funktionale, wie sie LEXCH im POTCAR kodiert.
const (
	XCGGA = "GGA"
	XCLDA = "LDA"
	XCPBE = "PBE"
)

// UnknownRelease wird gesetzt, wenn neben dem POTCAR keine VERSION-Datei liegt.
const UnknownRelease = "unknown"

// PotentialError meldet ein Element-Symbol, das nicht in der Referenztabelle steht.
type PotentialError struct {
	Symbol string
}

func (e *PotentialError) Error() string {
	return fmt.Sprintf("unknown element in potential: %s", e.Symbol)
}

// Potential speichert ein VASP-Pseudopotential.
type Potential struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	ElementSymbol string  `json:"element" gorm:"column:element_symbol;size:3;index;not null"`
	Name          string  `json:"name" gorm:"size:16;not null"`
	XC            string  `json:"xc" gorm:"column:xc;size:3"`
	GW            bool    `json:"gw" gorm:"column:gw;default:false"`
	PAW           bool    `json:"paw" gorm:"column:paw;default:false"`
	US            bool    `json:"us" gorm:"column:us;default:false"`
	Enmax         float64 `json:"enmax"`
	Enmin         float64 `json:"enmin"`
	Date          string  `json:"date" gorm:"size:20"`
	ElecConfig    string  `json:"elec_config" gorm:"type:text"`
	Release       string  `json:"release" gorm:"column:release_tag;size:32;index"`

	// Rohtext des POTCAR-Blocks, nur beim ersten Anlegen geschrieben
	Potcar string `json:"-" gorm:"type:text"`

	// Identity ist der kanonische Schlüssel über alle Felder außer Potcar.
	Identity string `json:"-" gorm:"size:64;uniqueIndex;not null"`
}

// TableName gibt explizit den Tabellennamen an.
func (Potential) TableName() string {
	return "vasp_potentials"
}

// IdentityKey berechnet den Deduplizierungs-Schlüssel.
func (p *Potential) IdentityKey() string {
	fields := []string{
		p.ElementSymbol,
		p.Name,
		p.XC,
		strconv.FormatBool(p.GW),
		strconv.FormatBool(p.PAW),
		strconv.FormatBool(p.US),
		formatKeyFloat(p.Enmax),
		formatKeyFloat(p.Enmin),
		p.Date,
		p.ElecConfig,
		p.Release,
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// formatKeyFloat formatiert Zahlen für Identity-Schlüssel. -0 und 0 sind
// gleich, wie beim Vergleich in SQL.
func formatKeyFloat(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String liefert z.B. "Li_sv PAW PBE GW r5_4_0".
func (p Potential) String() string {
	ident := []string{p.Name}
	if p.PAW {
		ident = append(ident, "PAW")
	} else if p.US {
		ident = append(ident, "US")
	}
	if p.XC != "" {
		ident = append(ident, p.XC)
	}
	if p.GW {
		ident = append(ident, "GW")
	}
	if p.Release != UnknownRelease && p.Release != "" {
		ident = append(ident, p.Release)
	}
	return strings.Join(ident, " ")
}
