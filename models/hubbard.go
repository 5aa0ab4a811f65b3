package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NoHubbardL entspricht LDAUL = -1: keine Onsite-Korrektur.
const NoHubbardL = -1

// Hubbard speichert eine Hubbard-U-Parametrisierung für ein Element.
type Hubbard struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	ElementSymbol  string   `json:"element" gorm:"column:element_symbol;size:3;index;not null"`
	LigandSymbol   *string  `json:"ligand,omitempty" gorm:"column:ligand_symbol;size:3"`
	Convention     string   `json:"convention" gorm:"size:20"` // z.B. "wang", "aykol"
	L              int      `json:"l" gorm:"column:hubbard_l;not null"`
	U              float64  `json:"u" gorm:"column:hubbard_u;not null"`
	OxidationState *float64 `json:"oxidation_state,omitempty"`

	Identity string `json:"-" gorm:"size:64;uniqueIndex;not null"`
}

// TableName gibt explizit den Tabellennamen an.
func (Hubbard) TableName() string {
	return "hubbards"
}

// IdentityKey berechnet den Schlüssel für get-or-create über
// (element, ligand, convention, oxidation_state, l, u).
func (h *Hubbard) IdentityKey() string {
	ligand, ox := "<nil>", "<nil>"
	if h.LigandSymbol != nil {
		ligand = *h.LigandSymbol
	}
	if h.OxidationState != nil {
		ox = formatKeyFloat(*h.OxidationState)
	}
	fields := []string{
		h.ElementSymbol,
		ligand,
		h.Convention,
		ox,
		strconv.Itoa(h.L),
		formatKeyFloat(h.U),
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// Key ist der Schlüssel in der In-Memory-Tabelle, z.B. "Fe_5.30".
func (h *Hubbard) Key() string {
	return fmt.Sprintf("%s_%.2f", h.ElementSymbol, h.U)
}

// IsActive ist nur wahr, wenn tatsächlich eine Korrektur angewendet wird.
func IsActive(h *Hubbard) bool {
	return h != nil && h.U > 0 && h.L != NoHubbardL
}

// Equals vergleicht Element, Ligand, L und U. Oxidationsstufe und
// Konvention zählen nicht.
func Equals(a, b *Hubbard) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ElementSymbol != b.ElementSymbol {
		return false
	}
	if (a.LigandSymbol == nil) != (b.LigandSymbol == nil) {
		return false
	}
	if a.LigandSymbol != nil && *a.LigandSymbol != *b.LigandSymbol {
		return false
	}
	return a.L == b.L && a.U == b.U
}

// String liefert z.B. "Fe3+-O (U=5.30, L=2)".
func (h Hubbard) String() string {
	var b strings.Builder
	b.WriteString(h.ElementSymbol)
	if h.OxidationState != nil {
		ox := *h.OxidationState
		if ox == math.Trunc(ox) {
			fmt.Fprintf(&b, "%.0f+", ox)
		} else {
			fmt.Fprintf(&b, "%.1f+", ox)
		}
	}
	if h.LigandSymbol != nil && *h.LigandSymbol != "" {
		b.WriteString("-" + *h.LigandSymbol)
	}
	fmt.Fprintf(&b, " (U=%.2f, L=%d)", h.U, h.L)
	return b.String()
}
