package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"vasp-registry/models"
)

const (
	datasetDelimiter = "End of Dataset"

	// allElectronH ist das H-Potential ohne Namensfeld in der TITEL-Zeile.
	allElectronH = "H_AE"
)

// ErrIncompleteBlock meldet einen Block ohne TITEL- oder ENMAX-Zeile.
var ErrIncompleteBlock = errors.New("incomplete potential block")

var errTooFewFields = errors.New("too few fields")

// ParseError beschreibt, in welchem Block und welcher Zeile das Parsen scheiterte.
type ParseError struct {
	Block int // 0-basiert, nur nicht-leere Blöcke gezählt
	Line  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("POTCAR block %d: %v", e.Block, e.Err)
	}
	return fmt.Sprintf("POTCAR block %d, line %q: %v", e.Block, strings.TrimSpace(e.Line), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// lookupFailure markiert Fehler der Element-Abfrage selbst (z.B. Datenbank weg).
// Sie sind kein Formatfehler der Eingabe und werden nicht als ParseError gemeldet.
type lookupFailure struct {
	err error
}

func (e *lookupFailure) Error() string { return e.err.Error() }

// blockState sammelt die Felder eines Blocks während des Zeilendurchlaufs.
type blockState struct {
	pot       models.Potential
	seenTitel bool
	seenEnmax bool
}

// lineRule greift auf jede Zeile, die marker enthält. Eine Zeile kann mehrere
// Regeln auslösen; spätere Zeilen überschreiben frühere.
type lineRule struct {
	marker string
	apply  func(ctx context.Context, lookup ElementLookup, st *blockState, line string) error
}

var lineRules = []lineRule{
	{marker: "TITEL", apply: applyTitel},
	{marker: "ENMAX", apply: applyEnmax},
	{marker: "VRHFIN", apply: applyVrhfin},
	{marker: "LEXCH", apply: applyLexch},
}

// ParsePotcar zerlegt den Inhalt einer POTCAR-Datei in Potentiale, einen pro
// nicht-leerem Block, in Eingabereihenfolge. Es wird nichts gespeichert.
// Ein unbekanntes Element bricht das gesamte Parsen mit *models.PotentialError ab.
func ParsePotcar(ctx context.Context, text, release string, lookup ElementLookup) ([]*models.Potential, error) {
	var potentials []*models.Potential
	for _, block := range strings.Split(strings.TrimSpace(text), datasetDelimiter) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		index := len(potentials)

		st := &blockState{}
		for _, line := range strings.Split(block, "\n") {
			for _, rule := range lineRules {
				if !strings.Contains(line, rule.marker) {
					continue
				}
				if err := rule.apply(ctx, lookup, st, line); err != nil {
					var lf *lookupFailure
					if errors.As(err, &lf) {
						return nil, fmt.Errorf("POTCAR block %d: element lookup: %w", index, lf.err)
					}
					return nil, &ParseError{Block: index, Line: line, Err: err}
				}
			}
		}

		switch {
		case !st.seenTitel:
			return nil, &ParseError{Block: index, Err: fmt.Errorf("%w: no TITEL line", ErrIncompleteBlock)}
		case !st.seenEnmax:
			return nil, &ParseError{Block: index, Err: fmt.Errorf("%w: no ENMAX line", ErrIncompleteBlock)}
		}

		pot := st.pot
		pot.Release = release
		pot.Potcar = block
		potentials = append(potentials, &pot)
	}
	return potentials, nil
}

// applyTitel liest z.B. "TITEL  = PAW_PBE Li_sv 23Jan2001".
func applyTitel(ctx context.Context, lookup ElementLookup, st *blockState, line string) error {
	fields := strings.Fields(line)

	name := allElectronH
	if len(fields) > 3 {
		name = fields[3]
	}
	date := fields[len(fields)-1]
	if name == allElectronH {
		date = "None"
	}

	symbol := elementSymbol(name)
	el, err := lookup.Element(ctx, symbol)
	if errors.Is(err, ErrUnknownElement) {
		return &models.PotentialError{Symbol: symbol}
	}
	if err != nil {
		return &lookupFailure{err: err}
	}

	st.pot.ElementSymbol = el.Symbol
	st.pot.Name = name
	st.pot.Date = date
	st.pot.GW = strings.Contains(line, "GW")
	st.pot.PAW = strings.Contains(line, "PAW")
	st.pot.US = strings.Contains(line, "US")
	st.seenTitel = true
	return nil
}

// elementSymbol leitet das Element aus dem Potential-Namen ab:
// Li_sv, As_sv_GW, Dy_3 -> Präfix vor "_"; H.25, H1.66 -> Präfix vor "." ohne Ziffern; sonst der Name.
func elementSymbol(name string) string {
	if i := strings.Index(name, "_"); i >= 0 {
		return name[:i]
	}
	if i := strings.Index(name, "."); i >= 0 {
		return strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return -1
			}
			return r
		}, name[:i])
	}
	return name
}

// applyEnmax liest "ENMAX  =  520.000;  ENMIN  =  390.000 eV" positionsgenau.
func applyEnmax(_ context.Context, _ ElementLookup, st *blockState, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return fmt.Errorf("ENMAX: %w", errTooFewFields)
	}
	enmax, err := strconv.ParseFloat(strings.TrimRight(fields[2], ";"), 64)
	if err != nil {
		return fmt.Errorf("ENMAX: %w", err)
	}
	enmin, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return fmt.Errorf("ENMIN: %w", err)
	}
	st.pot.Enmax = enmax
	st.pot.Enmin = enmin
	st.seenEnmax = true
	return nil
}

// applyVrhfin nimmt alles nach dem letzten Doppelpunkt, z.B. "VRHFIN =Li: 1s2s2p".
func applyVrhfin(_ context.Context, _ ElementLookup, st *blockState, line string) error {
	st.pot.ElecConfig = strings.TrimSpace(line[strings.LastIndex(line, ":")+1:])
	return nil
}

func applyLexch(_ context.Context, _ ElementLookup, st *blockState, line string) error {
	fields := strings.Fields(line)
	switch fields[len(fields)-1] {
	case "91":
		st.pot.XC = models.XCGGA
	case "CA":
		st.pot.XC = models.XCLDA
	case "PE":
		st.pot.XC = models.XCPBE
	}
	return nil
}
