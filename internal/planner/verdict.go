package planner

import (
	"fmt"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

// Verdict e' il confronto tra ore richieste e ore schierate su una zona.
type Verdict struct {
	Covered bool    `json:"covered"`
	Diff    float64 `json:"diff"` // ore in piu', negativo se mancano
}

// EvaluateCoverage e' il verdetto di copertura: puro, senza stato, lo stesso
// sia per il risultato del motore sia dopo ogni ritocco manuale della squadra.
func EvaluateCoverage(requiredHours, coveredHours float64) Verdict {
	return Verdict{
		Covered: coveredHours >= requiredHours,
		Diff:    coveredHours - requiredHours,
	}
}

// Message restituisce il verdetto nella forma storica del gestionale.
func (v Verdict) Message() string {
	if v.Covered {
		return fmt.Sprintf("Coperto! (+%.1fh)", v.Diff)
	}
	return fmt.Sprintf("Mancano %.1fh", -v.Diff)
}

// RecomputeHours ricalcola le ore rese da una squadra ritoccata a mano:
// 5.0 per part-time o per chi e' nel turno spezzato, 7.5 per tutte le altre.
// Le governanti non rendono ore e i nomi che non risolvono in anagrafica
// vengono ignorati senza errore.
func RecomputeHours(team []string, directory []*domain.StaffMember, splitPool []string) float64 {
	byName := make(map[string]*domain.StaffMember, len(directory))
	for _, m := range directory {
		byName[normalize(m.Name)] = m
	}
	split := make(map[string]bool, len(splitPool))
	for _, name := range splitPool {
		split[normalize(name)] = true
	}

	hours := 0.0
	for _, name := range team {
		m, ok := byName[normalize(name)]
		if !ok || m.Role == domain.RoleGovernante {
			continue
		}
		if m.PartTime || split[normalize(name)] {
			hours += ReducedHours
		} else {
			hours += FullTimeHours
		}
	}
	return hours
}
