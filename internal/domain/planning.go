package domain

import "time"

// PlanningZone e' lo schieramento finale di una zona, eventualmente
// ritoccato a mano dall'ufficio prima del salvataggio.
type PlanningZone struct {
	Zone          string   `json:"zone"`
	RequiredHours float64  `json:"requiredHours"`
	CoveredHours  float64  `json:"coveredHours"`
	Governanti    []string `json:"governanti"`
	Team          []string `json:"team"`
}

// Planning e' un planning giornaliero cristallizzato nello storico.
type Planning struct {
	ID        int64          `json:"id"`
	Date      time.Time      `json:"date"`
	Absentees []string       `json:"absentees"`
	Zones     []PlanningZone `json:"zones"`
	SplitPool []string       `json:"splitPool"` // reparto serale (turno spezzato)
	Bench     []string       `json:"bench"`     // disponibili non schierate
	CreatedAt time.Time      `json:"createdAt"`
	Version   int32          `json:"-"`
}
