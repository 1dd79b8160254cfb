package planner

// Ore rese da una collaboratrice schierata su una zona
const (
	FullTimeHours = 7.5
	ReducedHours  = 5.0 // part-time oppure selezionata per il turno spezzato
)

// Numero di cameriere del turno spezzato serale, se non configurato diversamente
const DefaultSplitPoolSize = 4

// ServiceCounts sono i conteggi camere di una zona per la giornata:
// arrivi e fermate (individuali e gruppi) piu' gli eventuali servizi serali.
type ServiceCounts struct {
	ArrivalsIndividual  int `json:"arrivalsIndividual" validate:"min=0"`
	StayoversIndividual int `json:"stayoversIndividual" validate:"min=0"`
	ArrivalsGroup       int `json:"arrivalsGroup" validate:"min=0"`
	StayoversGroup      int `json:"stayoversGroup" validate:"min=0"`
	Turndowns           int `json:"turndowns" validate:"min=0"`    // riassetti serali
	LinenChanges        int `json:"linenChanges" validate:"min=0"` // cambi biancheria
}

// ZoneDemand e' il fabbisogno orario di una zona (o macro-zona) gia' calcolato.
type ZoneDemand struct {
	Zone          string   `json:"zone"`
	Labels        []string `json:"labels"` // zone componenti: una sola, due per le macro-zone
	RequiredHours float64  `json:"requiredHours"`
	Merged        bool     `json:"merged"`
}

// Parameters governa l'ordine di schieramento e il turno spezzato.
type Parameters struct {
	PriorityZones []string    // servite per prime e presidiate anche a carico zero
	MergePairs    [][2]string // coppie di zone piccole accorpate in macro-zone
	SplitPoolSize int
}

// AssignmentRole e' il ruolo con cui una persona compare nello schieramento
type AssignmentRole string

const (
	AssignGovernante AssignmentRole = "governante"
	AssignCameriera  AssignmentRole = "cameriera"
	AssignPartTime   AssignmentRole = "part-time"
	AssignSpezzato   AssignmentRole = "spezzato"
)

type TeamMember struct {
	Name  string         `json:"name"`
	Role  AssignmentRole `json:"role"`
	Hours float64        `json:"hours"`
}

// ZoneAssignment e' la squadra schierata su una zona. RequiredHours e
// CoveredHours restano indipendenti: lo scarto e' il verdetto di copertura,
// non viene mai corretto.
type ZoneAssignment struct {
	Zone          string       `json:"zone"`
	RequiredHours float64      `json:"requiredHours"`
	CoveredHours  float64      `json:"coveredHours"`
	Team          []TeamMember `json:"team"`
}

// Governanti restituisce i nomi delle governanti della squadra.
func (za *ZoneAssignment) Governanti() []string {
	names := make([]string, 0)
	for _, tm := range za.Team {
		if tm.Role == AssignGovernante {
			names = append(names, tm.Name)
		}
	}
	return names
}

// Cameriere restituisce i nomi della squadra escluse le governanti.
func (za *ZoneAssignment) Cameriere() []string {
	names := make([]string, 0)
	for _, tm := range za.Team {
		if tm.Role != AssignGovernante {
			names = append(names, tm.Name)
		}
	}
	return names
}

// Result e' l'esito completo di una generazione: le zone nell'ordine di
// schieramento, la panchina (disponibili mai schierate) e il reparto serale.
type Result struct {
	Zones     []ZoneAssignment `json:"zones"`
	Bench     []string         `json:"bench"`
	SplitPool []string         `json:"splitPool"`
}
