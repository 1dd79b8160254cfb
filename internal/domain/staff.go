package domain

import (
	"math"
	"time"
)

type StaffRole string

const (
	RoleCameriera  StaffRole = "Cameriera"
	RoleGovernante StaffRole = "Governante"
)

// ZoneList e' l'elenco canonico delle zone del resort.
// L'ordine e' quello storico delle schede cartacee e non va cambiato.
var ZoneList = []string{
	"Hotel Castello",
	"Hotel Castello Garden",
	"Hotel Castello 4 Piano",
	"Cala del Forte",
	"Le Dune",
	"Villa del Parco",
	"Hotel Pineta",
	"Bouganville",
	"Le Palme",
	"Il Borgo",
	"Le Ville",
	"Spazi Comuni",
}

// StaffMember e' una collaboratrice dell'anagrafica housekeeping.
// I campi ricalcano le colonne del vecchio archivio: Nome, Ruolo,
// Zone_Padronanza, Part_Time, Jolly, Pendolare, Riposo_Pref, Viaggia_Con,
// Lavora_Bene_Con, Indisp_Spezzato piu' i sei voti da 0 a 10.
type StaffMember struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Role  StaffRole `json:"role"`
	Zones []string  `json:"zones"` // zone di padronanza

	PartTime  bool `json:"partTime"`
	Jolly     bool `json:"jolly"`     // senza zona fissa, copre dove serve
	Pendolare bool `json:"pendolare"` // arriva con la navetta

	RestPreference   string `json:"restPreference"`   // giorno di riposo preferito
	CarpoolWith      string `json:"carpoolWith"`      // Viaggia_Con
	PreferredPartner string `json:"preferredPartner"` // Lavora_Bene_Con
	NoSplit          bool   `json:"noSplit"`          // Indisp_Spezzato: mai nel turno spezzato

	Professionalita int `json:"professionalita"`
	Esperienza      int `json:"esperienza"`
	TenutaFisica    int `json:"tenutaFisica"`
	Disponibilita   int `json:"disponibilita"`
	Empatia         int `json:"empatia"`
	CapacitaGuida   int `json:"capacitaGuida"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// Rating calcola il voto sintetico della collaboratrice con i pesi storici
// della dashboard (professionalita' 25%, esperienza 20%, tenuta fisica 20%,
// disponibilita' 15%), arrotondato al mezzo punto. Per le governanti il voto
// non e' significativo e viene restituito 0.
func (s *StaffMember) Rating() float64 {
	if s.Role == RoleGovernante {
		return 0
	}

	v := float64(s.Professionalita)*0.25 +
		float64(s.Esperienza)*0.20 +
		float64(s.TenutaFisica)*0.20 +
		float64(s.Disponibilita)*0.15

	return math.Round(v) / 2
}
