package utils

import (
	"fmt"
	"strings"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

// KnownZone dice se il nome corrisponde a una zona dell'elenco canonico.
func KnownZone(zone string) bool {
	for _, z := range domain.ZoneList {
		if strings.EqualFold(strings.TrimSpace(zone), z) {
			return true
		}
	}
	return false
}

// ValidateStaffMember controlla i vincoli dell'anagrafica prima del
// salvataggio. Sono regole della scheda, non del motore: il motore accetta
// anche record fuori regola.
func ValidateStaffMember(m *domain.StaffMember) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("il nome della collaboratrice e' obbligatorio")
	}

	if m.Role != domain.RoleCameriera && m.Role != domain.RoleGovernante {
		return fmt.Errorf("ruolo %q non valido", m.Role)
	}

	// Vincolo storico della scheda: una governante segue al massimo 2 zone
	if m.Role == domain.RoleGovernante && len(m.Zones) > 2 {
		return fmt.Errorf("una governante puo' avere al massimo 2 zone di padronanza")
	}

	for _, z := range m.Zones {
		if !KnownZone(z) {
			return fmt.Errorf("zona di padronanza %q sconosciuta", z)
		}
	}

	for _, voto := range []int{m.Professionalita, m.Esperienza, m.TenutaFisica, m.Disponibilita, m.Empatia, m.CapacitaGuida} {
		if voto < 0 || voto > 10 {
			return fmt.Errorf("i voti devono stare tra 0 e 10")
		}
	}

	return nil
}

// ValidateTimeStandard controlla che i minuti configurati siano sensati.
func ValidateTimeStandard(ts *domain.TimeStandard) error {
	if !KnownZone(ts.Zone) {
		return fmt.Errorf("zona %q sconosciuta", ts.Zone)
	}

	for _, minutes := range []float64{ts.ArrivalIndividual, ts.StayoverIndividual, ts.ArrivalGroup, ts.StayoverGroup} {
		if minutes <= 0 {
			return fmt.Errorf("i tempi standard devono essere maggiori di zero")
		}
	}

	return nil
}

// ValidateMergePair controlla la coppia di zone da accorpare.
func ValidateMergePair(pair []string) error {
	if len(pair) != 2 {
		return fmt.Errorf("la coppia da accorpare deve avere esattamente 2 zone")
	}
	if strings.EqualFold(pair[0], pair[1]) {
		return fmt.Errorf("non si puo' accorpare una zona con se stessa")
	}
	for _, z := range pair {
		if !KnownZone(z) {
			return fmt.Errorf("zona da accorpare %q sconosciuta", z)
		}
	}
	return nil
}
