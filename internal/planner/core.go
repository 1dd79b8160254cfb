package planner

import (
	"sort"
	"strings"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

// assignZone costruisce la squadra di una zona: prima le governanti con
// padronanza, poi le cameriere fino a coprire il fabbisogno, con
// trascinamento delle compagne preferite e pareggio finale della squadra.
func (p *Planner) assignZone(d ZoneDemand) ZoneAssignment {
	za := ZoneAssignment{
		Zone:          d.Zone,
		RequiredHours: d.RequiredHours,
		Team:          make([]TeamMember, 0),
	}

	// Governanti: tutte quelle disponibili con padronanza sulla zona.
	// Zero, una o piu' di una va bene lo stesso: una zona senza governante
	// e' un buco visibile nel risultato, non un errore.
	for _, m := range p.staff {
		if p.assigned[m.Name] || m.Role != domain.RoleGovernante {
			continue
		}
		if matchesZone(m, d.Labels) {
			p.assigned[m.Name] = true
			za.Team = append(za.Team, TeamMember{Name: m.Name, Role: AssignGovernante})
		}
	}

	// Obiettivo ore: il fabbisogno calcolato, oppure un presidio minimo di
	// una full-time per le zone prioritarie anche a carico zero.
	target := d.RequiredHours
	if target <= 0 {
		if !p.isPriority(d) {
			return za
		}
		target = FullTimeHours
	}

	cands := p.candidates(d.Labels)

	for _, m := range cands {
		if za.CoveredHours >= target {
			break
		}
		if p.assigned[m.Name] {
			// gia' trascinata dentro come compagna di qualcuna
			continue
		}
		p.addWithPartners(&za, m)
	}

	// Pareggio squadra: con un numero dispari di cameriere se ne aggiunge
	// esattamente una in piu' (la migliore per padronanza), anche sforando
	// il fabbisogno. Lavorare in coppia conta piu' del conto ore.
	if n := len(za.Cameriere()); n%2 == 1 {
		for _, m := range cands {
			if !p.assigned[m.Name] {
				p.addWithPartners(&za, m)
				break
			}
		}
	}

	return za
}

// candidates restituisce le cameriere disponibili ordinate per schierare la
// zona: prima chi ha padronanza, poi le jolly senza, e a parita' di fascia
// l'ordine anagrafica (ordinamento stabile, il pareggio e' voluto cosi').
func (p *Planner) candidates(labels []string) []*domain.StaffMember {
	type ranked struct {
		m    *domain.StaffMember
		tier int
	}

	cands := make([]ranked, 0)
	for _, m := range p.staff {
		if m.Role != domain.RoleCameriera || p.assigned[m.Name] {
			continue
		}
		tier := 1
		if matchesZone(m, labels) {
			tier = 0
		}
		cands = append(cands, ranked{m: m, tier: tier})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].tier < cands[j].tier
	})

	out := make([]*domain.StaffMember, len(cands))
	for i, c := range cands {
		out[i] = c.m
	}
	return out
}

// addWithPartners aggiunge la cameriera alla squadra e trascina dentro la
// compagna preferita se e' libera, seguendo anche la catena (la compagna
// della compagna). Il trascinamento vince sempre sul tetto ore: una volta
// scattato si sfora il fabbisogno senza discutere.
func (p *Planner) addWithPartners(za *ZoneAssignment, m *domain.StaffMember) {
	p.add(za, m)

	cur := m
	for cur.PreferredPartner != "" {
		partner := p.lookupCameriera(cur.PreferredPartner)
		if partner == nil || p.assigned[partner.Name] {
			// riferimento pendente o compagna gia' schierata: non succede niente
			break
		}
		p.add(za, partner)
		cur = partner
	}
}

func (p *Planner) add(za *ZoneAssignment, m *domain.StaffMember) {
	p.assigned[m.Name] = true

	tm := TeamMember{Name: m.Name, Role: AssignCameriera, Hours: FullTimeHours}
	switch {
	case p.splitPool[m.Name]:
		tm.Role, tm.Hours = AssignSpezzato, ReducedHours
	case m.PartTime:
		tm.Role, tm.Hours = AssignPartTime, ReducedHours
	}

	za.Team = append(za.Team, tm)
	za.CoveredHours += tm.Hours
}

// lookupCameriera risolve un riferimento per nome dentro le cameriere
// disponibili della corsa. Le governanti e le assenti non si risolvono.
func (p *Planner) lookupCameriera(name string) *domain.StaffMember {
	for _, m := range p.staff {
		if m.Role == domain.RoleCameriera && equalsFold(m.Name, name) {
			return m
		}
	}
	return nil
}

// matchesZone e' il confronto "morbido" storico tra zone di padronanza ed
// etichetta della zona: contenimento case-insensitive in una delle due
// direzioni ("Castello" combacia con "Hotel Castello" e viceversa). Per le
// macro-zone si confrontano le singole componenti, mai l'etichetta unita.
// Non va irrigidito a uguaglianza esatta: l'anagrafica storica ci conta.
func matchesZone(m *domain.StaffMember, labels []string) bool {
	for _, z := range m.Zones {
		zn := normalize(z)
		if zn == "" {
			continue
		}
		for _, label := range labels {
			ln := normalize(label)
			if ln == "" {
				continue
			}
			if strings.Contains(zn, ln) || strings.Contains(ln, zn) {
				return true
			}
		}
	}
	return false
}
