package planner

import (
	"sort"
	"strings"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

// Planner schiera il personale disponibile sulle zone per una giornata.
// Il motore e' greedy e irrevocabile: una volta assegnata a una zona, una
// collaboratrice esce dal giro per tutte le zone successive. Per questo
// l'ordine di elaborazione (zone prioritarie, poi la macro-zona, poi le altre
// per fabbisogno decrescente) e' una scelta di progetto, non un dettaglio.
type Planner struct {
	params *Parameters
	staff  []*domain.StaffMember // disponibili oggi, in ordine anagrafica

	assigned  map[string]bool // gia' schierate nella corsa corrente
	splitPool map[string]bool
	splitList []string
}

// New prepara una corsa di schieramento: filtra le assenti e seleziona il
// turno spezzato serale. Lo stato (insieme delle gia' assegnate) e' locale
// alla corsa: ogni chiamata a New riparte da zero.
func New(params *Parameters, staff []*domain.StaffMember, absentees []string) *Planner {
	absent := make(map[string]bool, len(absentees))
	for _, name := range absentees {
		absent[normalize(name)] = true
	}

	p := &Planner{
		params:    params,
		staff:     make([]*domain.StaffMember, 0, len(staff)),
		assigned:  make(map[string]bool),
		splitPool: make(map[string]bool),
		splitList: make([]string, 0),
	}

	for _, m := range staff {
		if !m.IsActive || absent[normalize(m.Name)] {
			continue
		}
		p.staff = append(p.staff, m)
	}

	// Turno spezzato: le prime N cameriere disponibili non indisponibili allo
	// spezzato, in ordine anagrafica. Chi e' nel gruppo rende comunque 5.0 ore
	// nella zona diurna e viene pubblicata anche nel reparto serale: il doppio
	// servizio e' voluto, non viene impedito.
	size := params.SplitPoolSize
	if size <= 0 {
		size = DefaultSplitPoolSize
	}
	for _, m := range p.staff {
		if len(p.splitList) >= size {
			break
		}
		if m.Role != domain.RoleCameriera || m.NoSplit {
			continue
		}
		p.splitPool[m.Name] = true
		p.splitList = append(p.splitList, m.Name)
	}

	return p
}

// Plan genera lo schieramento per i fabbisogni dati (gia' accorpati).
// Non fallisce mai: zone scoperte, squadre senza governante o senza nessuno
// restano nel risultato come dati, tocca all'ufficio rimediare.
func (p *Planner) Plan(demands []ZoneDemand) *Result {
	result := &Result{
		Zones:     make([]ZoneAssignment, 0, len(demands)),
		Bench:     make([]string, 0),
		SplitPool: p.splitList,
	}

	for _, d := range p.orderZones(demands) {
		result.Zones = append(result.Zones, p.assignZone(d))
	}

	for _, m := range p.staff {
		if !p.assigned[m.Name] {
			result.Bench = append(result.Bench, m.Name)
		}
	}

	return result
}

// orderZones mette in testa le zone prioritarie (nell'ordine configurato),
// poi la macro-zona, infine le altre per fabbisogno decrescente. L'ordinamento
// e' stabile: a parita' di fabbisogno vale l'ordine di ingresso.
func (p *Planner) orderZones(demands []ZoneDemand) []ZoneDemand {
	ordered := make([]ZoneDemand, 0, len(demands))
	taken := make(map[string]bool)

	for _, pz := range p.params.PriorityZones {
		for _, d := range demands {
			if !taken[d.Zone] && equalsFold(d.Zone, pz) {
				ordered = append(ordered, d)
				taken[d.Zone] = true
			}
		}
	}

	for _, d := range demands {
		if d.Merged && !taken[d.Zone] {
			ordered = append(ordered, d)
			taken[d.Zone] = true
		}
	}

	rest := make([]ZoneDemand, 0)
	for _, d := range demands {
		if !taken[d.Zone] {
			rest = append(rest, d)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].RequiredHours > rest[j].RequiredHours
	})

	return append(ordered, rest...)
}

func (p *Planner) isPriority(d ZoneDemand) bool {
	for _, pz := range p.params.PriorityZones {
		if equalsFold(d.Zone, pz) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func equalsFold(a, b string) bool {
	return normalize(a) == normalize(b)
}
