package planner

import (
	"sort"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

// MergedZoneName e' l'etichetta con cui una macro-zona compare nel planning.
func MergedZoneName(a, b string) string {
	return a + " + " + b
}

// ComputeDemand converte i conteggi camere nel fabbisogno orario per zona.
// Le zone senza tempi configurati usano i tempi di fallback. Le coppie in
// mergePairs vengono accorpate in un'unica macro-zona con fabbisogno sommato:
// l'accorpamento avviene qui, prima che il motore di schieramento parta.
// Una zona a conteggio zero resta comunque in uscita con fabbisogno zero.
func ComputeDemand(counts map[string]ServiceCounts, standards map[string]domain.TimeStandard, mergePairs [][2]string) []ZoneDemand {
	demands := make([]ZoneDemand, 0, len(counts))

	// Prima le zone dell'elenco canonico nel loro ordine storico, poi le
	// eventuali zone fuori elenco in ordine alfabetico: l'iterazione della
	// mappa non deve decidere l'ordine.
	seen := make(map[string]bool)
	for _, zone := range domain.ZoneList {
		if c, ok := counts[zone]; ok {
			demands = append(demands, zoneDemand(zone, c, standards))
			seen[zone] = true
		}
	}

	extra := make([]string, 0)
	for zone := range counts {
		if !seen[zone] {
			extra = append(extra, zone)
		}
	}
	sort.Strings(extra)
	for _, zone := range extra {
		demands = append(demands, zoneDemand(zone, counts[zone], standards))
	}

	// Accorpamento delle coppie configurate
	for _, pair := range mergePairs {
		demands = mergePair(demands, pair[0], pair[1])
	}

	return demands
}

func zoneDemand(zone string, c ServiceCounts, standards map[string]domain.TimeStandard) ZoneDemand {
	ts, ok := standards[zone]
	if !ok {
		ts = domain.DefaultTimeStandard(zone)
	}

	return ZoneDemand{
		Zone:          zone,
		Labels:        []string{zone},
		RequiredHours: requiredHours(c, ts),
	}
}

func requiredHours(c ServiceCounts, ts domain.TimeStandard) float64 {
	minutes := float64(c.ArrivalsIndividual)*ts.ArrivalIndividual +
		float64(c.StayoversIndividual)*ts.StayoverIndividual +
		float64(c.ArrivalsGroup)*ts.ArrivalGroup +
		float64(c.StayoversGroup)*ts.StayoverGroup

	// I tempi serali non si configurano: il riassetto vale un terzo della
	// fermata individuale, il cambio biancheria un quarto.
	minutes += float64(c.Turndowns) * ts.StayoverIndividual / 3
	minutes += float64(c.LinenChanges) * ts.StayoverIndividual / 4

	return minutes / 60
}

// mergePair sostituisce le due zone della coppia con la macro-zona somma.
// Se una delle due manca dai conteggi non accorpa niente.
func mergePair(demands []ZoneDemand, a, b string) []ZoneDemand {
	ia, ib := -1, -1
	for i, d := range demands {
		switch d.Zone {
		case a:
			ia = i
		case b:
			ib = i
		}
	}
	if ia == -1 || ib == -1 {
		return demands
	}

	merged := ZoneDemand{
		Zone:          MergedZoneName(a, b),
		Labels:        []string{a, b},
		RequiredHours: demands[ia].RequiredHours + demands[ib].RequiredHours,
		Merged:        true,
	}

	out := make([]ZoneDemand, 0, len(demands)-1)
	for i, d := range demands {
		if i == ia || i == ib {
			continue
		}
		out = append(out, d)
	}
	return append(out, merged)
}
