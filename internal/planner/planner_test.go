package planner

import (
	"testing"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/stretchr/testify/require"
)

// cameriera full-time fuori dal turno spezzato: nei test che ragionano sulle
// ore conviene partire da 7.5 fisse e attivare lo spezzato solo dove serve.
func cameriera(name string, zones ...string) *domain.StaffMember {
	return &domain.StaffMember{
		Name:     name,
		Role:     domain.RoleCameriera,
		Zones:    zones,
		NoSplit:  true,
		IsActive: true,
	}
}

func governante(name string, zones ...string) *domain.StaffMember {
	return &domain.StaffMember{
		Name:     name,
		Role:     domain.RoleGovernante,
		Zones:    zones,
		IsActive: true,
	}
}

func zona(name string, hours float64) ZoneDemand {
	return ZoneDemand{Zone: name, Labels: []string{name}, RequiredHours: hours}
}

func teamNames(za ZoneAssignment) []string {
	names := make([]string, 0, len(za.Team))
	for _, tm := range za.Team {
		names = append(names, tm.Name)
	}
	return names
}

func TestPlanCoversDemand(t *testing.T) {
	anna := cameriera("Anna Piras", "Le Dune")
	lucia := cameriera("Lucia Sanna", "Le Dune")
	lucia.PartTime = true

	p := New(&Parameters{}, []*domain.StaffMember{anna, lucia}, nil)
	result := p.Plan([]ZoneDemand{zona("Le Dune", 9.0)})

	require.Len(t, result.Zones, 1)
	za := result.Zones[0]
	require.ElementsMatch(t, []string{"Anna Piras", "Lucia Sanna"}, teamNames(za))
	require.InDelta(t, 12.5, za.CoveredHours, 1e-9) // 7.5 + 5.0

	v := EvaluateCoverage(za.RequiredHours, za.CoveredHours)
	require.True(t, v.Covered)
	require.InDelta(t, 3.5, v.Diff, 1e-9)
	require.Equal(t, "Coperto! (+3.5h)", v.Message())
}

func TestPlanNoDoubleBooking(t *testing.T) {
	staff := []*domain.StaffMember{
		governante("Maria Cocco", "Castello"),
		cameriera("Anna Piras", "Hotel Castello", "Le Dune"),
		cameriera("Lucia Sanna", "Le Dune"),
		cameriera("Elena Mura", "Hotel Pineta", "Le Dune"),
		cameriera("Paola Loi"),
	}

	p := New(&Parameters{PriorityZones: []string{"Hotel Castello"}}, staff, nil)
	result := p.Plan([]ZoneDemand{
		zona("Hotel Castello", 14.0),
		zona("Le Dune", 14.0),
		zona("Hotel Pineta", 7.0),
	})

	seen := make(map[string]int)
	for _, za := range result.Zones {
		for _, name := range teamNames(za) {
			seen[name]++
		}
	}
	for name, n := range seen {
		require.Equal(t, 1, n, "%s schierata in piu' zone", name)
	}
}

func TestPlanAffinityBeforeFloaters(t *testing.T) {
	jolly := cameriera("Paola Loi")
	affine := cameriera("Anna Piras", "Le Dune")

	// La jolly viene prima in anagrafica ma la padronanza vince
	p := New(&Parameters{}, []*domain.StaffMember{jolly, affine}, nil)
	result := p.Plan([]ZoneDemand{zona("Le Dune", 5.0)})

	za := result.Zones[0]
	require.Equal(t, []string{"Anna Piras", "Paola Loi"}, teamNames(za)) // la seconda e' il pareggio squadra
	require.Equal(t, "Anna Piras", za.Team[0].Name)
}

func TestPlanDirectoryOrderBreaksTies(t *testing.T) {
	prima := cameriera("Anna Piras", "Le Dune")
	seconda := cameriera("Lucia Sanna", "Le Dune")
	terza := cameriera("Elena Mura", "Le Dune")

	p := New(&Parameters{}, []*domain.StaffMember{prima, seconda, terza}, nil)
	result := p.Plan([]ZoneDemand{zona("Le Dune", 14.0)})

	// A parita' di fascia vale l'ordine anagrafica
	require.Equal(t, []string{"Anna Piras", "Lucia Sanna"}, teamNames(result.Zones[0]))
	require.Equal(t, []string{"Elena Mura"}, result.Bench)
}

func TestPlanPartnerPullIn(t *testing.T) {
	anna := cameriera("Anna", "Zona A")
	anna.PreferredPartner = "Beatrice"
	beatrice := cameriera("Beatrice", "Zona B")
	beatrice.PartTime = true

	p := New(&Parameters{}, []*domain.StaffMember{anna, beatrice}, nil)
	result := p.Plan([]ZoneDemand{
		zona("Zona A", 7.0), // elaborata per prima: fabbisogno maggiore
		zona("Zona B", 5.0),
	})

	require.Equal(t, "Zona A", result.Zones[0].Zone)
	// Beatrice finisce con Anna anche se la zona A era gia' coperta
	require.ElementsMatch(t, []string{"Anna", "Beatrice"}, teamNames(result.Zones[0]))
	require.Empty(t, teamNames(result.Zones[1]))
	require.InDelta(t, 12.5, result.Zones[0].CoveredHours, 1e-9)
}

func TestPlanPartnerChainFollowed(t *testing.T) {
	anna := cameriera("Anna", "Zona A")
	anna.PreferredPartner = "Beatrice"
	beatrice := cameriera("Beatrice")
	beatrice.PreferredPartner = "Carla"
	carla := cameriera("Carla")

	p := New(&Parameters{}, []*domain.StaffMember{anna, beatrice, carla}, nil)
	result := p.Plan([]ZoneDemand{zona("Zona A", 5.0)})

	require.ElementsMatch(t, []string{"Anna", "Beatrice", "Carla"}, teamNames(result.Zones[0]))
	require.Empty(t, result.Bench)
}

func TestPlanDanglingPartnerIgnored(t *testing.T) {
	anna := cameriera("Anna", "Zona A")
	anna.PreferredPartner = "Beatrice" // assente oggi

	p := New(&Parameters{}, []*domain.StaffMember{anna}, []string{"Beatrice"})
	result := p.Plan([]ZoneDemand{zona("Zona A", 5.0)})

	require.Equal(t, []string{"Anna"}, teamNames(result.Zones[0]))
}

func TestPlanEvenTeamNudge(t *testing.T) {
	staff := []*domain.StaffMember{
		cameriera("Anna", "Zona A"),
		cameriera("Lucia", "Zona A"),
		cameriera("Elena"),
	}

	p := New(&Parameters{}, staff, nil)
	result := p.Plan([]ZoneDemand{zona("Zona A", 7.0)})

	// 7.5 >= 7.0 gia' con Anna, ma la squadra dispari viene pareggiata
	require.Equal(t, []string{"Anna", "Lucia"}, teamNames(result.Zones[0]))
	require.InDelta(t, 15.0, result.Zones[0].CoveredHours, 1e-9)
}

func TestPlanSplitPoolSelection(t *testing.T) {
	staff := []*domain.StaffMember{
		governante("Maria", "Castello"),
		cameriera("Anna"),
		cameriera("Lucia"),
		cameriera("Elena"),
		cameriera("Paola"),
		cameriera("Rita"),
	}
	for _, m := range staff {
		m.NoSplit = false
	}
	staff[2].NoSplit = true // Lucia mai allo spezzato

	p := New(&Parameters{}, staff, nil)
	result := p.Plan(nil)

	// Le prime 4 cameriere disponibili saltando chi e' indisponibile
	require.Equal(t, []string{"Anna", "Elena", "Paola", "Rita"}, result.SplitPool)
}

func TestPlanSplitPoolSmallerThanFour(t *testing.T) {
	staff := []*domain.StaffMember{cameriera("Anna"), cameriera("Lucia")}
	for _, m := range staff {
		m.NoSplit = false
	}

	p := New(&Parameters{}, staff, nil)
	result := p.Plan(nil)

	require.Len(t, result.SplitPool, 2)
}

func TestPlanSplitMemberDoubleDuty(t *testing.T) {
	anna := cameriera("Anna", "Le Dune")
	anna.NoSplit = false

	p := New(&Parameters{}, []*domain.StaffMember{anna}, nil)
	result := p.Plan([]ZoneDemand{zona("Le Dune", 4.0)})

	// Chi e' nello spezzato rende 5.0 nella zona diurna e resta comunque
	// pubblicata nel reparto serale: doppio servizio, di proposito
	za := result.Zones[0]
	require.Equal(t, []string{"Anna"}, teamNames(za))
	require.Equal(t, AssignSpezzato, za.Team[0].Role)
	require.InDelta(t, 5.0, za.CoveredHours, 1e-9)
	require.Equal(t, []string{"Anna"}, result.SplitPool)
}

func TestPlanPriorityZoneAlwaysStaffed(t *testing.T) {
	staff := []*domain.StaffMember{cameriera("Anna"), cameriera("Lucia")}

	p := New(&Parameters{PriorityZones: []string{"Hotel Castello"}}, staff, nil)
	result := p.Plan([]ZoneDemand{
		zona("Hotel Castello", 0),
		zona("Spazi Comuni", 0),
	})

	require.Equal(t, "Hotel Castello", result.Zones[0].Zone)
	// Presidio minimo anche a carico zero, ma solo per le prioritarie
	require.NotEmpty(t, teamNames(result.Zones[0]))
	require.Empty(t, teamNames(result.Zones[1]))
}

func TestPlanZoneProcessingOrder(t *testing.T) {
	p := New(&Parameters{
		PriorityZones: []string{"Hotel Castello", "Hotel Castello Garden"},
	}, nil, nil)

	result := p.Plan([]ZoneDemand{
		zona("Le Dune", 3.0),
		{Zone: MergedZoneName("Le Palme", "Bouganville"), Labels: []string{"Le Palme", "Bouganville"}, RequiredHours: 1.0, Merged: true},
		zona("Hotel Pineta", 8.0),
		zona("Hotel Castello Garden", 2.0),
		zona("Hotel Castello", 1.0),
	})

	got := make([]string, 0, len(result.Zones))
	for _, za := range result.Zones {
		got = append(got, za.Zone)
	}
	// Prioritarie nell'ordine configurato, poi la macro-zona,
	// poi le altre per fabbisogno decrescente
	require.Equal(t, []string{
		"Hotel Castello",
		"Hotel Castello Garden",
		MergedZoneName("Le Palme", "Bouganville"),
		"Hotel Pineta",
		"Le Dune",
	}, got)
}

func TestPlanGovernantiByLooseAffinity(t *testing.T) {
	maria := governante("Maria", "Castello") // padronanza registrata "larga"
	rosa := governante("Rosa", "Le Dune")

	p := New(&Parameters{}, []*domain.StaffMember{maria, rosa}, nil)
	result := p.Plan([]ZoneDemand{zona("Hotel Castello", 2.0)})

	za := result.Zones[0]
	require.Equal(t, []string{"Maria"}, za.Governanti())
	// Le governanti non rendono ore sul fabbisogno
	require.Zero(t, za.CoveredHours)
	require.Equal(t, []string{"Rosa"}, result.Bench)
}

func TestPlanMacroZoneMatchesComponents(t *testing.T) {
	pina := governante("Pina", "Le Palme")
	carla := cameriera("Carla", "Bouganville")

	p := New(&Parameters{}, []*domain.StaffMember{pina, carla}, nil)
	result := p.Plan([]ZoneDemand{{
		Zone:          MergedZoneName("Le Palme", "Bouganville"),
		Labels:        []string{"Le Palme", "Bouganville"},
		RequiredHours: 5.0,
		Merged:        true,
	}})

	za := result.Zones[0]
	require.Equal(t, []string{"Pina"}, za.Governanti())
	require.Equal(t, []string{"Carla"}, za.Cameriere())
}

func TestPlanZoneWithoutGovernanteTolerated(t *testing.T) {
	p := New(&Parameters{}, []*domain.StaffMember{cameriera("Anna", "Le Dune")}, nil)
	result := p.Plan([]ZoneDemand{zona("Le Dune", 5.0)})

	require.Empty(t, result.Zones[0].Governanti())
	require.NotEmpty(t, result.Zones[0].Cameriere())
}

func TestPlanAbsenteesExcluded(t *testing.T) {
	staff := []*domain.StaffMember{
		cameriera("Anna", "Le Dune"),
		cameriera("Lucia", "Le Dune"),
	}

	p := New(&Parameters{}, staff, []string{"anna "}) // il confronto nomi e' normalizzato
	result := p.Plan([]ZoneDemand{zona("Le Dune", 5.0)})

	require.Equal(t, []string{"Lucia"}, teamNames(result.Zones[0]))
}

func TestPlanEmptyStaffNeverFails(t *testing.T) {
	p := New(&Parameters{}, nil, nil)
	result := p.Plan([]ZoneDemand{zona("Le Dune", 9.0)})

	require.Len(t, result.Zones, 1)
	require.Empty(t, result.Zones[0].Team)
	require.Empty(t, result.Bench)
	require.Empty(t, result.SplitPool)

	v := EvaluateCoverage(result.Zones[0].RequiredHours, result.Zones[0].CoveredHours)
	require.False(t, v.Covered)
	require.Equal(t, "Mancano 9.0h", v.Message())
}

func TestPlanFreshStateEachRun(t *testing.T) {
	staff := []*domain.StaffMember{cameriera("Anna", "Le Dune")}
	demands := []ZoneDemand{zona("Le Dune", 5.0)}

	first := New(&Parameters{}, staff, nil).Plan(demands)
	second := New(&Parameters{}, staff, nil).Plan(demands)

	require.Equal(t, first, second)
}
