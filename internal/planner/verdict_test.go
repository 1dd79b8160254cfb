package planner

import (
	"testing"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCoverage(t *testing.T) {
	v := EvaluateCoverage(9.0, 12.5)
	require.True(t, v.Covered)
	require.InDelta(t, 3.5, v.Diff, 1e-9)

	v = EvaluateCoverage(9.0, 7.5)
	require.False(t, v.Covered)
	require.Equal(t, "Mancano 1.5h", v.Message())

	// Copertura esatta: nessuna ora mancante
	v = EvaluateCoverage(7.5, 7.5)
	require.True(t, v.Covered)
	require.Equal(t, "Coperto! (+0.0h)", v.Message())
}

func TestRecomputeHoursAfterManualEdit(t *testing.T) {
	lucia := cameriera("Lucia")
	lucia.PartTime = true
	directory := []*domain.StaffMember{
		cameriera("Anna"),
		lucia,
		cameriera("Elena"),
		governante("Maria", "Castello"),
	}

	team := []string{"Anna", "Lucia", "Elena", "Maria"}
	hours := RecomputeHours(team, directory, []string{"Elena"})

	// Anna 7.5, Lucia part-time 5.0, Elena spezzato 5.0, Maria governante 0
	require.InDelta(t, 17.5, hours, 1e-9)
}

func TestRecomputeHoursUnknownNameIgnored(t *testing.T) {
	directory := []*domain.StaffMember{cameriera("Anna")}

	hours := RecomputeHours([]string{"Anna", "Sconosciuta"}, directory, nil)

	require.InDelta(t, 7.5, hours, 1e-9)
}

func TestRecomputeHoursMatchesEngineAccounting(t *testing.T) {
	anna := cameriera("Anna", "Le Dune")
	lucia := cameriera("Lucia", "Le Dune")
	lucia.PartTime = true
	staff := []*domain.StaffMember{anna, lucia}

	p := New(&Parameters{}, staff, nil)
	result := p.Plan([]ZoneDemand{zona("Le Dune", 9.0)})

	za := result.Zones[0]
	recomputed := RecomputeHours(za.Cameriere(), staff, result.SplitPool)

	// Il ricalcolo manuale e il conteggio del motore sono la stessa regola
	require.InDelta(t, za.CoveredHours, recomputed, 1e-9)
}
