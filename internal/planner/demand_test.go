package planner

import (
	"testing"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestComputeDemandFromCounts(t *testing.T) {
	counts := map[string]ServiceCounts{
		"Le Dune": {ArrivalsIndividual: 4, StayoversIndividual: 10},
	}
	standards := map[string]domain.TimeStandard{
		"Le Dune": {Zone: "Le Dune", ArrivalIndividual: 60, StayoverIndividual: 30, ArrivalGroup: 45, StayoverGroup: 20},
	}

	demands := ComputeDemand(counts, standards, nil)

	require.Len(t, demands, 1)
	// (4*60 + 10*30) / 60 = 9.0
	require.InDelta(t, 9.0, demands[0].RequiredHours, 1e-9)
}

func TestComputeDemandEveningServices(t *testing.T) {
	// Riassetto = fermata/3 = 10 min, cambio biancheria = fermata/4 = 7.5 min
	counts := map[string]ServiceCounts{
		"Hotel Pineta": {Turndowns: 6, LinenChanges: 8},
	}

	demands := ComputeDemand(counts, nil, nil)

	require.Len(t, demands, 1)
	// (6*10 + 8*7.5) / 60 = 2.0
	require.InDelta(t, 2.0, demands[0].RequiredHours, 1e-9)
}

func TestComputeDemandDefaultStandards(t *testing.T) {
	// Zona mai configurata: valgono i tempi di fallback 60/30/45/20
	counts := map[string]ServiceCounts{
		"Il Borgo": {ArrivalsGroup: 2, StayoversGroup: 3},
	}

	demands := ComputeDemand(counts, map[string]domain.TimeStandard{}, nil)

	require.Len(t, demands, 1)
	// (2*45 + 3*20) / 60 = 2.5
	require.InDelta(t, 2.5, demands[0].RequiredHours, 1e-9)
}

func TestComputeDemandZeroCountsZoneKept(t *testing.T) {
	counts := map[string]ServiceCounts{
		"Le Ville": {},
	}

	demands := ComputeDemand(counts, nil, nil)

	require.Len(t, demands, 1)
	require.Equal(t, "Le Ville", demands[0].Zone)
	require.Zero(t, demands[0].RequiredHours)
}

func TestComputeDemandMergePair(t *testing.T) {
	counts := map[string]ServiceCounts{
		"Le Palme":    {StayoversIndividual: 6}, // 3.0h con i fallback
		"Bouganville": {StayoversIndividual: 4}, // 2.0h
		"Le Dune":     {ArrivalsIndividual: 1},
	}

	demands := ComputeDemand(counts, nil, [][2]string{{"Le Palme", "Bouganville"}})

	require.Len(t, demands, 2)

	var merged *ZoneDemand
	for i := range demands {
		require.NotEqual(t, "Le Palme", demands[i].Zone)
		require.NotEqual(t, "Bouganville", demands[i].Zone)
		if demands[i].Merged {
			merged = &demands[i]
		}
	}

	require.NotNil(t, merged)
	require.Equal(t, MergedZoneName("Le Palme", "Bouganville"), merged.Zone)
	require.ElementsMatch(t, []string{"Le Palme", "Bouganville"}, merged.Labels)
	// Il fabbisogno della macro-zona e' la somma esatta delle due componenti
	require.InDelta(t, 5.0, merged.RequiredHours, 1e-9)
}

func TestComputeDemandMergePairMissingComponent(t *testing.T) {
	counts := map[string]ServiceCounts{
		"Le Palme": {StayoversIndividual: 6},
	}

	demands := ComputeDemand(counts, nil, [][2]string{{"Le Palme", "Bouganville"}})

	require.Len(t, demands, 1)
	require.Equal(t, "Le Palme", demands[0].Zone)
	require.False(t, demands[0].Merged)
}

func TestComputeDemandStableOrder(t *testing.T) {
	counts := map[string]ServiceCounts{
		"Spazi Comuni":   {},
		"Hotel Castello": {},
		"Cala del Forte": {},
	}

	demands := ComputeDemand(counts, nil, nil)

	require.Len(t, demands, 3)
	// Ordine canonico dell'elenco zone, non quello di iterazione della mappa
	require.Equal(t, "Hotel Castello", demands[0].Zone)
	require.Equal(t, "Cala del Forte", demands[1].Zone)
	require.Equal(t, "Spazi Comuni", demands[2].Zone)
}
