package utils

import (
	"testing"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateStaffMember(t *testing.T) {
	m := &domain.StaffMember{
		Name:  "Anna Piras",
		Role:  domain.RoleCameriera,
		Zones: []string{"Le Dune", "Hotel Pineta"},
	}
	require.NoError(t, ValidateStaffMember(m))

	m.Name = "   "
	require.Error(t, ValidateStaffMember(m))

	m.Name = "Anna Piras"
	m.Zones = []string{"Zona Fantasma"}
	require.Error(t, ValidateStaffMember(m))

	m.Zones = nil
	m.Professionalita = 11
	require.Error(t, ValidateStaffMember(m))
}

func TestValidateStaffMemberGovernanteZoneLimit(t *testing.T) {
	m := &domain.StaffMember{
		Name:  "Maria Cocco",
		Role:  domain.RoleGovernante,
		Zones: []string{"Hotel Castello", "Hotel Castello Garden", "Le Dune"},
	}
	// Vincolo della scheda anagrafica, non del motore
	require.Error(t, ValidateStaffMember(m))

	m.Zones = m.Zones[:2]
	require.NoError(t, ValidateStaffMember(m))
}

func TestValidateTimeStandard(t *testing.T) {
	ts := domain.DefaultTimeStandard("Le Dune")
	require.NoError(t, ValidateTimeStandard(&ts))

	ts.StayoverIndividual = 0
	require.Error(t, ValidateTimeStandard(&ts))

	ts = domain.DefaultTimeStandard("Zona Fantasma")
	require.Error(t, ValidateTimeStandard(&ts))
}

func TestValidateMergePair(t *testing.T) {
	require.NoError(t, ValidateMergePair([]string{"Le Palme", "Bouganville"}))
	require.Error(t, ValidateMergePair([]string{"Le Palme"}))
	require.Error(t, ValidateMergePair([]string{"Le Palme", "le palme"}))
	require.Error(t, ValidateMergePair([]string{"Le Palme", "Zona Fantasma"}))
}

func TestGenerateUsernameFromName(t *testing.T) {
	username := GenerateUsernameFromName("Maria Orrù")
	require.Regexp(t, `^maria\.orru\d{1,3}$`, username)
}
