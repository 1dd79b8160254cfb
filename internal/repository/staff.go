package repository

import (
	"strings"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

// Le zone di padronanza vengono salvate come testo separato da virgole,
// come nella colonna Zone_Padronanza del vecchio archivio.
func joinZones(zones []string) string {
	return strings.Join(zones, ",")
}

func splitZones(s string) []string {
	zones := make([]string, 0)
	for _, z := range strings.Split(s, ",") {
		if z = strings.TrimSpace(z); z != "" {
			zones = append(zones, z)
		}
	}
	return zones
}

func (r *Repository) GetStaffMemberByID(id int64) (*domain.StaffMember, error) {
	query := `
		SELECT name, role, zones, part_time, jolly, pendolare, rest_preference,
			carpool_with, preferred_partner, no_split, professionalita, esperienza,
			tenuta_fisica, disponibilita, empatia, capacita_guida, is_active, created_at, version
		FROM staff_members WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	m := &domain.StaffMember{
		ID: id,
	}

	var zones string
	dst := []any{&m.Name, &m.Role, &zones, &m.PartTime, &m.Jolly, &m.Pendolare, &m.RestPreference,
		&m.CarpoolWith, &m.PreferredPartner, &m.NoSplit, &m.Professionalita, &m.Esperienza,
		&m.TenutaFisica, &m.Disponibilita, &m.Empatia, &m.CapacitaGuida, &m.IsActive, &m.CreatedAt, &m.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	m.Zones = splitZones(zones)
	return m, nil
}

// GetAllStaffMembers restituisce l'anagrafica in ordine di inserimento:
// e' l'"ordine anagrafica" che il motore usa come spareggio, non va cambiato.
func (r *Repository) GetAllStaffMembers() ([]*domain.StaffMember, error) {
	query := `
		SELECT id, name, role, zones, part_time, jolly, pendolare, rest_preference,
			carpool_with, preferred_partner, no_split, professionalita, esperienza,
			tenuta_fisica, disponibilita, empatia, capacita_guida, is_active, created_at, version
		FROM staff_members ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		m := &domain.StaffMember{}
		var zones string
		dst := []any{&m.ID, &m.Name, &m.Role, &zones, &m.PartTime, &m.Jolly, &m.Pendolare, &m.RestPreference,
			&m.CarpoolWith, &m.PreferredPartner, &m.NoSplit, &m.Professionalita, &m.Esperienza,
			&m.TenutaFisica, &m.Disponibilita, &m.Empatia, &m.CapacitaGuida, &m.IsActive, &m.CreatedAt, &m.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		m.Zones = splitZones(zones)
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *Repository) CreateStaffMember(m *domain.StaffMember) error {
	query := `
		INSERT INTO staff_members (name, role, zones, part_time, jolly, pendolare, rest_preference,
			carpool_with, preferred_partner, no_split, professionalita, esperienza,
			tenuta_fisica, disponibilita, empatia, capacita_guida)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, is_active, created_at, version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{m.Name, m.Role, joinZones(m.Zones), m.PartTime, m.Jolly, m.Pendolare, m.RestPreference,
		m.CarpoolWith, m.PreferredPartner, m.NoSplit, m.Professionalita, m.Esperienza,
		m.TenutaFisica, m.Disponibilita, m.Empatia, m.CapacitaGuida}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.IsActive, &m.CreatedAt, &m.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStaffMember(m *domain.StaffMember) error {
	query := `
		UPDATE staff_members
		SET
			name = $1,
			role = $2,
			zones = $3,
			part_time = $4,
			jolly = $5,
			pendolare = $6,
			rest_preference = $7,
			carpool_with = $8,
			preferred_partner = $9,
			no_split = $10,
			professionalita = $11,
			esperienza = $12,
			tenuta_fisica = $13,
			disponibilita = $14,
			empatia = $15,
			capacita_guida = $16,
			is_active = $17,
			version = version + 1
		WHERE id = $18 AND version = $19
		RETURNING created_at, version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{m.Name, m.Role, joinZones(m.Zones), m.PartTime, m.Jolly, m.Pendolare, m.RestPreference,
		m.CarpoolWith, m.PreferredPartner, m.NoSplit, m.Professionalita, m.Esperienza,
		m.TenutaFisica, m.Disponibilita, m.Empatia, m.CapacitaGuida, m.IsActive, m.ID, m.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&m.CreatedAt, &m.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaffMember(id int64) error {
	query := `
		DELETE FROM staff_members WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
