package repository

import (
	"encoding/json"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

// I dettagli del planning (zone, reparto serale, panchina) viaggiano come
// colonne jsonb: lo storico si legge sempre intero, non si interroga per zona.
func (r *Repository) CreatePlanning(p *domain.Planning) error {
	query := `
		INSERT INTO plannings (date, absentees, zones, split_pool, bench)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	absentees, err := json.Marshal(p.Absentees)
	if err != nil {
		return err
	}
	zones, err := json.Marshal(p.Zones)
	if err != nil {
		return err
	}
	splitPool, err := json.Marshal(p.SplitPool)
	if err != nil {
		return err
	}
	bench, err := json.Marshal(p.Bench)
	if err != nil {
		return err
	}

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{p.Date, absentees, zones, splitPool, bench}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPlanningByID(id int64) (*domain.Planning, error) {
	query := `
		SELECT date, absentees, zones, split_pool, bench, created_at, version
		FROM plannings WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	p := &domain.Planning{
		ID: id,
	}

	var absentees, zones, splitPool, bench []byte
	dst := []any{&p.Date, &absentees, &zones, &splitPool, &bench, &p.CreatedAt, &p.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := unmarshalPlanning(p, absentees, zones, splitPool, bench); err != nil {
		return nil, err
	}

	return p, nil
}

// GetAllPlannings restituisce lo storico dal piu' recente.
func (r *Repository) GetAllPlannings() ([]*domain.Planning, error) {
	query := `
		SELECT id, date, absentees, zones, split_pool, bench, created_at, version
		FROM plannings ORDER BY date DESC, id DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plannings := make([]*domain.Planning, 0)
	for rows.Next() {
		p := &domain.Planning{}
		var absentees, zones, splitPool, bench []byte
		dst := []any{&p.ID, &p.Date, &absentees, &zones, &splitPool, &bench, &p.CreatedAt, &p.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := unmarshalPlanning(p, absentees, zones, splitPool, bench); err != nil {
			return nil, err
		}
		plannings = append(plannings, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plannings, nil
}

func (r *Repository) DeletePlanning(id int64) error {
	query := `
		DELETE FROM plannings WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func unmarshalPlanning(p *domain.Planning, absentees, zones, splitPool, bench []byte) error {
	if err := json.Unmarshal(absentees, &p.Absentees); err != nil {
		return err
	}
	if err := json.Unmarshal(zones, &p.Zones); err != nil {
		return err
	}
	if err := json.Unmarshal(splitPool, &p.SplitPool); err != nil {
		return err
	}
	return json.Unmarshal(bench, &p.Bench)
}
