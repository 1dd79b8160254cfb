package repository

import (
	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

func (r *Repository) GetTimeStandardByZone(zone string) (*domain.TimeStandard, error) {
	query := `
		SELECT arrival_individual, stayover_individual, arrival_group, stayover_group, version
		FROM time_standards WHERE zone = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	ts := &domain.TimeStandard{
		Zone: zone,
	}

	dst := []any{&ts.ArrivalIndividual, &ts.StayoverIndividual, &ts.ArrivalGroup, &ts.StayoverGroup, &ts.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, zone).Scan(dst...); err != nil {
		return nil, err
	}

	return ts, nil
}

// GetAllTimeStandards restituisce i tempi configurati indicizzati per zona.
// Le zone mancanti non sono un errore: il calcolo fabbisogno usa i fallback.
func (r *Repository) GetAllTimeStandards() (map[string]domain.TimeStandard, error) {
	query := `
		SELECT zone, arrival_individual, stayover_individual, arrival_group, stayover_group, version
		FROM time_standards
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standards := make(map[string]domain.TimeStandard)
	for rows.Next() {
		ts := domain.TimeStandard{}
		dst := []any{&ts.Zone, &ts.ArrivalIndividual, &ts.StayoverIndividual, &ts.ArrivalGroup, &ts.StayoverGroup, &ts.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		standards[ts.Zone] = ts
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return standards, nil
}

// UpsertTimeStandard salva i tempi di una zona, creandoli al primo salvataggio.
func (r *Repository) UpsertTimeStandard(ts *domain.TimeStandard) error {
	query := `
		INSERT INTO time_standards (zone, arrival_individual, stayover_individual, arrival_group, stayover_group)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (zone) DO UPDATE
		SET
			arrival_individual = EXCLUDED.arrival_individual,
			stayover_individual = EXCLUDED.stayover_individual,
			arrival_group = EXCLUDED.arrival_group,
			stayover_group = EXCLUDED.stayover_group,
			version = time_standards.version + 1
		RETURNING version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{ts.Zone, ts.ArrivalIndividual, ts.StayoverIndividual, ts.ArrivalGroup, ts.StayoverGroup}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&ts.Version); err != nil {
		return err
	}

	return nil
}
