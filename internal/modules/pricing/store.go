// README: Vehicle rate store backed by PostgreSQL.
package pricing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadRates reads the per-vehicle rate table. Callers fall back to
// DefaultRates() when this fails. A row with a floor above its ceiling is
// rejected outright rather than silently producing an inverted guard.
func (s *Store) LoadRates(ctx context.Context) (RateTable, error) {
	rows, err := s.db.Query(ctx,
		`SELECT vehicle_type, display_name, base_rate, floor_rate, ceiling_rate FROM vehicle_rates`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rates := make(RateTable)
	for rows.Next() {
		var r Rate
		if err := rows.Scan(&r.Vehicle, &r.Name, &r.Base, &r.Floor, &r.Ceiling); err != nil {
			return nil, err
		}
		if r.Floor > r.Ceiling || r.Base <= 0 {
			return nil, fmt.Errorf("invalid rate row for %q", r.Vehicle)
		}
		rates[r.Vehicle] = r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("vehicle_rates table is empty")
	}
	return rates, nil
}
