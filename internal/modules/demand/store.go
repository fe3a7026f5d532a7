// README: Demand profile store backed by PostgreSQL.
package demand

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Load reads the newest profile document written by the aggregation job.
// Callers fall back to the file path or built-in profile when this fails.
func (s *Store) Load(ctx context.Context) (*Profile, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT payload FROM demand_profiles ORDER BY generated_at DESC LIMIT 1`,
	).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse profile payload: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate profile payload: %w", err)
	}
	return &p, nil
}
