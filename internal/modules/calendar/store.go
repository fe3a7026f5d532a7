// README: Holiday calendar store backed by PostgreSQL.
package calendar

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Load reads the holidays table into a Calendar. Callers fall back to
// Default() when this fails; a missing table must never stop pricing.
func (s *Store) Load(ctx context.Context) (*Calendar, error) {
	rows, err := s.db.Query(ctx,
		`SELECT day, name, festival FROM holidays ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			day      time.Time
			name     string
			festival bool
		)
		if err := rows.Scan(&day, &name, &festival); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Date: day, Holiday: Holiday{Name: name, Festival: festival}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(entries), nil
}
