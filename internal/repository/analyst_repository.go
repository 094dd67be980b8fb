package repository

import (
	"context"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalystRepository handles data-analyst profile data access.
type AnalystRepository struct {
	pool *pgxpool.Pool
}

// NewAnalystRepository creates a new AnalystRepository.
func NewAnalystRepository(pool *pgxpool.Pool) *AnalystRepository {
	return &AnalystRepository{pool: pool}
}

// GetByID retrieves an analyst profile by ID.
func (r *AnalystRepository) GetByID(ctx context.Context, id int) (*model.Analyst, error) {
	an := &model.Analyst{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, email, created_at FROM analysts WHERE id = $1`, id,
	).Scan(&an.ID, &an.UserID, &an.Name, &an.Email, &an.CreatedAt)
	if err != nil {
		return nil, err
	}
	return an, nil
}

// List retrieves all analyst profiles.
func (r *AnalystRepository) List(ctx context.Context) ([]model.Analyst, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, email, created_at FROM analysts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analysts []model.Analyst
	for rows.Next() {
		var an model.Analyst
		if err := rows.Scan(&an.ID, &an.UserID, &an.Name, &an.Email, &an.CreatedAt); err != nil {
			return nil, err
		}
		analysts = append(analysts, an)
	}
	return analysts, rows.Err()
}

// Delete removes an analyst profile.
func (r *AnalystRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM analysts WHERE id = $1`, id)
	return err
}
