package repository

import (
	"context"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InstructorRepository handles instructor profile data access.
type InstructorRepository struct {
	pool *pgxpool.Pool
}

// NewInstructorRepository creates a new InstructorRepository.
func NewInstructorRepository(pool *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{pool: pool}
}

// GetByID retrieves an instructor profile by ID.
func (r *InstructorRepository) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	in := &model.Instructor{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, email, department, created_at FROM instructors WHERE id = $1`, id,
	).Scan(&in.ID, &in.UserID, &in.Name, &in.Email, &in.Department, &in.CreatedAt)
	if err != nil {
		return nil, err
	}
	return in, nil
}

// List retrieves all instructor profiles.
func (r *InstructorRepository) List(ctx context.Context) ([]model.Instructor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, email, department, created_at FROM instructors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []model.Instructor
	for rows.Next() {
		var in model.Instructor
		if err := rows.Scan(&in.ID, &in.UserID, &in.Name, &in.Email, &in.Department, &in.CreatedAt); err != nil {
			return nil, err
		}
		instructors = append(instructors, in)
	}
	return instructors, rows.Err()
}

// Delete removes an instructor profile.
func (r *InstructorRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	return err
}
