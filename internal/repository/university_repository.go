package repository

import (
	"context"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniversityRepository handles university and program data access.
type UniversityRepository struct {
	pool *pgxpool.Pool
}

// NewUniversityRepository creates a new UniversityRepository.
func NewUniversityRepository(pool *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{pool: pool}
}

// GetByID retrieves a university by ID.
func (r *UniversityRepository) GetByID(ctx context.Context, id int) (*model.University, error) {
	u := &model.University{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, city, country FROM universities WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.City, &u.Country)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List retrieves all universities.
func (r *UniversityRepository) List(ctx context.Context) ([]model.University, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, city, country FROM universities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []model.University
	for rows.Next() {
		var u model.University
		if err := rows.Scan(&u.ID, &u.Name, &u.City, &u.Country); err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}
	return universities, rows.Err()
}

// ExistsByName reports whether a university with the given name exists.
func (r *UniversityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM universities WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

// Create inserts a new university.
func (r *UniversityRepository) Create(ctx context.Context, u *model.University) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO universities (name, city, country) VALUES ($1, $2, $3) RETURNING id`,
		u.Name, u.City, u.Country,
	).Scan(&u.ID)
}

// Delete removes a university by ID.
func (r *UniversityRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	return err
}

// CreateProgram inserts a new program.
func (r *UniversityRepository) CreateProgram(ctx context.Context, p *model.Program) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO programs (program_type) VALUES ($1) RETURNING id`, p.Type).Scan(&p.ID)
}

// ListPrograms retrieves all programs.
func (r *UniversityRepository) ListPrograms(ctx context.Context) ([]model.Program, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, program_type FROM programs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []model.Program
	for rows.Next() {
		var p model.Program
		if err := rows.Scan(&p.ID, &p.Type); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// DeleteProgram removes a program by ID.
func (r *UniversityRepository) DeleteProgram(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	return err
}
