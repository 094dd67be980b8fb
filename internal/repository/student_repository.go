package repository

import (
	"context"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles student profile data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, user_id, name, email, dob, country, skill_level, contact_number, specialization, created_at`

// GetByID retrieves a student profile by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	st := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id,
	).Scan(&st.ID, &st.UserID, &st.Name, &st.Email, &st.DOB, &st.Country, &st.SkillLevel, &st.ContactNumber, &st.Specialization, &st.CreatedAt)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// List retrieves all student profiles.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var st model.Student
		if err := rows.Scan(&st.ID, &st.UserID, &st.Name, &st.Email, &st.DOB, &st.Country, &st.SkillLevel, &st.ContactNumber, &st.Specialization, &st.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// UpdateContact modifies a student's contact number and skill level.
// Empty values leave the existing column untouched.
func (r *StudentRepository) UpdateContact(ctx context.Context, id int, contactNumber, skillLevel string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET contact_number = COALESCE(NULLIF($1, ''), contact_number),
		     skill_level = COALESCE(NULLIF($2, ''), skill_level)
		 WHERE id = $3`,
		contactNumber, skillLevel, id)
	return err
}

// Delete removes a student profile. The credential row is left alone;
// deletes never cascade between the two.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
