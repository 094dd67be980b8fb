package repository

import (
	"context"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EvaluationRepository handles course result data access.
type EvaluationRepository struct {
	pool *pgxpool.Pool
}

// NewEvaluationRepository creates a new EvaluationRepository.
func NewEvaluationRepository(pool *pgxpool.Pool) *EvaluationRepository {
	return &EvaluationRepository{pool: pool}
}

// Upsert records a student's result for a course, replacing any earlier one.
func (r *EvaluationRepository) Upsert(ctx context.Context, e *model.Evaluation) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO evaluations (marks, pass_fail, grade, evaluated_on, student_id, course_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (student_id, course_id)
		 DO UPDATE SET marks = EXCLUDED.marks, pass_fail = EXCLUDED.pass_fail,
		               grade = EXCLUDED.grade, evaluated_on = EXCLUDED.evaluated_on
		 RETURNING id`,
		e.Marks, e.PassFail, e.Grade, e.EvaluatedOn, e.StudentID, e.CourseID,
	).Scan(&e.ID)
}

// ListByCourse retrieves all results for a course.
func (r *EvaluationRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Evaluation, error) {
	return r.list(ctx,
		`SELECT id, marks, pass_fail, grade, evaluated_on, student_id, course_id
		 FROM evaluations WHERE course_id = $1 ORDER BY student_id`, courseID)
}

// ListByStudent retrieves all results for a student.
func (r *EvaluationRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Evaluation, error) {
	return r.list(ctx,
		`SELECT id, marks, pass_fail, grade, evaluated_on, student_id, course_id
		 FROM evaluations WHERE student_id = $1 ORDER BY course_id`, studentID)
}

func (r *EvaluationRepository) list(ctx context.Context, query string, arg int) ([]model.Evaluation, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evaluations []model.Evaluation
	for rows.Next() {
		var e model.Evaluation
		if err := rows.Scan(&e.ID, &e.Marks, &e.PassFail, &e.Grade, &e.EvaluatedOn, &e.StudentID, &e.CourseID); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, rows.Err()
}
