package repository

import (
	"context"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssignmentRepository handles assignment and submission data access.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// Create inserts a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO assignments (title, description, assignment_url, marks, due_date, course_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		a.Title, a.Description, a.URL, a.Marks, a.DueDate, a.CourseID,
	).Scan(&a.ID)
}

// GetByID retrieves an assignment by ID.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	a := &model.Assignment{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, assignment_url, marks, due_date, course_id
		 FROM assignments WHERE id = $1`, id,
	).Scan(&a.ID, &a.Title, &a.Description, &a.URL, &a.Marks, &a.DueDate, &a.CourseID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByCourse retrieves a course's assignments.
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, assignment_url, marks, due_date, course_id
		 FROM assignments WHERE course_id = $1 ORDER BY due_date NULLS LAST, id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.URL, &a.Marks, &a.DueDate, &a.CourseID); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Delete removes an assignment by ID.
func (r *AssignmentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	return err
}

// CreateSubmission records a student's submission for an assignment.
func (r *AssignmentRepository) CreateSubmission(ctx context.Context, s *model.Submission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO submissions (assignment_id, student_id, submission_url, submitted_at, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.AssignmentID, s.StudentID, s.URL, s.SubmittedAt, s.Status,
	).Scan(&s.ID)
}

// GetSubmissionByID retrieves a submission by ID.
func (r *AssignmentRepository) GetSubmissionByID(ctx context.Context, id int) (*model.Submission, error) {
	s := &model.Submission{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, assignment_id, student_id, submission_url, submitted_at, obtained_marks, status
		 FROM submissions WHERE id = $1`, id,
	).Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.URL, &s.SubmittedAt, &s.ObtainedMarks, &s.Status)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSubmissionsByAssignment retrieves the submissions for an assignment.
func (r *AssignmentRepository) ListSubmissionsByAssignment(ctx context.Context, assignmentID int) ([]model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, assignment_id, student_id, submission_url, submitted_at, obtained_marks, status
		 FROM submissions WHERE assignment_id = $1 ORDER BY submitted_at`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.URL, &s.SubmittedAt, &s.ObtainedMarks, &s.Status); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// GradeSubmission records the marks for a submission and flips its status.
func (r *AssignmentRepository) GradeSubmission(ctx context.Context, id, obtainedMarks int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE submissions SET obtained_marks = $1, status = $2 WHERE id = $3`,
		obtainedMarks, model.SubmissionGraded, id)
	return err
}
