package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlatformStats is the entity-count snapshot shown on the admin and
// analyst dashboards.
type PlatformStats struct {
	Students     int `json:"students"`
	Instructors  int `json:"instructors"`
	Analysts     int `json:"analysts"`
	Courses      int `json:"courses"`
	Universities int `json:"universities"`
}

// CourseEnrollmentRow is one course's enrollment and performance summary.
type CourseEnrollmentRow struct {
	CourseID     int      `json:"course_id"`
	CourseName   string   `json:"course_name"`
	Enrolled     int      `json:"enrolled"`
	AverageMarks *float64 `json:"average_marks,omitempty"`
}

// ReportRepository runs the aggregate queries behind dashboards.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// PlatformStats counts the main entities in one round trip.
func (r *ReportRepository) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM instructors),
			(SELECT COUNT(*) FROM analysts),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM universities)`,
	).Scan(&stats.Students, &stats.Instructors, &stats.Analysts, &stats.Courses, &stats.Universities)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// CourseEnrollment summarizes per-course enrollment counts and average
// evaluation marks.
func (r *ReportRepository) CourseEnrollment(ctx context.Context) ([]CourseEnrollmentRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.course_name,
		        COUNT(DISTINCT cs.student_id),
		        AVG(e.marks)
		 FROM courses c
		 LEFT JOIN course_students cs ON cs.course_id = c.id
		 LEFT JOIN evaluations e ON e.course_id = c.id
		 GROUP BY c.id, c.course_name
		 ORDER BY c.course_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []CourseEnrollmentRow
	for rows.Next() {
		var row CourseEnrollmentRow
		if err := rows.Scan(&row.CourseID, &row.CourseName, &row.Enrolled, &row.AverageMarks); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
