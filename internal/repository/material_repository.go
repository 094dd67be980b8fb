package repository

import (
	"context"
	"errors"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTextbookExists is returned when a course already has its one textbook.
var ErrTextbookExists = errors.New("course already has a textbook")

// MaterialRepository handles course material data access: the single
// textbook per course, videos, and notes.
type MaterialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

// AddTextbook attaches the textbook to a course. Each course has at most
// one, enforced by the unique course_id constraint.
func (r *MaterialRepository) AddTextbook(ctx context.Context, tb *model.Textbook) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO textbooks (title, author, publisher, course_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		tb.Title, tb.Author, tb.Publisher, tb.CourseID,
	).Scan(&tb.ID)
	if isUniqueViolation(err) {
		return ErrTextbookExists
	}
	return err
}

// GetTextbookByCourse retrieves a course's textbook, or pgx.ErrNoRows.
func (r *MaterialRepository) GetTextbookByCourse(ctx context.Context, courseID int) (*model.Textbook, error) {
	tb := &model.Textbook{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, author, publisher, course_id FROM textbooks WHERE course_id = $1`, courseID,
	).Scan(&tb.ID, &tb.Title, &tb.Author, &tb.Publisher, &tb.CourseID)
	if err != nil {
		return nil, err
	}
	return tb, nil
}

// DeleteTextbook removes a course's textbook. Returns pgx.ErrNoRows if the
// course has none.
func (r *MaterialRepository) DeleteTextbook(ctx context.Context, courseID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM textbooks WHERE course_id = $1`, courseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddVideo attaches a video to a course.
func (r *MaterialRepository) AddVideo(ctx context.Context, v *model.Video) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO videos (title, duration, url_link, course_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		v.Title, v.Duration, v.URL, v.CourseID,
	).Scan(&v.ID)
}

// ListVideosByCourse retrieves a course's videos.
func (r *MaterialRepository) ListVideosByCourse(ctx context.Context, courseID int) ([]model.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, duration, url_link, course_id FROM videos WHERE course_id = $1 ORDER BY id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Duration, &v.URL, &v.CourseID); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// DeleteVideo removes a video, scoped to its course. Returns pgx.ErrNoRows
// if no such video exists under the course.
func (r *MaterialRepository) DeleteVideo(ctx context.Context, courseID, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1 AND course_id = $2`, id, courseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddNote attaches a notes document to a course.
func (r *MaterialRepository) AddNote(ctx context.Context, n *model.Note) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notes (title, url_link, document_type, course_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		n.Title, n.URL, n.DocumentType, n.CourseID,
	).Scan(&n.ID)
}

// ListNotesByCourse retrieves a course's notes.
func (r *MaterialRepository) ListNotesByCourse(ctx context.Context, courseID int) ([]model.Note, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, url_link, document_type, course_id FROM notes WHERE course_id = $1 ORDER BY id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.URL, &n.DocumentType, &n.CourseID); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// DeleteNote removes a notes document, scoped to its course. Returns
// pgx.ErrNoRows if no such note exists under the course.
func (r *MaterialRepository) DeleteNote(ctx context.Context, courseID, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND course_id = $2`, id, courseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
