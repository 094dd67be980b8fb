package repository

import (
	"context"
	"errors"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Link-table errors.
var (
	ErrAlreadyEnrolled = errors.New("student already enrolled in course")
	ErrAlreadyAssigned = errors.New("instructor already assigned to course")
	ErrDuplicateTopic  = errors.New("topic already attached to course")
)

// CourseRepository handles course data access, including the enrollment,
// teaching, and topic link tables.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseColumns = `id, course_name, duration, skill_level, course_fees, program_id, university_id`

func scanCourse(row interface{ Scan(...any) error }) (*model.Course, error) {
	co := &model.Course{}
	err := row.Scan(&co.ID, &co.Name, &co.Duration, &co.SkillLevel, &co.Fees, &co.ProgramID, &co.UniversityID)
	if err != nil {
		return nil, err
	}
	return co, nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

// List retrieves the course catalog.
func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY course_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		co, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *co)
	}
	return courses, rows.Err()
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, co *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (course_name, duration, skill_level, course_fees, program_id, university_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		co.Name, co.Duration, co.SkillLevel, co.Fees, co.ProgramID, co.UniversityID,
	).Scan(&co.ID)
}

// UpdateFees adjusts a course's fees.
func (r *CourseRepository) UpdateFees(ctx context.Context, id, fees int) error {
	_, err := r.pool.Exec(ctx, `UPDATE courses SET course_fees = $1 WHERE id = $2`, fees, id)
	return err
}

// Delete removes a course by ID.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

// ListForStudent retrieves the courses a student is enrolled in.
func (r *CourseRepository) ListForStudent(ctx context.Context, studentID int) ([]model.Course, error) {
	return r.listLinked(ctx,
		`SELECT c.id, c.course_name, c.duration, c.skill_level, c.course_fees, c.program_id, c.university_id
		 FROM courses c
		 JOIN course_students cs ON cs.course_id = c.id
		 WHERE cs.student_id = $1
		 ORDER BY c.course_name`, studentID)
}

// ListForInstructor retrieves the courses an instructor teaches.
func (r *CourseRepository) ListForInstructor(ctx context.Context, instructorID int) ([]model.Course, error) {
	return r.listLinked(ctx,
		`SELECT c.id, c.course_name, c.duration, c.skill_level, c.course_fees, c.program_id, c.university_id
		 FROM courses c
		 JOIN course_instructors ci ON ci.course_id = c.id
		 WHERE ci.instructor_id = $1
		 ORDER BY c.course_name`, instructorID)
}

// ListByUniversity retrieves the courses offered by a university.
func (r *CourseRepository) ListByUniversity(ctx context.Context, universityID int) ([]model.Course, error) {
	return r.listLinked(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE university_id = $1 ORDER BY course_name`, universityID)
}

func (r *CourseRepository) listLinked(ctx context.Context, query string, arg int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		co, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *co)
	}
	return courses, rows.Err()
}

// EnrollStudent links a student to a course.
func (r *CourseRepository) EnrollStudent(ctx context.Context, courseID, studentID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO course_students (course_id, student_id) VALUES ($1, $2)`, courseID, studentID)
	if isUniqueViolation(err) {
		return ErrAlreadyEnrolled
	}
	return err
}

// IsStudentEnrolled reports whether a student is enrolled in a course.
func (r *CourseRepository) IsStudentEnrolled(ctx context.Context, courseID, studentID int) (bool, error) {
	var enrolled bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_students WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID,
	).Scan(&enrolled)
	return enrolled, err
}

// AssignInstructor links an instructor to a course.
func (r *CourseRepository) AssignInstructor(ctx context.Context, courseID, instructorID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO course_instructors (course_id, instructor_id) VALUES ($1, $2)`, courseID, instructorID)
	if isUniqueViolation(err) {
		return ErrAlreadyAssigned
	}
	return err
}

// IsInstructorAssigned reports whether an instructor teaches a course.
func (r *CourseRepository) IsInstructorAssigned(ctx context.Context, courseID, instructorID int) (bool, error) {
	var assigned bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_instructors WHERE course_id = $1 AND instructor_id = $2)`,
		courseID, instructorID,
	).Scan(&assigned)
	return assigned, err
}

// ListInstructors retrieves the instructors assigned to a course.
func (r *CourseRepository) ListInstructors(ctx context.Context, courseID int) ([]model.Instructor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT i.id, i.user_id, i.name, i.email, i.department, i.created_at
		 FROM instructors i
		 JOIN course_instructors ci ON ci.instructor_id = i.id
		 WHERE ci.course_id = $1
		 ORDER BY i.name`, courseID)
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

// ListStudents retrieves the students enrolled in a course.
func (r *CourseRepository) ListStudents(ctx context.Context, courseID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.user_id, s.name, s.email, s.dob, s.country, s.skill_level, s.contact_number, s.specialization, s.created_at
		 FROM students s
		 JOIN course_students cs ON cs.student_id = s.id
		 WHERE cs.course_id = $1
		 ORDER BY s.name`, courseID)
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

// AttachTopic tags a course with a topic.
func (r *CourseRepository) AttachTopic(ctx context.Context, courseID, topicID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO course_topics (course_id, topic_id) VALUES ($1, $2)`, courseID, topicID)
	if isUniqueViolation(err) {
		return ErrDuplicateTopic
	}
	return err
}

// ListTopics retrieves the topics attached to a course.
func (r *CourseRepository) ListTopics(ctx context.Context, courseID int) ([]model.Topic, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.topic_name
		 FROM topics t
		 JOIN course_topics ct ON ct.topic_id = t.id
		 WHERE ct.course_id = $1
		 ORDER BY t.topic_name`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.Topic
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
