package service

import (
	"context"
	"errors"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrUniversityExists is returned when a university with the same name is
// already registered.
var ErrUniversityExists = errors.New("university already registered")

// StudentDetail bundles a student profile with their enrolled courses.
type StudentDetail struct {
	Student model.Student  `json:"student"`
	Courses []model.Course `json:"courses"`
}

// InstructorDetail bundles an instructor profile with their courses.
type InstructorDetail struct {
	Instructor model.Instructor `json:"instructor"`
	Courses    []model.Course   `json:"courses"`
}

// UniversityDetail bundles a university with its course offerings.
type UniversityDetail struct {
	University model.University `json:"university"`
	Courses    []model.Course   `json:"courses"`
}

// CourseDetail bundles a course with its assigned instructors.
type CourseDetail struct {
	Course      model.Course       `json:"course"`
	Instructors []model.Instructor `json:"instructors"`
}

// AdminService implements the admin portal: directories over every entity
// plus catalog management.
type AdminService struct {
	studentRepo    *repository.StudentRepository
	instructorRepo *repository.InstructorRepository
	analystRepo    *repository.AnalystRepository
	courseRepo     *repository.CourseRepository
	universityRepo *repository.UniversityRepository
	topicRepo      *repository.TopicRepository
	log            zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	studentRepo *repository.StudentRepository,
	instructorRepo *repository.InstructorRepository,
	analystRepo *repository.AnalystRepository,
	courseRepo *repository.CourseRepository,
	universityRepo *repository.UniversityRepository,
	topicRepo *repository.TopicRepository,
) *AdminService {
	return &AdminService{
		studentRepo:    studentRepo,
		instructorRepo: instructorRepo,
		analystRepo:    analystRepo,
		courseRepo:     courseRepo,
		universityRepo: universityRepo,
		topicRepo:      topicRepo,
		log:            log.With().Str("component", "admin_service").Logger(),
	}
}

// ListStudents lists every student profile.
func (s *AdminService) ListStudents(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// StudentDetail returns a student profile with their enrollments.
func (s *AdminService) StudentDetail(ctx context.Context, id int) (*StudentDetail, error) {
	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	courses, err := s.courseRepo.ListForStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &StudentDetail{Student: *st, Courses: courses}, nil
}

// DeleteStudent removes a student profile. The login credential survives,
// so the account becomes unusable until an admin intervenes.
func (s *AdminService) DeleteStudent(ctx context.Context, id int) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info().Int("student_id", id).Msg("Deleting student profile")
	return s.studentRepo.Delete(ctx, id)
}

// ListInstructors lists every instructor profile.
func (s *AdminService) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return s.instructorRepo.List(ctx)
}

// InstructorDetail returns an instructor profile with their courses.
func (s *AdminService) InstructorDetail(ctx context.Context, id int) (*InstructorDetail, error) {
	in, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	courses, err := s.courseRepo.ListForInstructor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InstructorDetail{Instructor: *in, Courses: courses}, nil
}

// DeleteInstructor removes an instructor profile.
func (s *AdminService) DeleteInstructor(ctx context.Context, id int) error {
	if _, err := s.instructorRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info().Int("instructor_id", id).Msg("Deleting instructor profile")
	return s.instructorRepo.Delete(ctx, id)
}

// ListAnalysts lists every analyst profile.
func (s *AdminService) ListAnalysts(ctx context.Context) ([]model.Analyst, error) {
	return s.analystRepo.List(ctx)
}

// AnalystDetail returns an analyst profile.
func (s *AdminService) AnalystDetail(ctx context.Context, id int) (*model.Analyst, error) {
	a, err := s.analystRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// DeleteAnalyst removes an analyst profile.
func (s *AdminService) DeleteAnalyst(ctx context.Context, id int) error {
	if _, err := s.analystRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info().Int("analyst_id", id).Msg("Deleting analyst profile")
	return s.analystRepo.Delete(ctx, id)
}

// ListUniversities lists every registered university.
func (s *AdminService) ListUniversities(ctx context.Context) ([]model.University, error) {
	return s.universityRepo.List(ctx)
}

// UniversityDetail returns a university with its course offerings.
func (s *AdminService) UniversityDetail(ctx context.Context, id int) (*UniversityDetail, error) {
	u, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	courses, err := s.courseRepo.ListByUniversity(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UniversityDetail{University: *u, Courses: courses}, nil
}

// CreateUniversity registers a new university. Names are unique.
func (s *AdminService) CreateUniversity(ctx context.Context, req *model.CreateUniversityRequest) (*model.University, error) {
	exists, err := s.universityRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUniversityExists
	}
	u := &model.University{
		Name:    req.Name,
		City:    nullable(req.City),
		Country: nullable(req.Country),
	}
	if err := s.universityRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUniversity removes a university.
func (s *AdminService) DeleteUniversity(ctx context.Context, id int) error {
	if _, err := s.universityRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.universityRepo.Delete(ctx, id)
}

// ListCourses lists the course catalog.
func (s *AdminService) ListCourses(ctx context.Context, limit, offset int) ([]model.Course, error) {
	return s.courseRepo.List(ctx, limit, offset)
}

// CourseDetail returns a course with its assigned instructors.
func (s *AdminService) CourseDetail(ctx context.Context, id int) (*CourseDetail, error) {
	co, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	instructors, err := s.courseRepo.ListInstructors(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{Course: *co, Instructors: instructors}, nil
}

// CreateCourse adds a course to the catalog. A referenced university must
// exist.
func (s *AdminService) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	if req.UniversityID > 0 {
		if _, err := s.universityRepo.GetByID(ctx, req.UniversityID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	co := &model.Course{Name: req.Name}
	if req.Duration > 0 {
		co.Duration = &req.Duration
	}
	co.SkillLevel = nullable(req.SkillLevel)
	if req.Fees > 0 {
		co.Fees = &req.Fees
	}
	if req.ProgramID > 0 {
		co.ProgramID = &req.ProgramID
	}
	if req.UniversityID > 0 {
		co.UniversityID = &req.UniversityID
	}
	if err := s.courseRepo.Create(ctx, co); err != nil {
		return nil, err
	}
	return co, nil
}

// UpdateCourseFees adjusts a course's fees.
func (s *AdminService) UpdateCourseFees(ctx context.Context, id, fees int) (*model.Course, error) {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.courseRepo.UpdateFees(ctx, id, fees); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, id)
}

// DeleteCourse removes a course from the catalog.
func (s *AdminService) DeleteCourse(ctx context.Context, id int) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info().Int("course_id", id).Msg("Deleting course")
	return s.courseRepo.Delete(ctx, id)
}

// AssignInstructor links an instructor to a course.
func (s *AdminService) AssignInstructor(ctx context.Context, courseID, instructorID int) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.courseRepo.AssignInstructor(ctx, courseID, instructorID)
}

// CreateProgram adds a program track.
func (s *AdminService) CreateProgram(ctx context.Context, req *model.CreateProgramRequest) (*model.Program, error) {
	p := &model.Program{Type: req.Type}
	if err := s.universityRepo.CreateProgram(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPrograms lists every program track.
func (s *AdminService) ListPrograms(ctx context.Context) ([]model.Program, error) {
	return s.universityRepo.ListPrograms(ctx)
}

// DeleteProgram removes a program track.
func (s *AdminService) DeleteProgram(ctx context.Context, id int) error {
	return s.universityRepo.DeleteProgram(ctx, id)
}

// CreateTopic adds a topic tag.
func (s *AdminService) CreateTopic(ctx context.Context, req *model.CreateTopicRequest) (*model.Topic, error) {
	t := &model.Topic{Name: req.Name}
	if err := s.topicRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTopics lists every topic tag.
func (s *AdminService) ListTopics(ctx context.Context) ([]model.Topic, error) {
	return s.topicRepo.List(ctx)
}

// DeleteTopic removes a topic tag.
func (s *AdminService) DeleteTopic(ctx context.Context, id int) error {
	return s.topicRepo.Delete(ctx, id)
}

// AttachTopic tags a course with a topic.
func (s *AdminService) AttachTopic(ctx context.Context, courseID, topicID int) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.courseRepo.AttachTopic(ctx, courseID, topicID)
}
