package service

import (
	"context"
	"errors"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/repository"
	"github.com/jackc/pgx/v5"
)

// Shared portal errors.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrNotEnrolled = errors.New("student not enrolled in course")
)

// StudentCourseView is what a student sees for a single course. Unenrolled
// students get only the public fields; enrollment unlocks the content.
type StudentCourseView struct {
	Enrolled    bool               `json:"enrolled"`
	Course      model.Course       `json:"course"`
	Topics      []model.Topic      `json:"topics"`
	Instructors []model.Instructor `json:"instructors"`
	University  *model.University  `json:"university,omitempty"`
	Textbook    *model.Textbook    `json:"textbook,omitempty"`
	Videos      []model.Video      `json:"videos,omitempty"`
	Notes       []model.Note       `json:"notes,omitempty"`
	Assignments []model.Assignment `json:"assignments,omitempty"`
}

// StudentService implements the student portal.
type StudentService struct {
	studentRepo    *repository.StudentRepository
	courseRepo     *repository.CourseRepository
	materialRepo   *repository.MaterialRepository
	assignmentRepo *repository.AssignmentRepository
	evaluationRepo *repository.EvaluationRepository
	universityRepo *repository.UniversityRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	materialRepo *repository.MaterialRepository,
	assignmentRepo *repository.AssignmentRepository,
	evaluationRepo *repository.EvaluationRepository,
	universityRepo *repository.UniversityRepository,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		materialRepo:   materialRepo,
		assignmentRepo: assignmentRepo,
		evaluationRepo: evaluationRepo,
		universityRepo: universityRepo,
	}
}

// EnrolledCourses lists the courses the student is enrolled in.
func (s *StudentService) EnrolledCourses(ctx context.Context, studentID int) ([]model.Course, error) {
	return s.courseRepo.ListForStudent(ctx, studentID)
}

// Catalog lists the course catalog.
func (s *StudentService) Catalog(ctx context.Context, limit, offset int) ([]model.Course, error) {
	return s.courseRepo.List(ctx, limit, offset)
}

// CourseView returns the public or full view of a course depending on the
// student's enrollment.
func (s *StudentService) CourseView(ctx context.Context, studentID, courseID int) (*StudentCourseView, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := &StudentCourseView{Course: *course}

	if view.Topics, err = s.courseRepo.ListTopics(ctx, courseID); err != nil {
		return nil, err
	}
	if view.Instructors, err = s.courseRepo.ListInstructors(ctx, courseID); err != nil {
		return nil, err
	}
	if course.UniversityID != nil {
		university, err := s.universityRepo.GetByID(ctx, *course.UniversityID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		view.University = university
	}

	enrolled, err := s.courseRepo.IsStudentEnrolled(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}
	view.Enrolled = enrolled
	if !enrolled {
		return view, nil
	}

	textbook, err := s.materialRepo.GetTextbookByCourse(ctx, courseID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	view.Textbook = textbook
	if view.Videos, err = s.materialRepo.ListVideosByCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if view.Notes, err = s.materialRepo.ListNotesByCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if view.Assignments, err = s.assignmentRepo.ListByCourse(ctx, courseID); err != nil {
		return nil, err
	}

	return view, nil
}

// Enroll adds the student to a course.
func (s *StudentService) Enroll(ctx context.Context, studentID, courseID int) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.courseRepo.EnrollStudent(ctx, courseID, studentID)
}

// SubmitAssignment records the student's work for an assignment in one of
// their enrolled courses. Submissions past the due date are marked Late.
func (s *StudentService) SubmitAssignment(ctx context.Context, studentID, assignmentID int, url string) (*model.Submission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	enrolled, err := s.courseRepo.IsStudentEnrolled(ctx, assignment.CourseID, studentID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, ErrNotEnrolled
	}

	now := time.Now().UTC()
	status := model.SubmissionSubmitted
	if assignment.DueDate != nil && now.After(assignment.DueDate.Add(24*time.Hour)) {
		status = model.SubmissionLate
	}

	submission := &model.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		URL:          url,
		SubmittedAt:  now,
		Status:       status,
	}
	if err := s.assignmentRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Results lists the student's course evaluations.
func (s *StudentService) Results(ctx context.Context, studentID int) ([]model.Evaluation, error) {
	return s.evaluationRepo.ListByStudent(ctx, studentID)
}

// UpdateProfile lets a student change their own contact number and skill
// level. Other roles have no self-update surface.
func (s *StudentService) UpdateProfile(ctx context.Context, studentID int, req *model.UpdateStudentProfileRequest) (*model.Student, error) {
	if err := s.studentRepo.UpdateContact(ctx, studentID, req.ContactNumber, req.SkillLevel); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, studentID)
}
