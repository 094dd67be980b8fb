package service

import (
	"context"
	"errors"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ErrNotCourseInstructor is returned when an instructor touches a course
// they are not assigned to.
var ErrNotCourseInstructor = errors.New("instructor not assigned to course")

// InstructorCourseView is what an assigned instructor sees for a course.
type InstructorCourseView struct {
	Content       model.CourseContent `json:"content"`
	CoInstructors []string            `json:"co_instructors"`
	Students      []model.Student     `json:"students"`
}

// InstructorService implements the instructor portal.
type InstructorService struct {
	courseRepo     *repository.CourseRepository
	materialRepo   *repository.MaterialRepository
	assignmentRepo *repository.AssignmentRepository
	evaluationRepo *repository.EvaluationRepository
}

// NewInstructorService creates a new InstructorService.
func NewInstructorService(
	courseRepo *repository.CourseRepository,
	materialRepo *repository.MaterialRepository,
	assignmentRepo *repository.AssignmentRepository,
	evaluationRepo *repository.EvaluationRepository,
) *InstructorService {
	return &InstructorService{
		courseRepo:     courseRepo,
		materialRepo:   materialRepo,
		assignmentRepo: assignmentRepo,
		evaluationRepo: evaluationRepo,
	}
}

// requireAssigned checks the instructor actually teaches the course.
func (s *InstructorService) requireAssigned(ctx context.Context, courseID, instructorID int) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	assigned, err := s.courseRepo.IsInstructorAssigned(ctx, courseID, instructorID)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrNotCourseInstructor
	}
	return nil
}

// Teaching lists the courses the instructor is assigned to.
func (s *InstructorService) Teaching(ctx context.Context, instructorID int) ([]model.Course, error) {
	return s.courseRepo.ListForInstructor(ctx, instructorID)
}

// CourseView returns the full course content plus roster, available only to
// assigned instructors.
func (s *InstructorService) CourseView(ctx context.Context, instructorID, courseID int) (*InstructorCourseView, error) {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	view := &InstructorCourseView{Content: model.CourseContent{Course: *course}}

	if view.Content.Topics, err = s.courseRepo.ListTopics(ctx, courseID); err != nil {
		return nil, err
	}
	textbook, err := s.materialRepo.GetTextbookByCourse(ctx, courseID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	view.Content.Textbook = textbook
	if view.Content.Videos, err = s.materialRepo.ListVideosByCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if view.Content.Notes, err = s.materialRepo.ListNotesByCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if view.Content.Assignments, err = s.assignmentRepo.ListByCourse(ctx, courseID); err != nil {
		return nil, err
	}

	instructors, err := s.courseRepo.ListInstructors(ctx, courseID)
	if err != nil {
		return nil, err
	}
	view.CoInstructors = []string{}
	for _, in := range instructors {
		if in.ID != instructorID {
			view.CoInstructors = append(view.CoInstructors, in.Name)
		}
	}

	if view.Students, err = s.courseRepo.ListStudents(ctx, courseID); err != nil {
		return nil, err
	}

	return view, nil
}

// AddTextbook attaches the course textbook.
func (s *InstructorService) AddTextbook(ctx context.Context, instructorID, courseID int, req *model.AddTextbookRequest) (*model.Textbook, error) {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return nil, err
	}
	tb := &model.Textbook{
		Title:     req.Title,
		Author:    nullable(req.Author),
		Publisher: nullable(req.Publisher),
		CourseID:  courseID,
	}
	if err := s.materialRepo.AddTextbook(ctx, tb); err != nil {
		return nil, err
	}
	return tb, nil
}

// AddVideo attaches a video to the course.
func (s *InstructorService) AddVideo(ctx context.Context, instructorID, courseID int, req *model.AddVideoRequest) (*model.Video, error) {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return nil, err
	}
	v := &model.Video{
		Title:    req.Title,
		Duration: req.Duration,
		URL:      req.URL,
		CourseID: courseID,
	}
	if err := s.materialRepo.AddVideo(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddNote attaches a notes document to the course.
func (s *InstructorService) AddNote(ctx context.Context, instructorID, courseID int, req *model.AddNoteRequest) (*model.Note, error) {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return nil, err
	}
	n := &model.Note{
		Title:        req.Title,
		URL:          req.URL,
		DocumentType: nullable(req.DocumentType),
		CourseID:     courseID,
	}
	if err := s.materialRepo.AddNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// DeleteTextbook removes the course textbook.
func (s *InstructorService) DeleteTextbook(ctx context.Context, instructorID, courseID int) error {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return err
	}
	if err := s.materialRepo.DeleteTextbook(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// DeleteVideo removes a video from the course.
func (s *InstructorService) DeleteVideo(ctx context.Context, instructorID, courseID, videoID int) error {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return err
	}
	if err := s.materialRepo.DeleteVideo(ctx, courseID, videoID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// DeleteNote removes a notes document from the course.
func (s *InstructorService) DeleteNote(ctx context.Context, instructorID, courseID, noteID int) error {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return err
	}
	if err := s.materialRepo.DeleteNote(ctx, courseID, noteID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// CreateAssignment publishes an assignment for the course.
func (s *InstructorService) CreateAssignment(ctx context.Context, instructorID, courseID int, req *model.CreateAssignmentRequest) (*model.Assignment, error) {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return nil, err
	}

	a := &model.Assignment{
		Title:       req.Title,
		Description: nullable(req.Description),
		URL:         req.URL,
		CourseID:    courseID,
	}
	if req.Marks > 0 {
		a.Marks = &req.Marks
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, err
		}
		a.DueDate = &due
	}

	if err := s.assignmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAssignment withdraws an assignment from one of the instructor's
// courses, submissions included.
func (s *InstructorService) DeleteAssignment(ctx context.Context, instructorID, assignmentID int) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.requireAssigned(ctx, assignment.CourseID, instructorID); err != nil {
		return err
	}
	return s.assignmentRepo.Delete(ctx, assignmentID)
}

// ListSubmissions lists all submissions for one of the instructor's
// assignments.
func (s *InstructorService) ListSubmissions(ctx context.Context, instructorID, assignmentID int) ([]model.Submission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.requireAssigned(ctx, assignment.CourseID, instructorID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListSubmissionsByAssignment(ctx, assignmentID)
}

// GradeSubmission records marks for a submission on one of the
// instructor's assignments.
func (s *InstructorService) GradeSubmission(ctx context.Context, instructorID, submissionID, obtainedMarks int) (*model.Submission, error) {
	submission, err := s.assignmentRepo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssigned(ctx, assignment.CourseID, instructorID); err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.GradeSubmission(ctx, submissionID, obtainedMarks); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetSubmissionByID(ctx, submissionID)
}

// RecordEvaluation stores a student's final course result. The letter grade
// and pass/fail flag are derived from the marks.
func (s *InstructorService) RecordEvaluation(ctx context.Context, instructorID, courseID int, req *model.CreateEvaluationRequest) (*model.Evaluation, error) {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return nil, err
	}

	enrolled, err := s.courseRepo.IsStudentEnrolled(ctx, courseID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, ErrNotEnrolled
	}

	now := time.Now().UTC()
	e := &model.Evaluation{
		Marks:       req.Marks,
		Grade:       letterGrade(req.Marks),
		PassFail:    passFail(req.Marks),
		EvaluatedOn: &now,
		StudentID:   req.StudentID,
		CourseID:    courseID,
	}
	if err := s.evaluationRepo.Upsert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// CourseEvaluations lists the recorded results for one of the instructor's
// courses.
func (s *InstructorService) CourseEvaluations(ctx context.Context, instructorID, courseID int) ([]model.Evaluation, error) {
	if err := s.requireAssigned(ctx, courseID, instructorID); err != nil {
		return nil, err
	}
	return s.evaluationRepo.ListByCourse(ctx, courseID)
}

func letterGrade(marks int) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B"
	case marks >= 60:
		return "C"
	case marks >= 50:
		return "D"
	case marks >= 40:
		return "E"
	default:
		return "F"
	}
}

func passFail(marks int) string {
	if marks >= 40 {
		return "Pass"
	}
	return "Fail"
}
