package model

import "time"

// Assignment is coursework published by an instructor.
type Assignment struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	URL         string     `json:"url"`
	Marks       *int       `json:"marks,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CourseID    int        `json:"course_id"`
}

// CreateAssignmentRequest is the payload for publishing an assignment.
type CreateAssignmentRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	URL         string `json:"url" binding:"required,url,max=500"`
	Marks       int    `json:"marks" binding:"omitempty,min=0"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// SubmissionStatus tracks the grading state of a submission.
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "Submitted"
	SubmissionGraded    SubmissionStatus = "Graded"
	SubmissionLate      SubmissionStatus = "Late"
)

// Submission is a student's answer to an assignment.
type Submission struct {
	ID            int              `json:"id"`
	AssignmentID  int              `json:"assignment_id"`
	StudentID     int              `json:"student_id"`
	URL           string           `json:"url"`
	SubmittedAt   time.Time        `json:"submitted_at"`
	ObtainedMarks *int             `json:"obtained_marks,omitempty"`
	Status        SubmissionStatus `json:"status"`
}

// CreateSubmissionRequest is the payload for submitting assignment work.
type CreateSubmissionRequest struct {
	URL string `json:"url" binding:"required,url,max=500"`
}

// GradeSubmissionRequest is the payload for grading a submission.
type GradeSubmissionRequest struct {
	ObtainedMarks int `json:"obtained_marks" binding:"min=0,max=100"`
}
