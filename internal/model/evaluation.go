package model

import "time"

// Evaluation is a student's final result for a course.
type Evaluation struct {
	ID          int        `json:"id"`
	Marks       int        `json:"marks"`
	PassFail    string     `json:"pass_fail"`
	Grade       string     `json:"grade"`
	EvaluatedOn *time.Time `json:"evaluated_on,omitempty"`
	StudentID   int        `json:"student_id"`
	CourseID    int        `json:"course_id"`
}

// CreateEvaluationRequest is the payload for recording a course result.
type CreateEvaluationRequest struct {
	StudentID int `json:"student_id" binding:"required,min=1"`
	Marks     int `json:"marks" binding:"min=0,max=100"`
}
