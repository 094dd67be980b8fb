package model

// Textbook is the single reference book of a course (one per course).
type Textbook struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Author    *string `json:"author,omitempty"`
	Publisher *string `json:"publisher,omitempty"`
	CourseID  int     `json:"course_id"`
}

// Video is a lecture recording belonging to a course.
type Video struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"` // minutes
	URL      string `json:"url"`
	CourseID int    `json:"course_id"`
}

// Note is a downloadable document belonging to a course.
type Note struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	DocumentType *string `json:"document_type,omitempty"`
	CourseID     int     `json:"course_id"`
}

// AddTextbookRequest is the payload for attaching a textbook to a course.
type AddTextbookRequest struct {
	Title     string `json:"title" binding:"required,min=2,max=150"`
	Author    string `json:"author" binding:"omitempty,max=100"`
	Publisher string `json:"publisher" binding:"omitempty,max=100"`
}

// AddVideoRequest is the payload for attaching a video to a course.
type AddVideoRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=100"`
	Duration int    `json:"duration" binding:"required,min=1"`
	URL      string `json:"url" binding:"required,url,max=500"`
}

// AddNoteRequest is the payload for attaching notes to a course.
type AddNoteRequest struct {
	Title        string `json:"title" binding:"required,min=2,max=100"`
	URL          string `json:"url" binding:"required,url,max=500"`
	DocumentType string `json:"document_type" binding:"omitempty,max=20"`
}
