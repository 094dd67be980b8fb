package model

// Course is a unit of study offered by a university under a program.
type Course struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Duration     *int    `json:"duration,omitempty"` // weeks
	SkillLevel   *string `json:"skill_level,omitempty"`
	Fees         *int    `json:"fees,omitempty"`
	ProgramID    *int    `json:"program_id,omitempty"`
	UniversityID *int    `json:"university_id,omitempty"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Duration     int    `json:"duration" binding:"omitempty,min=1"`
	SkillLevel   string `json:"skill_level" binding:"omitempty,max=50"`
	Fees         int    `json:"fees" binding:"omitempty,min=0"`
	ProgramID    int    `json:"program_id" binding:"omitempty,min=1"`
	UniversityID int    `json:"university_id" binding:"omitempty,min=1"`
}

// UpdateCourseFeesRequest is the payload for adjusting a course's fees.
type UpdateCourseFeesRequest struct {
	Fees int `json:"fees" binding:"min=0"`
}

// CourseContent groups everything an enrolled student (or an assigned
// instructor) may see for a course.
type CourseContent struct {
	Course      Course       `json:"course"`
	Topics      []Topic      `json:"topics"`
	Textbook    *Textbook    `json:"textbook,omitempty"`
	Videos      []Video      `json:"videos"`
	Notes       []Note       `json:"notes"`
	Assignments []Assignment `json:"assignments"`
}
