package model

// University is an institute offering courses.
type University struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
}

// CreateUniversityRequest is the payload for registering a university.
type CreateUniversityRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	City    string `json:"city" binding:"omitempty,max=50"`
	Country string `json:"country" binding:"omitempty,max=50"`
}

// Program is a degree/certificate track that courses belong to.
type Program struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CreateProgramRequest is the payload for creating a program.
type CreateProgramRequest struct {
	Type string `json:"type" binding:"required,min=2,max=50"`
}

// Topic is a subject tag attached to courses.
type Topic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateTopicRequest is the payload for creating a topic.
type CreateTopicRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
