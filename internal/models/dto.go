package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CreateQuizRequest struct {
	Title     string     `json:"title" binding:"required"`
	Course    string     `json:"course" binding:"required"`
	Questions []Question `json:"questions"`
}

// SubmitAttemptRequest carries the answer sheet; nil entries are unanswered
// questions.
type SubmitAttemptRequest struct {
	Answers []*int `json:"answers"`
}

// SubmitAttemptResponse reports the stored attempt and the user's updated
// progression. NewPoints is a pointer so the degraded path, where the attempt
// was stored but the progression write failed, can report null.
type SubmitAttemptResponse struct {
	Attempt   *Attempt `json:"attempt"`
	AttemptID string   `json:"attemptId"`
	NewPoints *int     `json:"newPoints"`
	Badges    []string `json:"badges"`
}

type CreateMaterialRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Course      string   `json:"course" binding:"required"`
	FileURL     string   `json:"fileUrl"`
	FileType    FileType `json:"fileType"`
}

// UpdateUserRequest is the admin's partial user update; nil fields are left
// untouched so a zero points value can still be set explicitly.
type UpdateUserRequest struct {
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Role   *Role    `json:"role"`
	Points *int     `json:"points"`
	Badges []string `json:"badges"`
}

type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Faculty     *string `json:"faculty"`
}
