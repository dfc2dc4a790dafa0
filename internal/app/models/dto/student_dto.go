package dto

import (
	"time"

	"github.com/philip98/obsidian-server/internal/app/models"
)

// StudentResponse represents student information including the computed
// class label
type StudentResponse struct {
	ID             int64  `json:"id" example:"1"`
	Name           string `json:"name" example:"Anna Schmidt"`
	GraduationYear int    `json:"graduationYear" example:"2031"`
	FormLetter     string `json:"formLetter,omitempty" example:"a"`
	Class          string `json:"class" example:"7a"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required"`
	GraduationYear int    `json:"graduationYear" binding:"required"`
	FormLetter     string `json:"formLetter"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	Name           string `json:"name" binding:"required"`
	GraduationYear int    `json:"graduationYear" binding:"required"`
	FormLetter     string `json:"formLetter"`
}

// StudentListResponse represents a list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}

// NewStudentResponse converts a student model
func NewStudentResponse(student *models.Student, at time.Time) StudentResponse {
	return StudentResponse{
		ID:             student.ID,
		Name:           student.Name,
		GraduationYear: student.GraduationYear,
		FormLetter:     student.FormLetter,
		Class:          student.ClassLabel(at),
	}
}

// NewStudentListResponse converts a list of student models
func NewStudentListResponse(students []*models.Student, at time.Time) StudentListResponse {
	resp := StudentListResponse{Students: make([]StudentResponse, 0, len(students))}
	for _, student := range students {
		resp.Students = append(resp.Students, NewStudentResponse(student, at))
	}
	return resp
}
