package dto

import (
	"github.com/philip98/obsidian-server/internal/app/models"
)

// TeacherResponse represents teacher information
type TeacherResponse struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Maria Keller"`
	Abbreviation string `json:"abbreviation" example:"KE"`
}

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required"`
}

// UpdateTeacherRequest represents teacher update data
type UpdateTeacherRequest struct {
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required"`
}

// TeacherListResponse represents a list of teachers
type TeacherListResponse struct {
	Teachers []TeacherResponse `json:"teachers"`
}

// NewTeacherResponse converts a teacher model
func NewTeacherResponse(teacher *models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:           teacher.ID,
		Name:         teacher.Name,
		Abbreviation: teacher.Abbreviation,
	}
}

// NewTeacherListResponse converts a list of teacher models
func NewTeacherListResponse(teachers []*models.Teacher) TeacherListResponse {
	resp := TeacherListResponse{Teachers: make([]TeacherResponse, 0, len(teachers))}
	for _, teacher := range teachers {
		resp.Teachers = append(resp.Teachers, NewTeacherResponse(teacher))
	}
	return resp
}
