package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/app/repositories"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// TeacherService handles teacher-related operations
type TeacherService struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository) *TeacherService {
	return &TeacherService{
		teacherRepo: teacherRepo,
	}
}

// validateTeacher validates teacher data before database operations
func (s *TeacherService) validateTeacher(teacher *models.Teacher) error {
	if teacher == nil {
		return fmt.Errorf("%w: teacher is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(teacher.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(teacher.Abbreviation) == "" {
		return fmt.Errorf("%w: abbreviation cannot be empty", apperrors.ErrValidationFailed)
	}

	teacher.Name = strings.TrimSpace(teacher.Name)
	teacher.Abbreviation = strings.TrimSpace(teacher.Abbreviation)

	return nil
}

// CreateTeacher creates a new teacher
func (s *TeacherService) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	if err := s.validateTeacher(teacher); err != nil {
		return err
	}

	return s.teacherRepo.Create(ctx, teacher)
}

// GetTeacherByID retrieves a teacher by ID
func (s *TeacherService) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: teacher ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.teacherRepo.GetByID(ctx, id)
}

// GetAllTeachers retrieves all teachers
func (s *TeacherService) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// UpdateTeacher updates an existing teacher
func (s *TeacherService) UpdateTeacher(ctx context.Context, teacher *models.Teacher) error {
	if teacher == nil || teacher.ID <= 0 {
		return fmt.Errorf("%w: teacher ID must be positive", apperrors.ErrValidationFailed)
	}

	if err := s.validateTeacher(teacher); err != nil {
		return err
	}

	return s.teacherRepo.Update(ctx, teacher)
}

// DeleteTeacher deletes a teacher by ID
func (s *TeacherService) DeleteTeacher(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: teacher ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.teacherRepo.Delete(ctx, id)
}
