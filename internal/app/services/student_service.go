package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/app/repositories"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	// Graduation years far outside the plausible range are almost always
	// typos in the roster
	if student.GraduationYear < 1950 || student.GraduationYear > 2200 {
		return fmt.Errorf("%w: graduation year %d is out of range", apperrors.ErrValidationFailed, student.GraduationYear)
	}

	letter := strings.TrimSpace(student.FormLetter)
	if len(letter) > 1 {
		return fmt.Errorf("%w: form letter must be a single letter", apperrors.ErrValidationFailed)
	}
	if letter != "" && (letter[0] < 'a' || letter[0] > 'z') {
		return fmt.Errorf("%w: form letter must be a lower-case letter", apperrors.ErrValidationFailed)
	}

	student.Name = strings.TrimSpace(student.Name)
	student.FormLetter = letter

	return nil
}

// CreateStudent creates a new student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	return s.studentRepo.Create(ctx, student)
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// ListRoster retrieves the students of one class, ordered by name
func (s *StudentService) ListRoster(ctx context.Context, class string, at time.Time) ([]*models.Student, error) {
	if strings.TrimSpace(class) == "" {
		return nil, fmt.Errorf("%w: class cannot be empty", apperrors.ErrValidationFailed)
	}
	if at.IsZero() {
		at = time.Now()
	}

	return s.studentRepo.ListByClass(ctx, strings.TrimSpace(class), at)
}

// ListClasses retrieves the distinct class labels currently in use
func (s *StudentService) ListClasses(ctx context.Context, at time.Time) ([]string, error) {
	if at.IsZero() {
		at = time.Now()
	}

	return s.studentRepo.ListClasses(ctx, at)
}

// UpdateStudent updates an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if student == nil || student.ID <= 0 {
		return fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	if err := s.validateStudent(student); err != nil {
		return err
	}

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent deletes a student by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.Delete(ctx, id)
}
