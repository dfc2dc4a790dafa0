package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, graduation_year, form_letter)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.GraduationYear, student.FormLetter).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, graduation_year, form_letter
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.GraduationYear,
		&student.FormLetter,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students ordered by name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, graduation_year, form_letter
		FROM students
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListByClass retrieves the students whose class label at the given date
// matches, ordered by name.
func (r *StudentRepository) ListByClass(ctx context.Context, class string, at time.Time) ([]*models.Student, error) {
	query := `
		SELECT id, name, graduation_year, form_letter
		FROM students
		WHERE class_label(graduation_year, form_letter, $2::date) = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, class, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListClasses returns the distinct class labels present at the given date.
func (r *StudentRepository) ListClasses(ctx context.Context, at time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT class_label(graduation_year, form_letter, $1::date) AS class
		FROM students
		ORDER BY class
	`

	rows, err := r.db.Query(ctx, query, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []string
	for rows.Next() {
		var class string
		if err := rows.Scan(&class); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, graduation_year = $2, form_letter = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.GraduationYear, student.FormLetter, student.ID)

	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Students with remaining loan or swap
// records are protected by foreign keys.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBorrowerInUse
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.GraduationYear,
			&student.FormLetter,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
