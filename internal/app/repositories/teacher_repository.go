package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/dberrors"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Create creates a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (name, abbreviation)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, teacher.Name, teacher.Abbreviation).Scan(&teacher.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTeacherExists
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, name, abbreviation
		FROM teachers
		WHERE id = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Abbreviation,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetAll retrieves all teachers ordered by name
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT id, name, abbreviation
		FROM teachers
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.Abbreviation,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Update updates an existing teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $1, abbreviation = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, teacher.Name, teacher.Abbreviation, teacher.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTeacherExists
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete deletes a teacher by ID. Teachers with remaining loan records are
// protected by foreign keys.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM teachers WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBorrowerInUse
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}
