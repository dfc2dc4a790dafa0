package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/dberrors"
)

// SwapRepository handles database operations for end-of-term swap records
type SwapRepository struct {
	db *pgxpool.Pool
}

// NewSwapRepository creates a new swap repository
func NewSwapRepository(db *pgxpool.Pool) *SwapRepository {
	return &SwapRepository{
		db: db,
	}
}

// Add records that a student handed in or received a book during the
// end-of-term swap. A student can appear at most once per book; the primary
// key enforces that.
func (r *SwapRepository) Add(ctx context.Context, studentID int64, isbn string, swappedAt time.Time) error {
	query := `
		INSERT INTO swaps (student_id, isbn, swapped_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, studentID, isbn, swappedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateSwap
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBookNotFound
		}
		return fmt.Errorf("error recording swap: %w", err)
	}

	return nil
}

// Remove deletes a swap record. Removing a record that was never written is
// a no-op; the return pass simply clears whatever is there.
func (r *SwapRepository) Remove(ctx context.Context, studentID int64, isbn string) error {
	query := `DELETE FROM swaps WHERE student_id = $1 AND isbn = $2`

	_, err := r.db.Exec(ctx, query, studentID, isbn)
	if err != nil {
		return fmt.Errorf("error removing swap: %w", err)
	}

	return nil
}

// ListByStudent retrieves all swap records of one student
func (r *SwapRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Swap, error) {
	query := `
		SELECT student_id, isbn, swapped_at
		FROM swaps
		WHERE student_id = $1
		ORDER BY swapped_at, isbn
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var swaps []*models.Swap
	for rows.Next() {
		var swap models.Swap
		if err := rows.Scan(&swap.StudentID, &swap.ISBN, &swap.SwappedAt); err != nil {
			return nil, err
		}
		swaps = append(swaps, &swap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return swaps, nil
}

// SwapsForStudents returns the swapped ISBNs of each of the given students.
// Students without swap records are absent from the map.
func (r *SwapRepository) SwapsForStudents(ctx context.Context, studentIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string, len(studentIDs))
	if len(studentIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT student_id, isbn
		FROM swaps
		WHERE student_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, studentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var isbn string
		if err := rows.Scan(&id, &isbn); err != nil {
			return nil, err
		}
		result[id] = append(result[id], isbn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
