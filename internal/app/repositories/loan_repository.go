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

// LoanRepository handles database operations on the quantity ledgers. The
// student and teacher ledgers share their shape and differ only in table
// and borrower column, so every operation takes the borrower kind.
type LoanRepository struct {
	db *pgxpool.Pool
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{
		db: db,
	}
}

// ledger maps a borrower kind onto its table and borrower column. Only these
// two fixed pairs ever reach the SQL text.
func ledger(kind models.BorrowerKind) (table, idCol string, err error) {
	switch kind {
	case models.BorrowerStudent:
		return "student_loans", "student_id", nil
	case models.BorrowerTeacher:
		return "teacher_loans", "teacher_id", nil
	default:
		return "", "", fmt.Errorf("unknown borrower kind %q", kind)
	}
}

// Increment raises the quantity of a ledger entry by one and refreshes its
// date. A missing entry is created with quantity one.
func (r *LoanRepository) Increment(ctx context.Context, kind models.BorrowerKind, borrowerID int64, isbn string, lentAt time.Time) error {
	table, idCol, err := ledger(kind)
	if err != nil {
		return err
	}

	update := fmt.Sprintf(`
		UPDATE %s
		SET quantity = quantity + 1, lent_at = $3
		WHERE %s = $1 AND isbn = $2
	`, table, idCol)

	cmdTag, err := r.db.Exec(ctx, update, borrowerID, isbn, lentAt)
	if err != nil {
		return fmt.Errorf("error incrementing loan: %w", err)
	}

	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, isbn, quantity, lent_at)
		VALUES ($1, $2, 1, $3)
	`, table, idCol)

	_, err = r.db.Exec(ctx, insert, borrowerID, isbn, lentAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBookNotFound
		}
		return fmt.Errorf("error creating loan: %w", err)
	}

	return nil
}

// Decrement lowers the quantity of a ledger entry by one. Entries already at
// zero, and entries that do not exist, are left alone; zero-quantity rows
// stay behind until PruneZero runs.
func (r *LoanRepository) Decrement(ctx context.Context, kind models.BorrowerKind, borrowerID int64, isbn string) error {
	table, idCol, err := ledger(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET quantity = quantity - 1
		WHERE %s = $1 AND isbn = $2 AND quantity > 0
	`, table, idCol)

	_, err = r.db.Exec(ctx, query, borrowerID, isbn)
	if err != nil {
		return fmt.Errorf("error decrementing loan: %w", err)
	}

	return nil
}

// PruneZero removes all ledger entries of the given kind whose quantity has
// reached zero. Runs once after a batch of decrements.
func (r *LoanRepository) PruneZero(ctx context.Context, kind models.BorrowerKind) error {
	table, _, err := ledger(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE quantity <= 0`, table)

	_, err = r.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("error pruning zero loans: %w", err)
	}

	return nil
}

// Get retrieves a single ledger entry. Returns nil without an error when the
// borrower holds no copies of the book.
func (r *LoanRepository) Get(ctx context.Context, kind models.BorrowerKind, borrowerID int64, isbn string) (*models.Loan, error) {
	table, idCol, err := ledger(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s, isbn, quantity, lent_at
		FROM %s
		WHERE %s = $1 AND isbn = $2
	`, idCol, table, idCol)

	var loan models.Loan
	err = r.db.QueryRow(ctx, query, borrowerID, isbn).Scan(
		&loan.BorrowerID,
		&loan.ISBN,
		&loan.Quantity,
		&loan.LentAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving loan: %w", err)
	}

	return &loan, nil
}

// ListByBorrower retrieves all ledger entries of one borrower
func (r *LoanRepository) ListByBorrower(ctx context.Context, kind models.BorrowerKind, borrowerID int64) ([]*models.Loan, error) {
	table, idCol, err := ledger(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s, isbn, quantity, lent_at
		FROM %s
		WHERE %s = $1
		ORDER BY lent_at, isbn
	`, idCol, table, idCol)

	rows, err := r.db.Query(ctx, query, borrowerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*models.Loan
	for rows.Next() {
		var loan models.Loan
		if err := rows.Scan(
			&loan.BorrowerID,
			&loan.ISBN,
			&loan.Quantity,
			&loan.LentAt,
		); err != nil {
			return nil, err
		}
		loans = append(loans, &loan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}

// BorrowersWithLoans reports which of the given borrowers still hold at
// least one book.
func (r *LoanRepository) BorrowersWithLoans(ctx context.Context, kind models.BorrowerKind, borrowerIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(borrowerIDs))
	if len(borrowerIDs) == 0 {
		return result, nil
	}

	table, idCol, err := ledger(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s
		WHERE %s = ANY($1) AND quantity > 0
	`, idCol, table, idCol)

	rows, err := r.db.Query(ctx, query, borrowerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
