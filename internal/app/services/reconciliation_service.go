package services

import (
	"context"
	"time"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// OtherLoansLabel names the synthetic matrix column that aggregates
// everything outside the grade's book list.
const OtherLoansLabel = "Other loans"

// ClassRoster is the slice of the student repository the matrix needs.
type ClassRoster interface {
	ListByClass(ctx context.Context, class string, at time.Time) ([]*models.Student, error)
	ListClasses(ctx context.Context, at time.Time) ([]string, error)
}

// GradeBooks lists the books of one grade level.
type GradeBooks interface {
	ListByGrade(ctx context.Context, grade int) ([]*models.Book, error)
}

// SwapRecords reads the swap ledger for a set of students.
type SwapRecords interface {
	SwapsForStudents(ctx context.Context, studentIDs []int64) (map[int64][]string, error)
}

// LoanHolders reports which borrowers still hold books.
type LoanHolders interface {
	BorrowersWithLoans(ctx context.Context, kind models.BorrowerKind, borrowerIDs []int64) (map[int64]bool, error)
}

// ReconciliationService builds the end-of-term checking grid: one row per
// student of a class, one column per book of the relevant grade list, a
// check where the swap ledger has a record. The grid is a fresh read model
// on every call.
type ReconciliationService struct {
	roster ClassRoster
	books  GradeBooks
	swaps  SwapRecords
	loans  LoanHolders
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(roster ClassRoster, books GradeBooks, swaps SwapRecords, loans LoanHolders) *ReconciliationService {
	return &ReconciliationService{
		roster: roster,
		books:  books,
		swaps:  swaps,
		loans:  loans,
	}
}

// Classes lists the class labels that currently have students.
func (s *ReconciliationService) Classes(ctx context.Context, at time.Time) ([]string, error) {
	if at.IsZero() {
		at = time.Now()
	}
	return s.roster.ListClasses(ctx, at)
}

// BuildMatrix assembles the grid for one class. With newList the columns are
// the books the class is about to receive, otherwise the books it is handing
// back. Swap records outside the column set are ignored; the synthetic
// aggregate column marks students with remaining quantity-ledger loans.
func (s *ReconciliationService) BuildMatrix(ctx context.Context, class string, newList bool, at time.Time) (*models.Matrix, error) {
	if at.IsZero() {
		at = time.Now()
	}

	if models.GradeFromLabel(class) == 0 {
		return nil, apperrors.NewBadRequestError("class label carries no grade level")
	}

	newGrade, oldGrade := models.ListGrades(class, at)
	grade := oldGrade
	if newList {
		grade = newGrade
	}

	students, err := s.roster.ListByClass(ctx, class, at)
	if err != nil {
		return nil, err
	}

	books, err := s.books.ListByGrade(ctx, grade)
	if err != nil {
		return nil, err
	}

	rows := make([]models.MatrixRow, len(students))
	ids := make([]int64, len(students))
	for i, student := range students {
		rows[i] = models.MatrixRow{StudentID: student.ID, Label: student.Name}
		ids[i] = student.ID
	}

	columns := make([]models.MatrixColumn, 0, len(books)+1)
	columnIndex := make(map[string]int, len(books))
	for _, book := range books {
		columnIndex[book.ISBN] = len(columns)
		columns = append(columns, models.MatrixColumn{ISBN: book.ISBN, Label: book.Label()})
	}
	columns = append(columns, models.MatrixColumn{Label: OtherLoansLabel})

	matrix := models.NewMatrix(rows, columns)
	other := matrix.OtherColumn()

	swaps, err := s.swaps.SwapsForStudents(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		for _, isbn := range swaps[id] {
			if j, ok := columnIndex[isbn]; ok {
				matrix.Set(i, j)
			}
		}
	}

	holders, err := s.loans.BorrowersWithLoans(ctx, models.BorrowerStudent, ids)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if holders[id] {
			matrix.Set(i, other)
		}
	}

	return matrix, nil
}
