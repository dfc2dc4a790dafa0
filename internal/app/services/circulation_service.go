package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// Action says whether scanned books are being handed out or taken back.
type Action string

const (
	ActionBorrow Action = "BORROW"
	ActionReturn Action = "RETURN"
)

// Valid reports whether the action is known.
func (a Action) Valid() bool {
	return a == ActionBorrow || a == ActionReturn
}

// LoanLedger is the slice of the loan repository the circulation flow needs.
type LoanLedger interface {
	Increment(ctx context.Context, kind models.BorrowerKind, borrowerID int64, isbn string, lentAt time.Time) error
	Decrement(ctx context.Context, kind models.BorrowerKind, borrowerID int64, isbn string) error
	PruneZero(ctx context.Context, kind models.BorrowerKind) error
}

// SwapLedger is the slice of the swap repository the circulation flow needs.
type SwapLedger interface {
	Add(ctx context.Context, studentID int64, isbn string, swappedAt time.Time) error
	Remove(ctx context.Context, studentID int64, isbn string) error
}

// StudentDirectory checks that a student exists.
type StudentDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// TeacherDirectory checks that a teacher exists.
type TeacherDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// Resolver maps scanned text to books.
type Resolver interface {
	Resolve(ctx context.Context, scanned string) (*models.Book, error)
}

// SubmitRequest is one batch of scans for a single borrower.
type SubmitRequest struct {
	BorrowerID int64
	Kind       models.BorrowerKind
	Action     Action
	// TermEnd routes the batch to the swap ledger instead of the quantity
	// ledger. Only students take part in the end-of-term swap.
	TermEnd bool
	Date    time.Time
	Items   []string
}

// ItemResult reports what happened to one scanned line. A non-nil Err means
// the line was skipped; the rest of the batch still ran.
type ItemResult struct {
	Line    int
	Scanned string
	ISBN    string
	Title   string
	Err     error
}

// CirculationService runs scan batches against the ledgers
type CirculationService struct {
	resolver Resolver
	loans    LoanLedger
	swaps    SwapLedger
	students StudentDirectory
	teachers TeacherDirectory
}

// NewCirculationService creates a new circulation service
func NewCirculationService(
	resolver Resolver,
	loans LoanLedger,
	swaps SwapLedger,
	students StudentDirectory,
	teachers TeacherDirectory,
) *CirculationService {
	return &CirculationService{
		resolver: resolver,
		loans:    loans,
		swaps:    swaps,
		students: students,
		teachers: teachers,
	}
}

// Submit validates the batch, resolves every scanned line and applies it to
// the matching ledger. Lines that fail to resolve, and duplicate swap scans,
// are reported per line; everything else proceeds. Store errors abort the
// remainder of the batch.
func (s *CirculationService) Submit(ctx context.Context, req SubmitRequest) ([]ItemResult, error) {
	if req.BorrowerID <= 0 {
		return nil, apperrors.ErrMissingBorrower
	}
	if !req.Kind.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown borrower kind %q", req.Kind))
	}
	if !req.Action.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown action %q", req.Action))
	}
	if req.TermEnd && req.Kind == models.BorrowerTeacher {
		return nil, apperrors.ErrTeacherSwap
	}

	items := make([]string, 0, len(req.Items))
	lines := make([]int, 0, len(req.Items))
	for i, item := range req.Items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		items = append(items, strings.TrimSpace(item))
		lines = append(lines, i+1)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNoBooksSelected
	}

	if err := s.checkBorrower(ctx, req.Kind, req.BorrowerID); err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	results := make([]ItemResult, 0, len(items))
	for i, scanned := range items {
		result := ItemResult{Line: lines[i], Scanned: scanned}

		book, err := s.resolver.Resolve(ctx, scanned)
		if err != nil {
			if errors.Is(err, apperrors.ErrBookNotFound) {
				result.Err = err
				results = append(results, result)
				continue
			}
			return results, s.sweep(ctx, req, err)
		}
		result.ISBN = book.ISBN
		result.Title = book.Title

		if err := s.apply(ctx, req, book.ISBN, date); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateSwap) {
				result.Err = err
				results = append(results, result)
				continue
			}
			return results, s.sweep(ctx, req, err)
		}

		results = append(results, result)
	}

	return results, s.sweep(ctx, req, nil)
}

// sweep runs the single zero-quantity pass a return batch ends with, even
// when a store error cut the batch short. The batch error wins over a sweep
// error.
func (s *CirculationService) sweep(ctx context.Context, req SubmitRequest, batchErr error) error {
	if req.Action != ActionReturn || req.TermEnd {
		return batchErr
	}
	if err := s.loans.PruneZero(ctx, req.Kind); err != nil && batchErr == nil {
		return err
	}
	return batchErr
}

func (s *CirculationService) checkBorrower(ctx context.Context, kind models.BorrowerKind, id int64) error {
	switch kind {
	case models.BorrowerStudent:
		_, err := s.students.GetByID(ctx, id)
		return err
	case models.BorrowerTeacher:
		_, err := s.teachers.GetByID(ctx, id)
		return err
	default:
		return fmt.Errorf("unknown borrower kind %q", kind)
	}
}

func (s *CirculationService) apply(ctx context.Context, req SubmitRequest, isbn string, date time.Time) error {
	switch {
	case req.Action == ActionBorrow && !req.TermEnd:
		return s.loans.Increment(ctx, req.Kind, req.BorrowerID, isbn, date)
	case req.Action == ActionBorrow && req.TermEnd:
		return s.swaps.Add(ctx, req.BorrowerID, isbn, date)
	case req.Action == ActionReturn && !req.TermEnd:
		return s.loans.Decrement(ctx, req.Kind, req.BorrowerID, isbn)
	default:
		return s.swaps.Remove(ctx, req.BorrowerID, isbn)
	}
}
