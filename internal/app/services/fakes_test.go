package services

import (
	"context"
	"fmt"
	"time"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

type fakeAliasLookup map[string]string

func (f fakeAliasLookup) GetByAlias(_ context.Context, alias string) (*models.Alias, error) {
	if isbn, ok := f[alias]; ok {
		return &models.Alias{Alias: alias, ISBN: isbn}, nil
	}
	return nil, nil
}

type fakeBookLookup map[string]*models.Book

func (f fakeBookLookup) GetByISBN(_ context.Context, isbn string) (*models.Book, error) {
	return f[isbn], nil
}

type ledgerOp struct {
	kind       models.BorrowerKind
	borrowerID int64
	isbn       string
}

type fakeLoanLedger struct {
	incremented []ledgerOp
	decremented []ledgerOp
	pruned      int
	err         error
	errOn       string // fail mutations of this isbn only
}

func (f *fakeLoanLedger) Increment(_ context.Context, kind models.BorrowerKind, borrowerID int64, isbn string, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	if isbn == f.errOn {
		return errStore
	}
	f.incremented = append(f.incremented, ledgerOp{kind, borrowerID, isbn})
	return nil
}

func (f *fakeLoanLedger) Decrement(_ context.Context, kind models.BorrowerKind, borrowerID int64, isbn string) error {
	if f.err != nil {
		return f.err
	}
	if isbn == f.errOn {
		return errStore
	}
	f.decremented = append(f.decremented, ledgerOp{kind, borrowerID, isbn})
	return nil
}

func (f *fakeLoanLedger) PruneZero(_ context.Context, _ models.BorrowerKind) error {
	f.pruned++
	return nil
}

type fakeSwapLedger struct {
	added   []ledgerOp
	removed []ledgerOp
	err     error
}

func (f *fakeSwapLedger) Add(_ context.Context, studentID int64, isbn string, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	for _, op := range f.added {
		if op.borrowerID == studentID && op.isbn == isbn {
			return apperrors.ErrDuplicateSwap
		}
	}
	f.added = append(f.added, ledgerOp{models.BorrowerStudent, studentID, isbn})
	return nil
}

func (f *fakeSwapLedger) Remove(_ context.Context, studentID int64, isbn string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, ledgerOp{models.BorrowerStudent, studentID, isbn})
	return nil
}

type fakeStudentDirectory map[int64]*models.Student

func (f fakeStudentDirectory) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if student, ok := f[id]; ok {
		return student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeTeacherDirectory map[int64]*models.Teacher

func (f fakeTeacherDirectory) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	if teacher, ok := f[id]; ok {
		return teacher, nil
	}
	return nil, apperrors.ErrTeacherNotFound
}

type fakeClassRoster struct {
	students []*models.Student
	classes  []string
}

func (f *fakeClassRoster) ListByClass(_ context.Context, _ string, _ time.Time) ([]*models.Student, error) {
	return f.students, nil
}

func (f *fakeClassRoster) ListClasses(_ context.Context, _ time.Time) ([]string, error) {
	return f.classes, nil
}

type fakeGradeBooks struct {
	books          []*models.Book
	requestedGrade int
}

func (f *fakeGradeBooks) ListByGrade(_ context.Context, grade int) ([]*models.Book, error) {
	f.requestedGrade = grade
	return f.books, nil
}

type fakeSwapRecords map[int64][]string

func (f fakeSwapRecords) SwapsForStudents(_ context.Context, studentIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string)
	for _, id := range studentIDs {
		if isbns, ok := f[id]; ok {
			result[id] = isbns
		}
	}
	return result, nil
}

type fakeLoanHolders map[int64]bool

func (f fakeLoanHolders) BorrowersWithLoans(_ context.Context, _ models.BorrowerKind, borrowerIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	for _, id := range borrowerIDs {
		if f[id] {
			result[id] = true
		}
	}
	return result, nil
}

type fakeStudentCreator struct {
	created []*models.Student
	err     error
}

func (f *fakeStudentCreator) Create(_ context.Context, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	student.ID = int64(len(f.created) + 1)
	f.created = append(f.created, student)
	return nil
}

var errStore = fmt.Errorf("store unavailable")
