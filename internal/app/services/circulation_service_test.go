package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

type circulationFixture struct {
	service  *CirculationService
	loans    *fakeLoanLedger
	swaps    *fakeSwapLedger
	resolver stubResolver
}

func newCirculationFixture() *circulationFixture {
	resolver := stubResolver{
		"111": {ISBN: "111", Title: "Mathematik heute"},
		"222": {ISBN: "222", Title: "Deutschbuch"},
	}
	loans := &fakeLoanLedger{}
	swaps := &fakeSwapLedger{}
	students := fakeStudentDirectory{7: {ID: 7, Name: "Anna Schmidt", GraduationYear: 2031, FormLetter: "a"}}
	teachers := fakeTeacherDirectory{3: {ID: 3, Name: "Maria Weber", Abbreviation: "WEB"}}

	return &circulationFixture{
		service:  NewCirculationService(resolver, loans, swaps, students, teachers),
		loans:    loans,
		swaps:    swaps,
		resolver: resolver,
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmitRequest
		wantErr error
	}{
		{
			name:    "missing borrower",
			req:     SubmitRequest{Kind: models.BorrowerStudent, Action: ActionBorrow, Items: []string{"111"}},
			wantErr: apperrors.ErrMissingBorrower,
		},
		{
			name:    "unknown borrower kind",
			req:     SubmitRequest{BorrowerID: 7, Kind: "ALIEN", Action: ActionBorrow, Items: []string{"111"}},
			wantErr: apperrors.ErrBadRequest,
		},
		{
			name:    "unknown action",
			req:     SubmitRequest{BorrowerID: 7, Kind: models.BorrowerStudent, Action: "STEAL", Items: []string{"111"}},
			wantErr: apperrors.ErrBadRequest,
		},
		{
			name:    "teachers cannot swap",
			req:     SubmitRequest{BorrowerID: 3, Kind: models.BorrowerTeacher, Action: ActionBorrow, TermEnd: true, Items: []string{"111"}},
			wantErr: apperrors.ErrTeacherSwap,
		},
		{
			name:    "no items",
			req:     SubmitRequest{BorrowerID: 7, Kind: models.BorrowerStudent, Action: ActionBorrow, Items: nil},
			wantErr: apperrors.ErrNoBooksSelected,
		},
		{
			name:    "only blank items",
			req:     SubmitRequest{BorrowerID: 7, Kind: models.BorrowerStudent, Action: ActionBorrow, Items: []string{"", "   "}},
			wantErr: apperrors.ErrNoBooksSelected,
		},
		{
			name:    "unknown student",
			req:     SubmitRequest{BorrowerID: 99, Kind: models.BorrowerStudent, Action: ActionBorrow, Items: []string{"111"}},
			wantErr: apperrors.ErrStudentNotFound,
		},
		{
			name:    "unknown teacher",
			req:     SubmitRequest{BorrowerID: 99, Kind: models.BorrowerTeacher, Action: ActionReturn, Items: []string{"111"}},
			wantErr: apperrors.ErrTeacherNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCirculationFixture()
			_, err := f.service.Submit(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.loans.incremented)
			assert.Empty(t, f.swaps.added)
		})
	}
}

func TestSubmitBorrow(t *testing.T) {
	f := newCirculationFixture()
	lentAt := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)

	results, err := f.service.Submit(context.Background(), SubmitRequest{
		BorrowerID: 7,
		Kind:       models.BorrowerStudent,
		Action:     ActionBorrow,
		Date:       lentAt,
		Items:      []string{"111", "", "222"},
	})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Line)
	assert.Equal(t, "111", results[0].ISBN)
	assert.Equal(t, "Mathematik heute", results[0].Title)
	assert.NoError(t, results[0].Err)
	// Blank lines are dropped but line numbers keep counting.
	assert.Equal(t, 3, results[1].Line)
	assert.Equal(t, "222", results[1].ISBN)

	require.Len(t, f.loans.incremented, 2)
	assert.Equal(t, ledgerOp{models.BorrowerStudent, 7, "111"}, f.loans.incremented[0])
	assert.Equal(t, ledgerOp{models.BorrowerStudent, 7, "222"}, f.loans.incremented[1])
	assert.Zero(t, f.loans.pruned)
}

func TestSubmitBorrowUnknownBookContinues(t *testing.T) {
	f := newCirculationFixture()

	results, err := f.service.Submit(context.Background(), SubmitRequest{
		BorrowerID: 7,
		Kind:       models.BorrowerStudent,
		Action:     ActionBorrow,
		Items:      []string{"111", "does-not-exist", "222"},
	})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, apperrors.ErrBookNotFound)
	assert.Equal(t, "does-not-exist", results[1].Scanned)
	assert.NoError(t, results[2].Err)

	// The rest of the batch still ran.
	assert.Len(t, f.loans.incremented, 2)
}

func TestSubmitReturnPrunesOnce(t *testing.T) {
	f := newCirculationFixture()

	results, err := f.service.Submit(context.Background(), SubmitRequest{
		BorrowerID: 3,
		Kind:       models.BorrowerTeacher,
		Action:     ActionReturn,
		Items:      []string{"111", "222"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Len(t, f.loans.decremented, 2)
	assert.Equal(t, ledgerOp{models.BorrowerTeacher, 3, "111"}, f.loans.decremented[0])
	assert.Equal(t, 1, f.loans.pruned)
}

func TestSubmitTermEndSwap(t *testing.T) {
	f := newCirculationFixture()
	swappedAt := time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)

	results, err := f.service.Submit(context.Background(), SubmitRequest{
		BorrowerID: 7,
		Kind:       models.BorrowerStudent,
		Action:     ActionBorrow,
		TermEnd:    true,
		Date:       swappedAt,
		Items:      []string{"111", "111", "222"},
	})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	// A second scan of the same book is a duplicate; the batch continues.
	assert.ErrorIs(t, results[1].Err, apperrors.ErrDuplicateSwap)
	assert.NoError(t, results[2].Err)

	require.Len(t, f.swaps.added, 2)
	assert.Equal(t, "111", f.swaps.added[0].isbn)
	assert.Equal(t, "222", f.swaps.added[1].isbn)
	assert.Empty(t, f.loans.incremented)
	assert.Zero(t, f.loans.pruned)
}

func TestSubmitTermEndReturn(t *testing.T) {
	f := newCirculationFixture()

	_, err := f.service.Submit(context.Background(), SubmitRequest{
		BorrowerID: 7,
		Kind:       models.BorrowerStudent,
		Action:     ActionReturn,
		TermEnd:    true,
		Items:      []string{"111"},
	})
	require.NoError(t, err)

	require.Len(t, f.swaps.removed, 1)
	assert.Equal(t, ledgerOp{models.BorrowerStudent, 7, "111"}, f.swaps.removed[0])
	assert.Empty(t, f.loans.decremented)
	assert.Zero(t, f.loans.pruned)
}

func TestSubmitReturnPrunesAfterAbort(t *testing.T) {
	// A store error cuts the batch short, but books already returned must
	// still be swept out of the ledger.
	f := newCirculationFixture()
	f.loans.errOn = "222"

	results, err := f.service.Submit(context.Background(), SubmitRequest{
		BorrowerID: 7,
		Kind:       models.BorrowerStudent,
		Action:     ActionReturn,
		Items:      []string{"111", "222"},
	})
	assert.ErrorIs(t, err, errStore)
	require.Len(t, results, 1)
	assert.Equal(t, "111", results[0].ISBN)

	require.Len(t, f.loans.decremented, 1)
	assert.Equal(t, 1, f.loans.pruned)
}

func TestSubmitStoreErrorAborts(t *testing.T) {
	f := newCirculationFixture()
	f.loans.err = errStore

	results, err := f.service.Submit(context.Background(), SubmitRequest{
		BorrowerID: 7,
		Kind:       models.BorrowerStudent,
		Action:     ActionBorrow,
		Items:      []string{"111", "222"},
	})
	assert.ErrorIs(t, err, errStore)
	// Partial results up to the failing line are still reported.
	assert.Empty(t, results)
}
