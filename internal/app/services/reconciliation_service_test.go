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

type reconciliationFixture struct {
	service *ReconciliationService
	roster  *fakeClassRoster
	books   *fakeGradeBooks
	swaps   fakeSwapRecords
	loans   fakeLoanHolders
}

func newReconciliationFixture() *reconciliationFixture {
	roster := &fakeClassRoster{
		students: []*models.Student{
			{ID: 1, Name: "Anna Schmidt", GraduationYear: 2031, FormLetter: "a"},
			{ID: 2, Name: "Ben Fischer", GraduationYear: 2031, FormLetter: "a"},
		},
		classes: []string{"5a", "7a", "12"},
	}
	books := &fakeGradeBooks{
		books: []*models.Book{
			{ISBN: "111", Title: "Mathematik heute", GradeTag: "7"},
			{ISBN: "222", Title: "Deutschbuch", GradeTag: "7"},
		},
	}
	swaps := fakeSwapRecords{}
	loans := fakeLoanHolders{}

	return &reconciliationFixture{
		service: NewReconciliationService(roster, books, swaps, loans),
		roster:  roster,
		books:   books,
		swaps:   swaps,
		loans:   loans,
	}
}

func TestClasses(t *testing.T) {
	f := newReconciliationFixture()
	classes, err := f.service.Classes(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"5a", "7a", "12"}, classes)
}

func TestBuildMatrix(t *testing.T) {
	f := newReconciliationFixture()
	f.swaps[1] = []string{"111"}
	f.loans[2] = true
	at := time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)

	matrix, err := f.service.BuildMatrix(context.Background(), "7a", false, at)
	require.NoError(t, err)

	require.Len(t, matrix.Rows, 2)
	assert.Equal(t, "Anna Schmidt", matrix.Rows[0].Label)
	assert.Equal(t, int64(1), matrix.Rows[0].StudentID)

	require.Len(t, matrix.Columns, 3)
	assert.Equal(t, "Mathematik heute 7", matrix.Columns[0].Label)
	assert.Equal(t, OtherLoansLabel, matrix.Columns[2].Label)
	assert.Empty(t, matrix.Columns[2].ISBN)

	// Anna swapped a listed book and holds nothing else.
	assert.True(t, matrix.Cell(0, 0))
	assert.False(t, matrix.Cell(0, 1))
	assert.False(t, matrix.Cell(0, 2))

	// Ben swapped nothing but still holds ledger loans.
	assert.False(t, matrix.Cell(1, 0))
	assert.False(t, matrix.Cell(1, 1))
	assert.True(t, matrix.Cell(1, 2))
}

func TestBuildMatrixIgnoresOffListSwaps(t *testing.T) {
	// A swap record for a book outside the grade list does not show up
	// anywhere, not even in the aggregate column.
	f := newReconciliationFixture()
	f.swaps[1] = []string{"999"}
	at := time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)

	matrix, err := f.service.BuildMatrix(context.Background(), "7a", false, at)
	require.NoError(t, err)

	other := matrix.OtherColumn()
	require.GreaterOrEqual(t, other, 0)
	for j := range matrix.Columns {
		assert.False(t, matrix.Cell(0, j))
	}
	assert.False(t, matrix.Cell(0, other))
}

func TestBuildMatrixGradeSelection(t *testing.T) {
	// Before the September rollover "7a" hands back grade 7 books and
	// receives grade 8 books.
	at := time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)

	f := newReconciliationFixture()
	_, err := f.service.BuildMatrix(context.Background(), "7a", false, at)
	require.NoError(t, err)
	assert.Equal(t, 7, f.books.requestedGrade)

	f = newReconciliationFixture()
	_, err = f.service.BuildMatrix(context.Background(), "7a", true, at)
	require.NoError(t, err)
	assert.Equal(t, 8, f.books.requestedGrade)

	// After the rollover the label already names the new grade.
	at = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	f = newReconciliationFixture()
	_, err = f.service.BuildMatrix(context.Background(), "7a", true, at)
	require.NoError(t, err)
	assert.Equal(t, 7, f.books.requestedGrade)
}

func TestBuildMatrixRejectsGradelessLabel(t *testing.T) {
	f := newReconciliationFixture()
	_, err := f.service.BuildMatrix(context.Background(), "abc", false, time.Time{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
