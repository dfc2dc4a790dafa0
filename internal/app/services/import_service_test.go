package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

func TestImportRoster(t *testing.T) {
	roster := "Anna Schmidt,2031,a\nBen Fischer,2031,a\nClara Wagner,2027,\n"
	creator := &fakeStudentCreator{}
	service := NewImportService(creator)

	report, err := service.ImportRoster(context.Background(), strings.NewReader(roster), ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Imported)
	assert.Equal(t, 0, report.Skipped)
	assert.Empty(t, report.Errors)

	require.Len(t, creator.created, 3)
	assert.Equal(t, "Anna Schmidt", creator.created[0].Name)
	assert.Equal(t, 2031, creator.created[0].GraduationYear)
	assert.Equal(t, "a", creator.created[0].FormLetter)
	assert.Equal(t, "", creator.created[2].FormLetter)
}

func TestImportRosterSkipsBadRows(t *testing.T) {
	roster := strings.Join([]string{
		"Anna Schmidt,2031,a",
		",2031,a",
		"Ben Fischer,soon,a",
		"Clara Wagner,2027,abc",
		"Dora Becker",
		"Emil Hoffmann,2030,B",
	}, "\n")
	creator := &fakeStudentCreator{}
	service := NewImportService(creator)

	report, err := service.ImportRoster(context.Background(), strings.NewReader(roster), ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 4, report.Skipped)
	require.Len(t, report.Errors, 4)
	assert.Equal(t, 2, report.Errors[0].Line)
	assert.Equal(t, 3, report.Errors[1].Line)
	assert.Equal(t, 4, report.Errors[2].Line)
	assert.Equal(t, 5, report.Errors[3].Line)

	// Form letters are normalized to lower case.
	require.Len(t, creator.created, 2)
	assert.Equal(t, "b", creator.created[1].FormLetter)
}

func TestImportRosterOptions(t *testing.T) {
	roster := "Name;Jahr;Zug\n2031;Anna Schmidt;a\n"
	creator := &fakeStudentCreator{}
	service := NewImportService(creator)

	report, err := service.ImportRoster(context.Background(), strings.NewReader(roster), ImportOptions{
		Comma:        ';',
		NameColumn:   1,
		YearColumn:   0,
		LetterColumn: 2,
		SkipHeader:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	require.Len(t, creator.created, 1)
	assert.Equal(t, "Anna Schmidt", creator.created[0].Name)
	assert.Equal(t, 2031, creator.created[0].GraduationYear)
}

func TestImportRosterMalformedCSV(t *testing.T) {
	roster := "Anna Schmidt,\"2031,a\nBen"
	service := NewImportService(&fakeStudentCreator{})

	_, err := service.ImportRoster(context.Background(), strings.NewReader(roster), ImportOptions{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestImportRosterStoreErrorAborts(t *testing.T) {
	roster := "Anna Schmidt,2031,a\nBen Fischer,2031,a\n"
	creator := &fakeStudentCreator{err: errStore}
	service := NewImportService(creator)

	report, err := service.ImportRoster(context.Background(), strings.NewReader(roster), ImportOptions{})
	assert.ErrorIs(t, err, errStore)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Imported)
}
