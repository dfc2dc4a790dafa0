package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/filter"
)

type fakeSearcher struct {
	spec   filter.Spec
	values map[string]string
	result *models.ResultSet
}

func (f *fakeSearcher) Search(_ context.Context, spec filter.Spec, values map[string]string) (*models.ResultSet, error) {
	f.spec = spec
	f.values = values
	return f.result, nil
}

func TestSearchEntitiesAndFields(t *testing.T) {
	service := NewSearchService(&fakeSearcher{})

	assert.Contains(t, service.Entities(), filter.EntityStudentLoans)
	assert.Contains(t, service.Entities(), filter.EntitySwaps)

	fields, err := service.Fields(filter.EntityStudents)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "graduationYear", "formLetter"}, fields)

	_, err = service.Fields("invoices")
	assert.ErrorIs(t, err, apperrors.ErrUnknownEntity)
}

func TestSearch(t *testing.T) {
	repo := &fakeSearcher{result: &models.ResultSet{Columns: []string{"name"}}}
	service := NewSearchService(repo)

	result, err := service.Search(context.Background(), filter.EntityStudents, map[string]string{"name": "schmidt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, result.Columns)
	assert.Equal(t, "students", repo.spec.Table)
	assert.Equal(t, "schmidt", repo.values["name"])
}

func TestSearchRejectsBadInput(t *testing.T) {
	service := NewSearchService(&fakeSearcher{})

	_, err := service.Search(context.Background(), "invoices", nil)
	assert.ErrorIs(t, err, apperrors.ErrUnknownEntity)

	_, err = service.Search(context.Background(), filter.EntitySwaps, map[string]string{"year": "not-a-year"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.Search(context.Background(), filter.EntityStudents, map[string]string{"shoeSize": "42"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
