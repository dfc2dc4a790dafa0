package services

import (
	"context"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/filter"
)

// Searcher runs a built predicate against an entity's view.
type Searcher interface {
	Search(ctx context.Context, spec filter.Spec, values map[string]string) (*models.ResultSet, error)
}

// SearchService answers filtered queries over the searchable entities
type SearchService struct {
	repo Searcher
}

// NewSearchService creates a new search service
func NewSearchService(repo Searcher) *SearchService {
	return &SearchService{
		repo: repo,
	}
}

// Entities lists the searchable entity names.
func (s *SearchService) Entities() []string {
	return filter.Entities()
}

// Fields lists the searchable field names of one entity.
func (s *SearchService) Fields(entity string) ([]string, error) {
	spec, ok := filter.SpecFor(entity)
	if !ok {
		return nil, apperrors.ErrUnknownEntity
	}

	names := make([]string, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		names = append(names, f.Name)
	}
	return names, nil
}

// Search runs a search over one entity. Unknown entities and malformed
// field values are rejected before any query runs.
func (s *SearchService) Search(ctx context.Context, entity string, values map[string]string) (*models.ResultSet, error) {
	spec, ok := filter.SpecFor(entity)
	if !ok {
		return nil, apperrors.ErrUnknownEntity
	}

	// Reject unknown fields and malformed values before touching the store
	if _, err := spec.Build(values); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	result, err := s.repo.Search(ctx, spec, values)
	if err != nil {
		return nil, err
	}

	return result, nil
}
