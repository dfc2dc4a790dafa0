package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/app/repositories"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// AliasService handles scan code alias operations
type AliasService struct {
	aliasRepo *repositories.AliasRepository
}

// NewAliasService creates a new alias service instance
func NewAliasService(aliasRepo *repositories.AliasRepository) *AliasService {
	return &AliasService{
		aliasRepo: aliasRepo,
	}
}

// CreateAlias registers an alias for a book
func (s *AliasService) CreateAlias(ctx context.Context, alias *models.Alias) error {
	if alias == nil {
		return fmt.Errorf("%w: alias is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(alias.Alias) == "" {
		return fmt.Errorf("%w: alias cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(alias.ISBN) == "" {
		return fmt.Errorf("%w: ISBN cannot be empty", apperrors.ErrValidationFailed)
	}

	alias.Alias = strings.ToLower(strings.TrimSpace(alias.Alias))
	alias.ISBN = strings.TrimSpace(alias.ISBN)

	return s.aliasRepo.Create(ctx, alias)
}

// GetAllAliases retrieves all aliases
func (s *AliasService) GetAllAliases(ctx context.Context) ([]*models.Alias, error) {
	return s.aliasRepo.GetAll(ctx)
}

// DeleteAlias removes an alias
func (s *AliasService) DeleteAlias(ctx context.Context, alias string) error {
	if strings.TrimSpace(alias) == "" {
		return fmt.Errorf("%w: alias cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.aliasRepo.Delete(ctx, strings.TrimSpace(alias))
}
