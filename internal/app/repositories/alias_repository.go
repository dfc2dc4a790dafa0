package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/dberrors"
)

// AliasRepository handles database operations for scan code aliases
type AliasRepository struct {
	db *pgxpool.Pool
}

// NewAliasRepository creates a new alias repository
func NewAliasRepository(db *pgxpool.Pool) *AliasRepository {
	return &AliasRepository{
		db: db,
	}
}

// Create registers an alias for a book. Aliases are stored lower-cased so
// lookups are case-insensitive.
func (r *AliasRepository) Create(ctx context.Context, alias *models.Alias) error {
	query := `
		INSERT INTO aliases (alias, isbn)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, strings.ToLower(alias.Alias), alias.ISBN)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAliasExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBookNotFound
		}
		return fmt.Errorf("error creating alias: %w", err)
	}

	return nil
}

// GetByAlias resolves an alias to its book. Returns nil without an error
// when the alias is unknown; the scanned text is then used as-is.
func (r *AliasRepository) GetByAlias(ctx context.Context, alias string) (*models.Alias, error) {
	query := `
		SELECT alias, isbn
		FROM aliases
		WHERE alias = $1
	`

	var a models.Alias
	err := r.db.QueryRow(ctx, query, strings.ToLower(alias)).Scan(&a.Alias, &a.ISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving alias: %w", err)
	}

	return &a, nil
}

// GetAll retrieves all aliases ordered by alias
func (r *AliasRepository) GetAll(ctx context.Context) ([]*models.Alias, error) {
	query := `
		SELECT alias, isbn
		FROM aliases
		ORDER BY alias
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aliases []*models.Alias
	for rows.Next() {
		var a models.Alias
		if err := rows.Scan(&a.Alias, &a.ISBN); err != nil {
			return nil, err
		}
		aliases = append(aliases, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return aliases, nil
}

// Delete removes an alias
func (r *AliasRepository) Delete(ctx context.Context, alias string) error {
	query := `DELETE FROM aliases WHERE alias = $1`
	cmdTag, err := r.db.Exec(ctx, query, strings.ToLower(alias))

	if err != nil {
		return fmt.Errorf("error deleting alias: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAliasNotFound
	}

	return nil
}
